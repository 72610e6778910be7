package record

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConversion   = errors.New("unsupported input type")
	ErrMissing      = errors.New("missing required field")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrCatalog      = errors.New("not in catalog")
	ErrUnreachable  = errors.New("unknown discriminator")
	ErrDeclaration  = errors.New("invalid record declaration")
	ErrUnknownField = errors.New("unknown field")
)

// ConversionError is returned when a constructor receives something that is
// neither an instance, a sequence nor a mapping.
type ConversionError struct {
	Record string
	Type   string
	Value  any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: cannot construct from %s: %v", e.Record, e.Type, e.Value)
}

func (e *ConversionError) Unwrap() error { return ErrConversion }

// FieldError names the field a record failed on. Kind is one of the package
// sentinels; Err carries the underlying cause, if any.
type FieldError struct {
	Record string
	Field  string
	Value  any
	Kind   error
	Err    error
}

func (e *FieldError) Error() string {
	var b strings.Builder
	if e.Record != "" {
		b.WriteString(e.Record)
		b.WriteByte('.')
	}
	b.WriteString(e.Field)
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Value != nil {
		fmt.Fprintf(&b, " (got %v)", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *FieldError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Missing reports an absent field that the active mode requires.
func Missing(field string) error {
	return &FieldError{Field: field, Kind: ErrMissing}
}

// Mismatch reports a value of the wrong shape for field.
func Mismatch(field string, value any, cause error) error {
	return &FieldError{Field: field, Value: value, Kind: ErrTypeMismatch, Err: cause}
}

// NotInCatalog reports a catalog name outside the allowed set.
func NotInCatalog(field string, value any, allowed []string) error {
	return &FieldError{
		Field: field,
		Value: value,
		Kind:  ErrCatalog,
		Err:   fmt.Errorf("allowed: %s", strings.Join(allowed, ", ")),
	}
}

// Unreachable reports a discriminator value with no matching branch.
func Unreachable(field string, tag any) error {
	return &FieldError{Field: field, Value: tag, Kind: ErrUnreachable}
}

// Require returns Missing(field) when ok is false.
func Require(field string, ok bool) error {
	if !ok {
		return Missing(field)
	}
	return nil
}

// FieldOf returns the name of the field err points at, or "" when err does
// not carry one.
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}

// KindOf returns the sentinel classifying err, or nil for foreign errors.
func KindOf(err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	for _, k := range []error{ErrMissing, ErrTypeMismatch, ErrCatalog, ErrUnreachable, ErrConversion, ErrUnknownField, ErrDeclaration} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

func withRecord(err error, name string) error {
	var fe *FieldError
	if errors.As(err, &fe) && fe.Record == "" {
		fe.Record = name
	}
	return err
}

func isRecordError(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}

// Positive returns a type-mismatch error unless v > 0.
func Positive(field string, v float64) error {
	if v > 0 {
		return nil
	}
	return Mismatch(field, v, errNotPositive)
}

var errNotPositive = errors.New("must be positive")
