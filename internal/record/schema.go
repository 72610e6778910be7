package record

import (
	"fmt"
	"reflect"
	"strings"
)

// Hook is the custom post-validation step of a record. It receives the
// record after the coercion pass together with the raw input, and returns the
// normalized record.
type Hook[T any] func(rec T, raw Values) (T, error)

// Schema binds an ordered field list to the struct type T. Field names match
// the json tags of T.
type Schema[T any] struct {
	name   string
	fields []Field
	index  []int
	byName map[string]int
	hook   Hook[T]
}

// Declare validates the field list against T and returns its schema.
func Declare[T any](fields ...Field) (*Schema[T], error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrDeclaration, typ)
	}

	tags := make(map[string]int, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		if name := jsonTagName(sf); name != "" {
			tags[name] = i
		}
	}

	s := &Schema[T]{
		name:   typ.Name(),
		fields: make([]Field, 0, len(fields)),
		index:  make([]int, 0, len(fields)),
		byName: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.name == "" {
			return nil, fmt.Errorf("%w: %s: field without name", ErrDeclaration, s.name)
		}
		if _, dup := s.byName[f.name]; dup {
			return nil, fmt.Errorf("%w: %s.%s declared twice", ErrDeclaration, s.name, f.name)
		}
		idx, ok := tags[f.name]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no field tagged %q", ErrDeclaration, s.name, f.name)
		}
		if f.policy == policyDefault && f.value != nil {
			v := f.value
			if f.conv != nil {
				var err error
				if v, err = f.conv(v); err != nil {
					return nil, fmt.Errorf("%w: %s.%s default: %v", ErrDeclaration, s.name, f.name, err)
				}
			}
			probe := reflect.New(typ.Field(idx).Type).Elem()
			if err := assign(probe, v); err != nil {
				return nil, fmt.Errorf("%w: %s.%s default: %v", ErrDeclaration, s.name, f.name, err)
			}
			f.value = v
		}
		if f.policy == policyFactory && f.factory == nil {
			return nil, fmt.Errorf("%w: %s.%s: nil factory", ErrDeclaration, s.name, f.name)
		}
		s.byName[f.name] = len(s.fields)
		s.fields = append(s.fields, f)
		s.index = append(s.index, idx)
	}
	for name := range tags {
		if _, ok := s.byName[name]; !ok {
			return nil, fmt.Errorf("%w: %s.%s is not declared", ErrDeclaration, s.name, name)
		}
	}
	return s, nil
}

// MustDeclare is like Declare but panics on error. It is meant for
// package-level schema variables.
func MustDeclare[T any](fields ...Field) *Schema[T] {
	s, err := Declare[T](fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// WithHook attaches h as the custom post-validation step and returns s.
func (s *Schema[T]) WithHook(h Hook[T]) *Schema[T] {
	s.hook = h
	return s
}

// Name returns the record name used in error messages.
func (s *Schema[T]) Name() string { return s.name }

// Fields returns the declared wire names in order.
func (s *Schema[T]) Fields() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.name
	}
	return out
}

// Construct builds a record from an existing instance, an ordered sequence of
// values or a name-keyed mapping. Instances are returned unchanged.
func (s *Schema[T]) Construct(raw any) (T, error) {
	var zero T
	switch r := raw.(type) {
	case T:
		return r, nil
	case *T:
		if r != nil {
			return *r, nil
		}
	case Values:
		return s.build(r)
	case map[string]any:
		return s.build(Values(r))
	}

	if raw == nil {
		return zero, &ConversionError{Record: s.name, Type: "nil", Value: raw}
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() > len(s.fields) {
			return zero, &ConversionError{
				Record: s.name,
				Type:   fmt.Sprintf("sequence of %d values (want at most %d)", rv.Len(), len(s.fields)),
				Value:  raw,
			}
		}
		vals := make(Values, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			vals[s.fields[i].name] = rv.Index(i).Interface()
		}
		return s.build(vals)
	case reflect.Map:
		vals := make(Values, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key()
			if k.Kind() == reflect.Interface {
				k = k.Elem()
			}
			if k.Kind() != reflect.String {
				return zero, &ConversionError{Record: s.name, Type: fmt.Sprintf("%T", raw), Value: raw}
			}
			vals[k.String()] = iter.Value().Interface()
		}
		return s.build(vals)
	}
	return zero, &ConversionError{Record: s.name, Type: fmt.Sprintf("%T", raw), Value: raw}
}

// Normalize re-runs the coercion pass and the hook over an existing record.
func (s *Schema[T]) Normalize(rec T) (T, error) {
	rv := reflect.ValueOf(rec)
	vals := make(Values, len(s.fields))
	for i, f := range s.fields {
		vals[f.name] = rawOf(rv.Field(s.index[i]))
	}
	return s.build(vals)
}

// Converter exposes the schema as the converter of a nested field.
func (s *Schema[T]) Converter() Converter {
	return func(v any) (any, error) {
		return s.Construct(v)
	}
}

func (s *Schema[T]) build(vals Values) (T, error) {
	var out T
	for k := range vals {
		if _, ok := s.byName[k]; !ok {
			return out, &FieldError{Record: s.name, Field: k, Kind: ErrUnknownField}
		}
	}

	ov := reflect.ValueOf(&out).Elem()
	for i, f := range s.fields {
		v, err := f.coerce(vals[f.name])
		if err != nil {
			return out, withRecord(err, s.name)
		}
		if f.policy == policyDeferred {
			continue
		}
		if err := assign(ov.Field(s.index[i]), v); err != nil {
			return out, &FieldError{Record: s.name, Field: f.name, Value: v, Kind: ErrTypeMismatch, Err: err}
		}
	}

	if s.hook == nil {
		return out, nil
	}
	out, err := s.hook(out, vals)
	if err != nil {
		var zero T
		return zero, withRecord(err, s.name)
	}
	return out, nil
}

// rawOf turns a struct field back into the value a caller would have supplied.
func rawOf(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return v.Elem().Interface()
	case reflect.Interface, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return nil
		}
	}
	return v.Interface()
}

func jsonTagName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}
