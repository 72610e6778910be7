// Package record declares typed records whose fields are coerced from raw
// sequences or mappings and then normalized by an optional hook.
package record

// Converter coerces a non-nil raw value into the canonical value of a field.
type Converter func(v any) (any, error)

type policy int

const (
	policyRequired policy = iota
	policyOptional
	policyDefault
	policyFactory
	policyDeferred
)

// Field is one declared field of a record. It is built only through the
// constructors below, so a field carries at most one of a default value or a
// default factory.
type Field struct {
	name    string
	conv    Converter
	policy  policy
	value   any
	factory func() any
}

// Required declares a field that must be present. conv may be nil.
func Required(name string, conv Converter) Field {
	return Field{name: name, conv: conv, policy: policyRequired}
}

// Optional declares a field that stays zero when absent.
func Optional(name string, conv Converter) Field {
	return Field{name: name, conv: conv, policy: policyOptional}
}

// Default declares a field that takes value when absent.
func Default(name string, conv Converter, value any) Field {
	return Field{name: name, conv: conv, policy: policyDefault, value: value}
}

// Factory declares a field that takes a fresh fn() result when absent.
func Factory(name string, conv Converter, fn func() any) Field {
	return Field{name: name, conv: conv, policy: policyFactory, factory: fn}
}

// Deferred declares a field whose raw value is resolved by the record hook,
// typically a union keyed by a sibling discriminator.
func Deferred(name string) Field {
	return Field{name: name, policy: policyDeferred}
}

// Name returns the wire name of the field.
func (f Field) Name() string { return f.name }

// coerce runs the coercion pass for one field.
func (f Field) coerce(v any) (any, error) {
	if isNil(v) {
		switch f.policy {
		case policyRequired:
			return nil, Missing(f.name)
		case policyDefault:
			return f.value, nil
		case policyFactory:
			return f.factory(), nil
		default:
			return nil, nil
		}
	}
	if f.conv == nil || f.policy == policyDeferred {
		return v, nil
	}
	out, err := f.conv(v)
	if err != nil {
		if isRecordError(err) {
			return nil, err
		}
		return nil, Mismatch(f.name, v, err)
	}
	return out, nil
}
