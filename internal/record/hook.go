package record

import (
	"fmt"
	"reflect"
)

// Need coerces the raw value of a field that the active mode requires. An
// absent value fails with ErrMissing, a malformed one with ErrTypeMismatch;
// both name field.
func Need[T any](raw Values, field string, build func(any) (T, error)) (T, error) {
	var zero T
	if !raw.Has(field) {
		return zero, Missing(field)
	}
	v, err := build(raw.Get(field))
	if err != nil {
		return zero, Mismatch(field, raw.Get(field), err)
	}
	return v, nil
}

// Typed adapts conv to a builder returning T.
func Typed[T any](conv Converter) func(any) (T, error) {
	return func(v any) (T, error) {
		var zero T
		out, err := conv(v)
		if err != nil {
			return zero, err
		}
		t, ok := out.(T)
		if !ok {
			return zero, fmt.Errorf("got %T, want %s", out, reflect.TypeFor[T]())
		}
		return t, nil
	}
}
