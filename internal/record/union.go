package record

import (
	"fmt"
	"reflect"
)

// Variant adapts s to a builder of the union interface V.
func Variant[V any, T any](s *Schema[T]) func(any) (V, error) {
	return func(raw any) (V, error) {
		var zero V
		rec, err := s.Construct(raw)
		if err != nil {
			return zero, err
		}
		v, ok := any(rec).(V)
		if !ok {
			return zero, fmt.Errorf("%s is not a %s", s.name, reflect.TypeFor[V]())
		}
		return v, nil
	}
}

// Resolve builds the union value of field from raw using the variant selected
// by tag. The tag must already be a coerced enum member.
func Resolve[K comparable, V any](field string, tag K, raw any, variants map[K]func(any) (V, error)) (V, error) {
	var zero V
	if isNil(raw) {
		return zero, Missing(field)
	}
	build, ok := variants[tag]
	if !ok {
		return zero, Unreachable(field, tag)
	}
	v, err := build(raw)
	if err != nil {
		return zero, Mismatch(field, raw, err)
	}
	return v, nil
}
