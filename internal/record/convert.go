package record

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
)

// Float accepts any finite number and returns a float64.
func Float() Converter {
	return func(v any) (any, error) {
		return toFloat(v)
	}
}

// Int accepts integers and integral floats and returns an int.
func Int() Converter {
	return func(v any) (any, error) {
		n, err := toInt(v)
		if err != nil {
			return nil, err
		}
		return int(n), nil
	}
}

// String accepts string values only.
func String() Converter {
	return func(v any) (any, error) {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.String {
			return nil, fmt.Errorf("%T is not a string", v)
		}
		return rv.String(), nil
	}
}

// Bool accepts bool values only.
func Bool() Converter {
	return func(v any) (any, error) {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%T is not a bool", v)
		}
		return b, nil
	}
}

// Enum coerces a member or its wire integer into E. Only the listed members
// are accepted; members of another named type are rejected.
func Enum[E ~int](members ...E) Converter {
	return func(v any) (any, error) {
		if e, ok := v.(E); ok {
			return ParseEnum(int(e), members...)
		}
		if _, ok := v.(json.Number); !ok && reflect.TypeOf(v).PkgPath() != "" {
			return nil, fmt.Errorf("%T is not %s", v, reflect.TypeFor[E]())
		}
		n, err := toInt(v)
		if err != nil {
			return nil, err
		}
		return ParseEnum(int(n), members...)
	}
}

// ParseEnum converts a wire integer into E once, at the decoding boundary.
func ParseEnum[E ~int](n int, members ...E) (E, error) {
	e := E(n)
	if !slices.Contains(members, e) {
		return e, fmt.Errorf("%d is not one of %v", n, members)
	}
	return e, nil
}

// SliceOf applies conv to every element of a sequence.
func SliceOf(conv Converter) Converter {
	return func(v any) (any, error) {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, fmt.Errorf("%T is not a sequence", v)
		}
		out := make([]any, rv.Len())
		for i := range out {
			elem, err := conv(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = elem
		}
		return out, nil
	}
}

// Nested uses s as the converter of a nested record field.
func Nested[T any](s *Schema[T]) Converter {
	return s.Converter()
}
