package record

import "reflect"

// Values holds the raw, name-keyed input of a single construction.
type Values map[string]any

// Has reports whether name was supplied with a non-nil value. Nil pointers
// and interfaces count as absent.
func (v Values) Has(name string) bool {
	return !isNil(v[name])
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Get returns the raw value supplied for name.
func (v Values) Get(name string) any {
	return v[name]
}
