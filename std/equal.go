package std

import "reflect"

// Equal compares two values. An Equatable implementation wins; otherwise the
// values must share a dynamic type and are compared through an Equal method
// when one exists, field by field for structs, and with reflect.DeepEqual for
// everything else.
func Equal[T any](v1, v2 T) bool {
	if e, ok := any(v1).(Equatable[T]); ok {
		return e.Equal(v2)
	}
	return valuesEqual(reflect.ValueOf(v1), reflect.ValueOf(v2))
}

func valuesEqual(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Interface:
		return valuesEqual(a.Elem(), b.Elem())
	case reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
	}
	if eq, ok := callEqual(a, b); ok {
		return eq
	}

	if a.Kind() == reflect.Struct {
		for i := 0; i < a.NumField(); i++ {
			fa, fb := a.Field(i), b.Field(i)
			if !fa.CanInterface() {
				// Unexported state is only reachable through DeepEqual.
				return reflect.DeepEqual(a.Interface(), b.Interface())
			}
			if !valuesEqual(fa, fb) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

// callEqual invokes a's Equal(b) bool method when it has one.
func callEqual(a, b reflect.Value) (equal, ok bool) {
	m := a.MethodByName("Equal")
	if !m.IsValid() {
		return false, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool || !b.Type().AssignableTo(mt.In(0)) {
		return false, false
	}
	return m.Call([]reflect.Value{b})[0].Bool(), true
}
