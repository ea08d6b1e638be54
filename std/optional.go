package std

import (
	"fmt"

	"martianoff/adt/adterr"
)

// Optional holds a value or nothing. The zero value is None.
// Some(nil) is a present value and is distinct from None.
type Optional[T any] struct {
	value    T
	hasValue bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, hasValue: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OptionalOf adapts the comma-ok idiom, e.g. v, ok := m[k]; OptionalOf(v, ok).
func OptionalOf[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Optional[T]) HasValue() bool {
	return o.hasValue
}

func (o Optional[T]) IsEmpty() bool {
	return !o.hasValue
}

// Get returns the value or panics with *adterr.NoValueError on None.
func (o Optional[T]) Get() T {
	if !o.hasValue {
		panic(adterr.NewNoValueError(fmt.Sprintf("Optional[%s]", typeName[T]())))
	}
	return o.value
}

func (o Optional[T]) Value() (T, bool) {
	return o.value, o.hasValue
}

func (o Optional[T]) GetValueOrDefault(defaultValue T) T {
	if o.hasValue {
		return o.value
	}
	return defaultValue
}

// Contains reports whether o holds a value equal to v.
func (o Optional[T]) Contains(v T) bool {
	return o.hasValue && Equal(o.value, v)
}

// Or returns o when it has a value and fallback otherwise.
func (o Optional[T]) Or(fallback Optional[T]) Optional[T] {
	if o.hasValue {
		return o
	}
	return fallback
}

// OrElse is Or with a lazily built fallback.
func (o Optional[T]) OrElse(fallback func() Optional[T]) Optional[T] {
	if o.hasValue {
		return o
	}
	return fallback()
}

func (o Optional[T]) Filter(p func(T) bool) Optional[T] {
	if o.hasValue && p(o.value) {
		return o
	}
	return None[T]()
}

func (o Optional[T]) ForEach(f func(T)) {
	if o.hasValue {
		f(o.value)
	}
}

func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.hasValue != other.hasValue {
		return false
	}
	if !o.hasValue {
		return true
	}
	return Equal(o.value, other.value)
}

func (o Optional[T]) String() string {
	if !o.hasValue {
		return "None"
	}
	return fmt.Sprintf("Some %v", o.value)
}

// Optional_Select, Optional_Bind and Optional_Case are functions because Go
// methods cannot have type parameters.

// Optional_Select maps the value when present.
func Optional_Select[U, T any](o Optional[T], f func(T) U) Optional[U] {
	if o.hasValue {
		return Some(f(o.value))
	}
	return None[U]()
}

// Optional_Bind chains an Optional-returning function when the value is present.
func Optional_Bind[U, T any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if o.hasValue {
		return f(o.value)
	}
	return None[U]()
}

// Optional_Case returns onSome applied to the value, or onNone().
func Optional_Case[U, T any](o Optional[T], onSome func(T) U, onNone func() U) U {
	if o.hasValue {
		return onSome(o.value)
	}
	return onNone()
}

// Optional_CaseOr returns onSome applied to the value, or none.
func Optional_CaseOr[U, T any](o Optional[T], onSome func(T) U, none U) U {
	if o.hasValue {
		return onSome(o.value)
	}
	return none
}

var _ Equatable[Optional[int]] = Optional[int]{}
var _ fmt.Stringer = Optional[int]{}
