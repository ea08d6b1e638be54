package std

import (
	"fmt"
	"reflect"

	"martianoff/adt/adterr"
	"martianoff/adt/typecompat"
)

// Either holds exactly one of a Left value of type L or a Right value of type R.
//
// The payload lives in a single interface slot. When no L value can ever be
// mistaken for an R value (see typecompat.Analyze) the payload is stored as
// itself and its side is recovered from its dynamic type; otherwise it is
// wrapped in a per-side box. A nil interface payload is stored as a per-side
// sentinel, so Left(nil), Right(nil) and the zero Either stay distinct.
//
// The zero value is uninitialized: Case, Match and Cast panic on it.
// Either values are immutable and safe for concurrent readers.
type Either[L, R any] struct {
	storage any
}

type leftBox[T any] struct {
	value T
}

type rightBox[T any] struct {
	value T
}

// nullSentinel marks a nil payload. Sentinels are compared by identity and
// have no methods, so no interface payload type can match one.
type nullSentinel struct {
	label string
}

var (
	leftNull  = &nullSentinel{label: "LeftNullSentinel"}
	rightNull = &nullSentinel{label: "RightNullSentinel"}
)

type side uint8

const (
	sideNone side = iota
	sideLeft
	sideRight
)

// pair keys the strategy cache; (*pair[L, R])(nil) is unique per instantiation.
type pair[L, R any] struct{}

// StrategyOf returns the storage strategy shared by all Either[L, R] values.
func StrategyOf[L, R any]() typecompat.Strategy {
	return typecompat.Resolve((*pair[L, R])(nil), reflect.TypeFor[L](), reflect.TypeFor[R]()).Strategy
}

// Left returns an Either holding v on the left.
func Left[L, R any](v L) Either[L, R] {
	if any(v) == nil {
		return Either[L, R]{storage: leftNull}
	}
	if StrategyOf[L, R]() == typecompat.DirectTag {
		return Either[L, R]{storage: v}
	}
	return Either[L, R]{storage: &leftBox[L]{value: v}}
}

// Right returns an Either holding v on the right.
func Right[L, R any](v R) Either[L, R] {
	if any(v) == nil {
		return Either[L, R]{storage: rightNull}
	}
	if StrategyOf[L, R]() == typecompat.DirectTag {
		return Either[L, R]{storage: v}
	}
	return Either[L, R]{storage: &rightBox[R]{value: v}}
}

// resolve untags the storage. Sentinels are checked first, then L before R,
// so any residual ambiguity resolves to Left.
func (e Either[L, R]) resolve() (l L, r R, s side) {
	switch e.storage {
	case nil:
		return l, r, sideNone
	case leftNull:
		return l, r, sideLeft
	case rightNull:
		return l, r, sideRight
	}

	if StrategyOf[L, R]() == typecompat.DirectTag {
		if v, ok := e.storage.(L); ok {
			return v, r, sideLeft
		}
		if v, ok := e.storage.(R); ok {
			return l, v, sideRight
		}
		return l, r, sideNone
	}

	switch b := e.storage.(type) {
	case *leftBox[L]:
		return b.value, r, sideLeft
	case *rightBox[R]:
		return l, b.value, sideRight
	}
	return l, r, sideNone
}

func (e Either[L, R]) side() side {
	_, _, s := e.resolve()
	return s
}

// IsInitialized reports whether e was built by Left or Right.
func (e Either[L, R]) IsInitialized() bool {
	return e.side() != sideNone
}

// IsLeft reports whether e holds a Left value.
func (e Either[L, R]) IsLeft() bool {
	return e.side() == sideLeft
}

// IsRight reports whether e holds a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.side() == sideRight
}

// LeftValue returns the Left value and true when e holds one. A Left nil
// payload yields the zero L and true. It never panics.
func (e Either[L, R]) LeftValue() (L, bool) {
	l, _, s := e.resolve()
	return l, s == sideLeft
}

// RightValue returns the Right value and true when e holds one. A Right nil
// payload yields the zero R and true. It never panics.
func (e Either[L, R]) RightValue() (R, bool) {
	_, r, s := e.resolve()
	return r, s == sideRight
}

// MustLeft returns the Left value or panics.
func (e Either[L, R]) MustLeft() L {
	l, _, s := e.resolve()
	switch s {
	case sideLeft:
		return l
	case sideRight:
		panic(adterr.NewInvalidCastError("Left "+typeName[L](), "Right value of "+e.typeName()))
	}
	panic(adterr.NewUninitializedError(e.typeName()))
}

// MustRight returns the Right value or panics.
func (e Either[L, R]) MustRight() R {
	_, r, s := e.resolve()
	switch s {
	case sideRight:
		return r
	case sideLeft:
		panic(adterr.NewInvalidCastError("Right "+typeName[R](), "Left value of "+e.typeName()))
	}
	panic(adterr.NewUninitializedError(e.typeName()))
}

// Match calls onLeft or onRight with the held value.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	l, r, s := e.resolve()
	switch s {
	case sideLeft:
		onLeft(l)
	case sideRight:
		onRight(r)
	default:
		panic(adterr.NewUninitializedError(e.typeName()))
	}
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	l, r, s := e.resolve()
	switch s {
	case sideLeft:
		return Right[R](l)
	case sideRight:
		return Left[R, L](r)
	}
	return Either[R, L]{}
}

// Equal reports whether both values hold the same side with equal payloads.
func (e Either[L, R]) Equal(other Either[L, R]) bool {
	l1, r1, s1 := e.resolve()
	l2, r2, s2 := other.resolve()
	if s1 != s2 {
		return false
	}
	switch s1 {
	case sideLeft:
		return Equal(l1, l2)
	case sideRight:
		return Equal(r1, r2)
	}
	return true
}

func (e Either[L, R]) String() string {
	l, r, s := e.resolve()
	switch s {
	case sideLeft:
		return fmt.Sprintf("Left(%v)", l)
	case sideRight:
		return fmt.Sprintf("Right(%v)", r)
	}
	return "Either(uninitialized)"
}

func (e Either[L, R]) typeName() string {
	return fmt.Sprintf("Either[%s, %s]", typeName[L](), typeName[R]())
}

// Either_Case returns onLeft or onRight applied to the held value. It panics
// with *adterr.UninitializedError on the zero Either.
func Either_Case[U, L, R any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	l, r, s := e.resolve()
	switch s {
	case sideLeft:
		return onLeft(l)
	case sideRight:
		return onRight(r)
	}
	panic(adterr.NewUninitializedError(e.typeName()))
}

// Is reports whether e holds the side typed T. T must be L or R; when L and R
// are the same type the Left tag is reported.
func Is[T, L, R any](e Either[L, R]) bool {
	switch sideOf[T, L, R](e) {
	case sideLeft:
		return e.IsLeft()
	default:
		return e.IsRight()
	}
}

// Cast returns the held value as T. It panics with *adterr.InvalidCastError
// when the other side is held.
func Cast[T, L, R any](e Either[L, R]) T {
	var v any
	if sideOf[T, L, R](e) == sideLeft {
		v = e.MustLeft()
	} else {
		v = e.MustRight()
	}
	// T is exactly L or R here; only a nil payload fails the assertion.
	t, _ := v.(T)
	return t
}

func sideOf[T, L, R any](e Either[L, R]) side {
	t := reflect.TypeFor[T]()
	switch t {
	case reflect.TypeFor[L]():
		return sideLeft
	case reflect.TypeFor[R]():
		return sideRight
	}
	panic(adterr.NewUnknownTypeError(t.String(), e.typeName()))
}

// Either_SelectLeft maps a Left value; a Right value is carried over unchanged.
func Either_SelectLeft[U, L, R any](e Either[L, R], f func(L) U) Either[U, R] {
	return Either_Case(e,
		func(l L) Either[U, R] { return Left[U, R](f(l)) },
		Right[U, R])
}

// Either_SelectRight maps a Right value; a Left value is carried over unchanged.
func Either_SelectRight[U, L, R any](e Either[L, R], f func(R) U) Either[L, U] {
	return Either_Case(e,
		Left[L, U],
		func(r R) Either[L, U] { return Right[L](f(r)) })
}

// Either_BindLeft delegates a Left value to f; a Right value is carried over unchanged.
func Either_BindLeft[U, L, R any](e Either[L, R], f func(L) Either[U, R]) Either[U, R] {
	return Either_Case(e, f, Right[U, R])
}

// Either_BindRight delegates a Right value to f; a Left value is carried over unchanged.
func Either_BindRight[U, L, R any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	return Either_Case(e, Left[L, U], f)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

var _ Equatable[Either[int, string]] = Either[int, string]{}
var _ fmt.Stringer = Either[int, string]{}
