package std

import (
	"fmt"
	"reflect"

	"martianoff/adt/adterr"
)

// Result is the outcome of a fallible step: a value of type T on success or an
// error of type E on failure. A failure always carries a non-nil error with a
// non-blank message. The zero value is a success holding the zero T.
type Result[T any, E error] struct {
	value  T
	err    E
	failed bool
}

// Success returns a successful Result holding v.
func Success[T any, E error](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Failure returns a failed Result holding err. A nil err or one with a blank
// message is a contract violation.
func Failure[T any, E error](err E) Result[T, E] {
	if isNil(err) {
		panic(adterr.NewContractError("an error object must always be specified in the error case"))
	}
	if adterr.IsBlank(err.Error()) {
		panic(adterr.NewContractError("errors must always contain an error message"))
	}
	return Result[T, E]{err: err, failed: true}
}

// Ok returns a successful Result with the plain *adterr.Error failure type.
func Ok[T any](v T) Result[T, *adterr.Error] {
	return Success[T, *adterr.Error](v)
}

// Fail returns a failed Result carrying an *adterr.Error with message.
func Fail[T any](message string) Result[T, *adterr.Error] {
	return Failure[T](adterr.New(message))
}

// FromPair converts a Go (value, error) return into a Result.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](v)
}

// Try runs fn and captures its outcome. A panic becomes a failure holding an
// *adterr.CaughtPanicError.
func Try[T any](fn func() (T, error)) (res Result[T, error]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T, error](adterr.Caught(r))
		}
	}()
	return FromPair(fn())
}

func (r Result[T, E]) IsSuccess() bool {
	return !r.failed
}

func (r Result[T, E]) IsError() bool {
	return r.failed
}

// Value returns the success value and whether r succeeded.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, !r.failed
}

// Err returns the failure and whether r failed.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, r.failed
}

func (r Result[T, E]) GetValueOrDefault(defaultValue T) T {
	if r.failed {
		return defaultValue
	}
	return r.value
}

// HandleFailure replaces a failure with the Result returned by fn.
func (r Result[T, E]) HandleFailure(fn func(E) Result[T, E]) Result[T, E] {
	if r.failed {
		return fn(r.err)
	}
	return r
}

// HandleFailureValue recovers a failure into a success holding fn's value.
func (r Result[T, E]) HandleFailureValue(fn func(E) T) Result[T, E] {
	if r.failed {
		return Success[T, E](fn(r.err))
	}
	return r
}

func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.failed != other.failed {
		return false
	}
	if r.failed {
		return Equal(r.err, other.err)
	}
	return Equal(r.value, other.value)
}

// String renders "Ok (<value>)" or "Error (<message>)". Log parsers depend on
// this format.
func (r Result[T, E]) String() string {
	if r.failed {
		return "Error (" + r.err.Error() + ")"
	}
	if isNil(r.value) {
		return "Ok (NULL)"
	}
	return fmt.Sprintf("Ok (%v)", r.value)
}

// Result_Select returns onSuccess applied to the value or onFail applied to the error.
func Result_Select[V, T any, E error](r Result[T, E], onSuccess func(T) V, onFail func(E) V) V {
	if r.failed {
		return onFail(r.err)
	}
	return onSuccess(r.value)
}

// Result_HandleSuccess chains a fallible step. A failure short-circuits and
// its error propagates untouched.
func Result_HandleSuccess[V, T any, E error](r Result[T, E], fn func(T) Result[V, E]) Result[V, E] {
	if r.failed {
		return Result[V, E]{err: r.err, failed: true}
	}
	return fn(r.value)
}

// Result_HandleSuccessValue maps the success value.
func Result_HandleSuccessValue[V, T any, E error](r Result[T, E], fn func(T) V) Result[V, E] {
	if r.failed {
		return Result[V, E]{err: r.err, failed: true}
	}
	return Success[V, E](fn(r.value))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

var _ Equatable[Result[int, error]] = Result[int, error]{}
var _ fmt.Stringer = Result[int, error]{}
