package std

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"martianoff/adt/adterr"
)

func successResult(n int) Result[int, *adterr.Error] {
	return Ok(n)
}

func failureResult() Result[int, *adterr.Error] {
	return Failure[int](adterr.New("error message"))
}

func TestResultState(t *testing.T) {
	success := successResult(10)
	assert.True(t, success.IsSuccess())
	assert.False(t, success.IsError())
	v, ok := success.Value()
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	_, failed := success.Err()
	assert.False(t, failed)

	failure := failureResult()
	assert.False(t, failure.IsSuccess())
	assert.True(t, failure.IsError())
	err, failed := failure.Err()
	require.True(t, failed)
	assert.Equal(t, "error message", err.Message)
	assert.Equal(t, 3, failure.GetValueOrDefault(3))

	var zero Result[int, error]
	assert.True(t, zero.IsSuccess())
	assert.Equal(t, "Ok (0)", zero.String())
}

func TestResultFailureContract(t *testing.T) {
	assert.PanicsWithError(t, "[ContractError] errors must always contain an error message", func() {
		Fail[int]("   ")
	})
	assert.PanicsWithError(t, "[ContractError] errors must always contain an error message", func() {
		Failure[int](errors.New(""))
	})
	assert.PanicsWithError(t, "[ContractError] an error object must always be specified in the error case", func() {
		Failure[int, *adterr.Error](nil)
	})
	assert.PanicsWithError(t, "[ContractError] an error object must always be specified in the error case", func() {
		Failure[int, error](nil)
	})
}

func TestResultSelect(t *testing.T) {
	onOk := func(int) string { return "success" }
	onErr := func(*adterr.Error) string { return "error" }
	assert.Equal(t, "success", Result_Select(successResult(10), onOk, onErr))
	assert.Equal(t, "error", Result_Select(failureResult(), onOk, onErr))
}

func TestResultHandleSuccess(t *testing.T) {
	t.Run("Delegate returns Result, success", func(t *testing.T) {
		result := Result_HandleSuccess(successResult(10), func(v int) Result[int, *adterr.Error] {
			return Ok(666)
		})
		assert.True(t, result.IsSuccess())
		assert.Equal(t, Ok(666), result)
	})

	t.Run("Delegate returns Result, failure", func(t *testing.T) {
		result := Result_HandleSuccess(failureResult(), func(v int) Result[string, *adterr.Error] {
			t.Fatalf("must not run")
			return Ok("")
		})
		assert.True(t, result.IsError())
		assert.Equal(t, "Error (error message)", result.String())
	})

	t.Run("Composes", func(t *testing.T) {
		inc := func(v int) Result[int, *adterr.Error] { return Ok(v + 1) }
		result := Result_HandleSuccess(Result_HandleSuccess(successResult(1), inc), inc)
		assert.Equal(t, "Ok (3)", result.String())
	})

	t.Run("First failure short-circuits", func(t *testing.T) {
		original := adterr.New("first")
		steps := 0
		step := func(v int) Result[int, *adterr.Error] {
			steps++
			if v > 1 {
				return Failure[int](original)
			}
			return Ok(v + 1)
		}
		result := Result_HandleSuccess(Result_HandleSuccess(Result_HandleSuccess(successResult(1), step), step), step)
		err, failed := result.Err()
		require.True(t, failed)
		assert.Same(t, original, err)
		assert.Equal(t, 2, steps)
	})

	t.Run("Delegate returns value", func(t *testing.T) {
		result := Result_HandleSuccessValue(successResult(10), func(v int) int { return 555 })
		assert.True(t, result.IsSuccess())
		assert.Equal(t, Ok(555), result)
		assert.Equal(t, 555, Result_Select(result, identity[int], func(*adterr.Error) int { return 0 }))

		failed := Result_HandleSuccessValue(failureResult(), strconv.Itoa)
		assert.Equal(t, "Error (error message)", failed.String())
	})
}

func TestResultHandleFailure(t *testing.T) {
	t.Run("Delegate returns Result", func(t *testing.T) {
		result := failureResult().HandleFailure(func(*adterr.Error) Result[int, *adterr.Error] { return Ok(999) })
		assert.True(t, result.IsSuccess())
		assert.Equal(t, 999, Result_Select(result, identity[int], func(*adterr.Error) int { return 0 }))
	})

	t.Run("Delegate returns value", func(t *testing.T) {
		result := failureResult().HandleFailureValue(func(*adterr.Error) int { return 999 })
		assert.True(t, result.IsSuccess())
		assert.Equal(t, 999, result.GetValueOrDefault(0))
	})

	t.Run("Success is untouched", func(t *testing.T) {
		result := successResult(1).HandleFailureValue(func(*adterr.Error) int { return 999 })
		assert.Equal(t, Ok(1), result)
	})
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "Ok (10)", successResult(10).String())
	assert.Equal(t, "Ok (NULL)", Success[*int, error](nil).String())
	assert.Equal(t, "Ok (NULL)", Success[error, error](nil).String())
	assert.Equal(t, "Error (error message)", failureResult().String())
	assert.Equal(t, "Error (boom)", Failure[int](fmt.Errorf("boom")).String())
}

func TestResultEqual(t *testing.T) {
	assert.True(t, Ok(1).Equal(Ok(1)))
	assert.False(t, Ok(1).Equal(Ok(2)))
	assert.True(t, Fail[int]("x").Equal(Fail[int]("x")))
	assert.False(t, Fail[int]("x").Equal(Ok(0)))
}

func TestFromPairAndTry(t *testing.T) {
	assert.Equal(t, "Ok (12)", FromPair(strconv.Atoi("12")).String())
	assert.True(t, FromPair(strconv.Atoi("x")).IsError())

	t.Run("Try captures a panic", func(t *testing.T) {
		result := Try(func() (int, error) {
			panic("exploded")
		})
		err, failed := result.Err()
		require.True(t, failed)
		var caught *adterr.CaughtPanicError
		require.ErrorAs(t, err, &caught)
		assert.Equal(t, "exploded", caught.Message)
		assert.Equal(t, "exploded", caught.Value)
		assert.Equal(t, "Error (exploded)", result.String())
		assert.Contains(t, fmt.Sprintf("%+v", caught), "std.Try")
	})

	t.Run("Try keeps panicked errors", func(t *testing.T) {
		sentinel := errors.New("sentinel")
		result := Try(func() (string, error) { panic(sentinel) })
		err, _ := result.Err()
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, sentinel, pkgerrors.Cause(err))
	})

	t.Run("Try returns values and errors", func(t *testing.T) {
		assert.Equal(t, "Ok (x)", Try(func() (string, error) { return "x", nil }).String())
		assert.Equal(t, "Error (bad)", Try(func() (string, error) { return "", errors.New("bad") }).String())
	})
}
