package std

import "martianoff/adt/concurrent"

// Result_SelectAsync runs success or failure and returns its future.
func Result_SelectAsync[V, T any, E error](r Result[T, E], success func(T) *concurrent.Future[V], failure func(E) *concurrent.Future[V]) *concurrent.Future[V] {
	if r.failed {
		return failure(r.err)
	}
	return success(r.value)
}

// Result_HandleSuccessAsync chains an asynchronous fallible step. A failure
// completes immediately with its error untouched.
func Result_HandleSuccessAsync[V, T any, E error](r Result[T, E], fn func(T) *concurrent.Future[Result[V, E]]) *concurrent.Future[Result[V, E]] {
	if r.failed {
		return concurrent.Successful(Result[V, E]{err: r.err, failed: true})
	}
	return fn(r.value)
}

// HandleFailureAsync replaces a failure with the Result produced by fn.
func (r Result[T, E]) HandleFailureAsync(fn func(E) *concurrent.Future[Result[T, E]]) *concurrent.Future[Result[T, E]] {
	if r.failed {
		return fn(r.err)
	}
	return concurrent.Successful(r)
}

// FutureResult_Select is Result_SelectAsync for a Result that is itself pending.
func FutureResult_Select[V, T any, E error](f *concurrent.Future[Result[T, E]], success func(T) *concurrent.Future[V], failure func(E) *concurrent.Future[V]) *concurrent.Future[V] {
	return concurrent.Then(f, func(r Result[T, E]) *concurrent.Future[V] {
		return Result_SelectAsync(r, success, failure)
	})
}

// FutureResult_HandleSuccess is Result_HandleSuccessAsync for a pending Result.
func FutureResult_HandleSuccess[V, T any, E error](f *concurrent.Future[Result[T, E]], fn func(T) *concurrent.Future[Result[V, E]]) *concurrent.Future[Result[V, E]] {
	return concurrent.Then(f, func(r Result[T, E]) *concurrent.Future[Result[V, E]] {
		return Result_HandleSuccessAsync(r, fn)
	})
}

// FutureResult_HandleFailure is HandleFailureAsync for a pending Result.
func FutureResult_HandleFailure[T any, E error](f *concurrent.Future[Result[T, E]], fn func(E) *concurrent.Future[Result[T, E]]) *concurrent.Future[Result[T, E]] {
	return concurrent.Then(f, func(r Result[T, E]) *concurrent.Future[Result[T, E]] {
		return r.HandleFailureAsync(fn)
	})
}
