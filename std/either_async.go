package std

import "martianoff/adt/concurrent"

// The async combinators wait only on the future returned by the caller's
// mapping function. The untouched side completes immediately.

// Either_SelectLeftAsync maps a Left value through an asynchronous function.
func Either_SelectLeftAsync[U, L, R any](e Either[L, R], f func(L) *concurrent.Future[U]) *concurrent.Future[Either[U, R]] {
	return Either_Case(e,
		func(l L) *concurrent.Future[Either[U, R]] { return concurrent.Map(f(l), Left[U, R]) },
		func(r R) *concurrent.Future[Either[U, R]] { return concurrent.Successful(Right[U](r)) })
}

// Either_SelectRightAsync maps a Right value through an asynchronous function.
func Either_SelectRightAsync[U, L, R any](e Either[L, R], f func(R) *concurrent.Future[U]) *concurrent.Future[Either[L, U]] {
	return Either_Case(e,
		func(l L) *concurrent.Future[Either[L, U]] { return concurrent.Successful(Left[L, U](l)) },
		func(r R) *concurrent.Future[Either[L, U]] { return concurrent.Map(f(r), Right[L, U]) })
}

// Either_BindLeftAsync delegates a Left value to an asynchronous function.
func Either_BindLeftAsync[U, L, R any](e Either[L, R], f func(L) *concurrent.Future[Either[U, R]]) *concurrent.Future[Either[U, R]] {
	return Either_Case(e,
		f,
		func(r R) *concurrent.Future[Either[U, R]] { return concurrent.Successful(Right[U](r)) })
}

// Either_BindRightAsync delegates a Right value to an asynchronous function.
func Either_BindRightAsync[U, L, R any](e Either[L, R], f func(R) *concurrent.Future[Either[L, U]]) *concurrent.Future[Either[L, U]] {
	return Either_Case(e,
		func(l L) *concurrent.Future[Either[L, U]] { return concurrent.Successful(Left[L, U](l)) },
		f)
}
