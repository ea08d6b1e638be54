package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"

	"martianoff/adt/go_interop"
)

// Future is a value that becomes available once. It completes with either a
// value or an error and never changes afterwards.
type Future[T any] struct {
	done  go_interop.Signal
	once  *go_interop.Once
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		done: go_interop.NewSignal(),
		once: go_interop.NewOnce(),
	}
}

// complete stores the outcome. Only the first call has an effect.
func (f *Future[T]) complete(value T, err error) bool {
	return f.once.Do(func() {
		f.value = value
		f.err = err
		go_interop.CloseSignal(f.done)
	})
}

func (f *Future[T]) fail(r any) {
	var zero T
	f.complete(zero, go_interop.PanicToError(r))
}

// Go runs fn on ec and returns a future of its outcome. A panic in fn fails
// the future instead of crashing the worker.
func Go[T any](ec ExecutionContext, fn func() (T, error)) *Future[T] {
	if ec == nil {
		ec = GlobalEC()
	}
	f := newFuture[T]()
	ec.Execute(func() {
		go_interop.RunWithRecover(func() {
			f.complete(fn())
		}, f.fail)
	})
	return f
}

// Successful returns a future already completed with value.
func Successful[T any](value T) *Future[T] {
	f := newFuture[T]()
	f.complete(value, nil)
	return f
}

// Failed returns a future already completed with err.
func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.complete(zero, err)
	return f
}

// Done returns a channel closed when the future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsCompleted reports whether the future has an outcome, without blocking.
func (f *Future[T]) IsCompleted() bool {
	return go_interop.IsSignaled(f.done)
}

// Await blocks until the future completes or ctx ends. Ending ctx stops the
// wait only; the computation behind the future is not cancelled.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Map returns a future of fn applied to the value of f. Errors pass through.
func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return Then(f, func(v T) *Future[U] {
		return Successful(fn(v))
	})
}

// Then chains a future-returning continuation. The continuation runs on its
// own goroutine once f completes successfully, so it never occupies a pool
// worker while it waits.
func Then[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	out := newFuture[U]()
	go_interop.GoWithRecover(func() {
		go_interop.WaitSignal(f.done)
		if f.err != nil {
			var zero U
			out.complete(zero, f.err)
			return
		}
		next := fn(f.value)
		go_interop.WaitSignal(next.done)
		out.complete(next.value, next.err)
	}, out.fail)
	return out
}

// AwaitAll waits for every future and returns their values in order. The
// first error, or the end of ctx, aborts the wait.
func AwaitAll[T any](ctx context.Context, fs ...*Future[T]) ([]T, error) {
	values := make([]T, len(fs))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range fs {
		g.Go(func() error {
			v, err := f.Await(gctx)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
