// Package go_interop provides the Go runtime plumbing the data types build on:
// panic conversion, goroutine launch with recovery, completion signals and
// execution contexts for asynchronous combinators.
//
// This package is not needed for synchronous use of Either, Optional or Result:
//
//	import "martianoff/adt/go_interop"
//
// Most callers should use the concurrent package, which re-exports the parts
// that matter for futures.
package go_interop

import (
	"fmt"
	"sync"
)

// === Concurrency Primitives ===

// Signal is an empty channel used for signaling completion.
type Signal = chan struct{}

// NewSignal creates a new signal channel.
func NewSignal() Signal {
	return make(chan struct{})
}

// CloseSignal closes a signal channel to broadcast completion.
func CloseSignal(s Signal) {
	close(s)
}

// WaitSignal blocks until the signal is closed.
func WaitSignal(s Signal) {
	<-s
}

// IsSignaled reports whether the signal has been closed, without blocking.
func IsSignaled(s Signal) bool {
	select {
	case <-s:
		return true
	default:
		return false
	}
}

// Once wraps sync.Once and reports which call won.
type Once struct {
	once sync.Once
}

// NewOnce creates a new Once.
func NewOnce() *Once {
	return &Once{}
}

// Do executes the function only once. Returns true if this call executed the function.
func (o *Once) Do(f func()) bool {
	executed := false
	o.once.Do(func() {
		f()
		executed = true
	})
	return executed
}

// WaitGroup wraps sync.WaitGroup.
type WaitGroup struct {
	wg sync.WaitGroup
}

// NewWaitGroup creates a new WaitGroup.
func NewWaitGroup() *WaitGroup {
	return &WaitGroup{}
}

// Add adds delta to the WaitGroup counter.
func (w *WaitGroup) Add(delta int) {
	w.wg.Add(delta)
}

// Done decrements the WaitGroup counter by one.
func (w *WaitGroup) Done() {
	w.wg.Done()
}

// Wait blocks until the WaitGroup counter is zero.
func (w *WaitGroup) Wait() {
	w.wg.Wait()
}

// GoWithRecover launches a goroutine with panic recovery.
// If the function panics, the recovery function is called with the panic value.
func GoWithRecover(f func(), onPanic func(any)) {
	go RunWithRecover(f, onPanic)
}

// RunWithRecover runs f on the current goroutine and hands any panic value to onPanic.
func RunWithRecover(f func(), onPanic func(any)) {
	defer func() {
		if r := recover(); r != nil {
			onPanic(r)
		}
	}()
	f()
}

// === Error Handling ===

// PanicError wraps a panic value as an error.
type PanicError struct {
	Message string
}

func (e PanicError) Error() string {
	return e.Message
}

// PanicToError converts a panic value to an error.
// If the value is already an error, it returns it directly.
// If it's a string, it wraps it in a PanicError.
// Otherwise, the value is formatted with %v.
func PanicToError(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	if s, ok := r.(string); ok {
		return PanicError{Message: s}
	}
	return PanicError{Message: fmt.Sprintf("%v", r)}
}
