package go_interop

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ExecutionContext abstracts where/how async tasks execute.
type ExecutionContext interface {
	Execute(task func())
}

// UnboundedExecutionContext spawns a new goroutine for each task.
type UnboundedExecutionContext struct{}

func (UnboundedExecutionContext) Execute(task func()) {
	go task()
}

// FixedPoolExecutionContext runs at most n tasks at a time. Execute blocks
// while all n slots are busy.
type FixedPoolExecutionContext struct {
	slots *semaphore.Weighted
	size  int64
}

// NewFixedPoolEC creates a new FixedPoolExecutionContext with n slots.
func NewFixedPoolEC(n int) *FixedPoolExecutionContext {
	if n < 1 {
		n = 1
	}
	return &FixedPoolExecutionContext{
		slots: semaphore.NewWeighted(int64(n)),
		size:  int64(n),
	}
}

func (ec *FixedPoolExecutionContext) Execute(task func()) {
	// Acquire with a background context only fails on a negative weight.
	_ = ec.slots.Acquire(context.Background(), 1)
	go func() {
		defer ec.slots.Release(1)
		task()
	}()
}

// Shutdown waits until every task started so far has finished. The pool
// stays usable afterwards.
func (ec *FixedPoolExecutionContext) Shutdown() {
	_ = ec.slots.Acquire(context.Background(), ec.size)
	ec.slots.Release(ec.size)
}

// SingleThreadExecutionContext runs one task at a time, in submission order
// for a single submitting goroutine.
type SingleThreadExecutionContext struct {
	*FixedPoolExecutionContext
}

// NewSingleThreadEC creates a new SingleThreadExecutionContext.
func NewSingleThreadEC() *SingleThreadExecutionContext {
	return &SingleThreadExecutionContext{FixedPoolExecutionContext: NewFixedPoolEC(1)}
}

var globalEC atomic.Pointer[ExecutionContext]

func init() {
	var ec ExecutionContext = UnboundedExecutionContext{}
	globalEC.Store(&ec)
}

// GlobalEC returns the global default ExecutionContext.
func GlobalEC() ExecutionContext {
	return *globalEC.Load()
}

// SetGlobalEC sets the global default ExecutionContext. A nil ec restores the
// unbounded default.
func SetGlobalEC(ec ExecutionContext) {
	if ec == nil {
		ec = UnboundedExecutionContext{}
	}
	globalEC.Store(&ec)
}

// Spawn runs task on the global execution context.
func Spawn(task func()) {
	GlobalEC().Execute(task)
}
