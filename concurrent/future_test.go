package concurrent_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"martianoff/adt/concurrent"
	"martianoff/adt/go_interop"
)

var _ = Describe("future", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	})

	AfterEach(func() {
		cancel()
	})

	It("completes with the value of the task", func() {
		release := make(chan struct{})
		f := concurrent.Go(nil, func() (int, error) {
			<-release
			return 42, nil
		})
		Expect(f.IsCompleted()).To(BeFalse())

		close(release)
		Eventually(f.Done()).Should(BeClosed())
		v, err := f.Await(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(42))
	})

	It("completes with the error of the task", func() {
		boom := errors.New("boom")
		f := concurrent.Go(nil, func() (int, error) { return 0, boom })
		_, err := f.Await(ctx)
		Expect(err).To(MatchError(boom))
	})

	It("turns a panic into a failure", func() {
		f := concurrent.Go(nil, func() (string, error) { panic("exploded") })
		_, err := f.Await(ctx)
		Expect(err).To(MatchError("exploded"))
		Expect(err).To(BeAssignableToTypeOf(go_interop.PanicError{}))
	})

	It("stops waiting when the context ends", func() {
		f := concurrent.Go(nil, func() (int, error) {
			time.Sleep(time.Hour)
			return 0, nil
		})
		short, stop := context.WithTimeout(ctx, 10*time.Millisecond)
		defer stop()
		_, err := f.Await(short)
		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(f.IsCompleted()).To(BeFalse())
	})

	It("runs tasks on the given execution context", func() {
		pool := concurrent.NewFixedPoolEC(2)
		defer pool.Shutdown()

		var running, peak int32
		futures := make([]*concurrent.Future[int], 8)
		for i := range futures {
			futures[i] = concurrent.Go(pool, func() (int, error) {
				n := atomic.AddInt32(&running, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return i, nil
			})
		}
		values, err := concurrent.AwaitAll(ctx, futures...)
		Expect(err).ToNot(HaveOccurred())
		Expect(values).To(Equal([]int{0, 1, 2, 3, 4, 5, 6, 7}))
		Expect(atomic.LoadInt32(&peak)).To(BeNumerically("<=", 2))
	})

	Context("completed futures", func() {
		It("are immediately available", func() {
			ok := concurrent.Successful("done")
			Expect(ok.IsCompleted()).To(BeTrue())
			Expect(ok.Await(ctx)).To(Equal("done"))

			failed := concurrent.Failed[int](errors.New("nope"))
			Expect(failed.IsCompleted()).To(BeTrue())
			_, err := failed.Await(ctx)
			Expect(err).To(MatchError("nope"))
		})
	})

	Context("composition", func() {
		It("maps values", func() {
			f := concurrent.Map(concurrent.Successful(21), func(v int) string {
				return strconv.Itoa(v * 2)
			})
			Eventually(f.Done()).Should(BeClosed())
			Expect(f.Await(ctx)).To(Equal("42"))
		})

		It("chains futures", func() {
			f := concurrent.Then(concurrent.Successful(2), func(v int) *concurrent.Future[int] {
				return concurrent.Go(nil, func() (int, error) { return v * 10, nil })
			})
			Expect(f.Await(ctx)).To(Equal(20))
		})

		It("skips the continuation after a failure", func() {
			var called atomic.Bool
			f := concurrent.Then(concurrent.Failed[int](errors.New("first")), func(int) *concurrent.Future[int] {
				called.Store(true)
				return concurrent.Successful(0)
			})
			_, err := f.Await(ctx)
			Expect(err).To(MatchError("first"))
			Expect(called.Load()).To(BeFalse())
		})

		It("fails when the continuation panics", func() {
			f := concurrent.Then(concurrent.Successful(1), func(int) *concurrent.Future[int] {
				panic("continuation")
			})
			_, err := f.Await(ctx)
			Expect(err).To(MatchError("continuation"))
		})
	})

	Context("await all", func() {
		It("returns the first error", func() {
			boom := errors.New("boom")
			_, err := concurrent.AwaitAll(ctx,
				concurrent.Successful(1),
				concurrent.Failed[int](boom),
				concurrent.Go(nil, func() (int, error) {
					time.Sleep(time.Hour)
					return 0, nil
				}))
			Expect(err).To(MatchError(boom))
		})

		It("handles no futures", func() {
			values, err := concurrent.AwaitAll[int](ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(values).To(BeEmpty())
		})
	})
})
