// Package futures provides an implementation of a Future which represents an asynchronous computation.
// A Future can be created and then passed around and read by multiple consumers.  This is the key difference
// between a Future and using a channel for an asynchronous computation as a channel value can only be read once.
//
// Try observes a Future and produces a second Future that always completes with a results.Result describing
// how the first one settled, so a consumer never has to handle a failed Future.
package futures

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/abevier/failable/results"
)

// FutureFunc is the function signature required to create a Future via FromFunc
type FutureFunc[T any] func() (T, error)

// Future is a structure that represents an asynchronous computation.
// A Future should be created by calling New() or using the FromFunc convience function.
// Once a future has been created it can be settled exactly once.  The first settlement
// wins and all others are silently ignored.
//
// The functions Complete, Fail, Reject and Cancel all settle a future.
// Complete is used in the success case
// Fail is used for signaling that the Future failed with an error
// Reject is used for signaling that the Future failed with an arbitrary reason which need not be an error
// Cancel is used to signal that the asynchronous computation was canceled
//
// Get is used to extract the value and an error from the Future.  If the future has not been
// settled calling Get will block until it settles or until the context is canceled.
// Get can be called by multiple go routines simultaneously and they will all receive the same value.
// Then registers callbacks that run once the Future settles.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	res results.Result[T, any]

	m        sync.Mutex
	handlers []func(results.Result[T, any])
}

// New creates a new unsettled Future that will eventually contain a value of type T which can be anything.
// This future must be manually settled by calling Complete, Fail, Reject, or Cancel
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// FromFunc creates a new unsettled Future that will eventually contain the return value of the provided function.
// The provided function is run asynchronously when this function is invoked.  An error returned by the function
// fails the Future, and a panic rejects it with the recovered value.
func FromFunc[T any](do FutureFunc[T]) *Future[T] {
	f := New[T]()

	go func() {
		f.settle(results.Call[T](do))
	}()

	return f
}

// Complete completes this Future with the provided value.  If the future has already been settled this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.settle(results.Success[T, any](value))
}

// Cancel fails this Future with the ErrCanceled error.  If the future has already been settled this call is ignored.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

// Fail fails this Future with the provided error.  If the future has already been settled this call is ignored.
func (f *Future[T]) Fail(err error) {
	f.Reject(err)
}

// Reject fails this Future with the provided reason, which is kept exactly as given.
// If the future has already been settled this call is ignored.
func (f *Future[T]) Reject(reason any) {
	f.settle(results.Failure[T](reason))
}

func (f *Future[T]) settle(res results.Result[T, any]) {
	if !atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		return
	}

	f.res = res
	close(f.completed)

	// handlers registered after the close above observe the closed channel and run themselves
	f.m.Lock()
	handlers := f.handlers
	f.handlers = nil
	f.m.Unlock()

	dispatch(handlers, res)
}

// dispatch runs every handler even if some of them panic. The first panic is raised again once all have run.
func dispatch[T any](handlers []func(results.Result[T, any]), res results.Result[T, any]) {
	var (
		panicked bool
		reason   any
	)

	for _, h := range handlers {
		r := results.Catch(func() struct{} {
			h(res)
			return struct{}{}
		})
		if r.IsFailure() && !panicked {
			panicked, reason = true, r.Err()
		}
	}

	if panicked {
		panic(reason)
	}
}

// Done returns a channel that is closed once this Future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.completed
}

// Get retrieves the value of this Future.  If the future is not yet settled this call will block until the future is
// settled or until the provided context is done, in which case the context's error is returned.
// A Future rejected with a reason that is not an error reports a *RejectionError.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		val, reason, ok := f.res.Unwrap()
		if ok {
			return val, nil
		}
		return val, asError(reason)

	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}

// Then registers one callback for each way this Future can settle.  Exactly one of them is called, exactly once.
// If the Future has already settled the callback runs immediately on the calling goroutine, otherwise it runs on
// the goroutine that settles the Future.  Neither is ever called if the Future never settles.
// A callback that panics does not keep the other callbacks registered on the Future from running; the panic is
// raised again on the settling goroutine after all of them have run.
func (f *Future[T]) Then(onFulfilled func(T), onRejected func(any)) {
	if onFulfilled == nil || onRejected == nil {
		panic("futures: Then requires both callbacks")
	}

	f.onSettled(func(res results.Result[T, any]) {
		val, reason, ok := res.Unwrap()
		if ok {
			onFulfilled(val)
			return
		}
		onRejected(reason)
	})
}

func (f *Future[T]) onSettled(h func(results.Result[T, any])) {
	f.m.Lock()

	select {
	case <-f.completed:
		f.m.Unlock()
		h(f.res)
		return
	default:
	}

	f.handlers = append(f.handlers, h)
	f.m.Unlock()
}
