package futures

import (
	"context"

	"github.com/abevier/failable/results"
)

// Try observes f and returns a new Future that completes with a results.Result once f settles.
// If f is completed with a value the Result is a success holding that value.  If f is failed, rejected, or canceled
// the Result is a failure holding the reason exactly as f received it.
//
// The returned Future is never failed.  Try does not start, cancel, or wait on f; if f never settles, neither does
// the returned Future.
func Try[T any](f *Future[T]) *Future[results.Result[T, any]] {
	out := New[results.Result[T, any]]()

	f.Then(
		func(val T) {
			out.Complete(results.Success[T, any](val))
		},
		func(reason any) {
			out.Complete(results.Failure[T](reason))
		},
	)

	return out
}

// TryGet waits for f to settle and returns the outcome as a results.Result.
// The error is non-nil only when ctx is done first, and says nothing about f itself.
func TryGet[T any](ctx context.Context, f *Future[T]) (results.Result[T, any], error) {
	return Try(f).Get(ctx)
}
