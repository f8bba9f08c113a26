// Package results provides Result, a value that holds either the outcome of a successful computation
// or the value it failed with, along with adapters that run a function and capture its outcome.
//
// A Result is decided by its discriminant, never by inspecting its payloads. A success may carry a nil
// value and a failure may carry a nil error; IsSuccess and IsFailure are the only way to tell them apart.
package results

import "fmt"

// Result is either a success holding a value of type T or a failure holding an error of type E.
// The zero Result is a success holding the zero value of T.
//
// A Result cannot be modified once constructed. Copies share nothing mutable with the original
// beyond whatever T and E themselves reference.
type Result[T any, E any] struct {
	failed bool
	val    T
	err    E
}

// Success returns a successful Result carrying val exactly as given.
func Success[T any, E any](val T) Result[T, E] {
	return Result[T, E]{val: val}
}

// Failure returns a failed Result carrying err exactly as given. A nil err still produces a failure.
func Failure[T any, E any](err E) Result[T, E] {
	return Result[T, E]{failed: true, err: err}
}

// New converts a conventional (value, error) pair into a Result. The Result is a failure when err is non-nil.
func New[T any](val T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](val)
}

func (r Result[T, E]) IsSuccess() bool {
	return !r.failed
}

func (r Result[T, E]) IsFailure() bool {
	return r.failed
}

// Value returns the value of a successful Result, or the zero value of T for a failure.
func (r Result[T, E]) Value() T {
	return r.val
}

// Err returns the error of a failed Result, or the zero value of E for a success.
func (r Result[T, E]) Err() E {
	return r.err
}

// Unwrap returns both payloads and the discriminant. ok is true for a success.
func (r Result[T, E]) Unwrap() (val T, err E, ok bool) {
	return r.val, r.err, !r.failed
}

func (r Result[T, E]) String() string {
	if r.failed {
		return fmt.Sprintf("failure(%v)", r.err)
	}
	return fmt.Sprintf("success(%v)", r.val)
}
