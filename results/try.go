package results

// Catch invokes fn once on the calling goroutine and returns its return value as a success.
// If fn panics, the panic is recovered and the returned Result is a failure holding the value
// passed to panic, unchanged.
func Catch[R any](fn func() R) (res Result[R, any]) {
	if fn == nil {
		panic("results: nil function")
	}

	returned := false
	defer func() {
		if !returned {
			res = Failure[R](recover())
		}
	}()

	v := fn()
	returned = true
	return Success[R, any](v)
}

// Catch1 is Catch for a function of one argument.
func Catch1[A any, R any](fn func(A) R, a A) Result[R, any] {
	if fn == nil {
		panic("results: nil function")
	}
	return Catch(func() R { return fn(a) })
}

// Catch2 is Catch for a function of two arguments.
func Catch2[A any, B any, R any](fn func(A, B) R, a A, b B) Result[R, any] {
	if fn == nil {
		panic("results: nil function")
	}
	return Catch(func() R { return fn(a, b) })
}

// Catch3 is Catch for a function of three arguments.
func Catch3[A any, B any, C any, R any](fn func(A, B, C) R, a A, b B, c C) Result[R, any] {
	if fn == nil {
		panic("results: nil function")
	}
	return Catch(func() R { return fn(a, b, c) })
}

// Call invokes fn once on the calling goroutine. A non-nil error returned by fn produces a failure
// holding that error. A panic produces a failure holding the recovered value. Anything else is a
// success holding the returned value, even when that value is nil.
func Call[R any](fn func() (R, error)) (res Result[R, any]) {
	if fn == nil {
		panic("results: nil function")
	}

	returned := false
	defer func() {
		if !returned {
			res = Failure[R](recover())
		}
	}()

	v, err := fn()
	returned = true
	if err != nil {
		return Failure[R, any](err)
	}
	return Success[R, any](v)
}

// Call1 is Call for a function of one argument.
func Call1[A any, R any](fn func(A) (R, error), a A) Result[R, any] {
	if fn == nil {
		panic("results: nil function")
	}
	return Call(func() (R, error) { return fn(a) })
}

// Call2 is Call for a function of two arguments.
func Call2[A any, B any, R any](fn func(A, B) (R, error), a A, b B) Result[R, any] {
	if fn == nil {
		panic("results: nil function")
	}
	return Call(func() (R, error) { return fn(a, b) })
}

// Call3 is Call for a function of three arguments.
func Call3[A any, B any, C any, R any](fn func(A, B, C) (R, error), a A, b B, c C) Result[R, any] {
	if fn == nil {
		panic("results: nil function")
	}
	return Call(func() (R, error) { return fn(a, b, c) })
}
