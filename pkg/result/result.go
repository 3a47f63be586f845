package result

import "fmt"

// Result holds either a success value of type T or an error of type E.
// Exactly one of them is meaningful, selected by IsOk; the other slot keeps
// its zero value. A Result is meant to be inspected, never silently dropped.
//
// The zero Result is a failure carrying the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a successful Result holding value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		ok:    true,
	}
}

// Err returns a failed Result holding err.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
		ok:  false,
	}
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r holds an error.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value. It terminates the process if r is a
// failure.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		fatal(unwrapOnErr)
	}
	return r.value
}

// UnwrapErr returns the error. It terminates the process if r is a success.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		fatal(unwrapErrOnOk)
	}
	return r.err
}

// Expect is Unwrap with msg as the diagnostic.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		fatal(msg)
	}
	return r.value
}

// ExpectErr is UnwrapErr with msg as the diagnostic.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		fatal(msg)
	}
	return r.err
}

// UnwrapOr returns the success value, or def if r is a failure.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value, or the result of fallback if r
// is a failure.
func (r Result[T, E]) UnwrapOrElse(fallback func() T) T {
	if r.ok {
		return r.value
	}
	return fallback()
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies onOk to the success value. A failure passes through with its
// error unchanged.
func Map[T, U, E any](r Result[T, E], onOk func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](onOk(r.value))
	}
	return Err[U](r.err)
}

// MapErr applies onErr to the error. A success passes through unchanged.
func MapErr[T, E, F any](r Result[T, E], onErr func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](onErr(r.err))
}

// AndThen calls onOk with the success value and returns its result.
// A failure short-circuits and is returned with its error unchanged.
func AndThen[T, U, E any](r Result[T, E], onOk func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return onOk(r.value)
	}
	return Err[U](r.err)
}
