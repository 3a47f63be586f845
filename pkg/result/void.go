package result

import "fmt"

// Void is a Result without a success value: either the operation succeeded
// or it failed with an error of type E.
//
// The zero Void is a failure carrying the zero E.
type Void[E any] struct {
	err E
	ok  bool
}

// OkVoid returns a successful Void.
func OkVoid[E any]() Void[E] {
	return Void[E]{ok: true}
}

// ErrVoid returns a failed Void holding err.
func ErrVoid[E any](err E) Void[E] {
	return Void[E]{err: err}
}

func (v Void[E]) IsOk() bool {
	return v.ok
}

func (v Void[E]) IsErr() bool {
	return !v.ok
}

// Unwrap terminates the process if v is a failure and does nothing
// otherwise.
func (v Void[E]) Unwrap() {
	if !v.ok {
		fatal(unwrapOnErr)
	}
}

// UnwrapErr returns the error. It terminates the process if v is a success.
func (v Void[E]) UnwrapErr() E {
	if v.ok {
		fatal(unwrapErrOnOk)
	}
	return v.err
}

func (v Void[E]) Expect(msg string) {
	if !v.ok {
		fatal(msg)
	}
}

func (v Void[E]) ExpectErr(msg string) E {
	if v.ok {
		fatal(msg)
	}
	return v.err
}

// AndThen calls onOk if v is a success and returns its result.
func (v Void[E]) AndThen(onOk func() Void[E]) Void[E] {
	if v.ok {
		return onOk()
	}
	return v
}

func (v Void[E]) String() string {
	if v.ok {
		return "Ok()"
	}
	return fmt.Sprintf("Err(%v)", v.err)
}

// MapVoid calls onOk if v is a success and wraps the returned value.
func MapVoid[U, E any](v Void[E], onOk func() U) Result[U, E] {
	if v.ok {
		return Ok[U, E](onOk())
	}
	return Err[U](v.err)
}

// MapErrVoid applies onErr to the error of a failed v.
func MapErrVoid[E, F any](v Void[E], onErr func(E) F) Void[F] {
	if v.ok {
		return OkVoid[F]()
	}
	return ErrVoid(onErr(v.err))
}

// AndThenVoid calls onOk if v is a success and returns its result.
// A failure is carried over into the new result type.
func AndThenVoid[U, E any](v Void[E], onOk func() Result[U, E]) Result[U, E] {
	if v.ok {
		return onOk()
	}
	return Err[U](v.err)
}
