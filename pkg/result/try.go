package result

import "fmt"

// propagated carries a failure from Try or Check to the deferred Handle
// of the enclosing function.
type propagated[E any] struct {
	err E
}

func (p propagated[E]) Error() string {
	return fmt.Sprintf("result: failure %v propagated without a matching deferred Handle", p.err)
}

// Try returns the success value of r. If r is a failure, Try exits the
// calling function, whose deferred Handle turns the error into its
// return value:
//
//	func parseAndDivide(a, b string) (res result.Result[int, string]) {
//		defer result.Handle(&res)
//		x := result.Try(parse(a))
//		y := result.Try(parse(b))
//		return divide(x, y)
//	}
//
// The error type of r must match that of the enclosing function's Result.
// Convert with MapErr first if it does not.
func Try[T, E any](r Result[T, E]) T {
	if !r.ok {
		panic(propagated[E]{err: r.err})
	}
	return r.value
}

// Check is Try for results whose success value is not needed.
func Check[E any](f Fallible[E]) {
	if f.IsErr() {
		panic(propagated[E]{err: f.UnwrapErr()})
	}
}

// Handle stores a failure raised by Try or Check in *res.
// It must be deferred directly by the function calling Try. A Try in a
// helper without its own deferred Handle exits the helper and its callers
// up to the nearest Handle, which then returns the failure.
// Any other panic, including a failure with a different error type,
// keeps unwinding.
func Handle[T, E any](res *Result[T, E]) {
	switch p := recover().(type) {
	case nil:
	case propagated[E]:
		*res = Err[T](p.err)
	default:
		panic(p)
	}
}

// HandleVoid is Handle for functions returning Void.
func HandleVoid[E any](res *Void[E]) {
	switch p := recover().(type) {
	case nil:
	case propagated[E]:
		*res = ErrVoid(p.err)
	default:
		panic(p)
	}
}
