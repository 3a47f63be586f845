//go:build !result_minimal && !result_noflatten

package result

// Flatten removes one level of nesting. The outer error wins when the outer
// result failed; otherwise the inner result is returned as is.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.ok {
		return r.value
	}
	return Err[T](r.err)
}

func FlattenVoid[E any](r Result[Void[E], E]) Void[E] {
	if r.ok {
		return r.value
	}
	return ErrVoid(r.err)
}
