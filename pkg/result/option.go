//go:build !result_minimal && !result_nooption

package result

// Ok returns the success value and true, or the zero T and false.
func (r Result[T, E]) Ok() (T, bool) {
	return r.value, r.ok
}

// Err returns the error and true, or the zero E and false.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.ok
}

func (v Void[E]) Err() (E, bool) {
	return v.err, !v.ok
}
