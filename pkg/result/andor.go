//go:build !result_minimal && !result_noandor

package result

// And returns other if r is a success. A failure is carried over into the
// result type of other.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.ok {
		return other
	}
	return Err[U](r.err)
}

// Or returns r if it is a success, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns r if it is a success, otherwise the result of alternative.
func (r Result[T, E]) OrElse(alternative func() Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return alternative()
}

// AndVoid returns other if v is a success.
func AndVoid[U, E any](v Void[E], other Result[U, E]) Result[U, E] {
	if v.ok {
		return other
	}
	return Err[U](v.err)
}

func (v Void[E]) And(other Void[E]) Void[E] {
	if v.ok {
		return other
	}
	return v
}

func (v Void[E]) Or(other Void[E]) Void[E] {
	if v.ok {
		return v
	}
	return other
}

func (v Void[E]) OrElse(alternative func() Void[E]) Void[E] {
	if v.ok {
		return v
	}
	return alternative()
}
