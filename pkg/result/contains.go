//go:build !result_minimal && !result_nocontains

package result

// IsOkAnd reports whether r is a success whose value satisfies pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErrAnd reports whether r is a failure whose error satisfies pred.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// IsOkAnd reports whether v is a success and pred holds.
func (v Void[E]) IsOkAnd(pred func() bool) bool {
	return v.ok && pred()
}

func (v Void[E]) IsErrAnd(pred func(E) bool) bool {
	return !v.ok && pred(v.err)
}

// Contains reports whether r is a success holding value.
func Contains[T comparable, E any](r Result[T, E], value T) bool {
	return r.ok && r.value == value
}

// ContainsErr reports whether r is a failure holding err.
func ContainsErr[T any, E comparable](r Result[T, E], err E) bool {
	return !r.ok && r.err == err
}

func ContainsErrVoid[E comparable](v Void[E], err E) bool {
	return !v.ok && v.err == err
}
