//go:build !result_minimal && !result_noextract

package result

// UnwrapOrDefault returns the success value, or the zero T if r is a failure.
func (r Result[T, E]) UnwrapOrDefault() T {
	if r.ok {
		return r.value
	}
	var zero T
	return zero
}
