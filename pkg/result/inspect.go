//go:build !result_minimal && !result_noinspect

package result

// Inspect calls onOk with the success value and returns r unchanged.
func (r Result[T, E]) Inspect(onOk func(T)) Result[T, E] {
	if r.ok {
		onOk(r.value)
	}
	return r
}

// InspectErr calls onErr with the error and returns r unchanged.
func (r Result[T, E]) InspectErr(onErr func(E)) Result[T, E] {
	if !r.ok {
		onErr(r.err)
	}
	return r
}

func (v Void[E]) Inspect(onOk func()) Void[E] {
	if v.ok {
		onOk()
	}
	return v
}

func (v Void[E]) InspectErr(onErr func(E)) Void[E] {
	if !v.ok {
		onErr(v.err)
	}
	return v
}
