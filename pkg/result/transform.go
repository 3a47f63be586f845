//go:build !result_minimal && !result_notransform

package result

// MapOr applies onOk to the success value, or returns def if r is a failure.
func MapOr[T, U, E any](r Result[T, E], def U, onOk func(T) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return def
}

// MapOrElse applies onOk to the success value, or returns the result of
// onErr if r is a failure.
func MapOrElse[T, U, E any](r Result[T, E], onErr func() U, onOk func(T) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr()
}

func MapOrVoid[U, E any](v Void[E], def U, onOk func() U) U {
	if v.ok {
		return onOk()
	}
	return def
}

func MapOrElseVoid[U, E any](v Void[E], onErr func() U, onOk func() U) U {
	if v.ok {
		return onOk()
	}
	return onErr()
}
