package chain

import "github.com/ib-77/result/pkg/result"

type Chain[T, E any] struct {
	res result.Result[T, E]
}

func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return Start(result.Ok[T, E](v))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes functions that already return result.Result[T, E]
func (c Chain[T, E]) Then(onOk func(T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: onOk(c.res.Unwrap())}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: result.Ok[T, E](onOk(c.res.Unwrap()))}
}

// Validate fails the chain with reject(v) when valid(v) is false.
func (c Chain[T, E]) Validate(valid func(T) bool, reject func(T) E) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	v := c.res.Unwrap()
	if valid(v) {
		return c
	}
	return Chain[T, E]{res: result.Err[T](reject(v))}
}

// Recover replaces a failure with the result of onErr.
func (c Chain[T, E]) Recover(onErr func(E) result.Result[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	return Chain[T, E]{res: onErr(c.res.UnwrapErr())}
}

// RepeatUntil runs onOk at least once and keeps running it while the chain
// succeeds and until reports true for the new value.
func (c Chain[T, E]) RepeatUntil(onOk func(T) result.Result[T, E], until func(T) bool) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onOk)

		if c.res.IsErr() || !until(c.res.Unwrap()) {
			return c
		}
	}
}

// While runs onOk as long as the chain succeeds and cond holds.
func (c Chain[T, E]) While(onOk func(T) result.Result[T, E], cond func(T) bool) Chain[T, E] {
	for c.res.IsOk() && cond(c.res.Unwrap()) {
		c = c.Then(onOk)
	}
	return c
}

// Or returns the first successful chain among c and alternatives.
// If none succeeded, the first failure is returned.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsOk() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required.
// If all succeeded, the last one is returned.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.IsErr() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.res.UnwrapErr())
		}
		return c
	}

	if onOk != nil {
		onOk(c.res.Unwrap())
	}
	return c
}

// Finally collapses the chain to a final value
func Finally[T, E, U any](c Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	if c.res.IsOk() {
		return onOk(c.res.Unwrap())
	}
	return onErr(c.res.UnwrapErr())
}
