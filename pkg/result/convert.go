package result

import (
	"errors"

	"github.com/dsnet/try"
)

// ErrNilError stands in for the missing error of a failure holding a nil
// error, such as the zero Result, when converted back to Go's error idiom.
var ErrNilError = errors.New("result: failure with nil error")

// FromPair converts the (value, error) pair returned by ordinary Go
// functions into a Result.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// Unpack is the inverse of FromPair. A failure always yields a non-nil
// error.
func Unpack[T any](r Result[T, error]) (T, error) {
	if r.ok {
		return r.value, nil
	}
	return r.value, nonNil(r.err)
}

func FromVoidErr(err error) Void[error] {
	if err != nil {
		return ErrVoid(err)
	}
	return OkVoid[error]()
}

func VoidErr(v Void[error]) error {
	if v.ok {
		return nil
	}
	return nonNil(v.err)
}

func nonNil(err error) error {
	if err == nil {
		return ErrNilError
	}
	return err
}

// Catch runs f and returns its value as a success. f may call try.E and
// try.E1 from github.com/dsnet/try; the first error raised that way is
// returned as the failure instead.
func Catch[T any](f func() T) Result[T, error] {
	return FromPair(catch(f))
}

func catch[T any](f func() T) (value T, err error) {
	defer try.Handle(&err)
	return f(), nil
}
