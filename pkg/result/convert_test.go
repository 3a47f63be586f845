package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/dsnet/try"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

func TestFromPair_Unpack(t *testing.T) {
	t.Parallel()

	res := FromPair(strconv.Atoi("12"))
	require.True(t, res.IsOk())
	require.Equal(t, 12, res.Unwrap())

	v, err := Unpack(res)
	require.NoError(t, err)
	require.Equal(t, 12, v)

	res = FromPair(0, errNotFound)
	require.True(t, res.IsErr())

	v, err = Unpack(res)
	require.ErrorIs(t, err, errNotFound)
	require.Zero(t, v)
}

func TestFromVoidErr_VoidErr(t *testing.T) {
	t.Parallel()

	require.True(t, FromVoidErr(nil).IsOk())
	require.NoError(t, VoidErr(FromVoidErr(nil)))

	failed := FromVoidErr(errNotFound)
	require.True(t, failed.IsErr())
	require.ErrorIs(t, VoidErr(failed), errNotFound)
}

func TestCatch(t *testing.T) {
	t.Parallel()

	res := Catch(func() int {
		n := try.E1(strconv.Atoi("12"))
		return n * 2
	})
	require.True(t, res.IsOk())
	require.Equal(t, 24, res.Unwrap())

	reached := false
	res = Catch(func() int {
		n := try.E1(strconv.Atoi("twelve"))
		reached = true
		return n
	})
	require.True(t, res.IsErr())
	require.False(t, reached)

	var numErr *strconv.NumError
	require.ErrorAs(t, res.UnwrapErr(), &numErr)
}

func TestCatch_PlainError(t *testing.T) {
	t.Parallel()

	res := Catch(func() string {
		try.E(errNotFound)
		return "unreachable"
	})
	require.ErrorIs(t, res.UnwrapErr(), errNotFound)
}

func TestUnpack_FailureWithNilErrorStaysFailure(t *testing.T) {
	t.Parallel()

	var zero Result[int, error]
	_, err := Unpack(zero)
	require.ErrorIs(t, err, ErrNilError)

	_, err = Unpack(Err[int, error](nil))
	require.ErrorIs(t, err, ErrNilError)

	roundTrip := FromPair(Unpack(Err[int, error](nil)))
	require.True(t, roundTrip.IsErr())

	var zeroVoid Void[error]
	require.ErrorIs(t, VoidErr(zeroVoid), ErrNilError)
	require.ErrorIs(t, VoidErr(ErrVoid[error](nil)), ErrNilError)
	require.NoError(t, VoidErr(OkVoid[error]()))
}
