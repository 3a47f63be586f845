//go:build !result_minimal && !result_noandor

package result

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAndOr(t *testing.T) {
	t.Parallel()

	ok1 := ok(1)
	ok2 := ok(2)
	err1 := fail("fail")

	out1 := And(ok1, ok2)
	require.True(t, out1.IsOk())
	require.Equal(t, 2, out1.Unwrap())

	out2 := And(err1, ok2)
	require.True(t, out2.IsErr())
	require.Equal(t, "fail", out2.UnwrapErr().message)

	out3 := err1.Or(ok2)
	require.True(t, out3.IsOk())
	require.Equal(t, 2, out3.Unwrap())

	out4 := ok1.Or(ok2)
	require.True(t, out4.IsOk())
	require.Equal(t, 1, out4.Unwrap())
}

func TestAnd_ChangesType(t *testing.T) {
	t.Parallel()

	res := And(ok(1), Ok[string, testError]("next"))
	require.Equal(t, "next", res.Unwrap())

	res = And(fail("first"), Ok[string, testError]("next"))
	require.Equal(t, "first", res.UnwrapErr().message)
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	out := fail("fail").OrElse(func() Result[int, testError] { return ok(123) })
	require.True(t, out.IsOk())
	require.Equal(t, 123, out.Unwrap())

	out2 := ok(42).OrElse(func() Result[int, testError] {
		t.Fatal("alternative called on success")
		return ok(0)
	})
	require.Equal(t, 42, out2.Unwrap())
}

func TestVoidAndOr(t *testing.T) {
	t.Parallel()

	okV := OkVoid[string]()
	errV := ErrVoid("fail")

	require.Equal(t, ErrVoid("other"), okV.And(ErrVoid("other")))
	require.Equal(t, errV, errV.And(okV))
	require.Equal(t, okV, errV.Or(okV))
	require.Equal(t, okV, okV.Or(ErrVoid("other")))
	require.Equal(t, okV, errV.OrElse(OkVoid[string]))
	require.Equal(t, 7, AndVoid(okV, Ok[int, string](7)).Unwrap())
	require.Equal(t, "fail", AndVoid(errV, Ok[int, string](7)).UnwrapErr())
}
