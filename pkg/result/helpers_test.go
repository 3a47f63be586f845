package result

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type testError struct {
	message string
}

func ok(v int) Result[int, testError] {
	return Ok[int, testError](v)
}

func fail(message string) Result[int, testError] {
	return Err[int](testError{message: message})
}

func divide(a, b int) Result[int, string] {
	if b == 0 {
		return Err[int]("division by zero")
	}
	return Ok[int, string](a / b)
}

type exitCode int

// requireFatal runs f with the exit hook replaced and checks that f
// terminated with want as the diagnostic. Tests calling it must not be
// parallel.
func requireFatal(t *testing.T, want string, f func()) {
	t.Helper()

	var buf bytes.Buffer
	stderr, exit = &buf, func(code int) { panic(exitCode(code)) }
	defer func() {
		stderr, exit = os.Stderr, os.Exit
	}()

	code := func() (code exitCode) {
		defer func() {
			code, _ = recover().(exitCode)
		}()
		f()
		return -1
	}()

	require.Equal(t, exitCode(fatalExitCode), code, "expected the process to exit")
	require.Equal(t, want+"\n", buf.String())
}
