package result

import (
	"fmt"
	"io"
	"os"
)

const (
	unwrapOnErr   = "unwrap called on Result::Err()"
	unwrapErrOnOk = "unwrap_err called on Result::Ok()"

	fatalExitCode = 2
)

// Replaced by tests only.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// fatal reports a usage violation and terminates the process.
// Deferred calls do not run.
func fatal(msg string) {
	fmt.Fprintln(stderr, msg)
	exit(fatalExitCode)
}
