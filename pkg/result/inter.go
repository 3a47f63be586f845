package result

// Fallible is implemented by Result and Void.
type Fallible[E any] interface {
	// IsOk returns true if the operation succeeded
	IsOk() bool
	// IsErr returns true if the operation failed
	IsErr() bool
	// UnwrapErr returns the error of a failed operation
	UnwrapErr() E
}

var (
	_ Fallible[error] = Result[int, error]{}
	_ Fallible[error] = Void[error]{}
)
