package cli

import "errors"

// ErrInvalidOption is wrapped by the ExitError returned for any token that
// is not a recognized option or is missing its value.
var ErrInvalidOption = errors.New("Invalid option")

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string // complete diagnostic, ready for stderr
	Err     error  // classification, one of the package or app sentinels
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
