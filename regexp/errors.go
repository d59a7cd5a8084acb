package regexp

import (
	"errors"
)

const (
	msgNilArgument    = "pattern and subject must not be nil"
	msgInvalidPattern = "invalid regular expression"
)

// ErrInvalidArgument matches every *InvalidArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError is returned for absent inputs and for patterns that
// fail to compile. Cause holds the compilation error in the latter case.
type InvalidArgumentError struct {
	Message string
	Cause   error
}

// NewInvalidArgument returns an InvalidArgumentError without a cause.
func NewInvalidArgument(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message}
}

// WrapInvalidArgument returns an InvalidArgumentError carrying cause.
func WrapInvalidArgument(message string, cause error) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message, Cause: cause}
}

func (e *InvalidArgumentError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Cause
}

// Is reports true for ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
