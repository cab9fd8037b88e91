package setools

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Error is the error type returned by all packages in this module. Every
// value can be refined with a message or used to wrap a lower-level error
// while still matching the original sentinel with [errors.Is].
type Error interface {
	error
	WithMessage(message string) Error
	Wrap(err error) Error
}

type baseSetoolsError string

const rootError = baseSetoolsError("")

var ErrUnexpectedEndOfInput = rootError.WithMessage("Unexpected end of input")
var ErrInvalidBackReference = rootError.WithMessage("Invalid back-reference")
var ErrInvalidEncoding = rootError.WithMessage("Invalid text encoding")
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrIOFailed = rootError.WithMessage("Input/output error")
var ErrCorruptedData = rootError.WithMessage("Data corrupted")

func (e baseSetoolsError) Error() string {
	return string(e)
}

func (e baseSetoolsError) WithMessage(message string) Error {
	return customError{
		message:       message,
		originalError: e,
	}
}

func (e baseSetoolsError) Wrap(err error) Error {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customError) Error() string {
	return e.message
}

func (e customError) WithMessage(message string) Error {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customError) Wrap(err error) Error {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customError) Unwrap() error {
	return e.originalError
}
