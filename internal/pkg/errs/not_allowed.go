package errs

import (
	"errors"
	"fmt"
)

// ErrOperationNotAllowed is the sentinel wrapped by every NotAllowedError.
// Use cases return it when the caller's role or the aggregate's current
// state forbids the requested operation.
var ErrOperationNotAllowed = errors.New("operation is not allowed")

// NotAllowedError reports a rejected operation together with the reason.
type NotAllowedError struct {
	Operation string
	Cause     error
}

// NewNotAllowedError creates a NotAllowedError for the named operation.
func NewNotAllowedError(operation string) *NotAllowedError {
	return &NotAllowedError{Operation: operation}
}

// NewNotAllowedErrorWithCause creates a NotAllowedError explaining why the operation was rejected.
func NewNotAllowedErrorWithCause(operation string, cause error) *NotAllowedError {
	return &NotAllowedError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *NotAllowedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrOperationNotAllowed, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrOperationNotAllowed, e.Operation)
}

func (e *NotAllowedError) Unwrap() error {
	return ErrOperationNotAllowed
}
