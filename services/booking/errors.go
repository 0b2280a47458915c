package booking

import (
	"errors"
	"fmt"
)

// Error codes for failures the engine must surface explicitly. Ineligible
// offers are not errors; they degrade to a zero discount with a reason code
// on the pricing result.
const (
	CodeNotFound     = "notFound"
	CodePrecondition = "preconditionFailed"
	CodeConflict     = "conflict"
)

type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(format string, args ...any) error {
	return &ServiceError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewPreconditionError(format string, args ...any) error {
	return &ServiceError{Code: CodePrecondition, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...any) error {
	return &ServiceError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func hasCode(err error, code string) bool {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// IsNotFound reports whether err is a NotFound failure.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsPrecondition reports whether err is a Precondition failure.
func IsPrecondition(err error) bool { return hasCode(err, CodePrecondition) }

// IsConflict reports whether err is a commit-time capacity conflict.
func IsConflict(err error) bool { return hasCode(err, CodeConflict) }
