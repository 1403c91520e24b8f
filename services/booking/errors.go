package booking

import (
	"errors"
	"fmt"
)

// Error kinds the workflow surfaces. Handlers map these to HTTP statuses;
// anything else is treated as a persistence failure.
const (
	KindValidation  = "validation"
	KindNotFound    = "not_found"
	KindConflict    = "conflict"
	KindForbidden   = "forbidden"
	KindPersistence = "persistence"
)

type WorkflowError struct {
	Kind    string
	Message string
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewValidationError(msg string) error {
	return &WorkflowError{Kind: KindValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &WorkflowError{Kind: KindNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &WorkflowError{Kind: KindConflict, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &WorkflowError{Kind: KindForbidden, Message: msg}
}

func NewPersistenceError(msg string, cause error) error {
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &WorkflowError{Kind: KindPersistence, Message: msg}
}

// IsKind reports whether err is a WorkflowError of the given kind.
func IsKind(err error, kind string) bool {
	var we *WorkflowError
	return errors.As(err, &we) && we.Kind == kind
}

// ErrKind returns the workflow error kind, or KindPersistence for untyped errors.
func ErrKind(err error) string {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we.Kind
	}
	return KindPersistence
}
