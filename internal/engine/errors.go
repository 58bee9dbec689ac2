package engine

import (
	"errors"
	"fmt"

	"shoplist-api/internal/storage"
)

// ValidationError reports a command rejected before any persistence call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a mutation targeting a record absent from storage.
type NotFoundError struct {
	Kind string
	Err  error
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failure reported by the storage collaborator.
// The in-memory snapshot is left at its last-known-good state.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// wrapStorageError classifies an error returned by the storage collaborator.
func wrapStorageError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrListNotFound):
		return &NotFoundError{Kind: "list", Err: err}
	case errors.Is(err, storage.ErrItemNotFound):
		return &NotFoundError{Kind: "item", Err: err}
	default:
		return &PersistenceError{Op: op, Err: err}
	}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}
