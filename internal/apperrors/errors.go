package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("entity not found")

// ErrPartialCollection indicates that a batch operation referenced ids that could not all be resolved.
var ErrPartialCollection = errors.New("some entities in the collection were not found")

// ErrIDMismatch indicates that the id in the route does not match the id carried by the payload.
var ErrIDMismatch = errors.New("id does not match the entity")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a write violated a relationship constraint in the store.
var ErrConflict = errors.New("relationship constraint violated")

// ErrNoUnitOfWork indicates that a mutation was staged without a unit of work in context.
var ErrNoUnitOfWork = errors.New("no unit of work in context")

// AppError carries an HTTP-style status code alongside the wrapped cause.
// It is used for store failures that are not one of the sentinels above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound wraps ErrNotFound with the entity kind, e.g. "Appointment not found".
func NotFound(kind string) error {
	return fmt.Errorf("%s: %w", kind, ErrNotFound)
}

// PartialCollection wraps ErrPartialCollection naming the entity kind that was being deleted.
func PartialCollection(kind string) error {
	return fmt.Errorf("%w: %ss to delete", ErrPartialCollection, kind)
}
