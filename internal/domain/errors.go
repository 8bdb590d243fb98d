package domain

import (
	"errors"
	"fmt"
)

// NotFoundError covers both a genuinely missing resource and a caller
// without visibility on it. The two cases are deliberately
// indistinguishable so that existence of other users' data is never
// leaked.
type NotFoundError struct {
	Resource string
	ID       string
}

// NewNotFoundError creates a NotFoundError for the given resource and identifier.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// BadRequestError signals a violated domain invariant: a bad time
// range, an unavailable item, or a booking that was already decided.
type BadRequestError struct {
	Message string
}

// NewBadRequestError creates a BadRequestError with the given message.
func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// UnsupportedStateError signals a state-filter token outside the
// recognized set.
type UnsupportedStateError struct {
	State string
}

// NewUnsupportedStateError creates an UnsupportedStateError for the given token.
func NewUnsupportedStateError(state string) *UnsupportedStateError {
	return &UnsupportedStateError{State: state}
}

func (e *UnsupportedStateError) Error() string {
	return "Unknown state: " + e.State
}

// ConflictError signals a concurrent modification detected by the
// storage layer.
type ConflictError struct {
	Message string
}

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsBadRequest reports whether err is a BadRequestError.
func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}

// IsUnsupportedState reports whether err is an UnsupportedStateError.
func IsUnsupportedState(err error) bool {
	var target *UnsupportedStateError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
