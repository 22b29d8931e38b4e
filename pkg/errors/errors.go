package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Common application errors
var (
	ErrInvalidCredentials = NewForbiddenError("invalid credentials")
	ErrEmailExists        = NewConflictError("user", "email already exists")
	ErrBookmarkNotFound   = NewNotFoundError("bookmark", "bookmark not found")
	ErrUserNotFound       = NewNotFoundError("user", "user not found")
	ErrUnauthorized       = NewUnauthorizedError("unauthorized")
	ErrInternal           = NewInternalError("internal server error", nil)
)

// HTTPStatuser is implemented by errors that know their HTTP status code
type HTTPStatuser interface {
	HTTPStatus() int
}

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// HTTPStatus returns 400
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// UnauthorizedError represents a missing, malformed or expired credential
type UnauthorizedError struct {
	Message string
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// Error implements the error interface
func (e *UnauthorizedError) Error() string {
	return e.Message
}

// HTTPStatus returns 401
func (e *UnauthorizedError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// Is makes every UnauthorizedError match ErrUnauthorized
func (e *UnauthorizedError) Is(target error) bool {
	_, ok := target.(*UnauthorizedError)
	return ok
}

// ForbiddenError represents an authenticated caller that may not perform the action
type ForbiddenError struct {
	Message string
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

// Error implements the error interface
func (e *ForbiddenError) Error() string {
	return e.Message
}

// HTTPStatus returns 403
func (e *ForbiddenError) HTTPStatus() int {
	return http.StatusForbidden
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns 404
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// Is matches another NotFoundError for the same resource
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && t.Resource == e.Resource
}

// ConflictError represents a uniqueness violation
type ConflictError struct {
	Resource string
	Message  string
}

// NewConflictError creates a new conflict error
func NewConflictError(resource, message string) *ConflictError {
	return &ConflictError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// HTTPStatus returns 409. The HTTP adapter may downgrade it to 403 for legacy clients.
func (e *ConflictError) HTTPStatus() int {
	return http.StatusConflict
}

// Is matches another ConflictError for the same resource
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	return ok && t.Resource == e.Resource
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns 500
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// StatusOf returns the HTTP status carried by err, or 500 when err carries none.
func StatusOf(err error) int {
	var s HTTPStatuser
	if stderrors.As(err, &s) {
		return s.HTTPStatus()
	}
	return http.StatusInternalServerError
}
