package models

import (
	"errors"
	"fmt"
)

// Error codes returned by the data-access layer. The presentation layer
// switches on these to decide how to render a failure.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeStorage      = "STORAGE_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, id),
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

func NewInvalidInputError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewStorageError(err error) *AppError {
	return &AppError{
		Code:    CodeStorage,
		Message: "storage failure",
		Err:     err,
	}
}

// hasCode reports whether err is (or wraps) an AppError with the given code.
func hasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

func IsNotFound(err error) bool     { return hasCode(err, CodeNotFound) }
func IsConflict(err error) bool     { return hasCode(err, CodeConflict) }
func IsInvalidInput(err error) bool { return hasCode(err, CodeInvalidInput) }
func IsUnauthorized(err error) bool { return hasCode(err, CodeUnauthorized) }
func IsStorageError(err error) bool { return hasCode(err, CodeStorage) }
