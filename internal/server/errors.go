// Package server provides the HTTP REST API for the founder blueprint service.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStartupNotFound indicates the startup does not exist
type ErrStartupNotFound struct {
	StartupID uuid.UUID
}

func (e *ErrStartupNotFound) Error() string {
	return fmt.Sprintf("startup not found: %s", e.StartupID)
}

// ErrForbidden indicates the startup belongs to a different account
type ErrForbidden struct{}

func (e *ErrForbidden) Error() string {
	return "you do not have access to this startup"
}

// ErrBlueprintNotFound indicates no blueprint has been generated yet
type ErrBlueprintNotFound struct {
	StartupID uuid.UUID
}

func (e *ErrBlueprintNotFound) Error() string {
	return fmt.Sprintf("no blueprint exists for startup: %s", e.StartupID)
}

// ErrTaskNotFound indicates the legal task ID is not present in the blueprint
type ErrTaskNotFound struct {
	TaskID string
}

func (e *ErrTaskNotFound) Error() string {
	return fmt.Sprintf("task not found in blueprint: %s", e.TaskID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrForbidden:
		return http.StatusForbidden
	case *ErrUserNotFound, *ErrStartupNotFound, *ErrBlueprintNotFound, *ErrTaskNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
