package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnauthenticated    = errors.New("You must be logged in to perform this action")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTooManyAttempts    = errors.New("too many failed login attempts, try again later")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")

	ErrTourNotFound     = errors.New("tour not found")
	ErrToursUnavailable = errors.New("failed to retrieve tours")
	ErrTourWriteFailed  = errors.New("failed to save tour")
	ErrValidation       = errors.New("validation failed")
)

// RoleError reports a resolved user whose role is insufficient.
type RoleError struct {
	Required Role
	Actual   Role
}

func (e *RoleError) Error() string {
	return fmt.Sprintf("You must have %s role to perform this action", e.Required)
}

func (e *RoleError) Unwrap() error { return ErrForbidden }

// ValidationError lists the field problems found in a write input.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
