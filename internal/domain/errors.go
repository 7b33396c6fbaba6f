package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the common ancestor of every domain validation error.
// Boundaries match on it to classify an error as a bad request without
// enumerating each specific failure.
var ErrValidation = errors.New("validation failed")

// Specific validation errors shared by the domain entities. Each wraps
// ErrValidation so errors.Is works on both the specific and generic form.
var (
	// ErrEmptyUserID is returned when a user or task is missing its owner ID.
	ErrEmptyUserID = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)

	// ErrEmptyEmail is returned when an email address is missing.
	ErrEmptyEmail = fmt.Errorf("%w: email cannot be empty", ErrValidation)

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrValidation)

	// ErrEmptyPassword is returned when no credential is present on a user.
	ErrEmptyPassword = fmt.Errorf("%w: password cannot be empty", ErrValidation)

	// ErrPasswordTooShort is returned when a password is below the minimum length.
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's 72-byte input limit.
	ErrPasswordTooLong = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)

	// ErrEmptyTaskID is returned when a task is missing its ID.
	ErrEmptyTaskID = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)

	// ErrEmptyTitle is returned when a task title is missing or blank.
	ErrEmptyTitle = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
)
