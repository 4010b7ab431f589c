package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a missing record and a record owned by
	// another user. Callers must not be able to tell the two apart.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint is violated:
	// a second bookmark with the same (owner, url), or a second user
	// with the same email.
	ErrDuplicate = errors.New("record already exists")

	// ErrValidation marks client-correctable input errors.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials is returned on login with a wrong email or
	// password. It never says which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Invalid wraps ErrValidation with a field-specific reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
