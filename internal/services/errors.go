package services

import "errors"

// Sentinel errors returned by the services. Handlers translate these into
// HTTP statuses; anything else is treated as an internal failure.
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("already exists")
	ErrValidation         = errors.New("validation failed")
)

// validationError carries a user-facing reason while still matching
// ErrValidation under errors.Is.
type validationError struct {
	reason string
}

func (e validationError) Error() string { return e.reason }

func (e validationError) Is(target error) bool { return target == ErrValidation }

// Validation wraps a rejection reason as a validation error.
func Validation(reason string) error {
	return validationError{reason: reason}
}
