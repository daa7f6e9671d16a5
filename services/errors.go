package services

import "github.com/pkg/errors"

var (
	// ErrValidation marks empty or unusable input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a user or post that has no document.
	ErrNotFound = errors.New("not found")
	// ErrAuthenticationFailed marks a username and email that do not match.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrUserExists marks a signup for a username that is already taken.
	ErrUserExists = errors.New("user already exists")
)

func validationError(msg string) error {
	return errors.Wrap(ErrValidation, msg)
}
