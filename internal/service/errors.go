package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// Validation codes double as message keys for the form re-render.
const (
	CodeUsernameTooShort  = "username_too_short"
	CodeUsernameTooLong   = "username_too_long"
	CodePasswordTooShort  = "password_too_short"
	CodePasswordTooLong   = "password_too_long"
	CodeGameFieldRequired = "game_field_required"
)

var (
	ErrUsernameTooShort  = &ValidationError{Field: "username", Code: CodeUsernameTooShort}
	ErrUsernameTooLong   = &ValidationError{Field: "username", Code: CodeUsernameTooLong}
	ErrPasswordTooShort  = &ValidationError{Field: "password", Code: CodePasswordTooShort}
	ErrPasswordTooLong   = &ValidationError{Field: "password", Code: CodePasswordTooLong}
	ErrGameFieldRequired = &ValidationError{Code: CodeGameFieldRequired}
)

// ValidationError describes rejected form input. Limit carries the length
// bound that was violated, when there is one.
type ValidationError struct {
	Field string
	Code  string
	Limit int
}

func (e *ValidationError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("%s: %s (limit %d)", e.Field, e.Code, e.Limit)
	}
	if e.Field == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Code)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Is matches any ValidationError with the same code, so callers can compare
// against the package sentinels regardless of Limit.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code
}
