package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataProvided is matched by every [*ValidationError].
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrUsernameEncoding = errors.New("username must be valid UTF-8 without NUL characters")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrNotANumber       = errors.New("value is not a non-negative integer")
	ErrNumberOutOfRange = errors.New("value is out of range")
)

// ValidationError reports user-correctable input, naming the offending field.
type ValidationError struct {
	Field string
	Err   error
}

// NewValidationError wraps err as a [*ValidationError] on field.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes every ValidationError match [ErrInvalidDataProvided].
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDataProvided
}
