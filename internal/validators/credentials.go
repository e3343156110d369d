package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/api-activity/models"
)

// Field name constants used to specify which fields should be validated.
// They are also the field names reported in [ValidationError].
const (
	// FieldUsername targets the account name of a registration or login attempt.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"

	// FieldNum targets the side length path parameter of the square endpoint.
	FieldNum = "num"
)

// MaxUsernameLength is the width of the users.username column in characters.
const MaxUsernameLength = 255

// CheckUsername returns a [*ValidationError] on [FieldUsername] when username
// is empty, longer than [MaxUsernameLength] characters, not valid UTF-8 or
// contains a NUL character. Such names cannot be stored by every backend.
func CheckUsername(username string) error {
	switch {
	case username == "":
		return NewValidationError(FieldUsername, ErrEmptyUsername)
	case !utf8.ValidString(username) || strings.ContainsRune(username, 0):
		return NewValidationError(FieldUsername, ErrUsernameEncoding)
	case utf8.RuneCountInString(username) > MaxUsernameLength:
		return NewValidationError(FieldUsername, ErrUsernameTooLong)
	default:
		return nil
	}
}

// CredentialsValidator implements the Validator interface for
// [models.Credentials].
//
// Fields are checked in the order given (username before password by
// default) and the first failure is returned as a [*ValidationError].
type CredentialsValidator struct {
	// maxPasswordBytes limits the password length; 0 means unlimited.
	maxPasswordBytes int
}

// NewCredentialsValidator constructs a CredentialsValidator. A positive
// maxPasswordBytes rejects longer passwords with [ErrPasswordTooLong].
func NewCredentialsValidator(maxPasswordBytes int) Validator {
	return &CredentialsValidator{maxPasswordBytes: maxPasswordBytes}
}

// Validate accepts models.Credentials and *models.Credentials.
// Returns ErrUnsupportedType for anything else.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := CheckUsername(credentials.Username); err != nil {
				return err
			}
		case FieldPassword:
			if credentials.Password == "" {
				return NewValidationError(FieldPassword, ErrEmptyPassword)
			}
			if v.maxPasswordBytes > 0 && len(credentials.Password) > v.maxPasswordBytes {
				return NewValidationError(FieldPassword, ErrPasswordTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
