package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/api-activity/internal/validators"
	"github.com/MKhiriev/api-activity/models"
)

// AuthValidationService validates registration input before it reaches the
// wrapped AuthService, so invalid input never touches the store.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

// NewAuthValidationService returns a wrapper rejecting passwords longer than
// maxPasswordBytes (0 disables the limit).
func NewAuthValidationService(maxPasswordBytes int) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(maxPasswordBytes),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, credentials models.Credentials) error {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return fmt.Errorf("error during credentials validation before registration: %w", err)
	}

	return v.inner.Register(ctx, credentials)
}

// Authenticate is passed through: malformed credentials are an
// authentication failure, not a validation error.
func (v *AuthValidationService) Authenticate(ctx context.Context, credentials models.Credentials) (string, error) {
	return v.inner.Authenticate(ctx, credentials)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
