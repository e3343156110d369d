package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/api-activity/internal/crypto"
	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/internal/store"
	"github.com/MKhiriev/api-activity/internal/validators"
	"github.com/MKhiriev/api-activity/models"
)

// dummyPassword is hashed once and verified against whenever the requested
// user does not exist, so both failure paths spend one bcrypt comparison.
const dummyPassword = "api-activity dummy password"

// authService is the concrete implementation of AuthService.
type authService struct {
	// credentialRepository stores username to password hash records.
	credentialRepository store.CredentialRepository

	// hasher produces and checks the stored password hashes.
	hasher crypto.PasswordHasher

	// dummyHash is the lazily computed hash of dummyPassword.
	dummyHash func() string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the given repository and
// hasher. The returned service is safe for concurrent use.
func NewAuthService(credentialRepository store.CredentialRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		credentialRepository: credentialRepository,
		hasher:               hasher,
		dummyHash: sync.OnceValue(func() string {
			hash, err := hasher.Hash(dummyPassword)
			if err != nil {
				logger.Err(err).Msg("error computing dummy password hash")
			}
			return hash
		}),
		logger: logger,
	}
}

// Register hashes the password and inserts the credential if the username
// is free. Nothing is stored when hashing fails.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(credentials.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return validators.NewValidationError(validators.FieldPassword, validators.ErrPasswordTooLong)
	}
	if err != nil {
		log.Err(err).Object("credentials", credentials).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	inserted, err := a.credentialRepository.AddUser(ctx, models.Credential{
		Username:     credentials.Username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Object("credentials", credentials).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}
	if !inserted {
		log.Info().Object("credentials", credentials).Msg("username is already taken")
		return ErrUsernameTaken
	}

	log.Info().Object("credentials", credentials).Msg("user registered")
	return nil
}

// Authenticate looks up the stored hash and verifies the password against it.
//
// Returns the username on success or:
//   - ErrAuthenticationFailed for an unknown user, a wrong password or
//     missing credentials.
//   - A wrapped store.ErrStorageUnavailable if the lookup fails.
func (a *authService) Authenticate(ctx context.Context, credentials models.Credentials) (string, error) {
	log := logger.FromContext(ctx)

	if validators.CheckUsername(credentials.Username) != nil || credentials.Password == "" {
		a.hasher.Verify(credentials.Password, a.dummyHash())
		log.Debug().Object("credentials", credentials).Msg("missing or malformed credentials")
		return "", ErrAuthenticationFailed
	}

	hash, err := a.credentialRepository.GetPasswordHash(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(credentials.Password, a.dummyHash())
		log.Debug().Object("credentials", credentials).Msg("unknown user")
		return "", ErrAuthenticationFailed
	}
	if err != nil {
		log.Err(err).Object("credentials", credentials).Msg("password hash lookup failed")
		return "", fmt.Errorf("password hash lookup failed: %w", err)
	}

	if !a.hasher.Verify(credentials.Password, hash) {
		log.Debug().Object("credentials", credentials).Msg("wrong password")
		return "", ErrAuthenticationFailed
	}

	return credentials.Username, nil
}
