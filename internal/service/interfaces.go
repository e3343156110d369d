package service

import (
	"context"

	"github.com/MKhiriev/api-activity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper

// AuthService registers users and authenticates per-request credentials.
type AuthService interface {
	// Register stores a new credential for credentials.Username.
	//
	// Returns a *validators.ValidationError for missing or malformed input,
	// ErrUsernameTaken for a duplicate and an error wrapping
	// store.ErrStorageUnavailable when the store cannot be reached.
	Register(ctx context.Context, credentials models.Credentials) error

	// Authenticate checks credentials against the stored hash and returns
	// the authenticated username. Unknown users and wrong passwords both
	// yield ErrAuthenticationFailed.
	Authenticate(ctx context.Context, credentials models.Credentials) (string, error)
}

// DemoService implements the unauthenticated demonstration endpoints.
type DemoService interface {
	Hello(ctx context.Context) models.Greeting

	// Square parses num as a non-negative int64 and returns its square.
	// A side whose area does not fit in int64 is a ValidationError on num.
	Square(ctx context.Context, num string) (models.SquareArea, error)

	// Echo returns arg1 and arg2 unchanged; nil means "not supplied".
	Echo(ctx context.Context, arg1, arg2 *string) models.EchoArgs
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
