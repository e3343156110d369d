// Package store implements the credential store: durable username to
// password-hash records kept in PostgreSQL or SQLite.
//
// Uniqueness of usernames is enforced by the database (primary key), so
// concurrent registrations of one username can never produce two records.
// Backend failures are reported as [ErrStorageUnavailable] and are never
// confused with [ErrUserNotFound].
package store

import (
	"context"

	"github.com/MKhiriev/api-activity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository persists [models.Credential] records.
type CredentialRepository interface {
	// GetPasswordHash returns the stored hash for username. It has no side
	// effects. Returns [ErrUserNotFound] if there is no such user and an error
	// wrapping [ErrStorageUnavailable] if the backend cannot be queried.
	GetPasswordHash(ctx context.Context, username string) (string, error)

	// AddUser inserts credential only if its username is not taken yet and
	// reports whether the insert happened. A duplicate is (false, nil).
	// Backend failures wrap [ErrStorageUnavailable].
	AddUser(ctx context.Context, credential models.Credential) (bool, error)
}

// ErrorClassificator inspects driver errors of one database backend.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed if retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique/primary key
	// constraint violation.
	IsUniqueViolation(err error) bool
}
