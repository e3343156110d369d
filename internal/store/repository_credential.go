package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/models"
)

// credentialRepository logs through the request scoped logger taken from
// the context of each call.
type credentialRepository struct {
	db *DB
}

// NewCredentialRepository returns a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB) CredentialRepository {
	return &credentialRepository{db: db}
}

func (c *credentialRepository) GetPasswordHash(ctx context.Context, username string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPasswordHashQuery(c.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.GetPasswordHash").Msg("error building query")
		return "", err
	}

	var hash string
	err = c.db.QueryRowContext(ctx, query, args...).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", c.storageError(ctx, "credentialRepository.GetPasswordHash", err)
	}

	return hash, nil
}

func (c *credentialRepository) AddUser(ctx context.Context, credential models.Credential) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAddUserQuery(c.db.builder, credential)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.AddUser").Msg("error building query")
		return false, err
	}

	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		// ON CONFLICT already covers duplicates; this catches backends
		// that still raise a constraint error.
		if c.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("username", credential.Username).Msg("username is already taken")
			return false, nil
		}
		return false, c.storageError(ctx, "credentialRepository.AddUser", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, c.storageError(ctx, "credentialRepository.AddUser", err)
	}

	return affected == 1, nil
}

func (c *credentialRepository) storageError(ctx context.Context, funcName string, err error) error {
	classification := c.db.errorClassificator.Classify(err)
	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Stringer("classification", classification).
		Msg("database operation failed")

	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
