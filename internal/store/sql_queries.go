package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/api-activity/models"
)

const (
	usersTable         = "users"
	usernameColumn     = "username"
	passwordHashColumn = "password_hash"
)

// buildGetPasswordHashQuery builds
//
//	SELECT password_hash FROM users WHERE username = ?
func buildGetPasswordHashQuery(builder sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := builder.
		Select(passwordHashColumn).
		From(usersTable).
		Where(sq.Eq{usernameColumn: username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildAddUserQuery builds an insert-if-absent statement. A duplicate username
// affects zero rows instead of failing, on both PostgreSQL and SQLite.
func buildAddUserQuery(builder sq.StatementBuilderType, credential models.Credential) (string, []any, error) {
	query, args, err := builder.
		Insert(usersTable).
		Columns(usernameColumn, passwordHashColumn).
		Values(credential.Username, credential.PasswordHash).
		Suffix("ON CONFLICT (" + usernameColumn + ") DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
