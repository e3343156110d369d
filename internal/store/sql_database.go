package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/migrations"
)

// DB wraps a *sql.DB together with the dialect specific pieces the
// repositories need: the squirrel placeholder format, the goose dialect and
// the driver error classifier.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	gooseDialect       string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.gooseDialect); err != nil {
		return err
	}

	db.logger.Info().Str("dialect", db.gooseDialect).Msg("database schema is up to date")
	return nil
}
