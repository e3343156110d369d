package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification tells whether a failed credential query is worth
// repeating. It is logged next to every [ErrStorageUnavailable].
type ErrorClassification int

const (
	// NonRetryable is the classification of every error not known to be
	// transient, including constraint violations.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, rolled back
	// transactions, a server that is starting up or a busy SQLite file.
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE carried by pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports SQLSTATE classes 08 (connection exception), 40
// (transaction rollback), 53 (insufficient resources) and 57 (operator
// intervention) as [Retryable]. Errors without a SQLSTATE are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	if code == "" {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	default:
		return NonRetryable
	}
}

// IsUniqueViolation reports whether err carries SQLSTATE 23505. The insert
// already uses ON CONFLICT DO NOTHING so this only fires for a conflict on a
// constraint other than the primary key.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}
