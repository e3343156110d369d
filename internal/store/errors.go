package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no credential exists for the
	// requested username.
	ErrUserNotFound = errors.New("user not found")

	// ErrStorageUnavailable wraps every failure of the underlying database
	// (lost connection, timeout, broken schema, ...). It is a service error,
	// never attributed to user input.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Low-level errors returned while preparing or opening the database.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// storage driver name.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)
