package store

import "errors"

// Sentinel errors returned by state storages to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStateNotFound is returned by Get when no value is stored under the
	// requested user and key.
	ErrStateNotFound = errors.New("state value was not found")

	// ErrEmptySecureValue is returned when an empty value is written to the
	// secure tier. Enclaves cannot hold zero-length data.
	ErrEmptySecureValue = errors.New("secure tier cannot store an empty value")

	// ErrUnknownTier is returned when a key definition names a tier that has
	// no storage attached.
	ErrUnknownTier = errors.New("unknown storage tier")

	// ErrUnsupportedDriver is returned when the disk tier is configured with a
	// driver other than sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the disk tier when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a state row fails.
	ErrScanningRow = errors.New("failed to scan state row")
)
