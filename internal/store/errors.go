package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateEntry is returned when an insert violates the
	// UNIQUE(title, username) constraint of the credentials table. The check
	// is made by the database engine atomically with the insert attempt,
	// never by a prior read.
	ErrDuplicateEntry = errors.New("username already exists for this title")

	// ErrCredentialNotFound is returned when a read, update or delete targets
	// a credential record that does not exist. For updates and deletes the
	// detection signal is zero affected rows, not a prior existence check.
	ErrCredentialNotFound = errors.New("password entry was not found")

	// ErrMasterRecordNotFound is returned when the vault has no master
	// password record yet, i.e. setup has never run.
	ErrMasterRecordNotFound = errors.New("master record was not found")

	// ErrMasterRecordExists is returned when a second master record write is
	// attempted. The master record is immutable for the vault's lifetime.
	ErrMasterRecordExists = errors.New("master record already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan credential row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan credential rows")
)
