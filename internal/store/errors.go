package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email matches no user
	// record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBookNotFound is returned when an operation targets a book id that
	// does not exist in the catalog.
	ErrBookNotFound = errors.New("book was not found")

	// ErrAvailabilityConflict is returned when a conditional availability
	// update matches an existing book whose current flag differs from the
	// expected prior state. This is the losing side of a checkout/checkin
	// race: the caller must re-read before retrying.
	ErrAvailabilityConflict = errors.New("book availability conflict occurred")

	// ErrUnsupportedDriver is returned at startup when the configured storage
	// driver name is not recognised.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
