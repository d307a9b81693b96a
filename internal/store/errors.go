package store

import (
	"errors"

	"github.com/MKhiriev/go-matjip/internal/app"
)

// Domain errors returned by repositories. They carry an [app.Kind] so the
// transport layer can map them without knowing about storage.
var (
	// ErrDuplicateUsername is returned when the accounts username uniqueness
	// constraint rejects an insert.
	ErrDuplicateUsername = app.NewError(app.KindConflict, "username already exists")

	// ErrTagTaken is returned when the tag uniqueness constraint rejects an
	// insert. Registration retries with a fresh tag.
	ErrTagTaken = app.NewError(app.KindConflict, "tag already taken")

	// ErrNoOpUpdate is returned when an update would store the value that is
	// already there.
	ErrNoOpUpdate = app.NewError(app.KindConflict, "new value is the same as the current one")

	// ErrAccountNotFound is returned when no account has the requested id
	// or username.
	ErrAccountNotFound = app.NewError(app.KindNotFound, "account not found")

	// ErrReviewNotFound is returned when the review does not exist or is
	// owned by another account.
	ErrReviewNotFound = app.NewError(app.KindNotFound, "review not found")

	// ErrRestaurantNotFound is returned when no restaurant has the
	// requested id.
	ErrRestaurantNotFound = app.NewError(app.KindNotFound, "restaurant not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrUnsupportedDSN is returned when the DSN scheme names no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrTransient marks a failure that may succeed when retried, such as a
	// serialization failure or a busy SQLite database.
	ErrTransient = errors.New("transient database failure")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
