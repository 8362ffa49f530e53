package store

import "errors"

// ErrCredentialsNotFound is returned by [CredentialStore.Load] whenever no
// trustworthy credential pair is cached. The underlying cause is wrapped.
var ErrCredentialsNotFound = errors.New("no saved credentials")

// ErrDownloadNotSaved is returned when a history INSERT affects no rows.
var ErrDownloadNotSaved = errors.New("download record was not saved")

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan download rows")
)
