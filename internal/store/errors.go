package store

import "errors"

// Domain errors. Repositories translate constraint violations into these so
// handlers can answer 404, 409 or 422 without knowing the driver.
var (
	ErrEggAlreadyExists  = errors.New("egg already exists")
	ErrDuplicateVariable = errors.New("egg variable env key is duplicated")
	ErrEggNotFound       = errors.New("egg was not found")
	ErrServerNotFound    = errors.New("server was not found")

	// ErrUnknownVariable is a foreign key failure on server_variables: the
	// server or the egg variable is gone.
	ErrUnknownVariable = errors.New("server variable references unknown server or egg variable")

	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Errors wrapping a failed database call. The driver error is joined after
// the sentinel with %w.
var (
	ErrBuildingSQLQuery      = errors.New("error building sql query")
	ErrExecutingQuery        = errors.New("error executing sql query")
	ErrBeginningTransaction  = errors.New("error beginning transaction")
	ErrCommittingTransaction = errors.New("error committing transaction")
	ErrExecutingStatement    = errors.New("error executing sql statement")

	// ErrScanningRow is a single-row lookup scan; ErrScanningRows covers
	// iteration over a result set, including rows.Err.
	ErrScanningRow  = errors.New("error scanning row")
	ErrScanningRows = errors.New("error scanning rows")
)
