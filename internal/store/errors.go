package store

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable marks every failure of the underlying engine: the
// database cannot be opened, a statement cannot run, a transaction cannot
// commit. It is never retried by the store; callers surface it or retry.
// Match with [errors.Is].
var ErrStorageUnavailable = errors.New("storage unavailable")

// Low-level database operation errors. They are wrapped together with
// [ErrStorageUnavailable] so that callers can match either the broad class or
// the failing step.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a new
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrOpeningDatabase is returned when the database file cannot be
	// created, opened or pinged.
	ErrOpeningDatabase = errors.New("failed to open database")

	// ErrRemovingDatabase is returned when a wipe cannot delete the
	// database file.
	ErrRemovingDatabase = errors.New("failed to remove database file")
)

// unavailable wraps a driver error with [ErrStorageUnavailable] and the
// failing step.
func unavailable(step, err error) error {
	return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, step, err)
}
