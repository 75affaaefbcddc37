package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells the retry loop whether a failed catalog
// statement is worth another attempt.
type ErrorClassification int

const (
	// NonRetryable is the answer for anything not known to be transient.
	NonRetryable ErrorClassification = iota
	// Retryable marks lock contention and dropped connections.
	Retryable
)

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// driverClassifier finds the first E in an error chain and asks transient
// about it. Errors without an E are NonRetryable.
type driverClassifier[E error] struct {
	transient func(E) bool
}

func (c driverClassifier[E]) Classify(err error) ErrorClassification {
	var target E
	if err != nil && errors.As(err, &target) && c.transient(target) {
		return Retryable
	}
	return NonRetryable
}

// NewPostgresErrorClassifier classifies *pgconn.PgError by SQLSTATE with
// [ClassifyPgError].
func NewPostgresErrorClassifier() ErrorClassificator {
	return driverClassifier[*pgconn.PgError]{
		transient: func(e *pgconn.PgError) bool { return ClassifyPgError(e) == Retryable },
	}
}

// ClassifyPgError retries whole SQLSTATE classes 08 (connection exception)
// and 40 (transaction rollback) plus 57P03, raised while the server is
// starting up. Constraint, syntax and data errors fail on every attempt.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if pgErr == nil {
		return NonRetryable
	}

	code := pgErr.Code
	if pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsTransactionRollback(code) ||
		code == pgerrcode.CannotConnectNow {
		return Retryable
	}
	return NonRetryable
}

// NewSQLiteErrorClassifier retries SQLITE_BUSY and SQLITE_LOCKED only.
func NewSQLiteErrorClassifier() ErrorClassificator {
	return driverClassifier[sqlite3.Error]{
		transient: func(e sqlite3.Error) bool {
			return e.Code == sqlite3.ErrBusy || e.Code == sqlite3.ErrLocked
		},
	}
}
