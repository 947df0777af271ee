package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a query matches no rows.
	ErrNotFound = errors.New("db: record not found")

	// ErrDuplicateKey is returned on unique constraint violations.
	ErrDuplicateKey = errors.New("db: duplicate key")

	// ErrForeignKeyViolation is returned when a referenced row is missing.
	ErrForeignKeyViolation = errors.New("db: foreign key violation")

	// ErrTimeout is returned when a statement exceeds its deadline.
	ErrTimeout = errors.New("db: query timeout")

	// ErrConnectionFailed is returned when the server is unreachable.
	ErrConnectionFailed = errors.New("db: connection failed")
)

func IsNotFound(err error) bool            { return errors.Is(err, ErrNotFound) }
func IsDuplicateKey(err error) bool        { return errors.Is(err, ErrDuplicateKey) }
func IsForeignKeyViolation(err error) bool { return errors.Is(err, ErrForeignKeyViolation) }
func IsTimeout(err error) bool             { return errors.Is(err, ErrTimeout) }

// Error wraps a sentinel with the original driver error, so callers can use
// errors.Is for the class and still inspect the cause.
type Error struct {
	Sentinel error
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (cause: %v)", e.Sentinel, e.Cause)
}

func (e *Error) Is(target error) bool { return errors.Is(e.Sentinel, target) }
func (e *Error) Unwrap() error        { return e.Cause }

// mapError translates driver errors into the package sentinels. Postgres
// errors are matched on SQLSTATE via the pgx error interface; SQLite errors
// carry no typed codes through database/sql, so those match on message text.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &Error{Sentinel: ErrNotFound, Cause: err}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Sentinel: ErrTimeout, Cause: err}
	}

	var mapped *Error
	if errors.As(err, &mapped) {
		return err
	}

	type sqlStater interface{ SQLState() string }
	var pg sqlStater
	if errors.As(err, &pg) {
		if s := sentinelForSQLState(pg.SQLState()); s != nil {
			return &Error{Sentinel: s, Cause: err}
		}
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &Error{Sentinel: ErrDuplicateKey, Cause: err}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &Error{Sentinel: ErrForeignKeyViolation, Cause: err}
	case strings.Contains(msg, "connection refused"):
		return &Error{Sentinel: ErrConnectionFailed, Cause: err}
	}

	return err
}

// SQLSTATE codes: https://www.postgresql.org/docs/current/errcodes-appendix.html
func sentinelForSQLState(code string) error {
	switch code {
	case "23505":
		return ErrDuplicateKey
	case "23503":
		return ErrForeignKeyViolation
	case "57014", "57P01":
		return ErrTimeout
	case "08000", "08003", "08006":
		return ErrConnectionFailed
	}
	return nil
}
