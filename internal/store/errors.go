package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Sentinel errors returned by the cookie repository. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyDSN is returned by NewConnect when no DSN is configured.
	ErrEmptyDSN = errors.New("database DSN is empty")

	// ErrJarNotMigrated is returned when the cookies table does not exist.
	ErrJarNotMigrated = errors.New("cookie jar table is missing, run migrations")

	// ErrCookieNotFound is returned when deleting a cookie that is not stored.
	ErrCookieNotFound = errors.New("cookie was not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan cookie rows")
)

// isUndefinedTable reports whether err says the cookies table is missing,
// for either driver.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UndefinedTable
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrError && strings.Contains(liteErr.Error(), "no such table")
	}

	return false
}
