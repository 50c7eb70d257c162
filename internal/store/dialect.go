// Package store implements the catalog repositories over a database/sql
// connection. The SQL is written once with '?' placeholders; a Dialect
// adapts it to the engine the backend opened.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of database/sql operations the repositories need.
// Satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Dialect abstracts the differences between the SQL engines the catalog
// runs on.
type Dialect interface {
	// Name returns the dialect name for logging.
	Name() string

	// Rebind rewrites '?' placeholders into the engine's native form.
	Rebind(query string) string

	// InsertID executes an INSERT and returns the assigned row ID.
	InsertID(q Querier, query string, args ...any) (int64, error)

	// IsUniqueViolation reports whether err is a unique-constraint violation.
	IsUniqueViolation(err error) bool
}

// SQLiteDialect targets SQLite via modernc.org/sqlite.
type SQLiteDialect struct{}

// Name returns "sqlite".
func (SQLiteDialect) Name() string { return "sqlite" }

// Rebind is the identity: SQLite uses '?' natively.
func (SQLiteDialect) Rebind(query string) string { return query }

// InsertID executes the INSERT and reads the assigned rowid.
func (SQLiteDialect) InsertID(q Querier, query string, args ...any) (int64, error) {
	res, err := q.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// IsUniqueViolation matches the SQLite unique-constraint error text.
func (SQLiteDialect) IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// PostgresDialect targets Postgres via the pgx stdlib driver.
type PostgresDialect struct{}

// Name returns "postgres".
func (PostgresDialect) Name() string { return "postgres" }

// Rebind rewrites '?' placeholders into ordinal $1..$N form.
func (PostgresDialect) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// InsertID appends a RETURNING clause; Postgres does not report last-insert
// IDs through sql.Result.
func (PostgresDialect) InsertID(q Querier, query string, args ...any) (int64, error) {
	var id int64
	if err := q.QueryRow(query+" RETURNING id", args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// IsUniqueViolation matches the Postgres unique_violation error code.
func (PostgresDialect) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
