package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// Catalog holds the shared state the repositories operate on. Backends own
// the connection lifecycle; a Catalog borrows the open *sql.DB and never
// closes it.
type Catalog struct {
	db  *sql.DB
	d   Dialect
	log zerolog.Logger
}

// NewCatalog wires the repository set to an open database connection.
func NewCatalog(db *sql.DB, d Dialect, log zerolog.Logger) *Catalog {
	return &Catalog{db: db, d: d, log: log}
}

// Categories returns the category repository.
func (c *Catalog) Categories() types.CategoryRepository { return &categoryRepo{c} }

// Countries returns the country repository.
func (c *Catalog) Countries() types.CountryRepository { return &countryRepo{c} }

// Owners returns the owner repository.
func (c *Catalog) Owners() types.OwnerRepository { return &ownerRepo{c} }

// Pokemon returns the pokemon repository.
func (c *Catalog) Pokemon() types.PokemonRepository { return &pokemonRepo{c} }

// Reviewers returns the reviewer repository.
func (c *Catalog) Reviewers() types.ReviewerRepository { return &reviewerRepo{c} }

// Reviews returns the review repository.
func (c *Catalog) Reviews() types.ReviewRepository { return &reviewRepo{c} }

// exists runs an existence probe. The query must select a single column from
// at most one row.
func (c *Catalog) exists(query string, args ...any) (bool, error) {
	var one int
	err := c.db.QueryRow(c.d.Rebind(query), args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// existsIn runs an existence probe inside a transaction.
func existsIn(tx *sql.Tx, d Dialect, query string, args ...any) (bool, error) {
	var one int
	err := tx.QueryRow(d.Rebind(query), args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// deleteByID removes one row and maps a zero affected count to ErrNotFound.
func (c *Catalog) deleteByID(table string, id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	res, err := c.db.Exec(c.d.Rebind("DELETE FROM "+table+" WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	c.log.Debug().Str("table", table).Int64("id", id).Msg("deleted row")
	return nil
}

// inPlaceholders returns "?, ?, ..." with n placeholders and the matching
// args slice for an IN clause.
func inPlaceholders(ids []int64) (string, []any) {
	marks := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		marks[i] = "?"
		args[i] = id
	}
	return strings.Join(marks, ", "), args
}

// rollback discards a transaction, keeping the original error.
func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}
