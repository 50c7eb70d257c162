package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var _ types.ReviewerRepository = (*reviewerRepo)(nil)

type reviewerRepo struct {
	c *Catalog
}

const reviewerColumns = "id, first_name, last_name"

// Exists reports whether a reviewer row with the given ID is present.
func (r *reviewerRepo) Exists(id int64) (bool, error) {
	if id <= 0 {
		return false, types.ErrInvalidID
	}
	return r.c.exists("SELECT 1 FROM reviewers WHERE id = ?", id)
}

// ExistsNamed reports whether a reviewer with the normalized first+last name
// pair is present.
func (r *reviewerRepo) ExistsNamed(firstName, lastName string) (bool, error) {
	return r.c.exists(
		"SELECT 1 FROM reviewers WHERE lower(trim(first_name)) = ? AND lower(trim(last_name)) = ?",
		types.NormalizeKey(firstName), types.NormalizeKey(lastName),
	)
}

// List returns all reviewers.
func (r *reviewerRepo) List() ([]types.Reviewer, error) {
	rows, err := r.c.db.Query("SELECT " + reviewerColumns + " FROM reviewers")
	if err != nil {
		return nil, fmt.Errorf("listing reviewers: %w", err)
	}
	defer rows.Close()
	return scanReviewers(rows)
}

// ListByIDs returns reviewers whose ID is in ids. Empty input yields an
// empty result.
func (r *reviewerRepo) ListByIDs(ids []int64) ([]types.Reviewer, error) {
	if len(ids) == 0 {
		return []types.Reviewer{}, nil
	}
	marks, args := inPlaceholders(ids)
	rows, err := r.c.db.Query(r.c.d.Rebind(
		"SELECT "+reviewerColumns+" FROM reviewers WHERE id IN ("+marks+")"), args...)
	if err != nil {
		return nil, fmt.Errorf("listing reviewers by ids: %w", err)
	}
	defer rows.Close()
	return scanReviewers(rows)
}

// Get returns the reviewer with the given ID.
func (r *reviewerRepo) Get(id int64) (*types.Reviewer, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	row := r.c.db.QueryRow(r.c.d.Rebind(
		"SELECT "+reviewerColumns+" FROM reviewers WHERE id = ?"), id)
	reviewer, err := hydrateReviewer(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting reviewer %d: %w", id, err)
	}
	return reviewer, nil
}

// ReviewsOf returns all reviews authored by the reviewer.
func (r *reviewerRepo) ReviewsOf(reviewerID int64) ([]types.Review, error) {
	if reviewerID <= 0 {
		return nil, types.ErrInvalidID
	}
	rows, err := r.c.db.Query(r.c.d.Rebind(
		"SELECT "+reviewColumns+" FROM reviews WHERE reviewer_id = ?"), reviewerID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews of reviewer %d: %w", reviewerID, err)
	}
	defer rows.Close()
	return scanReviews(rows)
}

// Create inserts the reviewer and assigns its ID.
func (r *reviewerRepo) Create(reviewer *types.Reviewer) error {
	if strings.TrimSpace(reviewer.FirstName) == "" || strings.TrimSpace(reviewer.LastName) == "" {
		return types.ErrInvalidName
	}
	id, err := r.c.d.InsertID(r.c.db, r.c.d.Rebind(
		"INSERT INTO reviewers (first_name, last_name) VALUES (?, ?)"),
		reviewer.FirstName, reviewer.LastName)
	if err != nil {
		return fmt.Errorf("creating reviewer: %w", err)
	}
	reviewer.ID = id
	r.c.log.Debug().Int64("id", id).Msg("created reviewer")
	return nil
}

// Update replaces the reviewer row by ID.
func (r *reviewerRepo) Update(reviewer types.Reviewer) error {
	if reviewer.ID <= 0 {
		return types.ErrInvalidID
	}
	if strings.TrimSpace(reviewer.FirstName) == "" || strings.TrimSpace(reviewer.LastName) == "" {
		return types.ErrInvalidName
	}
	res, err := r.c.db.Exec(r.c.d.Rebind(
		"UPDATE reviewers SET first_name = ?, last_name = ? WHERE id = ?"),
		reviewer.FirstName, reviewer.LastName, reviewer.ID)
	if err != nil {
		return fmt.Errorf("updating reviewer %d: %w", reviewer.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating reviewer %d: %w", reviewer.ID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes the reviewer and all reviews they authored in a single
// transaction. The reviews go first so a failed cascade leaves the parent in
// place.
func (r *reviewerRepo) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	tx, err := r.c.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollback(tx)

	if err := deleteReviewsOfReviewer(tx, r.c.d, id); err != nil {
		return err
	}

	res, err := tx.Exec(r.c.d.Rebind("DELETE FROM reviewers WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("deleting reviewer %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting reviewer %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reviewer deletion: %w", err)
	}
	r.c.log.Debug().Int64("id", id).Msg("deleted reviewer")
	return nil
}

// DeleteMany removes the reviewers whose IDs are in ids, cascading each in
// its own transaction. Empty input is a no-op; missing IDs are skipped.
func (r *reviewerRepo) DeleteMany(ids []int64) error {
	for _, id := range ids {
		if err := r.Delete(id); err != nil && err != types.ErrNotFound {
			return err
		}
	}
	return nil
}

func hydrateReviewer(row *sql.Row) (*types.Reviewer, error) {
	var rv types.Reviewer
	if err := row.Scan(&rv.ID, &rv.FirstName, &rv.LastName); err != nil {
		return nil, err
	}
	return &rv, nil
}

func scanReviewers(rows *sql.Rows) ([]types.Reviewer, error) {
	results := []types.Reviewer{}
	for rows.Next() {
		var rv types.Reviewer
		if err := rows.Scan(&rv.ID, &rv.FirstName, &rv.LastName); err != nil {
			return nil, fmt.Errorf("scanning reviewer: %w", err)
		}
		results = append(results, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reviewers: %w", err)
	}
	return results, nil
}
