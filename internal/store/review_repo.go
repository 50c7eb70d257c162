package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var _ types.ReviewRepository = (*reviewRepo)(nil)

type reviewRepo struct {
	c *Catalog
}

const reviewColumns = "id, title, body, rating, pokemon_id, reviewer_id"

// Exists reports whether a review row with the given ID is present.
func (r *reviewRepo) Exists(id int64) (bool, error) {
	if id <= 0 {
		return false, types.ErrInvalidID
	}
	return r.c.exists("SELECT 1 FROM reviews WHERE id = ?", id)
}

// ExistsTitled reports whether a review with the normalized title is present.
func (r *reviewRepo) ExistsTitled(title string) (bool, error) {
	return r.c.exists(
		"SELECT 1 FROM reviews WHERE lower(trim(title)) = ?",
		types.NormalizeKey(title),
	)
}

// List returns all reviews.
func (r *reviewRepo) List() ([]types.Review, error) {
	rows, err := r.c.db.Query("SELECT " + reviewColumns + " FROM reviews")
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	defer rows.Close()
	return scanReviews(rows)
}

// ListByIDs returns reviews whose ID is in ids. Empty input yields an empty
// result.
func (r *reviewRepo) ListByIDs(ids []int64) ([]types.Review, error) {
	if len(ids) == 0 {
		return []types.Review{}, nil
	}
	marks, args := inPlaceholders(ids)
	rows, err := r.c.db.Query(r.c.d.Rebind(
		"SELECT "+reviewColumns+" FROM reviews WHERE id IN ("+marks+")"), args...)
	if err != nil {
		return nil, fmt.Errorf("listing reviews by ids: %w", err)
	}
	defer rows.Close()
	return scanReviews(rows)
}

// Get returns the review with the given ID.
func (r *reviewRepo) Get(id int64) (*types.Review, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	row := r.c.db.QueryRow(r.c.d.Rebind(
		"SELECT "+reviewColumns+" FROM reviews WHERE id = ?"), id)
	review, err := hydrateReview(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting review %d: %w", id, err)
	}
	return review, nil
}

// OfPokemon returns all reviews of the given Pokemon.
func (r *reviewRepo) OfPokemon(pokemonID int64) ([]types.Review, error) {
	if pokemonID <= 0 {
		return nil, types.ErrInvalidID
	}
	rows, err := r.c.db.Query(r.c.d.Rebind(
		"SELECT "+reviewColumns+" FROM reviews WHERE pokemon_id = ?"), pokemonID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews of pokemon %d: %w", pokemonID, err)
	}
	defer rows.Close()
	return scanReviews(rows)
}

// Create inserts the review referencing the given Pokemon and reviewer. Both
// parents must exist; a missing parent fails before insert rather than
// attaching a dangling reference.
func (r *reviewRepo) Create(review *types.Review, pokemonID, reviewerID int64) error {
	if strings.TrimSpace(review.Title) == "" {
		return types.ErrInvalidName
	}
	if pokemonID <= 0 || reviewerID <= 0 {
		return types.ErrInvalidID
	}

	tx, err := r.c.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollback(tx)

	ok, err := existsIn(tx, r.c.d, "SELECT 1 FROM pokemon WHERE id = ?", pokemonID)
	if err != nil {
		return fmt.Errorf("checking pokemon %d: %w", pokemonID, err)
	}
	if !ok {
		return fmt.Errorf("pokemon %d: %w", pokemonID, types.ErrInvalidReference)
	}
	ok, err = existsIn(tx, r.c.d, "SELECT 1 FROM reviewers WHERE id = ?", reviewerID)
	if err != nil {
		return fmt.Errorf("checking reviewer %d: %w", reviewerID, err)
	}
	if !ok {
		return fmt.Errorf("reviewer %d: %w", reviewerID, types.ErrInvalidReference)
	}

	id, err := r.c.d.InsertID(tx, r.c.d.Rebind(
		"INSERT INTO reviews (title, body, rating, pokemon_id, reviewer_id) VALUES (?, ?, ?, ?, ?)"),
		review.Title, review.Text, review.Rating, pokemonID, reviewerID)
	if err != nil {
		return fmt.Errorf("creating review: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing review: %w", err)
	}
	review.ID = id
	review.PokemonID = pokemonID
	review.ReviewerID = reviewerID
	r.c.log.Debug().
		Int64("id", id).
		Int64("pokemon_id", pokemonID).
		Int64("reviewer_id", reviewerID).
		Msg("created review")
	return nil
}

// Update replaces the review row by ID. References are fixed at creation and
// are not touched.
func (r *reviewRepo) Update(review types.Review) error {
	if review.ID <= 0 {
		return types.ErrInvalidID
	}
	if strings.TrimSpace(review.Title) == "" {
		return types.ErrInvalidName
	}
	res, err := r.c.db.Exec(r.c.d.Rebind(
		"UPDATE reviews SET title = ?, body = ?, rating = ? WHERE id = ?"),
		review.Title, review.Text, review.Rating, review.ID)
	if err != nil {
		return fmt.Errorf("updating review %d: %w", review.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating review %d: %w", review.ID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes the review row.
func (r *reviewRepo) Delete(id int64) error {
	return r.c.deleteByID("reviews", id)
}

// DeleteMany removes the reviews whose IDs are in ids. Empty input is a
// no-op.
func (r *reviewRepo) DeleteMany(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	marks, args := inPlaceholders(ids)
	if _, err := r.c.db.Exec(r.c.d.Rebind(
		"DELETE FROM reviews WHERE id IN ("+marks+")"), args...); err != nil {
		return fmt.Errorf("deleting reviews: %w", err)
	}
	return nil
}

// DeleteOfPokemon removes all reviews referencing the Pokemon.
func (r *reviewRepo) DeleteOfPokemon(pokemonID int64) error {
	if pokemonID <= 0 {
		return types.ErrInvalidID
	}
	tx, err := r.c.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollback(tx)
	if err := deleteReviewsOfPokemon(tx, r.c.d, pokemonID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing review cascade: %w", err)
	}
	return nil
}

// DeleteOfReviewer removes all reviews authored by the reviewer.
func (r *reviewRepo) DeleteOfReviewer(reviewerID int64) error {
	if reviewerID <= 0 {
		return types.ErrInvalidID
	}
	tx, err := r.c.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollback(tx)
	if err := deleteReviewsOfReviewer(tx, r.c.d, reviewerID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing review cascade: %w", err)
	}
	return nil
}

func hydrateReview(row *sql.Row) (*types.Review, error) {
	var rv types.Review
	if err := row.Scan(&rv.ID, &rv.Title, &rv.Text, &rv.Rating, &rv.PokemonID, &rv.ReviewerID); err != nil {
		return nil, err
	}
	return &rv, nil
}

func scanReviews(rows *sql.Rows) ([]types.Review, error) {
	results := []types.Review{}
	for rows.Next() {
		var rv types.Review
		if err := rows.Scan(&rv.ID, &rv.Title, &rv.Text, &rv.Rating, &rv.PokemonID, &rv.ReviewerID); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		results = append(results, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reviews: %w", err)
	}
	return results, nil
}
