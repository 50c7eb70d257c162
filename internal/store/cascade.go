package store

import (
	"database/sql"
	"fmt"
)

// Cascade helpers keep Review rows consistent when their referenced Pokemon
// or Reviewer goes away. They run inside the transaction that deletes the
// parent, so the parent delete cannot proceed past a failed cascade.

// deleteReviewsOfPokemon removes all reviews referencing the pokemon.
func deleteReviewsOfPokemon(tx *sql.Tx, d Dialect, pokemonID int64) error {
	if _, err := tx.Exec(d.Rebind(
		"DELETE FROM reviews WHERE pokemon_id = ?"), pokemonID); err != nil {
		return fmt.Errorf("deleting reviews of pokemon %d: %w", pokemonID, err)
	}
	return nil
}

// deleteReviewsOfReviewer removes all reviews authored by the reviewer.
func deleteReviewsOfReviewer(tx *sql.Tx, d Dialect, reviewerID int64) error {
	if _, err := tx.Exec(d.Rebind(
		"DELETE FROM reviews WHERE reviewer_id = ?"), reviewerID); err != nil {
		return fmt.Errorf("deleting reviews of reviewer %d: %w", reviewerID, err)
	}
	return nil
}

// deleteAssociationsOfPokemon removes the PokemonOwner and PokemonCategory
// rows of a pokemon being deleted. Owner and Category deletions do not run
// the inverse; their association rows outlive them.
func deleteAssociationsOfPokemon(tx *sql.Tx, d Dialect, pokemonID int64) error {
	if _, err := tx.Exec(d.Rebind(
		"DELETE FROM pokemon_owners WHERE pokemon_id = ?"), pokemonID); err != nil {
		return fmt.Errorf("deleting owner links of pokemon %d: %w", pokemonID, err)
	}
	if _, err := tx.Exec(d.Rebind(
		"DELETE FROM pokemon_categories WHERE pokemon_id = ?"), pokemonID); err != nil {
		return fmt.Errorf("deleting category links of pokemon %d: %w", pokemonID, err)
	}
	return nil
}
