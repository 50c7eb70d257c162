package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var _ types.PokemonRepository = (*pokemonRepo)(nil)

type pokemonRepo struct {
	c *Catalog
}

// birthDateLayout is the storage form of Pokemon.BirthDate in both backends.
const birthDateLayout = time.RFC3339

// Exists reports whether a pokemon row with the given ID is present.
func (r *pokemonRepo) Exists(id int64) (bool, error) {
	if id <= 0 {
		return false, types.ErrInvalidID
	}
	return r.c.exists("SELECT 1 FROM pokemon WHERE id = ?", id)
}

// ExistsNamed reports whether a pokemon with the normalized name is present.
func (r *pokemonRepo) ExistsNamed(name string) (bool, error) {
	return r.c.exists(
		"SELECT 1 FROM pokemon WHERE name_key = ?",
		types.NormalizeKey(name),
	)
}

// List returns all Pokemon ordered by ascending ID.
func (r *pokemonRepo) List() ([]types.Pokemon, error) {
	rows, err := r.c.db.Query("SELECT id, name, birth_date FROM pokemon ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("listing pokemon: %w", err)
	}
	defer rows.Close()
	return scanPokemon(rows)
}

// ListByIDs returns Pokemon whose ID is in ids. Empty input yields an empty
// result.
func (r *pokemonRepo) ListByIDs(ids []int64) ([]types.Pokemon, error) {
	if len(ids) == 0 {
		return []types.Pokemon{}, nil
	}
	marks, args := inPlaceholders(ids)
	rows, err := r.c.db.Query(r.c.d.Rebind(
		"SELECT id, name, birth_date FROM pokemon WHERE id IN ("+marks+") ORDER BY id ASC"), args...)
	if err != nil {
		return nil, fmt.Errorf("listing pokemon by ids: %w", err)
	}
	defer rows.Close()
	return scanPokemon(rows)
}

// Get returns the pokemon with the given ID.
func (r *pokemonRepo) Get(id int64) (*types.Pokemon, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	row := r.c.db.QueryRow(r.c.d.Rebind(
		"SELECT id, name, birth_date FROM pokemon WHERE id = ?"), id)
	p, err := hydratePokemon(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting pokemon %d: %w", id, err)
	}
	return p, nil
}

// GetByName returns the pokemon with the normalized name.
func (r *pokemonRepo) GetByName(name string) (*types.Pokemon, error) {
	row := r.c.db.QueryRow(r.c.d.Rebind(
		"SELECT id, name, birth_date FROM pokemon WHERE name_key = ?"),
		types.NormalizeKey(name))
	p, err := hydratePokemon(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting pokemon %q: %w", name, err)
	}
	return p, nil
}

// Rating returns the mean of the pokemon's review ratings. See meanRating
// for the truncation semantics.
func (r *pokemonRepo) Rating(pokemonID int64) (float64, error) {
	if pokemonID <= 0 {
		return 0, types.ErrInvalidID
	}
	rows, err := r.c.db.Query(r.c.d.Rebind(
		"SELECT rating FROM reviews WHERE pokemon_id = ?"), pokemonID)
	if err != nil {
		return 0, fmt.Errorf("fetching ratings of pokemon %d: %w", pokemonID, err)
	}
	defer rows.Close()

	var ratings []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return 0, fmt.Errorf("scanning rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterating ratings: %w", err)
	}
	return meanRating(ratings), nil
}

// Create inserts the pokemon plus one PokemonOwner and one PokemonCategory
// row in a single transaction. Both parents must exist, and the normalized
// name must be free; a concurrent insert racing past the pre-check hits the
// unique index and reports the same ErrDuplicateName.
func (r *pokemonRepo) Create(pokemon *types.Pokemon, ownerID, categoryID int64) error {
	if strings.TrimSpace(pokemon.Name) == "" {
		return types.ErrInvalidName
	}
	if ownerID <= 0 || categoryID <= 0 {
		return types.ErrInvalidID
	}

	tx, err := r.c.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollback(tx)

	ok, err := existsIn(tx, r.c.d, "SELECT 1 FROM owners WHERE id = ?", ownerID)
	if err != nil {
		return fmt.Errorf("checking owner %d: %w", ownerID, err)
	}
	if !ok {
		return fmt.Errorf("owner %d: %w", ownerID, types.ErrInvalidReference)
	}
	ok, err = existsIn(tx, r.c.d, "SELECT 1 FROM categories WHERE id = ?", categoryID)
	if err != nil {
		return fmt.Errorf("checking category %d: %w", categoryID, err)
	}
	if !ok {
		return fmt.Errorf("category %d: %w", categoryID, types.ErrInvalidReference)
	}

	nameKey := pokemon.NameKey()
	ok, err = existsIn(tx, r.c.d, "SELECT 1 FROM pokemon WHERE name_key = ?", nameKey)
	if err != nil {
		return fmt.Errorf("checking pokemon name: %w", err)
	}
	if ok {
		return fmt.Errorf("pokemon %q: %w", pokemon.Name, types.ErrDuplicateName)
	}

	id, err := r.c.d.InsertID(tx, r.c.d.Rebind(
		"INSERT INTO pokemon (name, name_key, birth_date) VALUES (?, ?, ?)"),
		pokemon.Name, nameKey, pokemon.BirthDate.Format(birthDateLayout))
	if err != nil {
		if r.c.d.IsUniqueViolation(err) {
			return fmt.Errorf("pokemon %q: %w", pokemon.Name, types.ErrDuplicateName)
		}
		return fmt.Errorf("creating pokemon: %w", err)
	}

	if _, err := tx.Exec(r.c.d.Rebind(
		"INSERT INTO pokemon_owners (pokemon_id, owner_id) VALUES (?, ?)"),
		id, ownerID); err != nil {
		return fmt.Errorf("linking pokemon %d to owner %d: %w", id, ownerID, err)
	}
	if _, err := tx.Exec(r.c.d.Rebind(
		"INSERT INTO pokemon_categories (pokemon_id, category_id) VALUES (?, ?)"),
		id, categoryID); err != nil {
		return fmt.Errorf("linking pokemon %d to category %d: %w", id, categoryID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing pokemon: %w", err)
	}
	pokemon.ID = id
	r.c.log.Debug().
		Int64("id", id).
		Int64("owner_id", ownerID).
		Int64("category_id", categoryID).
		Msg("created pokemon")
	return nil
}

// Update replaces the pokemon row by ID. Association rows are fixed at
// creation and are not touched; the name key is refreshed alongside the name.
func (r *pokemonRepo) Update(pokemon types.Pokemon) error {
	if pokemon.ID <= 0 {
		return types.ErrInvalidID
	}
	if strings.TrimSpace(pokemon.Name) == "" {
		return types.ErrInvalidName
	}
	res, err := r.c.db.Exec(r.c.d.Rebind(
		"UPDATE pokemon SET name = ?, name_key = ?, birth_date = ? WHERE id = ?"),
		pokemon.Name, pokemon.NameKey(), pokemon.BirthDate.Format(birthDateLayout), pokemon.ID)
	if err != nil {
		if r.c.d.IsUniqueViolation(err) {
			return fmt.Errorf("pokemon %q: %w", pokemon.Name, types.ErrDuplicateName)
		}
		return fmt.Errorf("updating pokemon %d: %w", pokemon.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating pokemon %d: %w", pokemon.ID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes the pokemon, its reviews, and its association rows in a
// single transaction. The reviews go first so a failed cascade leaves the
// parent in place.
func (r *pokemonRepo) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	tx, err := r.c.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollback(tx)

	if err := deleteReviewsOfPokemon(tx, r.c.d, id); err != nil {
		return err
	}
	if err := deleteAssociationsOfPokemon(tx, r.c.d, id); err != nil {
		return err
	}

	res, err := tx.Exec(r.c.d.Rebind("DELETE FROM pokemon WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("deleting pokemon %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting pokemon %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing pokemon deletion: %w", err)
	}
	r.c.log.Debug().Int64("id", id).Msg("deleted pokemon")
	return nil
}

// DeleteMany removes the Pokemon whose IDs are in ids, cascading each in its
// own transaction. Empty input is a no-op; missing IDs are skipped.
func (r *pokemonRepo) DeleteMany(ids []int64) error {
	for _, id := range ids {
		if err := r.Delete(id); err != nil && err != types.ErrNotFound {
			return err
		}
	}
	return nil
}

func hydratePokemon(row *sql.Row) (*types.Pokemon, error) {
	var p types.Pokemon
	var birth string
	if err := row.Scan(&p.ID, &p.Name, &birth); err != nil {
		return nil, err
	}
	t, err := time.Parse(birthDateLayout, birth)
	if err != nil {
		return nil, fmt.Errorf("parsing birth date %q: %w", birth, err)
	}
	p.BirthDate = t
	return &p, nil
}

func scanPokemon(rows *sql.Rows) ([]types.Pokemon, error) {
	results := []types.Pokemon{}
	for rows.Next() {
		var p types.Pokemon
		var birth string
		if err := rows.Scan(&p.ID, &p.Name, &birth); err != nil {
			return nil, fmt.Errorf("scanning pokemon: %w", err)
		}
		t, err := time.Parse(birthDateLayout, birth)
		if err != nil {
			return nil, fmt.Errorf("parsing birth date %q: %w", birth, err)
		}
		p.BirthDate = t
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pokemon: %w", err)
	}
	return results, nil
}
