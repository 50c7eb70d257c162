package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var _ types.CategoryRepository = (*categoryRepo)(nil)

type categoryRepo struct {
	c *Catalog
}

// Exists reports whether a category row with the given ID is present.
func (r *categoryRepo) Exists(id int64) (bool, error) {
	if id <= 0 {
		return false, types.ErrInvalidID
	}
	return r.c.exists("SELECT 1 FROM categories WHERE id = ?", id)
}

// ExistsNamed reports whether a category with the normalized name is present.
func (r *categoryRepo) ExistsNamed(name string) (bool, error) {
	return r.c.exists(
		"SELECT 1 FROM categories WHERE lower(trim(name)) = ?",
		types.NormalizeKey(name),
	)
}

// List returns all categories.
func (r *categoryRepo) List() ([]types.Category, error) {
	rows, err := r.c.db.Query("SELECT id, name FROM categories")
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// ListByIDs returns categories whose ID is in ids. Empty input yields an
// empty result.
func (r *categoryRepo) ListByIDs(ids []int64) ([]types.Category, error) {
	if len(ids) == 0 {
		return []types.Category{}, nil
	}
	marks, args := inPlaceholders(ids)
	rows, err := r.c.db.Query(r.c.d.Rebind(
		"SELECT id, name FROM categories WHERE id IN ("+marks+")"), args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories by ids: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// Get returns the category with the given ID.
func (r *categoryRepo) Get(id int64) (*types.Category, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	row := r.c.db.QueryRow(r.c.d.Rebind(
		"SELECT id, name FROM categories WHERE id = ?"), id)
	cat, err := hydrateCategory(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting category %d: %w", id, err)
	}
	return cat, nil
}

// GetByName returns the category with the normalized name.
func (r *categoryRepo) GetByName(name string) (*types.Category, error) {
	row := r.c.db.QueryRow(r.c.d.Rebind(
		"SELECT id, name FROM categories WHERE lower(trim(name)) = ?"),
		types.NormalizeKey(name))
	cat, err := hydrateCategory(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting category %q: %w", name, err)
	}
	return cat, nil
}

// PokemonByCategory returns all Pokemon linked to the category.
func (r *categoryRepo) PokemonByCategory(categoryID int64) ([]types.Pokemon, error) {
	if categoryID <= 0 {
		return nil, types.ErrInvalidID
	}
	rows, err := r.c.db.Query(r.c.d.Rebind(
		`SELECT p.id, p.name, p.birth_date FROM pokemon p
		 JOIN pokemon_categories pc ON pc.pokemon_id = p.id
		 WHERE pc.category_id = ?
		 ORDER BY p.id ASC`), categoryID)
	if err != nil {
		return nil, fmt.Errorf("listing pokemon of category %d: %w", categoryID, err)
	}
	defer rows.Close()
	return scanPokemon(rows)
}

// Create inserts the category and assigns its ID.
func (r *categoryRepo) Create(category *types.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return types.ErrInvalidName
	}
	id, err := r.c.d.InsertID(r.c.db, r.c.d.Rebind(
		"INSERT INTO categories (name) VALUES (?)"), category.Name)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}
	category.ID = id
	r.c.log.Debug().Int64("id", id).Str("name", category.Name).Msg("created category")
	return nil
}

// Update replaces the category row by ID.
func (r *categoryRepo) Update(category types.Category) error {
	if category.ID <= 0 {
		return types.ErrInvalidID
	}
	if strings.TrimSpace(category.Name) == "" {
		return types.ErrInvalidName
	}
	res, err := r.c.db.Exec(r.c.d.Rebind(
		"UPDATE categories SET name = ? WHERE id = ?"), category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("updating category %d: %w", category.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating category %d: %w", category.ID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes the category row. PokemonCategory rows referencing it are
// left in place.
func (r *categoryRepo) Delete(id int64) error {
	return r.c.deleteByID("categories", id)
}

func hydrateCategory(row *sql.Row) (*types.Category, error) {
	var c types.Category
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCategories(rows *sql.Rows) ([]types.Category, error) {
	results := []types.Category{}
	for rows.Next() {
		var c types.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return results, nil
}
