package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var _ types.OwnerRepository = (*ownerRepo)(nil)

type ownerRepo struct {
	c *Catalog
}

const ownerColumns = "id, first_name, last_name, country_id"

// Exists reports whether an owner row with the given ID is present.
func (r *ownerRepo) Exists(id int64) (bool, error) {
	if id <= 0 {
		return false, types.ErrInvalidID
	}
	return r.c.exists("SELECT 1 FROM owners WHERE id = ?", id)
}

// ExistsNamed reports whether an owner with the normalized first+last name
// pair is present.
func (r *ownerRepo) ExistsNamed(firstName, lastName string) (bool, error) {
	return r.c.exists(
		"SELECT 1 FROM owners WHERE lower(trim(first_name)) = ? AND lower(trim(last_name)) = ?",
		types.NormalizeKey(firstName), types.NormalizeKey(lastName),
	)
}

// List returns all owners.
func (r *ownerRepo) List() ([]types.Owner, error) {
	rows, err := r.c.db.Query("SELECT " + ownerColumns + " FROM owners")
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}
	defer rows.Close()
	return scanOwners(rows)
}

// ListByIDs returns owners whose ID is in ids. Empty input yields an empty
// result.
func (r *ownerRepo) ListByIDs(ids []int64) ([]types.Owner, error) {
	if len(ids) == 0 {
		return []types.Owner{}, nil
	}
	marks, args := inPlaceholders(ids)
	rows, err := r.c.db.Query(r.c.d.Rebind(
		"SELECT "+ownerColumns+" FROM owners WHERE id IN ("+marks+")"), args...)
	if err != nil {
		return nil, fmt.Errorf("listing owners by ids: %w", err)
	}
	defer rows.Close()
	return scanOwners(rows)
}

// Get returns the owner with the given ID.
func (r *ownerRepo) Get(id int64) (*types.Owner, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	row := r.c.db.QueryRow(r.c.d.Rebind(
		"SELECT "+ownerColumns+" FROM owners WHERE id = ?"), id)
	owner, err := hydrateOwner(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting owner %d: %w", id, err)
	}
	return owner, nil
}

// GetByName returns the owner with the normalized first+last name pair.
func (r *ownerRepo) GetByName(firstName, lastName string) (*types.Owner, error) {
	row := r.c.db.QueryRow(r.c.d.Rebind(
		"SELECT "+ownerColumns+" FROM owners WHERE lower(trim(first_name)) = ? AND lower(trim(last_name)) = ?"),
		types.NormalizeKey(firstName), types.NormalizeKey(lastName))
	owner, err := hydrateOwner(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting owner %q %q: %w", firstName, lastName, err)
	}
	return owner, nil
}

// OfPokemon returns the owner linked to the given Pokemon.
func (r *ownerRepo) OfPokemon(pokemonID int64) (*types.Owner, error) {
	if pokemonID <= 0 {
		return nil, types.ErrInvalidID
	}
	row := r.c.db.QueryRow(r.c.d.Rebind(
		`SELECT o.id, o.first_name, o.last_name, o.country_id FROM owners o
		 JOIN pokemon_owners po ON po.owner_id = o.id
		 WHERE po.pokemon_id = ?`), pokemonID)
	owner, err := hydrateOwner(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting owner of pokemon %d: %w", pokemonID, err)
	}
	return owner, nil
}

// PokemonByOwner returns all Pokemon linked to the owner.
func (r *ownerRepo) PokemonByOwner(ownerID int64) ([]types.Pokemon, error) {
	if ownerID <= 0 {
		return nil, types.ErrInvalidID
	}
	rows, err := r.c.db.Query(r.c.d.Rebind(
		`SELECT p.id, p.name, p.birth_date FROM pokemon p
		 JOIN pokemon_owners po ON po.pokemon_id = p.id
		 WHERE po.owner_id = ?
		 ORDER BY p.id ASC`), ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing pokemon of owner %d: %w", ownerID, err)
	}
	defer rows.Close()
	return scanPokemon(rows)
}

// Create inserts the owner under the given country. The country must exist.
func (r *ownerRepo) Create(owner *types.Owner, countryID int64) error {
	if strings.TrimSpace(owner.FirstName) == "" || strings.TrimSpace(owner.LastName) == "" {
		return types.ErrInvalidName
	}
	if countryID <= 0 {
		return types.ErrInvalidID
	}
	ok, err := r.c.exists("SELECT 1 FROM countries WHERE id = ?", countryID)
	if err != nil {
		return fmt.Errorf("checking country %d: %w", countryID, err)
	}
	if !ok {
		return fmt.Errorf("country %d: %w", countryID, types.ErrInvalidReference)
	}
	id, err := r.c.d.InsertID(r.c.db, r.c.d.Rebind(
		"INSERT INTO owners (first_name, last_name, country_id) VALUES (?, ?, ?)"),
		owner.FirstName, owner.LastName, countryID)
	if err != nil {
		return fmt.Errorf("creating owner: %w", err)
	}
	owner.ID = id
	owner.CountryID = countryID
	r.c.log.Debug().Int64("id", id).Int64("country_id", countryID).Msg("created owner")
	return nil
}

// Update replaces the owner row by ID. PokemonOwner rows are not touched.
func (r *ownerRepo) Update(owner types.Owner) error {
	if owner.ID <= 0 {
		return types.ErrInvalidID
	}
	if strings.TrimSpace(owner.FirstName) == "" || strings.TrimSpace(owner.LastName) == "" {
		return types.ErrInvalidName
	}
	res, err := r.c.db.Exec(r.c.d.Rebind(
		"UPDATE owners SET first_name = ?, last_name = ?, country_id = ? WHERE id = ?"),
		owner.FirstName, owner.LastName, owner.CountryID, owner.ID)
	if err != nil {
		return fmt.Errorf("updating owner %d: %w", owner.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating owner %d: %w", owner.ID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes the owner row. PokemonOwner rows referencing it are left in
// place.
func (r *ownerRepo) Delete(id int64) error {
	return r.c.deleteByID("owners", id)
}

// DeleteMany removes the owners whose IDs are in ids. Empty input is a no-op.
func (r *ownerRepo) DeleteMany(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	marks, args := inPlaceholders(ids)
	if _, err := r.c.db.Exec(r.c.d.Rebind(
		"DELETE FROM owners WHERE id IN ("+marks+")"), args...); err != nil {
		return fmt.Errorf("deleting owners: %w", err)
	}
	return nil
}

func hydrateOwner(row *sql.Row) (*types.Owner, error) {
	var o types.Owner
	if err := row.Scan(&o.ID, &o.FirstName, &o.LastName, &o.CountryID); err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOwners(rows *sql.Rows) ([]types.Owner, error) {
	results := []types.Owner{}
	for rows.Next() {
		var o types.Owner
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.CountryID); err != nil {
			return nil, fmt.Errorf("scanning owner: %w", err)
		}
		results = append(results, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating owners: %w", err)
	}
	return results, nil
}
