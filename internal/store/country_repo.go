package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var _ types.CountryRepository = (*countryRepo)(nil)

type countryRepo struct {
	c *Catalog
}

// Exists reports whether a country row with the given ID is present.
func (r *countryRepo) Exists(id int64) (bool, error) {
	if id <= 0 {
		return false, types.ErrInvalidID
	}
	return r.c.exists("SELECT 1 FROM countries WHERE id = ?", id)
}

// ExistsNamed reports whether a country with the normalized name is present.
func (r *countryRepo) ExistsNamed(name string) (bool, error) {
	return r.c.exists(
		"SELECT 1 FROM countries WHERE lower(trim(name)) = ?",
		types.NormalizeKey(name),
	)
}

// List returns all countries.
func (r *countryRepo) List() ([]types.Country, error) {
	rows, err := r.c.db.Query("SELECT id, name FROM countries")
	if err != nil {
		return nil, fmt.Errorf("listing countries: %w", err)
	}
	defer rows.Close()
	return scanCountries(rows)
}

// ListByIDs returns countries whose ID is in ids. Empty input yields an
// empty result.
func (r *countryRepo) ListByIDs(ids []int64) ([]types.Country, error) {
	if len(ids) == 0 {
		return []types.Country{}, nil
	}
	marks, args := inPlaceholders(ids)
	rows, err := r.c.db.Query(r.c.d.Rebind(
		"SELECT id, name FROM countries WHERE id IN ("+marks+")"), args...)
	if err != nil {
		return nil, fmt.Errorf("listing countries by ids: %w", err)
	}
	defer rows.Close()
	return scanCountries(rows)
}

// Get returns the country with the given ID.
func (r *countryRepo) Get(id int64) (*types.Country, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	row := r.c.db.QueryRow(r.c.d.Rebind(
		"SELECT id, name FROM countries WHERE id = ?"), id)
	country, err := hydrateCountry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting country %d: %w", id, err)
	}
	return country, nil
}

// GetByName returns the country with the normalized name.
func (r *countryRepo) GetByName(name string) (*types.Country, error) {
	row := r.c.db.QueryRow(r.c.d.Rebind(
		"SELECT id, name FROM countries WHERE lower(trim(name)) = ?"),
		types.NormalizeKey(name))
	country, err := hydrateCountry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting country %q: %w", name, err)
	}
	return country, nil
}

// ByOwner returns the country the given owner resides in.
func (r *countryRepo) ByOwner(ownerID int64) (*types.Country, error) {
	if ownerID <= 0 {
		return nil, types.ErrInvalidID
	}
	row := r.c.db.QueryRow(r.c.d.Rebind(
		`SELECT c.id, c.name FROM countries c
		 JOIN owners o ON o.country_id = c.id
		 WHERE o.id = ?`), ownerID)
	country, err := hydrateCountry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting country of owner %d: %w", ownerID, err)
	}
	return country, nil
}

// OwnersFromCountry returns all owners residing in the country.
func (r *countryRepo) OwnersFromCountry(countryID int64) ([]types.Owner, error) {
	if countryID <= 0 {
		return nil, types.ErrInvalidID
	}
	rows, err := r.c.db.Query(r.c.d.Rebind(
		"SELECT id, first_name, last_name, country_id FROM owners WHERE country_id = ?"),
		countryID)
	if err != nil {
		return nil, fmt.Errorf("listing owners from country %d: %w", countryID, err)
	}
	defer rows.Close()
	return scanOwners(rows)
}

// Create inserts the country and assigns its ID.
func (r *countryRepo) Create(country *types.Country) error {
	if strings.TrimSpace(country.Name) == "" {
		return types.ErrInvalidName
	}
	id, err := r.c.d.InsertID(r.c.db, r.c.d.Rebind(
		"INSERT INTO countries (name) VALUES (?)"), country.Name)
	if err != nil {
		return fmt.Errorf("creating country: %w", err)
	}
	country.ID = id
	r.c.log.Debug().Int64("id", id).Str("name", country.Name).Msg("created country")
	return nil
}

// Update replaces the country row by ID.
func (r *countryRepo) Update(country types.Country) error {
	if country.ID <= 0 {
		return types.ErrInvalidID
	}
	if strings.TrimSpace(country.Name) == "" {
		return types.ErrInvalidName
	}
	res, err := r.c.db.Exec(r.c.d.Rebind(
		"UPDATE countries SET name = ? WHERE id = ?"), country.Name, country.ID)
	if err != nil {
		return fmt.Errorf("updating country %d: %w", country.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating country %d: %w", country.ID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes the country row.
func (r *countryRepo) Delete(id int64) error {
	return r.c.deleteByID("countries", id)
}

func hydrateCountry(row *sql.Row) (*types.Country, error) {
	var c types.Country
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCountries(rows *sql.Rows) ([]types.Country, error) {
	results := []types.Country{}
	for rows.Next() {
		var c types.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning country: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating countries: %w", err)
	}
	return results, nil
}
