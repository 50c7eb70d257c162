// Tests for the Postgres backend. These need a reachable server and are
// skipped unless POKEDEX_POSTGRES_DSN is set, e.g.:
//
//	POKEDEX_POSTGRES_DSN=postgres://localhost/pokedex_test?sslmode=disable go test ./internal/postgres/
package postgres

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

func setupBackend(t *testing.T) *Backend {
	t.Helper()
	dsn := os.Getenv("POKEDEX_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POKEDEX_POSTGRES_DSN not set; skipping postgres tests")
	}

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendPostgres,
		DSN:     dsn,
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() {
		// Tests share one database; clear it between runs.
		for _, table := range []string{
			"reviews", "pokemon_owners", "pokemon_categories",
			"pokemon", "reviewers", "owners", "categories", "countries",
		} {
			_, err := b.db.Exec("DELETE FROM " + table)
			assert.NoError(t, err)
		}
		b.Detach()
	})
	return b
}

func TestPostgresLifecycle(t *testing.T) {
	b := setupBackend(t)

	// Double attach fails.
	err := b.Attach(types.Config{Backend: types.BackendPostgres})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestPostgresRoundTrip(t *testing.T) {
	b := setupBackend(t)

	countries, err := b.Countries()
	require.NoError(t, err)
	country := &types.Country{Name: "Kanto"}
	require.NoError(t, countries.Create(country))
	assert.Positive(t, country.ID)

	owners, err := b.Owners()
	require.NoError(t, err)
	owner := &types.Owner{FirstName: "Ash", LastName: "Ketchum"}
	require.NoError(t, owners.Create(owner, country.ID))

	categories, err := b.Categories()
	require.NoError(t, err)
	category := &types.Category{Name: "Electric"}
	require.NoError(t, categories.Create(category))

	pokemon, err := b.Pokemon()
	require.NoError(t, err)
	p := &types.Pokemon{
		Name:      "Pikachu",
		BirthDate: time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, pokemon.Create(p, owner.ID, category.ID))

	got, err := pokemon.GetByName(" PIKACHU ")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	dup := &types.Pokemon{Name: "pikachu", BirthDate: p.BirthDate}
	err = pokemon.Create(dup, owner.ID, category.ID)
	assert.ErrorIs(t, err, types.ErrDuplicateName)

	require.NoError(t, pokemon.Delete(p.ID))
	_, err = pokemon.Get(p.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
