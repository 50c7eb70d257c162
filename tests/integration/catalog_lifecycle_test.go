// End-to-end catalog lifecycle through the public backend factory: attach,
// build the full entity graph, aggregate, cascade, detach.
package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pokedex/pkg/sqlite"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

func TestCatalogLifecycle(t *testing.T) {
	backend := sqlite.NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, backend.Attach(config))
	t.Cleanup(func() { backend.Detach() })

	// Build the reference graph: country -> owner, category, reviewer.
	countries, err := backend.Countries()
	require.NoError(t, err)
	country := &types.Country{Name: "Kanto"}
	require.NoError(t, countries.Create(country))

	owners, err := backend.Owners()
	require.NoError(t, err)
	owner := &types.Owner{FirstName: "Ash", LastName: "Ketchum"}
	require.NoError(t, owners.Create(owner, country.ID))

	categories, err := backend.Categories()
	require.NoError(t, err)
	category := &types.Category{Name: "Electric"}
	require.NoError(t, categories.Create(category))

	reviewers, err := backend.Reviewers()
	require.NoError(t, err)
	reviewer := &types.Reviewer{FirstName: "Misty", LastName: "Waterflower"}
	require.NoError(t, reviewers.Create(reviewer))

	// Create a pokemon and review it twice.
	pokemon, err := backend.Pokemon()
	require.NoError(t, err)
	p := &types.Pokemon{
		Name:      "Pikachu",
		BirthDate: time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, pokemon.Create(p, owner.ID, category.ID))

	reviews, err := backend.Reviews()
	require.NoError(t, err)
	require.NoError(t, reviews.Create(
		&types.Review{Title: "Shocking", Rating: 3}, p.ID, reviewer.ID))
	require.NoError(t, reviews.Create(
		&types.Review{Title: "Electrifying", Rating: 4}, p.ID, reviewer.ID))

	// Aggregate: (3+4)/2 truncates to 3.
	rating, err := pokemon.Rating(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, rating)

	// Relationship queries resolve both directions.
	gotOwner, err := owners.OfPokemon(p.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, gotOwner.ID)

	byCategory, err := categories.PokemonByCategory(category.ID)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, p.ID, byCategory[0].ID)

	gotCountry, err := countries.ByOwner(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, country.ID, gotCountry.ID)

	// Deleting the pokemon cascades its reviews.
	require.NoError(t, pokemon.Delete(p.ID))
	remaining, err := reviews.List()
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// Everything else survives.
	for name, probe := range map[string]func() (bool, error){
		"owner":    func() (bool, error) { return owners.Exists(owner.ID) },
		"category": func() (bool, error) { return categories.Exists(category.ID) },
		"reviewer": func() (bool, error) { return reviewers.Exists(reviewer.ID) },
		"country":  func() (bool, error) { return countries.Exists(country.ID) },
	} {
		ok, err := probe()
		require.NoError(t, err)
		assert.True(t, ok, "%s should survive the pokemon cascade", name)
	}

	require.NoError(t, backend.Detach())
	_, err = backend.Pokemon()
	assert.ErrorIs(t, err, types.ErrCatalogDetached)
}

func TestReviewerCascadeLifecycle(t *testing.T) {
	backend := sqlite.NewBackend()
	require.NoError(t, backend.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { backend.Detach() })

	countries, err := backend.Countries()
	require.NoError(t, err)
	country := &types.Country{Name: "Johto"}
	require.NoError(t, countries.Create(country))

	owners, err := backend.Owners()
	require.NoError(t, err)
	owner := &types.Owner{FirstName: "Gary", LastName: "Oak"}
	require.NoError(t, owners.Create(owner, country.ID))

	categories, err := backend.Categories()
	require.NoError(t, err)
	category := &types.Category{Name: "Fire"}
	require.NoError(t, categories.Create(category))

	pokemon, err := backend.Pokemon()
	require.NoError(t, err)
	p := &types.Pokemon{
		Name:      "Charmander",
		BirthDate: time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, pokemon.Create(p, owner.ID, category.ID))

	reviewers, err := backend.Reviewers()
	require.NoError(t, err)
	reviewer := &types.Reviewer{FirstName: "Brock", LastName: "Harrison"}
	require.NoError(t, reviewers.Create(reviewer))

	reviews, err := backend.Reviews()
	require.NoError(t, err)
	require.NoError(t, reviews.Create(
		&types.Review{Title: "Hot stuff", Rating: 5}, p.ID, reviewer.ID))

	// Deleting the reviewer cascades their reviews but not the pokemon.
	require.NoError(t, reviewers.Delete(reviewer.ID))

	remaining, err := reviews.OfPokemon(p.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	ok, err := pokemon.Exists(p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// With no reviews left the rating is exactly zero.
	rating, err := pokemon.Rating(p.ID)
	require.NoError(t, err)
	assert.Zero(t, rating)
}
