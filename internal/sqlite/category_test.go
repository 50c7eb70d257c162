// Tests for category and country operations.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

func TestCategories(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "create assigns ID and round-trips",
			check: func(t *testing.T, b *Backend) {
				categories, err := b.Categories()
				require.NoError(t, err)

				category := &types.Category{Name: "Electric"}
				require.NoError(t, categories.Create(category))
				assert.Positive(t, category.ID)

				got, err := categories.Get(category.ID)
				require.NoError(t, err)
				assert.Equal(t, "Electric", got.Name)
			},
		},
		{
			name: "empty name is rejected",
			check: func(t *testing.T, b *Backend) {
				categories, err := b.Categories()
				require.NoError(t, err)
				err = categories.Create(&types.Category{Name: " "})
				assert.ErrorIs(t, err, types.ErrInvalidName)
			},
		},
		{
			name: "get by name ignores case and whitespace",
			check: func(t *testing.T, b *Backend) {
				categories, err := b.Categories()
				require.NoError(t, err)

				category := &types.Category{Name: "Electric"}
				require.NoError(t, categories.Create(category))

				got, err := categories.GetByName(" ELECTRIC ")
				require.NoError(t, err)
				assert.Equal(t, category.ID, got.ID)

				ok, err := categories.ExistsNamed("electric")
				require.NoError(t, err)
				assert.True(t, ok)
			},
		},
		{
			name: "pokemon by category returns linked pokemon",
			check: func(t *testing.T, b *Backend) {
				id := seedPokemon(t, b, "Pikachu")

				categories, err := b.Categories()
				require.NoError(t, err)
				category, err := categories.GetByName("electric")
				require.NoError(t, err)

				got, err := categories.PokemonByCategory(category.ID)
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, id, got[0].ID)
			},
		},
		{
			name: "delete leaves association rows in place",
			check: func(t *testing.T, b *Backend) {
				id := seedPokemon(t, b, "Pikachu")

				categories, err := b.Categories()
				require.NoError(t, err)
				category, err := categories.GetByName("electric")
				require.NoError(t, err)
				require.NoError(t, categories.Delete(category.ID))

				var links int
				require.NoError(t, b.db.QueryRow(
					"SELECT COUNT(*) FROM pokemon_categories WHERE pokemon_id = ?", id).Scan(&links))
				assert.Equal(t, 1, links, "association rows survive category deletion")
			},
		},
		{
			name: "update and delete of missing category return ErrNotFound",
			check: func(t *testing.T, b *Backend) {
				categories, err := b.Categories()
				require.NoError(t, err)

				err = categories.Update(types.Category{ID: 42, Name: "Ghost"})
				assert.ErrorIs(t, err, types.ErrNotFound)
				assert.ErrorIs(t, categories.Delete(42), types.ErrNotFound)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, setupBackend(t))
		})
	}
}

func TestCountries(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "create assigns ID and round-trips",
			check: func(t *testing.T, b *Backend) {
				countries, err := b.Countries()
				require.NoError(t, err)

				country := &types.Country{Name: "Kanto"}
				require.NoError(t, countries.Create(country))
				assert.Positive(t, country.ID)

				got, err := countries.GetByName("kanto")
				require.NoError(t, err)
				assert.Equal(t, country.ID, got.ID)
			},
		},
		{
			name: "by owner resolves the residence country",
			check: func(t *testing.T, b *Backend) {
				ownerID := seedOwner(t, b)

				countries, err := b.Countries()
				require.NoError(t, err)

				got, err := countries.ByOwner(ownerID)
				require.NoError(t, err)
				assert.Equal(t, "Kanto", got.Name)
			},
		},
		{
			name: "owners from country lists residents",
			check: func(t *testing.T, b *Backend) {
				ownerID := seedOwner(t, b)

				countries, err := b.Countries()
				require.NoError(t, err)
				country, err := countries.GetByName("kanto")
				require.NoError(t, err)

				got, err := countries.OwnersFromCountry(country.ID)
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, ownerID, got[0].ID)
			},
		},
		{
			name: "owners from empty country yields empty result",
			check: func(t *testing.T, b *Backend) {
				countries, err := b.Countries()
				require.NoError(t, err)

				country := &types.Country{Name: "Hoenn"}
				require.NoError(t, countries.Create(country))

				got, err := countries.OwnersFromCountry(country.ID)
				require.NoError(t, err)
				assert.Empty(t, got)
			},
		},
		{
			name: "get missing country returns ErrNotFound",
			check: func(t *testing.T, b *Backend) {
				countries, err := b.Countries()
				require.NoError(t, err)

				_, err = countries.Get(42)
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, setupBackend(t))
		})
	}
}
