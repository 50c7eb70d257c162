// Tests for owner operations and the pokemon-owner relationship.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

func TestOwnerCreate(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "create assigns ID and country",
			check: func(t *testing.T, b *Backend) {
				countries, err := b.Countries()
				require.NoError(t, err)
				country := &types.Country{Name: "Kanto"}
				require.NoError(t, countries.Create(country))

				owners, err := b.Owners()
				require.NoError(t, err)
				owner := &types.Owner{FirstName: "Ash", LastName: "Ketchum"}
				require.NoError(t, owners.Create(owner, country.ID))
				assert.Positive(t, owner.ID)
				assert.Equal(t, country.ID, owner.CountryID)
			},
		},
		{
			name: "missing country fails before insert",
			check: func(t *testing.T, b *Backend) {
				owners, err := b.Owners()
				require.NoError(t, err)

				owner := &types.Owner{FirstName: "Ash", LastName: "Ketchum"}
				err = owners.Create(owner, 999)
				assert.ErrorIs(t, err, types.ErrInvalidReference)

				var count int
				require.NoError(t, b.db.QueryRow("SELECT COUNT(*) FROM owners").Scan(&count))
				assert.Zero(t, count)
			},
		},
		{
			name: "blank names are rejected",
			check: func(t *testing.T, b *Backend) {
				owners, err := b.Owners()
				require.NoError(t, err)

				err = owners.Create(&types.Owner{FirstName: "", LastName: "Ketchum"}, 1)
				assert.ErrorIs(t, err, types.ErrInvalidName)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, setupBackend(t))
		})
	}
}

func TestOwnerQueries(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "get by name ignores case and whitespace",
			check: func(t *testing.T, b *Backend) {
				ownerID := seedOwner(t, b)

				owners, err := b.Owners()
				require.NoError(t, err)

				got, err := owners.GetByName(" ASH ", "ketchum")
				require.NoError(t, err)
				assert.Equal(t, ownerID, got.ID)

				ok, err := owners.ExistsNamed("ash", "KETCHUM")
				require.NoError(t, err)
				assert.True(t, ok)
			},
		},
		{
			name: "list by IDs with empty input yields empty result",
			check: func(t *testing.T, b *Backend) {
				owners, err := b.Owners()
				require.NoError(t, err)

				got, err := owners.ListByIDs(nil)
				require.NoError(t, err)
				assert.Empty(t, got)
			},
		},
		{
			name: "of pokemon resolves the linked owner",
			check: func(t *testing.T, b *Backend) {
				pokemonID := seedPokemon(t, b, "Pikachu")

				owners, err := b.Owners()
				require.NoError(t, err)

				got, err := owners.OfPokemon(pokemonID)
				require.NoError(t, err)
				assert.Equal(t, "Ash", got.FirstName)
			},
		},
		{
			name: "update does not alter association rows",
			check: func(t *testing.T, b *Backend) {
				pokemonID := seedPokemon(t, b, "Pikachu")

				owners, err := b.Owners()
				require.NoError(t, err)
				owner, err := owners.GetByName("ash", "ketchum")
				require.NoError(t, err)

				owner.FirstName = "Red"
				require.NoError(t, owners.Update(*owner))

				got, err := owners.PokemonByOwner(owner.ID)
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, pokemonID, got[0].ID)
			},
		},
		{
			name: "pokemon by owner lists linked pokemon in ID order",
			check: func(t *testing.T, b *Backend) {
				ownerID := seedOwner(t, b)
				categoryID := seedCategory(t, b)

				pokemon, err := b.Pokemon()
				require.NoError(t, err)
				for _, name := range []string{"Pikachu", "Bulbasaur"} {
					p := &types.Pokemon{Name: name, BirthDate: birthDate(1996)}
					require.NoError(t, pokemon.Create(p, ownerID, categoryID))
				}

				owners, err := b.Owners()
				require.NoError(t, err)
				got, err := owners.PokemonByOwner(ownerID)
				require.NoError(t, err)
				require.Len(t, got, 2)
				assert.Less(t, got[0].ID, got[1].ID)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, setupBackend(t))
		})
	}
}

func TestOwnerDelete(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "delete leaves association rows in place",
			check: func(t *testing.T, b *Backend) {
				pokemonID := seedPokemon(t, b, "Pikachu")

				owners, err := b.Owners()
				require.NoError(t, err)
				owner, err := owners.GetByName("ash", "ketchum")
				require.NoError(t, err)
				require.NoError(t, owners.Delete(owner.ID))

				var links int
				require.NoError(t, b.db.QueryRow(
					"SELECT COUNT(*) FROM pokemon_owners WHERE pokemon_id = ?", pokemonID).Scan(&links))
				assert.Equal(t, 1, links, "association rows survive owner deletion")

				// The pokemon itself survives too.
				pokemon, err := b.Pokemon()
				require.NoError(t, err)
				ok, err := pokemon.Exists(pokemonID)
				require.NoError(t, err)
				assert.True(t, ok)
			},
		},
		{
			name: "delete many removes all listed owners",
			check: func(t *testing.T, b *Backend) {
				countries, err := b.Countries()
				require.NoError(t, err)
				country := &types.Country{Name: "Kanto"}
				require.NoError(t, countries.Create(country))

				owners, err := b.Owners()
				require.NoError(t, err)
				first := &types.Owner{FirstName: "Ash", LastName: "Ketchum"}
				second := &types.Owner{FirstName: "Gary", LastName: "Oak"}
				require.NoError(t, owners.Create(first, country.ID))
				require.NoError(t, owners.Create(second, country.ID))

				require.NoError(t, owners.DeleteMany([]int64{first.ID, second.ID}))

				got, err := owners.List()
				require.NoError(t, err)
				assert.Empty(t, got)
			},
		},
		{
			name: "delete of missing owner returns ErrNotFound",
			check: func(t *testing.T, b *Backend) {
				owners, err := b.Owners()
				require.NoError(t, err)
				assert.ErrorIs(t, owners.Delete(42), types.ErrNotFound)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, setupBackend(t))
		})
	}
}
