// Tests for review and reviewer operations, including the review cascade.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// seedReviewer creates a reviewer, returning its ID.
func seedReviewer(t *testing.T, b *Backend) int64 {
	t.Helper()
	reviewers, err := b.Reviewers()
	require.NoError(t, err)
	reviewer := &types.Reviewer{FirstName: "Misty", LastName: "Waterflower"}
	require.NoError(t, reviewers.Create(reviewer))
	return reviewer.ID
}

func TestReviewCreate(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "create assigns ID and references",
			check: func(t *testing.T, b *Backend) {
				pokemonID := seedPokemon(t, b, "Pikachu")
				reviewerID := seedReviewer(t, b)

				reviews, err := b.Reviews()
				require.NoError(t, err)

				review := &types.Review{Title: "Shocking", Text: "Would catch again.", Rating: 5}
				require.NoError(t, reviews.Create(review, pokemonID, reviewerID))
				assert.Positive(t, review.ID)
				assert.Equal(t, pokemonID, review.PokemonID)
				assert.Equal(t, reviewerID, review.ReviewerID)
			},
		},
		{
			name: "missing pokemon fails before insert",
			check: func(t *testing.T, b *Backend) {
				reviewerID := seedReviewer(t, b)

				reviews, err := b.Reviews()
				require.NoError(t, err)

				review := &types.Review{Title: "Shocking", Rating: 5}
				err = reviews.Create(review, 999, reviewerID)
				assert.ErrorIs(t, err, types.ErrInvalidReference)

				var count int
				require.NoError(t, b.db.QueryRow("SELECT COUNT(*) FROM reviews").Scan(&count))
				assert.Zero(t, count)
			},
		},
		{
			name: "missing reviewer fails before insert",
			check: func(t *testing.T, b *Backend) {
				pokemonID := seedPokemon(t, b, "Pikachu")

				reviews, err := b.Reviews()
				require.NoError(t, err)

				review := &types.Review{Title: "Shocking", Rating: 5}
				err = reviews.Create(review, pokemonID, 999)
				assert.ErrorIs(t, err, types.ErrInvalidReference)
			},
		},
		{
			name: "blank title is rejected",
			check: func(t *testing.T, b *Backend) {
				reviews, err := b.Reviews()
				require.NoError(t, err)

				err = reviews.Create(&types.Review{Title: "  "}, 1, 1)
				assert.ErrorIs(t, err, types.ErrInvalidName)
			},
		},
		{
			name: "exists titled ignores case and whitespace",
			check: func(t *testing.T, b *Backend) {
				pokemonID := seedPokemon(t, b, "Pikachu")
				reviewerID := seedReviewer(t, b)

				reviews, err := b.Reviews()
				require.NoError(t, err)
				review := &types.Review{Title: "Shocking", Rating: 5}
				require.NoError(t, reviews.Create(review, pokemonID, reviewerID))

				ok, err := reviews.ExistsTitled("  SHOCKING ")
				require.NoError(t, err)
				assert.True(t, ok)

				ok, err = reviews.ExistsTitled("electrifying")
				require.NoError(t, err)
				assert.False(t, ok)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, setupBackend(t))
		})
	}
}

func TestReviewQueries(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "of pokemon returns only that pokemon's reviews",
			check: func(t *testing.T, b *Backend) {
				firstID := seedPokemon(t, b, "Pikachu")
				reviewerID := seedReviewer(t, b)

				ownerID := seedOwner2(t, b)
				categoryID := seedCategory2(t, b)
				pokemon, err := b.Pokemon()
				require.NoError(t, err)
				second := &types.Pokemon{Name: "Charmander", BirthDate: birthDate(1996)}
				require.NoError(t, pokemon.Create(second, ownerID, categoryID))

				reviews, err := b.Reviews()
				require.NoError(t, err)
				require.NoError(t, reviews.Create(
					&types.Review{Title: "first", Rating: 5}, firstID, reviewerID))
				require.NoError(t, reviews.Create(
					&types.Review{Title: "second", Rating: 3}, second.ID, reviewerID))

				got, err := reviews.OfPokemon(firstID)
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, "first", got[0].Title)
			},
		},
		{
			name: "update replaces title, body, and rating but not references",
			check: func(t *testing.T, b *Backend) {
				pokemonID := seedPokemon(t, b, "Pikachu")
				reviewerID := seedReviewer(t, b)

				reviews, err := b.Reviews()
				require.NoError(t, err)
				review := &types.Review{Title: "Shocking", Text: "ok", Rating: 3}
				require.NoError(t, reviews.Create(review, pokemonID, reviewerID))

				updated := types.Review{ID: review.ID, Title: "Electrifying", Text: "great", Rating: 5}
				require.NoError(t, reviews.Update(updated))

				got, err := reviews.Get(review.ID)
				require.NoError(t, err)
				assert.Equal(t, "Electrifying", got.Title)
				assert.Equal(t, 5, got.Rating)
				assert.Equal(t, pokemonID, got.PokemonID)
				assert.Equal(t, reviewerID, got.ReviewerID)
			},
		},
		{
			name: "get missing review returns ErrNotFound",
			check: func(t *testing.T, b *Backend) {
				reviews, err := b.Reviews()
				require.NoError(t, err)
				_, err = reviews.Get(42)
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

func TestReviewerDelete(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "delete cascades the reviewer's reviews",
			check: func(t *testing.T, b *Backend) {
				pokemonID := seedPokemon(t, b, "Pikachu")
				reviewerID := seedReviewer(t, b)

				reviews, err := b.Reviews()
				require.NoError(t, err)
				review := &types.Review{Title: "Shocking", Rating: 5}
				require.NoError(t, reviews.Create(review, pokemonID, reviewerID))

				reviewers, err := b.Reviewers()
				require.NoError(t, err)
				require.NoError(t, reviewers.Delete(reviewerID))

				var count int
				require.NoError(t, b.db.QueryRow(
					"SELECT COUNT(*) FROM reviews WHERE reviewer_id = ?", reviewerID).Scan(&count))
				assert.Zero(t, count)

				// The reviewed pokemon survives.
				pokemon, err := b.Pokemon()
				require.NoError(t, err)
				ok, err := pokemon.Exists(pokemonID)
				require.NoError(t, err)
				assert.True(t, ok)
			},
		},
		{
			name: "reviews of lists the reviewer's reviews",
			check: func(t *testing.T, b *Backend) {
				pokemonID := seedPokemon(t, b, "Pikachu")
				reviewerID := seedReviewer(t, b)

				reviews, err := b.Reviews()
				require.NoError(t, err)
				require.NoError(t, reviews.Create(
					&types.Review{Title: "Shocking", Rating: 5}, pokemonID, reviewerID))

				reviewers, err := b.Reviewers()
				require.NoError(t, err)
				got, err := reviewers.ReviewsOf(reviewerID)
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, "Shocking", got[0].Title)
			},
		},
		{
			name: "delete of missing reviewer returns ErrNotFound",
			check: func(t *testing.T, b *Backend) {
				reviewers, err := b.Reviewers()
				require.NoError(t, err)
				assert.ErrorIs(t, reviewers.Delete(42), types.ErrNotFound)
			},
		},
		{
			name: "delete of reviewer removes all their reviews via DeleteOfReviewer",
			check: func(t *testing.T, b *Backend) {
				pokemonID := seedPokemon(t, b, "Pikachu")
				reviewerID := seedReviewer(t, b)

				reviews, err := b.Reviews()
				require.NoError(t, err)
				require.NoError(t, reviews.Create(
					&types.Review{Title: "Shocking", Rating: 5}, pokemonID, reviewerID))

				require.NoError(t, reviews.DeleteOfReviewer(reviewerID))

				got, err := reviews.List()
				require.NoError(t, err)
				assert.Empty(t, got)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, setupBackend(t))
		})
	}
}
