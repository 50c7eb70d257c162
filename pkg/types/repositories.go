package types

// CategoryRepository provides access to Category rows.
type CategoryRepository interface {
	// Exists reports whether a category with the given ID is present.
	Exists(id int64) (bool, error)

	// ExistsNamed reports whether a category with the given normalized name
	// is present.
	ExistsNamed(name string) (bool, error)

	// List returns all categories. Order is unspecified.
	List() ([]Category, error)

	// ListByIDs returns categories whose ID is in ids. An empty input yields
	// an empty result, not an error.
	ListByIDs(ids []int64) ([]Category, error)

	// Get returns the category with the given ID, or ErrNotFound.
	Get(id int64) (*Category, error)

	// GetByName returns the category with the given normalized name, or
	// ErrNotFound.
	GetByName(name string) (*Category, error)

	// PokemonByCategory returns all Pokemon linked to the category.
	PokemonByCategory(categoryID int64) ([]Pokemon, error)

	// Create inserts the category and assigns its ID.
	Create(category *Category) error

	// Update replaces the full row by ID. Natural-key uniqueness is not
	// revalidated.
	Update(category Category) error

	// Delete removes the category. Association rows referencing it are left
	// in place.
	Delete(id int64) error
}

// CountryRepository provides access to Country rows.
type CountryRepository interface {
	Exists(id int64) (bool, error)
	ExistsNamed(name string) (bool, error)
	List() ([]Country, error)
	ListByIDs(ids []int64) ([]Country, error)
	Get(id int64) (*Country, error)
	GetByName(name string) (*Country, error)

	// ByOwner returns the country the given owner resides in.
	ByOwner(ownerID int64) (*Country, error)

	// OwnersFromCountry returns all owners residing in the country.
	OwnersFromCountry(countryID int64) ([]Owner, error)

	Create(country *Country) error
	Update(country Country) error
	Delete(id int64) error
}

// OwnerRepository provides access to Owner rows.
type OwnerRepository interface {
	Exists(id int64) (bool, error)

	// ExistsNamed reports whether an owner with the given normalized
	// first+last name pair is present.
	ExistsNamed(firstName, lastName string) (bool, error)

	List() ([]Owner, error)

	// ListByIDs returns owners whose ID is in ids. An empty input yields an
	// empty result, not an error.
	ListByIDs(ids []int64) ([]Owner, error)

	Get(id int64) (*Owner, error)
	GetByName(firstName, lastName string) (*Owner, error)

	// OfPokemon returns the owner linked to the given Pokemon.
	OfPokemon(pokemonID int64) (*Owner, error)

	// PokemonByOwner returns all Pokemon linked to the owner.
	PokemonByOwner(ownerID int64) ([]Pokemon, error)

	// Create inserts the owner under the given country. Returns
	// ErrInvalidReference if the country does not exist.
	Create(owner *Owner, countryID int64) error

	// Update replaces the full row by ID. Existing PokemonOwner rows are not
	// touched.
	Update(owner Owner) error

	// Delete removes the owner. Association rows referencing it are left in
	// place.
	Delete(id int64) error

	// DeleteMany removes the owners whose IDs are in ids.
	DeleteMany(ids []int64) error
}

// PokemonRepository provides access to Pokemon rows and their aggregates.
type PokemonRepository interface {
	Exists(id int64) (bool, error)
	ExistsNamed(name string) (bool, error)

	// List returns all Pokemon ordered by ascending ID.
	List() ([]Pokemon, error)

	ListByIDs(ids []int64) ([]Pokemon, error)
	Get(id int64) (*Pokemon, error)
	GetByName(name string) (*Pokemon, error)

	// Rating returns the mean of the Pokemon's review ratings. The mean is
	// computed in integer arithmetic, so fractional values truncate toward
	// zero; an empty review set or a non-positive sum yields exactly 0.
	Rating(pokemonID int64) (float64, error)

	// Create inserts the pokemon together with exactly one PokemonOwner and
	// one PokemonCategory row, in a single transaction. Returns
	// ErrInvalidReference if the owner or category does not exist and
	// ErrDuplicateName if the normalized name is taken.
	Create(pokemon *Pokemon, ownerID, categoryID int64) error

	// Update replaces the pokemon row by ID. Association rows are fixed at
	// creation and are not touched.
	Update(pokemon Pokemon) error

	// Delete removes the pokemon, its reviews, and its association rows in a
	// single transaction.
	Delete(id int64) error

	// DeleteMany removes the Pokemon whose IDs are in ids, cascading each.
	DeleteMany(ids []int64) error
}

// ReviewerRepository provides access to Reviewer rows.
type ReviewerRepository interface {
	Exists(id int64) (bool, error)
	ExistsNamed(firstName, lastName string) (bool, error)
	List() ([]Reviewer, error)
	ListByIDs(ids []int64) ([]Reviewer, error)
	Get(id int64) (*Reviewer, error)

	// ReviewsOf returns all reviews authored by the reviewer.
	ReviewsOf(reviewerID int64) ([]Review, error)

	Create(reviewer *Reviewer) error
	Update(reviewer Reviewer) error

	// Delete removes the reviewer and all reviews they authored in a single
	// transaction.
	Delete(id int64) error

	// DeleteMany removes the reviewers whose IDs are in ids, cascading each.
	DeleteMany(ids []int64) error
}

// ReviewRepository provides access to Review rows.
type ReviewRepository interface {
	Exists(id int64) (bool, error)

	// ExistsTitled reports whether a review with the given normalized title
	// is present.
	ExistsTitled(title string) (bool, error)

	List() ([]Review, error)
	ListByIDs(ids []int64) ([]Review, error)
	Get(id int64) (*Review, error)

	// OfPokemon returns all reviews of the given Pokemon.
	OfPokemon(pokemonID int64) ([]Review, error)

	// Create inserts the review referencing the given Pokemon and reviewer.
	// Returns ErrInvalidReference if either parent does not exist.
	Create(review *Review, pokemonID, reviewerID int64) error

	Update(review Review) error
	Delete(id int64) error
	DeleteMany(ids []int64) error

	// DeleteOfPokemon removes all reviews referencing the Pokemon.
	DeleteOfPokemon(pokemonID int64) error

	// DeleteOfReviewer removes all reviews authored by the reviewer.
	DeleteOfReviewer(reviewerID int64) error
}
