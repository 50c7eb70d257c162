package types

import "errors"

// Catalog defines the interface for backend-agnostic catalog access. Callers
// attach to a backend, obtain typed repositories, and detach when done.
type Catalog interface {
	// Attach connects the Catalog to the backend described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, repository accessors return ErrCatalogDetached.
	Detach() error

	// Categories returns the category repository.
	Categories() (CategoryRepository, error)

	// Countries returns the country repository.
	Countries() (CountryRepository, error)

	// Owners returns the owner repository.
	Owners() (OwnerRepository, error)

	// Pokemon returns the pokemon repository.
	Pokemon() (PokemonRepository, error)

	// Reviewers returns the reviewer repository.
	Reviewers() (ReviewerRepository, error)

	// Reviews returns the review repository.
	Reviews() (ReviewRepository, error)
}

// Catalog lifecycle errors.
var (
	ErrCatalogDetached = errors.New("catalog is detached")
	ErrAlreadyAttached = errors.New("catalog is already attached")
)
