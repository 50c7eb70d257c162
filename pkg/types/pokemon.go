package types

import "time"

// Pokemon is a cataloged creature. Its name is unique among Pokemon after
// normalization. Many-to-many with Owner and Category; one-to-many owning
// Reviews.
type Pokemon struct {
	ID        int64  // Store-assigned, unique among Pokemon.
	Name      string // Natural key, unique case- and whitespace-insensitively.
	BirthDate time.Time
}

// NameKey returns the normalized natural key.
func (p Pokemon) NameKey() string {
	return NormalizeKey(p.Name)
}

// PokemonOwner links one Pokemon to one Owner. Association rows are written
// when the Pokemon is created and never updated afterward.
type PokemonOwner struct {
	PokemonID int64
	OwnerID   int64
}

// PokemonCategory links one Pokemon to one Category. Association rows are
// written when the Pokemon is created and never updated afterward.
type PokemonCategory struct {
	PokemonID  int64
	CategoryID int64
}
