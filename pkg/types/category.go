package types

// Category is a taxonomic grouping of Pokemon. Many-to-many with Pokemon via
// PokemonCategory rows.
type Category struct {
	ID   int64  // Store-assigned, unique among categories.
	Name string // Natural key.
}

// NameKey returns the normalized natural key.
func (c Category) NameKey() string {
	return NormalizeKey(c.Name)
}
