package types

// Owner is a person who owns Pokemon. Every owner resides in exactly one
// Country; ownership links to Pokemon are held in PokemonOwner rows.
type Owner struct {
	ID        int64 // Store-assigned, unique among owners.
	FirstName string
	LastName  string
	CountryID int64 // Owning country.
}

// NameKey returns the normalized first+last name pair used for duplicate
// detection.
func (o Owner) NameKey() (first, last string) {
	return NormalizeKey(o.FirstName), NormalizeKey(o.LastName)
}
