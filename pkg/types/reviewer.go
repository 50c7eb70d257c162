package types

// Reviewer is a person who writes Reviews. One-to-many owning Reviews.
type Reviewer struct {
	ID        int64 // Store-assigned, unique among reviewers.
	FirstName string
	LastName  string
}

// NameKey returns the normalized first+last name pair used for duplicate
// detection.
func (r Reviewer) NameKey() (first, last string) {
	return NormalizeKey(r.FirstName), NormalizeKey(r.LastName)
}
