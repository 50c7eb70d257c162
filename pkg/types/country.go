package types

// Country is a place of residence. One-to-many owning Owners.
type Country struct {
	ID   int64  // Store-assigned, unique among countries.
	Name string // Natural key.
}

// NameKey returns the normalized natural key.
func (c Country) NameKey() string {
	return NormalizeKey(c.Name)
}
