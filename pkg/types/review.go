package types

// Review is a rated write-up of one Pokemon by one Reviewer. Both references
// must resolve at creation time. The rating is expected in the 1-5 range but
// is not range-checked here; aggregation treats non-positive sums as zero.
type Review struct {
	ID         int64  // Store-assigned, unique among reviews.
	Title      string // Natural key.
	Text       string
	Rating     int
	PokemonID  int64 // Reviewed Pokemon.
	ReviewerID int64 // Authoring reviewer.
}

// TitleKey returns the normalized natural key.
func (r Review) TitleKey() string {
	return NormalizeKey(r.Title)
}
