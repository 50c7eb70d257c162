package store

// meanRating computes the aggregate rating of a review set. An empty set or
// a non-positive sum yields exactly 0. The division happens in integer
// arithmetic before widening, so fractional means truncate toward zero:
// ratings of 3 and 4 average to 3, not 3.5.
func meanRating(ratings []int) float64 {
	sum := 0
	for _, rating := range ratings {
		sum += rating
	}
	if sum <= 0 {
		return 0
	}
	return float64(sum / len(ratings))
}
