package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "empty set yields zero", ratings: nil, want: 0},
		{name: "single rating", ratings: []int{4}, want: 4},
		{name: "exact mean", ratings: []int{2, 4}, want: 3},
		{name: "fractional mean truncates toward zero", ratings: []int{3, 4}, want: 3},
		{name: "truncation drops large fractions too", ratings: []int{1, 1, 5}, want: 2},
		{name: "non-positive sum yields zero", ratings: []int{-2, 1}, want: 0},
		{name: "zero sum yields zero", ratings: []int{-3, 3}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, meanRating(tt.ratings))
		})
	}
}
