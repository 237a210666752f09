package ranking

import (
	"fmt"
	"math"
)

// Weights defines the blend of factors in the composite listing score.
// All scores are "lower is better"; each factor is normalized to [0,1]
// before weighting, so a valid set of weights sums to 1.
type Weights struct {
	Distance float64 `json:"distance"` // geometric stage distance (or seat-score fallback)
	Row      float64 `json:"row"`      // row depth within the section
	Price    float64 `json:"price"`    // price within the event's price range
}

// weightSumTolerance allows for float rounding when validating that
// weights sum to 1.
const weightSumTolerance = 1e-9

// DefaultWeights returns the standard scoring policy.
//
// score = 0.6*distance + 0.15*row + 0.25*price
//
// Distance dominates: a close seat at a fair price beats a cheap seat
// at the back. Row depth is a weak tiebreaker between sections of
// similar distance.
func DefaultWeights() Weights {
	return Weights{
		Distance: 0.6,
		Row:      0.15,
		Price:    0.25,
	}
}

// Validate checks that all weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	if w.Distance < 0 || w.Row < 0 || w.Price < 0 {
		return fmt.Errorf("ranking weights must be non-negative: %+v", w)
	}
	sum := w.Distance + w.Row + w.Price
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("ranking weights must sum to 1, got %g", sum)
	}
	return nil
}
