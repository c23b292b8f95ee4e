package score

import (
	"math"

	"github.com/wanderly/discovery-api/schema"
)

const (
	DefaultWeightInterest = 0.5
	DefaultWeightRating   = 0.3
	DefaultWeightDistance = 0.2

	// distanceDecayMeters is the e-folding constant of the distance decay:
	// a candidate 1km away scores exp(-1) ~ 0.37 on the distance component.
	distanceDecayMeters = 1000.0
)

// Weights holds the coefficients of the hybrid scoring formula. They are
// plain multipliers of a linear combination and need not sum to 1.
type Weights struct {
	Interest float64
	Rating   float64
	Distance float64
}

// DefaultWeights returns the 0.5 / 0.3 / 0.2 production coefficients.
func DefaultWeights() Weights {
	return Weights{
		Interest: DefaultWeightInterest,
		Rating:   DefaultWeightRating,
		Distance: DefaultWeightDistance,
	}
}

// RatingScore normalizes an average rating on [0, 5] into [0, 1].
// A POI with no reviews has rating 0 and scores 0; that is a valid value,
// not an error.
func RatingScore(averageRating float64) float64 {
	s := averageRating / 5.0
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// DistanceScore applies exponential decay to a distance in meters.
// Strictly decreasing with distance, continuous, and already inside (0, 1]
// for the non-negative domain.
func DistanceScore(distanceMeters float64) float64 {
	if distanceMeters < 0 {
		distanceMeters = 0
	}
	return math.Exp(-distanceMeters / distanceDecayMeters)
}

// Combine produces the final hybrid score as the exact weighted sum of the
// three components.
func Combine(w Weights, similarity, ratingScore, distanceScore float64) float64 {
	return w.Interest*similarity + w.Rating*ratingScore + w.Distance*distanceScore
}

// Less orders scored candidates for ranking: higher final score first,
// ties broken by higher rating, then shorter distance, then POI id, so the
// output order is deterministic for any input order.
func Less(a, b schema.ScoredPOI) bool {
	if a.FinalScore != b.FinalScore {
		return a.FinalScore > b.FinalScore
	}
	if a.AverageRating != b.AverageRating {
		return a.AverageRating > b.AverageRating
	}
	if a.DistanceMeters != b.DistanceMeters {
		return a.DistanceMeters < b.DistanceMeters
	}
	return a.POIID < b.POIID
}
