package schema

import (
	"fmt"
	"time"
)

// RecommendContext - the caller-supplied context of one recommendation
// request: where the user is, how far to look, and how to filter.
type RecommendContext struct {
	UserLocation Location   `json:"user_location"`
	RadiusMeters float64    `json:"radius_meters"`
	MaxResults   int        `json:"max_results"`
	IsOpenOnly   bool       `json:"is_open_only"`
	TimeOfDay    *time.Time `json:"time_of_day,omitempty"`
}

// Validate rejects malformed contexts before any work happens.
func (c RecommendContext) Validate() error {
	if !c.UserLocation.Valid() {
		return fmt.Errorf("invalid reference point: lat=%f lon=%f",
			c.UserLocation.Latitude, c.UserLocation.Longitude)
	}
	if c.RadiusMeters <= 0 {
		return fmt.Errorf("radius must be positive, got %f", c.RadiusMeters)
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	return nil
}

// ScoredPOI - one ranked recommendation. The three component scores are
// returned alongside the final score so a caller can explain the ranking.
type ScoredPOI struct {
	POIID           string   `json:"poi_id"`
	POIName         string   `json:"poi_name"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	Category        string   `json:"category"`
	AverageRating   float64  `json:"average_rating"`
	FinalScore      float64  `json:"final_score"`
	SimilarityScore float64  `json:"similarity_score"`
	DistanceScore   float64  `json:"distance_score"`
	RatingScore     float64  `json:"rating_score"`
	DistanceMeters  float64  `json:"distance_meters"`
	Tags            []string `json:"tags"`
}
