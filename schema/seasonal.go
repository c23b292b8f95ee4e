package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SeasonalCollection = "seasonal_metadata"
)

// Season - quarter-of-year bucket for seasonal aggregation
type Season string

const (
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
	SeasonFall   Season = "FALL"
	SeasonWinter Season = "WINTER"
)

// Seasons lists all buckets in calendar order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// SeasonOf buckets a timestamp: Mar-May spring, Jun-Aug summer,
// Sep-Nov fall, Dec-Feb winter.
func SeasonOf(t time.Time) Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// SeasonalMetadata - per-POI per-season aggregate. Each analysis run
// recomputes the document from scratch and overwrites the stored one;
// values are never merged incrementally.
type SeasonalMetadata struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	POIID      primitive.ObjectID `bson:"poi_id" json:"poi_id"`
	Bucket     Season             `bson:"bucket" json:"bucket"`
	VisitCount int64              `bson:"visit_count" json:"visit_count"`
	// RatingCounts[i] counts reviews with floor(rating) == i, i in 0..5.
	RatingCounts [6]int64  `bson:"rating_counts" json:"rating_counts"`
	Peak         bool      `bson:"peak" json:"peak"`
	AnalyzedAt   time.Time `bson:"analyzed_at" json:"analyzed_at"`
}
