package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReviewCollection = "review"
)

// NegativeRatingCeiling - reviews strictly below this rating count as
// negative feedback when deciding whether to suppress a POI.
const NegativeRatingCeiling = 3.0

// Review - an immutable user review of a POI. Creating one triggers a
// recompute of the POI's cached average_rating and rating_count.
type Review struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	ProfileID string             `bson:"profile_id" json:"profile_id"`
	POIID     primitive.ObjectID `bson:"poi_id" json:"poi_id"`
	Rating    float64            `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Timestamp time.Time          `bson:"ts" json:"timestamp"`
}

// ValidRating reports whether a rating is inside the accepted [0, 5] range.
func ValidRating(r float64) bool {
	return r >= 0 && r <= 5
}
