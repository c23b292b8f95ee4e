package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrendingPlace - one entry of a trending ranking
type TrendingPlace struct {
	POIID primitive.ObjectID `json:"poi_id"`
	Score float64            `json:"score"`
}

// TrendingList - the cached trending ranking of one geohash cell.
// Lists are regenerated wholesale and never patched; the ComputedAt/TTL
// pair stored inside the value is the authority on freshness, independent
// of the cache backend's own key expiry.
type TrendingList struct {
	Geohash    string          `json:"geohash"`
	Places     []TrendingPlace `json:"places"`
	ComputedAt time.Time       `json:"computed_at"`
	TTL        time.Duration   `json:"ttl"`
}

// Fresh reports whether the list may still be served at t without
// recomputation.
func (l *TrendingList) Fresh(t time.Time) bool {
	return t.Before(l.ComputedAt.Add(l.TTL))
}
