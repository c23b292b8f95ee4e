package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BlacklistCollection = "blacklist"
)

// BlacklistEntry temporarily suppresses a POI from recommendations.
// At most one entry exists per POI (unique index on poi_id); blacklisting a
// POI again replaces the previous entry. An entry is active while
// now < expires_at; expiry is a pure time comparison, so correctness never
// depends on how often the cleanup pass runs.
type BlacklistEntry struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	POIID     primitive.ObjectID `bson:"poi_id" json:"poi_id"`
	Reason    string             `bson:"reason" json:"reason"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
}

// Active reports whether the entry still suppresses its POI at t.
func (e BlacklistEntry) Active(t time.Time) bool {
	return t.Before(e.ExpiresAt)
}
