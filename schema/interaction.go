package schema

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	InteractionCollection = "interaction"
)

// InteractionType - the kind of signal a user produced against a POI
type InteractionType string

const (
	InteractionView    InteractionType = "VIEW"
	InteractionClick   InteractionType = "CLICK"
	InteractionLike    InteractionType = "LIKE"
	InteractionShare   InteractionType = "SHARE"
	InteractionVisit   InteractionType = "VISIT"
	InteractionCheckIn InteractionType = "CHECK_IN"
)

// InteractionWeights determines how much each interaction type reinforces
// the tags of the target POI in the user's preference vector.
var InteractionWeights = map[InteractionType]float64{
	InteractionView:    0.1,
	InteractionClick:   0.2,
	InteractionLike:    0.3,
	InteractionShare:   0.4,
	InteractionVisit:   0.5,
	InteractionCheckIn: 0.6,
}

// ParseInteractionType validates a wire value against the known types.
func ParseInteractionType(s string) (InteractionType, error) {
	t := InteractionType(s)
	if _, ok := InteractionWeights[t]; !ok {
		return "", fmt.Errorf("unknown interaction type: %q", s)
	}
	return t, nil
}

// Interaction - an append-only record of a user acting on a POI
type Interaction struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	ProfileID string             `bson:"profile_id" json:"profile_id"`
	POIID     primitive.ObjectID `bson:"poi_id" json:"poi_id"`
	Type      InteractionType    `bson:"type" json:"type"`
	Timestamp time.Time          `bson:"ts" json:"timestamp"`
}
