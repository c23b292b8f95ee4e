package schema

import "time"

const (
	ProfileCollection = "profile"
)

// MaxPreferenceTags caps the size of a preference vector. Vectors only grow
// under the reinforcement rule, so without a cap a long-lived profile would
// accumulate weight for every tag it ever touched. When an update would push
// the vector over the cap, the lowest-weight tag is evicted.
const MaxPreferenceTags = 200

// Profile - user profile data. Preferences is the sparse preference vector:
// tag name to accumulated non-negative weight. Writes go through a single
// mongo update per interaction, so concurrent interactions from the same
// user are serialized by document-level atomicity.
type Profile struct {
	ID            string             `bson:"id" json:"id"`
	AccountNumber string             `bson:"account_number" json:"account_number"`
	Preferences   map[string]float64 `bson:"preferences" json:"preferences"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
