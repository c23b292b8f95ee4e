package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wanderly/discovery-api/schema"
)

var (
	ErrProfileNotFound = fmt.Errorf("profile not found")
	ErrProfileExisted  = fmt.Errorf("profile already existed")
)

type ProfileStore interface {
	CreateProfile(ctx context.Context, accountNumber string) (*schema.Profile, error)
	GetProfile(ctx context.Context, id string) (*schema.Profile, error)
	AppendPreferences(ctx context.Context, profileID string, tags []string, increment float64) error
}

// CreateProfile registers a profile with an empty preference vector.
func (m *mongoDB) CreateProfile(ctx context.Context, accountNumber string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	now := time.Now().UTC()
	profile := schema.Profile{
		ID:            uuid.New().String(),
		AccountNumber: accountNumber,
		Preferences:   map[string]float64{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := c.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrProfileExisted
		}
		return nil, err
	}

	return &profile, nil
}

// GetProfile finds a profile by its id
func (m *mongoDB) GetProfile(ctx context.Context, id string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var profile schema.Profile
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// AppendPreferences reinforces the given tags in a profile's preference
// vector by a single $inc update. Document-level atomicity serializes
// concurrent interactions from the same user; different users never
// contend. The tag cap is enforced afterwards by evicting the
// lowest-weight tags; eviction is best-effort and loses at most the
// least significant signal.
func (m *mongoDB) AppendPreferences(ctx context.Context, profileID string, tags []string, increment float64) error {
	if len(tags) == 0 || increment <= 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	inc := bson.M{}
	for _, tag := range tags {
		inc["preferences."+tag] = increment
	}

	result, err := c.UpdateOne(ctx, bson.M{"id": profileID}, bson.M{
		"$inc": inc,
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}

	return m.capPreferences(ctx, profileID)
}

func (m *mongoDB) capPreferences(ctx context.Context, profileID string) error {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var profile schema.Profile
	if err := c.FindOne(ctx, bson.M{"id": profileID}).Decode(&profile); err != nil {
		return err
	}

	over := len(profile.Preferences) - schema.MaxPreferenceTags
	if over <= 0 {
		return nil
	}

	unset := bson.M{}
	for i := 0; i < over; i++ {
		minTag, minWeight := "", 0.0
		for tag, weight := range profile.Preferences {
			if minTag == "" || weight < minWeight {
				minTag, minWeight = tag, weight
			}
		}
		unset["preferences."+minTag] = ""
		delete(profile.Preferences, minTag)
	}

	log.WithFields(log.Fields{
		"prefix":     mongoLogPrefix,
		"profile_id": profileID,
		"evicted":    over,
	}).Debug("evict preference tags over cap")

	_, err := c.UpdateOne(ctx, bson.M{"id": profileID}, bson.M{"$unset": unset})
	return err
}
