package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderly/discovery-api/schema"
)

type BlacklistStore interface {
	UpsertBlacklist(ctx context.Context, poiID primitive.ObjectID, reason string, createdAt, expiresAt time.Time) (*schema.BlacklistEntry, error)
	ActiveBlacklist(ctx context.Context, now time.Time) (map[primitive.ObjectID]struct{}, error)
	CleanupExpiredBlacklist(ctx context.Context, now time.Time) (int64, error)
}

// UpsertBlacklist creates the blacklist entry for a POI, replacing any
// previous one. The unique index on poi_id keeps the at-most-one-entry
// invariant.
func (m *mongoDB) UpsertBlacklist(ctx context.Context, poiID primitive.ObjectID, reason string, createdAt, expiresAt time.Time) (*schema.BlacklistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BlacklistCollection)

	entry := schema.BlacklistEntry{
		POIID:     poiID,
		Reason:    reason,
		CreatedAt: createdAt.UTC(),
		ExpiresAt: expiresAt.UTC(),
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored schema.BlacklistEntry
	err := c.FindOneAndUpdate(ctx,
		bson.M{"poi_id": poiID},
		bson.M{
			"$set": bson.M{
				"reason":     entry.Reason,
				"created_at": entry.CreatedAt,
				"expires_at": entry.ExpiresAt,
			},
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
		},
		opts,
	).Decode(&stored)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":     mongoLogPrefix,
		"poi_id":     poiID.Hex(),
		"expires_at": stored.ExpiresAt,
	}).Info("poi blacklisted")

	return &stored, nil
}

// ActiveBlacklist returns the set of POI ids suppressed at the given
// instant. Filtering on expires_at makes correctness independent of how
// often expired rows are reaped.
func (m *mongoDB) ActiveBlacklist(ctx context.Context, now time.Time) (map[primitive.ObjectID]struct{}, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BlacklistCollection)

	cursor, err := c.Find(ctx, bson.M{
		"expires_at": bson.M{"$gt": now.UTC()},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	active := make(map[primitive.ObjectID]struct{})
	for cursor.Next(ctx) {
		var entry schema.BlacklistEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		active[entry.POIID] = struct{}{}
	}

	return active, cursor.Err()
}

// CleanupExpiredBlacklist hard-deletes expired entries and returns the
// number removed. Removing zero entries is a success.
func (m *mongoDB) CleanupExpiredBlacklist(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BlacklistCollection)

	result, err := c.DeleteMany(ctx, bson.M{
		"expires_at": bson.M{"$lte": now.UTC()},
	})
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"prefix":  mongoLogPrefix,
		"removed": result.DeletedCount,
	}).Info("cleaned up expired blacklist entries")

	return result.DeletedCount, nil
}
