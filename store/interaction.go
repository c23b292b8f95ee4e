package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderly/discovery-api/schema"
)

// VelocityCounts - interaction counts of one POI over the trending windows
type VelocityCounts struct {
	Recent   int64
	Baseline int64
}

type InteractionStore interface {
	RecordInteraction(ctx context.Context, profileID string, poiID primitive.ObjectID, t schema.InteractionType, ts time.Time) (*schema.Interaction, error)
	ListInteractionsByProfile(ctx context.Context, profileID string, limit int64) ([]schema.Interaction, error)
	InteractionVelocity(ctx context.Context, poiIDs []primitive.ObjectID, recentSince, baselineSince time.Time) (map[primitive.ObjectID]VelocityCounts, error)
	SeasonalVisitCounts(ctx context.Context, poiID primitive.ObjectID) (map[schema.Season]int64, error)
}

// RecordInteraction appends one interaction event. Events are immutable
// once written.
func (m *mongoDB) RecordInteraction(ctx context.Context, profileID string, poiID primitive.ObjectID, t schema.InteractionType, ts time.Time) (*schema.Interaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.InteractionCollection)

	interaction := schema.Interaction{
		ID:        primitive.NewObjectID(),
		ProfileID: profileID,
		POIID:     poiID,
		Type:      t,
		Timestamp: ts.UTC(),
	}

	if _, err := c.InsertOne(ctx, interaction); err != nil {
		return nil, err
	}

	return &interaction, nil
}

// ListInteractionsByProfile returns a user's interaction history, newest
// first. limit caps the page; 0 means no cap.
func (m *mongoDB) ListInteractionsByProfile(ctx context.Context, profileID string, limit int64) ([]schema.Interaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.InteractionCollection)

	opts := options.Find().SetSort(bson.M{"ts": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := c.Find(ctx, bson.M{"profile_id": profileID}, opts)
	if err != nil {
		return nil, err
	}

	interactions := make([]schema.Interaction, 0)
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, err
	}

	return interactions, nil
}

// InteractionVelocity counts, per POI, the interactions inside the recent
// rolling window and inside the longer baseline window, in one grouping
// pass. POIs with no interaction in the baseline window are absent from
// the result.
func (m *mongoDB) InteractionVelocity(ctx context.Context, poiIDs []primitive.ObjectID, recentSince, baselineSince time.Time) (map[primitive.ObjectID]VelocityCounts, error) {
	counts := make(map[primitive.ObjectID]VelocityCounts)
	if len(poiIDs) == 0 {
		return counts, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.InteractionCollection)

	cursor, err := c.Aggregate(ctx, []bson.M{
		{"$match": bson.M{
			"poi_id": bson.M{"$in": poiIDs},
			"ts":     bson.M{"$gte": baselineSince.UTC()},
		}},
		{"$group": bson.M{
			"_id":      "$poi_id",
			"baseline": bson.M{"$sum": 1},
			"recent": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$gte": bson.A{"$ts", recentSince.UTC()}},
					1,
					0,
				},
			}},
		}},
	})
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID       primitive.ObjectID `bson:"_id"`
		Recent   int64              `bson:"recent"`
		Baseline int64              `bson:"baseline"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ID] = VelocityCounts{Recent: row.Recent, Baseline: row.Baseline}
	}

	return counts, nil
}

// SeasonalVisitCounts groups all interactions of one POI by season bucket.
func (m *mongoDB) SeasonalVisitCounts(ctx context.Context, poiID primitive.ObjectID) (map[schema.Season]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.InteractionCollection)

	cursor, err := c.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"poi_id": poiID}},
		aggStageSeasonOfTS(),
		{"$group": bson.M{
			"_id":   "$season",
			"count": bson.M{"$sum": 1},
		}},
	})
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Season schema.Season `bson:"_id"`
		Count  int64         `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[schema.Season]int64)
	for _, row := range rows {
		counts[row.Season] = row.Count
	}

	return counts, nil
}
