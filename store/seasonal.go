package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderly/discovery-api/schema"
)

type SeasonalStore interface {
	UpsertSeasonalMetadata(ctx context.Context, meta schema.SeasonalMetadata) error
	GetSeasonalMetadata(ctx context.Context, poiID primitive.ObjectID) ([]schema.SeasonalMetadata, error)
}

// UpsertSeasonalMetadata overwrites the aggregate of one (poi, bucket)
// pair. Each analysis run recomputes from scratch; nothing is merged.
func (m *mongoDB) UpsertSeasonalMetadata(ctx context.Context, meta schema.SeasonalMetadata) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SeasonalCollection)

	opts := options.Update().SetUpsert(true)
	_, err := c.UpdateOne(ctx,
		bson.M{"poi_id": meta.POIID, "bucket": meta.Bucket},
		bson.M{
			"$set": bson.M{
				"visit_count":   meta.VisitCount,
				"rating_counts": meta.RatingCounts,
				"peak":          meta.Peak,
				"analyzed_at":   meta.AnalyzedAt.UTC(),
			},
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
		},
		opts,
	)
	return err
}

// GetSeasonalMetadata lists the stored buckets of one POI.
func (m *mongoDB) GetSeasonalMetadata(ctx context.Context, poiID primitive.ObjectID) ([]schema.SeasonalMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SeasonalCollection)

	cursor, err := c.Find(ctx, bson.M{"poi_id": poiID})
	if err != nil {
		return nil, err
	}

	metas := make([]schema.SeasonalMetadata, 0)
	if err := cursor.All(ctx, &metas); err != nil {
		return nil, err
	}

	return metas, nil
}
