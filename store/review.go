package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderly/discovery-api/schema"
)

var (
	ErrInvalidRating = fmt.Errorf("rating out of range")
)

type ReviewStore interface {
	CreateReview(ctx context.Context, profileID string, poiID primitive.ObjectID, rating float64, comment string, ts time.Time) (*schema.Review, error)
	ListReviewsByPOI(ctx context.Context, poiID primitive.ObjectID, limit int64) ([]schema.Review, error)
	NegativeReviewCount(ctx context.Context, poiID primitive.ObjectID, since time.Time) (int64, error)
	SeasonalRatingCounts(ctx context.Context, poiID primitive.ObjectID) (map[schema.Season][6]int64, error)
}

// CreateReview stores an immutable review and refreshes the POI's cached
// rating aggregate.
func (m *mongoDB) CreateReview(ctx context.Context, profileID string, poiID primitive.ObjectID, rating float64, comment string, ts time.Time) (*schema.Review, error) {
	if !schema.ValidRating(rating) {
		return nil, ErrInvalidRating
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReviewCollection)

	review := schema.Review{
		ID:        primitive.NewObjectID(),
		ProfileID: profileID,
		POIID:     poiID,
		Rating:    rating,
		Comment:   comment,
		Timestamp: ts.UTC(),
	}

	if _, err := c.InsertOne(ctx, review); err != nil {
		return nil, err
	}

	if err := m.RefreshPOIRating(ctx, poiID); err != nil {
		// the review is stored; the cached aggregate catches up on the
		// next refresh
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"poi_id": poiID.Hex(),
			"error":  err,
		}).Error("refresh poi rating after review")
	}

	return &review, nil
}

// ListReviewsByPOI returns a POI's reviews, newest first. limit caps the
// page; 0 means no cap.
func (m *mongoDB) ListReviewsByPOI(ctx context.Context, poiID primitive.ObjectID, limit int64) ([]schema.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReviewCollection)

	opts := options.Find().SetSort(bson.M{"ts": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := c.Find(ctx, bson.M{"poi_id": poiID}, opts)
	if err != nil {
		return nil, err
	}

	reviews := make([]schema.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

// NegativeReviewCount counts recent reviews below the negative-feedback
// ceiling, the signal operators check before suppressing a POI.
func (m *mongoDB) NegativeReviewCount(ctx context.Context, poiID primitive.ObjectID, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReviewCollection)

	return c.CountDocuments(ctx, bson.M{
		"poi_id": poiID,
		"rating": bson.M{"$lt": schema.NegativeRatingCeiling},
		"ts":     bson.M{"$gte": since.UTC()},
	})
}

// SeasonalRatingCounts builds, per season bucket, the integer histogram of
// review ratings for one POI.
func (m *mongoDB) SeasonalRatingCounts(ctx context.Context, poiID primitive.ObjectID) (map[schema.Season][6]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReviewCollection)

	cursor, err := c.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"poi_id": poiID}},
		aggStageSeasonOfTS(),
		{"$group": bson.M{
			"_id": bson.M{
				"season": "$season",
				"star":   bson.M{"$floor": "$rating"},
			},
			"count": bson.M{"$sum": 1},
		}},
	})
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID struct {
			Season schema.Season `bson:"season"`
			Star   float64       `bson:"star"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	histograms := make(map[schema.Season][6]int64)
	for _, row := range rows {
		star := int(row.ID.Star)
		if star < 0 || star > 5 {
			continue
		}
		h := histograms[row.ID.Season]
		h[star] += row.Count
		histograms[row.ID.Season] = h
	}

	return histograms, nil
}
