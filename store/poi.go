package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderly/discovery-api/external/geoinfo"
	"github.com/wanderly/discovery-api/schema"
)

var (
	ErrPOINotFound = fmt.Errorf("poi not found")
)

type POI interface {
	AddPOI(ctx context.Context, name, address, category string, tags []string, lon, lat float64, externalID string) (*schema.POI, error)
	GetPOI(ctx context.Context, poiID primitive.ObjectID) (*schema.POI, error)
	NearbyPOIs(ctx context.Context, center schema.Location, radiusMeters float64, limit int64) ([]schema.POICandidate, error)
	POIsWithin(ctx context.Context, sw, ne schema.Location) ([]schema.POI, error)
	UnderratedPOIs(ctx context.Context, sw, ne schema.Location, maxRatingCount int64, minRating float64) ([]schema.POI, error)
	AllPOIIDs(ctx context.Context) ([]primitive.ObjectID, error)
	RefreshPOIRating(ctx context.Context, poiID primitive.ObjectID) error
}

// AddPOI inserts a POI, reusing an existing row when the external id is
// already known. A missing address is enriched through the geocoding
// client when one is configured.
func (m *mongoDB) AddPOI(ctx context.Context, name, address, category string, tags []string, lon, lat float64, externalID string) (*schema.POI, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.POICollection)

	loc := schema.Location{Latitude: lat, Longitude: lon}
	if !loc.Valid() {
		return nil, fmt.Errorf("invalid coordinates: lat=%f lon=%f", lat, lon)
	}

	if externalID != "" {
		var existing schema.POI
		err := c.FindOne(ctx, bson.M{"external_id": externalID}).Decode(&existing)
		if err == nil {
			return &existing, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	if address == "" && m.geoClient != nil {
		resolved, err := geoinfo.Address(m.geoClient, loc)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"error":  err,
			}).Warn("resolve poi address")
		} else {
			address = resolved
		}
	}

	now := time.Now().UTC()
	poi := schema.POI{
		ID:         primitive.NewObjectID(),
		ExternalID: externalID,
		Name:       name,
		Address:    address,
		Category:   category,
		Tags:       tags,
		Location: &schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{lon, lat},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := c.InsertOne(ctx, poi); err != nil {
		return nil, err
	}

	return &poi, nil
}

// GetPOI finds POI by poi ID
func (m *mongoDB) GetPOI(ctx context.Context, poiID primitive.ObjectID) (*schema.POI, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.POICollection)

	var poi schema.POI
	if err := c.FindOne(ctx, bson.M{"_id": poiID}).Decode(&poi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPOINotFound
		}
		return nil, err
	}

	return &poi, nil
}

// NearbyPOIs is the geo-query collaborator of the scoring path: candidates
// within radiusMeters of center, each annotated with its distance. limit
// caps the candidate set server-side; 0 means no cap.
func (m *mongoDB) NearbyPOIs(ctx context.Context, center schema.Location, radiusMeters float64, limit int64) ([]schema.POICandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.POICollection)

	pipeline := []bson.M{aggStageGeoProximity(radiusMeters, center)}
	if limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": limit})
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby poi with error: %s", err)
		return nil, fmt.Errorf("nearby poi query: %w", err)
	}

	candidates := make([]schema.POICandidate, 0)
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearby poi query gets %d records near long:%v lat:%v",
		len(candidates), center.Longitude, center.Latitude)

	return candidates, nil
}

// POIsWithin lists the POIs inside a geohash cell rectangle.
func (m *mongoDB) POIsWithin(ctx context.Context, sw, ne schema.Location) ([]schema.POI, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.POICollection)

	cursor, err := c.Find(ctx, withinBox(sw, ne))
	if err != nil {
		return nil, err
	}

	pois := make([]schema.POI, 0)
	if err := cursor.All(ctx, &pois); err != nil {
		return nil, err
	}

	return pois, nil
}

// UnderratedPOIs finds hidden gems in a cell: well rated POIs that have not
// accumulated enough reviews to show up in popularity-driven rankings.
func (m *mongoDB) UnderratedPOIs(ctx context.Context, sw, ne schema.Location, maxRatingCount int64, minRating float64) ([]schema.POI, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.POICollection)

	query := withinBox(sw, ne)
	query["rating_count"] = bson.M{"$lte": maxRatingCount}
	query["average_rating"] = bson.M{"$gte": minRating}

	opts := options.Find().SetSort(bson.M{"average_rating": -1})
	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	pois := make([]schema.POI, 0)
	if err := cursor.All(ctx, &pois); err != nil {
		return nil, err
	}

	return pois, nil
}

// AllPOIIDs streams the ids of every known POI, for batch analysis passes.
func (m *mongoDB) AllPOIIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.POICollection)

	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := make([]primitive.ObjectID, 0)
	for cursor.Next(ctx) {
		var row struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		ids = append(ids, row.ID)
	}

	return ids, cursor.Err()
}

// RefreshPOIRating recomputes the cached average_rating and rating_count
// of a POI from its reviews. Called after every review write.
func (m *mongoDB) RefreshPOIRating(ctx context.Context, poiID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	reviews := m.client.Database(m.database).Collection(schema.ReviewCollection)

	cursor, err := reviews.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"poi_id": poiID}},
		{"$group": bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}},
	})
	if err != nil {
		return err
	}

	var agg []struct {
		Average float64 `bson:"average"`
		Count   int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &agg); err != nil {
		return err
	}

	average, count := 0.0, int64(0)
	if len(agg) > 0 {
		average, count = agg[0].Average, agg[0].Count
	}

	c := m.client.Database(m.database).Collection(schema.POICollection)
	result, err := c.UpdateOne(ctx, bson.M{"_id": poiID}, bson.M{
		"$set": bson.M{
			"average_rating": average,
			"rating_count":   count,
			"updated_at":     time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrPOINotFound
	}

	return nil
}
