package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderly/discovery-api/schema"
	mongostore "github.com/wanderly/discovery-api/store"
)

type TrendDataTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database

	busyPOIID  primitive.ObjectID
	quietPOIID primitive.ObjectID
}

func NewTrendDataTestSuite(connURI, dbName string) *TrendDataTestSuite {
	return &TrendDataTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *TrendDataTestSuite) SetupSuite() {
	if s.connURI == "" {
		s.T().Skip("TEST_MONGODB_CONN not set")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()

	s.busyPOIID = primitive.NewObjectID()
	s.quietPOIID = primitive.NewObjectID()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures seeds interactions inside and outside the trending
// window, plus a seasonal spread of check-ins and reviews
func (s *TrendDataTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()
	now := time.Now().UTC()

	interactions := []interface{}{}
	// 3 recent, 2 older for the busy POI
	for i := 0; i < 3; i++ {
		interactions = append(interactions, schema.Interaction{
			ID: primitive.NewObjectID(), ProfileID: "p1", POIID: s.busyPOIID,
			Type: schema.InteractionVisit, Timestamp: now.Add(-2 * time.Hour),
		})
	}
	for i := 0; i < 2; i++ {
		interactions = append(interactions, schema.Interaction{
			ID: primitive.NewObjectID(), ProfileID: "p1", POIID: s.busyPOIID,
			Type: schema.InteractionView, Timestamp: now.Add(-72 * time.Hour),
		})
	}
	// only stale activity for the quiet POI
	interactions = append(interactions, schema.Interaction{
		ID: primitive.NewObjectID(), ProfileID: "p2", POIID: s.quietPOIID,
		Type: schema.InteractionView, Timestamp: now.Add(-6 * 24 * time.Hour),
	})
	// summer check-ins for the seasonal aggregation
	summer := time.Date(now.Year()-1, time.July, 15, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		interactions = append(interactions, schema.Interaction{
			ID: primitive.NewObjectID(), ProfileID: "p3", POIID: s.busyPOIID,
			Type: schema.InteractionCheckIn, Timestamp: summer,
		})
	}

	if _, err := s.testDatabase.Collection(schema.InteractionCollection).InsertMany(ctx, interactions); err != nil {
		return err
	}

	reviews := []interface{}{
		schema.Review{ID: primitive.NewObjectID(), ProfileID: "p1", POIID: s.busyPOIID, Rating: 2, Timestamp: now.Add(-time.Hour)},
		schema.Review{ID: primitive.NewObjectID(), ProfileID: "p2", POIID: s.busyPOIID, Rating: 1.5, Timestamp: now.Add(-2 * time.Hour)},
		schema.Review{ID: primitive.NewObjectID(), ProfileID: "p3", POIID: s.busyPOIID, Rating: 5, Timestamp: summer},
	}
	_, err := s.testDatabase.Collection(schema.ReviewCollection).InsertMany(ctx, reviews)
	return err
}

// TestInteractionVelocity tests the single-pass window aggregation
func (s *TrendDataTestSuite) TestInteractionVelocity() {
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	now := time.Now().UTC()
	counts, err := store.InteractionVelocity(context.Background(),
		[]primitive.ObjectID{s.busyPOIID, s.quietPOIID},
		now.Add(-24*time.Hour), now.Add(-7*24*time.Hour))
	s.NoError(err)

	s.Equal(int64(3), counts[s.busyPOIID].Recent)
	s.Equal(int64(5), counts[s.busyPOIID].Baseline)

	s.Equal(int64(0), counts[s.quietPOIID].Recent)
	s.Equal(int64(1), counts[s.quietPOIID].Baseline)
}

// TestSeasonalVisitCounts tests bucketing check-ins by month
func (s *TrendDataTestSuite) TestSeasonalVisitCounts() {
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	visits, err := store.SeasonalVisitCounts(context.Background(), s.busyPOIID)
	s.NoError(err)
	s.Equal(int64(4), visits[schema.SeasonSummer])
}

func (s *TrendDataTestSuite) TestSeasonalRatingCounts() {
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	ratings, err := store.SeasonalRatingCounts(context.Background(), s.busyPOIID)
	s.NoError(err)

	summer := ratings[schema.SeasonSummer]
	s.Equal(int64(1), summer[5])
}

func (s *TrendDataTestSuite) TestNegativeReviewCount() {
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	count, err := store.NegativeReviewCount(context.Background(), s.busyPOIID,
		time.Now().UTC().Add(-24*time.Hour))
	s.NoError(err)
	s.Equal(int64(2), count)
}

// TestCreateReview tests that a new review refreshes the cached rating of
// its POI
func (s *TrendDataTestSuite) TestCreateReview() {
	ctx := context.Background()
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	poiID := primitive.NewObjectID()
	_, err := s.testDatabase.Collection(schema.POICollection).InsertOne(ctx, schema.POI{
		ID:       poiID,
		Name:     "Reviewed Spot",
		Location: &schema.GeoJSON{Type: "Point", Coordinates: []float64{121.5, 25.0}},
	})
	s.NoError(err)

	review, err := store.CreateReview(ctx, "p9", poiID, 4, "solid", time.Now().UTC())
	s.NoError(err)
	s.Equal(4.0, review.Rating)

	poi, err := store.GetPOI(ctx, poiID)
	s.NoError(err)
	s.Equal(4.0, poi.AverageRating)
	s.Equal(int64(1), poi.RatingCount)
}

// TestListReviewsByPOI tests the newest-first review listing with and
// without a page limit
func (s *TrendDataTestSuite) TestListReviewsByPOI() {
	ctx := context.Background()
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	reviews, err := store.ListReviewsByPOI(ctx, s.busyPOIID, 0)
	s.NoError(err)
	s.Len(reviews, 3)
	s.Equal(2.0, reviews[0].Rating)
	s.Equal(1.5, reviews[1].Rating)
	s.Equal(5.0, reviews[2].Rating)

	page, err := store.ListReviewsByPOI(ctx, s.busyPOIID, 2)
	s.NoError(err)
	s.Len(page, 2)
	s.Equal(1.5, page[1].Rating)

	empty, err := store.ListReviewsByPOI(ctx, s.quietPOIID, 0)
	s.NoError(err)
	s.Empty(empty)
}

// TestBlacklistLifecycle tests upsert, active lookup and cleanup together
// since they share state
func (s *TrendDataTestSuite) TestBlacklistLifecycle() {
	ctx := context.Background()
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	now := time.Now().UTC()
	poiID := primitive.NewObjectID()

	entry, err := store.UpsertBlacklist(ctx, poiID, "spam reviews", now, now.Add(time.Hour))
	s.NoError(err)
	s.Equal("spam reviews", entry.Reason)

	// replacing an entry keeps one row per poi
	replaced, err := store.UpsertBlacklist(ctx, poiID, "still spam", now, now.Add(2*time.Hour))
	s.NoError(err)
	s.Equal(entry.ID, replaced.ID)
	s.Equal("still spam", replaced.Reason)

	active, err := store.ActiveBlacklist(ctx, now)
	s.NoError(err)
	s.Contains(active, poiID)

	// nothing expires yet
	removed, err := store.CleanupExpiredBlacklist(ctx, now)
	s.NoError(err)
	s.Equal(int64(0), removed)

	// after the expiry the entry is gone and a rerun removes nothing
	removed, err = store.CleanupExpiredBlacklist(ctx, now.Add(3*time.Hour))
	s.NoError(err)
	s.Equal(int64(1), removed)

	removed, err = store.CleanupExpiredBlacklist(ctx, now.Add(3*time.Hour))
	s.NoError(err)
	s.Equal(int64(0), removed)

	active, err = store.ActiveBlacklist(ctx, now.Add(3*time.Hour))
	s.NoError(err)
	s.NotContains(active, poiID)
}

func (s *TrendDataTestSuite) TestUpsertSeasonalMetadata() {
	ctx := context.Background()
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	poiID := primitive.NewObjectID()
	meta := schema.SeasonalMetadata{
		POIID:      poiID,
		Bucket:     schema.SeasonSummer,
		VisitCount: 10,
		Peak:       true,
		AnalyzedAt: time.Now().UTC(),
	}
	s.NoError(store.UpsertSeasonalMetadata(ctx, meta))

	// a rerun overwrites instead of appending
	meta.VisitCount = 12
	s.NoError(store.UpsertSeasonalMetadata(ctx, meta))

	found, err := store.GetSeasonalMetadata(ctx, poiID)
	s.NoError(err)
	s.Len(found, 1)
	s.Equal(int64(12), found[0].VisitCount)
}

func TestTrendDataTestSuite(t *testing.T) {
	suite.Run(t, NewTrendDataTestSuite(testMongoURI(), "test-db-trend"))
}
