package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderly/discovery-api/schema"
	mongostore "github.com/wanderly/discovery-api/store"
)

type ProfileTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewProfileTestSuite(connURI, dbName string) *ProfileTestSuite {
	return &ProfileTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ProfileTestSuite) SetupSuite() {
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
}

func (s *ProfileTestSuite) TestCreateProfile() {
	ctx := context.Background()
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	profile, err := store.CreateProfile(ctx, "account-create")
	s.NoError(err)
	s.NotEmpty(profile.ID)
	s.Equal("account-create", profile.AccountNumber)
	s.NotNil(profile.Preferences)

	_, err = store.CreateProfile(ctx, "account-create")
	s.Equal(mongostore.ErrProfileExisted, err)
}

func (s *ProfileTestSuite) TestGetProfile() {
	ctx := context.Background()
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	created, err := store.CreateProfile(ctx, "account-get")
	s.NoError(err)

	found, err := store.GetProfile(ctx, created.ID)
	s.NoError(err)
	s.Equal(created.AccountNumber, found.AccountNumber)

	_, err = store.GetProfile(ctx, "no-such-profile")
	s.Equal(mongostore.ErrProfileNotFound, err)
}

// TestAppendPreferences tests that repeated reinforcement accumulates
// weight per tag atomically
func (s *ProfileTestSuite) TestAppendPreferences() {
	ctx := context.Background()
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	profile, err := store.CreateProfile(ctx, "account-prefs")
	s.NoError(err)

	s.NoError(store.AppendPreferences(ctx, profile.ID, []string{"food", "ramen"}, 0.3))
	s.NoError(store.AppendPreferences(ctx, profile.ID, []string{"food"}, 0.1))

	found, err := store.GetProfile(ctx, profile.ID)
	s.NoError(err)
	s.InDelta(0.4, found.Preferences["food"], 1e-9)
	s.InDelta(0.3, found.Preferences["ramen"], 1e-9)
}

// TestAppendPreferencesCap tests that the preference vector never grows
// past the cap and the lowest-weight tag is the one evicted
func (s *ProfileTestSuite) TestAppendPreferencesCap() {
	ctx := context.Background()
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	profile, err := store.CreateProfile(ctx, "account-prefs-cap")
	s.NoError(err)

	tags := make([]string, schema.MaxPreferenceTags)
	for i := range tags {
		tags[i] = fmt.Sprintf("tag-%03d", i)
	}
	s.NoError(store.AppendPreferences(ctx, profile.ID, tags, 0.5))

	// the lightweight newcomer is the one over the cap
	s.NoError(store.AppendPreferences(ctx, profile.ID, []string{"newcomer"}, 0.1))

	found, err := store.GetProfile(ctx, profile.ID)
	s.NoError(err)
	s.Len(found.Preferences, schema.MaxPreferenceTags)
	s.NotContains(found.Preferences, "newcomer")
	s.Contains(found.Preferences, "tag-000")
}

func (s *ProfileTestSuite) TestRecordInteraction() {
	ctx := context.Background()
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	profile, err := store.CreateProfile(ctx, "account-interactions")
	s.NoError(err)

	poiID := primitive.NewObjectID()
	interaction, err := store.RecordInteraction(ctx, profile.ID, poiID, schema.InteractionCheckIn, time.Now().UTC())
	s.NoError(err)
	s.Equal(schema.InteractionCheckIn, interaction.Type)

	count, err := s.testDatabase.Collection(schema.InteractionCollection).CountDocuments(ctx, bson.M{
		"profile_id": profile.ID,
		"poi_id":     poiID,
		"type":       schema.InteractionCheckIn,
	})
	s.NoError(err)
	s.Equal(int64(1), count)
}

// TestListInteractionsByProfile tests the newest-first history listing
// with and without a page limit
func (s *ProfileTestSuite) TestListInteractionsByProfile() {
	ctx := context.Background()
	store := mongostore.NewMongoStore(s.mongoClient, s.testDBName, nil)

	profile, err := store.CreateProfile(ctx, "account-history")
	s.NoError(err)

	now := time.Now().UTC()
	poiID := primitive.NewObjectID()
	for i, interactionType := range []schema.InteractionType{
		schema.InteractionView, schema.InteractionLike, schema.InteractionVisit,
	} {
		_, err := store.RecordInteraction(ctx, profile.ID, poiID, interactionType,
			now.Add(-time.Duration(i)*time.Hour))
		s.NoError(err)
	}

	history, err := store.ListInteractionsByProfile(ctx, profile.ID, 0)
	s.NoError(err)
	s.Len(history, 3)
	s.Equal(schema.InteractionView, history[0].Type)
	s.Equal(schema.InteractionVisit, history[2].Type)

	page, err := store.ListInteractionsByProfile(ctx, profile.ID, 2)
	s.NoError(err)
	s.Len(page, 2)

	empty, err := store.ListInteractionsByProfile(ctx, "no-such-profile", 0)
	s.NoError(err)
	s.Empty(empty)
}

func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, NewProfileTestSuite(testMongoURI(), "test-db-profile"))
}
