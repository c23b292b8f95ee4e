package recommend

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wanderly/discovery-api/external/mocks"
	"github.com/wanderly/discovery-api/schema"
	"github.com/wanderly/discovery-api/score"
)

var testTime = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestScoringService(t *testing.T) (*ScoringService, *mocks.MockRecommendStore) {
	ctl := gomock.NewController(t)
	t.Cleanup(ctl.Finish)

	storeMock := mocks.NewMockRecommendStore(ctl)
	svc := NewScoringService(storeMock, score.DefaultWeights())
	svc.now = func() time.Time { return testTime }
	return svc, storeMock
}

func testContext() schema.RecommendContext {
	return schema.RecommendContext{
		UserLocation: schema.Location{Latitude: 40.7128, Longitude: -74.0060},
		RadiusMeters: 5000,
		MaxResults:   10,
	}
}

func candidate(id primitive.ObjectID, name string, rating, distance float64, tags ...string) schema.POICandidate {
	return schema.POICandidate{
		POI: schema.POI{
			ID:            id,
			Name:          name,
			Category:      schema.CategoryFood,
			Tags:          tags,
			AverageRating: rating,
			Location: &schema.GeoJSON{
				Type:        "Point",
				Coordinates: []float64{-74.0, 40.7},
			},
		},
		DistanceMeters: distance,
	}
}

func TestGenerateRecommendationsScoresAndRanks(t *testing.T) {
	svc, storeMock := newTestScoringService(t)

	near := candidate(primitive.NewObjectID(), "Noodle Bar", 4.8, 1000, "food", "ramen")
	far := candidate(primitive.NewObjectID(), "Old Fort", 3.0, 5000, "history")

	profile := &schema.Profile{
		ID:          "profile-1",
		Preferences: map[string]float64{"food": 1.0, "ramen": 1.0},
	}

	storeMock.EXPECT().GetProfile(gomock.Any(), "profile-1").Return(profile, nil)
	storeMock.EXPECT().NearbyPOIs(gomock.Any(), gomock.Any(), 5000.0, int64(DefaultCandidateLimit)).
		Return([]schema.POICandidate{far, near}, nil)
	storeMock.EXPECT().ActiveBlacklist(gomock.Any(), testTime).
		Return(map[primitive.ObjectID]struct{}{}, nil)

	results, err := svc.GenerateRecommendations(context.Background(), "profile-1", testContext())
	require.NoError(t, err)
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, near.ID.Hex(), first.POIID)
	assert.Equal(t, "Noodle Bar", first.POIName)
	assert.Equal(t, schema.CategoryFood, first.Category)
	assert.Equal(t, []string{"food", "ramen"}, first.Tags)
	assert.Equal(t, 1000.0, first.DistanceMeters)

	// component scores are reported and recombine into the final score
	assert.InDelta(t, 1.0, first.SimilarityScore, 1e-9)
	assert.InDelta(t, 0.96, first.RatingScore, 1e-12)
	assert.InDelta(t, 0.3679, first.DistanceScore, 1e-3)
	assert.InDelta(t,
		0.5*first.SimilarityScore+0.3*first.RatingScore+0.2*first.DistanceScore,
		first.FinalScore, 1e-12)

	assert.Greater(t, first.FinalScore, results[1].FinalScore)
}

func TestGenerateRecommendationsColdStart(t *testing.T) {
	svc, storeMock := newTestScoringService(t)

	// an empty preference vector must zero similarity for every candidate
	// so rating and distance drive the ranking
	better := candidate(primitive.NewObjectID(), "Riverside Cafe", 4.5, 500, "food")
	worse := candidate(primitive.NewObjectID(), "Gift Shop", 2.0, 4000, "shopping")

	storeMock.EXPECT().GetProfile(gomock.Any(), "newcomer").
		Return(&schema.Profile{ID: "newcomer", Preferences: map[string]float64{}}, nil)
	storeMock.EXPECT().NearbyPOIs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.POICandidate{worse, better}, nil)
	storeMock.EXPECT().ActiveBlacklist(gomock.Any(), gomock.Any()).
		Return(map[primitive.ObjectID]struct{}{}, nil)

	results, err := svc.GenerateRecommendations(context.Background(), "newcomer", testContext())
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.Equal(t, 0.0, r.SimilarityScore)
	}
	assert.Equal(t, better.ID.Hex(), results[0].POIID)
}

func TestGenerateRecommendationsExcludesBlacklisted(t *testing.T) {
	svc, storeMock := newTestScoringService(t)

	suppressed := candidate(primitive.NewObjectID(), "Tourist Trap", 4.9, 100, "food")
	kept := candidate(primitive.NewObjectID(), "Quiet Diner", 4.0, 800, "food")

	storeMock.EXPECT().GetProfile(gomock.Any(), "profile-1").
		Return(&schema.Profile{ID: "profile-1"}, nil)
	storeMock.EXPECT().NearbyPOIs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.POICandidate{suppressed, kept}, nil)
	storeMock.EXPECT().ActiveBlacklist(gomock.Any(), gomock.Any()).
		Return(map[primitive.ObjectID]struct{}{suppressed.ID: {}}, nil)

	results, err := svc.GenerateRecommendations(context.Background(), "profile-1", testContext())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, kept.ID.Hex(), results[0].POIID)
}

func TestGenerateRecommendationsOpenOnly(t *testing.T) {
	svc, storeMock := newTestScoringService(t)

	open := candidate(primitive.NewObjectID(), "All Day Cafe", 4.0, 500, "food")

	closed := candidate(primitive.NewObjectID(), "Night Bar", 4.5, 300, "bar")
	closed.OpenHours = schema.OpenHours{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		// 18:00 - 23:00 only
		closed.OpenHours[d] = []schema.TimeWindow{{Open: 18 * 60, Close: 23 * 60}}
	}

	storeMock.EXPECT().GetProfile(gomock.Any(), "profile-1").
		Return(&schema.Profile{ID: "profile-1"}, nil)
	storeMock.EXPECT().NearbyPOIs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.POICandidate{open, closed}, nil)
	storeMock.EXPECT().ActiveBlacklist(gomock.Any(), gomock.Any()).
		Return(map[primitive.ObjectID]struct{}{}, nil)

	reqCtx := testContext()
	reqCtx.IsOpenOnly = true
	noon := time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)
	reqCtx.TimeOfDay = &noon

	results, err := svc.GenerateRecommendations(context.Background(), "profile-1", reqCtx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, open.ID.Hex(), results[0].POIID)
}

func TestGenerateRecommendationsTruncation(t *testing.T) {
	svc, storeMock := newTestScoringService(t)

	candidates := []schema.POICandidate{
		candidate(primitive.NewObjectID(), "A", 4.0, 100, "food"),
		candidate(primitive.NewObjectID(), "B", 4.1, 200, "food"),
		candidate(primitive.NewObjectID(), "C", 4.2, 300, "food"),
	}

	storeMock.EXPECT().GetProfile(gomock.Any(), "profile-1").
		Return(&schema.Profile{ID: "profile-1"}, nil)
	storeMock.EXPECT().NearbyPOIs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(candidates, nil)
	storeMock.EXPECT().ActiveBlacklist(gomock.Any(), gomock.Any()).
		Return(map[primitive.ObjectID]struct{}{}, nil)

	// 10 requested, only 3 available: exactly 3 back, no padding
	results, err := svc.GenerateRecommendations(context.Background(), "profile-1", testContext())
	require.NoError(t, err)
	assert.Len(t, results, 3)

	// fewer requested than available: truncated
	storeMock.EXPECT().GetProfile(gomock.Any(), "profile-1").
		Return(&schema.Profile{ID: "profile-1"}, nil)
	storeMock.EXPECT().NearbyPOIs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(candidates, nil)
	storeMock.EXPECT().ActiveBlacklist(gomock.Any(), gomock.Any()).
		Return(map[primitive.ObjectID]struct{}{}, nil)

	reqCtx := testContext()
	reqCtx.MaxResults = 2
	results, err = svc.GenerateRecommendations(context.Background(), "profile-1", reqCtx)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestGenerateRecommendationsEmptyIsNotAnError(t *testing.T) {
	svc, storeMock := newTestScoringService(t)

	storeMock.EXPECT().GetProfile(gomock.Any(), "profile-1").
		Return(&schema.Profile{ID: "profile-1"}, nil)
	storeMock.EXPECT().NearbyPOIs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.POICandidate{}, nil)
	storeMock.EXPECT().ActiveBlacklist(gomock.Any(), gomock.Any()).
		Return(map[primitive.ObjectID]struct{}{}, nil)

	results, err := svc.GenerateRecommendations(context.Background(), "profile-1", testContext())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGenerateRecommendationsValidation(t *testing.T) {
	svc, _ := newTestScoringService(t)

	bad := testContext()
	bad.UserLocation.Latitude = 91

	_, err := svc.GenerateRecommendations(context.Background(), "profile-1", bad)
	assert.Error(t, err)

	bad = testContext()
	bad.RadiusMeters = 0
	_, err = svc.GenerateRecommendations(context.Background(), "profile-1", bad)
	assert.Error(t, err)

	bad = testContext()
	bad.MaxResults = -1
	_, err = svc.GenerateRecommendations(context.Background(), "profile-1", bad)
	assert.Error(t, err)
}

func TestGenerateRecommendationsCollaboratorFailure(t *testing.T) {
	svc, storeMock := newTestScoringService(t)

	storeMock.EXPECT().GetProfile(gomock.Any(), "profile-1").
		Return(&schema.Profile{ID: "profile-1"}, nil)
	storeMock.EXPECT().NearbyPOIs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("geo query timeout"))

	_, err := svc.GenerateRecommendations(context.Background(), "profile-1", testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geo query timeout")
}

func TestRecordInteraction(t *testing.T) {
	svc, storeMock := newTestScoringService(t)

	poiID := primitive.NewObjectID()
	poi := &schema.POI{ID: poiID, Tags: []string{"food", "ramen"}}

	storeMock.EXPECT().GetPOI(gomock.Any(), poiID).Return(poi, nil)
	storeMock.EXPECT().RecordInteraction(gomock.Any(), "profile-1", poiID, schema.InteractionLike, testTime).
		Return(&schema.Interaction{ProfileID: "profile-1", POIID: poiID, Type: schema.InteractionLike}, nil)
	storeMock.EXPECT().AppendPreferences(gomock.Any(), "profile-1", []string{"food", "ramen"}, 0.3).
		Return(nil)

	interaction, err := svc.RecordInteraction(context.Background(), "profile-1", poiID.Hex(), "LIKE")
	require.NoError(t, err)
	assert.Equal(t, schema.InteractionLike, interaction.Type)
}

func TestRecordInteractionUnknownType(t *testing.T) {
	svc, _ := newTestScoringService(t)

	_, err := svc.RecordInteraction(context.Background(), "profile-1", primitive.NewObjectID().Hex(), "TELEPORT")
	assert.Error(t, err)
}

func TestRecordInteractionInvalidPOIID(t *testing.T) {
	svc, _ := newTestScoringService(t)

	_, err := svc.RecordInteraction(context.Background(), "profile-1", "not-an-id", "VIEW")
	assert.Error(t, err)
}

func TestCreateReview(t *testing.T) {
	svc, storeMock := newTestScoringService(t)

	poiID := primitive.NewObjectID()
	storeMock.EXPECT().CreateReview(gomock.Any(), "profile-1", poiID, 4.5, "lovely", testTime).
		Return(&schema.Review{ProfileID: "profile-1", POIID: poiID, Rating: 4.5}, nil)

	review, err := svc.CreateReview(context.Background(), "profile-1", poiID.Hex(), 4.5, "lovely")
	require.NoError(t, err)
	assert.Equal(t, 4.5, review.Rating)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	svc, _ := newTestScoringService(t)

	_, err := svc.CreateReview(context.Background(), "profile-1", primitive.NewObjectID().Hex(), 5.5, "")
	assert.Error(t, err)

	_, err = svc.CreateReview(context.Background(), "profile-1", primitive.NewObjectID().Hex(), -0.1, "")
	assert.Error(t, err)
}
