package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wanderly/discovery-api/schema"
	"github.com/wanderly/discovery-api/score"
	"github.com/wanderly/discovery-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "recommend")
}

// DefaultCandidateLimit caps the candidate set asked from the geo-query
// collaborator.
const DefaultCandidateLimit = 500

// RecommendStore is the slice of the store the scoring path consumes.
type RecommendStore interface {
	GetProfile(ctx context.Context, id string) (*schema.Profile, error)
	GetPOI(ctx context.Context, poiID primitive.ObjectID) (*schema.POI, error)
	NearbyPOIs(ctx context.Context, center schema.Location, radiusMeters float64, limit int64) ([]schema.POICandidate, error)
	ActiveBlacklist(ctx context.Context, now time.Time) (map[primitive.ObjectID]struct{}, error)
	RecordInteraction(ctx context.Context, profileID string, poiID primitive.ObjectID, t schema.InteractionType, ts time.Time) (*schema.Interaction, error)
	AppendPreferences(ctx context.Context, profileID string, tags []string, increment float64) error
	CreateReview(ctx context.Context, profileID string, poiID primitive.ObjectID, rating float64, comment string, ts time.Time) (*schema.Review, error)
}

// ScoringService ranks nearby POIs for a user with the hybrid scoring
// formula. The whole path is read-compute-return: it holds no mutable
// state, so any number of requests may run in parallel.
type ScoringService struct {
	store          RecommendStore
	weights        score.Weights
	candidateLimit int64

	now func() time.Time
}

// NewScoringService builds a ScoringService. Weights come from the caller
// so scoring carries no process-wide mutable configuration.
func NewScoringService(s RecommendStore, weights score.Weights) *ScoringService {
	return &ScoringService{
		store:          s,
		weights:        weights,
		candidateLimit: DefaultCandidateLimit,
		now:            time.Now,
	}
}

// GenerateRecommendations returns at most reqCtx.MaxResults candidates
// around the reference point, ranked by the hybrid score, each carrying
// its component scores for explainability.
//
// An empty result after filtering is a valid response. A failing
// collaborator surfaces as an error; the path never silently serves a
// degraded list.
func (s *ScoringService) GenerateRecommendations(ctx context.Context, profileID string, reqCtx schema.RecommendContext) ([]schema.ScoredPOI, error) {
	if err := reqCtx.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.store.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.store.NearbyPOIs(ctx, reqCtx.UserLocation, reqCtx.RadiusMeters, s.candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	blacklisted, err := s.store.ActiveBlacklist(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("fetch blacklist: %w", err)
	}

	at := s.now()
	if reqCtx.TimeOfDay != nil {
		at = *reqCtx.TimeOfDay
	}

	scored := make([]schema.ScoredPOI, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := blacklisted[candidate.ID]; ok {
			continue
		}
		if reqCtx.IsOpenOnly && !candidate.OpenHours.IsOpenAt(at) {
			continue
		}

		similarity := score.Similarity(profile.Preferences, candidate.Tags)
		ratingScore := score.RatingScore(candidate.AverageRating)
		distanceScore := score.DistanceScore(candidate.DistanceMeters)

		scored = append(scored, schema.ScoredPOI{
			POIID:           candidate.ID.Hex(),
			POIName:         candidate.Name,
			Latitude:        candidate.POI.Latitude(),
			Longitude:       candidate.POI.Longitude(),
			Category:        candidate.Category,
			AverageRating:   candidate.AverageRating,
			FinalScore:      score.Combine(s.weights, similarity, ratingScore, distanceScore),
			SimilarityScore: similarity,
			DistanceScore:   distanceScore,
			RatingScore:     ratingScore,
			DistanceMeters:  candidate.DistanceMeters,
			Tags:            candidate.Tags,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return score.Less(scored[i], scored[j])
	})

	if len(scored) > reqCtx.MaxResults {
		scored = scored[:reqCtx.MaxResults]
	}

	log.WithFields(logrus.Fields{
		"profile_id": profileID,
		"candidates": len(candidates),
		"returned":   len(scored),
	}).Debug("generated recommendations")

	return scored, nil
}

// RecordInteraction appends an interaction event and reinforces the tags
// of the target POI in the user's preference vector according to the
// interaction type.
func (s *ScoringService) RecordInteraction(ctx context.Context, profileID, poiID string, interactionType string) (*schema.Interaction, error) {
	t, err := schema.ParseInteractionType(interactionType)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(poiID)
	if err != nil {
		return nil, fmt.Errorf("invalid poi id: %q", poiID)
	}

	poi, err := s.store.GetPOI(ctx, id)
	if err != nil {
		return nil, err
	}

	interaction, err := s.store.RecordInteraction(ctx, profileID, id, t, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendPreferences(ctx, profileID, poi.Tags, schema.InteractionWeights[t]); err != nil {
		return nil, err
	}

	return interaction, nil
}

// CreateReview validates and stores a review; the store refreshes the
// POI's cached rating as a side effect.
func (s *ScoringService) CreateReview(ctx context.Context, profileID, poiID string, rating float64, comment string) (*schema.Review, error) {
	if !schema.ValidRating(rating) {
		return nil, store.ErrInvalidRating
	}

	id, err := primitive.ObjectIDFromHex(poiID)
	if err != nil {
		return nil, fmt.Errorf("invalid poi id: %q", poiID)
	}

	return s.store.CreateReview(ctx, profileID, id, rating, comment, s.now())
}
