package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wanderly/discovery-api/cache"
	"github.com/wanderly/discovery-api/schema"
	"github.com/wanderly/discovery-api/store"
	"github.com/wanderly/discovery-api/utils"
)

// TrendConfig tunes the trend analyzer. Values come from configuration at
// construction time.
type TrendConfig struct {
	// UnderratedThreshold is the most reviews a POI may have and still
	// count as a hidden gem.
	UnderratedThreshold int64
	// HighRatingFloor is the least average rating a hidden gem needs.
	HighRatingFloor float64
	// CacheTTL bounds how long a trending list may be served without
	// recomputation.
	CacheTTL time.Duration
	// TrendingWindow is the rolling window whose interaction count is the
	// velocity signal.
	TrendingWindow time.Duration
	// BaselineWindow is the longer window used to dampen the scores of
	// globally popular POIs.
	BaselineWindow time.Duration
	// TrendingLimit caps the length of a trending list.
	TrendingLimit int
}

// DefaultTrendConfig returns the production thresholds.
func DefaultTrendConfig() TrendConfig {
	return TrendConfig{
		UnderratedThreshold: 50,
		HighRatingFloor:     4.5,
		CacheTTL:            time.Hour,
		TrendingWindow:      24 * time.Hour,
		BaselineWindow:      7 * 24 * time.Hour,
		TrendingLimit:       20,
	}
}

// TrendStore is the slice of the store the trend analyzer consumes.
type TrendStore interface {
	POIsWithin(ctx context.Context, sw, ne schema.Location) ([]schema.POI, error)
	UnderratedPOIs(ctx context.Context, sw, ne schema.Location, maxRatingCount int64, minRating float64) ([]schema.POI, error)
	AllPOIIDs(ctx context.Context) ([]primitive.ObjectID, error)
	InteractionVelocity(ctx context.Context, poiIDs []primitive.ObjectID, recentSince, baselineSince time.Time) (map[primitive.ObjectID]store.VelocityCounts, error)
	SeasonalVisitCounts(ctx context.Context, poiID primitive.ObjectID) (map[schema.Season]int64, error)
	SeasonalRatingCounts(ctx context.Context, poiID primitive.ObjectID) (map[schema.Season][6]int64, error)
	UpsertSeasonalMetadata(ctx context.Context, meta schema.SeasonalMetadata) error
	UpsertBlacklist(ctx context.Context, poiID primitive.ObjectID, reason string, createdAt, expiresAt time.Time) (*schema.BlacklistEntry, error)
	CleanupExpiredBlacklist(ctx context.Context, now time.Time) (int64, error)
	NegativeReviewCount(ctx context.Context, poiID primitive.ObjectID, since time.Time) (int64, error)
}

// TrendAnalyzer discovers aggregate signals over the interaction and
// review history: trending cells, hidden gems, seasonal patterns, and the
// temporary suppression list.
//
// Staleness policy: trending reads recompute synchronously when the cached
// list is missing or older than its TTL; a response is always entirely
// fresh or entirely cached, never a mix.
type TrendAnalyzer struct {
	store TrendStore
	cache cache.TrendingCache
	cfg   TrendConfig

	now func() time.Time

	// cellLocks holds one mutex per geohash cell ever analyzed and is
	// never pruned; at the 5-character cell granularity a deployment sees
	// a few thousand distinct cells at most, so the map stays small.
	mu        sync.Mutex
	cellLocks map[string]*sync.Mutex
}

// NewTrendAnalyzer builds a TrendAnalyzer from configured thresholds.
func NewTrendAnalyzer(s TrendStore, c cache.TrendingCache, cfg TrendConfig) *TrendAnalyzer {
	return &TrendAnalyzer{
		store:     s,
		cache:     c,
		cfg:       cfg,
		now:       time.Now,
		cellLocks: map[string]*sync.Mutex{},
	}
}

// Underrated lists the hidden gems of a cell: POIs whose rating clears the
// floor but whose review count stays under the threshold. This is a
// standing query recomputed per call; the short list changes with every
// review, so caching it buys little.
func (t *TrendAnalyzer) Underrated(ctx context.Context, geohash string) ([]schema.POI, error) {
	sw, ne, err := utils.CellBounds(geohash)
	if err != nil {
		return nil, err
	}

	return t.store.UnderratedPOIs(ctx, sw, ne, t.cfg.UnderratedThreshold, t.cfg.HighRatingFloor)
}

// Trending returns the trending list of a cell, serving the cached list
// while fresh and recomputing synchronously otherwise. Recomputation for
// the same cell is serialized; concurrent callers of one cell queue up
// and the late ones are served the list the first one just wrote.
func (t *TrendAnalyzer) Trending(ctx context.Context, geohash string) (*schema.TrendingList, error) {
	if err := utils.ValidateGeohash(geohash); err != nil {
		return nil, err
	}

	lock := t.cellLock(geohash)
	lock.Lock()
	defer lock.Unlock()

	cached, err := t.cache.GetTrending(ctx, geohash)
	switch {
	case err == nil:
		if cached.Fresh(t.now()) {
			return cached, nil
		}
	case err != cache.ErrMiss:
		// unreachable cache store is a retrievable failure, not a reason
		// to silently serve unstamped data
		return nil, err
	}

	return t.recomputeTrending(ctx, geohash)
}

// RefreshTrending recomputes the trending list of one cell and caches it,
// serialized against any other recomputation of the same cell, including
// the interactive Trending path. The list is written wholesale; partially
// updated lists never exist.
func (t *TrendAnalyzer) RefreshTrending(ctx context.Context, geohash string) (*schema.TrendingList, error) {
	if err := utils.ValidateGeohash(geohash); err != nil {
		return nil, err
	}

	lock := t.cellLock(geohash)
	lock.Lock()
	defer lock.Unlock()

	return t.recomputeTrending(ctx, geohash)
}

// recomputeTrending is the shared recompute body; callers hold the cell
// lock.
func (t *TrendAnalyzer) recomputeTrending(ctx context.Context, geohash string) (*schema.TrendingList, error) {
	sw, ne, err := utils.CellBounds(geohash)
	if err != nil {
		return nil, err
	}

	pois, err := t.store.POIsWithin(ctx, sw, ne)
	if err != nil {
		return nil, fmt.Errorf("list cell pois: %w", err)
	}

	now := t.now()

	ids := make([]primitive.ObjectID, len(pois))
	for i, poi := range pois {
		ids[i] = poi.ID
	}

	velocity, err := t.store.InteractionVelocity(ctx, ids,
		now.Add(-t.cfg.TrendingWindow), now.Add(-t.cfg.BaselineWindow))
	if err != nil {
		return nil, fmt.Errorf("count interactions: %w", err)
	}

	places := make([]schema.TrendingPlace, 0, len(velocity))
	for id, counts := range velocity {
		if counts.Recent == 0 {
			continue
		}
		places = append(places, schema.TrendingPlace{
			POIID: id,
			Score: t.velocityScore(counts),
		})
	}

	sort.Slice(places, func(i, j int) bool {
		if places[i].Score != places[j].Score {
			return places[i].Score > places[j].Score
		}
		return places[i].POIID.Hex() < places[j].POIID.Hex()
	})

	if len(places) > t.cfg.TrendingLimit {
		places = places[:t.cfg.TrendingLimit]
	}

	list := &schema.TrendingList{
		Geohash:    geohash,
		Places:     places,
		ComputedAt: now,
		TTL:        t.cfg.CacheTTL,
	}

	if err := t.cache.PutTrending(ctx, list); err != nil {
		// the freshly computed list is still valid; only its reuse is lost
		log.WithFields(logrus.Fields{
			"geohash": geohash,
			"error":   err,
		}).Error("cache trending list")
	}

	return list, nil
}

// velocityScore turns window counts into the trending score. It is
// strictly increasing in the recent count; the baseline divisor only
// dampens POIs that are always busy, so a quiet place with a sudden
// burst can outrank them.
func (t *TrendAnalyzer) velocityScore(counts store.VelocityCounts) float64 {
	baselineDays := t.cfg.BaselineWindow.Hours() / 24
	if baselineDays < 1 {
		baselineDays = 1
	}
	baselinePerDay := float64(counts.Baseline-counts.Recent) / baselineDays

	return float64(counts.Recent) / math.Sqrt(1+baselinePerDay)
}

// AnalyzeSeasonalTrends rebuilds the per-POI seasonal aggregates: visit
// counts and rating histograms per season bucket, with the busiest bucket
// marked as the peak. Buckets are overwritten, never merged.
func (t *TrendAnalyzer) AnalyzeSeasonalTrends(ctx context.Context) error {
	ids, err := t.store.AllPOIIDs(ctx)
	if err != nil {
		return err
	}

	analyzed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}

		visits, err := t.store.SeasonalVisitCounts(ctx, id)
		if err != nil {
			return err
		}
		ratings, err := t.store.SeasonalRatingCounts(ctx, id)
		if err != nil {
			return err
		}

		if len(visits) == 0 && len(ratings) == 0 {
			continue
		}

		peak := peakSeason(visits)
		now := t.now()
		for _, season := range schema.Seasons {
			meta := schema.SeasonalMetadata{
				POIID:        id,
				Bucket:       season,
				VisitCount:   visits[season],
				RatingCounts: ratings[season],
				Peak:         season == peak,
				AnalyzedAt:   now,
			}
			if err := t.store.UpsertSeasonalMetadata(ctx, meta); err != nil {
				return err
			}
		}
		analyzed++
	}

	log.WithField("pois", analyzed).Info("analyzed seasonal trends")
	return nil
}

// peakSeason picks the bucket with the most visits; ties resolve to the
// earliest bucket in calendar order so reruns are stable.
func peakSeason(visits map[schema.Season]int64) schema.Season {
	peak := schema.Seasons[0]
	for _, season := range schema.Seasons {
		if visits[season] > visits[peak] {
			peak = season
		}
	}
	return peak
}

// Blacklist suppresses a POI from recommendations until now + duration,
// replacing any previous entry for that POI.
func (t *TrendAnalyzer) Blacklist(ctx context.Context, poiID, reason string, durationHours int) (*schema.BlacklistEntry, error) {
	if durationHours <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d hours", durationHours)
	}

	id, err := primitive.ObjectIDFromHex(poiID)
	if err != nil {
		return nil, fmt.Errorf("invalid poi id: %q", poiID)
	}

	if reason == "" {
		reason = "negative feedback spike"
	}

	now := t.now()
	return t.store.UpsertBlacklist(ctx, id, reason, now, now.Add(time.Duration(durationHours)*time.Hour))
}

// CleanupExpiredBlacklist reaps expired entries and reports how many were
// removed. Running it twice in a row removes zero the second time, which
// is a success.
func (t *TrendAnalyzer) CleanupExpiredBlacklist(ctx context.Context) (int64, error) {
	return t.store.CleanupExpiredBlacklist(ctx, t.now())
}

// NegativeFeedbackCount counts a POI's negative reviews inside the recent
// window; operators consult it before blacklisting.
func (t *TrendAnalyzer) NegativeFeedbackCount(ctx context.Context, poiID string, window time.Duration) (int64, error) {
	id, err := primitive.ObjectIDFromHex(poiID)
	if err != nil {
		return 0, fmt.Errorf("invalid poi id: %q", poiID)
	}

	return t.store.NegativeReviewCount(ctx, id, t.now().Add(-window))
}

func (t *TrendAnalyzer) cellLock(geohash string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	lock, ok := t.cellLocks[geohash]
	if !ok {
		lock = &sync.Mutex{}
		t.cellLocks[geohash] = lock
	}
	return lock
}
