package recommend

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/wanderly/discovery-api/score"
)

func TestScoringWeightsFromViperDefaults(t *testing.T) {
	viper.Reset()
	assert.Equal(t, score.DefaultWeights(), ScoringWeightsFromViper())
}

func TestScoringWeightsFromViperOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("score.weight_interest", 0.6)
	viper.Set("score.weight_rating", 0.25)
	viper.Set("score.weight_distance", 0.15)

	w := ScoringWeightsFromViper()
	assert.Equal(t, 0.6, w.Interest)
	assert.Equal(t, 0.25, w.Rating)
	assert.Equal(t, 0.15, w.Distance)
}

func TestScoringWeightsFromViperPartialOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("score.weight_rating", 0.4)

	w := ScoringWeightsFromViper()
	assert.Equal(t, score.DefaultWeightInterest, w.Interest)
	assert.Equal(t, 0.4, w.Rating)
	assert.Equal(t, score.DefaultWeightDistance, w.Distance)
}

func TestTrendConfigFromViperDefaults(t *testing.T) {
	viper.Reset()
	assert.Equal(t, DefaultTrendConfig(), TrendConfigFromViper())
}

func TestTrendConfigFromViperOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("trending.cache_ttl", "30m")
	viper.Set("trending.limit", 10)
	viper.Set("underrated.max_rating_count", 25)
	viper.Set("underrated.min_rating", 4.0)

	cfg := TrendConfigFromViper()
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.TrendingLimit)
	assert.Equal(t, int64(25), cfg.UnderratedThreshold)
	assert.Equal(t, 4.0, cfg.HighRatingFloor)
}
