package recommend

import (
	"github.com/spf13/viper"

	"github.com/wanderly/discovery-api/score"
)

// ScoringWeightsFromViper builds the scoring coefficients from the
// score.weight_* keys, keeping the default for any key that is unset or
// non-positive. Both entrypoints read weights through here so the api and
// the worker always score with the same coefficients.
func ScoringWeightsFromViper() score.Weights {
	w := score.DefaultWeights()
	if v := viper.GetFloat64("score.weight_interest"); v > 0 {
		w.Interest = v
	}
	if v := viper.GetFloat64("score.weight_rating"); v > 0 {
		w.Rating = v
	}
	if v := viper.GetFloat64("score.weight_distance"); v > 0 {
		w.Distance = v
	}
	return w
}

// TrendConfigFromViper builds a TrendConfig from the trending.* and
// underrated.* keys, keeping the default for any key that is unset or
// non-positive. The worker writes TrendingLists the api later serves, so
// both sides must agree on the TTL.
func TrendConfigFromViper() TrendConfig {
	cfg := DefaultTrendConfig()
	if ttl := viper.GetDuration("trending.cache_ttl"); ttl > 0 {
		cfg.CacheTTL = ttl
	}
	if limit := viper.GetInt("trending.limit"); limit > 0 {
		cfg.TrendingLimit = limit
	}
	if threshold := viper.GetInt64("underrated.max_rating_count"); threshold > 0 {
		cfg.UnderratedThreshold = threshold
	}
	if floor := viper.GetFloat64("underrated.min_rating"); floor > 0 {
		cfg.HighRatingFloor = floor
	}
	return cfg
}
