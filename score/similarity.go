package score

import "math"

// Similarity computes the cosine similarity between a user's sparse
// preference vector and a POI's tag set, treated as a binary vector over
// the same tag space.
//
// An empty preference vector (cold start) or an untagged POI yields 0, so
// ranking falls through to the rating and distance components instead of
// producing NaN. Both vectors are non-negative by construction; a negative
// cosine would indicate corrupted input and is clamped to 0.
func Similarity(prefs map[string]float64, tags []string) float64 {
	if len(prefs) == 0 || len(tags) == 0 {
		return 0
	}

	var dot, prefNorm float64
	for _, w := range prefs {
		prefNorm += w * w
	}
	if prefNorm == 0 {
		return 0
	}

	// tags may repeat in dirty data; count each once
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		dot += prefs[t]
	}

	sim := dot / (math.Sqrt(prefNorm) * math.Sqrt(float64(len(seen))))

	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
