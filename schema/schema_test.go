package schema_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wanderly/discovery-api/schema"
)

func TestSeasonOf(t *testing.T) {
	cases := []struct {
		month time.Month
		want  schema.Season
	}{
		{time.March, schema.SeasonSpring},
		{time.May, schema.SeasonSpring},
		{time.June, schema.SeasonSummer},
		{time.August, schema.SeasonSummer},
		{time.September, schema.SeasonFall},
		{time.November, schema.SeasonFall},
		{time.December, schema.SeasonWinter},
		{time.February, schema.SeasonWinter},
	}

	for _, c := range cases {
		ts := time.Date(2024, c.month, 10, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, c.want, schema.SeasonOf(ts), "month %s", c.month)
	}
}

func TestOpenHoursIsOpenAt(t *testing.T) {
	hours := schema.OpenHours{
		time.Monday: []schema.TimeWindow{
			{Open: 9 * 60, Close: 12 * 60},
			{Open: 13 * 60, Close: 18 * 60},
		},
	}

	monday := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	assert.True(t, hours.IsOpenAt(monday.Add(10*time.Hour)))
	assert.False(t, hours.IsOpenAt(monday.Add(12*time.Hour+30*time.Minute)))
	assert.True(t, hours.IsOpenAt(monday.Add(17*time.Hour+59*time.Minute)))
	assert.False(t, hours.IsOpenAt(monday.Add(18*time.Hour)))

	// no windows for the day means closed all day
	tuesday := monday.Add(24 * time.Hour)
	assert.False(t, hours.IsOpenAt(tuesday.Add(10*time.Hour)))
}

func TestOpenHoursEmptyMeansAlwaysOpen(t *testing.T) {
	var hours schema.OpenHours
	assert.True(t, hours.IsOpenAt(time.Now()))
}

func TestTrendingListFresh(t *testing.T) {
	computed := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	list := schema.TrendingList{ComputedAt: computed, TTL: time.Hour}

	assert.True(t, list.Fresh(computed.Add(59*time.Minute)))
	assert.False(t, list.Fresh(computed.Add(61*time.Minute)))
}

func TestBlacklistEntryActive(t *testing.T) {
	expires := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	entry := schema.BlacklistEntry{ExpiresAt: expires}

	assert.True(t, entry.Active(expires.Add(-time.Minute)))
	assert.False(t, entry.Active(expires))
	assert.False(t, entry.Active(expires.Add(time.Minute)))
}

func TestParseInteractionType(t *testing.T) {
	for raw, weight := range map[string]float64{
		"VIEW": 0.1, "CLICK": 0.2, "LIKE": 0.3, "SHARE": 0.4, "VISIT": 0.5, "CHECK_IN": 0.6,
	} {
		parsed, err := schema.ParseInteractionType(raw)
		assert.NoError(t, err)
		assert.Equal(t, weight, schema.InteractionWeights[parsed])
	}

	_, err := schema.ParseInteractionType("checkin")
	assert.Error(t, err)
}

func TestRecommendContextValidate(t *testing.T) {
	valid := schema.RecommendContext{
		UserLocation: schema.Location{Latitude: 25.03, Longitude: 121.56},
		RadiusMeters: 1000,
		MaxResults:   10,
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.UserLocation.Longitude = 181
	assert.Error(t, bad.Validate())

	bad = valid
	bad.RadiusMeters = -5
	assert.Error(t, bad.Validate())

	bad = valid
	bad.MaxResults = 0
	assert.Error(t, bad.Validate())
}
