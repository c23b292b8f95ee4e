package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	POICollection = "poi"
)

// POI categories. More will be imported from external providers over time.
const (
	CategoryHistorical    = "HISTORICAL"
	CategoryNature        = "NATURE"
	CategoryFood          = "FOOD"
	CategoryEntertainment = "ENTERTAINMENT"
)

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Location - latitude longitude pair of a coordinate
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Valid reports whether the coordinate is inside the WGS84 domain.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// TimeWindow is a half-open [Open, Close) window in minutes from midnight.
type TimeWindow struct {
	Open  int `bson:"open" json:"open"`
	Close int `bson:"close" json:"close"`
}

// OpenHours maps a weekday (time.Weekday, 0 = Sunday) to the windows a POI
// is open. A POI with no recorded hours is treated as always open.
type OpenHours map[time.Weekday][]TimeWindow

// IsOpenAt reports whether the POI is open at the given time.
func (h OpenHours) IsOpenAt(t time.Time) bool {
	if len(h) == 0 {
		return true
	}

	minute := t.Hour()*60 + t.Minute()
	for _, w := range h[t.Weekday()] {
		if minute >= w.Open && minute < w.Close {
			return true
		}
	}
	return false
}

// POI - a point of interest. The recommendation core consumes POIs as
// read-only snapshots; only the review path updates the cached rating.
type POI struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	ExternalID    string             `bson:"external_id,omitempty" json:"external_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Address       string             `bson:"address" json:"address"`
	Location      *GeoJSON           `bson:"location" json:"location"`
	Category      string             `bson:"category" json:"category"`
	Tags          []string           `bson:"tags" json:"tags"`
	AverageRating float64            `bson:"average_rating" json:"average_rating"`
	RatingCount   int64              `bson:"rating_count" json:"rating_count"`
	OpenHours     OpenHours          `bson:"open_hours,omitempty" json:"open_hours,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// Latitude returns the POI latitude, 0 for a missing location.
func (p *POI) Latitude() float64 {
	if p.Location == nil || len(p.Location.Coordinates) < 2 {
		return 0
	}
	return p.Location.Coordinates[1]
}

// Longitude returns the POI longitude, 0 for a missing location.
func (p *POI) Longitude() float64 {
	if p.Location == nil || len(p.Location.Coordinates) < 2 {
		return 0
	}
	return p.Location.Coordinates[0]
}

// POICandidate is a POI annotated with the distance to the reference point
// of the geo query that produced it.
type POICandidate struct {
	POI            `bson:",inline"`
	DistanceMeters float64 `bson:"distance_meters"`
}
