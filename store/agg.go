package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/wanderly/discovery-api/schema"
)

// aggStageGeoProximity annotates every matched POI with the spherical
// distance (meters) to the reference point under "distance_meters".
func aggStageGeoProximity(maxDistance float64, location schema.Location) bson.M {
	return bson.M{
		"$geoNear": bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{location.Longitude, location.Latitude},
			},
			"distanceField": "distance_meters",
			"maxDistance":   maxDistance,
			"spherical":     true,
		},
	}
}

// withinBox matches locations inside the rectangle spanned by the
// southwest and northeast corners of a geohash cell.
func withinBox(sw, ne schema.Location) bson.M {
	return bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$box": bson.A{
					bson.A{sw.Longitude, sw.Latitude},
					bson.A{ne.Longitude, ne.Latitude},
				},
			},
		},
	}
}

// aggStageSeasonOfTS maps the interaction/review timestamp onto a season
// bucket so grouping can happen server-side.
func aggStageSeasonOfTS() bson.M {
	return bson.M{
		"$addFields": bson.M{
			"season": bson.M{
				"$switch": bson.M{
					"branches": bson.A{
						bson.M{
							"case": bson.M{"$in": bson.A{bson.M{"$month": "$ts"}, bson.A{3, 4, 5}}},
							"then": string(schema.SeasonSpring),
						},
						bson.M{
							"case": bson.M{"$in": bson.A{bson.M{"$month": "$ts"}, bson.A{6, 7, 8}}},
							"then": string(schema.SeasonSummer),
						},
						bson.M{
							"case": bson.M{"$in": bson.A{bson.M{"$month": "$ts"}, bson.A{9, 10, 11}}},
							"then": string(schema.SeasonFall),
						},
					},
					"default": string(schema.SeasonWinter),
				},
			},
		},
	}
}
