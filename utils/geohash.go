package utils

import (
	"fmt"
	"strings"

	"github.com/mmcloughlin/geohash"

	"github.com/wanderly/discovery-api/schema"
)

const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

const maxGeohashLength = 12

// ValidateGeohash rejects strings that are not well-formed geohash cells.
func ValidateGeohash(hash string) error {
	if hash == "" {
		return fmt.Errorf("empty geohash")
	}
	if len(hash) > maxGeohashLength {
		return fmt.Errorf("geohash too long: %q", hash)
	}
	for _, r := range hash {
		if !strings.ContainsRune(geohashAlphabet, r) {
			return fmt.Errorf("invalid geohash character %q in %q", r, hash)
		}
	}
	return nil
}

// CellBounds decodes a geohash into the southwest and northeast corners of
// its bounding rectangle.
func CellBounds(hash string) (sw, ne schema.Location, err error) {
	if err = ValidateGeohash(hash); err != nil {
		return
	}

	box := geohash.BoundingBox(hash)
	sw = schema.Location{Latitude: box.MinLat, Longitude: box.MinLng}
	ne = schema.Location{Latitude: box.MaxLat, Longitude: box.MaxLng}
	return
}

// CellOf encodes a location into the geohash cell of the given precision.
func CellOf(loc schema.Location, precision uint) string {
	return geohash.EncodeWithPrecision(loc.Latitude, loc.Longitude, precision)
}
