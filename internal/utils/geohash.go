package utils

import (
	"github.com/mmcloughlin/geohash"
)

// LocationGeohashPrecision gives cells of roughly 150m, enough to tell
// which yard or highway stretch a truck is on.
const LocationGeohashPrecision uint = 7

// EncodeLocation converts a coordinate to a geohash string
func EncodeLocation(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

// DecodeGeohash returns the centre of the geohash cell
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
