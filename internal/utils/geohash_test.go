package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeLocation(t *testing.T) {
	// Porto Alegre
	hash := EncodeLocation(-30.0346, -51.2177, LocationGeohashPrecision)
	assert.Len(t, hash, 7)
	assert.Equal(t, "6", hash[:1])

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, -30.0346, lat, 0.01)
	assert.InDelta(t, -51.2177, lng, 0.01)
}

func TestEncodeLocation_NearbyPointsSharePrefix(t *testing.T) {
	a := EncodeLocation(-23.5505, -46.6333, 5)
	b := EncodeLocation(-23.5510, -46.6340, 5)
	assert.Equal(t, a, b)
}
