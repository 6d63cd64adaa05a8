package datumshift

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeocentricRoundTrip(t *testing.T) {
	const a, e2 = 6378137.0, 0.00669438
	b := a * math.Sqrt(1-e2)

	for _, tc := range []struct{ lat, lon, h float64 }{
		{51.4778, -0.0014, 45.0},
		{-33.8688, 151.2093, 58.0},
		{0.0, 0.0, 0.0},
	} {
		g := ToGeocentric(a, e2, tc.lat, tc.lon, tc.h)
		lat2, lon2, h2 := FromGeocentric(a, e2, b, g)
		assert.InDelta(t, tc.lat, lat2, 1e-8)
		assert.InDelta(t, tc.lon, lon2, 1e-8)
		assert.InDelta(t, tc.h, h2, 1e-3)
	}
}
