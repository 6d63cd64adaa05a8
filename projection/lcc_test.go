package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// caZone3Params is California State Plane Zone 3 on NAD27 (Clarke 1866),
// expressed in US survey feet (false easting 2,000,000 ft, false
// northing 0), per spec.md §8's absolute reference scenario.
func caZone3Params() Params {
	return Params{
		EquatorialAxis:      20925832.16, // Clarke 1866 a, US survey feet
		EccentricitySquared: 0.00676866,
		OriginLat:           36.5,
		Parallel1:           37.066667,
		Parallel2:           38.433333,
		OriginLon:           -120.5,
		OriginX:             2000000.0,
		OriginY:             0.0,
	}
}

func TestLambertConformalConicInverse_CAZone3NAD27(t *testing.T) {
	p := caZone3Params()
	lat, lon, err := LambertConformalConicInverse(p, 1510000.0, 520000.0)
	require.NoError(t, err)
	assert.InDelta(t, 37.915952652, lat, 1e-6)
	assert.InDelta(t, -122.198650117, lon, 1e-6)
}

func TestLambertConformalConicRoundTrip(t *testing.T) {
	p := caZone3Params()
	for _, tc := range []struct{ lat, lon float64 }{
		{37.915952652, -122.198650117},
		{38.0, -121.0},
		{36.8, -120.0},
	} {
		x, y, err := LambertConformalConicForward(p, tc.lat, tc.lon)
		require.NoError(t, err)
		lat2, lon2, err := LambertConformalConicInverse(p, x, y)
		require.NoError(t, err)
		assert.InDelta(t, tc.lat, lat2, 1e-6)
		assert.InDelta(t, tc.lon, lon2, 1e-6)
	}
}

func TestLambertConformalConicSingleParallel(t *testing.T) {
	// Parallel1 == Parallel2 degenerates n to sin(phi1); must not divide
	// by zero in the (ln m1 - ln m2)/(ln t1 - ln t2) branch.
	p := caZone3Params()
	p.Parallel2 = p.Parallel1
	x, y, err := LambertConformalConicForward(p, 37.0, -121.0)
	require.NoError(t, err)
	lat2, lon2, err := LambertConformalConicInverse(p, x, y)
	require.NoError(t, err)
	assert.InDelta(t, 37.0, lat2, 1e-6)
	assert.InDelta(t, -121.0, lon2, 1e-6)
}
