package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTMRoundTrip(t *testing.T) {
	for _, tc := range []struct{ lat, lon float64 }{
		{38.889471, -77.035242},
		{-33.8688, 151.2093},
	} {
		ref, err := ToUTM(tc.lat, tc.lon)
		require.NoError(t, err)
		lat2, lon2, err := ref.ToLatLon()
		require.NoError(t, err)
		assert.InDelta(t, tc.lat, lat2, 1e-6)
		assert.InDelta(t, tc.lon, lon2, 1e-6)
	}
}

func TestUTMReferenceScenarioDC(t *testing.T) {
	// spec.md §8: (323483m, 4306479m) UTM zone 18 WGS84 -> ~(38.889471, -77.035242).
	ref := UTMRef{Zone: 18, SouthHemisphere: false, Easting: 323483, Northing: 4306479}
	lat, lon, err := ref.ToLatLon()
	require.NoError(t, err)
	assert.InDelta(t, 38.889471, lat, 1e-4)
	assert.InDelta(t, -77.035242, lon, 1e-4)
}

func TestUTMSouthHemisphereFalseNorthing(t *testing.T) {
	ref, err := ToUTM(-33.8688, 151.2093)
	require.NoError(t, err)
	assert.True(t, ref.SouthHemisphere)
	assert.Greater(t, ref.Northing, 5000000.0)
}
