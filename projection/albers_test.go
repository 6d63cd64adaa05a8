package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conusAlbersParams() Params {
	return Params{
		EquatorialAxis:      6378137.0,
		EccentricitySquared: 0.00669438,
		OriginLat:           23.0,
		Parallel1:           29.5,
		Parallel2:           45.5,
		OriginLon:           -96.0,
		OriginX:             0,
		OriginY:             0,
	}
}

func TestAlbersRoundTrip(t *testing.T) {
	p := conusAlbersParams()
	for _, tc := range []struct{ lat, lon float64 }{
		{38.0, -97.0},
		{45.0, -110.0},
		{30.0, -85.0},
	} {
		x, y, err := AlbersEqualAreaConicForward(p, tc.lat, tc.lon)
		require.NoError(t, err)
		lat2, lon2, err := AlbersEqualAreaConicInverse(p, x, y)
		require.NoError(t, err)
		assert.InDelta(t, tc.lat, lat2, 1e-5)
		assert.InDelta(t, tc.lon, lon2, 1e-5)
	}
}

func TestAlbersOriginMapsToFalseOrigin(t *testing.T) {
	p := conusAlbersParams()
	x, y, err := AlbersEqualAreaConicForward(p, p.OriginLat, p.OriginLon)
	require.NoError(t, err)
	assert.InDelta(t, p.OriginX, x, 1e-6)
	assert.InDelta(t, p.OriginY, y, 1e-6)
}
