package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webMercatorParams() Params {
	return Params{
		EquatorialAxis:      6378137.0,
		EccentricitySquared: 0.00669438,
		OriginLat:           0,
		OriginLon:           0,
		CentralScaleFactor:  1.0,
	}
}

func TestMercatorForwardOrigin(t *testing.T) {
	p := webMercatorParams()
	x, y, err := MercatorForward(p, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestMercatorRoundTrip(t *testing.T) {
	p := webMercatorParams()
	for _, tc := range []struct{ lat, lon float64 }{
		{45.0, 10.0},
		{-33.5, -70.6},
		{51.5, -0.1},
	} {
		x, y, err := MercatorForward(p, tc.lat, tc.lon)
		require.NoError(t, err)
		lat2, lon2, err := MercatorInverse(p, x, y)
		require.NoError(t, err)
		assert.InDelta(t, tc.lat, lat2, 1e-6)
		assert.InDelta(t, tc.lon, lon2, 1e-6)
	}
}

func TestMercatorForwardPoleOutOfDomain(t *testing.T) {
	p := webMercatorParams()
	_, _, err := MercatorForward(p, 90, 0)
	assert.Error(t, err)
}
