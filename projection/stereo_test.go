package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upsNorthParams() Params {
	return Params{
		EquatorialAxis:      6378137.0,
		EccentricitySquared: 0.00669438,
		OriginLat:           90,
		OriginLon:           0,
		OriginX:             2000000,
		OriginY:             2000000,
		CentralScaleFactor:  0.994,
	}
}

func TestPolarStereographicNorthRoundTrip(t *testing.T) {
	p := upsNorthParams()
	for _, tc := range []struct{ lat, lon float64 }{
		{85.0, 45.0},
		{75.0, -120.0},
		{89.5, 170.0},
	} {
		x, y, err := PolarStereographicForward(p, tc.lat, tc.lon)
		require.NoError(t, err)
		lat2, lon2, err := PolarStereographicInverse(p, x, y)
		require.NoError(t, err)
		assert.InDelta(t, tc.lat, lat2, 1e-6)
		assert.InDelta(t, tc.lon, lon2, 1e-6)
	}
}

func TestPolarStereographicSouthRoundTrip(t *testing.T) {
	p := upsNorthParams()
	p.OriginLat = -90
	for _, tc := range []struct{ lat, lon float64 }{
		{-85.0, 45.0},
		{-75.0, -120.0},
	} {
		x, y, err := PolarStereographicForward(p, tc.lat, tc.lon)
		require.NoError(t, err)
		lat2, lon2, err := PolarStereographicInverse(p, x, y)
		require.NoError(t, err)
		assert.InDelta(t, tc.lat, lat2, 1e-6)
		assert.InDelta(t, tc.lon, lon2, 1e-6)
	}
}

func TestPolarStereographicAtPoleOutOfDomain(t *testing.T) {
	p := upsNorthParams()
	_, _, err := PolarStereographicForward(p, 90, 0)
	assert.Error(t, err)
}

func obliqueStereoParams() Params {
	// RD/Amersfoort-style oblique stereographic, origin near the
	// Netherlands, on GRS80.
	return Params{
		EquatorialAxis:      6378137.0,
		EccentricitySquared: 0.00669438,
		OriginLat:           52.15616055555555,
		OriginLon:           5.38763888888889,
		OriginX:             155000,
		OriginY:             463000,
		CentralScaleFactor:  0.9999079,
	}
}

func TestObliqueStereographicOriginMapsToFalseOrigin(t *testing.T) {
	p := obliqueStereoParams()
	x, y, err := ObliqueStereographicForward(p, p.OriginLat, p.OriginLon)
	require.NoError(t, err)
	assert.InDelta(t, p.OriginX, x, 1e-3)
	assert.InDelta(t, p.OriginY, y, 1e-3)
}

func TestObliqueStereographicRoundTrip(t *testing.T) {
	p := obliqueStereoParams()
	for _, tc := range []struct{ lat, lon float64 }{
		{52.5, 5.0},
		{51.8, 4.5},
		{53.0, 6.5},
	} {
		x, y, err := ObliqueStereographicForward(p, tc.lat, tc.lon)
		require.NoError(t, err)
		lat2, lon2, err := ObliqueStereographicInverse(p, x, y)
		require.NoError(t, err)
		assert.InDelta(t, tc.lat, lat2, 1e-6)
		assert.InDelta(t, tc.lon, lon2, 1e-6)
	}
}
