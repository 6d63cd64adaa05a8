package sref

import (
	"testing"

	"github.com/geoconv/sref/ellipsoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetersBetweenHaversineKnownPair(t *testing.T) {
	// Washington DC to New York, roughly.
	d, err := metersBetween(38.8977, -77.0365, 40.6892, -74.0445, Haversine, 0, 0)
	require.NoError(t, err)
	assert.Greater(t, d, 300_000.0)
	assert.Less(t, d, 340_000.0)
}

func TestMetersBetweenSamePointIsZero(t *testing.T) {
	wgs84, err := ellipsoid.Get(ellipsoid.WGS84)
	require.NoError(t, err)

	for _, m := range []DistanceMethod{Haversine, LawOfCosines, Vincenty} {
		d, err := metersBetween(51.5, -0.1, 51.5, -0.1, m, wgs84.EquatorialAxis, wgs84.EccentricitySquared)
		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-6)
	}
}

func TestMetersBetweenMethodsAgreeApproximately(t *testing.T) {
	wgs84, err := ellipsoid.Get(ellipsoid.WGS84)
	require.NoError(t, err)

	lat1, lon1 := 50.0, -5.0
	lat2, lon2 := 58.0, -3.0

	hav, err := metersBetween(lat1, lon1, lat2, lon2, Haversine, 0, 0)
	require.NoError(t, err)
	vin, err := metersBetween(lat1, lon1, lat2, lon2, Vincenty, wgs84.EquatorialAxis, wgs84.EccentricitySquared)
	require.NoError(t, err)

	assert.InEpsilon(t, vin, hav, 0.01)
}

func TestMetersBetweenUnknownMethod(t *testing.T) {
	_, err := metersBetween(0, 0, 1, 1, DistanceMethod(99), 0, 0)
	assert.Error(t, err)
}

func TestInitialAndFinalBearingDueNorth(t *testing.T) {
	assert.InDelta(t, 0, InitialBearing(50, 0, 58, 0), 1e-6)
	assert.InDelta(t, 0, FinalBearing(50, 0, 58, 0), 1e-6)
}

func TestVincentyConvergesOnOrdinaryLongHaul(t *testing.T) {
	wgs84, err := ellipsoid.Get(ellipsoid.WGS84)
	require.NoError(t, err)

	d, err := metersBetween(40.7128, -74.0060, 35.6762, 139.6503, Vincenty, wgs84.EquatorialAxis, wgs84.EccentricitySquared)
	require.NoError(t, err)
	// New York to Tokyo is roughly 10,800 km.
	assert.Greater(t, d, 10_500_000.0)
	assert.Less(t, d, 11_000_000.0)
}

func TestMetersBetweenGeoPointWrapsWGS84(t *testing.T) {
	p1 := GeoPoint{X: -77.0365, Y: 38.8977}
	p2 := GeoPoint{X: -74.0445, Y: 40.6892}
	d, err := MetersBetween(p1, p2, Vincenty)
	require.NoError(t, err)
	assert.Greater(t, d, 300_000.0)
	assert.Less(t, d, 340_000.0)
}
