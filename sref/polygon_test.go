package sref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonAreaSmallSquareApproximatesPlanar(t *testing.T) {
	// A roughly 1km x 1km square near the equator, where a degree of
	// longitude and a degree of latitude are both close to 111.32km, so
	// the spherical-excess area should track the planar approximation.
	const side = 0.009 // ~1km in degrees near the equator
	points := []GeoPoint{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
	}
	area, err := PolygonArea(points)
	require.NoError(t, err)

	sideMeters := side * toRadians * meanEarthRadius
	assert.InEpsilon(t, sideMeters*sideMeters, area, 0.05)
}

func TestPolygonAreaRejectsTooFewVertices(t *testing.T) {
	_, err := PolygonArea([]GeoPoint{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Error(t, err)
}

func TestPolygonAreaAcceptsAlreadyClosedPolygon(t *testing.T) {
	points := []GeoPoint{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: 0, Y: 0},
	}
	area, err := PolygonArea(points)
	require.NoError(t, err)
	assert.Greater(t, area, 0.0)
}

func TestPolygonPerimeterSquare(t *testing.T) {
	points := []GeoPoint{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	perimeter, err := PolygonPerimeter(points)
	require.NoError(t, err)

	oneSide := haversineDistance(0, 0, 0, 1)
	assert.InEpsilon(t, oneSide*4, perimeter, 0.2)
}

func TestPolygonPerimeterRejectsTooFewVertices(t *testing.T) {
	_, err := PolygonPerimeter([]GeoPoint{{X: 0, Y: 0}})
	assert.Error(t, err)
}

func TestEnclosesPoleDetectsNorthPolarCap(t *testing.T) {
	points := []LatLng{
		{Lat: 80, Lon: -90},
		{Lat: 80, Lon: 0},
		{Lat: 80, Lon: 90},
		{Lat: 80, Lon: 180},
	}
	assert.True(t, enclosesPole(append(points, points[0])))
}

func TestEnclosesPoleFalseForEquatorialSquare(t *testing.T) {
	points := []LatLng{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 1, Lon: 1},
		{Lat: 1, Lon: 0},
		{Lat: 0, Lon: 0},
	}
	assert.False(t, enclosesPole(points))
}
