package sref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeedDefaultsExercisesNamedScenarios runs spec.md §8's named-frame
// seed scenarios through Convert, rather than only as inline
// projection-math tests (the registry.go non-blocking review note).
// SeedDefaults is a convenience seed, not a bit-exact CRS catalog, so
// tolerances here are looser than the pinned projection-package tests
// for the same scenarios.
func TestSeedDefaultsExercisesNamedScenarios(t *testing.T) {
	reg := NewRegistry()
	SeedDefaults(reg)

	caNad27, err := reg.SpatialRefByCode("CA-ZONE-3-NAD27-FT")
	require.NoError(t, err)
	caNad83, err := reg.SpatialRefByCode("CA-ZONE-3-NAD83-FT")
	require.NoError(t, err)
	world, err := reg.SpatialRefByCode("WORLD-WGS84")
	require.NoError(t, err)
	utm18, err := reg.SpatialRefByCode("UTM-ZONE-18-WGS84")
	require.NoError(t, err)

	t.Run("CAZone3NAD27ToWorldWGS84", func(t *testing.T) {
		p := GeoPoint{X: 1510000.0, Y: 520000.0}
		require.NoError(t, p.Convert(reg, caNad27, world))
		assert.InDelta(t, 37.915952652, p.Y, 1e-3)
		assert.InDelta(t, -122.198650117, p.X, 1e-3)
	})

	t.Run("UTMZone18WGS84ToWorldWGS84", func(t *testing.T) {
		p := GeoPoint{GridToken: "18N 323483 4306479"}
		require.NoError(t, p.Convert(reg, utm18, world))
		assert.InDelta(t, 38.889471, p.Y, 1e-4)
		assert.InDelta(t, -77.035242, p.X, 1e-4)
	})

	t.Run("CAZone3NAD27ToCAZone3NAD83", func(t *testing.T) {
		p := GeoPoint{X: 1486710.0, Y: 537380.0}
		require.NoError(t, p.Convert(reg, caNad27, caNad83))
		assert.InDelta(t, 6048077.54, p.X, 5)
		assert.InDelta(t, 2177786.85, p.Y, 5)
	})
}
