package datumshift

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	wgs84A, wgs84E2 = 6378137.0, 0.00669437999014
	airy1830A       = 6377563.396
	airy1830E2      = 0.006670540074149084
)

func TestHelmertApplyIdentity(t *testing.T) {
	h := HelmertParams{}
	g := Geocentric{X: 1, Y: 2, Z: 3}
	got := h.Apply(g)
	assert.InDelta(t, g.X, got.X, 1e-9)
	assert.InDelta(t, g.Y, got.Y, 1e-9)
	assert.InDelta(t, g.Z, got.Z, 1e-9)
}

func TestHelmertInverseUndoesForward(t *testing.T) {
	h := HelmertParams{
		ShiftX: -446.448, ShiftY: 125.157, ShiftZ: -542.060,
		RotationX: -0.1502, RotationY: -0.247, RotationZ: -0.8421,
		ScaleFactor: 20.4894,
	}
	g := Geocentric{X: 3980574.247, Y: -102.127, Z: 4966830.065}
	shifted := h.Apply(g)
	back := h.Inverse().Apply(shifted)

	assert.InDelta(t, g.X, back.X, 1e-2)
	assert.InDelta(t, g.Y, back.Y, 1e-2)
	assert.InDelta(t, g.Z, back.Z, 1e-2)
}

func TestHelmertTransformOSGB36ToWGS84(t *testing.T) {
	// WGS84->OSGB36 Helmert per spec.md §6 boundary constants:
	// (-446.448, 125.157, -542.060) m, (-0.1502,-0.247,-0.8421)", s=20.4894ppm.
	// OSGB36->WGS84 is its inverse.
	wgsToOSGB := HelmertParams{
		ShiftX: -446.448, ShiftY: 125.157, ShiftZ: -542.060,
		RotationX: -0.1502, RotationY: -0.247, RotationZ: -0.8421,
		ScaleFactor: 20.4894,
	}
	osgbToWGS := wgsToOSGB.Inverse()
	airyB := airy1830A * math.Sqrt(1-airy1830E2)

	// SJ 92395 52997 -> OSGB36 53.073851N, 002.113526W (teacher fixture).
	latOSGB, lonOSGB := 53.073851, -2.113526
	lat2, lon2, _ := HelmertTransform(airy1830A, airy1830E2, airyB, wgs84A, wgs84E2, wgs84A*math.Sqrt(1-wgs84E2), osgbToWGS, latOSGB, lonOSGB, 0)

	// round-trip back through the forward direction should recover the
	// original OSGB36 point within a few metres of horizontal precision.
	latBack, lonBack, _ := HelmertTransform(wgs84A, wgs84E2, wgs84A*math.Sqrt(1-wgs84E2), airy1830A, airy1830E2, airyB, wgsToOSGB, lat2, lon2, 0)
	assert.InDelta(t, latOSGB, latBack, 1e-5)
	assert.InDelta(t, lonOSGB, lonBack, 1e-5)
}
