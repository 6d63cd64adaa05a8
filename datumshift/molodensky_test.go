package datumshift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	clarke1866A = 6378206.4
	clarke1866F = 1.0 / 294.9786982
	grs80F      = 1.0 / 298.257222101
	grs80A      = 6378137.0
)

func TestMolodenskyNAD27ToWGS84CONUS(t *testing.T) {
	// NAD27->WGS84 CONUS: (Δx,Δy,Δz) = (-8, 160, 176) m, per spec.md §6.
	p := MolodenskyParams{ShiftX: -8, ShiftY: 160, ShiftZ: 176}

	lat, lon := 39.0, -98.0 // central CONUS
	latShifted, lonShifted := MolodenskyTransform(clarke1866A, clarke1866F, grs80A, grs80F, p, lat, lon, 0)

	// the shift should be a small perturbation, a few arcseconds at most.
	assert.InDelta(t, lat, latShifted, 0.01)
	assert.InDelta(t, lon, lonShifted, 0.01)
	assert.NotEqual(t, lat, latShifted)
	assert.NotEqual(t, lon, lonShifted)
}

func TestMolodenskyZeroShiftIsIdentity(t *testing.T) {
	p := MolodenskyParams{}
	lat, lon := 40.0, -100.0
	latShifted, lonShifted := MolodenskyTransform(clarke1866A, clarke1866F, clarke1866A, clarke1866F, p, lat, lon, 0)
	assert.InDelta(t, lat, latShifted, 1e-9)
	assert.InDelta(t, lon, lonShifted, 1e-9)
}
