package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoconv/sref/sref"
)

const sampleYAML = `
ellipsoids:
  - code: TEST-ELLIPSOID
    equatorialAxis: 6378137.0
    inverseFlattening: 298.257223563
units:
  - code: TEST-UNIT
    isLinear: true
    metersPerUnit: 1.0
datums:
  - code: TEST-DATUM
    ellipsoid: TEST-ELLIPSOID
    canonicalDatumCode: TEST-DATUM
  - code: TEST-DATUM-SYNONYM
    ellipsoid: TEST-ELLIPSOID
datumShifts:
  - from: TEST-DATUM
    to: TEST-DATUM-SYNONYM
    method: SYNONYM
  - from: TEST-DATUM
    to: OTHER-DATUM
    method: HELMERT
    helmert:
      shiftX: 1.0
      shiftY: 2.0
      shiftZ: 3.0
      rotationX: 0.1
      rotationY: 0.2
      rotationZ: 0.3
      scaleFactor: 0.5
spatialReferences:
  - code: TEST-WORLD
    coordSys: WORLD
    datum: TEST-DATUM
    units: degrees
`

func TestLoadParsesAllSections(t *testing.T) {
	b, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Len(t, b.Ellipsoids, 1)
	assert.Len(t, b.Units, 1)
	assert.Len(t, b.Datums, 2)
	assert.Len(t, b.Shifts, 2)
	assert.Len(t, b.References, 1)
}

func TestLoadEmptyDocumentReturnsEmptyBundle(t *testing.T) {
	b, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, b.Ellipsoids)
}

func TestApplyRegistersEllipsoidUnitDatumAndShift(t *testing.T) {
	b, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	reg := sref.NewRegistry()
	require.NoError(t, b.Apply(reg))

	ell, err := reg.Ellipsoid("TEST-ELLIPSOID")
	require.NoError(t, err)
	assert.InDelta(t, 6378137.0, ell.EquatorialAxis, 1e-6)
	assert.Greater(t, ell.EccentricitySquared, 0.0)

	unit, err := reg.Unit("TEST-UNIT")
	require.NoError(t, err)
	assert.Equal(t, 1.0, unit.MetersPerUnit)

	datum, err := reg.Datum("TEST-DATUM")
	require.NoError(t, err)
	assert.Equal(t, "TEST-ELLIPSOID", datum.Ellipsoid.Code)

	assert.Equal(t, reg.CanonicalDatum("TEST-DATUM"), reg.CanonicalDatum("TEST-DATUM-SYNONYM"))

	ref, err := reg.SpatialRefByCode("TEST-WORLD")
	require.NoError(t, err)
	assert.Equal(t, "TEST-DATUM", ref.Datum.Code)
}

func TestApplyRejectsUnknownDatumShiftMethod(t *testing.T) {
	b, err := Load(strings.NewReader(`
datumShifts:
  - from: A
    to: B
    method: NOT-A-METHOD
`))
	require.NoError(t, err)

	reg := sref.NewRegistry()
	err = b.Apply(reg)
	assert.Error(t, err)
}

func TestApplyRejectsDatumWithUnknownEllipsoid(t *testing.T) {
	b, err := Load(strings.NewReader(`
datums:
  - code: ORPHAN
    ellipsoid: NO-SUCH-ELLIPSOID
`))
	require.NoError(t, err)

	reg := sref.NewRegistry()
	err = b.Apply(reg)
	assert.Error(t, err)
}
