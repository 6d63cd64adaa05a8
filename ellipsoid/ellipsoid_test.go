package ellipsoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKnownCodes(t *testing.T) {
	for _, code := range []string{Clarke1866, GRS80, WGS84, Airy1830, Airy1849, Bessel1841} {
		e, err := Get(code)
		require.NoError(t, err)
		assert.Equal(t, code, e.Code)
		assert.Greater(t, e.EquatorialAxis, 6_000_000.0)
		assert.Greater(t, e.EccentricitySquared, 0.0)
	}
}

func TestLiteralConstants(t *testing.T) {
	// Numeric boundary constants from spec.md §6, preserved bit-exactly.
	clarke, err := Get(Clarke1866)
	require.NoError(t, err)
	assert.Equal(t, 6378206.4, clarke.EquatorialAxis)
	assert.Equal(t, 0.006768658, clarke.EccentricitySquared)

	grs80, err := Get(GRS80)
	require.NoError(t, err)
	assert.Equal(t, 6378137.0, grs80.EquatorialAxis)
	assert.Equal(t, 0.00669438, grs80.EccentricitySquared)

	wgs84, err := Get(WGS84)
	require.NoError(t, err)
	assert.Equal(t, 0.00669437999014, wgs84.EccentricitySquared)

	airy, err := Get(Airy1830)
	require.NoError(t, err)
	assert.Equal(t, 6377563.396, airy.EquatorialAxis)
	assert.Equal(t, 0.006670540074149084, airy.EccentricitySquared)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("NoSuchEllipsoid")
	assert.Error(t, err)
}

func TestRegisterUpsert(t *testing.T) {
	Register(Ellipsoid{Code: "TestEll", EquatorialAxis: 1, EccentricitySquared: 0.1})
	e, err := Get("TestEll")
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.EquatorialAxis)
}

func TestPolarAxis(t *testing.T) {
	wgs84, _ := Get(WGS84)
	b := wgs84.PolarAxis()
	assert.InDelta(t, 6356752.314245, b, 0.01)
}
