package sref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap90StaysInRange(t *testing.T) {
	assert.Equal(t, 45.0, Wrap90(45))
	assert.InDelta(t, 80.0, Wrap90(100), 1e-9)
}

func TestWrap180StaysInRange(t *testing.T) {
	assert.InDelta(t, -170.0, Wrap180(190), 1e-9)
}

func TestWrap360StaysInRange(t *testing.T) {
	assert.InDelta(t, 350.0, Wrap360(-10), 1e-9)
}

func TestParseDegreesPlainDecimal(t *testing.T) {
	v, err := parseDegrees("-3.62")
	require.NoError(t, err)
	assert.InDelta(t, -3.62, v, 1e-9)
}

func TestParseDegreesDMSWithCompass(t *testing.T) {
	v, err := parseDegrees("3 37 12W")
	require.NoError(t, err)
	want := -(3 + 37.0/60 + 12.0/3600)
	assert.InDelta(t, want, v, 1e-6)
}

func TestParseDegreesInvalid(t *testing.T) {
	_, err := parseDegrees("")
	assert.Error(t, err)

	_, err = parseDegrees("not a number")
	assert.Error(t, err)
}

func TestParseLatLonCommaForm(t *testing.T) {
	lat, lon, err := ParseLatLon("38.889471, -77.035242")
	require.NoError(t, err)
	assert.InDelta(t, 38.889471, lat, 1e-6)
	assert.InDelta(t, -77.035242, lon, 1e-6)
}

func TestParseLatLonCompassForm(t *testing.T) {
	lat, lon, err := ParseLatLon("38.889471N 77.035242W")
	require.NoError(t, err)
	assert.InDelta(t, 38.889471, lat, 1e-6)
	assert.InDelta(t, -77.035242, lon, 1e-6)
}

func TestParseLatLonRejectsMalformed(t *testing.T) {
	_, _, err := ParseLatLon("just one value")
	assert.Error(t, err)
}

func TestDecimalDegreesToDMSRoundTrip(t *testing.T) {
	s := DecimalDegreesToDMS(-77.035242, 6)
	v, err := parseDegrees(s)
	require.NoError(t, err)
	assert.InDelta(t, -77.035242, v, 1e-6)
}
