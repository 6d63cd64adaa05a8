package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIrishLetterForm(t *testing.T) {
	ref, err := ParseIrish("O149266")
	require.NoError(t, err)
	assert.True(t, ref.Valid())
}

func TestParseIrishCommaForm(t *testing.T) {
	ref, err := ParseIrish("314900,234200")
	require.NoError(t, err)
	assert.Equal(t, 314900, ref.Easting)
	assert.Equal(t, 234200, ref.Northing)
}

func TestParseIrishInvalid(t *testing.T) {
	_, err := ParseIrish("not-a-grid-ref")
	assert.Error(t, err)
}

func TestIrishStringRoundTrip(t *testing.T) {
	ref := IrishRef{Easting: 314900, Northing: 234200}
	s := ref.StringN(10)
	parsed, err := ParseIrish(s)
	require.NoError(t, err)
	assert.Equal(t, ref.Easting, parsed.Easting)
	assert.Equal(t, ref.Northing, parsed.Northing)
}

func TestIrishToLatLonRoundTrip(t *testing.T) {
	ref := IrishRef{Easting: 314900, Northing: 234200}
	lat, lon, err := ref.ToLatLon()
	require.NoError(t, err)

	back, err := FromLatLonIrish(lat, lon)
	require.NoError(t, err)
	assert.InDelta(t, ref.Easting, back.Easting, 1)
	assert.InDelta(t, ref.Northing, back.Northing, 1)
}
