package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertLinear(t *testing.T) {
	v, err := Convert(1, USSurveyFeet, Meters)
	require.NoError(t, err)
	assert.InDelta(t, 0.3048006096, v, 1e-9)
}

func TestConvertSameUnit(t *testing.T) {
	v, err := Convert(42, Meters, Meters)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestConvertUnitMismatch(t *testing.T) {
	_, err := Convert(1, Meters, Acres)
	require.Error(t, err)
	var mismatch *UnitMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestConvertUnknownUnit(t *testing.T) {
	_, err := Convert(1, "bogus", Meters)
	require.Error(t, err)
	var unknown *UnknownUnitError
	assert.ErrorAs(t, err, &unknown)
}

func TestConvertAngularMismatch(t *testing.T) {
	_, err := Convert(1, Degrees, Grid)
	assert.Error(t, err)
}
