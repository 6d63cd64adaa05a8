package grid

import (
	"testing"

	"github.com/geoconv/sref/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateplaneTestParams() projection.Params {
	// loosely modeled on a small TM-based stateplane zone.
	return projection.Params{
		EquatorialAxis:      6378137.0,
		EccentricitySquared: 0.00669438,
		OriginLat:           0,
		OriginLon:           -75,
		OriginX:             500000,
		OriginY:             0,
		CentralScaleFactor:  0.9996,
	}
}

func TestGridTemplateCompile(t *testing.T) {
	gt := &GridTemplate{Pattern: "GRID{0,number,0000}B{1,number,000}"}
	require.NoError(t, gt.Compile())
	assert.Len(t, gt.segments, 4)
}

func TestGridTemplateCompileRejectsWrongFieldCount(t *testing.T) {
	gt := &GridTemplate{Pattern: "GRID{0,number,0000}"}
	assert.Error(t, gt.Compile())
}

func TestGridTemplateFormatAndParseRoundTrip(t *testing.T) {
	gt := &GridTemplate{
		Pattern:          "GRID{0,number,0000}B{1,number,000}",
		CellSizeEasting:  100,
		CellSizeNorthing: 100,
	}
	s, err := gt.Format(523400, 17800)
	require.NoError(t, err)
	assert.Equal(t, "GRID5234B178", s)

	easting, northing, err := gt.Parse(s)
	require.NoError(t, err)
	assert.InDelta(t, 523450, easting, 1e-9)
	assert.InDelta(t, 17850, northing, 1e-9)
}

func TestGridTemplateParseRejectsMismatch(t *testing.T) {
	gt := &GridTemplate{
		Pattern:          "GRID{0,number,0000}B{1,number,000}",
		CellSizeEasting:  100,
		CellSizeNorthing: 100,
	}
	require.NoError(t, gt.Compile())
	_, _, err := gt.Parse("NOPE1234B567")
	assert.Error(t, err)
}

func TestGenericGridRoundTripThroughProjection(t *testing.T) {
	gt := &GridTemplate{
		Pattern:          "Z{0,number,000000}E{1,number,0000000}",
		Params:           stateplaneTestParams(),
		CellSizeEasting:  1,
		CellSizeNorthing: 1,
	}

	s, err := gt.ToGeneric(38.0, -76.0)
	require.NoError(t, err)

	lat, lon, err := gt.FromGeneric(s)
	require.NoError(t, err)
	assert.InDelta(t, 38.0, lat, 1e-3)
	assert.InDelta(t, -76.0, lon, 1e-3)
}
