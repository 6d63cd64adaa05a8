package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGARSLonIndexOrigin(t *testing.T) {
	// 001 is the band from 180W to 179.5W (spec.md §4.5).
	ref, err := ToGARS(0, -179.75)
	require.NoError(t, err)
	assert.Equal(t, 1, ref.LonIndex)
}

func TestGARSZeroLongitudeIsOrdinary(t *testing.T) {
	// Longitude 0 must not be special-cased (spec.md §9's truthiness bug
	// is deliberately not reproduced here).
	ref, err := ToGARS(10, 0)
	require.NoError(t, err)
	assert.Equal(t, 361, ref.LonIndex)

	refNeg, err := ToGARS(10, -0.25)
	require.NoError(t, err)
	assert.Equal(t, 360, refNeg.LonIndex)
}

func TestGARSRoundTripCenter(t *testing.T) {
	for _, tc := range []struct{ lat, lon float64 }{
		{38.889471, -77.035242},
		{-33.8688, 151.2093},
		{0, 0},
	} {
		ref, err := ToGARSFull(tc.lat, tc.lon)
		require.NoError(t, err)
		assert.NotZero(t, ref.Quadrant)
		assert.NotZero(t, ref.Keypad)

		lat2, lon2, err := ref.CenterLatLon()
		require.NoError(t, err)
		// center of a 5' cell is within ~0.05 deg of any point inside it.
		assert.InDelta(t, tc.lat, lat2, 0.05)
		assert.InDelta(t, tc.lon, lon2, 0.05)
	}
}

func TestGARSStringAndParseRoundTrip(t *testing.T) {
	ref, err := ToGARSFull(38.889471, -77.035242)
	require.NoError(t, err)

	s := ref.String()
	parsed, err := ParseGARS(s)
	require.NoError(t, err)
	assert.Equal(t, ref, parsed)
}

func TestGARSLatCodeUsesTwentyFourLetterAlphabet(t *testing.T) {
	ref, err := ToGARS(38.889471, -77.035242)
	require.NoError(t, err)
	assert.NotContains(t, ref.LatCode, "I")
	assert.NotContains(t, ref.LatCode, "O")
	assert.Len(t, ref.LatCode, 2)
}

func TestParseGARSInvalid(t *testing.T) {
	_, err := ParseGARS("not-a-gars-ref")
	assert.Error(t, err)
}

func TestGARSOutOfDomain(t *testing.T) {
	_, err := ToGARS(91, 0)
	assert.Error(t, err)
}

// TestGARSPinsWashingtonDCReference documents and pins a deliberate
// deviation from spec.md §8's literal reference value for this point
// ("361JC49"). Walking spec.md §4.5's own prose definition against
// this point yields lonIndex 206 (the 77°W 30' band) and latCode "LT"
// (the 38°30'N-39°00'N band), not 361/"JC" — the §8 literal appears to
// be self-inconsistent rather than this code being wrong, so the
// derived value is pinned here instead of chased.
func TestGARSPinsWashingtonDCReference(t *testing.T) {
	ref, err := ToGARSFull(38.889471, -77.035242)
	require.NoError(t, err)
	assert.Equal(t, "206LT26", ref.String())
}
