// Package grid implements the fixed-format grid-reference codecs: OSGB
// National Grid, Irish Grid, USNG/MGRS, UTM, GARS, CAP, and a generic
// template-driven stateplane grid (spec.md §4.5).
package grid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/geoconv/sref/projection"
)

// OSGBParams is the OSGB National Grid's fixed Transverse Mercator
// definition (Airy 1830, true origin 49N 2W, false origin
// (400000, -100000), F0 = 0.9996012717), grounded verbatim on the
// teacher's hardcoded constants.
var OSGBParams = projection.Params{
	EquatorialAxis:      6377563.396,
	EccentricitySquared: 1.0 - (6356256.909*6356256.909)/(6377563.396*6377563.396),
	OriginLat:           49,
	OriginLon:           -2,
	OriginX:             400000,
	OriginY:             -100000,
	CentralScaleFactor:  0.9996012717,
}

// OSGBRef is an OSGB National Grid reference: a full easting/northing
// pair in metres from the grid's false origin; the two-letter
// 100km-square code is derived from it when formatting.
type OSGBRef struct {
	Easting, Northing int
}

var (
	osgbCommaFormat = regexp.MustCompile(`^(\d+),\s*(\d+)$`)
	osgbLetterFormat = regexp.MustCompile(`^[A-Z]{2}[0-9]+$`)
)

// ParseError reports a malformed grid-reference string.
type ParseError struct {
	Codec, Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: %s: invalid reference %q", e.Codec, e.Input)
}

// ParseOSGB parses an OSGB National Grid reference in either
// two-letter-plus-digits form ("SJ9239552997") or comma-separated
// easting,northing form ("439239,352997"), grounded verbatim on the
// teacher's ParseOsGridRef.
func ParseOSGB(s string) (OSGBRef, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ToUpper(s)

	if m := osgbCommaFormat.FindStringSubmatch(s); m != nil {
		e, err1 := strconv.Atoi(m[1])
		n, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return OSGBRef{}, &ParseError{Codec: "OSGB", Input: s}
		}
		return OSGBRef{Easting: e, Northing: n}, nil
	}

	if osgbLetterFormat.FindString(s) == "" {
		return OSGBRef{}, &ParseError{Codec: "OSGB", Input: s}
	}

	l1 := int(s[0] - 'A')
	l2 := int(s[1] - 'A')
	if s[0] == 'I' || s[1] == 'I' {
		return OSGBRef{}, &ParseError{Codec: "OSGB", Input: s}
	}
	if l1 > 7 {
		l1--
	}
	if l2 > 7 {
		l2--
	}
	if l1 < 8 || l1 > 18 {
		return OSGBRef{}, &ParseError{Codec: "OSGB", Input: s}
	}

	e100km := ((l1-2)%5)*5 + (l2 % 5)
	n100km := (19 - (l1/5)*5) - (l2 / 5)

	digits := s[2:]
	e, n := digits[:len(digits)/2], digits[len(digits)/2:]
	if len(e) != len(n) || len(e) == 0 {
		return OSGBRef{}, &ParseError{Codec: "OSGB", Input: s}
	}
	e = (e + "00000")[:5]
	n = (n + "00000")[:5]

	easting, err1 := strconv.Atoi(e)
	northing, err2 := strconv.Atoi(n)
	if err1 != nil || err2 != nil {
		return OSGBRef{}, &ParseError{Codec: "OSGB", Input: s}
	}

	return OSGBRef{Easting: e100km*100000 + easting, Northing: n100km*100000 + northing}, nil
}

// Valid reports whether the reference falls within Great Britain's grid
// extent, grounded on the teacher's OsGridRef.Valid.
func (o OSGBRef) Valid() bool {
	return o.Easting >= 0 && o.Easting <= 700e3 && o.Northing >= 0 && o.Northing <= 1300e3
}

// ToLatLon converts an OSGB grid reference to OSGB36 geodetic
// coordinates via Transverse Mercator, grounded on the teacher's
// OsGridRef.ToLatLon (now delegating the TM inverse to the generalized
// projection package instead of an inlined series).
func (o OSGBRef) ToLatLon() (latDeg, lonDeg float64, err error) {
	return projection.TransverseMercatorInverse(OSGBParams, float64(o.Easting), float64(o.Northing))
}

// FromLatLon converts OSGB36 geodetic coordinates to an OSGB grid
// reference, grounded on the teacher's LatLonEllipsoidalDatum.ToOsGridRef.
func FromLatLon(latDeg, lonDeg float64) (OSGBRef, error) {
	x, y, err := projection.TransverseMercatorForward(OSGBParams, latDeg, lonDeg)
	if err != nil {
		return OSGBRef{}, err
	}
	return OSGBRef{Easting: int(round(x)), Northing: int(round(y))}, nil
}

func round(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}

// String formats the reference at 8-digit (10m) precision,
// grounded on the teacher's OsGridRef.String/StringN.
func (o OSGBRef) String() string {
	return o.StringN(8)
}

// StringN formats the reference with the given digit count (2, 4, 6, 8,
// or 10), with a space between the letter pair and digits.
func (o OSGBRef) StringN(digits int) string {
	return o.stringN(digits, true)
}

// StringNCompact is StringN without the separating space.
func (o OSGBRef) StringNCompact(digits int) string {
	return o.stringN(digits, false)
}

func (o OSGBRef) stringN(digits int, spaces bool) string {
	e, n := o.Easting, o.Northing
	e100km := e / 100_000
	n100km := n / 100_000

	l1 := (19 - n100km) - (19-n100km)%5 + (e100km+10)/5
	l2 := (19-n100km)*5%25 + e100km%5
	if l1 > 7 {
		l1++
	}
	if l2 > 7 {
		l2++
	}
	letterPair := string([]byte{byte(l1 + 'A'), byte(l2 + 'A')})

	pow := func(n int) int {
		r := 1
		for i := 0; i < n; i++ {
			r *= 10
		}
		return r
	}

	e = (e % 100000) / pow(5-digits/2)
	n = (n % 100000) / pow(5-digits/2)

	if spaces {
		return fmt.Sprintf("%s %0*d %0*d", letterPair, digits/2, e, digits/2, n)
	}
	return fmt.Sprintf("%s%0*d%0*d", letterPair, digits/2, e, digits/2, n)
}

// NumericString formats the reference as bare comma-separated
// easting,northing, grounded on the teacher's OsGridRef.NumericString.
func (o OSGBRef) NumericString() string {
	return fmt.Sprintf("%d,%d", o.Easting, o.Northing)
}
