package grid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/geoconv/sref/projection"
)

// IrishParams is the Irish National Grid's Transverse Mercator
// definition on the Airy Modified ellipsoid: true origin 53.5N 8W,
// false origin (200000, 250000), F0 = 1.000035 (spec.md §4.5), reusing
// the teacher's two-letter National Grid machinery parameterized for a
// single-letter alphabet.
var IrishParams = projection.Params{
	EquatorialAxis:      6377340.189,
	EccentricitySquared: 1.0 - (6356034.447*6356034.447)/(6377340.189*6377340.189),
	OriginLat:           53.5,
	OriginLon:           -8,
	OriginX:             200000,
	OriginY:             250000,
	CentralScaleFactor:  1.000035,
}

// irishAlphabet is the 25-cell single-letter Irish Grid layout (A..Z,
// skipping I), 5 columns by 5 rows, with V as the bottom-left (SW)
// square — the false origin's own 100km cell.
const irishAlphabet = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// IrishRef is an Irish National Grid reference.
type IrishRef struct {
	Easting, Northing int
}

var (
	irishCommaFormat  = regexp.MustCompile(`^(\d+),\s*(\d+)$`)
	irishLetterFormat = regexp.MustCompile(`^[A-Z][0-9]+$`)
)

// ParseIrish parses an Irish National Grid reference in single-letter
// form ("O149266") or comma-separated easting,northing form.
func ParseIrish(s string) (IrishRef, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ToUpper(s)

	if m := irishCommaFormat.FindStringSubmatch(s); m != nil {
		e, err1 := strconv.Atoi(m[1])
		n, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return IrishRef{}, &ParseError{Codec: "Irish", Input: s}
		}
		return IrishRef{Easting: e, Northing: n}, nil
	}

	if irishLetterFormat.FindString(s) == "" {
		return IrishRef{}, &ParseError{Codec: "Irish", Input: s}
	}

	idx := strings.IndexByte(irishAlphabet, s[0])
	if idx < 0 {
		return IrishRef{}, &ParseError{Codec: "Irish", Input: s}
	}
	e100km := idx % 5
	n100km := 4 - idx/5

	digits := s[1:]
	e, n := digits[:len(digits)/2], digits[len(digits)/2:]
	if len(e) != len(n) || len(e) == 0 {
		return IrishRef{}, &ParseError{Codec: "Irish", Input: s}
	}
	e = (e + "00000")[:5]
	n = (n + "00000")[:5]

	easting, err1 := strconv.Atoi(e)
	northing, err2 := strconv.Atoi(n)
	if err1 != nil || err2 != nil {
		return IrishRef{}, &ParseError{Codec: "Irish", Input: s}
	}

	return IrishRef{Easting: e100km*100000 + easting, Northing: n100km*100000 + northing}, nil
}

// Valid reports whether the reference falls within the Irish Grid's
// 500km x 500km extent.
func (r IrishRef) Valid() bool {
	return r.Easting >= 0 && r.Easting < 500e3 && r.Northing >= 0 && r.Northing < 500e3
}

// ToLatLon converts to geodetic coordinates on the Irish datum (Ireland
// 1965 / TM65) via Transverse Mercator.
func (r IrishRef) ToLatLon() (latDeg, lonDeg float64, err error) {
	return projection.TransverseMercatorInverse(IrishParams, float64(r.Easting), float64(r.Northing))
}

// FromLatLonIrish converts geodetic coordinates on the Irish datum to an
// Irish Grid reference.
func FromLatLonIrish(latDeg, lonDeg float64) (IrishRef, error) {
	x, y, err := projection.TransverseMercatorForward(IrishParams, latDeg, lonDeg)
	if err != nil {
		return IrishRef{}, err
	}
	return IrishRef{Easting: int(round(x)), Northing: int(round(y))}, nil
}

// String formats the reference at 8-digit (10m) precision.
func (r IrishRef) String() string {
	return r.StringN(8)
}

// StringN formats the reference with the given even digit count.
func (r IrishRef) StringN(digits int) string {
	e, n := r.Easting, r.Northing
	e100km := e / 100_000
	n100km := n / 100_000
	idx := (4-n100km)*5 + e100km

	pow := func(n int) int {
		result := 1
		for i := 0; i < n; i++ {
			result *= 10
		}
		return result
	}

	e = (e % 100000) / pow(5-digits/2)
	n = (n % 100000) / pow(5-digits/2)

	return fmt.Sprintf("%c%0*d%0*d", irishAlphabet[idx], digits/2, e, digits/2, n)
}
