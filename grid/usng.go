package grid

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/geoconv/sref/projection"
)

// utmA, utmE2 are the WGS84 ellipsoid parameters USNG/MGRS/UTM are
// defined against.
const (
	utmA  = 6378137.0
	utmE2 = 0.00669438
	utmK0 = 0.9996
)

const (
	latBandLetters = "CDEFGHJKLMNPQRSTUVWX" // skips I, O; 20 bands, -80..84
	oddRowLetters  = "ABCDEFGHJKLMNPQRSTUV" // skips I, O; 20-row cycle
	evenRowLetters = "FGHJKLMNPQRSTUVABCDE" // oddRowLetters rotated to start at F
)

var columnLetterSets = map[int]string{
	1: "ABCDEFGH", // sets {1,4}
	2: "JKLMNPQR", // sets {2,5}, skips O
	3: "STUVWXYZ", // sets {3,6}
}

// UTMZone returns the UTM longitude zone 1-60 for the given point,
// applying the Norway/Svalbard widenings called out in spec.md §4.5.
func UTMZone(latDeg, lonDeg float64) int {
	zone := int((lonDeg+180)/6) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}

	// Norway: zone 32 widened to cover 3-12E for latitudes 56-64N.
	if latDeg >= 56 && latDeg < 64 && lonDeg >= 3 && lonDeg < 12 {
		return 32
	}
	// Svalbard: zones 31,33,35,37 widened, 32,34,36 eliminated, for 72-84N.
	if latDeg >= 72 && latDeg < 84 {
		switch {
		case lonDeg >= 0 && lonDeg < 9:
			return 31
		case lonDeg >= 9 && lonDeg < 21:
			return 33
		case lonDeg >= 21 && lonDeg < 33:
			return 35
		case lonDeg >= 33 && lonDeg < 42:
			return 37
		}
	}

	return zone
}

// LatitudeBand returns the single-letter USNG/MGRS latitude band for
// the given point: C..X for the UTM-gridded belt (|lat| < 80 on the
// south side, < 84 on the north), and the four UPS polar bands A/B
// (south of -80, split at the prime meridian) and Y/Z (north of 84,
// split at the prime meridian) per spec.md §4.5. Only latitudes
// outside [-90, 90] are an error.
func LatitudeBand(latDeg, lonDeg float64) (byte, error) {
	if latDeg < -90 || latDeg > 90 {
		return 0, &OutOfDomainError{Op: "LatitudeBand", Lat: latDeg}
	}
	if latDeg < -80 {
		if lonDeg < 0 {
			return 'A', nil
		}
		return 'B', nil
	}
	if latDeg >= 84 {
		if lonDeg < 0 {
			return 'Y', nil
		}
		return 'Z', nil
	}
	idx := int((latDeg + 80) / 8)
	if idx > 19 {
		idx = 19 // band X extends from 72 to 84
	}
	return latBandLetters[idx], nil
}

// OutOfDomainError signals a point outside a codec's valid latitude
// range (e.g. the polar caps UTM/USNG's non-polar bands don't cover).
type OutOfDomainError struct {
	Op  string
	Lat float64
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("grid: %s: latitude %g out of domain", e.Op, e.Lat)
}

// utmParams returns the Transverse Mercator parameters for a UTM zone,
// with the false northing flipped for the southern hemisphere.
func utmParams(zone int, southHemisphere bool) projection.Params {
	centralMeridian := float64(zone)*6 - 183
	falseNorthing := 0.0
	if southHemisphere {
		falseNorthing = 10000000.0
	}
	return projection.Params{
		EquatorialAxis:      utmA,
		EccentricitySquared: utmE2,
		OriginLat:           0,
		OriginLon:           centralMeridian,
		OriginX:             500000,
		OriginY:             falseNorthing,
		CentralScaleFactor:  utmK0,
	}
}

// USNGRef is a decoded USNG/MGRS reference: the UTM zone, latitude
// band, 100km-square letter pair, and easting/northing within that
// square (in metres, always in [0, 100000)). Polar references
// (bands A, B, Y, Z) carry Zone == 0.
type USNGRef struct {
	Zone              int
	Band              byte
	SquareCol, SquareRow byte
	Easting, Northing int // metres within the 100km square
	HasSquare         bool
}

func columnSet(zone int) int {
	switch ((zone - 1) % 6) + 1 {
	case 1, 4:
		return 1
	case 2, 5:
		return 2
	default:
		return 3
	}
}

func isOddSet(zone int) bool {
	set := ((zone-1)%6 + 1)
	return set%2 == 1
}

// hundredKmSquare returns the two-letter 100km-square identifier for a
// UTM easting/northing pair, per spec.md §4.5's column/row cycling
// rules.
func hundredKmSquare(zone int, x, y float64) (col, row byte) {
	colLetters := columnLetterSets[columnSet(zone)]
	colIdx := ((int(math.Floor(x/100000)) - 1) % 8)
	if colIdx < 0 {
		colIdx += 8
	}

	rowLetters := oddRowLetters
	if !isOddSet(zone) {
		rowLetters = evenRowLetters
	}
	rowIdx := int(math.Floor(y/100000)) % 20
	if rowIdx < 0 {
		rowIdx += 20
	}

	return colLetters[colIdx], rowLetters[rowIdx]
}

// ToUSNG converts a geodetic point to a USNG/MGRS reference, storing
// full 1m-precision easting/northing within the 100km square; String
// and MGRSString truncate to the caller's desired precision (spec.md
// §4.5). Polar latitudes (band A, B, Y or Z) are dispatched to
// ToUSNGPolar, which grids the UPS plane instead of a UTM zone.
func ToUSNG(latDeg, lonDeg float64) (USNGRef, error) {
	band, err := LatitudeBand(latDeg, lonDeg)
	if err != nil {
		return USNGRef{}, err
	}
	if polarBands[band] {
		return ToUSNGPolar(latDeg, lonDeg)
	}

	zone := UTMZone(latDeg, lonDeg)
	southHemisphere := latDeg < 0
	params := utmParams(zone, southHemisphere)

	x, y, err := projection.TransverseMercatorForward(params, latDeg, lonDeg)
	if err != nil {
		return USNGRef{}, err
	}

	col, row := hundredKmSquare(zone, x, y)

	return USNGRef{
		Zone:      zone,
		Band:      band,
		SquareCol: col,
		SquareRow: row,
		Easting:   int(math.Floor(x)) % 100000,
		Northing:  int(math.Floor(y)) % 100000,
		HasSquare: true,
	}, nil
}

// upsColLetters, upsRowLetters are the UPS 100km-square alphabets: a
// single 24-letter cycle (skipping I, O, same exclusions as the UTM
// alphabets) used for both poles, since UPS has no zone/column-set
// split to distinguish the way UTM's three column sets do.
const (
	upsColLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	upsRowLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// upsOrigin is the UPS false easting/northing (spec.md §4.5): the pole
// itself sits at (2,000,000, 2,000,000), so every polar coordinate is
// positive.
const upsOrigin = 2000000.0

// upsK0 is the UPS central scale factor at the pole (spec.md §4.5).
const upsK0 = 0.994

// polarParams returns the Polar Stereographic projection parameters
// for UPS, selecting the pole from northPole.
func polarParams(northPole bool) projection.Params {
	originLat := 90.0
	if !northPole {
		originLat = -90.0
	}
	return projection.Params{
		EquatorialAxis:      utmA,
		EccentricitySquared: utmE2,
		OriginLat:           originLat,
		OriginLon:           0,
		OriginX:             upsOrigin,
		OriginY:             upsOrigin,
		CentralScaleFactor:  upsK0,
	}
}

// polarSquare maps a UPS easting/northing pair to its 100km-square
// letter pair by cycling through upsColLetters/upsRowLetters, the
// polar analogue of hundredKmSquare.
func polarSquare(x, y float64) (col, row byte) {
	colIdx := int(math.Floor(x/100000)) % len(upsColLetters)
	if colIdx < 0 {
		colIdx += len(upsColLetters)
	}
	rowIdx := int(math.Floor(y/100000)) % len(upsRowLetters)
	if rowIdx < 0 {
		rowIdx += len(upsRowLetters)
	}
	return upsColLetters[colIdx], upsRowLetters[rowIdx]
}

// polarCycleOrigin inverts polarSquare's modulo: given the square
// letter's index and the expected offset from the UPS origin, it picks
// the multiple of the alphabet's 100km*len cycle nearest upsOrigin, the
// polar analogue of ToLatLon's minNorthingForBand bracket.
func polarCycleOrigin(idx, alphabetLen int) float64 {
	cycle := float64(alphabetLen) * 100000
	k := math.Round((upsOrigin - float64(idx)*100000) / cycle)
	return k*cycle + float64(idx)*100000
}

// ToUSNGPolar converts a geodetic point in a polar band (A, B, Y, or Z)
// to a USNG/MGRS reference using UPS instead of a UTM zone (spec.md
// §4.5's "UPS polar squares"); Zone is always 0 for the result. Reuses
// projection.PolarStereographicForward, the same kernel the general
// Stereographic coordinate system dispatches to for a 90°/-90° origin.
func ToUSNGPolar(latDeg, lonDeg float64) (USNGRef, error) {
	band, err := LatitudeBand(latDeg, lonDeg)
	if err != nil {
		return USNGRef{}, err
	}
	if !polarBands[band] {
		return USNGRef{}, &OutOfDomainError{Op: "ToUSNGPolar", Lat: latDeg}
	}

	northPole := band == 'Y' || band == 'Z'
	params := polarParams(northPole)

	x, y, err := projection.PolarStereographicForward(params, latDeg, lonDeg)
	if err != nil {
		return USNGRef{}, err
	}

	col, row := polarSquare(x, y)

	return USNGRef{
		Zone:      0,
		Band:      band,
		SquareCol: col,
		SquareRow: row,
		Easting:   int(math.Floor(x)) % 100000,
		Northing:  int(math.Floor(y)) % 100000,
		HasSquare: true,
	}, nil
}

// ToLatLonPolar decodes a polar-band (A, B, Y, Z) USNG/MGRS reference
// back to geodetic coordinates via UPS's inverse Polar Stereographic.
func (r USNGRef) ToLatLonPolar() (latDeg, lonDeg float64, err error) {
	if !polarBands[r.Band] {
		return 0, 0, &ParseError{Codec: "USNG", Input: "non-polar band requires ToLatLon"}
	}
	if !r.HasSquare {
		return 0, 0, &ParseError{Codec: "USNG", Input: "square letters required to decode"}
	}

	northPole := r.Band == 'Y' || r.Band == 'Z'
	params := polarParams(northPole)

	colIdx := strings.IndexByte(upsColLetters, r.SquareCol)
	rowIdx := strings.IndexByte(upsRowLetters, r.SquareRow)
	if colIdx < 0 || rowIdx < 0 {
		return 0, 0, &ParseError{Codec: "USNG", Input: "unknown polar square letter"}
	}

	x := polarCycleOrigin(colIdx, len(upsColLetters)) + float64(r.Easting)
	y := polarCycleOrigin(rowIdx, len(upsRowLetters)) + float64(r.Northing)

	return projection.PolarStereographicInverse(params, x, y)
}

func clampPrecision(p *int) {
	if *p < 0 {
		*p = 0
	}
	if *p > 5 {
		*p = 5
	}
}

// String formats the reference in USNG's space-delimited form:
// "ZZL SQ EEEEE NNNNN", truncated (floor, not rounded) to the given
// precision (0..5 digits per axis), per spec.md §4.5.
func (r USNGRef) String(precision int) string {
	clampPrecision(&precision)
	zoneBand := fmt.Sprintf("%d%c", r.Zone, r.Band)
	if r.Zone == 0 {
		zoneBand = string(r.Band)
	}
	if !r.HasSquare {
		return zoneBand
	}
	if precision == 0 {
		return fmt.Sprintf("%s %c%c", zoneBand, r.SquareCol, r.SquareRow)
	}

	divisor := int(math.Pow(10, float64(5-precision)))
	e := r.Easting / divisor
	n := r.Northing / divisor

	return fmt.Sprintf("%s %c%c %0*d %0*d", zoneBand, r.SquareCol, r.SquareRow, precision, e, precision, n)
}

// MGRSString formats the reference in MGRS's undelimited, fixed
// 5-digit-precision form.
func (r USNGRef) MGRSString() string {
	zoneBand := fmt.Sprintf("%d%c", r.Zone, r.Band)
	if r.Zone == 0 {
		zoneBand = string(r.Band)
	}
	return fmt.Sprintf("%s%c%c%05d%05d", zoneBand, r.SquareCol, r.SquareRow, r.Easting, r.Northing)
}

// usngRegex matches a USNG/MGRS token: optional 2-digit zone, a
// latitude band letter, an optional 2-letter 100km square, and two
// equal-length digit groups (spec.md §8's cited regex, adapted to Go's
// RE2 syntax — RE2 has no backreferences, so the single-blob/split-in-
// half fallback is handled in code rather than in the pattern).
var usngRegex = regexp.MustCompile(`^(\d{0,2})\s*([A-HJ-NP-Z])\s*([A-HJ-NP-Z]?[A-HJ-NP-V]?)\s*(\d*)\s*(\d*)$`)

var polarBands = map[byte]bool{'A': true, 'B': true, 'Y': true, 'Z': true}

// ParseUSNG decodes a USNG or MGRS string. Returns a ParseError for
// malformed input, and an OutOfDomainError-shaped ParseError if the
// polar-band/zone-prefix combination is inconsistent (spec.md §8's
// polar-band rule).
func ParseUSNG(s string) (USNGRef, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	m := usngRegex.FindStringSubmatch(s)
	if m == nil {
		return USNGRef{}, &ParseError{Codec: "USNG", Input: s}
	}

	zoneStr, bandStr, squareStr := m[1], m[2], m[3]
	eDigits, nDigits := m[4], m[5]

	if eDigits == "" && nDigits != "" {
		return USNGRef{}, &ParseError{Codec: "USNG", Input: s}
	}
	// a single numeric blob (no separating whitespace) is only valid if
	// it is even length, split in half between easting and northing.
	if nDigits == "" && eDigits != "" {
		if len(eDigits)%2 != 0 {
			return USNGRef{}, &ParseError{Codec: "USNG", Input: s}
		}
		half := len(eDigits) / 2
		eDigits, nDigits = eDigits[:half], eDigits[half:]
	}

	band := bandStr[0]
	isPolar := polarBands[band]
	if isPolar && zoneStr != "" {
		return USNGRef{}, &ParseError{Codec: "USNG", Input: s}
	}
	if !isPolar && zoneStr == "" {
		return USNGRef{}, &ParseError{Codec: "USNG", Input: s}
	}

	zone := 0
	if zoneStr != "" {
		z, err := strconv.Atoi(zoneStr)
		if err != nil {
			return USNGRef{}, &ParseError{Codec: "USNG", Input: s}
		}
		zone = z
	}

	ref := USNGRef{Zone: zone, Band: band}
	if len(squareStr) == 2 {
		ref.SquareCol, ref.SquareRow = squareStr[0], squareStr[1]
		ref.HasSquare = true
	}

	if eDigits != "" {
		scale := int(math.Pow(10, float64(5-len(eDigits))))
		e, err1 := strconv.Atoi(eDigits)
		n, err2 := strconv.Atoi(nDigits)
		if err1 != nil || err2 != nil {
			return USNGRef{}, &ParseError{Codec: "USNG", Input: s}
		}
		ref.Easting = e * scale
		ref.Northing = n * scale
	}

	return ref, nil
}

// IsValidUSNG reports whether s parses as a well-formed USNG/MGRS
// reference, grounded on the teacher dms.go's IsValidUsng.
func IsValidUSNG(s string) bool {
	_, err := ParseUSNG(s)
	return err == nil
}

// minNorthingForBand gives, for each non-polar latitude band, the FGDC
// minimum UTM northing (metres) that band's row letters can decode to.
// spec.md §9 flags the legacy reference's hand-typed approximate table
// ([1.1, 2, 2.9, ...]) as wrong; this uses the correct FGDC values.
var minNorthingForBand = map[byte]float64{
	'C': 1100000, 'D': 2000000, 'E': 2800000, 'F': 3700000, 'G': 4600000,
	'H': 5500000, 'J': 6400000, 'K': 7300000, 'L': 8200000, 'M': 9100000,
	'N': 0, 'P': 800000, 'Q': 1700000, 'R': 2600000, 'S': 3500000,
	'T': 4400000, 'U': 5300000, 'V': 6200000, 'W': 7000000, 'X': 7900000,
}

// ToLatLon decodes a USNG/MGRS reference back to geodetic coordinates,
// dispatching polar bands (A, B, Y, Z) to ToLatLonPolar. For the
// non-polar bands, the 100km-square row letter only determines
// northing modulo 2,000,000m (the row-letter cycle repeats every 20
// rows = 2000km within a zone's ~10,000km span); this resolves the
// ambiguity using the reference's own latitude band as a bracket, per
// spec.md §4.5.
func (r USNGRef) ToLatLon() (latDeg, lonDeg float64, err error) {
	if polarBands[r.Band] {
		return r.ToLatLonPolar()
	}
	if !r.HasSquare {
		return 0, 0, &ParseError{Codec: "USNG", Input: "square letters required to decode"}
	}

	southHemisphere := r.Band < 'N'
	params := utmParams(r.Zone, southHemisphere)

	colLetters := columnLetterSets[columnSet(r.Zone)]
	colIdx := strings.IndexByte(colLetters, r.SquareCol)
	if colIdx < 0 {
		return 0, 0, &ParseError{Codec: "USNG", Input: "unknown column letter"}
	}
	x := float64(colIdx+1)*100000 + float64(r.Easting)

	rowLetters := oddRowLetters
	if !isOddSet(r.Zone) {
		rowLetters = evenRowLetters
	}
	rowIdx := strings.IndexByte(rowLetters, r.SquareRow)
	if rowIdx < 0 {
		return 0, 0, &ParseError{Codec: "USNG", Input: "unknown row letter"}
	}
	y := float64(rowIdx)*100000 + float64(r.Northing)

	minNorthing, ok := minNorthingForBand[r.Band]
	if !ok {
		return 0, 0, &ParseError{Codec: "USNG", Input: "unknown latitude band"}
	}
	for y < minNorthing {
		y += 2000000
	}

	return projection.TransverseMercatorInverse(params, x, y)
}
