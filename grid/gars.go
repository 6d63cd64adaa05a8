package grid

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// garsLetters is the 24-letter GARS latitude alphabet (skips I, O),
// used two at a time for the 30' latitude band (576 possible pairs,
// only the first 360 of which are populated pole to pole).
const garsLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ"

// GARSRef is a decoded Global Area Reference System cell: a 30'
// longitude/latitude cell, refined by an optional 15' quadrant and 5'
// keypad cell (spec.md §4.5).
type GARSRef struct {
	LonIndex int  // 1-based, 1 at 180W
	LatCode  string // two letters
	Quadrant int  // 0 = unset, else 1-4
	Keypad   int  // 0 = unset, else 1-9
}

var garsFormat = regexp.MustCompile(`^(\d{3})([A-HJ-NP-Z]{2})([1-4]?)([1-9]?)$`)

// ToGARS converts a geodetic point to its 30'-resolution GARS cell
// (quadrant/keypad left unset; use ToGARSFull for full precision). No
// pack repo implements GARS; longitude/latitude banding is built
// directly from spec.md §4.5's prose definition.
//
// The longitude=0 Open Question (spec.md §9: the legacy
// `if (!longitude)` truthiness bug) is resolved here by treating 0° as
// an ordinary value — it is never special-cased.
func ToGARS(latDeg, lonDeg float64) (GARSRef, error) {
	if latDeg < -90 || latDeg > 90 || lonDeg < -180 || lonDeg > 180 {
		return GARSRef{}, &OutOfDomainError{Op: "ToGARS", Lat: latDeg}
	}

	lonIdx := int(math.Floor((lonDeg+180)/0.5)) + 1
	if lonIdx > 720 {
		lonIdx = 720
	}

	latIdx := int(math.Floor((latDeg + 90) / 0.5))
	if latIdx > 359 {
		latIdx = 359
	}
	first := latIdx / 24
	second := latIdx % 24

	return GARSRef{
		LonIndex: lonIdx,
		LatCode:  string([]byte{garsLetters[first], garsLetters[second]}),
	}, nil
}

// ToGARSFull converts a geodetic point to a fully-refined GARS cell,
// including the 15' quadrant and 5' keypad digit.
func ToGARSFull(latDeg, lonDeg float64) (GARSRef, error) {
	ref, err := ToGARS(latDeg, lonDeg)
	if err != nil {
		return GARSRef{}, err
	}

	cellWestDeg := float64(ref.LonIndex-1)*0.5 - 180
	cellSouthDeg := float64(latToIdx(latDeg))*0.5 - 90

	lonOffsetMin := (lonDeg - cellWestDeg) * 60
	latOffsetMin := (latDeg - cellSouthDeg) * 60

	// quadrant: 1=NW, 2=NE, 3=SW, 4=SE within the 30' cell's 15' halves.
	east := lonOffsetMin >= 15
	north := latOffsetMin >= 15
	switch {
	case north && !east:
		ref.Quadrant = 1
	case north && east:
		ref.Quadrant = 2
	case !north && !east:
		ref.Quadrant = 3
	default:
		ref.Quadrant = 4
	}

	// keypad: 3x3 of 5' cells within the 15' quadrant, phone-pad
	// orientation (1-3 top row, 4-6 middle, 7-9 bottom row).
	quadWestMin := math.Mod(lonOffsetMin, 15)
	quadSouthMin := math.Mod(latOffsetMin, 15)
	col := int(quadWestMin / 5)
	rowFromSouth := int(quadSouthMin / 5)
	rowFromNorth := 2 - rowFromSouth
	if col > 2 {
		col = 2
	}
	if rowFromNorth < 0 {
		rowFromNorth = 0
	}
	if rowFromNorth > 2 {
		rowFromNorth = 2
	}
	ref.Keypad = rowFromNorth*3 + col + 1

	return ref, nil
}

func latToIdx(latDeg float64) int {
	idx := int(math.Floor((latDeg + 90) / 0.5))
	if idx > 359 {
		idx = 359
	}
	return idx
}

// String formats the reference as "LLLAA[Q[K]]".
func (r GARSRef) String() string {
	s := fmt.Sprintf("%03d%s", r.LonIndex, r.LatCode)
	if r.Quadrant != 0 {
		s += strconv.Itoa(r.Quadrant)
	}
	if r.Keypad != 0 {
		s += strconv.Itoa(r.Keypad)
	}
	return s
}

// ParseGARS decodes a GARS string in any of its short forms
// ("LLLAA", "LLLAAQ", "LLLAAQK").
func ParseGARS(s string) (GARSRef, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	m := garsFormat.FindStringSubmatch(s)
	if m == nil {
		return GARSRef{}, &ParseError{Codec: "GARS", Input: s}
	}

	lonIdx, err := strconv.Atoi(m[1])
	if err != nil {
		return GARSRef{}, &ParseError{Codec: "GARS", Input: s}
	}

	ref := GARSRef{LonIndex: lonIdx, LatCode: m[2]}
	if m[3] != "" {
		ref.Quadrant, _ = strconv.Atoi(m[3])
	}
	if m[4] != "" {
		ref.Keypad, _ = strconv.Atoi(m[4])
	}
	return ref, nil
}

// CenterLatLon returns the geodetic center of the cell the reference
// identifies, at whatever precision (30'/15'/5') the reference carries.
func (r GARSRef) CenterLatLon() (latDeg, lonDeg float64, err error) {
	if r.LonIndex < 1 || r.LonIndex > 720 || len(r.LatCode) != 2 {
		return 0, 0, &ParseError{Codec: "GARS", Input: r.String()}
	}

	first := strings.IndexByte(garsLetters, r.LatCode[0])
	second := strings.IndexByte(garsLetters, r.LatCode[1])
	if first < 0 || second < 0 {
		return 0, 0, &ParseError{Codec: "GARS", Input: r.String()}
	}
	latIdx := first*24 + second

	west := float64(r.LonIndex-1)*0.5 - 180
	south := float64(latIdx)*0.5 - 90
	lon, lat := west+0.25, south+0.25 // center of the 30' cell
	cellSize := 0.5

	if r.Quadrant != 0 {
		cellSize = 0.25
		switch r.Quadrant {
		case 1:
			lon, lat = west+0.125, south+0.375
		case 2:
			lon, lat = west+0.375, south+0.375
		case 3:
			lon, lat = west+0.125, south+0.125
		case 4:
			lon, lat = west+0.375, south+0.125
		}
	}

	if r.Keypad != 0 {
		cellSize = 5.0 / 60.0
		quadWest := lon - cellSize*1.5
		quadSouth := lat - cellSize*1.5
		row := (r.Keypad - 1) / 3   // 0 = north row
		col := (r.Keypad - 1) % 3
		lon = quadWest + (float64(col)+0.5)*cellSize
		lat = quadSouth + (float64(2-row)+0.5)*cellSize
	}

	return lat, lon, nil
}
