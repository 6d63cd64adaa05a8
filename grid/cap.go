package grid

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Sectional describes one CAP (Civil Air Patrol) sectional chart's
// coverage and cell geometry (spec.md §4.5). Alaska sections use
// 30'x60' cells; all others use 15'x15' cells.
type Sectional struct {
	Code            string
	North, South    float64
	West, East      float64
	Alaska          bool
}

var (
	sectionalsMu sync.RWMutex
	sectionals   = map[string]Sectional{
		"SFO": {Code: "SFO", North: 39.0, South: 36.0, West: -123.5, East: -120.0},
		"LAX": {Code: "LAX", North: 35.5, South: 32.5, West: -120.5, East: -116.0},
		"SEA": {Code: "SEA", North: 49.0, South: 46.0, West: -124.5, East: -120.0},
		"ANC": {Code: "ANC", North: 62.0, South: 59.0, West: -152.0, East: -147.0, Alaska: true},
	}
)

// RegisterSectional registers or replaces a CAP sectional chart's
// coverage. Intended to be called by the config bundle loader to
// supplement the small built-in table (the real FAA sectional table
// has roughly sixty charts; only a handful ship built in).
func RegisterSectional(s Sectional) {
	sectionalsMu.Lock()
	defer sectionalsMu.Unlock()
	sectionals[strings.ToUpper(s.Code)] = s
}

// SectionalByCode looks up a registered sectional chart by its code.
func SectionalByCode(code string) (Sectional, bool) {
	sectionalsMu.RLock()
	defer sectionalsMu.RUnlock()
	s, ok := sectionals[strings.ToUpper(code)]
	return s, ok
}

func (s Sectional) cellSize() (latSize, lonSize float64) {
	if s.Alaska {
		return 0.5, 1.0
	}
	return 0.25, 0.25
}

func (s Sectional) dims() (rows, cols int) {
	latSize, lonSize := s.cellSize()
	rows = int(math.Ceil((s.North - s.South) / latSize))
	cols = int(math.Ceil((s.East - s.West) / lonSize))
	return
}

// CAPClassicRef is a CAP classic reference: a sectional code, a
// 1-based row-major cell ordinal within it, and an optional A-D
// quadrant refinement.
type CAPClassicRef struct {
	Section  string
	Ordinal  int
	Quadrant byte // 0 = unset, else 'A'..'D'
}

var capClassicFormat = regexp.MustCompile(`^([A-Z]{2,4})\s*(\d{1,2})([A-D]?)$`)

// ToCAPClassic converts a geodetic point to its CAP classic reference
// within the given sectional.
func ToCAPClassic(sectionCode string, latDeg, lonDeg float64) (CAPClassicRef, error) {
	s, ok := SectionalByCode(sectionCode)
	if !ok {
		return CAPClassicRef{}, &ParseError{Codec: "CAP", Input: sectionCode}
	}
	if latDeg > s.North || latDeg < s.South || lonDeg < s.West || lonDeg > s.East {
		return CAPClassicRef{}, &OutOfDomainError{Op: "ToCAPClassic", Lat: latDeg}
	}

	latSize, lonSize := s.cellSize()
	_, cols := s.dims()

	row := int((s.North - latDeg) / latSize)
	col := int((lonDeg - s.West) / lonSize)
	ordinal := row*cols + col + 1

	cellNorth := s.North - float64(row)*latSize
	cellWest := s.West + float64(col)*lonSize
	north := latDeg >= cellNorth-latSize/2
	east := lonDeg >= cellWest+lonSize/2

	var quadrant byte
	switch {
	case north && !east:
		quadrant = 'A'
	case north && east:
		quadrant = 'B'
	case !north && !east:
		quadrant = 'C'
	default:
		quadrant = 'D'
	}

	return CAPClassicRef{Section: s.Code, Ordinal: ordinal, Quadrant: quadrant}, nil
}

func (r CAPClassicRef) String() string {
	s := fmt.Sprintf("%s %02d", r.Section, r.Ordinal)
	if r.Quadrant != 0 {
		s += string(r.Quadrant)
	}
	return s
}

// ParseCAPClassic parses a "SEC NN[L]" CAP classic reference string.
func ParseCAPClassic(s string) (CAPClassicRef, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	m := capClassicFormat.FindStringSubmatch(s)
	if m == nil {
		return CAPClassicRef{}, &ParseError{Codec: "CAP", Input: s}
	}
	ordinal, err := strconv.Atoi(m[2])
	if err != nil {
		return CAPClassicRef{}, &ParseError{Codec: "CAP", Input: s}
	}
	ref := CAPClassicRef{Section: m[1], Ordinal: ordinal}
	if m[3] != "" {
		ref.Quadrant = m[3][0]
	}
	return ref, nil
}

// ToLatLon returns the center of the cell (or quadrant, if set) this
// reference identifies.
func (r CAPClassicRef) ToLatLon() (latDeg, lonDeg float64, err error) {
	s, ok := SectionalByCode(r.Section)
	if !ok {
		return 0, 0, &ParseError{Codec: "CAP", Input: r.Section}
	}
	latSize, lonSize := s.cellSize()
	_, cols := s.dims()

	row := (r.Ordinal - 1) / cols
	col := (r.Ordinal - 1) % cols

	cellNorth := s.North - float64(row)*latSize
	cellWest := s.West + float64(col)*lonSize
	lat := cellNorth - latSize/2
	lon := cellWest + lonSize/2

	if r.Quadrant != 0 {
		qLatSize, qLonSize := latSize/2, lonSize/2
		switch r.Quadrant {
		case 'A':
			lat, lon = cellNorth-qLatSize/2, cellWest+qLonSize/2
		case 'B':
			lat, lon = cellNorth-qLatSize/2, cellWest+lonSize-qLonSize/2
		case 'C':
			lat, lon = cellNorth-latSize+qLatSize/2, cellWest+qLonSize/2
		case 'D':
			lat, lon = cellNorth-latSize+qLatSize/2, cellWest+lonSize-qLonSize/2
		}
	}

	return lat, lon, nil
}

// CAPCellRef is a CAP cell reference: degree-resolution latitude and
// longitude indices, refined by up to three successively-quartering
// letters (A=NW, B=NE, C=SW, D=SE of the remaining cell).
type CAPCellRef struct {
	LatDeg  int
	LonDeg  int
	Letters string
}

var capCellFormat = regexp.MustCompile(`^(\d{2})(\d{3})([A-D]{0,3})$`)

// ToCAPCell converts a geodetic point to a CAP cell reference at the
// given letter-quartering depth (0-3).
func ToCAPCell(latDeg, lonDeg float64, depth int) (CAPCellRef, error) {
	if latDeg < 0 || latDeg >= 100 || lonDeg < -180 || lonDeg > 180 {
		return CAPCellRef{}, &OutOfDomainError{Op: "ToCAPCell", Lat: latDeg}
	}
	if depth < 0 || depth > 3 {
		depth = 3
	}

	latBase := int(math.Floor(latDeg))
	lonBase := int(math.Floor(lonDeg + 180))

	south := float64(latBase)
	west := float64(lonBase) - 180
	latSize, lonSize := 1.0, 1.0

	letters := make([]byte, 0, depth)
	for i := 0; i < depth; i++ {
		latSize /= 2
		lonSize /= 2
		north := latDeg >= south+latSize
		east := lonDeg >= west+lonSize
		if north {
			south += latSize
		}
		if east {
			west += lonSize
		}
		switch {
		case north && !east:
			letters = append(letters, 'A')
		case north && east:
			letters = append(letters, 'B')
		case !north && !east:
			letters = append(letters, 'C')
		default:
			letters = append(letters, 'D')
		}
	}

	return CAPCellRef{LatDeg: latBase, LonDeg: lonBase, Letters: string(letters)}, nil
}

func (r CAPCellRef) String() string {
	return fmt.Sprintf("%02d%03d%s", r.LatDeg, r.LonDeg, r.Letters)
}

// ParseCAPCell parses a "DDLLLXXX" CAP cell reference string.
func ParseCAPCell(s string) (CAPCellRef, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	m := capCellFormat.FindStringSubmatch(s)
	if m == nil {
		return CAPCellRef{}, &ParseError{Codec: "CAP", Input: s}
	}
	lat, err1 := strconv.Atoi(m[1])
	lon, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return CAPCellRef{}, &ParseError{Codec: "CAP", Input: s}
	}
	return CAPCellRef{LatDeg: lat, LonDeg: lon, Letters: m[3]}, nil
}

// ToLatLon returns the center of the cell this reference identifies.
func (r CAPCellRef) ToLatLon() (latDeg, lonDeg float64, err error) {
	south := float64(r.LatDeg)
	west := float64(r.LonDeg) - 180
	latSize, lonSize := 1.0, 1.0

	for i := 0; i < len(r.Letters); i++ {
		latSize /= 2
		lonSize /= 2
		switch r.Letters[i] {
		case 'A':
			south += latSize
		case 'B':
			south += latSize
			west += lonSize
		case 'C':
		case 'D':
			west += lonSize
		default:
			return 0, 0, &ParseError{Codec: "CAP", Input: r.String()}
		}
	}

	return south + latSize/2, west + lonSize/2, nil
}
