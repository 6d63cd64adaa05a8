package datumshift

import (
	"github.com/golang/geo/s2"
)

// Method identifies which shift algorithm a Shift record uses.
type Method int

// Method-rank order for automatic selection, low to high (spec.md §3):
// SYNONYM < MRE < HELMERT < MOLODENSKY < GRID.
const (
	Synonym Method = iota
	MRE
	Helmert
	Molodensky
	Grid
)

func (m Method) String() string {
	switch m {
	case Synonym:
		return "SYNONYM"
	case MRE:
		return "MRE"
	case Helmert:
		return "HELMERT"
	case Molodensky:
		return "MOLODENSKY"
	case Grid:
		return "GRID"
	default:
		return "UNKNOWN"
	}
}

// Bounds is a latitude/longitude bounding box a Shift record applies
// within. It wraps github.com/golang/geo/s2.Rect, grounded on
// tzneal/coordconv's use of github.com/golang/geo for this exact
// coordinate-conversion domain.
type Bounds struct {
	rect s2.Rect
}

// NewBounds builds a Bounds from degree extents.
func NewBounds(minLatDeg, maxLatDeg, minLonDeg, maxLonDeg float64) Bounds {
	return Bounds{rect: s2.RectFromLatLng(s2.LatLngFromDegrees(minLatDeg, minLonDeg)).AddPoint(
		s2.LatLngFromDegrees(maxLatDeg, maxLonDeg))}
}

// Contains reports whether (latDeg, lonDeg) falls within the bounds,
// inclusive of the boundary (s2.Rect.ContainsPoint's own semantics) —
// this resolves spec.md §9's Open Question about inclusive vs exclusive
// edges in favor of inclusive.
func (b Bounds) Contains(latDeg, lonDeg float64) bool {
	ll := s2.LatLngFromDegrees(latDeg, lonDeg)
	return b.rect.ContainsLatLng(ll)
}

// Shift is one row of the datum-shift table: a tabulated transform from
// one canonical datum to another by a specific method.
type Shift struct {
	From, To string
	Method   Method
	Name     string

	Helmert    HelmertParams
	Molodensky MolodenskyParams
	MRE        MREParams

	Bounds                  Bounds
	HasBounds               bool
	IsAvailableOnServerOnly bool
}

func (m Method) rank() int { return int(m) }

// SelectShift picks the best Shift from candidates going from->to at the
// given point, per spec.md §4.4 step 1-2: filter by (from, to), then by
// bounds if present, then take the lowest-rank method.
func SelectShift(candidates []Shift, from, to string, latDeg, lonDeg float64) (Shift, bool) {
	best := -1
	for i, s := range candidates {
		if s.From != from || s.To != to {
			continue
		}
		if s.HasBounds && !s.Bounds.Contains(latDeg, lonDeg) {
			continue
		}
		if best == -1 || s.Method.rank() < candidates[best].Method.rank() {
			best = i
		}
	}
	if best == -1 {
		return Shift{}, false
	}
	return candidates[best], true
}

// ReverseShift solves the inverse shift (to->from direction, applying
// the forward shift to a trial point) by the bounded iterative method of
// spec.md §4.4 step 3: trial := input; error := forward(trial) - input;
// trial -= 0.5*error; repeat until |error| < (1/3600)*1e-3 degrees or 50
// iterations are exhausted.
func ReverseShift(forward func(latDeg, lonDeg float64) (float64, float64), latDeg, lonDeg float64) (float64, float64, error) {
	const tolerance = (1.0 / 3600.0) * 1e-3
	const maxIterations = 50

	trialLat, trialLon := latDeg, lonDeg

	for i := 0; i < maxIterations; i++ {
		fLat, fLon := forward(trialLat, trialLon)
		errLat := fLat - latDeg
		errLon := fLon - lonDeg

		if absF(errLat) < tolerance && absF(errLon) < tolerance {
			return trialLat, trialLon, nil
		}

		trialLat -= 0.5 * errLat
		trialLon -= 0.5 * errLon
	}

	return 0, 0, &NonConvergentError{Method: "ReverseShift"}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
