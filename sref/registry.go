package sref

import (
	"strings"
	"sync"

	"github.com/geoconv/sref/datumshift"
	"github.com/geoconv/sref/ellipsoid"
	"github.com/geoconv/sref/units"
)

// Atlas is a page-indexed raster/vector overlay a WORLD-type point can
// be addressed within (spec.md §4.6 step 1's ATLAS branch): a point is
// named by (pageId, gridH, gridV) rather than lon/lat directly.
type Atlas struct {
	ID    string
	Pages map[string]AtlasPage
}

// AtlasPage maps one page's grid cell addresses to geodetic bounds.
type AtlasPage struct {
	PageID               string
	OriginLat, OriginLon float64
	CellSizeLat          float64
	CellSizeLon          float64
	Cols, Rows           int
}

// Registry is the single source of truth for every ellipsoid, unit,
// datum, coordinate system, spatial reference, datum shift, and atlas
// the conversion engine knows about. It is built once via NewRegistry
// and is safe for concurrent readers; writes (Register*) take a single
// writer lock, per spec.md §5's "guard it with a single writer" note —
// grounded on the teacher's registry-free global catalogs, generalized
// into an explicit mutex-guarded struct since this module supports
// multiple independent registries rather than one implicit global one.
type Registry struct {
	mu sync.RWMutex

	ellipsoids map[string]ellipsoid.Ellipsoid
	mapUnits   map[string]units.MapUnit
	coordSys   map[string]CoordSys
	datums     map[string]Datum
	shifts     []datumshift.Shift
	spatialRef map[string]SpatialReference
	atlases    map[string]Atlas

	canon *canonicalGraph
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ellipsoids: map[string]ellipsoid.Ellipsoid{},
		mapUnits:   map[string]units.MapUnit{},
		coordSys:   map[string]CoordSys{},
		datums:     map[string]Datum{},
		spatialRef: map[string]SpatialReference{},
		atlases:    map[string]Atlas{},
		canon:      newCanonicalGraph(),
	}
}

func (r *Registry) RegisterEllipsoid(e ellipsoid.Ellipsoid) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ellipsoids[e.Code] = e
}

func (r *Registry) RegisterUnit(u units.MapUnit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mapUnits[u.Code] = u
}

func (r *Registry) RegisterCoordSys(c CoordSys) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coordSys[c.Code] = c
}

func (r *Registry) RegisterDatum(d Datum) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.datums[d.Code] = d
	if d.CanonicalDatumCode != "" && d.CanonicalDatumCode != d.Code {
		r.canon.union(d.Code, d.CanonicalDatumCode)
	}
}

// RegisterDatumShift registers a shift record. A SYNONYM-method shift
// additionally merges its From/To datum codes into the same canonical
// group, per the union-find generalization of the teacher's
// Cartesian.ConvertDatum special-casing.
func (r *Registry) RegisterDatumShift(s datumshift.Shift) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts = append(r.shifts, s)
	if s.Method == datumshift.Synonym {
		r.canon.union(s.From, s.To)
	}
}

func (r *Registry) RegisterSpatialRef(ref SpatialReference) error {
	if err := validateSpatialReference(ref); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spatialRef[ref.Code] = ref
	return nil
}

func (r *Registry) RegisterAtlas(a Atlas) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.atlases[a.ID] = a
}

// CanonicalDatum returns the canonical root code for a datum code.
func (r *Registry) CanonicalDatum(code string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.canon.canonical(code)
}

// Ellipsoid looks up a registered ellipsoid, falling back to the
// global ellipsoid.Get catalog so registries need not re-register the
// well-known ellipsoids.
func (r *Registry) Ellipsoid(code string) (ellipsoid.Ellipsoid, error) {
	r.mu.RLock()
	e, ok := r.ellipsoids[code]
	r.mu.RUnlock()
	if ok {
		return e, nil
	}
	return ellipsoid.Get(code)
}

// Unit looks up a registered unit, falling back to units.Get.
func (r *Registry) Unit(code string) (units.MapUnit, error) {
	r.mu.RLock()
	u, ok := r.mapUnits[code]
	r.mu.RUnlock()
	if ok {
		return u, nil
	}
	return units.Get(code)
}

func (r *Registry) Datum(code string) (Datum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.datums[code]
	if !ok {
		return Datum{}, &UnknownDatumError{Code: code}
	}
	return d, nil
}

// SpatialRefByCode looks up a spatial reference by its registered code.
func (r *Registry) SpatialRefByCode(code string) (SpatialReference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ref, ok := r.spatialRef[code]
	if !ok {
		return SpatialReference{}, &UnknownReferenceError{Code: code}
	}
	return ref, nil
}

// SpatialRef looks up the spatial reference whose coordinate system,
// datum, and units codes match all three arguments.
func (r *Registry) SpatialRef(coordSys, datum, unitsCode string) (SpatialReference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ref := range r.spatialRef {
		if ref.CoordSys.Code == coordSys && ref.Datum.Code == datum && ref.Units.Code == unitsCode {
			return ref, nil
		}
	}
	return SpatialReference{}, &UnknownReferenceError{Code: coordSys + "/" + datum + "/" + unitsCode}
}

// Atlas looks up a registered atlas by ID.
func (r *Registry) Atlas(id string) (Atlas, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.atlases[id]
	return a, ok
}

// selectDatumShift picks the best available shift between two datums'
// canonical codes at a given point, per spec.md §4.4's rank order
// (SYNONYM < MRE < HELMERT < MOLODENSKY < GRID), trying the reverse
// direction (and ReverseShift's bounded iterative solver) when only a
// shift in the opposite direction is registered.
func (r *Registry) selectDatumShift(fromCanonical, toCanonical string, latDeg, lonDeg float64, method string) (datumshift.Shift, bool, error) {
	r.mu.RLock()
	shifts := append([]datumshift.Shift{}, r.shifts...)
	r.mu.RUnlock()

	if fromCanonical == toCanonical {
		return datumshift.Shift{Method: datumshift.Synonym}, false, nil
	}

	if method != "" {
		filtered := make([]datumshift.Shift, 0, len(shifts))
		for _, s := range shifts {
			if strings.EqualFold(s.Method.String(), method) {
				filtered = append(filtered, s)
			}
		}
		shifts = filtered

		if shift, reversed, found := selectShiftIgnoringBounds(shifts, fromCanonical, toCanonical); found {
			return shift, reversed, nil
		}
		return datumshift.Shift{}, false, &NoDatumShiftError{FromCanonical: fromCanonical, ToCanonical: toCanonical, Method: method}
	}

	forward, ok := datumshift.SelectShift(shifts, fromCanonical, toCanonical, latDeg, lonDeg)
	if ok {
		return forward, false, nil
	}

	reverse, ok := datumshift.SelectShift(shifts, toCanonical, fromCanonical, latDeg, lonDeg)
	if ok {
		return reverse, true, nil
	}

	return datumshift.Shift{}, false, &NoDatumShiftError{FromCanonical: fromCanonical, ToCanonical: toCanonical, Method: method}
}

// selectShiftIgnoringBounds is used only for a caller-named single
// method: it must return a matching shift even when the point lies
// outside its bounds, so shiftDatum can report ShiftOutOfBoundsError
// rather than silently falling through to NoDatumShiftError.
func selectShiftIgnoringBounds(shifts []datumshift.Shift, from, to string) (datumshift.Shift, bool, bool) {
	for _, s := range shifts {
		if s.From == from && s.To == to {
			return s, false, true
		}
	}
	for _, s := range shifts {
		if s.From == to && s.To == from {
			return s, true, true
		}
	}
	return datumshift.Shift{}, false, false
}
