package sref

import "github.com/geoconv/sref/datumshift"

// CoordSysType names the family of coordinate system a CoordSys
// belongs to (spec.md §3).
type CoordSysType int

const (
	World CoordSysType = iota
	Lambert
	TransverseMercator
	Albers
	Mercator
	Stereographic
	Grid
	Atlas
)

// Bounds wraps datumshift.Bounds; a CoordSys with a declared Bounds
// only applies within it (spec.md §3 invariant, generic-grid and
// datum-shift bounds share the same representation).
type Bounds = datumshift.Bounds

// CoordSys is a named coordinate system: a projection/grid family,
// optionally layered on a base coordinate system (generic grids) with
// a template string and cell sizes.
type CoordSys struct {
	Code              string
	Type              CoordSysType
	BaseCoordSys      *CoordSys
	GridTemplate      string
	GridCellSizeEast  float64
	GridCellSizeNorth float64
	Bounds            *Bounds
}
