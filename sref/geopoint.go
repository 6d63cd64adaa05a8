package sref

// GeoPoint is a mutable coordinate pair threaded through Convert. X/Y
// hold whatever representation the current SpatialReference implies —
// decimal degrees for WORLD, projected easting/northing for a
// Cartesian CoordSys, or are ignored in favor of GridToken for a Grid
// CoordSys (spec.md §3/§9).
type GeoPoint struct {
	X, Y         float64
	GridToken    string
	UTMZoneStyle string // "Letter" | "Hemisphere"
}

// NewGeoPoint constructs a GeoPoint from a raw (x, y) pair.
func NewGeoPoint(x, y float64) *GeoPoint {
	return &GeoPoint{X: x, Y: y}
}
