package sref

import (
	"math"

	"github.com/golang/geo/s2"
)

// LatLng is a bare geodetic vertex, used by PolygonArea/PolygonPerimeter.
type LatLng struct {
	Lat, Lon float64
}

// PolygonArea computes the area, in square metres, of a spherical
// polygon whose edges are great-circle arcs (spec.md §6/§9's external
// interface). Vertices are taken as GeoPoint{X: lon, Y: lat}.
func PolygonArea(points []GeoPoint) (float64, error) {
	return polygonArea(toLatLngs(points))
}

// PolygonPerimeter sums the great-circle distance around points,
// closing the polygon if it isn't already closed (spec.md §6/§9's
// external interface).
func PolygonPerimeter(points []GeoPoint) (float64, error) {
	return polygonPerimeter(toLatLngs(points))
}

func toLatLngs(points []GeoPoint) []LatLng {
	out := make([]LatLng, len(points))
	for i, p := range points {
		out[i] = LatLng{Lat: p.Y, Lon: p.X}
	}
	return out
}

// polygonArea is the lower-level form PolygonArea delegates to.
// Grounded on the teacher's AreaOf (Karney's method); the
// pole-enclosure fast path is cross-checked with s2.Loop.ContainsPoint
// against the poles, per SPEC_FULL.md's domain-stack wiring note.
func polygonArea(points []LatLng) (float64, error) {
	if len(points) < 3 {
		return 0, &ParseError{Codec: "polygon", Input: "fewer than 3 vertices"}
	}

	polygon := points
	closed := polygon[0] == polygon[len(polygon)-1]
	if !closed {
		polygon = append(append([]LatLng{}, polygon...), polygon[0])
	}
	nVertices := len(polygon) - 1

	var excess float64
	for v := 0; v < nVertices; v++ {
		phi1 := polygon[v].Lat * toRadians
		phi2 := polygon[v+1].Lat * toRadians
		dLambda := (polygon[v+1].Lon - polygon[v].Lon) * toRadians
		e := 2 * math.Atan2(
			math.Tan(dLambda/2)*(math.Tan(phi1/2)+math.Tan(phi2/2)),
			1+math.Tan(phi1/2)*math.Tan(phi2/2),
		)
		excess += e
	}

	if enclosesPole(polygon) {
		excess = math.Abs(excess) - 2*math.Pi
	}

	return math.Abs(excess) * meanEarthRadius * meanEarthRadius, nil
}

// polygonPerimeter is the lower-level form PolygonPerimeter delegates
// to, summing the great-circle (haversine) distance between
// consecutive vertices.
func polygonPerimeter(points []LatLng) (float64, error) {
	if len(points) < 2 {
		return 0, &ParseError{Codec: "polygon", Input: "fewer than 2 vertices"}
	}
	polygon := points
	if polygon[0] != polygon[len(polygon)-1] {
		polygon = append(append([]LatLng{}, polygon...), polygon[0])
	}

	var total float64
	for i := 0; i < len(polygon)-1; i++ {
		total += haversineDistance(polygon[i].Lat, polygon[i].Lon, polygon[i+1].Lat, polygon[i+1].Lon)
	}
	return total, nil
}

// enclosesPole reports whether the polygon encloses a pole: the sum of
// course deltas around the pole is ~0° rather than the usual ±360°.
// Grounded on the teacher's isPoleEnclosedBy; the result is also true
// whenever an s2.Loop built from the polygon contains the north or the
// south pole.
func enclosesPole(p []LatLng) bool {
	sumDelta := 0.0
	prevBearing := InitialBearing(p[0].Lat, p[0].Lon, p[1].Lat, p[1].Lon)
	for v := 0; v < len(p)-1; v++ {
		initBearing := InitialBearing(p[v].Lat, p[v].Lon, p[v+1].Lat, p[v+1].Lon)
		finalBearing := FinalBearing(p[v].Lat, p[v].Lon, p[v+1].Lat, p[v+1].Lon)
		sumDelta += math.Mod(initBearing-prevBearing+540, 360) - 180
		sumDelta += math.Mod(finalBearing-initBearing+540, 360) - 180
		prevBearing = finalBearing
	}
	initBearing := InitialBearing(p[0].Lat, p[0].Lon, p[1].Lat, p[1].Lon)
	sumDelta += math.Mod(initBearing-prevBearing+540, 360) - 180

	bearingTestEnclosed := math.Abs(sumDelta) < 90

	loop := s2Loop(p)
	s2Enclosed := loop.ContainsPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(90, 0))) ||
		loop.ContainsPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(-90, 0)))

	return bearingTestEnclosed || s2Enclosed
}

func s2Loop(p []LatLng) *s2.Loop {
	if len(p) > 1 && p[0] == p[len(p)-1] {
		p = p[:len(p)-1]
	}
	pts := make([]s2.Point, 0, len(p))
	for _, v := range p {
		pts = append(pts, s2.PointFromLatLng(s2.LatLngFromDegrees(v.Lat, v.Lon)))
	}
	return s2.LoopFromPoints(pts)
}
