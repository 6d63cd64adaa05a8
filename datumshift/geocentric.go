// Package datumshift implements the horizontal datum-shift kernel:
// Molodensky, Helmert 7-parameter, and Multiple Regression Equation
// transforms between reference ellipsoids, plus the bounded reverse-shift
// solver used when only the opposite direction is tabulated.
package datumshift

import (
	"fmt"
	"math"
)

const (
	toRadians = math.Pi / 180.0
	toDegrees = 180.0 / math.Pi
)

// Geocentric is an ECEF (earth-centered, earth-fixed) coordinate, in
// metres.
type Geocentric struct {
	X, Y, Z float64
}

// NonConvergentError signals that the reverse-shift solver failed to
// settle within its iteration cap. FromGeocentric is closed form and
// never returns it.
type NonConvergentError struct {
	Method string
}

func (e *NonConvergentError) Error() string {
	return fmt.Sprintf("datumshift: %s did not converge", e.Method)
}

// ToGeocentric converts geodetic (φ, λ, h) on the given ellipsoid to ECEF
// X/Y/Z, grounded verbatim on the teacher's
// LatLonEllipsoidalDatum.ToCartesian (ν = a/√(1−e²sin²φ) prime-vertical
// radius of curvature).
func ToGeocentric(a, e2, latDeg, lonDeg, height float64) Geocentric {
	phi := latDeg * toRadians
	lambda := lonDeg * toRadians

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	sinLambda := math.Sin(lambda)
	cosLambda := math.Cos(lambda)

	nu := a / math.Sqrt(1-e2*sinPhi*sinPhi)

	return Geocentric{
		X: (nu + height) * cosPhi * cosLambda,
		Y: (nu + height) * cosPhi * sinLambda,
		Z: (nu*(1-e2) + height) * sinPhi,
	}
}

// FromGeocentric converts ECEF X/Y/Z back to geodetic (φ, λ, h) on the
// given ellipsoid, grounded verbatim on the teacher's
// Cartesian.ToLatLon — Bowring's (1985) closed-form iteration-free
// formulation, accurate to micrometres.
func FromGeocentric(a, e2, b float64, g Geocentric) (latDeg, lonDeg, height float64) {
	x, y, z := g.X, g.Y, g.Z

	eps2 := e2 / (1 - e2)
	p := math.Hypot(x, y)
	r := math.Hypot(p, z)

	tanBeta := (b * z) / (a * p) * (1 + eps2*b/r)
	sinBeta := tanBeta / math.Sqrt(1+tanBeta*tanBeta)
	cosBeta := 0.0
	if tanBeta != 0 {
		cosBeta = sinBeta / tanBeta
	}

	phi := 0.0
	if !math.IsNaN(cosBeta) {
		phi = math.Atan2(z+eps2*b*sinBeta*sinBeta*sinBeta, p-e2*a*cosBeta*cosBeta*cosBeta)
	}
	lambda := math.Atan2(y, x)

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	nu := a / math.Sqrt(1-e2*sinPhi*sinPhi)
	h := p*cosPhi + z*sinPhi - a*a/nu

	return phi * toDegrees, lambda * toDegrees, h
}
