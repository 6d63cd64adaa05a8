// Package projection implements the pure forward/inverse map-projection
// kernel: Transverse Mercator, Lambert Conformal Conic (2SP), Albers
// Equal-Area Conic (2SP), Mercator, and Oblique/Polar Stereographic.
//
// Every transform is a pure function of its Params and input value, per
// spec.md §4.3's contract. None of them touch a registry, a datum, or a
// grid codec — those are composed on top in package sref/grid.
package projection

import (
	"fmt"
	"math"
)

// Params bundles the ellipsoid and the projection-specific parameters a
// SpatialReference supplies (spec.md §3).
type Params struct {
	EquatorialAxis      float64 // a, in the output linear unit
	EccentricitySquared float64 // e²

	OriginLat, OriginLon float64 // degrees
	Parallel1, Parallel2 float64 // degrees (Lambert, Albers)
	OriginX, OriginY     float64 // false easting/northing, output unit
	CentralScaleFactor   float64 // k0 (TM, Mercator, Stereographic); ignored by LCC/Albers
}

// OutOfDomainError signals a forward call outside the valid geographic
// domain, or an inverse call whose result cannot be expressed.
type OutOfDomainError struct {
	Op       string
	Lat, Lon float64
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("projection: %s: point (lat=%g, lon=%g) out of domain", e.Op, e.Lat, e.Lon)
}

// NonConvergentError signals a series inversion that failed to settle.
type NonConvergentError struct {
	Op string
}

func (e *NonConvergentError) Error() string {
	return fmt.Sprintf("projection: %s did not converge", e.Op)
}

const (
	toRadians = math.Pi / 180.0
	toDegrees = 180.0 / math.Pi
)

func checkDomain(op string, latDeg, lonDeg float64) error {
	if math.Abs(latDeg) > 90 || math.Abs(lonDeg) > 180 {
		return &OutOfDomainError{Op: op, Lat: latDeg, Lon: lonDeg}
	}
	return nil
}

// eccentricity returns e from e².
func (p Params) eccentricity() float64 { return math.Sqrt(p.EccentricitySquared) }

// n returns (a-b)/(a+b) used by the meridional-arc series, with b derived
// from (a, e²).
func (p Params) n() float64 {
	b := p.EquatorialAxis * math.Sqrt(1-p.EccentricitySquared)
	return (p.EquatorialAxis - b) / (p.EquatorialAxis + b)
}

// meridianArc computes M(φ), the meridional distance from the equator to
// latitude φ (radians), generalized from the teacher's OSGB-specific
// inlined series (ToOsGridRef's Ma/Mb/Mc/Md terms) to an arbitrary
// ellipsoid's n, n², n³, following spec.md §4.3's exact series form.
func (p Params) meridianArc(phi float64) float64 {
	n := p.n()
	n2 := n * n
	n3 := n2 * n
	b := p.EquatorialAxis * math.Sqrt(1-p.EccentricitySquared)
	phi0 := p.OriginLat * toRadians

	ma := (1 + n + 1.25*n2 + 1.25*n3) * (phi - phi0)
	mb := (3*n + 3*n2 + 2.625*n3) * math.Sin(phi-phi0) * math.Cos(phi+phi0)
	mc := (1.875*n2 + 1.875*n3) * math.Sin(2*(phi-phi0)) * math.Cos(2*(phi+phi0))
	md := (35.0 / 24.0) * n3 * math.Sin(3*(phi-phi0)) * math.Cos(3*(phi+phi0))
	return b * (ma - mb + mc - md)
}

// meridianArcFromEquator is M(φ) measured from the true equator (φ0=0),
// independent of any particular projection's origin latitude. Within
// this module only MeridianArc calls it.
func meridianArcFromEquator(a, e2, phi float64) float64 {
	e4 := e2 * e2
	e6 := e4 * e2
	return a * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))
}

// MeridianArc exports meridianArcFromEquator for callers outside this
// package that need M(φ) from the true equator; in this module only the
// projection tests call it.
func MeridianArc(a, e2, phiRadians float64) float64 {
	return meridianArcFromEquator(a, e2, phiRadians)
}

// lambertM is Snyder's m(φ) = cosφ / sqrt(1 - e²sin²φ), shared verbatim
// between Lambert and Albers per spec.md §9's explicit note that
// Lambert_M is reused for Albers: lcc.go and albers.go both call this
// one helper.
func lambertM(e2, phi float64) float64 {
	sinPhi := math.Sin(phi)
	return math.Cos(phi) / math.Sqrt(1-e2*sinPhi*sinPhi)
}

// lambertT is Snyder's t(φ), the isometric-colatitude-like auxiliary
// quantity used by Lambert and by the Mercator and polar stereographic
// forward transforms.
func lambertT(e, phi float64) float64 {
	sinPhi := math.Sin(phi)
	return math.Tan(math.Pi/4-phi/2) / math.Pow((1-e*sinPhi)/(1+e*sinPhi), e/2)
}

// albersQ is Snyder's q(φ) for the Albers Equal-Area projection.
func albersQ(e, e2, phi float64) float64 {
	sinPhi := math.Sin(phi)
	return (1 - e2) * (sinPhi/(1-e2*sinPhi*sinPhi) - (1/(2*e))*math.Log((1-e*sinPhi)/(1+e*sinPhi)))
}

// phi2 recovers the geodetic latitude φ from t by Newton iteration,
// shared by the Mercator and polar stereographic inverses. Grounded
// on samlecuyer/projectron's phi2 (itself a port of PROJ.4's pj_phi2).
func phi2(e, ts float64) (float64, error) {
	eccnth := 0.5 * e
	phi := math.Pi/2 - 2*math.Atan(ts)
	for i := 0; i < 15; i++ {
		con := e * math.Sin(phi)
		dphi := math.Pi/2 - 2*math.Atan(ts*math.Pow((1-con)/(1+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= 1e-10 {
			return phi, nil
		}
	}
	return 0, &NonConvergentError{Op: "phi2"}
}
