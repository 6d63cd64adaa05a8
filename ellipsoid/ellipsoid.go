// Package ellipsoid provides the named reference-ellipsoid catalog used
// throughout the conversion engine: equatorial axis, first eccentricity,
// and inverse flattening for each ellipsoid the registry can bind a datum
// to.
//
// The table is grounded on the ellipsoid map in the teacher geodesy
// library (chrisveness geodesy via paulcager/osgridref), generalized from
// a pair-of-axes (a, b) representation to the (a, e²) representation the
// projection kernel consumes directly, and extended with the literal e²
// constants spec'd for Clarke 1866, GRS80, WGS84 and Airy 1830 so that
// values quoted against a legacy reference implementation match bit for
// bit rather than being re-derived from (a, f) at call time.
package ellipsoid

import (
	"fmt"
	"math"
)

// Ellipsoid is an immutable biaxial reference figure.
type Ellipsoid struct {
	Code                string
	EquatorialAxis      float64 // a, metres
	Eccentricity        float64 // e
	EccentricitySquared float64 // e²
	InverseFlattening   float64 // 1/f
}

// PolarAxis returns b = a*sqrt(1-e²).
func (e Ellipsoid) PolarAxis() float64 {
	return e.EquatorialAxis * math.Sqrt(1-e.EccentricitySquared)
}

func fromInverseFlattening(invF float64) (e2 float64) {
	f := 1 / invF
	return 2*f - f*f
}

func newFromInvF(code string, a, invF float64) Ellipsoid {
	return Ellipsoid{
		Code:                code,
		EquatorialAxis:      a,
		EccentricitySquared: fromInverseFlattening(invF),
		Eccentricity:        math.Sqrt(fromInverseFlattening(invF)),
		InverseFlattening:   invF,
	}
}

// Well-known codes.
const (
	Clarke1866    = "Clarke1866"
	Clarke1880IGN = "Clarke1880IGN"
	GRS80         = "GRS80"
	WGS84         = "WGS84"
	WGS72         = "WGS72"
	Airy1830      = "Airy1830"
	Airy1849      = "Airy1849" // a.k.a. "Airy Modified", used by the Irish Grid
	Bessel1841    = "Bessel1841"
	Intl1924      = "Intl1924"
)

var catalog = buildCatalog()

func buildCatalog() map[string]Ellipsoid {
	m := map[string]Ellipsoid{
		// Literal (a, e²) pairs preserved bit-exactly against the legacy
		// reference implementation (spec numeric boundary constants).
		Clarke1866: {
			Code:                Clarke1866,
			EquatorialAxis:      6378206.4,
			EccentricitySquared: 0.006768658,
			InverseFlattening:   294.978698214,
		},
		GRS80: {
			Code:                GRS80,
			EquatorialAxis:      6378137.0,
			EccentricitySquared: 0.00669438,
			InverseFlattening:   298.257222101,
		},
		WGS84: {
			Code:                WGS84,
			EquatorialAxis:      6378137.0,
			EccentricitySquared: 0.00669437999014,
			InverseFlattening:   298.257223563,
		},
		Airy1830: {
			Code:                Airy1830,
			EquatorialAxis:      6377563.396,
			EccentricitySquared: 0.006670540074149084,
			InverseFlattening:   299.3249646,
		},
		// Derived from (a, 1/f) as the teacher's table stores them; not
		// named with literal e² constants in spec.md, so computed here.
		Airy1849:      newFromInvF(Airy1849, 6377340.189, 299.3249646),
		Bessel1841:    newFromInvF(Bessel1841, 6377397.155, 299.1528128),
		Intl1924:      newFromInvF(Intl1924, 6378388, 297),
		Clarke1880IGN: newFromInvF(Clarke1880IGN, 6378249.2, 293.466021294),
		WGS72:         newFromInvF(WGS72, 6378135, 298.26),
	}
	for code, e := range m {
		e.Eccentricity = math.Sqrt(e.EccentricitySquared)
		m[code] = e
	}
	return m
}

// Get looks up an ellipsoid by code.
func Get(code string) (Ellipsoid, error) {
	e, ok := catalog[code]
	if !ok {
		return Ellipsoid{}, fmt.Errorf("ellipsoid: unknown code %q", code)
	}
	return e, nil
}

// Register idempotently upserts an ellipsoid, for callers extending the
// catalog (e.g. the config package's YAML-loaded bundles).
func Register(e Ellipsoid) {
	catalog[e.Code] = e
}

// Codes returns all registered ellipsoid codes, for diagnostics/tests.
func Codes() []string {
	codes := make([]string, 0, len(catalog))
	for c := range catalog {
		codes = append(codes, c)
	}
	return codes
}
