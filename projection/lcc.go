package projection

import "math"

// LambertConformalConicForward is the two-standard-parallel Lambert
// Conformal Conic forward transform (spec.md §4.3), grounded on
// samlecuyer/projectron's LCC.init/fwd (its m1/ml1/n/c/rho0 derivation,
// here renamed to Snyder's m(φ1)/t(φ1)/n/F/ρ0 notation per spec.md).
func LambertConformalConicForward(p Params, latDeg, lonDeg float64) (x, y float64, err error) {
	if err := checkDomain("LambertConformalConicForward", latDeg, lonDeg); err != nil {
		return 0, 0, err
	}

	e2 := p.EccentricitySquared
	e := math.Sqrt(e2)
	phi1 := p.Parallel1 * toRadians
	phi2 := p.Parallel2 * toRadians
	phi0 := p.OriginLat * toRadians
	lambda0 := p.OriginLon * toRadians

	m1 := lambertM(e2, phi1)
	t1 := lambertT(e, phi1)

	var n float64
	if math.Abs(phi1-phi2) < 1e-10 {
		n = math.Sin(phi1)
	} else {
		m2 := lambertM(e2, phi2)
		t2 := lambertT(e, phi2)
		n = (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
	}
	F := m1 / (n * math.Pow(t1, n))

	rho := func(phi float64) float64 {
		t := lambertT(e, phi)
		return p.EquatorialAxis * F * math.Pow(t, n)
	}
	rho0 := rho(phi0)

	phi := latDeg * toRadians
	lambda := lonDeg * toRadians
	theta := n * (lambda - lambda0)
	r := rho(phi)

	x = p.OriginX + r*math.Sin(theta)
	y = p.OriginY + rho0 - r*math.Cos(theta)

	// Southern-hemisphere cones: if n < 0, the sign convention flips per
	// spec.md §4.3.
	if n < 0 {
		x = -x
		y = -y
	}

	return x, y, nil
}

// LambertConformalConicInverse is the 2SP Lambert Conformal Conic inverse
// transform, recovering φ from an isometric-latitude series with terms
// through e⁸ (spec.md §4.3).
func LambertConformalConicInverse(p Params, x, y float64) (latDeg, lonDeg float64, err error) {
	e2 := p.EccentricitySquared
	e := math.Sqrt(e2)
	phi1 := p.Parallel1 * toRadians
	phi2 := p.Parallel2 * toRadians
	phi0 := p.OriginLat * toRadians
	lambda0 := p.OriginLon * toRadians

	m1 := lambertM(e2, phi1)
	t1 := lambertT(e, phi1)

	var n float64
	if math.Abs(phi1-phi2) < 1e-10 {
		n = math.Sin(phi1)
	} else {
		m2 := lambertM(e2, phi2)
		t2 := lambertT(e, phi2)
		n = (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
	}
	F := m1 / (n * math.Pow(t1, n))
	rho0 := p.EquatorialAxis * F * math.Pow(lambertT(e, phi0), n)

	dx := x - p.OriginX
	dy := rho0 - (y - p.OriginY)
	if n < 0 {
		dx, dy = -dx, -dy
	}

	rho := math.Hypot(dx, dy)
	if n < 0 {
		rho = -rho
	}
	theta := math.Atan2(dx, dy)
	if n < 0 {
		theta = math.Atan2(-dx, -dy)
	}

	t := math.Pow(rho/(p.EquatorialAxis*F), 1/n)
	chi := math.Pi/2 - 2*math.Atan(t)

	phi := isometricLatitudeSeries(e2, chi)
	lambda := theta/n + lambda0

	return phi * toDegrees, lambda * toDegrees, nil
}

// isometricLatitudeSeries inverts the conformal (isometric) latitude χ
// back to geodetic latitude φ by the standard series with terms through
// e⁸ (Snyder eq 3-5), used by Lambert's inverse.
func isometricLatitudeSeries(e2 float64, chi float64) float64 {
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e4 * e4
	return chi +
		(e2/2+5*e4/24+e6/12+13*e8/360)*math.Sin(2*chi) +
		(7*e4/48+29*e6/240+811*e8/11520)*math.Sin(4*chi) +
		(7*e6/120+81*e8/1120)*math.Sin(6*chi) +
		(4279*e8/161280)*math.Sin(8*chi)
}
