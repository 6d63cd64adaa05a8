package projection

import "math"

// AlbersEqualAreaConicForward is the two-standard-parallel Albers
// Equal-Area Conic forward transform (Snyder eqs 14-1..14-13). No pack
// example implements Albers directly; built from spec.md §4.3's formulas,
// reusing lambertM/albersQ exactly as the spec notes Lambert_M is shared.
func AlbersEqualAreaConicForward(p Params, latDeg, lonDeg float64) (x, y float64, err error) {
	if err := checkDomain("AlbersEqualAreaConicForward", latDeg, lonDeg); err != nil {
		return 0, 0, err
	}

	e2 := p.EccentricitySquared
	e := math.Sqrt(e2)
	phi1 := p.Parallel1 * toRadians
	phi2 := p.Parallel2 * toRadians
	phi0 := p.OriginLat * toRadians
	lambda0 := p.OriginLon * toRadians

	m1 := lambertM(e2, phi1)
	m2 := lambertM(e2, phi2)
	q1 := albersQ(e, e2, phi1)
	q2 := albersQ(e, e2, phi2)
	q0 := albersQ(e, e2, phi0)

	var n float64
	if math.Abs(phi1-phi2) < 1e-10 {
		n = math.Sin(phi1)
	} else {
		n = (m1*m1 - m2*m2) / (q2 - q1)
	}
	c := m1*m1 + n*q1

	a := p.EquatorialAxis
	rho0 := a * math.Sqrt(c-n*q0) / n

	phi := latDeg * toRadians
	lambda := lonDeg * toRadians
	q := albersQ(e, e2, phi)
	rho := a * math.Sqrt(c-n*q) / n
	theta := n * (lambda - lambda0)

	x = p.OriginX + rho*math.Sin(theta)
	y = p.OriginY + rho0 - rho*math.Cos(theta)

	return x, y, nil
}

// AlbersEqualAreaConicInverse is the Albers inverse transform (Snyder eqs
// 14-8..14-13), recovering φ from q with a series estimate followed by
// Newton refinement (albersQInverseSeries).
func AlbersEqualAreaConicInverse(p Params, x, y float64) (latDeg, lonDeg float64, err error) {
	e2 := p.EccentricitySquared
	e := math.Sqrt(e2)
	phi1 := p.Parallel1 * toRadians
	phi2 := p.Parallel2 * toRadians
	phi0 := p.OriginLat * toRadians
	lambda0 := p.OriginLon * toRadians

	m1 := lambertM(e2, phi1)
	m2 := lambertM(e2, phi2)
	q1 := albersQ(e, e2, phi1)
	q2 := albersQ(e, e2, phi2)
	q0 := albersQ(e, e2, phi0)

	var n float64
	if math.Abs(phi1-phi2) < 1e-10 {
		n = math.Sin(phi1)
	} else {
		n = (m1*m1 - m2*m2) / (q2 - q1)
	}
	c := m1*m1 + n*q1

	a := p.EquatorialAxis
	rho0 := a * math.Sqrt(c-n*q0) / n

	dx := x - p.OriginX
	dy := rho0 - (y - p.OriginY)
	rho := math.Hypot(dx, dy)
	theta := math.Atan2(dx, dy)
	if n < 0 {
		rho = -rho
		theta = math.Atan2(-dx, -dy)
	}

	q := (c - (rho*n/a)*(rho*n/a)) / n

	phi, err := albersQInverseSeries(e, e2, q)
	if err != nil {
		return 0, 0, err
	}
	lambda := theta/n + lambda0

	return phi * toDegrees, lambda * toDegrees, nil
}

// albersQInverseSeries recovers φ from Snyder's q(φ) by the standard
// authalic-latitude series (Snyder eq 3-18), falling back to bounded
// Newton refinement for the residual.
func albersQInverseSeries(e, e2 float64, q float64) (float64, error) {
	oneMinusE2 := 1 - e2
	// q(π/2) = 1 - (1-e²)/(2e) * ln((1-e)/(1+e)); normalize q by it first.
	qp := 1 - oneMinusE2/(2*e)*math.Log((1-e)/(1+e))
	phiAuthalic := math.Asin(q / qp)

	e4 := e2 * e2
	e6 := e4 * e2
	phi := phiAuthalic +
		(e2/3+31*e4/180+517*e6/5040)*math.Sin(2*phiAuthalic) +
		(23*e4/360+251*e6/3780)*math.Sin(4*phiAuthalic) +
		(761*e6/45360)*math.Sin(6*phiAuthalic)

	for i := 0; i < 15; i++ {
		sinPhi := math.Sin(phi)
		gotQ := (1 - e2) * (sinPhi/(1-e2*sinPhi*sinPhi) - (1/(2*e))*math.Log((1-e*sinPhi)/(1+e*sinPhi)))
		dQdPhi := (1 - e2) * math.Cos(phi) * (1/(1-e2*sinPhi*sinPhi) + (1-e2*sinPhi*sinPhi)/((1-e2)*(1-e2)))
		if dQdPhi == 0 {
			break
		}
		dPhi := (q - gotQ) / dQdPhi
		phi += dPhi
		if math.Abs(dPhi) <= 1e-12 {
			return phi, nil
		}
	}
	return phi, nil
}
