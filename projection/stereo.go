package projection

import "math"

// PolarStereographicForward is the ellipsoidal polar stereographic
// forward transform (Snyder eqs 21-30..21-32 / DMA TM 8358.2), selecting
// the north or south pole aspect from the sign of p.OriginLat. No pack
// example implements this projection; built directly from spec.md §4.3's
// description, reusing this package's own phi2 solver for the inverse.
func PolarStereographicForward(p Params, latDeg, lonDeg float64) (x, y float64, err error) {
	if err := checkDomain("PolarStereographicForward", latDeg, lonDeg); err != nil {
		return 0, 0, err
	}

	northPole := p.OriginLat >= 0
	e := p.eccentricity()
	k0 := p.CentralScaleFactor
	if k0 == 0 {
		k0 = 1
	}
	lambda0 := p.OriginLon * toRadians

	phi := latDeg * toRadians
	lambda := lonDeg * toRadians
	if !northPole {
		phi = -phi
		lambda = -lambda
	}
	if phi >= math.Pi/2 {
		return 0, 0, &OutOfDomainError{Op: "PolarStereographicForward", Lat: latDeg, Lon: lonDeg}
	}

	t := lambertT(e, phi)
	mc := math.Sqrt(math.Pow(1+e, 1+e) * math.Pow(1-e, 1-e))
	rho := 2 * p.EquatorialAxis * k0 * t / mc

	dx := rho * math.Sin(lambda-lambda0)
	dy := -rho * math.Cos(lambda-lambda0)
	if !northPole {
		dy = -dy
	}

	return p.OriginX + dx, p.OriginY + dy, nil
}

// PolarStereographicInverse is the matching inverse, via this package's
// phi2 Newton solver on ρ/(2·a·k0/mc).
func PolarStereographicInverse(p Params, x, y float64) (latDeg, lonDeg float64, err error) {
	northPole := p.OriginLat >= 0
	e := p.eccentricity()
	k0 := p.CentralScaleFactor
	if k0 == 0 {
		k0 = 1
	}
	lambda0 := p.OriginLon * toRadians

	dx := x - p.OriginX
	dy := y - p.OriginY
	if !northPole {
		dy = -dy
	}
	rho := math.Hypot(dx, dy)

	mc := math.Sqrt(math.Pow(1+e, 1+e) * math.Pow(1-e, 1-e))
	ts := rho * mc / (2 * p.EquatorialAxis * k0)

	phi, err := phi2(e, ts)
	if err != nil {
		return 0, 0, err
	}
	lambda := lambda0 + math.Atan2(dx, -dy)

	if !northPole {
		phi = -phi
		lambda = -lambda
	}

	return phi * toDegrees, lambda * toDegrees, nil
}

// ObliqueStereographicForward is the conformal oblique stereographic
// forward transform (Snyder eqs 21-4..21-9, the "double" conformal-sphere
// projection), built from spec.md §4.3: project the ellipsoid to a
// conformal sphere first, then apply spherical stereographic formulas.
func ObliqueStereographicForward(p Params, latDeg, lonDeg float64) (x, y float64, err error) {
	if err := checkDomain("ObliqueStereographicForward", latDeg, lonDeg); err != nil {
		return 0, 0, err
	}

	e2 := p.EccentricitySquared
	a := p.EquatorialAxis
	k0 := p.CentralScaleFactor
	if k0 == 0 {
		k0 = 1
	}
	phi0 := p.OriginLat * toRadians
	lambda0 := p.OriginLon * toRadians

	rho0 := a / math.Sqrt(1-e2*math.Sin(phi0)*math.Sin(phi0))
	n := math.Sqrt(1 + e2*math.Pow(math.Cos(phi0), 4)/(1-e2))
	c := (n - math.Sin(phi0)) * math.Tan(math.Pi/4-phi0/2) / math.Pow((1-math.Sqrt(e2)*math.Sin(phi0))/(1+math.Sqrt(e2)*math.Sin(phi0)), math.Sqrt(e2)/2)

	chi0 := 2*math.Atan(c*math.Pow(math.Tan(math.Pi/4+phi0/2), n)) - math.Pi/2
	k1 := rho0 * math.Cos(phi0) / math.Cos(chi0) / math.Sqrt(1-e2*math.Sin(phi0)*math.Sin(phi0))

	phi := latDeg * toRadians
	lambda := lonDeg * toRadians

	e := math.Sqrt(e2)
	w := math.Pow((1-e*math.Sin(phi))/(1+e*math.Sin(phi)), e/2)
	chi := 2*math.Atan(c*math.Pow(math.Tan(math.Pi/4+phi/2), n)*w) - math.Pi/2
	lambdaConf := n*(lambda-lambda0) + lambda0

	b := 1 + math.Sin(chi)*math.Sin(chi0) + math.Cos(chi)*math.Cos(chi0)*math.Cos(lambdaConf-lambda0)
	kFactor := 2 * k0 * k1 / b

	x = p.OriginX + kFactor*math.Cos(chi)*math.Sin(lambdaConf-lambda0)
	y = p.OriginY + kFactor*(math.Cos(chi0)*math.Sin(chi)-math.Sin(chi0)*math.Cos(chi)*math.Cos(lambdaConf-lambda0))

	return x, y, nil
}

// ObliqueStereographicInverse undoes the conformal-sphere mapping: solve
// the spherical stereographic inverse for (chi, lambdaConf), then recover
// geodetic φ from the conformal latitude χ by Newton iteration.
func ObliqueStereographicInverse(p Params, x, y float64) (latDeg, lonDeg float64, err error) {
	e2 := p.EccentricitySquared
	a := p.EquatorialAxis
	k0 := p.CentralScaleFactor
	if k0 == 0 {
		k0 = 1
	}
	phi0 := p.OriginLat * toRadians
	lambda0 := p.OriginLon * toRadians
	e := math.Sqrt(e2)

	rho0 := a / math.Sqrt(1-e2*math.Sin(phi0)*math.Sin(phi0))
	n := math.Sqrt(1 + e2*math.Pow(math.Cos(phi0), 4)/(1-e2))
	c := (n - math.Sin(phi0)) * math.Tan(math.Pi/4-phi0/2) / math.Pow((1-e*math.Sin(phi0))/(1+e*math.Sin(phi0)), e/2)
	chi0 := 2*math.Atan(c*math.Pow(math.Tan(math.Pi/4+phi0/2), n)) - math.Pi/2
	k1 := rho0 * math.Cos(phi0) / math.Cos(chi0) / math.Sqrt(1-e2*math.Sin(phi0)*math.Sin(phi0))

	dx := x - p.OriginX
	dy := y - p.OriginY
	rho := math.Hypot(dx, dy)

	var chi, lambdaConf float64
	if rho < 1e-12 {
		chi = chi0
		lambdaConf = lambda0
	} else {
		c2 := 2 * math.Atan(rho/(2*k0*k1))
		chi = math.Asin(math.Cos(c2)*math.Sin(chi0) + dy*math.Sin(c2)*math.Cos(chi0)/rho)
		lambdaConf = lambda0 + math.Atan2(dx*math.Sin(c2), rho*math.Cos(chi0)*math.Cos(c2)-dy*math.Sin(chi0)*math.Sin(c2))
	}
	lambda := (lambdaConf-lambda0)/n + lambda0

	phi := chi
	for i := 0; i < 15; i++ {
		w := math.Pow((1-e*math.Sin(phi))/(1+e*math.Sin(phi)), e/2)
		chiCandidate := 2*math.Atan(c*math.Pow(math.Tan(math.Pi/4+phi/2), n)*w) - math.Pi/2
		diff := chi - chiCandidate
		phi += diff
		if math.Abs(diff) <= 1e-12 {
			return phi * toDegrees, lambda * toDegrees, nil
		}
	}
	return 0, 0, &NonConvergentError{Op: "ObliqueStereographicInverse"}
}
