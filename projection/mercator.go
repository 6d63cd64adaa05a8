package projection

import "math"

// MercatorForward is the ellipsoidal Mercator forward transform, grounded
// on samlecuyer/projectron's Mercator.fwd (its k0*lam / -k0*ln(tsfn(...))
// form), generalized to an arbitrary false origin per spec.md §4.3.
func MercatorForward(p Params, latDeg, lonDeg float64) (x, y float64, err error) {
	if err := checkDomain("MercatorForward", latDeg, lonDeg); err != nil {
		return 0, 0, err
	}
	if math.Abs(latDeg) >= 90 {
		return 0, 0, &OutOfDomainError{Op: "MercatorForward", Lat: latDeg, Lon: lonDeg}
	}

	e := p.eccentricity()
	k0 := p.CentralScaleFactor
	if k0 == 0 {
		k0 = 1
	}
	phi := latDeg * toRadians
	lambda := lonDeg * toRadians
	lambda0 := p.OriginLon * toRadians

	ts := lambertT(e, phi)
	x = p.OriginX + p.EquatorialAxis*k0*(lambda-lambda0)
	y = p.OriginY - p.EquatorialAxis*k0*math.Log(ts)

	return x, y, nil
}

// MercatorInverse is the ellipsoidal Mercator inverse transform, grounded
// on projectron's Mercator.inv (its phi2(exp(-y/k0), e) call), reusing
// this package's own phi2 Newton solver.
func MercatorInverse(p Params, x, y float64) (latDeg, lonDeg float64, err error) {
	e := p.eccentricity()
	k0 := p.CentralScaleFactor
	if k0 == 0 {
		k0 = 1
	}
	lambda0 := p.OriginLon * toRadians

	ts := math.Exp(-(y - p.OriginY) / (p.EquatorialAxis * k0))
	phi, err := phi2(e, ts)
	if err != nil {
		return 0, 0, err
	}
	lambda := (x-p.OriginX)/(p.EquatorialAxis*k0) + lambda0

	return phi * toDegrees, lambda * toDegrees, nil
}
