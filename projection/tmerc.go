package projection

import "math"

// TransverseMercatorForward converts geographic coordinates to Transverse
// Mercator easting/northing, generalized from the teacher's
// OSGB-hardcoded ToOsGridRef into an arbitrary ellipsoid/origin/k0 per
// spec.md §4.3 (Snyder eqs 8-1..8-9 in the teacher's own "I..VI" series
// naming convention, which this keeps).
func TransverseMercatorForward(p Params, latDeg, lonDeg float64) (x, y float64, err error) {
	if err := checkDomain("TransverseMercatorForward", latDeg, lonDeg); err != nil {
		return 0, 0, err
	}

	a := p.EquatorialAxis
	e2 := p.EccentricitySquared
	f0 := p.CentralScaleFactor
	lambda0 := p.OriginLon * toRadians

	phi := latDeg * toRadians
	lambda := lonDeg * toRadians

	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)
	nu := a * f0 / math.Sqrt(1-e2*sinPhi*sinPhi)
	rho := a * f0 * (1 - e2) / math.Pow(1-e2*sinPhi*sinPhi, 1.5)
	eta2 := nu/rho - 1

	// meridional arc, scaled by f0 exactly as the teacher's `b*F0*(...)`.
	M := p.meridianArc(phi) * f0

	cos3Phi := cosPhi * cosPhi * cosPhi
	cos5Phi := cos3Phi * cosPhi * cosPhi
	tanPhi := math.Tan(phi)
	tan2Phi := tanPhi * tanPhi
	tan4Phi := tan2Phi * tan2Phi

	I := M + p.OriginY
	II := (nu / 2) * sinPhi * cosPhi
	III := (nu / 24) * sinPhi * cos3Phi * (5 - tan2Phi + 9*eta2)
	IIIA := (nu / 720) * sinPhi * cos5Phi * (61 - 58*tan2Phi + tan4Phi)
	IV := nu * cosPhi
	V := (nu / 6) * cos3Phi * (nu/rho - tan2Phi)
	VI := (nu / 120) * cos5Phi * (5 - 18*tan2Phi + tan4Phi + 14*eta2 - 58*tan2Phi*eta2)

	dLambda := lambda - lambda0
	dLambda2 := dLambda * dLambda
	dLambda3 := dLambda2 * dLambda
	dLambda4 := dLambda3 * dLambda
	dLambda5 := dLambda4 * dLambda
	dLambda6 := dLambda5 * dLambda

	N := I + II*dLambda2 + III*dLambda4 + IIIA*dLambda6
	E := p.OriginX + IV*dLambda + V*dLambda3 + VI*dLambda5

	return E, N, nil
}

// TransverseMercatorInverse converts Transverse Mercator easting/northing
// back to geographic coordinates, generalized from the teacher's
// ToLatLon (its Newton iteration on the meridional arc plus the
// footprint-latitude VII..XIIA series).
func TransverseMercatorInverse(p Params, x, y float64) (latDeg, lonDeg float64, err error) {
	a := p.EquatorialAxis
	e2 := p.EccentricitySquared
	f0 := p.CentralScaleFactor
	phi0 := p.OriginLat * toRadians
	lambda0 := p.OriginLon * toRadians

	phi := phi0
	M := 0.0
	converged := false
	for i := 0; i < 100; i++ {
		phi = (y-p.OriginY-M)/(a*f0) + phi
		M = p.meridianArc(phi) * f0

		if math.Abs(y-p.OriginY-M) < 0.00001 {
			converged = true
			break
		}
	}
	if !converged {
		return 0, 0, &NonConvergentError{Op: "TransverseMercatorInverse"}
	}

	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)
	nu := a * f0 / math.Sqrt(1-e2*sinPhi*sinPhi)
	rho := a * f0 * (1 - e2) / math.Pow(1-e2*sinPhi*sinPhi, 1.5)
	eta2 := nu/rho - 1

	tanPhi := math.Tan(phi)
	tan2Phi := tanPhi * tanPhi
	tan4Phi := tan2Phi * tan2Phi
	tan6Phi := tan4Phi * tan2Phi
	secPhi := 1 / cosPhi
	nu3 := nu * nu * nu
	nu5 := nu3 * nu * nu
	nu7 := nu5 * nu * nu

	VII := tanPhi / (2 * rho * nu)
	VIII := tanPhi / (24 * rho * nu3) * (5 + 3*tan2Phi + eta2 - 9*tan2Phi*eta2)
	IX := tanPhi / (720 * rho * nu5) * (61 + 90*tan2Phi + 45*tan4Phi)
	X := secPhi / nu
	XI := secPhi / (6 * nu3) * (nu/rho + 2*tan2Phi)
	XII := secPhi / (120 * nu5) * (5 + 28*tan2Phi + 24*tan4Phi)
	XIIA := secPhi / (5040 * nu7) * (61 + 662*tan2Phi + 1320*tan4Phi + 720*tan6Phi)

	dE := x - p.OriginX
	dE2 := dE * dE
	dE3 := dE2 * dE
	dE4 := dE2 * dE2
	dE5 := dE3 * dE2
	dE6 := dE4 * dE2
	dE7 := dE5 * dE2

	phi = phi - VII*dE2 + VIII*dE4 - IX*dE6
	lambda := lambda0 + X*dE - XI*dE3 + XII*dE5 - XIIA*dE7

	return phi * toDegrees, lambda * toDegrees, nil
}
