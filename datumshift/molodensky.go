package datumshift

import "math"

// MolodenskyParams is the abridged Molodensky 3-parameter shift: ECEF
// translations plus the two ellipsoids' axis/flattening differences
// (DMA TR8350.2 §7.4, per spec.md §4.4). The (Δx,Δy,Δz)-only shape
// mirrors the towgs84=dx,dy,dz entries in projectron's datum table.
type MolodenskyParams struct {
	ShiftX, ShiftY, ShiftZ float64 // metres
}

// MolodenskyTransform applies the abridged 3-parameter Molodensky shift
// to a geodetic point and returns the shifted (lat, lon) in degrees;
// height (0 if the caller has none, per spec.md §4.4) only enters the
// radius-of-curvature denominators and is not returned.
func MolodenskyTransform(fromA, fromF, toA, toF float64, p MolodenskyParams, latDeg, lonDeg, height float64) (float64, float64) {
	phi := latDeg * toRadians
	lambda := lonDeg * toRadians

	a := fromA
	f := fromF
	da := toA - fromA
	df := toF - fromF
	e2 := f * (2 - f)

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	sinLambda := math.Sin(lambda)
	cosLambda := math.Cos(lambda)
	sin2Phi := sinPhi * sinPhi

	rn := a / math.Sqrt(1-e2*sin2Phi)           // prime-vertical radius of curvature
	rm := a * (1 - e2) / math.Pow(1-e2*sin2Phi, 1.5) // meridional radius of curvature

	dPhi := (-p.ShiftX*sinPhi*cosLambda - p.ShiftY*sinPhi*sinLambda + p.ShiftZ*cosPhi +
		(a*df+f*da)*2*sinPhi*cosPhi) / (rm + height)

	dLambda := (-p.ShiftX*sinLambda + p.ShiftY*cosLambda) / ((rn + height) * cosPhi)

	return (phi + dPhi) * toDegrees, (lambda + dLambda) * toDegrees
}
