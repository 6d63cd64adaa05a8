package datumshift

// HelmertParams is a 7-parameter similarity transform: three translations
// (metres), three rotations (arcseconds), and a scale factor (ppm).
// Field names and units mirror the teacher's Datum.Transform array
// (tx, ty, tz, s, rx, ry, rz).
type HelmertParams struct {
	ShiftX, ShiftY, ShiftZ          float64 // metres
	RotationX, RotationY, RotationZ float64 // arcseconds
	ScaleFactor                      float64 // ppm
}

// Apply performs the forward Helmert transform on an ECEF point, grounded
// verbatim on the teacher's Cartesian.applyTransform.
func (h HelmertParams) Apply(g Geocentric) Geocentric {
	s := h.ScaleFactor/1e6 + 1
	rx := (h.RotationX / 3600) * toRadians
	ry := (h.RotationY / 3600) * toRadians
	rz := (h.RotationZ / 3600) * toRadians

	x1, y1, z1 := g.X, g.Y, g.Z

	return Geocentric{
		X: h.ShiftX + x1*s - y1*rz + z1*ry,
		Y: h.ShiftY + x1*rz + y1*s - z1*rx,
		Z: h.ShiftZ - x1*ry + y1*rx + z1*s,
	}
}

// Inverse negates every parameter, grounded on the teacher's
// Cartesian.ConvertDatum inverse-transform branch ("converting to WGS84;
// use inverse transform" — negate each of the seven components rather
// than inverting the similarity matrix, which is accurate to the same
// first-order approximation the forward transform already makes).
func (h HelmertParams) Inverse() HelmertParams {
	return HelmertParams{
		ShiftX: -h.ShiftX, ShiftY: -h.ShiftY, ShiftZ: -h.ShiftZ,
		RotationX: -h.RotationX, RotationY: -h.RotationY, RotationZ: -h.RotationZ,
		ScaleFactor: -h.ScaleFactor,
	}
}

// HelmertTransform shifts a geodetic point from the source ellipsoid to
// the target ellipsoid via ECEF, grounded on the teacher's
// LatLonEllipsoidalDatum.ConvertDatum (ToCartesian -> applyTransform ->
// ToLatLon chain).
func HelmertTransform(fromA, fromE2, fromB float64, toA, toE2, toB float64, h HelmertParams, latDeg, lonDeg, height float64) (float64, float64, float64) {
	g := ToGeocentric(fromA, fromE2, latDeg, lonDeg, height)
	g2 := h.Apply(g)
	return FromGeocentric(toA, toE2, toB, g2)
}
