package grid

import "github.com/geoconv/sref/projection"

// UTMRef is a bare UTM coordinate: zone, hemisphere, and easting/northing
// in metres (false easting 500000 already applied; false northing
// 10,000,000 applied south of the equator).
type UTMRef struct {
	Zone            int
	SouthHemisphere bool
	Easting         float64
	Northing        float64
}

// ToUTM converts a geodetic point to its UTM projection, sharing
// UTMZone's zone math (including the Norway/Svalbard overrides) with
// the USNG/MGRS codec.
func ToUTM(latDeg, lonDeg float64) (UTMRef, error) {
	zone := UTMZone(latDeg, lonDeg)
	south := latDeg < 0
	params := utmParams(zone, south)

	x, y, err := projection.TransverseMercatorForward(params, latDeg, lonDeg)
	if err != nil {
		return UTMRef{}, err
	}

	return UTMRef{Zone: zone, SouthHemisphere: south, Easting: x, Northing: y}, nil
}

// ToLatLon converts a UTM reference back to geodetic coordinates.
func (u UTMRef) ToLatLon() (latDeg, lonDeg float64, err error) {
	params := utmParams(u.Zone, u.SouthHemisphere)
	return projection.TransverseMercatorInverse(params, u.Easting, u.Northing)
}
