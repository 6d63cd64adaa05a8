package sref

import (
	"github.com/geoconv/sref/datumshift"
	"github.com/geoconv/sref/ellipsoid"
	"github.com/geoconv/sref/units"
)

// SeedDefaults registers the named reference frames spec.md §8's seed
// scenarios exercise — California State Plane Zone 3 on NAD27 and
// NAD83 (Lambert Conformal Conic, US survey feet), UTM zone 18 on
// WGS84, and a plain WORLD/WGS84 degrees reference — so those
// scenarios can run end to end through Convert rather than only as
// inline projection-math unit tests. Lambert parameters are the
// published NGS California Zone 3 constants (standard parallels
// 37°04'N/38°26'N, origin 36°30'N/120°30'W; false easting 2,000,000 ft
// and false northing 0 for NAD27, false easting 2,000,000 m and false
// northing 500,000 m, stored in US survey feet, for NAD83); this
// is a convenience seed for examples and tests, not a complete CRS
// catalog.
func SeedDefaults(r *Registry) {
	clarke1866, _ := ellipsoid.Get(ellipsoid.Clarke1866)
	grs80, _ := ellipsoid.Get(ellipsoid.GRS80)
	wgs84Ellipsoid, _ := ellipsoid.Get(ellipsoid.WGS84)

	nad27 := Datum{Code: "NAD27", Ellipsoid: clarke1866}
	nad83 := Datum{Code: "NAD83", Ellipsoid: grs80, CanonicalDatumCode: "WGS84"}
	wgs84 := Datum{Code: "WGS84", Ellipsoid: wgs84Ellipsoid, CanonicalDatumCode: "WGS84"}
	r.RegisterDatum(nad27)
	r.RegisterDatum(nad83)
	r.RegisterDatum(wgs84)

	r.RegisterDatumShift(datumshift.Shift{
		From:   "NAD27",
		To:     "WGS84",
		Method: datumshift.Molodensky,
		Name:   "NAD27 CONUS",
		Molodensky: datumshift.MolodenskyParams{
			ShiftX: -8, ShiftY: 160, ShiftZ: 176,
		},
	})

	usFeet, _ := units.Get(units.USSurveyFeet)
	degrees, _ := units.Get(units.Degrees)
	gridUnit, _ := units.Get(units.Grid)

	caZone3 := CoordSys{Code: "CA-ZONE-3-LAMBERT", Type: Lambert}
	r.RegisterCoordSys(caZone3)

	const (
		caOriginLat = 36.5
		caOriginLon = -120.5
		caParallel1 = 37 + 4.0/60
		caParallel2 = 38 + 26.0/60
	)

	r.RegisterSpatialRef(SpatialReference{
		Code:                "CA-ZONE-3-NAD27-FT",
		CoordSys:            caZone3,
		Datum:               nad27,
		Units:               usFeet,
		OriginLat:           caOriginLat,
		OriginLon:           caOriginLon,
		Parallel1:           caParallel1,
		Parallel2:           caParallel2,
		OriginX:             2000000,
		OriginY:             0,
		EquatorialAxis:      clarke1866.EquatorialAxis / usFeet.MetersPerUnit,
		EccentricitySquared: clarke1866.EccentricitySquared,
	})

	r.RegisterSpatialRef(SpatialReference{
		Code:                "CA-ZONE-3-NAD83-FT",
		CoordSys:            caZone3,
		Datum:               nad83,
		Units:               usFeet,
		OriginLat:           caOriginLat,
		OriginLon:           caOriginLon,
		Parallel1:           caParallel1,
		Parallel2:           caParallel2,
		OriginX:             2000000 / usFeet.MetersPerUnit,
		OriginY:             500000 / usFeet.MetersPerUnit,
		EquatorialAxis:      grs80.EquatorialAxis / usFeet.MetersPerUnit,
		EccentricitySquared: grs80.EccentricitySquared,
	})

	utmCoordSys := CoordSys{Code: "UTM", Type: Grid}
	r.RegisterCoordSys(utmCoordSys)
	r.RegisterSpatialRef(SpatialReference{
		Code:     "UTM-ZONE-18-WGS84",
		CoordSys: utmCoordSys,
		Datum:    wgs84,
		Units:    gridUnit,
	})

	worldCoordSys := CoordSys{Code: "WORLD", Type: World}
	r.RegisterCoordSys(worldCoordSys)
	r.RegisterSpatialRef(SpatialReference{
		Code:     "WORLD-WGS84",
		CoordSys: worldCoordSys,
		Datum:    wgs84,
		Units:    degrees,
	})
}
