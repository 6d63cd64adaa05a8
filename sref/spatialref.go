package sref

import (
	"github.com/geoconv/sref/ellipsoid"
	"github.com/geoconv/sref/units"
)

// SpatialReference names a coordinate system, the datum it is
// realized on, and the units it reports in, plus the concrete
// projection parameters `projection.Params`/grid codecs read from it
// (spec.md §3).
//
// Invariants ((i) and (ii) are enforced by Registry.RegisterSpatialRef;
// (iii) is not checked there):
//
//	(i)   units=degrees => CoordSys.Type == World
//	(ii)  CoordSys.Type == Grid => units=grid, and the CoordSys is a
//	      recognized named grid or supplies BaseCoordSys + GridTemplate +
//	      GridCellSize* + InputResolution
//	(iii) for TM/Lambert/Albers, EquatorialAxis is expressed in Units
type SpatialReference struct {
	Code    string
	CoordSys CoordSys
	Datum    Datum
	Units    units.MapUnit

	OriginLat, OriginLon float64
	Parallel1, Parallel2 float64
	OriginX, OriginY     float64
	CentralScaleFactor   float64
	EquatorialAxis       float64
	EccentricitySquared  float64
	InputResolution      float64
}

// namedGridCodes are the CoordSys codes RegisterSpatialRef accepts for
// a Grid-typed reference without BaseCoordSys/GridTemplate present
// (spec.md §3 invariant (ii)).
var namedGridCodes = map[string]bool{
	"USNG": true, "MGRS": true, "UTM": true, "GARS": true,
	"OSGB": true, "IRISH": true, "CAP": true, "CAP-CELL": true, "EBMUD": true,
}

func validateSpatialReference(ref SpatialReference) error {
	if ref.Units.Code == "degrees" && ref.CoordSys.Type != World {
		return &ParseError{Codec: "SpatialReference", Input: "units=degrees requires CoordSys.Type=World"}
	}
	if ref.CoordSys.Type == Grid {
		if ref.Units.Code != "grid" {
			return &ParseError{Codec: "SpatialReference", Input: "CoordSys.Type=Grid requires units=grid"}
		}
		if !namedGridCodes[ref.CoordSys.Code] {
			if ref.CoordSys.BaseCoordSys == nil || ref.CoordSys.GridTemplate == "" ||
				ref.CoordSys.GridCellSizeEast == 0 || ref.CoordSys.GridCellSizeNorth == 0 ||
				ref.InputResolution == 0 {
				return &ParseError{
					Codec: "SpatialReference",
					Input: "unrecognized grid requires baseCoordSys + gridTemplate + gridCellSize* + inputResolution",
				}
			}
		}
	}
	return nil
}

// Ellipsoid returns the ellipsoid backing this reference's datum —
// convenience accessor used throughout Convert.
func (ref SpatialReference) Ellipsoid() ellipsoid.Ellipsoid {
	return ref.Datum.Ellipsoid
}
