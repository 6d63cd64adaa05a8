// Package config loads a Registry's ellipsoids, units, datums, datum
// shifts, and spatial references from an external YAML document, so a
// deployment can extend the built-in catalogs without a recompile
// (spec.md §3's "config & external collaborators" note).
package config

import (
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/geoconv/sref/datumshift"
	"github.com/geoconv/sref/ellipsoid"
	"github.com/geoconv/sref/sref"
	"github.com/geoconv/sref/units"
)

// Bundle is the parsed form of a config document: everything Apply
// needs to populate a Registry, held as plain data rather than applied
// eagerly so a caller can inspect or filter it first.
type Bundle struct {
	Ellipsoids []EllipsoidEntry     `yaml:"ellipsoids"`
	Units      []UnitEntry          `yaml:"units"`
	Datums     []DatumEntry         `yaml:"datums"`
	Shifts     []DatumShiftEntry    `yaml:"datumShifts"`
	References []SpatialRefEntry    `yaml:"spatialReferences"`
}

// EllipsoidEntry mirrors ellipsoid.Ellipsoid's YAML-friendly fields.
type EllipsoidEntry struct {
	Code              string  `yaml:"code"`
	EquatorialAxis    float64 `yaml:"equatorialAxis"`
	InverseFlattening float64 `yaml:"inverseFlattening"`
}

// UnitEntry mirrors units.MapUnit.
type UnitEntry struct {
	Code          string  `yaml:"code"`
	IsLinear      bool    `yaml:"isLinear"`
	IsAreal       bool    `yaml:"isAreal"`
	MetersPerUnit float64 `yaml:"metersPerUnit"`
}

// DatumEntry mirrors sref.Datum; Ellipsoid names an ellipsoid code
// that must already be known to the registry (either built in or
// registered earlier in the same Bundle).
type DatumEntry struct {
	Code               string `yaml:"code"`
	Ellipsoid          string `yaml:"ellipsoid"`
	CanonicalDatumCode string `yaml:"canonicalDatumCode"`
}

// DatumShiftEntry mirrors datumshift.Shift for the two methods a YAML
// document can express concisely: SYNONYM (no parameters) and HELMERT
// (the common 7-parameter case). MRE and MOLODENSKY shifts carry
// lookup-table/grid data this format doesn't attempt to model — those
// are registered programmatically via Registry.RegisterDatumShift
// instead (documented scope decision, not an oversight).
type DatumShiftEntry struct {
	From    string        `yaml:"from"`
	To      string        `yaml:"to"`
	Method  string        `yaml:"method"`
	Name    string        `yaml:"name"`
	Helmert *HelmertEntry `yaml:"helmert,omitempty"`
	Bounds  *BoundsEntry  `yaml:"bounds,omitempty"`
}

// HelmertEntry mirrors datumshift.HelmertParams.
type HelmertEntry struct {
	ShiftX      float64 `yaml:"shiftX"`
	ShiftY      float64 `yaml:"shiftY"`
	ShiftZ      float64 `yaml:"shiftZ"`
	RotationX   float64 `yaml:"rotationX"`
	RotationY   float64 `yaml:"rotationY"`
	RotationZ   float64 `yaml:"rotationZ"`
	ScaleFactor float64 `yaml:"scaleFactor"`
}

// BoundsEntry mirrors datumshift.Bounds's degree-extent constructor.
type BoundsEntry struct {
	MinLat float64 `yaml:"minLat"`
	MaxLat float64 `yaml:"maxLat"`
	MinLon float64 `yaml:"minLon"`
	MaxLon float64 `yaml:"maxLon"`
}

// SpatialRefEntry mirrors sref.SpatialReference for the WORLD and
// named-grid cases; registering a generic-template grid or a
// Lambert/TM/Albers/Mercator/Stereographic projection from YAML needs
// more structure than this format covers and is left to
// Registry.RegisterSpatialRef directly.
type SpatialRefEntry struct {
	Code        string `yaml:"code"`
	CoordSysCode string `yaml:"coordSys"`
	DatumCode   string `yaml:"datum"`
	UnitsCode   string `yaml:"units"`
}

// Load parses a YAML config document into a Bundle.
func Load(r io.Reader) (*Bundle, error) {
	var b Bundle
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&b); err != nil && err != io.EOF {
		return nil, err
	}
	return &b, nil
}

// Apply registers everything in the bundle onto reg, in dependency
// order (ellipsoids and units before datums, datums before shifts and
// references) so later entries can refer to codes an earlier entry in
// the same bundle just introduced.
func (b *Bundle) Apply(reg *sref.Registry) error {
	for _, e := range b.Ellipsoids {
		reg.RegisterEllipsoid(ellipsoid.Ellipsoid{
			Code:              e.Code,
			EquatorialAxis:    e.EquatorialAxis,
			InverseFlattening: e.InverseFlattening,
			Eccentricity:      eccentricityFromFlattening(e.InverseFlattening),
			EccentricitySquared: eccentricitySquaredFromFlattening(e.InverseFlattening),
		})
	}

	for _, u := range b.Units {
		reg.RegisterUnit(units.MapUnit{
			Code:          u.Code,
			IsLinear:      u.IsLinear,
			IsAreal:       u.IsAreal,
			MetersPerUnit: u.MetersPerUnit,
		})
	}

	for _, d := range b.Datums {
		ell, err := reg.Ellipsoid(d.Ellipsoid)
		if err != nil {
			return err
		}
		reg.RegisterDatum(sref.Datum{
			Code:               d.Code,
			Ellipsoid:          ell,
			CanonicalDatumCode: d.CanonicalDatumCode,
		})
	}

	for _, s := range b.Shifts {
		shift, err := toShift(s)
		if err != nil {
			return err
		}
		reg.RegisterDatumShift(shift)
	}

	for _, ref := range b.References {
		spatialRef, err := toSpatialReference(reg, ref)
		if err != nil {
			return err
		}
		if err := reg.RegisterSpatialRef(spatialRef); err != nil {
			return err
		}
	}

	return nil
}

func toShift(s DatumShiftEntry) (datumshift.Shift, error) {
	method, err := parseMethod(s.Method)
	if err != nil {
		return datumshift.Shift{}, err
	}

	shift := datumshift.Shift{From: s.From, To: s.To, Method: method, Name: s.Name}
	if s.Helmert != nil {
		shift.Helmert = datumshift.HelmertParams{
			ShiftX: s.Helmert.ShiftX, ShiftY: s.Helmert.ShiftY, ShiftZ: s.Helmert.ShiftZ,
			RotationX: s.Helmert.RotationX, RotationY: s.Helmert.RotationY, RotationZ: s.Helmert.RotationZ,
			ScaleFactor: s.Helmert.ScaleFactor,
		}
	}
	if s.Bounds != nil {
		shift.HasBounds = true
		shift.Bounds = datumshift.NewBounds(s.Bounds.MinLat, s.Bounds.MaxLat, s.Bounds.MinLon, s.Bounds.MaxLon)
	}
	return shift, nil
}

func parseMethod(name string) (datumshift.Method, error) {
	switch name {
	case "SYNONYM":
		return datumshift.Synonym, nil
	case "HELMERT":
		return datumshift.Helmert, nil
	case "MOLODENSKY":
		return datumshift.Molodensky, nil
	case "MRE":
		return datumshift.MRE, nil
	case "GRID":
		return datumshift.Grid, nil
	default:
		return 0, &sref.ParseError{Codec: "config.datumShift.method", Input: name}
	}
}

func toSpatialReference(reg *sref.Registry, ref SpatialRefEntry) (sref.SpatialReference, error) {
	datum, err := reg.Datum(ref.DatumCode)
	if err != nil {
		return sref.SpatialReference{}, err
	}
	unit, err := reg.Unit(ref.UnitsCode)
	if err != nil {
		return sref.SpatialReference{}, err
	}

	coordSysType := sref.World
	if ref.CoordSysCode != "WORLD" {
		coordSysType = sref.Grid
	}

	return sref.SpatialReference{
		Code:     ref.Code,
		CoordSys: sref.CoordSys{Code: ref.CoordSysCode, Type: coordSysType},
		Datum:    datum,
		Units:    unit,
	}, nil
}

// eccentricityFromFlattening/eccentricitySquaredFromFlattening derive
// an ellipsoid's eccentricity from its inverse flattening, since a YAML
// entry only supplies (a, 1/f) the way most published ellipsoid tables
// do.
func eccentricityFromFlattening(invF float64) float64 {
	if invF == 0 {
		return 0
	}
	f := 1 / invF
	return math.Sqrt(2*f - f*f)
}

func eccentricitySquaredFromFlattening(invF float64) float64 {
	e := eccentricityFromFlattening(invF)
	return e * e
}
