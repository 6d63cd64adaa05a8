// Package units provides the linear/areal/angular map-unit catalog and
// the conversion routine between same-kind units.
//
// Grounded on samlecuyer/projectron's units_list table (id/to_meter/name
// entries keyed by PROJ.4-style unit codes) — the only repo in the
// retrieval pack carrying a literal linear-unit table — extended with an
// areal unit (acres) and the opaque "degrees"/"grid" singleton units
// spec.md's data model calls out explicitly.
package units

import "fmt"

// MapUnit is a named map unit. A MapUnit has
// exactly one of IsLinear/IsAreal set, or neither for an angular/opaque
// unit (degrees, grid tokens).
type MapUnit struct {
	Code          string
	IsLinear      bool
	IsAreal       bool
	MetersPerUnit float64 // valid when IsLinear; metres² per unit when IsAreal
}

// Well-known codes.
const (
	Meters        = "meters"
	USSurveyFeet  = "us-ft"
	InternationalFeet = "ft"
	Kilometers    = "km"
	Acres         = "acres"
	SquareMeters  = "sq-m"
	Degrees       = "degrees"
	Grid          = "grid" // opaque alphanumeric grid token unit
)

var catalog = map[string]MapUnit{
	Meters:       {Code: Meters, IsLinear: true, MetersPerUnit: 1.0},
	Kilometers:   {Code: Kilometers, IsLinear: true, MetersPerUnit: 1000.0},
	// US survey foot = 1200/3937 m exactly (spec.md §6 numeric constant).
	USSurveyFeet: {Code: USSurveyFeet, IsLinear: true, MetersPerUnit: 1200.0 / 3937.0},
	// International foot, grounded on projectron's units_list "ft" entry.
	InternationalFeet: {Code: InternationalFeet, IsLinear: true, MetersPerUnit: 0.3048},
	SquareMeters:      {Code: SquareMeters, IsAreal: true, MetersPerUnit: 1.0},
	Acres:             {Code: Acres, IsAreal: true, MetersPerUnit: 4046.8564224},
	Degrees:           {Code: Degrees},
	Grid:              {Code: Grid},
}

// Get looks up a unit by code.
func Get(code string) (MapUnit, error) {
	u, ok := catalog[code]
	if !ok {
		return MapUnit{}, &UnknownUnitError{Code: code}
	}
	return u, nil
}

// Register idempotently upserts a unit definition.
func Register(u MapUnit) {
	catalog[u.Code] = u
}

// UnknownUnitError is returned by Get/Convert for an unregistered code.
type UnknownUnitError struct {
	Code string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("units: unknown unit code %q", e.Code)
}

// UnitMismatchError is returned by Convert when mixing linear and areal
// units (or either with an angular/opaque unit).
type UnitMismatchError struct {
	From, To string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("units: cannot convert between incompatible units %q and %q", e.From, e.To)
}

// Convert rescales value from one unit to another of the same kind.
func Convert(value float64, from, to string) (float64, error) {
	fu, err := Get(from)
	if err != nil {
		return 0, err
	}
	tu, err := Get(to)
	if err != nil {
		return 0, err
	}
	if fu.Code == tu.Code {
		return value, nil
	}
	if fu.IsLinear != tu.IsLinear || fu.IsAreal != tu.IsAreal {
		return 0, &UnitMismatchError{From: from, To: to}
	}
	if !fu.IsLinear && !fu.IsAreal {
		// Both angular/opaque and of the same code handled above; distinct
		// angular/opaque codes (e.g. degrees -> grid) are not convertible.
		return 0, &UnitMismatchError{From: from, To: to}
	}
	return value * fu.MetersPerUnit / tu.MetersPerUnit, nil
}
