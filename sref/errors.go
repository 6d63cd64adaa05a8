package sref

import "fmt"

// UnknownReferenceError signals a SpatialRef/SpatialRefByCode lookup
// that found no registered match.
type UnknownReferenceError struct {
	Code string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("sref: unknown spatial reference %q", e.Code)
}

// UnknownDatumError signals a datum lookup miss.
type UnknownDatumError struct {
	Code string
}

func (e *UnknownDatumError) Error() string {
	return fmt.Sprintf("sref: unknown datum %q", e.Code)
}

// UnknownUnitError signals a unit lookup miss.
type UnknownUnitError struct {
	Code string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("sref: unknown unit %q", e.Code)
}

// OutOfDomainError signals a latitude/longitude outside the valid
// range for the operation, or a UTM zone undefined above 84N/below 80S.
type OutOfDomainError struct {
	Op       string
	Lat, Lon float64
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("sref: %s: point (lat=%g, lon=%g) out of domain", e.Op, e.Lat, e.Lon)
}

// ParseError signals a malformed grid or DMS token; Codec names the
// expected format, Input carries the offending substring.
type ParseError struct {
	Codec string
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sref: cannot parse %q as %s", e.Input, e.Codec)
}

// NoDatumShiftError signals that no shift record applies after
// scanning both the forward and reverse directions between two
// canonical datums (optionally restricted to a single named method).
type NoDatumShiftError struct {
	FromCanonical, ToCanonical string
	Method                     string // empty if no method was named
}

func (e *NoDatumShiftError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("sref: no %s datum shift from %q to %q", e.Method, e.FromCanonical, e.ToCanonical)
	}
	return fmt.Sprintf("sref: no datum shift from %q to %q", e.FromCanonical, e.ToCanonical)
}

// ShiftOutOfBoundsError signals that a specifically-named shift method
// was requested but the point lies outside its declared bounds polygon.
type ShiftOutOfBoundsError struct {
	Method   string
	Lat, Lon float64
}

func (e *ShiftOutOfBoundsError) Error() string {
	return fmt.Sprintf("sref: point (lat=%g, lon=%g) outside bounds of shift method %s", e.Lat, e.Lon, e.Method)
}

// NonConvergentError signals a reverse datum shift, or any other
// bounded iterative solver, that exceeded its iteration cap.
type NonConvergentError struct {
	Method string
}

func (e *NonConvergentError) Error() string {
	return fmt.Sprintf("sref: %s did not converge", e.Method)
}

// NotReadyError signals that the atlas a conversion needs has not yet
// been loaded; the caller should retry once it is.
type NotReadyError struct {
	AtlasID string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("sref: atlas %q not yet loaded", e.AtlasID)
}
