package sref

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/geoconv/sref/datumshift"
	"github.com/geoconv/sref/ellipsoid"
	"github.com/geoconv/sref/grid"
	"github.com/geoconv/sref/projection"
	"github.com/pkg/errors"
)

// ConvertOption configures a single Convert call.
type ConvertOption func(*convertOptions)

type convertOptions struct {
	shiftMethod string
}

// WithShiftMethod restricts datum shift selection to a single named
// method ("SYNONYM", "MRE", "HELMERT", "MOLODENSKY", "GRID"); Convert
// returns ShiftOutOfBoundsError if the point falls outside that
// method's declared bounds, rather than falling back to another
// method.
func WithShiftMethod(method string) ConvertOption {
	return func(o *convertOptions) { o.shiftMethod = method }
}

// Convert converts p from src to dst in place, replacing p's fields
// with the result. The external signature is unchanged from spec.md
// §6; internally it delegates to convert, a pure function of (p, src,
// dst) that returns a new GeoPoint rather than mutating one shared
// object through five stages in turn, per the redesign spec.md §9
// calls for.
func (p *GeoPoint) Convert(registry *Registry, src, dst SpatialReference, opts ...ConvertOption) error {
	out, err := convert(registry, *p, src, dst, opts...)
	if err != nil {
		return err
	}
	*p = out
	return nil
}

// convert performs the three-stage pipeline spec.md §4.6 describes:
// inverse projection (src -> lon/lat on src's datum), datum shift (if
// src/dst canonical datums differ), forward projection (lon/lat on
// dst's datum -> dst).
func convert(registry *Registry, p GeoPoint, src, dst SpatialReference, opts ...ConvertOption) (GeoPoint, error) {
	cfg := convertOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}

	lonDeg, latDeg, err := inverseProject(registry, src, p)
	if err != nil {
		return GeoPoint{}, errors.Wrapf(err, "inverse project %s", src.Code)
	}

	srcCode, dstCode := src.Datum.Code, dst.Datum.Code
	if src.Datum.CanonicalDatumCode != "" {
		srcCode = src.Datum.CanonicalDatumCode
	}
	if dst.Datum.CanonicalDatumCode != "" {
		dstCode = dst.Datum.CanonicalDatumCode
	}
	srcCanon := registry.CanonicalDatum(srcCode)
	dstCanon := registry.CanonicalDatum(dstCode)
	if srcCanon != dstCanon {
		latDeg, lonDeg, err = shiftDatum(registry, src.Datum, dst.Datum, srcCanon, dstCanon, latDeg, lonDeg, cfg.shiftMethod)
		if err != nil {
			return GeoPoint{}, errors.Wrapf(err, "datum shift %s -> %s", srcCanon, dstCanon)
		}
	}

	out, err := forwardProject(registry, dst, latDeg, lonDeg)
	if err != nil {
		return GeoPoint{}, errors.Wrapf(err, "forward project %s", dst.Code)
	}
	return out, nil
}

func shiftDatum(registry *Registry, srcDatum, dstDatum Datum, srcCanon, dstCanon string, latDeg, lonDeg float64, method string) (lat, lon float64, err error) {
	shift, reversed, err := registry.selectDatumShift(srcCanon, dstCanon, latDeg, lonDeg, method)
	if err != nil {
		return 0, 0, err
	}
	if shift.Method == datumshift.Synonym {
		return latDeg, lonDeg, nil
	}

	if shift.HasBounds && !shift.Bounds.Contains(latDeg, lonDeg) {
		return 0, 0, &ShiftOutOfBoundsError{Method: shift.Method.String(), Lat: latDeg, Lon: lonDeg}
	}

	from, to := srcDatum.Ellipsoid, dstDatum.Ellipsoid
	if reversed {
		from, to = to, from
	}

	apply := func(lat, lon float64) (float64, float64) {
		return applyShift(shift, from, to, lat, lon)
	}

	if !reversed {
		lat, lon = apply(latDeg, lonDeg)
		return lat, lon, nil
	}

	lat, lon, err = datumshift.ReverseShift(apply, latDeg, lonDeg)
	return lat, lon, err
}

func applyShift(shift datumshift.Shift, from, to ellipsoid.Ellipsoid, latDeg, lonDeg float64) (lat, lon float64) {
	switch shift.Method {
	case datumshift.Molodensky:
		fromF := 1 / from.InverseFlattening
		toF := 1 / to.InverseFlattening
		return datumshift.MolodenskyTransform(from.EquatorialAxis, fromF, to.EquatorialAxis, toF, shift.Molodensky, latDeg, lonDeg, 0)
	case datumshift.MRE:
		return datumshift.MRETransform(shift.MRE, latDeg, lonDeg)
	case datumshift.Helmert:
		lat2, lon2, _ := datumshift.HelmertTransform(
			from.EquatorialAxis, from.EccentricitySquared, from.PolarAxis(),
			to.EquatorialAxis, to.EccentricitySquared, to.PolarAxis(),
			shift.Helmert, latDeg, lonDeg, 0,
		)
		return lat2, lon2
	default:
		return latDeg, lonDeg
	}
}

func toProjectionParams(ref SpatialReference) projection.Params {
	return projection.Params{
		EquatorialAxis:      ref.EquatorialAxis,
		EccentricitySquared: ref.EccentricitySquared,
		OriginLat:           ref.OriginLat,
		OriginLon:           ref.OriginLon,
		Parallel1:           ref.Parallel1,
		Parallel2:           ref.Parallel2,
		OriginX:             ref.OriginX,
		OriginY:             ref.OriginY,
		CentralScaleFactor:  ref.CentralScaleFactor,
	}
}

// inverseProject dispatches by ref.CoordSys.Type per spec.md §4.6 step 1.
func inverseProject(registry *Registry, ref SpatialReference, p GeoPoint) (lonDeg, latDeg float64, err error) {
	if ref.CoordSys.Type == World {
		lat, lon, err := worldInverse(p)
		return lon, lat, err
	}
	if ref.CoordSys.Type == Grid {
		lat, lon, err := gridDecode(ref, p.GridToken)
		return lon, lat, err
	}
	if ref.CoordSys.Type == Atlas {
		lat, lon, err := atlasDecode(registry, ref, p.GridToken)
		return lon, lat, err
	}

	params := toProjectionParams(ref)
	switch ref.CoordSys.Type {
	case TransverseMercator:
		lat, lon, err := projection.TransverseMercatorInverse(params, p.X, p.Y)
		return lon, lat, err
	case Lambert:
		lat, lon, err := projection.LambertConformalConicInverse(params, p.X, p.Y)
		return lon, lat, err
	case Albers:
		lat, lon, err := projection.AlbersEqualAreaConicInverse(params, p.X, p.Y)
		return lon, lat, err
	case Mercator:
		lat, lon, err := projection.MercatorInverse(params, p.X, p.Y)
		return lon, lat, err
	case Stereographic:
		if ref.OriginLat == 90 || ref.OriginLat == -90 {
			lat, lon, err := projection.PolarStereographicInverse(params, p.X, p.Y)
			return lon, lat, err
		}
		lat, lon, err := projection.ObliqueStereographicInverse(params, p.X, p.Y)
		return lon, lat, err
	default:
		return 0, 0, &UnknownReferenceError{Code: ref.Code}
	}
}

// forwardProject is the symmetric dispatch for the output side (spec.md
// §4.6 step 3).
func forwardProject(registry *Registry, ref SpatialReference, latDeg, lonDeg float64) (GeoPoint, error) {
	if ref.CoordSys.Type == World {
		return GeoPoint{X: lonDeg, Y: latDeg}, nil
	}
	if ref.CoordSys.Type == Grid {
		token, err := gridEncode(ref, latDeg, lonDeg)
		if err != nil {
			return GeoPoint{}, err
		}
		return GeoPoint{GridToken: token}, nil
	}
	if ref.CoordSys.Type == Atlas {
		token, err := atlasEncode(registry, ref, latDeg, lonDeg)
		if err != nil {
			return GeoPoint{}, err
		}
		return GeoPoint{GridToken: token}, nil
	}

	params := toProjectionParams(ref)
	var x, y float64
	var err error
	switch ref.CoordSys.Type {
	case TransverseMercator:
		x, y, err = projection.TransverseMercatorForward(params, latDeg, lonDeg)
	case Lambert:
		x, y, err = projection.LambertConformalConicForward(params, latDeg, lonDeg)
	case Albers:
		x, y, err = projection.AlbersEqualAreaConicForward(params, latDeg, lonDeg)
	case Mercator:
		x, y, err = projection.MercatorForward(params, latDeg, lonDeg)
	case Stereographic:
		if ref.OriginLat == 90 || ref.OriginLat == -90 {
			x, y, err = projection.PolarStereographicForward(params, latDeg, lonDeg)
		} else {
			x, y, err = projection.ObliqueStereographicForward(params, latDeg, lonDeg)
		}
	default:
		return GeoPoint{}, &UnknownReferenceError{Code: ref.Code}
	}
	if err != nil {
		return GeoPoint{}, err
	}
	return GeoPoint{X: x, Y: y}, nil
}

// worldInverse treats p.X/p.Y as already-decimal degrees (lon, lat)
// unless GridToken carries a DMS string to parse instead — WORLD
// points are conventionally passed as (lon, lat) in p.X/p.Y, with
// GridToken reserved for the DMS-string input form (spec.md §4.6 step
// 1's "parse degrees-minutes-seconds" branch).
func worldInverse(p GeoPoint) (latDeg, lonDeg float64, err error) {
	if p.GridToken == "" {
		return p.Y, p.X, nil
	}
	return ParseLatLon(p.GridToken)
}

// atlasDecode resolves an ATLAS-typed reference's GridToken
// ("pageID gridH gridV") to geodetic coordinates via that page's cell
// origin/size, per spec.md §4.6 step 1's ATLAS branch. Returns
// NotReadyError if the named atlas (ref.CoordSys.Code) has not been
// registered yet.
func atlasDecode(registry *Registry, ref SpatialReference, token string) (latDeg, lonDeg float64, err error) {
	atlas, ok := registry.Atlas(ref.CoordSys.Code)
	if !ok {
		return 0, 0, &NotReadyError{AtlasID: ref.CoordSys.Code}
	}

	fields := strings.Fields(token)
	if len(fields) != 3 {
		return 0, 0, &ParseError{Codec: "ATLAS", Input: token}
	}
	pageID := fields[0]
	gridH, err1 := strconv.Atoi(fields[1])
	gridV, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		return 0, 0, &ParseError{Codec: "ATLAS", Input: token}
	}

	page, ok := atlas.Pages[pageID]
	if !ok {
		return 0, 0, &ParseError{Codec: "ATLAS", Input: token}
	}
	if gridH < 0 || gridH >= page.Cols || gridV < 0 || gridV >= page.Rows {
		return 0, 0, &OutOfDomainError{Op: "atlasDecode", Lat: float64(gridV), Lon: float64(gridH)}
	}

	latDeg = page.OriginLat + float64(gridV)*page.CellSizeLat
	lonDeg = page.OriginLon + float64(gridH)*page.CellSizeLon
	return latDeg, lonDeg, nil
}

// atlasEncode is the forward direction: find the page within ref's
// atlas whose cell grid covers (latDeg, lonDeg) and return its
// "pageID gridH gridV" token. Returns NotReadyError if the atlas isn't
// loaded.
func atlasEncode(registry *Registry, ref SpatialReference, latDeg, lonDeg float64) (string, error) {
	atlas, ok := registry.Atlas(ref.CoordSys.Code)
	if !ok {
		return "", &NotReadyError{AtlasID: ref.CoordSys.Code}
	}

	for pageID, page := range atlas.Pages {
		gridH := int(math.Floor((lonDeg - page.OriginLon) / page.CellSizeLon))
		gridV := int(math.Floor((latDeg - page.OriginLat) / page.CellSizeLat))
		if gridH < 0 || gridH >= page.Cols || gridV < 0 || gridV >= page.Rows {
			continue
		}
		return fmt.Sprintf("%s %d %d", pageID, gridH, gridV), nil
	}
	return "", &OutOfDomainError{Op: "atlasEncode", Lat: latDeg, Lon: lonDeg}
}

func gridDecode(ref SpatialReference, token string) (latDeg, lonDeg float64, err error) {
	switch strings.ToUpper(ref.CoordSys.Code) {
	case "USNG", "MGRS":
		r, err := grid.ParseUSNG(token)
		if err != nil {
			return 0, 0, err
		}
		return r.ToLatLon()
	case "UTM":
		return utmDecode(token)
	case "GARS":
		r, err := grid.ParseGARS(token)
		if err != nil {
			return 0, 0, err
		}
		return r.CenterLatLon()
	case "OSGB":
		r, err := grid.ParseOSGB(token)
		if err != nil {
			return 0, 0, err
		}
		return r.ToLatLon()
	case "IRISH":
		r, err := grid.ParseIrish(token)
		if err != nil {
			return 0, 0, err
		}
		return r.ToLatLon()
	case "CAP":
		r, err := grid.ParseCAPClassic(token)
		if err != nil {
			return 0, 0, err
		}
		return r.ToLatLon()
	case "CAP-CELL":
		r, err := grid.ParseCAPCell(token)
		if err != nil {
			return 0, 0, err
		}
		return r.ToLatLon()
	default:
		gt := genericTemplate(ref)
		return gt.FromGeneric(token)
	}
}

func gridEncode(ref SpatialReference, latDeg, lonDeg float64) (string, error) {
	switch strings.ToUpper(ref.CoordSys.Code) {
	case "USNG", "MGRS":
		r, err := grid.ToUSNG(latDeg, lonDeg)
		if err != nil {
			return "", err
		}
		if strings.ToUpper(ref.CoordSys.Code) == "MGRS" {
			return r.MGRSString(), nil
		}
		return r.String(5), nil
	case "UTM":
		r, err := grid.ToUTM(latDeg, lonDeg)
		if err != nil {
			return "", err
		}
		return utmEncode(r), nil
	case "GARS":
		r, err := grid.ToGARSFull(latDeg, lonDeg)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	case "OSGB":
		r, err := grid.FromLatLon(latDeg, lonDeg)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	case "IRISH":
		r, err := grid.FromLatLonIrish(latDeg, lonDeg)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	case "CAP":
		// ref.Code names the sectional chart (e.g. "SFO"); unlike the
		// other named grids, CAP classic cells are chart-relative rather
		// than globally addressable from lat/lon alone.
		r, err := grid.ToCAPClassic(ref.Code, latDeg, lonDeg)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	case "CAP-CELL":
		r, err := grid.ToCAPCell(latDeg, lonDeg, 3)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	default:
		gt := genericTemplate(ref)
		return gt.ToGeneric(latDeg, lonDeg)
	}
}

func genericTemplate(ref SpatialReference) *grid.GridTemplate {
	return &grid.GridTemplate{
		Pattern:          ref.CoordSys.GridTemplate,
		Params:           toProjectionParams(ref),
		CellSizeEasting:  ref.CoordSys.GridCellSizeEast,
		CellSizeNorthing: ref.CoordSys.GridCellSizeNorth,
	}
}

func utmEncode(r grid.UTMRef) string {
	hemi := "N"
	if r.SouthHemisphere {
		hemi = "S"
	}
	return fmt.Sprintf("%d%s %.0f %.0f", r.Zone, hemi, r.Easting, r.Northing)
}

var utmTokenFields = strings.Fields

func utmDecode(token string) (latDeg, lonDeg float64, err error) {
	fields := utmTokenFields(token)
	if len(fields) != 3 || len(fields[0]) < 2 {
		return 0, 0, &ParseError{Codec: "UTM", Input: token}
	}
	zoneDigits := fields[0][:len(fields[0])-1]
	hemi := fields[0][len(fields[0])-1:]

	zone, err := strconv.Atoi(zoneDigits)
	if err != nil {
		return 0, 0, &ParseError{Codec: "UTM", Input: token}
	}
	easting, err1 := strconv.ParseFloat(fields[1], 64)
	northing, err2 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, &ParseError{Codec: "UTM", Input: token}
	}

	r := grid.UTMRef{Zone: zone, SouthHemisphere: strings.EqualFold(hemi, "S"), Easting: easting, Northing: northing}
	return r.ToLatLon()
}

// ParseUsng parses a USNG/MGRS string into its zone/band/square/easting/
// northing components (spec.md §9's external interface).
func ParseUsng(s string) (zone int, band, square string, easting, northing float64, err error) {
	r, err := grid.ParseUSNG(s)
	if err != nil {
		return 0, "", "", 0, 0, err
	}
	sq := ""
	if r.HasSquare {
		sq = string([]byte{r.SquareCol, r.SquareRow})
	}
	return r.Zone, string(r.Band), sq, float64(r.Easting), float64(r.Northing), nil
}

// ParseUtm parses a UTM string of the form "<zone><hemisphere> <easting>
// <northing>" (spec.md §9's external interface).
func ParseUtm(s string) (zone int, band string, easting, northing float64, err error) {
	fields := utmTokenFields(s)
	if len(fields) != 3 || len(fields[0]) < 2 {
		return 0, "", 0, 0, &ParseError{Codec: "UTM", Input: s}
	}
	zoneDigits := fields[0][:len(fields[0])-1]
	hemi := fields[0][len(fields[0])-1:]
	zone, err = strconv.Atoi(zoneDigits)
	if err != nil {
		return 0, "", 0, 0, &ParseError{Codec: "UTM", Input: s}
	}
	easting, err1 := strconv.ParseFloat(fields[1], 64)
	northing, err2 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil {
		return 0, "", 0, 0, &ParseError{Codec: "UTM", Input: s}
	}
	return zone, hemi, easting, northing, nil
}

// IsValidUsng reports whether s is a syntactically valid USNG/MGRS string.
func IsValidUsng(s string) bool {
	return grid.IsValidUSNG(s)
}
