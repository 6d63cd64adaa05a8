package sref

import (
	"fmt"
	"math"

	"github.com/geoconv/sref/ellipsoid"
)

const meanEarthRadius = 6_371_000.0 // metres

// DistanceMethod selects the great-circle/geodesic algorithm
// MetersBetween uses (spec.md §6's supplemented great-circle helpers).
type DistanceMethod int

const (
	Haversine DistanceMethod = iota
	LawOfCosines
	Vincenty
)

// MetersBetween returns the distance between p1 and p2, in metres, by
// the given method (spec.md §6/§9's external interface). p1.Y/p2.Y and
// p1.X/p2.X are taken as (lat, lon) decimal degrees; Vincenty runs
// against WGS84 since a bare GeoPoint carries no ellipsoid of its own.
func MetersBetween(p1, p2 GeoPoint, method DistanceMethod) (float64, error) {
	wgs84, err := ellipsoid.Get(ellipsoid.WGS84)
	if err != nil {
		return 0, err
	}
	return metersBetween(p1.Y, p1.X, p2.Y, p2.X, method, wgs84.EquatorialAxis, wgs84.EccentricitySquared)
}

// metersBetween is the lower-level form MetersBetween delegates to,
// taking the ellipsoid's (a, e²) directly so callers with a known
// SpatialReference/Datum can supply it rather than defaulting to
// WGS84. Haversine is grounded verbatim on the teacher's
// LatLon.DistanceTo; LawOfCosines is the textbook spherical
// law-of-cosines formula; Vincenty is grounded on
// starboard-nz/go-geodesy's VincentyInverse, generalized to an
// arbitrary ellipsoid.
func metersBetween(lat1, lon1, lat2, lon2 float64, method DistanceMethod, a, e2 float64) (float64, error) {
	switch method {
	case Haversine:
		return haversineDistance(lat1, lon1, lat2, lon2), nil
	case LawOfCosines:
		return lawOfCosinesDistance(lat1, lon1, lat2, lon2), nil
	case Vincenty:
		return vincentyDistance(lat1, lon1, lat2, lon2, a, e2)
	default:
		return 0, fmt.Errorf("sref: unknown distance method %d", method)
	}
}

func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * toRadians
	phi2 := lat2 * toRadians
	lambda1 := lon1 * toRadians
	lambda2 := lon2 * toRadians
	dPhi := phi2 - phi1
	dLambda := lambda2 - lambda1

	sinDPhi := math.Sin(dPhi / 2)
	sinDLambda := math.Sin(dLambda / 2)
	a := sinDPhi*sinDPhi + math.Cos(phi1)*math.Cos(phi2)*sinDLambda*sinDLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return meanEarthRadius * c
}

func lawOfCosinesDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * toRadians
	phi2 := lat2 * toRadians
	dLambda := (lon2 - lon1) * toRadians

	cosAngle := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	cosAngle = math.Max(-1, math.Min(1, cosAngle))
	return math.Acos(cosAngle) * meanEarthRadius
}

// vincentyDistance ports starboard-nz/go-geodesy's VincentyInverse
// (itself ported from chrisveness/geodesy), generalized to take the
// ellipsoid's (a, e²) directly instead of a named Ellipsoid.
func vincentyDistance(lat1, lon1, lat2, lon2, a, e2 float64) (float64, error) {
	if lat1 == lat2 && lon1 == lon2 {
		return 0, nil
	}

	f := 1 - math.Sqrt(1-e2)
	b := a * (1 - f)
	eps := math.Nextafter(1, 2) - 1

	phi1 := lat1 * toRadians
	lambda1 := lon1 * toRadians
	phi2 := lat2 * toRadians
	lambda2 := lon2 * toRadians

	L := lambda2 - lambda1
	tanU1 := (1 - f) * math.Tan(phi1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1
	tanU2 := (1 - f) * math.Tan(phi2)
	cosU2 := 1 / math.Sqrt(1+tanU2*tanU2)
	sinU2 := tanU2 * cosU2

	isAntipodal := math.Abs(L) > math.Pi/2 || math.Abs(phi2-phi1) > math.Pi/2

	lambda := L
	var sinLambda, cosLambda, sinSqSigma float64
	sigma := 0.0
	sinSigma := 0.0
	cosSigma := 1.0
	if isAntipodal {
		sigma = math.Pi
		cosSigma = -1
	}
	cos2SigmaM := 1.0
	var sinAlpha float64
	cosSqAlpha := 1.0

	var C, lambdaPrime, iterationCheck float64
	iterations := 0
	for {
		sinLambda = math.Sin(lambda)
		cosLambda = math.Cos(lambda)
		sinSqSigma = (cosU2*sinLambda)*(cosU2*sinLambda) +
			(cosU1*sinU2-sinU1*cosU2*cosLambda)*(cosU1*sinU2-sinU1*cosU2*cosLambda)
		if math.Abs(sinSqSigma) < eps {
			break
		}
		sinSigma = math.Sqrt(sinSqSigma)
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha = cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		} else {
			cos2SigmaM = 0
		}
		C = f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		lambdaPrime = lambda
		lambda = L + (1-C)*f*sinAlpha*(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if isAntipodal {
			iterationCheck = math.Abs(lambda) - math.Pi
		} else {
			iterationCheck = math.Abs(lambda)
		}
		if iterationCheck > math.Pi {
			return 0, &NonConvergentError{Method: "Vincenty"}
		}
		iterations++
		if math.Abs(lambda-lambdaPrime) <= 1e-12 || iterations >= 1000 {
			break
		}
	}
	if iterations >= 1000 {
		return 0, &NonConvergentError{Method: "Vincenty"}
	}

	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return b * A * (sigma - deltaSigma), nil
}

// InitialBearing returns the initial great-circle bearing from point 1
// to point 2, in degrees from north. Grounded verbatim on the
// teacher's LatLon.InitialBearingTo.
func InitialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * toRadians
	phi2 := lat2 * toRadians
	dLambda := (lon2 - lon1) * toRadians

	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	y := math.Sin(dLambda) * math.Cos(phi2)
	return Wrap360(math.Atan2(y, x) * toDegrees)
}

// FinalBearing returns the bearing arriving at point 2 from point 1.
// Grounded verbatim on the teacher's LatLon.FinalBearingTo.
func FinalBearing(lat1, lon1, lat2, lon2 float64) float64 {
	return Wrap360(InitialBearing(lat2, lon2, lat1, lon1) + 180)
}
