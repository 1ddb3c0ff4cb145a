package geo

import "math"

// haversine distance
const EarthRadiusKM = 6371.0

// Location is a point on the sphere in radians.
type Location struct {
	Latitude  float64
	Longitude float64
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func NewLocation(latDegree float64, lonDegree float64) Location {
	return Location{
		Latitude:  degreeToRadians(latDegree),
		Longitude: degreeToRadians(lonDegree),
	}
}

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func havFormula(locationOne Location, locationTwo Location) float64 {
	latitudeDiff := locationOne.Latitude - locationTwo.Latitude
	longitudeDiff := locationOne.Longitude - locationTwo.Longitude

	havLatitude := havFunction(latitudeDiff)
	havLongitude := havFunction(longitudeDiff)

	return havLatitude + math.Cos(locationOne.Latitude)*math.Cos(locationTwo.Latitude)*havLongitude
}

func archaversine(havAngle float64) float64 {
	// rounding can push hav slightly past 1 for antipodal points
	if havAngle > 1 {
		havAngle = 1
	}
	if havAngle < 0 {
		havAngle = 0
	}
	return 2.0 * math.Asin(math.Sqrt(havAngle))
}

// HaversineDistance great-circle distance in km.
func HaversineDistance(locationOne Location, locationTwo Location) float64 {
	centralAngleRad := archaversine(havFormula(locationOne, locationTwo))
	return EarthRadiusKM * centralAngleRad
}

// HaversineDegrees is HaversineDistance for coordinates given in degrees.
func HaversineDegrees(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineDistance(NewLocation(lat1, lon1), NewLocation(lat2, lon2))
}
