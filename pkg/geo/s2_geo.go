package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// ValidCoordinate reports whether lat/lon (degrees) lie inside [-90,90]x[-180,180].
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return s2.LatLngFromDegrees(lat, lon).IsValid()
}

// CentralAngleKM great-circle distance computed through s2, used to cross check the
// haversine implementation.
func CentralAngleKM(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * EarthRadiusKM
}
