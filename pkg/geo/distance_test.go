package geo_test

import (
	"math"
	"testing"

	"github.com/AgnesBressan/AirRouteAM/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		delta                  float64
	}{
		{"same point", -3.1, -60.0, -3.1, -60.0, 0, 1e-9},
		{"one degree on the equator", 0, 0, 0, 1, 111.195, 0.01},
		{"antipodal", 0, 0, 0, 180, math.Pi * geo.EarthRadiusKM, 1e-6},
		{"pole to pole", 90, 0, -90, 0, math.Pi * geo.EarthRadiusKM, 1e-6},
		{"manaus to tabatinga", -3.1190, -60.0217, -4.2522, -69.9383, 1108.0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.HaversineDegrees(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestHaversineAgreesWithS2(t *testing.T) {
	points := [][2]float64{
		{0, 0}, {0, 180}, {-0.5, 10}, {0.5, -10}, {89.9, 45}, {-89.9, -135},
		{-3.1, -60.0}, {-7.2, -64.8}, {45, 179.9}, {45, -179.9},
	}
	for _, a := range points {
		for _, b := range points {
			h := geo.HaversineDegrees(a[0], a[1], b[0], b[1])
			s := geo.CentralAngleKM(a[0], a[1], b[0], b[1])
			assert.InDelta(t, s, h, 1e-3, "from %v to %v", a, b)
		}
	}
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, geo.ValidCoordinate(-3.1, -60.0))
	assert.True(t, geo.ValidCoordinate(90, 180))
	assert.False(t, geo.ValidCoordinate(91, 0))
	assert.False(t, geo.ValidCoordinate(0, -181))
	assert.False(t, geo.ValidCoordinate(math.NaN(), 0))
}
