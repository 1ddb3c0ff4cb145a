package datastructure

import "github.com/twpayne/go-polyline"

type Coordinate struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// RenderPath encodes the coordinates of path as a polyline. Returns "" when a node on
// the path has no coordinate.
func RenderPath(g *Graph, path []string) string {
	coords := make([][]float64, 0, len(path))
	for _, id := range path {
		c, ok := g.Coordinate(id)
		if !ok {
			return ""
		}
		coords = append(coords, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

// PathCoordinates coordinates of every node on path that has one.
func PathCoordinates(g *Graph, path []string) []Coordinate {
	coords := make([]Coordinate, 0, len(path))
	for _, id := range path {
		if c, ok := g.Coordinate(id); ok {
			coords = append(coords, c)
		}
	}
	return coords
}
