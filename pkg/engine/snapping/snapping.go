package snapping

import (
	"errors"

	"github.com/AgnesBressan/AirRouteAM/pkg/datastructure"
	"github.com/AgnesBressan/AirRouteAM/pkg/geo"
	"github.com/dhconnelly/rtreego"
	"golang.org/x/exp/slices"
)

var ErrNoMunicipality = errors.New("no municipality with coordinates to snap to")

const tol = 0.0001

type Graph interface {
	IDs() []string
	Coordinate(id string) (datastructure.Coordinate, bool)
}

type municipalityRect struct {
	location rtreego.Point
	id       string
	coord    datastructure.Coordinate
}

func (m *municipalityRect) Bounds() rtreego.Rect {
	return m.location.ToRect(tol)
}

type Candidate struct {
	ID         string
	Coordinate datastructure.Coordinate
	DistanceKm float64
}

// Snapper spatial index over municipality seats. Read-only after NewSnapper.
type Snapper struct {
	tree       *rtreego.Rtree
	candidates int
}

// NewSnapper indexes every municipality that has coordinates. candidates is how many
// rtree neighbors get re-ranked by great-circle distance.
func NewSnapper(g Graph, candidates int) *Snapper {
	if candidates < 1 {
		candidates = 1
	}
	tree := rtreego.NewTree(2, 25, 50)
	for _, id := range g.IDs() {
		c, ok := g.Coordinate(id)
		if !ok {
			continue
		}
		tree.Insert(&municipalityRect{
			location: rtreego.Point{c.Lat, c.Lon},
			id:       id,
			coord:    c,
		})
	}
	return &Snapper{tree: tree, candidates: candidates}
}

func (s *Snapper) Size() int {
	return s.tree.Size()
}

// Nearest up to k municipalities closest to (lat, lon), nearest first. The rtree works in
// planar degrees, so its neighbors are re-sorted by haversine distance.
func (s *Snapper) Nearest(lat, lon float64, k int) []Candidate {
	if k < 1 || s.tree.Size() == 0 {
		return nil
	}
	fetch := k
	if fetch < s.candidates {
		fetch = s.candidates
	}

	from := geo.NewLocation(lat, lon)
	found := s.tree.NearestNeighbors(fetch, rtreego.Point{lat, lon})
	out := make([]Candidate, 0, len(found))
	for _, sp := range found {
		m, ok := sp.(*municipalityRect)
		if !ok || m == nil {
			continue
		}
		out = append(out, Candidate{
			ID:         m.id,
			Coordinate: m.coord,
			DistanceKm: geo.HaversineDistance(from, geo.NewLocation(m.coord.Lat, m.coord.Lon)),
		})
	}

	slices.SortFunc(out, func(a, b Candidate) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// Snap municipality closest to (lat, lon).
func (s *Snapper) Snap(lat, lon float64) (Candidate, error) {
	nearest := s.Nearest(lat, lon, 1)
	if len(nearest) == 0 {
		return Candidate{}, ErrNoMunicipality
	}
	return nearest[0], nil
}
