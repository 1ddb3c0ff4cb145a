package datastructure

import (
	"golang.org/x/exp/slices"
)

type Neighbor struct {
	ID         string
	DistanceKm float64
}

type Municipality struct {
	ID            string
	Coordinate    Coordinate
	HasCoordinate bool
	Airport       *Airport
	Neighbors     []Neighbor
}

// Graph read-only municipality graph. Neighbor lists are sorted by identifier so
// iteration order never depends on map order.
type Graph struct {
	municipalities map[string]*Municipality
	predecessors   map[string][]string
	ids            []string
	danglingEdges  int
	allCoordinates bool
}

// NewGraph builds the graph model from a dataset. Neighbor references to identifiers
// that are not municipalities are dropped and counted in DanglingEdges.
func NewGraph(ds *Dataset) *Graph {
	g := &Graph{
		municipalities: make(map[string]*Municipality),
		predecessors:   make(map[string][]string),
		allCoordinates: true,
	}
	if ds == nil {
		return g
	}

	g.ids = make([]string, 0, len(ds.Municipalities))
	for id := range ds.Municipalities {
		g.ids = append(g.ids, id)
	}
	slices.Sort(g.ids)

	for _, id := range g.ids {
		rec := ds.Municipalities[id]
		m := &Municipality{ID: id}
		if rec.Coordinates != nil {
			m.Coordinate = *rec.Coordinates
			m.HasCoordinate = true
		} else {
			g.allCoordinates = false
		}
		if rec.Airport != nil {
			airport := *rec.Airport
			m.Airport = &airport
		}

		nbIDs := make([]string, 0, len(rec.Neighbors))
		for nbID := range rec.Neighbors {
			if _, ok := ds.Municipalities[nbID]; !ok {
				g.danglingEdges++
				continue
			}
			nbIDs = append(nbIDs, nbID)
		}
		slices.Sort(nbIDs)

		m.Neighbors = make([]Neighbor, 0, len(nbIDs))
		for _, nbID := range nbIDs {
			m.Neighbors = append(m.Neighbors, Neighbor{ID: nbID, DistanceKm: rec.Neighbors[nbID].DistanceKm})
			g.predecessors[nbID] = append(g.predecessors[nbID], id)
		}
		g.municipalities[id] = m
	}
	return g
}

func (g *Graph) Has(id string) bool {
	_, ok := g.municipalities[id]
	return ok
}

func (g *Graph) Municipality(id string) (*Municipality, bool) {
	m, ok := g.municipalities[id]
	return m, ok
}

// Neighbors outgoing edges of id, empty for unknown ids.
func (g *Graph) Neighbors(id string) []Neighbor {
	m, ok := g.municipalities[id]
	if !ok {
		return nil
	}
	return m.Neighbors
}

// Predecessors municipalities that list id as a neighbor, sorted.
func (g *Graph) Predecessors(id string) []string {
	return g.predecessors[id]
}

func (g *Graph) Coordinate(id string) (Coordinate, bool) {
	m, ok := g.municipalities[id]
	if !ok || !m.HasCoordinate {
		return Coordinate{}, false
	}
	return m.Coordinate, true
}

func (g *Graph) Airport(id string) (Airport, bool) {
	m, ok := g.municipalities[id]
	if !ok || m.Airport == nil {
		return Airport{}, false
	}
	return *m.Airport, true
}

// IDs sorted municipality identifiers. The returned slice must not be modified.
func (g *Graph) IDs() []string {
	return g.ids
}

func (g *Graph) Len() int {
	return len(g.ids)
}

// HasAllCoordinates true when every municipality carries a coordinate.
func (g *Graph) HasAllCoordinates() bool {
	return g.allCoordinates
}

func (g *Graph) DanglingEdges() int {
	return g.danglingEdges
}
