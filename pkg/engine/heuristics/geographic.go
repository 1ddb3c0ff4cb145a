package heuristics

import (
	"math"

	"github.com/AgnesBressan/AirRouteAM/pkg/engine/goals"
	"github.com/AgnesBressan/AirRouteAM/pkg/geo"
)

// Geographic O(|goals|) per estimate. Stateless after construction, safe to share between
// concurrent queries.
type Geographic struct {
	g     Graph
	goals []geo.Location
}

// NewGeographic fails with a MissingCoordinateError when a goal has no coordinates, since
// skipping it could make the estimate exceed the true distance.
func NewGeographic(g Graph, gs goals.GoalSet) (*Geographic, error) {
	locs := make([]geo.Location, 0, gs.Len())
	for _, id := range gs.IDs() {
		c, ok := g.Coordinate(id)
		if !ok {
			return nil, &MissingCoordinateError{Node: id}
		}
		locs = append(locs, geo.NewLocation(c.Lat, c.Lon))
	}
	return &Geographic{g: g, goals: locs}, nil
}

// Estimate +Inf when there are no goals.
func (h *Geographic) Estimate(id string) (float64, error) {
	c, ok := h.g.Coordinate(id)
	if !ok {
		return 0, &MissingCoordinateError{Node: id}
	}
	if len(h.goals) == 0 {
		return infinity(), nil
	}

	from := geo.NewLocation(c.Lat, c.Lon)
	best := math.MaxFloat64
	for _, goal := range h.goals {
		if d := geo.HaversineDistance(from, goal); d < best {
			best = d
		}
	}
	return best, nil
}

func (h *Geographic) Name() Strategy { return StrategyGeographic }
