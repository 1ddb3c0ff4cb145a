package heuristics

import (
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/goals"
)

// HopCount precomputed hop distance to the nearest goal. Municipalities that cannot reach a
// goal keep +Inf.
type HopCount struct {
	table map[string]float64
}

// NewHopCount seeds every goal with 0 and relaxes predecessors with parent+1 through a
// worklist, so the hop count follows edge direction towards the goals.
func NewHopCount(g Graph, gs goals.GoalSet) *HopCount {
	ids := g.IDs()
	table := make(map[string]float64, len(ids))
	for _, id := range ids {
		table[id] = infinity()
	}

	queue := make([]string, 0, gs.Len())
	for _, goal := range gs.IDs() {
		table[goal] = 0
		queue = append(queue, goal)
	}

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		for _, prev := range g.Predecessors(current) {
			if table[prev] > table[current]+1 {
				table[prev] = table[current] + 1
				queue = append(queue, prev)
			}
		}
	}
	return &HopCount{table: table}
}

func (h *HopCount) Estimate(id string) (float64, error) {
	v, ok := h.table[id]
	if !ok {
		return infinity(), nil
	}
	return v, nil
}

func (h *HopCount) Name() Strategy { return StrategyHopCount }
