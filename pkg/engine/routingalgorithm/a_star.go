package routingalgorithm

import (
	"errors"

	"github.com/AgnesBressan/AirRouteAM/pkg/datastructure"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/goals"
	"github.com/AgnesBressan/AirRouteAM/pkg/util"
)

var (
	ErrUnknownStart    = errors.New("start municipality not found")
	ErrNoGoalReachable = errors.New("no airport reachable")
)

type Graph interface {
	Has(id string) bool
	Neighbors(id string) []datastructure.Neighbor
}

type Heuristic interface {
	Estimate(id string) (float64, error)
}

type RouteAlgorithm struct {
	g Graph
}

func NewRouteAlgorithm(g Graph) *RouteAlgorithm {
	return &RouteAlgorithm{g: g}
}

type searchNode struct {
	id     string
	parent *searchNode
	hops   int
	dist   float64
}

type SearchResult struct {
	Path          []string
	Goal          string
	DistanceKm    float64
	Hops          int
	ExpandedNodes int
	PushedNodes   int
}

// AStar best-first search from start to the cheapest member of gs.
//
// Queue rank is f = distance so far (km) + h(node). Hops are carried along for diagnostics
// only. The goal test happens when a node is popped, so the first goal popped is the
// cheapest one under an admissible heuristic. A municipality is expanded at most once;
// duplicate queue entries are discarded when popped. Equal ranks pop in insertion order and
// neighbors are pushed in identifier order, so equal-cost ties always resolve the same way.
//
// Errors: ErrUnknownStart, ErrNoGoalReachable, or whatever the heuristic returns.
func (rt *RouteAlgorithm) AStar(start string, gs goals.GoalSet, h Heuristic) (SearchResult, error) {
	if !rt.g.Has(start) {
		return SearchResult{}, ErrUnknownStart
	}

	hStart, err := h.Estimate(start)
	if err != nil {
		return SearchResult{}, err
	}

	pq := NewMinHeap[*searchNode]()
	pq.Insert(hStart, &searchNode{id: start})
	pushed := 1

	visited := make(map[string]struct{})
	expanded := 0

	for pq.Size() > 0 {
		current, _ := pq.ExtractMin()
		node := current.Item

		if gs.Contains(node.id) {
			return SearchResult{
				Path:          reconstructPath(node),
				Goal:          node.id,
				DistanceKm:    node.dist,
				Hops:          node.hops,
				ExpandedNodes: expanded,
				PushedNodes:   pushed,
			}, nil
		}

		if _, ok := visited[node.id]; ok {
			continue
		}
		visited[node.id] = struct{}{}
		expanded++

		for _, neighbor := range rt.g.Neighbors(node.id) {
			if !rt.g.Has(neighbor.ID) {
				continue
			}
			if _, ok := visited[neighbor.ID]; ok {
				continue
			}

			hNeighbor, err := h.Estimate(neighbor.ID)
			if err != nil {
				return SearchResult{ExpandedNodes: expanded, PushedNodes: pushed}, err
			}

			dist := node.dist + neighbor.DistanceKm
			pq.Insert(dist+hNeighbor, &searchNode{
				id:     neighbor.ID,
				parent: node,
				hops:   node.hops + 1,
				dist:   dist,
			})
			pushed++
		}
	}

	return SearchResult{ExpandedNodes: expanded, PushedNodes: pushed}, ErrNoGoalReachable
}

func reconstructPath(node *searchNode) []string {
	path := make([]string, 0, node.hops+1)
	for curr := node; curr != nil; curr = curr.parent {
		path = append(path, curr.id)
	}
	util.ReverseG(path)
	return path
}
