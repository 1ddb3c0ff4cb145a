// Package heuristics estimates the remaining cost from a municipality to the nearest goal.
//
// Three strategies share the Provider contract:
//
//   - Geographic: great-circle (haversine) distance to the nearest goal, in km. Admissible
//     because no road between two points is shorter than the great circle.
//   - HopCount: minimum number of edges to any goal, from a multi-source breadth-first
//     propagation over reversed edges. Its unit is hops, not km, so it is admissible only
//     when every edge is at least 1 km long; on shorter edges it can overestimate.
//   - Zero: always 0, which turns A* into uninformed uniform-cost search.
//
// The strategy is chosen once per query, before the search starts.
package heuristics

import (
	"errors"
	"fmt"
	"math"

	"github.com/AgnesBressan/AirRouteAM/pkg/datastructure"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/goals"
)

type Strategy string

const (
	StrategyAuto       Strategy = "auto"
	StrategyGeographic Strategy = "geographic"
	StrategyHopCount   Strategy = "hopcount"
	StrategyZero       Strategy = "zero"
)

var (
	ErrMissingCoordinate = errors.New("municipality has no coordinates")
	ErrUnknownStrategy   = errors.New("unknown heuristic strategy")
)

// MissingCoordinateError names the municipality the geographic strategy could not place.
type MissingCoordinateError struct {
	Node string
}

func (e *MissingCoordinateError) Error() string {
	return fmt.Sprintf("municipality %q has no coordinates", e.Node)
}

func (e *MissingCoordinateError) Is(target error) bool {
	return target == ErrMissingCoordinate
}

type Provider interface {
	Estimate(id string) (float64, error)
	Name() Strategy
}

type Graph interface {
	IDs() []string
	Predecessors(id string) []string
	Coordinate(id string) (datastructure.Coordinate, bool)
	HasAllCoordinates() bool
}

func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyAuto, StrategyGeographic, StrategyHopCount, StrategyZero:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// New picks the provider for a query. StrategyAuto uses the geographic strategy when every
// municipality has coordinates and falls back to hop counting otherwise.
func New(strategy Strategy, g Graph, gs goals.GoalSet) (Provider, error) {
	switch strategy {
	case StrategyAuto:
		if g.HasAllCoordinates() {
			return NewGeographic(g, gs)
		}
		return NewHopCount(g, gs), nil
	case StrategyGeographic:
		return NewGeographic(g, gs)
	case StrategyHopCount:
		return NewHopCount(g, gs), nil
	case StrategyZero:
		return Zero{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// Table estimate for every municipality of g.
func Table(g Graph, p Provider) (map[string]float64, error) {
	table := make(map[string]float64, len(g.IDs()))
	for _, id := range g.IDs() {
		h, err := p.Estimate(id)
		if err != nil {
			return nil, err
		}
		table[id] = h
	}
	return table, nil
}

type Zero struct{}

func (Zero) Estimate(string) (float64, error) { return 0, nil }

func (Zero) Name() Strategy { return StrategyZero }

func infinity() float64 {
	return math.Inf(1)
}
