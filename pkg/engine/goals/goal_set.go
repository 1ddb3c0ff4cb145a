// Package goals decides which municipalities count as a search goal.
package goals

import (
	"github.com/AgnesBressan/AirRouteAM/pkg/datastructure"
)

type AirportGraph interface {
	IDs() []string
	Airport(id string) (datastructure.Airport, bool)
}

// GoalSet identifiers of municipalities whose airport satisfies the filter.
type GoalSet struct {
	members map[string]struct{}
	ids     []string
}

// Build a municipality qualifies when it has an airport and either commercialOnly is off
// or the airport is commercial (absent flag counts as commercial).
func Build(g AirportGraph, commercialOnly bool) GoalSet {
	gs := GoalSet{members: make(map[string]struct{})}
	for _, id := range g.IDs() {
		airport, ok := g.Airport(id)
		if !ok {
			continue
		}
		if commercialOnly && !airport.IsCommercial() {
			continue
		}
		gs.members[id] = struct{}{}
		gs.ids = append(gs.ids, id)
	}
	return gs
}

// New goal set from explicit identifiers, mostly for tests and custom goal classes.
func New(ids ...string) GoalSet {
	gs := GoalSet{members: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if _, dup := gs.members[id]; dup {
			continue
		}
		gs.members[id] = struct{}{}
		gs.ids = append(gs.ids, id)
	}
	return gs
}

func (gs GoalSet) Contains(id string) bool {
	_, ok := gs.members[id]
	return ok
}

func (gs GoalSet) Len() int {
	return len(gs.ids)
}

func (gs GoalSet) IsEmpty() bool {
	return len(gs.ids) == 0
}

// IDs in graph order. Must not be modified.
func (gs GoalSet) IDs() []string {
	return gs.ids
}
