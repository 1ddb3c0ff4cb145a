package service

import (
	"fmt"

	"github.com/AgnesBressan/AirRouteAM/pkg/engine/heuristics"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/routingalgorithm"
)

var (
	ErrUnknownStart      = routingalgorithm.ErrUnknownStart
	ErrNoGoalReachable   = routingalgorithm.ErrNoGoalReachable
	ErrMissingCoordinate = heuristics.ErrMissingCoordinate
)

type Kind string

const (
	KindUnknownStart      Kind = "UnknownStart"
	KindMissingCoordinate Kind = "MissingCoordinate"
	KindNoGoalReachable   Kind = "NoGoalReachable"
)

// QueryError failed query outcome. Node is the start for UnknownStart and NoGoalReachable,
// and the municipality lacking coordinates for MissingCoordinate.
type QueryError struct {
	Kind      Kind
	Node      string
	ElapsedMs float64
	err       error
}

func (e *QueryError) Error() string {
	switch e.Kind {
	case KindUnknownStart:
		return fmt.Sprintf("start municipality %q not found", e.Node)
	case KindMissingCoordinate:
		return fmt.Sprintf("municipality %q has no coordinates", e.Node)
	case KindNoGoalReachable:
		return fmt.Sprintf("no airport reachable from %q", e.Node)
	default:
		return e.err.Error()
	}
}

func (e *QueryError) Unwrap() error {
	return e.err
}
