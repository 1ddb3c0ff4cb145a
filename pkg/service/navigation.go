package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/AgnesBressan/AirRouteAM/pkg/concurrent"
	"github.com/AgnesBressan/AirRouteAM/pkg/datastructure"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/goals"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/heuristics"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/routingalgorithm"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/snapping"
	"github.com/AgnesBressan/AirRouteAM/pkg/geo"
	"github.com/AgnesBressan/AirRouteAM/pkg/server"
	"github.com/AgnesBressan/AirRouteAM/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type RoutingAlgorithm interface {
	AStar(start string, gs goals.GoalSet, h routingalgorithm.Heuristic) (routingalgorithm.SearchResult, error)
}

type Snapper interface {
	Snap(lat, lon float64) (snapping.Candidate, error)
}

type KVDB interface {
	NearbyAirports(lat, lon, radiusKm float64) ([]concurrent.AirportEntry, []float64, error)
}

type Options struct {
	Heuristic    heuristics.Strategy
	BatchWorkers int
}

// Route successful query outcome.
type Route struct {
	Start         string
	Path          []string
	Goal          string
	DistanceKm    float64
	Airport       datastructure.Airport
	ElapsedMs     float64
	Hops          int
	ExpandedNodes int
	Heuristic     heuristics.Strategy
	Polyline      string
}

type BatchResult struct {
	Start string
	Route *Route
	Err   error
}

type NearbyAirport struct {
	Municipality string
	Airport      datastructure.Airport
	Coordinate   datastructure.Coordinate
	DistanceKm   float64
}

// queryPlan goal set and heuristic for one filter value. Both are read-only once built.
type queryPlan struct {
	goals     goals.GoalSet
	heuristic heuristics.Provider
	err       error
}

type NavigationService struct {
	graph   *datastructure.Graph
	routing RoutingAlgorithm
	snapper Snapper
	kv      KVDB
	opts    Options
	log     *zap.Logger

	plansMu sync.RWMutex
	plans   map[bool]*queryPlan
	group   singleflight.Group
}

func NewNavigationService(g *datastructure.Graph, routing RoutingAlgorithm, snapper Snapper, kv KVDB,
	opts Options, log *zap.Logger) (*NavigationService, error) {
	if opts.Heuristic == "" {
		opts.Heuristic = heuristics.StrategyAuto
	}
	if _, err := heuristics.ParseStrategy(string(opts.Heuristic)); err != nil {
		return nil, err
	}
	if opts.BatchWorkers < 1 {
		opts.BatchWorkers = 1
	}
	return &NavigationService{
		graph:   g,
		routing: routing,
		snapper: snapper,
		kv:      kv,
		opts:    opts,
		log:     log.With(zap.String("component", "navigation")),
		plans:   make(map[bool]*queryPlan, 2),
	}, nil
}

func planKey(commercialOnly bool) string {
	if commercialOnly {
		return "commercial"
	}
	return "all"
}

// plan goal set and heuristic for the filter, built once per filter value and shared
// by every later query with the same value.
func (uc *NavigationService) plan(commercialOnly bool) *queryPlan {
	uc.plansMu.RLock()
	p, ok := uc.plans[commercialOnly]
	uc.plansMu.RUnlock()
	if ok {
		return p
	}

	v, _, _ := uc.group.Do(planKey(commercialOnly), func() (interface{}, error) {
		uc.plansMu.RLock()
		p, ok := uc.plans[commercialOnly]
		uc.plansMu.RUnlock()
		if ok {
			return p, nil
		}

		gs := goals.Build(uc.graph, commercialOnly)
		h, err := heuristics.New(uc.opts.Heuristic, uc.graph, gs)
		p = &queryPlan{goals: gs, heuristic: h, err: err}

		uc.plansMu.Lock()
		uc.plans[commercialOnly] = p
		uc.plansMu.Unlock()
		return p, nil
	})
	return v.(*queryPlan)
}

// NearestAirport cheapest route by road distance from start to an airport that passes
// the filter. Failures are a *QueryError wrapped in a *server.Error carrying the transport
// code: UnknownStart is ErrNotFound, the other kinds ErrUnprocessable.
func (uc *NavigationService) NearestAirport(ctx context.Context, start string, commercialOnly bool) (Route, error) {
	if !uc.graph.Has(start) {
		uc.log.Debug("unknown start", zap.String("start", start))
		qerr := &QueryError{Kind: KindUnknownStart, Node: start, err: ErrUnknownStart}
		return Route{}, server.WrapErrorf(qerr, server.ErrNotFound, "%s", qerr.Error())
	}

	begin := time.Now()
	p := uc.plan(commercialOnly)

	var (
		res routingalgorithm.SearchResult
		err = p.err
	)
	if err == nil {
		res, err = uc.routing.AStar(start, p.goals, p.heuristic)
	}
	elapsed := util.Millis(time.Since(begin))

	if err != nil {
		qerr := uc.queryError(start, elapsed, err)
		uc.log.Debug("query failed",
			zap.String("start", start),
			zap.Bool("commercial_only", commercialOnly),
			zap.String("kind", string(qerr.Kind)),
			zap.Float64("elapsed_ms", elapsed),
		)
		if qerr.Kind == "" {
			return Route{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
		}
		return Route{}, server.WrapErrorf(qerr, server.ErrUnprocessable, "%s", qerr.Error())
	}

	airport, _ := uc.graph.Airport(res.Goal)
	route := Route{
		Start:         start,
		Path:          res.Path,
		Goal:          res.Goal,
		DistanceKm:    res.DistanceKm,
		Airport:       airport,
		ElapsedMs:     elapsed,
		Hops:          res.Hops,
		ExpandedNodes: res.ExpandedNodes,
		Heuristic:     p.heuristic.Name(),
		Polyline:      datastructure.RenderPath(uc.graph, res.Path),
	}
	uc.log.Debug("query answered",
		zap.String("start", start),
		zap.Bool("commercial_only", commercialOnly),
		zap.String("heuristic", string(route.Heuristic)),
		zap.String("goal", route.Goal),
		zap.Float64("distance_km", route.DistanceKm),
		zap.Int("expanded", route.ExpandedNodes),
		zap.Float64("elapsed_ms", elapsed),
	)
	return route, nil
}

// queryError Kind is left empty for errors that are not query outcomes.
func (uc *NavigationService) queryError(start string, elapsed float64, err error) *QueryError {
	var mc *heuristics.MissingCoordinateError
	switch {
	case errors.As(err, &mc):
		return &QueryError{Kind: KindMissingCoordinate, Node: mc.Node, ElapsedMs: elapsed, err: err}
	case errors.Is(err, ErrNoGoalReachable):
		return &QueryError{Kind: KindNoGoalReachable, Node: start, ElapsedMs: elapsed, err: err}
	case errors.Is(err, ErrUnknownStart):
		return &QueryError{Kind: KindUnknownStart, Node: start, err: err}
	default:
		return &QueryError{Node: start, ElapsedMs: elapsed, err: err}
	}
}

// NearestAirportBatch runs one independent query per start on the worker pool. Results
// keep the order of starts.
func (uc *NavigationService) NearestAirportBatch(ctx context.Context, starts []string, commercialOnly bool) []BatchResult {
	results := make([]BatchResult, len(starts))
	if len(starts) == 0 {
		return results
	}

	type indexed struct {
		idx int
		res BatchResult
	}
	workers := concurrent.NewWorkerPool[concurrent.QueryJob, indexed](uc.opts.BatchWorkers, len(starts))
	for i, s := range starts {
		workers.AddJob(concurrent.QueryJob{Index: i, Start: s, CommercialOnly: commercialOnly})
	}
	workers.Close()

	workers.Start(func(job concurrent.QueryJob) indexed {
		if err := ctx.Err(); err != nil {
			return indexed{job.Index, BatchResult{Start: job.Start, Err: err}}
		}
		route, err := uc.NearestAirport(ctx, job.Start, job.CommercialOnly)
		if err != nil {
			return indexed{job.Index, BatchResult{Start: job.Start, Err: err}}
		}
		return indexed{job.Index, BatchResult{Start: job.Start, Route: &route}}
	})
	workers.Wait()

	for r := range workers.CollectResults() {
		results[r.idx] = r.res
	}
	return results
}

// NearestAirportFromCoordinate snaps (lat, lon) to the closest municipality and queries
// from there.
func (uc *NavigationService) NearestAirportFromCoordinate(ctx context.Context, lat, lon float64,
	commercialOnly bool) (Route, snapping.Candidate, error) {
	if !geo.ValidCoordinate(lat, lon) {
		return Route{}, snapping.Candidate{}, server.WrapErrorf(nil, server.ErrBadParamInput, "invalid coordinate (%v, %v)", lat, lon)
	}
	snapped, err := uc.snapper.Snap(lat, lon)
	if err != nil {
		return Route{}, snapping.Candidate{}, server.WrapErrorf(err, server.ErrNotFound, "no municipality near (%v, %v)", lat, lon)
	}
	route, err := uc.NearestAirport(ctx, snapped.ID, commercialOnly)
	return route, snapped, err
}

// NearbyAirports airports within radiusKm of (lat, lon) in a straight line, nearest first.
func (uc *NavigationService) NearbyAirports(ctx context.Context, lat, lon, radiusKm float64,
	commercialOnly bool) ([]NearbyAirport, error) {
	if !geo.ValidCoordinate(lat, lon) {
		return nil, server.WrapErrorf(nil, server.ErrBadParamInput, "invalid coordinate (%v, %v)", lat, lon)
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return nil, server.WrapErrorf(nil, server.ErrBadParamInput, "radius must be a positive finite number")
	}

	entries, dists, err := uc.kv.NearbyAirports(lat, lon, radiusKm)
	if err != nil {
		uc.log.Error("nearby airports lookup", zap.Error(err))
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}

	out := make([]NearbyAirport, 0, len(entries))
	for i, e := range entries {
		if commercialOnly && !e.Commercial {
			continue
		}
		commercial := e.Commercial
		out = append(out, NearbyAirport{
			Municipality: e.Municipality,
			Airport:      datastructure.Airport{Name: e.Name, IATA: e.IATA, Commercial: &commercial},
			Coordinate:   datastructure.NewCoordinate(e.Lat, e.Lon),
			DistanceKm:   dists[i],
		})
	}
	return out, nil
}

// Municipalities every municipality identifier, sorted.
func (uc *NavigationService) Municipalities(ctx context.Context) []string {
	return uc.graph.IDs()
}
