package service_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/AgnesBressan/AirRouteAM/pkg/datastructure"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/heuristics"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/routingalgorithm"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/snapping"
	"github.com/AgnesBressan/AirRouteAM/pkg/kv"
	"github.com/AgnesBressan/AirRouteAM/pkg/server"
	"github.com/AgnesBressan/AirRouteAM/pkg/service"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func boolPtr(b bool) *bool { return &b }

func coord(lat, lon float64) *datastructure.Coordinate {
	c := datastructure.NewCoordinate(lat, lon)
	return &c
}

func link(recs map[string]datastructure.MunicipalityRecord, a, b string, km float64) {
	for _, p := range [][2]string{{a, b}, {b, a}} {
		r := recs[p[0]]
		if r.Neighbors == nil {
			r.Neighbors = map[string]datastructure.NeighborRecord{}
		}
		r.Neighbors[p[1]] = datastructure.NeighborRecord{DistanceKm: km}
		recs[p[0]] = r
	}
}

// A-B-C-D line, 10 km per edge. D has an airport whose commercial flag is given;
// E is isolated with a non-commercial airstrip.
func lineDataset(commercial *bool) *datastructure.Dataset {
	recs := map[string]datastructure.MunicipalityRecord{
		"A": {Coordinates: coord(-3.0, -60.0)},
		"B": {Coordinates: coord(-3.0, -60.05)},
		"C": {Coordinates: coord(-3.0, -60.1)},
		"D": {Coordinates: coord(-3.0, -60.15), Airport: &datastructure.Airport{Name: "Aeroporto D", IATA: "DDD", Commercial: commercial}},
		"E": {Coordinates: coord(-5.0, -62.0), Airport: &datastructure.Airport{Name: "Pista E", Commercial: boolPtr(false)}},
	}
	link(recs, "A", "B", 10)
	link(recs, "B", "C", 10)
	link(recs, "C", "D", 10)
	return &datastructure.Dataset{Municipalities: recs}
}

func newService(t *testing.T, ds *datastructure.Dataset, strategy heuristics.Strategy) *service.NavigationService {
	t.Helper()
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	store := kv.NewKVDB(db, zap.NewNop())
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.ImportDataset(ds, false))

	g := datastructure.NewGraph(ds)
	svc, err := service.NewNavigationService(g, routingalgorithm.NewRouteAlgorithm(g), snapping.NewSnapper(g, 5), store,
		service.Options{Heuristic: strategy, BatchWorkers: 3}, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func queryError(t *testing.T, err error) *service.QueryError {
	t.Helper()
	var qerr *service.QueryError
	require.True(t, errors.As(err, &qerr), "expected a QueryError, got %v", err)
	return qerr
}

func TestNearestAirport(t *testing.T) {
	ctx := context.Background()

	t.Run("line graph", func(t *testing.T) {
		svc := newService(t, lineDataset(boolPtr(true)), heuristics.StrategyAuto)
		route, err := svc.NearestAirport(ctx, "A", true)
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B", "C", "D"}, route.Path)
		assert.Equal(t, 30.0, route.DistanceKm)
		assert.Equal(t, "D", route.Goal)
		assert.Equal(t, "Aeroporto D", route.Airport.Name)
		assert.Equal(t, "DDD", route.Airport.IATA)
		assert.Equal(t, 3, route.Hops)
		assert.Equal(t, heuristics.StrategyGeographic, route.Heuristic)
		assert.NotEmpty(t, route.Polyline)
		assert.GreaterOrEqual(t, route.ElapsedMs, 0.0)
	})

	t.Run("unknown start", func(t *testing.T) {
		svc := newService(t, lineDataset(boolPtr(true)), heuristics.StrategyAuto)
		_, err := svc.NearestAirport(ctx, "Atlantida", true)

		qerr := queryError(t, err)
		assert.Equal(t, service.KindUnknownStart, qerr.Kind)
		assert.Equal(t, "Atlantida", qerr.Node)
		assert.Zero(t, qerr.ElapsedMs)
		assert.ErrorIs(t, err, service.ErrUnknownStart)
		assert.Equal(t, server.ErrNotFound, server.CodeOf(err))
	})

	t.Run("non commercial airport filtered", func(t *testing.T) {
		svc := newService(t, lineDataset(boolPtr(false)), heuristics.StrategyAuto)
		_, err := svc.NearestAirport(ctx, "A", true)

		qerr := queryError(t, err)
		assert.Equal(t, service.KindNoGoalReachable, qerr.Kind)
		assert.GreaterOrEqual(t, qerr.ElapsedMs, 0.0)
		assert.ErrorIs(t, err, service.ErrNoGoalReachable)
		assert.Equal(t, server.ErrUnprocessable, server.CodeOf(err))

		route, err := svc.NearestAirport(ctx, "A", false)
		require.NoError(t, err, "same dataset without the filter")
		assert.Equal(t, "D", route.Goal)
	})

	t.Run("start is airport", func(t *testing.T) {
		svc := newService(t, lineDataset(nil), heuristics.StrategyHopCount)
		route, err := svc.NearestAirport(ctx, "D", true)
		require.NoError(t, err)
		assert.Equal(t, []string{"D"}, route.Path)
		assert.Zero(t, route.DistanceKm)
		assert.Equal(t, heuristics.StrategyHopCount, route.Heuristic)
	})

	t.Run("missing coordinate", func(t *testing.T) {
		ds := lineDataset(nil)
		b := ds.Municipalities["B"]
		b.Coordinates = nil
		ds.Municipalities["B"] = b

		svc := newService(t, ds, heuristics.StrategyGeographic)
		_, err := svc.NearestAirport(ctx, "A", true)
		qerr := queryError(t, err)
		assert.Equal(t, service.KindMissingCoordinate, qerr.Kind)
		assert.Equal(t, "B", qerr.Node)
		assert.ErrorIs(t, err, service.ErrMissingCoordinate)
		assert.Equal(t, `municipality "B" has no coordinates`, err.Error())

		auto := newService(t, ds, heuristics.StrategyAuto)
		route, err := auto.NearestAirport(ctx, "A", true)
		require.NoError(t, err)
		assert.Equal(t, heuristics.StrategyHopCount, route.Heuristic)
		assert.Empty(t, route.Polyline, "no polyline through a node without coordinates")
	})

	t.Run("idempotent", func(t *testing.T) {
		svc := newService(t, lineDataset(nil), heuristics.StrategyAuto)
		first, err := svc.NearestAirport(ctx, "A", false)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := svc.NearestAirport(ctx, "A", false)
			require.NoError(t, err)
			assert.Equal(t, first.Path, again.Path)
			assert.Equal(t, first.DistanceKm, again.DistanceKm)
		}
	})
}

func TestNearestAirportConcurrent(t *testing.T) {
	svc := newService(t, lineDataset(nil), heuristics.StrategyAuto)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := []string{"A", "B", "C"}[i%3]
			route, err := svc.NearestAirport(context.Background(), start, i%2 == 0)
			if err != nil {
				errs <- err
				return
			}
			if route.Goal != "D" {
				errs <- errors.New("unexpected goal " + route.Goal)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestNearestAirportBatch(t *testing.T) {
	svc := newService(t, lineDataset(boolPtr(true)), heuristics.StrategyAuto)
	starts := []string{"C", "Atlantida", "A", "E", "D", "B"}

	results := svc.NearestAirportBatch(context.Background(), starts, true)
	require.Len(t, results, len(starts))
	for i, r := range results {
		assert.Equal(t, starts[i], r.Start)
	}

	require.NotNil(t, results[0].Route)
	assert.Equal(t, 10.0, results[0].Route.DistanceKm)
	assert.Equal(t, service.KindUnknownStart, queryError(t, results[1].Err).Kind)
	assert.Equal(t, 30.0, results[2].Route.DistanceKm)
	assert.Equal(t, service.KindNoGoalReachable, queryError(t, results[3].Err).Kind)
	assert.Equal(t, []string{"D"}, results[4].Route.Path)
	assert.Equal(t, 20.0, results[5].Route.DistanceKm)

	assert.Empty(t, svc.NearestAirportBatch(context.Background(), nil, true))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, r := range svc.NearestAirportBatch(ctx, starts, true) {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestNearestAirportFromCoordinate(t *testing.T) {
	svc := newService(t, lineDataset(nil), heuristics.StrategyAuto)
	ctx := context.Background()

	route, snapped, err := svc.NearestAirportFromCoordinate(ctx, -3.01, -60.049, true)
	require.NoError(t, err)
	assert.Equal(t, "B", snapped.ID)
	assert.Equal(t, []string{"B", "C", "D"}, route.Path)

	_, _, err = svc.NearestAirportFromCoordinate(ctx, 95, 0, true)
	assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err))
}

func TestNearbyAirports(t *testing.T) {
	svc := newService(t, lineDataset(boolPtr(true)), heuristics.StrategyAuto)
	ctx := context.Background()

	all, err := svc.NearbyAirports(ctx, -3.5, -60.5, 400, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "D", all[0].Municipality)
	assert.Equal(t, "E", all[1].Municipality)
	assert.False(t, *all[1].Airport.Commercial)

	commercial, err := svc.NearbyAirports(ctx, -3.5, -60.5, 400, true)
	require.NoError(t, err)
	require.Len(t, commercial, 1)
	assert.Equal(t, "DDD", commercial[0].Airport.IATA)

	_, err = svc.NearbyAirports(ctx, -3.5, -60.5, 0, true)
	assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err))
	_, err = svc.NearbyAirports(ctx, -3.5, 200, 10, true)
	assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err))

	for _, r := range []float64{math.Inf(1), math.NaN()} {
		_, err = svc.NearbyAirports(ctx, -3.5, -60.5, r, false)
		assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err), "radius %v", r)
	}

	everywhere, err := svc.NearbyAirports(ctx, -3.5, -60.5, 1e6, false)
	require.NoError(t, err)
	assert.Len(t, everywhere, 2)
}

func TestNewNavigationServiceRejectsUnknownHeuristic(t *testing.T) {
	g := datastructure.NewGraph(lineDataset(nil))
	_, err := service.NewNavigationService(g, routingalgorithm.NewRouteAlgorithm(g), snapping.NewSnapper(g, 5), nil,
		service.Options{Heuristic: "dijkstra"}, zap.NewNop())
	assert.ErrorIs(t, err, heuristics.ErrUnknownStrategy)
}

func TestMunicipalities(t *testing.T) {
	svc := newService(t, lineDataset(nil), heuristics.StrategyAuto)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, svc.Municipalities(context.Background()))
}
