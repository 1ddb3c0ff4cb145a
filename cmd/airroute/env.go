package main

import (
	"github.com/AgnesBressan/AirRouteAM/pkg/dataset"
	"github.com/AgnesBressan/AirRouteAM/pkg/datastructure"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/routingalgorithm"
	"github.com/AgnesBressan/AirRouteAM/pkg/engine/snapping"
	"github.com/AgnesBressan/AirRouteAM/pkg/kv"
	"github.com/AgnesBressan/AirRouteAM/pkg/service"
	"github.com/cockroachdb/pebble"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

type appEnv struct {
	KV      *kv.KVDB
	Graph   *datastructure.Graph
	Service *service.NavigationService
}

func (e *appEnv) Close() {
	if e.KV != nil {
		if err := e.KV.Close(); err != nil {
			zap.L().Warn("close store", zap.Error(err))
		}
	}
}

func openStore() (*kv.KVDB, error) {
	db, err := pebble.Open(cfg.Store.Path, &pebble.Options{})
	if err != nil {
		return nil, eris.Wrapf(err, "open store %s", cfg.Store.Path)
	}
	return kv.NewKVDB(db, zap.L()), nil
}

// importDataset loads and validates the json dataset, then writes it to the store.
func importDataset(store *kv.KVDB, path string, showProgress bool) (*datastructure.Dataset, error) {
	ds, err := dataset.NewLoader(zap.L()).LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := store.ImportDataset(ds, showProgress); err != nil {
		return nil, err
	}
	return ds, nil
}

// storedDataset imports the json dataset when the store is empty. Otherwise the store wins
// and the json file is not read; preprocess reimports it.
func storedDataset(store *kv.KVDB, datasetPath, storePath string, log *zap.Logger) (*datastructure.Dataset, error) {
	empty, err := store.IsEmpty()
	if err != nil {
		return nil, err
	}
	if empty {
		log.Info("store is empty, importing dataset", zap.String("path", datasetPath))
		return importDataset(store, datasetPath, false)
	}

	log.Info("using stored dataset, dataset file not read; run preprocess to reimport it",
		zap.String("store", storePath),
		zap.String("dataset", datasetPath),
	)
	return store.LoadDataset()
}

// initEnv opens the store, importing the json dataset first when the store is empty,
// and builds the navigation service over the stored dataset.
func initEnv() (*appEnv, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	env := &appEnv{KV: store}

	ds, err := storedDataset(store, cfg.Dataset.Path, cfg.Store.Path, zap.L())
	if err != nil {
		env.Close()
		return nil, err
	}

	env.Graph = datastructure.NewGraph(ds)
	if n := env.Graph.DanglingEdges(); n > 0 {
		zap.L().Warn("dangling neighbor references dropped", zap.Int("count", n))
	}

	env.Service, err = service.NewNavigationService(
		env.Graph,
		routingalgorithm.NewRouteAlgorithm(env.Graph),
		snapping.NewSnapper(env.Graph, cfg.Search.SnapCandidates),
		store,
		service.Options{Heuristic: cfg.Search.Strategy(), BatchWorkers: cfg.Server.BatchWorkers},
		zap.L(),
	)
	if err != nil {
		env.Close()
		return nil, err
	}
	return env, nil
}
