package kv

import (
	"errors"
	"io"
	"math"
	"strings"

	"github.com/AgnesBressan/AirRouteAM/pkg/concurrent"
	"github.com/AgnesBressan/AirRouteAM/pkg/datastructure"
	"github.com/AgnesBressan/AirRouteAM/pkg/geo"
	"github.com/cockroachdb/pebble"
	"github.com/k0kubun/go-ansi"
	"github.com/rotisserie/eris"
	"github.com/schollz/progressbar/v3"
	"github.com/uber/h3-go/v4"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

const (
	municipalityPrefix = "municipio/"
	airportCellPrefix  = "aeroporto_h3/"

	// resolution 5 cells are about 252 km2
	airportCellResolution = 5
	saveWorkers           = 4

	// a 250-ring disk is about 188k res 5 cells; wider searches scan every bucket
	maxSearchRings = 250
)

var ErrInvalidRadius = errors.New("kv: radius must be a finite non-negative number")

type KVDB struct {
	db  *pebble.DB
	log *zap.Logger
}

func NewKVDB(db *pebble.DB, log *zap.Logger) *KVDB {
	return &KVDB{db: db, log: log.With(zap.String("component", "kv"))}
}

func municipalityKey(name string) []byte {
	return []byte(municipalityPrefix + name)
}

func airportCellKey(cell h3.Cell) []byte {
	return []byte(airportCellPrefix + cell.String())
}

func newProgressBar(max int, description string, show bool) *progressbar.ProgressBar {
	var w io.Writer = io.Discard
	if show {
		w = ansi.NewAnsiStdout()
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// ImportDataset replaces the stored dataset: both key spaces are cleared, then every
// municipality record and the H3 airport buckets are written.
func (k *KVDB) ImportDataset(ds *datastructure.Dataset, showProgress bool) error {
	if err := k.clearPrefix(municipalityPrefix); err != nil {
		return err
	}
	if err := k.clearPrefix(airportCellPrefix); err != nil {
		return err
	}

	bar := newProgressBar(len(ds.Municipalities), "[cyan][1/2][reset] saving municipalities to pebble db...", showProgress)

	workers := concurrent.NewWorkerPool[concurrent.SaveMunicipalityJob, error](saveWorkers, len(ds.Municipalities))
	for name, rec := range ds.Municipalities {
		workers.AddJob(concurrent.SaveMunicipalityJob{Name: name, Record: rec})
	}
	workers.Close()
	workers.Start(func(job concurrent.SaveMunicipalityJob) error {
		err := k.SaveMunicipality(job)
		_ = bar.Add(1)
		return err
	})
	workers.Wait()
	if err := firstError(workers.CollectResults()); err != nil {
		return err
	}

	cells := airportCells(ds)
	bar = newProgressBar(len(cells), "[cyan][2/2][reset] saving h3 indexed airports to pebble db...", showProgress)
	cellWorkers := concurrent.NewWorkerPool[concurrent.SaveAirportCellJob, error](saveWorkers, len(cells))
	for cell, airports := range cells {
		cellWorkers.AddJob(concurrent.SaveAirportCellJob{Cell: cell, Airports: airports})
	}
	cellWorkers.Close()
	cellWorkers.Start(func(job concurrent.SaveAirportCellJob) error {
		err := k.SaveAirportCell(job)
		_ = bar.Add(1)
		return err
	})
	cellWorkers.Wait()
	if err := firstError(cellWorkers.CollectResults()); err != nil {
		return err
	}

	if err := k.db.Flush(); err != nil {
		return eris.Wrap(err, "kv: flush")
	}
	k.log.Info("dataset imported",
		zap.Int("municipalities", len(ds.Municipalities)),
		zap.Int("airport_cells", len(cells)),
	)
	return nil
}

func (k *KVDB) clearPrefix(prefix string) error {
	bounds := prefixIterOptions(prefix)
	if err := k.db.DeleteRange(bounds.LowerBound, bounds.UpperBound, pebble.Sync); err != nil {
		return eris.Wrapf(err, "kv: clear %s", prefix)
	}
	return nil
}

func firstError(results chan error) error {
	var first error
	for err := range results {
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}

// airportCells groups airports with coordinates by their H3 cell.
func airportCells(ds *datastructure.Dataset) map[string][]concurrent.AirportEntry {
	cells := make(map[string][]concurrent.AirportEntry)
	for name, rec := range ds.Municipalities {
		if rec.Airport == nil || rec.Coordinates == nil {
			continue
		}
		cell := h3.LatLngToCell(h3.NewLatLng(rec.Coordinates.Lat, rec.Coordinates.Lon), airportCellResolution)
		cells[cell.String()] = append(cells[cell.String()], concurrent.AirportEntry{
			Municipality: name,
			Name:         rec.Airport.Name,
			IATA:         rec.Airport.IATA,
			Commercial:   rec.Airport.IsCommercial(),
			Lat:          rec.Coordinates.Lat,
			Lon:          rec.Coordinates.Lon,
		})
	}
	return cells
}

func (k *KVDB) SaveMunicipality(job concurrent.SaveMunicipalityJob) error {
	val, err := CompressMunicipality(job.Record)
	if err != nil {
		return err
	}
	if err := k.db.Set(municipalityKey(job.Name), val, pebble.NoSync); err != nil {
		return eris.Wrapf(err, "kv: save municipality %s", job.Name)
	}
	return nil
}

func (k *KVDB) SaveAirportCell(job concurrent.SaveAirportCellJob) error {
	val, err := CompressAirports(job.Airports)
	if err != nil {
		return err
	}
	if err := k.db.Set([]byte(airportCellPrefix+job.Cell), val, pebble.NoSync); err != nil {
		return eris.Wrapf(err, "kv: save airport cell %s", job.Cell)
	}
	return nil
}

func (k *KVDB) GetMunicipality(name string) (datastructure.MunicipalityRecord, bool, error) {
	val, closer, err := k.db.Get(municipalityKey(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return datastructure.MunicipalityRecord{}, false, nil
	}
	if err != nil {
		return datastructure.MunicipalityRecord{}, false, eris.Wrapf(err, "kv: get municipality %s", name)
	}
	defer closer.Close()

	rec, err := LoadMunicipality(val)
	if err != nil {
		return datastructure.MunicipalityRecord{}, false, err
	}
	return rec, true, nil
}

// LoadDataset rebuilds the dataset from every stored municipality.
func (k *KVDB) LoadDataset() (*datastructure.Dataset, error) {
	iter, err := k.db.NewIter(prefixIterOptions(municipalityPrefix))
	if err != nil {
		return nil, eris.Wrap(err, "kv: new iterator")
	}
	defer iter.Close()

	ds := &datastructure.Dataset{Municipalities: make(map[string]datastructure.MunicipalityRecord)}
	for iter.First(); iter.Valid(); iter.Next() {
		name := strings.TrimPrefix(string(iter.Key()), municipalityPrefix)
		rec, err := LoadMunicipality(iter.Value())
		if err != nil {
			return nil, eris.Wrapf(err, "kv: load municipality %s", name)
		}
		ds.Municipalities[name] = rec
	}
	if err := iter.Error(); err != nil {
		return nil, eris.Wrap(err, "kv: iterate municipalities")
	}
	return ds, nil
}

func (k *KVDB) IsEmpty() (bool, error) {
	iter, err := k.db.NewIter(prefixIterOptions(municipalityPrefix))
	if err != nil {
		return false, eris.Wrap(err, "kv: new iterator")
	}
	defer iter.Close()
	return !iter.First(), iter.Error()
}

func prefixIterOptions(prefix string) *pebble.IterOptions {
	upper := []byte(prefix)
	upper[len(upper)-1]++
	return &pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: upper,
	}
}

// NearbyAirports returns airports whose great-circle distance to (lat, lon) is at most radiusKm,
// nearest first.
func (k *KVDB) NearbyAirports(lat, lon, radiusKm float64) ([]concurrent.AirportEntry, []float64, error) {
	type found struct {
		airport concurrent.AirportEntry
		dist    float64
	}

	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm < 0 {
		return nil, nil, ErrInvalidRadius
	}

	from := geo.NewLocation(lat, lon)
	hits := []found{}
	collect := func(airports []concurrent.AirportEntry) {
		for _, a := range airports {
			d := geo.HaversineDistance(from, geo.NewLocation(a.Lat, a.Lon))
			if d <= radiusKm {
				hits = append(hits, found{airport: a, dist: d})
			}
		}
	}

	cells, ok := kRingIndexesArea(lat, lon, radiusKm)
	if !ok {
		if err := k.scanAirportCells(collect); err != nil {
			return nil, nil, err
		}
	}
	for _, cell := range cells {
		val, closer, err := k.db.Get(airportCellKey(cell))
		if errors.Is(err, pebble.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, nil, eris.Wrapf(err, "kv: get airport cell %s", cell.String())
		}
		airports, err := LoadAirports(val)
		closer.Close()
		if err != nil {
			return nil, nil, err
		}
		collect(airports)
	}

	slices.SortFunc(hits, func(a, b found) int {
		switch {
		case a.dist < b.dist:
			return -1
		case a.dist > b.dist:
			return 1
		}
		return strings.Compare(a.airport.Municipality, b.airport.Municipality)
	})

	airports := make([]concurrent.AirportEntry, len(hits))
	dists := make([]float64, len(hits))
	for i, h := range hits {
		airports[i] = h.airport
		dists[i] = h.dist
	}
	return airports, dists, nil
}

// scanAirportCells reads every stored airport bucket.
func (k *KVDB) scanAirportCells(fn func([]concurrent.AirportEntry)) error {
	iter, err := k.db.NewIter(prefixIterOptions(airportCellPrefix))
	if err != nil {
		return eris.Wrap(err, "kv: new iterator")
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		airports, err := LoadAirports(iter.Value())
		if err != nil {
			return eris.Wrapf(err, "kv: load airport cell %s", iter.Key())
		}
		fn(airports)
	}
	if err := iter.Error(); err != nil {
		return eris.Wrap(err, "kv: iterate airport cells")
	}
	return nil
}

/*
*
  - https://observablehq.com/@nrabinowitz/h3-radius-lookup?collection=@nrabinowitz/h3
    grid disk around the cell of (lat, lon) containing every point within searchRadiusKm.
    A k-disk reaches at least 1.5*k edge lengths from its center, stepping one edge per ring
    leaves room for cells smaller than the origin cell. ok is false when the disk would exceed
    maxSearchRings; callers then scan every bucket.
*/
func kRingIndexesArea(lat, lon, searchRadiusKm float64) ([]h3.Cell, bool) {
	origin := h3.LatLngToCell(h3.NewLatLng(lat, lon), airportCellResolution)
	// regular hexagon: area = 3*sqrt(3)/2 * edge^2
	edge := math.Sqrt(h3.CellAreaKm2(origin) / (3 * math.Sqrt(3) / 2))

	rings := math.Ceil(searchRadiusKm/edge) + 1
	if !(rings <= maxSearchRings) {
		return nil, false
	}
	return h3.GridDisk(origin, int(rings)), true
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
