// Package dataset reads the municipality graph from its JSON document.
//
// The document has a single top-level key, "municipios", mapping each municipality
// name to its record:
//
//	{"municipios": {"Manaus": {
//	    "coordenadas": {"lat": -3.119, "lon": -60.0217},
//	    "vizinhos": {"Iranduba": {"distancia_km": 27.5}},
//	    "aeroporto": {"nome": "Eduardo Gomes", "iata": "MAO", "comercial": true}}}}
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/AgnesBressan/AirRouteAM/pkg/datastructure"
	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

var (
	ErrMissingMunicipalities = errors.New(`dataset has no "municipios" key`)
	ErrInvalidDataset        = errors.New("invalid dataset")
)

type Loader struct {
	validate *validator.Validate
	log      *zap.Logger
}

func NewLoader(log *zap.Logger) *Loader {
	validate := validator.New()
	// report json names, so errors read municipios[Manaus].vizinhos[Iranduba].distancia_km
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Loader{validate: validate, log: log.With(zap.String("component", "dataset"))}
}

// LoadFile reads and validates the dataset at path.
func (l *Loader) LoadFile(path string) (*datastructure.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: read %s", path)
	}
	ds, err := l.Parse(raw)
	if err != nil {
		return nil, err
	}
	l.log.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("municipalities", len(ds.Municipalities)),
		zap.Int("airports", CountAirports(ds)),
	)
	return ds, nil
}

// Parse decodes and validates a dataset document. Neighbor references to names that are
// not municipalities are accepted and only logged.
func (l *Loader) Parse(raw []byte) (*datastructure.Dataset, error) {
	ds := &datastructure.Dataset{}
	if err := json.Unmarshal(raw, ds); err != nil {
		return nil, eris.Wrap(err, "dataset: decode json")
	}
	if err := l.Validate(ds); err != nil {
		return nil, err
	}
	if dangling := DanglingReferences(ds); dangling > 0 {
		l.log.Warn("neighbor references to unknown municipalities are ignored", zap.Int("dangling", dangling))
	}
	return ds, nil
}

func (l *Loader) Validate(ds *datastructure.Dataset) error {
	if ds == nil || ds.Municipalities == nil {
		return ErrMissingMunicipalities
	}
	err := l.validate.Struct(ds)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return eris.Wrap(err, "dataset: validate")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidDataset, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "gte", "lte":
		return fmt.Sprintf("%s = %v violates %s=%s", field, fe.Value(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s fails %s", field, fe.Tag())
	}
}

// DanglingReferences counts neighbor entries naming a municipality absent from ds.
func DanglingReferences(ds *datastructure.Dataset) int {
	n := 0
	for _, rec := range ds.Municipalities {
		for nb := range rec.Neighbors {
			if _, ok := ds.Municipalities[nb]; !ok {
				n++
			}
		}
	}
	return n
}

func CountAirports(ds *datastructure.Dataset) int {
	n := 0
	for _, rec := range ds.Municipalities {
		if rec.Airport != nil {
			n++
		}
	}
	return n
}
