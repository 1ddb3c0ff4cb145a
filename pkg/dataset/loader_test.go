package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AgnesBressan/AirRouteAM/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const amazonas = `{
  "municipios": {
    "Manaus": {
      "coordenadas": {"lat": -3.119, "lon": -60.0217},
      "vizinhos": {"Iranduba": {"distancia_km": 27.5}, "Atlantida": {"distancia_km": 5}},
      "aeroporto": {"nome": "Aeroporto Internacional Eduardo Gomes", "iata": "MAO", "comercial": true}
    },
    "Iranduba": {
      "coordenadas": {"lat": -3.2847, "lon": -60.1861},
      "vizinhos": {"Manaus": {"distancia_km": 27.5}}
    },
    "Borba": {
      "aeroporto": {"nome": "Aeródromo de Borba", "comercial": false}
    }
  }
}`

func newLoader() (*dataset.Loader, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return dataset.NewLoader(zap.New(core)), logs
}

func TestParse(t *testing.T) {
	l, logs := newLoader()
	ds, err := l.Parse([]byte(amazonas))
	require.NoError(t, err)

	require.Len(t, ds.Municipalities, 3)
	manaus := ds.Municipalities["Manaus"]
	require.NotNil(t, manaus.Airport)
	assert.Equal(t, "MAO", manaus.Airport.IATA)
	assert.True(t, manaus.Airport.IsCommercial())
	assert.Equal(t, 27.5, manaus.Neighbors["Iranduba"].DistanceKm)
	assert.Nil(t, ds.Municipalities["Borba"].Coordinates)
	assert.False(t, ds.Municipalities["Borba"].Airport.IsCommercial())

	assert.Equal(t, 1, dataset.DanglingReferences(ds))
	assert.Equal(t, 2, dataset.CountAirports(ds))

	warns := logs.FilterLevelExact(zap.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Equal(t, int64(1), warns[0].ContextMap()["dangling"])
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		msg     string
	}{
		{
			name:    "missing municipios",
			doc:     `{"cidades": {}}`,
			wantErr: dataset.ErrMissingMunicipalities,
		},
		{
			name:    "negative distance",
			doc:     `{"municipios": {"A": {"vizinhos": {"B": {"distancia_km": -1}}}, "B": {}}}`,
			wantErr: dataset.ErrInvalidDataset,
			msg:     "municipios[A].vizinhos[B].distancia_km",
		},
		{
			name:    "latitude out of range",
			doc:     `{"municipios": {"A": {"coordenadas": {"lat": 91, "lon": 0}}}}`,
			wantErr: dataset.ErrInvalidDataset,
			msg:     "municipios[A].coordenadas.lat",
		},
		{
			name:    "longitude out of range",
			doc:     `{"municipios": {"A": {"coordenadas": {"lat": 0, "lon": -181}}}}`,
			wantErr: dataset.ErrInvalidDataset,
			msg:     "municipios[A].coordenadas.lon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newLoader()
			_, err := l.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		l, _ := newLoader()
		_, err := l.Parse([]byte(`{"municipios": `))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(amazonas), 0o644))

	l, logs := newLoader()
	ds, err := l.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, ds.Municipalities, 3)
	assert.Equal(t, 1, logs.FilterMessage("dataset loaded").Len())

	_, err = l.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
