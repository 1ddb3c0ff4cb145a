package shell_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/AgnesBressan/AirRouteAM/pkg/datastructure"
	"github.com/AgnesBressan/AirRouteAM/pkg/server"
	"github.com/AgnesBressan/AirRouteAM/pkg/service"
	"github.com/AgnesBressan/AirRouteAM/pkg/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	start          string
	commercialOnly bool
}

type fakeService struct {
	calls []call
}

func (f *fakeService) NearestAirport(ctx context.Context, start string, commercialOnly bool) (service.Route, error) {
	f.calls = append(f.calls, call{start, commercialOnly})
	switch start {
	case "Manaus":
		return service.Route{
			Start:      "Manaus",
			Path:       []string{"Manaus"},
			DistanceKm: 0,
			Airport:    datastructure.Airport{Name: "Eduardo Gomes", IATA: "MAO"},
			ElapsedMs:  0.0123,
		}, nil
	case "Iranduba":
		return service.Route{
			Start:      "Iranduba",
			Path:       []string{"Iranduba", "Manaus", "Autazes"},
			DistanceKm: 140.256,
			Airport:    datastructure.Airport{Name: "Aerodromo de Autazes"},
			ElapsedMs:  0.5,
		}, nil
	case "Tefe":
		qerr := &service.QueryError{Kind: service.KindNoGoalReachable, Node: "Tefe", ElapsedMs: 2.25}
		return service.Route{}, server.WrapErrorf(qerr, server.ErrUnprocessable, "no airport")
	case "Coari":
		return service.Route{}, &service.QueryError{Kind: service.KindMissingCoordinate, Node: "Codajas", ElapsedMs: 1}
	default:
		return service.Route{}, &service.QueryError{Kind: service.KindUnknownStart, Node: start}
	}
}

func run(t *testing.T, input string) (string, *fakeService) {
	t.Helper()
	svc := &fakeService{}
	var out bytes.Buffer
	require.NoError(t, shell.NewShell(svc, strings.NewReader(input), &out).Run(context.Background()))
	return out.String(), svc
}

func TestShellSuccess(t *testing.T) {
	out, svc := run(t, "s\n  Manaus  \nn\n")

	require.Equal(t, []call{{"Manaus", true}}, svc.calls)
	assert.Contains(t, out, "Rota a partir de: Manaus")
	assert.Contains(t, out, "• Aeroporto mais próximo: Eduardo Gomes (Código IATA: MAO)")
	assert.Contains(t, out, "• Caminho completo: Manaus\n")
	assert.Contains(t, out, "• Distância total: 0 km")
	assert.Contains(t, out, "• Tempo de busca: 0.0123 ms")
}

func TestShellRepromptsFilter(t *testing.T) {
	out, svc := run(t, "talvez\nX\nN\nIranduba\nn\n")

	require.Equal(t, []call{{"Iranduba", false}}, svc.calls)
	assert.Equal(t, 3, strings.Count(out, "Deseja consultar apenas aeroportos comerciais? (s/n): "))
	assert.Contains(t, out, "(Código IATA: N/A)")
	assert.Contains(t, out, "Iranduba → Manaus → Autazes")
	assert.Contains(t, out, "• Distância total: 140.26 km")
}

func TestShellErrors(t *testing.T) {
	out, svc := run(t, "s\nAtlantida\nn\nTefe\ns\nCoari\n")

	require.Len(t, svc.calls, 3)
	assert.Contains(t, out, "Erro: Cidade não encontrada\nTempo de busca: 0.0000 ms")
	assert.Contains(t, out, "Erro: Nenhum aeroporto alcançável\nTempo de busca: 2.2500 ms")
	assert.Contains(t, out, "Erro: Coordenadas ausentes para Codajas")
	assert.NotContains(t, out, "Deseja consultar outra cidade?", "errors go straight back to the filter prompt")
}

func TestShellContinues(t *testing.T) {
	_, svc := run(t, "s\nManaus\nS\nn\nManaus\nn\n")
	assert.Equal(t, []call{{"Manaus", true}, {"Manaus", false}}, svc.calls)
}

func TestShellEndOfInput(t *testing.T) {
	_, svc := run(t, "")
	assert.Empty(t, svc.calls)

	_, svc = run(t, "s\n")
	assert.Empty(t, svc.calls)
}
