// Package shell is the interactive prompt loop of the nearest airport search.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AgnesBressan/AirRouteAM/pkg/service"
	"github.com/AgnesBressan/AirRouteAM/pkg/util"
)

type NavigationService interface {
	NearestAirport(ctx context.Context, start string, commercialOnly bool) (service.Route, error)
}

type Shell struct {
	svc NavigationService
	in  *bufio.Scanner
	out io.Writer
}

func NewShell(svc NavigationService, in io.Reader, out io.Writer) *Shell {
	return &Shell{svc: svc, in: bufio.NewScanner(in), out: out}
}

var errEOF = errors.New("end of input")

func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// Run loops until the user declines another query or input ends.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nSistema de Mapeamento de Aeroportos no Amazonas - Busca A*")
	fmt.Fprintln(s.out, strings.Repeat("-", 58))

	err := s.loop(ctx)
	if errors.Is(err, errEOF) {
		return nil
	}
	return err
}

func (s *Shell) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, err := s.prompt("\nDeseja consultar apenas aeroportos comerciais? (s/n): ")
		if err != nil {
			return err
		}
		for answer = strings.ToLower(answer); answer != "s" && answer != "n"; answer = strings.ToLower(answer) {
			if answer, err = s.prompt("\nDeseja consultar apenas aeroportos comerciais? (s/n): "); err != nil {
				return err
			}
		}

		city, err := s.prompt("\nDigite o nome da cidade de origem (exatamente como no banco de dados): ")
		if err != nil {
			return err
		}

		route, err := s.svc.NearestAirport(ctx, city, answer == "s")
		if err != nil {
			s.printError(err)
			continue
		}
		s.printRoute(city, route)

		again, err := s.prompt("\nDeseja consultar outra cidade? (s/n): ")
		if err != nil {
			return err
		}
		if strings.ToLower(again) != "s" {
			return nil
		}
	}
}

func (s *Shell) printError(err error) {
	var qerr *service.QueryError
	if !errors.As(err, &qerr) {
		fmt.Fprintf(s.out, "\nErro: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "\nErro: %s\n", Message(qerr))
	fmt.Fprintf(s.out, "Tempo de busca: %.4f ms\n", qerr.ElapsedMs)
}

// Message user facing text of a failed query.
func Message(qerr *service.QueryError) string {
	switch qerr.Kind {
	case service.KindUnknownStart:
		return "Cidade não encontrada"
	case service.KindNoGoalReachable:
		return "Nenhum aeroporto alcançável"
	case service.KindMissingCoordinate:
		return "Coordenadas ausentes para " + qerr.Node
	default:
		return qerr.Error()
	}
}

func (s *Shell) printRoute(city string, route service.Route) {
	fmt.Fprint(s.out, FormatRoute(city, route))
}

// FormatRoute success banner shared by the shell and the query command.
func FormatRoute(city string, route service.Route) string {
	iata := route.Airport.IATA
	if iata == "" {
		iata = "N/A"
	}

	var b strings.Builder
	b.WriteString("\n" + strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Rota a partir de: %s\n", city)
	b.WriteString(strings.Repeat("-", 50) + "\n")
	fmt.Fprintf(&b, "• Aeroporto mais próximo: %s (Código IATA: %s)\n", route.Airport.Name, iata)
	fmt.Fprintf(&b, "• Caminho completo: %s\n", strings.Join(route.Path, " → "))
	fmt.Fprintf(&b, "• Distância total: %v km\n", util.RoundFloat(route.DistanceKm, 2))
	fmt.Fprintf(&b, "• Tempo de busca: %.4f ms\n", route.ElapsedMs)
	b.WriteString(strings.Repeat("=", 50) + "\n")
	return b.String()
}
