package main

import (
	"errors"
	"fmt"

	"github.com/AgnesBressan/AirRouteAM/pkg/service"
	"github.com/AgnesBressan/AirRouteAM/pkg/shell"
	"github.com/spf13/cobra"
)

var queryCommercial bool

var queryCmd = &cobra.Command{
	Use:   "query <city>",
	Short: "Nearest airport from one municipality",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		route, err := env.Service.NearestAirport(cmd.Context(), args[0], queryCommercial)
		if err != nil {
			var qerr *service.QueryError
			if errors.As(err, &qerr) {
				fmt.Printf("\nErro: %s\nTempo de busca: %.4f ms\n", shell.Message(qerr), qerr.ElapsedMs)
			}
			return err
		}
		fmt.Print(shell.FormatRoute(args[0], route))
		return nil
	},
}

func init() {
	queryCmd.Flags().BoolVar(&queryCommercial, "commercial", false, "only commercial airports")
}
