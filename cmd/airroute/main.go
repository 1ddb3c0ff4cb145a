package main

import (
	"fmt"
	"os"

	"github.com/AgnesBressan/AirRouteAM/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "airroute",
	Short: "Nearest airport search over the Amazonas municipality graph",
	Long:  "Finds the nearest reachable airport from a municipality with A* over the road graph, as an interactive shell, a one-shot query or an HTTP API.",
	// query outcomes such as an unknown city are reported by the command itself
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		if datasetPath != "" {
			cfg.Dataset.Path = datasetPath
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

var datasetPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "municipality dataset json (overrides dataset.path); read by preprocess, or by other commands only while the store is empty")
	rootCmd.AddCommand(preprocessCmd, serveCmd, shellCmd, queryCmd)
}

//	@title			AirRouteAM API
//	@version		1.0
//	@description	nearest reachable airport search over the Amazonas municipality road graph (A* with a great-circle heuristic)

//	@contact.name	Agnes Bressan

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
