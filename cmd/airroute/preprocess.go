package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Validate the json dataset and import it into the pebble store",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		ds, err := importDataset(store, cfg.Dataset.Path, true)
		if err != nil {
			return err
		}
		fmt.Println("")
		zap.L().Info("preprocess complete",
			zap.String("store", cfg.Store.Path),
			zap.Int("municipalities", len(ds.Municipalities)),
		)
		return nil
	},
}
