package main

import (
	"os"

	"github.com/AgnesBressan/AirRouteAM/pkg/shell"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive nearest airport search",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		return shell.NewShell(env.Service, os.Stdin, os.Stdout).Run(cmd.Context())
	},
}
