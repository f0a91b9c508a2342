package main

import (
	"github.com/spf13/cobra"

	"github.com/Drodd/2dBakery/pkg/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
