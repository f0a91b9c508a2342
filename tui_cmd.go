package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Drodd/2dBakery/pkg/app"
	"github.com/Drodd/2dBakery/pkg/logging"
	"github.com/Drodd/2dBakery/pkg/tui"
)

var flagTickRate int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play the same level in the terminal.

Controls:
  Arrows/WASD - Move
  R           - Restart
  Q/Esc       - Quit

Terminals do not report key releases, so a direction stays held for a short
moment after the last key repeat.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 日志会破坏全屏画面
		logging.Setup(io.Discard, flagVerbose)

		cfg, err := app.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		return tui.Run(cfg, tui.Options{TickRate: flagTickRate})
	},
}

func init() {
	tuiCmd.Flags().IntVar(&flagTickRate, "fps", tui.DefaultTickRate, "Simulation ticks per second")
}
