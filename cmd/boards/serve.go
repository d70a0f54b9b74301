package main

import (
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-boards/internal/app"
	"github.com/vancomm/minesweeper-boards/internal/config"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the boards HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewApp()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		log.WithField("development", config.Development()).Info("starting up")
		return app.New(log, migrations).Start(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", config.DefaultPort, "Port to listen on (overrides APP_PORT)")
}
