package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-boards/internal/config"
	"github.com/vancomm/minesweeper-boards/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.NewDatabase()
		if err != nil {
			return err
		}
		migrator, err := database.Migrate(db, migrations)
		if err != nil {
			return err
		}
		defer func() {
			srcErr, dbErr := migrator.Close()
			if err := errors.Join(srcErr, dbErr); err != nil {
				log.WithError(err).Warn("unable to close migrator")
			}
		}()

		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		log.WithField("version", version).WithField("dirty", dirty).Info("migration successful")
		return nil
	},
}
