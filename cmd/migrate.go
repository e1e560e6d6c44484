package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"shrinkr/internal/config"
	"shrinkr/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if cfg.StorageDriver != config.StorageDriverPostgres {
			return errors.New("migrations only apply to the postgres storage driver")
		}

		db, err := database.NewConnection(cmd.Context(), cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		return database.RunMigrations(db, logger)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
