package cmd

import (
	"workforce-manager/core/database"
	"workforce-manager/feature/timesheet/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the timesheet tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = rt.logger.Sync() }()

		all := models.Models()
		if err := database.Migrate(rt.db, all...); err != nil {
			return err
		}
		rt.logger.Info("Schema migrated", zap.Int("models", len(all)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
