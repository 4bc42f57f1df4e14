package cmd

import (
	"fmt"

	"asset-audit/core/config"
	"asset-audit/core/database"
	"asset-audit/core/logger"
	"asset-audit/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the audit tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Creates the registry, user directory and conference tables with their unique
indexes. Existing data is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		models := integrity.Models()
		if err := database.Migrate(db, models...); err != nil {
			return err
		}

		logg.Info("Schema migrated", zap.String("driver", db.Dialector.Name()), zap.Int("models", len(models)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
