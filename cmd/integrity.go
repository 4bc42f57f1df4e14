package cmd

import (
	"context"
	"fmt"

	"asset-audit/core/config"
	"asset-audit/core/database"
	"asset-audit/core/logger"
	"asset-audit/core/storage"
	"asset-audit/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the database and the report outbox",
	Long:  `Checks that the database schema matches the audit models and that the report bucket exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// outboxCmd represents the integrity outbox command
var outboxCmd = &cobra.Command{
	Use:   "outbox",
	Short: "Check and fix the report outbox bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, outboxCmd)

	outboxCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket and prefix")
}

func runIntegrityChecks(ctx context.Context, runSchema, runOutbox bool) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	// Connect to Database (Optional for the outbox check)
	var db *gorm.DB
	if runSchema {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
		}
	}

	svc := integrity.NewService(store, cfg.Storage.Bucket, cfg.Notify.Prefix, db, logg)

	if runSchema {
		logg.Info("Checking database schema...", zap.String("driver", cfg.Database.Driver))
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Database schema matches the models.")
		} else {
			logg.Warn("Database schema mismatches found")
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			logg.Info("Run 'migrate' to create the missing tables and columns.")
		}
	}

	if runOutbox {
		logg.Info("Checking report outbox...", zap.String("bucket", cfg.Storage.Bucket))
		report, err := svc.CheckOutbox(ctx)
		if err != nil {
			return fmt.Errorf("outbox check failed: %w", err)
		}

		if len(report.Missing) == 0 {
			logg.Info("Outbox is intact.")
			return nil
		}

		logg.Warn("Outbox incomplete", zap.Strings("missing", report.Missing))
		if !fixFlag {
			logg.Info("Run 'integrity outbox --fix' to create them.")
			return nil
		}

		logg.Info("Fixing outbox...")
		if err := svc.FixOutbox(ctx, report); err != nil {
			return fmt.Errorf("failed to fix outbox: %w", err)
		}
		logg.Info("Outbox fixed successfully.")
	}

	return nil
}
