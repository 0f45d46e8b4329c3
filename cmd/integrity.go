package cmd

import (
	"context"
	"fmt"
	"sort"

	"workforce-manager/core/storage"
	"workforce-manager/feature/integrity"
	"workforce-manager/feature/integrity/checks"
	"workforce-manager/feature/timesheet/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd runs every check.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema and archive storage",
	Long:  `Compares the live database with the timesheet models and checks that the change-log archive bucket exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check and fix the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and create the archive bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, storageCmd)

	schemaCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate missing tables and columns")
	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when missing")
}

func runIntegrityChecks(ctx context.Context, runSchema, runStorage bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	logg := rt.logger
	defer func() { _ = logg.Sync() }()

	// The bucket is not created here so a missing one can be reported
	var client storage.Client
	if rt.cfg.Storage.Enabled {
		if client, err = storage.NewClient(rt.cfg.Storage); err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	svc := integrity.NewService(rt.db, models.Models(), client, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region, logg)

	if runSchema {
		logg.Info("Checking database schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		logSchemaReport(logg, report)

		if !report.Matched {
			if fixFlag {
				logg.Info("Migrating schema...")
				if err := svc.FixSchema(); err != nil {
					return err
				}
				logg.Info("Schema fixed successfully.")
			} else {
				logg.Info("Run 'integrity schema --fix' to migrate missing tables and columns.")
			}
		}
	}

	if runStorage {
		logg.Info("Checking archive storage...")
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			return fmt.Errorf("storage check failed: %w", err)
		}
		switch report.Status {
		case "disabled":
			logg.Info("Archive storage is disabled.")
		case "ok":
			logg.Info("Archive bucket exists.", zap.String("bucket", report.Bucket))
		case "missing":
			logg.Warn("Archive bucket is missing", zap.String("bucket", report.Bucket))
			if fixFlag {
				if err := svc.FixStorage(ctx); err != nil {
					return err
				}
				logg.Info("Archive bucket created.", zap.String("bucket", report.Bucket))
			} else {
				logg.Info("Run 'integrity storage --fix' to create it.")
			}
		}
	}
	return nil
}

func logSchemaReport(logg *zap.Logger, report *checks.SchemaReport) {
	if report.Matched {
		logg.Info("Database schema matches the models.", zap.Int("tables", len(report.Tables)))
		return
	}

	logg.Warn("Database schema mismatches found")
	tables := make([]string, 0, len(report.Tables))
	for name := range report.Tables {
		tables = append(tables, name)
	}
	sort.Strings(tables)
	for _, table := range tables {
		tbl := report.Tables[table]
		if tbl.Status == "ok" {
			continue
		}
		if len(tbl.MissingColumns) > 0 {
			logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
		}
		if len(tbl.TypeMismatches) > 0 {
			logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
		}
	}
	for _, e := range report.Errors {
		logg.Error("Inspection Error", zap.String("error", e))
	}
}
