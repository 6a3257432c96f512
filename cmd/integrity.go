package cmd

import (
	"context"
	"fmt"

	"requirement-monitor/core/config"
	"requirement-monitor/feature/integrity"
	"requirement-monitor/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the monitor's storage, snapshot and schema",
	Long:  `Checks that the storage tree exists, the snapshot is loadable (and its bucket exists for the s3 backend) and the requirement_files table matches the model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// treeCmd represents the integrity tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Check and fix the storage directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// snapshotCheckCmd represents the integrity snapshot command
var snapshotCheckCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Check and fix the snapshot and its bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check and migrate the requirement_files schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(treeCmd, snapshotCheckCmd, schemaCmd)

	integrityCmd.PersistentFlags().BoolVar(&fixFlag, "fix", false, "Fix what the checks report")
}

func runIntegrityChecks(ctx context.Context, runTree, runSnapshot, runSchema bool) error {
	cfg, logg, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer logg.Sync()

	svc, err := newIntegrityService(cfg, logg, runSchema)
	if err != nil {
		return err
	}

	failed := false

	if runTree {
		logg.Info("Checking storage tree...")
		missing, err := svc.CheckTree()
		if err != nil {
			return fmt.Errorf("tree check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Storage tree is intact.")
		} else {
			logg.Warn("Missing directories detected", zap.Strings("missing", missing))
			if fixFlag {
				logg.Info("Fixing missing directories...")
				if err := svc.FixTree(missing); err != nil {
					return fmt.Errorf("failed to fix tree: %w", err)
				}
				logg.Info("Storage tree fixed successfully.")
			} else {
				logg.Info("Run with --fix to create missing directories.")
				failed = true
			}
		}
	}

	if runSnapshot {
		logg.Info("Checking snapshot...")
		result, err := svc.CheckSnapshot(ctx, fixFlag)
		if err != nil {
			return fmt.Errorf("snapshot check failed: %w", err)
		}

		fields := []zap.Field{
			zap.String("location", result.Location),
			zap.String("backend", result.Backend),
			zap.Int("entries", result.Entries),
		}
		if result.BucketExists != nil {
			fields = append(fields, zap.Bool("bucket_exists", *result.BucketExists))
		}
		if len(result.Fixed) > 0 {
			fields = append(fields, zap.Strings("fixed", result.Fixed))
		}

		switch {
		case result.BucketExists != nil && !*result.BucketExists:
			logg.Warn("Snapshot bucket is missing. Run with --fix to create it.", fields...)
			failed = true
		case result.Status != checks.SnapshotOK:
			logg.Warn("Snapshot is not loadable", append(fields, zap.String("status", result.Status), zap.String("error", result.Error))...)
			failed = true
		default:
			logg.Info("Snapshot is loadable.", fields...)
		}
	}

	if runSchema {
		logg.Info("Checking requirement_files schema...")
		report, err := svc.CheckSchema(ctx)
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		if !report.Matched && fixFlag {
			logg.Info("Migrating schema...")
			if err := svc.FixSchema(ctx); err != nil {
				return fmt.Errorf("failed to fix schema: %w", err)
			}
			if report, err = svc.CheckSchema(ctx); err != nil {
				return fmt.Errorf("schema check failed: %w", err)
			}
		}

		if report.Matched {
			logg.Info("Schema matches expected definition.", zap.String("driver", report.Driver))
		} else {
			failed = true
			logg.Warn("Schema mismatches found", zap.String("driver", report.Driver))
			for table, tblReport := range report.Tables {
				if tblReport.Status != "ok" {
					if len(tblReport.MissingColumns) > 0 {
						logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
					}
					if len(tblReport.TypeMismatches) > 0 {
						logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
					}
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if failed {
		return fmt.Errorf("integrity checks reported problems")
	}
	return nil
}

// newIntegrityService connects what the selected checks need. The database is
// only required for the schema check.
func newIntegrityService(cfg *config.Config, logg *zap.Logger, needDB bool) (*integrity.Service, error) {
	snaps, client, err := openSnapshots(cfg)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	if needDB {
		if db, err = connectDatabase(cfg); err != nil {
			return nil, err
		}
	}

	return integrity.NewService(cfg.Monitor, snaps, client, cfg.Storage, db, logg), nil
}
