package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"requirement-monitor/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile files command
	dryRunFiles bool
	everyFiles  time.Duration
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile requirement file records with the storage tree",
}

// filesReconcileCmd runs the file reconciliation job.
var filesReconcileCmd = &cobra.Command{
	Use:   "files",
	Short: "Diff the storage tree against the last snapshot and update file records",
	Long: `Enumerate the monitored root, compare it with the previous snapshot and
reconcile the requirement_files table: added entries relocate the record with
the same inode, removed entries delete the record at that path. The full
enumeration then replaces the snapshot.

Examples:
  # One pass
  reconcile files

  # Show what would change without touching records or the snapshot
  reconcile files --dry-run

  # Keep running every 30 seconds until interrupted
  reconcile files --every 30s`,
	RunE: runFilesReconcile,
}

func init() {
	reconcileCmd.AddCommand(filesReconcileCmd)

	filesReconcileCmd.Flags().BoolVar(&dryRunFiles, "dry-run", false, "Plan only: no record changes and no snapshot write")
	filesReconcileCmd.Flags().DurationVar(&everyFiles, "every", 0, "Repeat at this interval until interrupted (defaults to monitor.interval_seconds)")

	RootCmd.AddCommand(reconcileCmd)
}

func runFilesReconcile(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, l, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer l.Sync()

	db, err := connectDatabase(cfg)
	if err != nil {
		return err
	}

	snaps, _, err := openSnapshots(cfg)
	if err != nil {
		return err
	}

	every := everyFiles
	if !cmd.Flags().Changed("every") {
		every = cfg.Monitor.Interval()
	}

	l.Info("Starting file reconciliation",
		zap.String("root", cfg.Monitor.Root),
		zap.String("snapshot", snaps.Location()),
		zap.Bool("dry_run", dryRunFiles),
		zap.Duration("every", every),
	)

	runner := reconcile.NewRunner(newReconciler(cfg, db, snaps, l), l)
	if err := runner.Loop(ctx, every, reconcile.ApplyOptions{DryRun: dryRunFiles}); err != nil {
		return err
	}

	if report, _ := runner.Last(); report != nil {
		printRunReport(l, report)
	}
	return nil
}

// printRunReport logs the planned or applied actions of a run.
func printRunReport(l *zap.Logger, report *reconcile.RunReport) {
	if report.DryRun {
		l.Info("Dry-run mode: No changes were made.",
			zap.Int("relocate_actions", report.Relocated),
			zap.Int("delete_actions", report.Deleted),
		)
	}

	// Show a sample of the errors (max 5)
	maxShow := 5
	if len(report.Errors) < maxShow {
		maxShow = len(report.Errors)
	}
	for i := 0; i < maxShow; i++ {
		l.Warn("Entry failed", zap.String("error", report.Errors[i]))
	}
	if len(report.Errors) > maxShow {
		l.Warn("Additional errors not shown", zap.Int("count", len(report.Errors)-maxShow))
	}
}
