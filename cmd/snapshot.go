package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"requirement-monitor/core/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	treeFlag bool
	yesReset bool
)

// snapshotCmd is the parent command for snapshot maintenance.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Inspect or reset the reconciliation snapshot",
}

// snapshotShowCmd prints the entries of the last snapshot.
var snapshotShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the last recorded snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer l.Sync()

		snaps, _, err := openSnapshots(cfg)
		if err != nil {
			return err
		}

		snap, err := snaps.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}

		out := cmd.OutOrStdout()
		if treeFlag {
			fmt.Fprint(out, snapshot.RenderTree(snap, cfg.Monitor.BaseDir))
		} else {
			for _, p := range snap {
				fmt.Fprintln(out, p)
			}
		}

		l.Info("Snapshot loaded", zap.String("location", snaps.Location()), zap.Int("entries", len(snap)))
		return nil
	},
}

// snapshotResetCmd replaces the snapshot with an empty one.
var snapshotResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the snapshot with an empty one",
	Long: `Writes an empty snapshot. The next reconciliation treats every entry as
added, which relocates records by inode and deletes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer l.Sync()

		snaps, _, err := openSnapshots(cfg)
		if err != nil {
			return err
		}

		if !confirmReset(snaps.Location()) {
			l.Warn("Operation cancelled. No changes were made.")
			return nil
		}

		if err := snaps.Save(cmd.Context(), snapshot.Snapshot{}); err != nil {
			return fmt.Errorf("failed to reset snapshot: %w", err)
		}
		l.Info("Snapshot reset", zap.String("location", snaps.Location()))
		return nil
	},
}

func init() {
	snapshotShowCmd.Flags().BoolVar(&treeFlag, "tree", false, "Render the entries as a tree")
	snapshotResetCmd.Flags().BoolVar(&yesReset, "yes", false, "Auto-confirm (required when stdin is not a terminal)")

	snapshotCmd.AddCommand(snapshotShowCmd, snapshotResetCmd)
	RootCmd.AddCommand(snapshotCmd)
}

// confirmReset prompts on a terminal. Without a terminal only --yes confirms.
func confirmReset(location string) bool {
	if yesReset {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("stdin is not a terminal; pass --yes to reset the snapshot")
		return false
	}

	fmt.Printf("\n⚠️  Type 'yes' to reset %s: ", location)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
