package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/internal/backup"
	"github.com/thoreinstein/agentsync/internal/errors"
)

var backupPruneKeep int

func init() {
	backupPruneCmd.Flags().IntVar(&backupPruneKeep, "keep", 0,
		"number of snapshots to keep (default: configured retention)")
	backupCmd.AddCommand(backupPruneCmd)
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old snapshots",
	Long: `Remove snapshots beyond the retention count, keeping the newest.

The count comes from backup.retention in the config file unless
overridden with --keep.`,
	Example: `  # Prune using the configured retention
  agentsync backup prune

  # Keep only the two newest snapshots per target
  agentsync backup prune --keep 2`,
	RunE: runBackupPrune,
}

func runBackupPrune(_ *cobra.Command, _ []string) error {
	return runBackupPruneWithWriter(os.Stdout)
}

func runBackupPruneWithWriter(w io.Writer) error {
	targets, err := resolveTargets()
	if err != nil {
		return err
	}

	mgr := backup.NewManager(backup.WithRetention(cfg.Backup.Retention))
	keep := backupPruneKeep
	if keep <= 0 {
		keep = mgr.Retention()
	}

	for _, t := range targets {
		if err := mgr.Prune(t.Name(), keep); err != nil {
			return errors.Wrapf(err, "pruning snapshots for %s", t.Name())
		}
		fmt.Fprintf(w, "%s✓ %s: pruned to %d snapshots%s\n",
			colorGreen, t.DisplayName(), keep, colorReset)
	}

	return nil
}
