package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/internal/backup"
	"github.com/thoreinstein/agentsync/internal/errors"
)

func init() {
	backupCmd.AddCommand(backupRestoreCmd)
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <snapshot-id>",
	Short: "Restore a snapshot",
	Long: `Restore the files of a snapshot to their original locations.

Exactly one target must be selected with --target. Every file is
verified against its recorded SHA256 hash before anything is written;
a corrupted snapshot aborts the restore.`,
	Example: `  # Restore a Claude Code snapshot
  agentsync backup restore 20260123T100712 --target claude`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupRestore,
}

func runBackupRestore(_ *cobra.Command, args []string) error {
	return runBackupRestoreWithWriter(args[0], os.Stdout)
}

func runBackupRestoreWithWriter(id string, w io.Writer) error {
	names := GetTargetFlag()
	if len(names) != 1 {
		return errors.NewUserError(
			errors.New("restore needs exactly one target"),
			"pass --target claude or --target vscode")
	}

	registry, err := buildRegistry()
	if err != nil {
		return err
	}
	t, err := registry.Get(names[0])
	if err != nil {
		return err
	}

	mgr := backup.NewManager()
	if err := mgr.Restore(t.Name(), id); err != nil {
		if errors.Is(err, backup.ErrNoSnapshots) {
			return errors.NewUserError(err, "run 'agentsync backup list' to see snapshots")
		}
		return errors.Wrapf(err, "restoring snapshot %s", id)
	}

	fmt.Fprintf(w, "%s✓ %s: restored snapshot %s%s\n",
		colorGreen, t.DisplayName(), id, colorReset)
	return nil
}
