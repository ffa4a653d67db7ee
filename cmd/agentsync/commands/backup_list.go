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
	backupCmd.AddCommand(backupListCmd)
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available snapshots",
	Long: `List snapshots per target, newest first, with their ID, creation
time, and file count. Snapshot IDs are passed to 'backup restore'.`,
	Example: `  # List snapshots for all targets
  agentsync backup list

  # List snapshots for Claude Code
  agentsync backup list --target claude`,
	RunE: runBackupList,
}

func runBackupList(_ *cobra.Command, _ []string) error {
	return runBackupListWithWriter(os.Stdout)
}

func runBackupListWithWriter(w io.Writer) error {
	targets, err := resolveTargets()
	if err != nil {
		return err
	}

	mgr := backup.NewManager()

	for _, t := range targets {
		manifests, err := mgr.List(t.Name())
		if err != nil {
			if errors.Is(err, backup.ErrNoSnapshots) {
				fmt.Fprintf(w, "%s%s: no snapshots%s\n", colorGray, t.DisplayName(), colorReset)
				continue
			}
			return errors.Wrapf(err, "listing snapshots for %s", t.Name())
		}

		fmt.Fprintf(w, "%s%s:%s\n", colorCyan+colorBold, t.DisplayName(), colorReset)
		for _, m := range manifests {
			fmt.Fprintf(w, "  %s%s%s  %s  %d files\n",
				colorGreen, m.ID, colorReset,
				m.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				len(m.Files))
		}
	}

	return nil
}
