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
	backupCmd.AddCommand(backupCreateCmd)
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a snapshot of target configurations",
	Long: `Create a snapshot of each target's configuration file and skill
directory.

Sync already backs up individual files before overwriting them. This
command captures a full snapshot on demand, for example before a big
reorganization.`,
	Example: `  # Snapshot all configured targets
  agentsync backup create

  # Snapshot Claude Code only
  agentsync backup create --target claude

  See Also:
    agentsync backup list    - List snapshots
    agentsync backup restore - Restore a snapshot`,
	RunE: runBackupCreate,
}

func runBackupCreate(_ *cobra.Command, _ []string) error {
	return runBackupCreateWithWriter(os.Stdout)
}

func runBackupCreateWithWriter(w io.Writer) error {
	targets, err := resolveTargets()
	if err != nil {
		return err
	}

	mgr := backup.NewManager(backup.WithRetention(cfg.Backup.Retention))
	created := 0

	for _, t := range targets {
		srcPaths := []string{t.MCPConfigPath()}
		if dir := t.SkillDir(); dir != "" {
			srcPaths = append(srcPaths, dir)
		}

		manifest, err := mgr.Snapshot(t.Name(), srcPaths)
		if err != nil {
			if errors.Is(err, backup.ErrNothingToSnapshot) {
				fmt.Fprintf(w, "%s%s: nothing to snapshot%s\n",
					colorYellow, t.DisplayName(), colorReset)
				continue
			}
			return errors.Wrapf(err, "snapshotting %s", t.Name())
		}

		fmt.Fprintf(w, "%s✓ %s: created snapshot %s (%d files)%s\n",
			colorGreen, t.DisplayName(), manifest.ID, len(manifest.Files), colorReset)
		created++
	}

	if created == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No snapshots created. Configurations may not exist yet.")
	}

	return nil
}
