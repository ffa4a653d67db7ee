package commands

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage configuration snapshots",
	Long: `Manage snapshots of target configuration files.

Sync backs up each file it overwrites automatically. This command group
additionally creates, lists, restores, and prunes full snapshots of a
target's configuration.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
