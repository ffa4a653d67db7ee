package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/logging"
	syncer "github.com/thoreinstein/agentsync/internal/sync"
)

var mcpSyncDryRun bool

func init() {
	mcpSyncCmd.Flags().BoolVar(&mcpSyncDryRun, "dry-run", false,
		"show what would change without writing")
	mcpCmd.AddCommand(mcpSyncCmd)
}

var mcpSyncCmd = &cobra.Command{
	Use:   "sync [server]",
	Short: "Merge source MCP servers into target configurations",
	Long: `Merge MCP server definitions from the source repository into each
target tool's configuration file.

For every target, source entries are converted to the target's schema
and merged into its existing configuration. Entries the target already
has always win; sync only adds missing servers. The previous file is
backed up before every write. Pass a server name to sync just that one
server.

Targets are synced independently: a failure in one does not stop the
others, and the command exits non-zero if any target failed.`,
	Example: `  # Sync all configured targets
  agentsync mcp sync

  # Preview without writing
  agentsync mcp sync --dry-run

  # Sync one server to a single target
  agentsync mcp sync atlassian --target vscode`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMCPSync,
}

func runMCPSync(cmd *cobra.Command, args []string) error {
	return runMCPSyncWithWriter(cmd, args, os.Stdout)
}

func runMCPSyncWithWriter(cmd *cobra.Command, args []string, w io.Writer) error {
	targets, err := resolveTargets()
	if err != nil {
		return err
	}

	opts := syncer.Options{DryRun: mcpSyncDryRun}
	if len(args) > 0 {
		opts.Only = args[0]
	}

	s := syncer.New(cfg.MCPPath(),
		syncer.WithLogger(logging.FromContext(cmd.Context())))

	results, syncErr := s.Sync(targets, opts)

	for _, r := range results {
		if len(r.Added) == 0 {
			fmt.Fprintf(w, "%s%s: up to date%s\n", colorGray, r.Target, colorReset)
			continue
		}
		verb := "added"
		if mcpSyncDryRun {
			verb = "would add"
		}
		fmt.Fprintf(w, "%s✓ %s: %s %s%s\n",
			colorGreen, r.Target, verb, strings.Join(r.Added, ", "), colorReset)
	}

	if syncErr != nil {
		if errors.Is(syncErr, errors.ErrSourceMissing) {
			return errors.NewUserError(syncErr,
				"check the source directory (--source or config.yaml)")
		}
		if errors.Is(syncErr, errors.ErrUnknownServer) {
			return errors.NewUserError(syncErr, "run 'agentsync mcp diff' to see source servers")
		}
		return errors.NewSystemError(syncErr, "one or more targets failed to sync")
	}
	return nil
}
