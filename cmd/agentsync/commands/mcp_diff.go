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

var mcpDiffShowPreview bool

func init() {
	mcpDiffCmd.Flags().BoolVar(&mcpDiffShowPreview, "full", false,
		"print the full merged document per target")
	mcpCmd.AddCommand(mcpDiffCmd)
}

var mcpDiffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show what a sync would add",
	Long: `Show, per target, the server names a sync would add to its
configuration. Nothing is written.

With --full the complete merged document is printed for each target,
showing exactly what a sync would leave on disk.`,
	Example: `  # Show pending additions for all targets
  agentsync mcp diff

  # Show the full merged document for VS Code
  agentsync mcp diff --target vscode --full`,
	RunE: runMCPDiff,
}

func runMCPDiff(cmd *cobra.Command, _ []string) error {
	return runMCPDiffWithWriter(cmd, os.Stdout)
}

func runMCPDiffWithWriter(cmd *cobra.Command, w io.Writer) error {
	targets, err := resolveTargets()
	if err != nil {
		return err
	}

	s := syncer.New(cfg.MCPPath(),
		syncer.WithLogger(logging.FromContext(cmd.Context())))

	var errs []error
	for _, t := range targets {
		result, err := s.Diff(t)
		if err != nil {
			if errors.Is(err, errors.ErrSourceMissing) {
				return errors.NewUserError(err,
					"check the source directory (--source or config.yaml)")
			}
			errs = append(errs, errors.Wrapf(err, "target %s", t.Name()))
			continue
		}

		if len(result.Added) == 0 {
			fmt.Fprintf(w, "%s%s: up to date%s\n", colorGray, result.Target, colorReset)
		} else {
			fmt.Fprintf(w, "%s%s: would add %s%s\n",
				colorCyan, result.Target, strings.Join(result.Added, ", "), colorReset)
		}

		if mcpDiffShowPreview {
			fmt.Fprintf(w, "%s--- %s ---%s\n", colorBold, result.Path, colorReset)
			_, _ = w.Write(result.Preview)
		}
	}

	if len(errs) > 0 {
		return errors.NewSystemError(errors.Join(errs...), "one or more targets failed")
	}
	return nil
}
