package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/internal/logging"
	syncer "github.com/thoreinstein/agentsync/internal/sync"
	"github.com/thoreinstein/agentsync/internal/target"
)

var statusJSON bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status per target",
	Long: `Show, for each target, whether the tool appears installed and which
source servers a sync would still add.

A target counts as installed when its configuration file or the file's
parent directory exists.`,
	Example: `  # Show status for all targets
  agentsync status

  # JSON output for scripting
  agentsync status --json`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	return runStatusWithWriter(cmd, os.Stdout)
}

// targetStatus holds the collected status for a single target.
type targetStatus struct {
	Name      string   `json:"name"`
	Installed bool     `json:"installed"`
	Config    string   `json:"config"`
	Pending   []string `json:"pending,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func runStatusWithWriter(cmd *cobra.Command, w io.Writer) error {
	targets, err := resolveTargets()
	if err != nil {
		return err
	}

	s := syncer.New(cfg.MCPPath(),
		syncer.WithLogger(logging.FromContext(cmd.Context())))

	statuses := make([]targetStatus, 0, len(targets))
	for _, t := range targets {
		detection := target.Detect(t)
		status := targetStatus{
			Name:      t.Name(),
			Installed: detection.Status == target.StatusInstalled,
			Config:    detection.MCPConfig,
		}

		if status.Installed {
			result, err := s.Diff(t)
			if err != nil {
				status.Error = err.Error()
			} else {
				status.Pending = result.Added
			}
		}
		statuses = append(statuses, status)
	}

	if statusJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	fmt.Fprintf(w, "agentsync version %s\n", Version)
	for _, status := range statuses {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%sTarget: %s%s", colorCyan+colorBold, status.Name, colorReset)
		if !status.Installed {
			fmt.Fprintf(w, " %s(not installed)%s\n", colorGray, colorReset)
			continue
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "  Config: %s\n", status.Config)
		switch {
		case status.Error != "":
			fmt.Fprintf(w, "  %sPending: error - %s%s\n", colorYellow, status.Error, colorReset)
		case len(status.Pending) == 0:
			fmt.Fprintf(w, "  Pending: %s(none)%s\n", colorGray, colorReset)
		default:
			fmt.Fprintf(w, "  Pending: %s\n", strings.Join(status.Pending, ", "))
		}
	}
	return nil
}
