// Package commands implements the CLI commands for agentsync.
package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/internal/config"
	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/logging"
	"github.com/thoreinstein/agentsync/internal/paths"
)

// targetFlag holds the value of the --target flag.
var targetFlag []string

// sourceFlag overrides the configured source repository directory.
var sourceFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfg is the loaded configuration; configLoadErr holds any load error.
var (
	cfg           *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringSliceVarP(&targetFlag, "target", "t", nil,
		`target tool(s): claude, vscode (default: all configured)`)
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "",
		"source repository directory (overrides config)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("agentsync version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
	if cfg == nil {
		cfg = config.Default()
	}
	if sourceFlag != "" {
		cfg.Source.Dir = sourceFlag
	}
}

var rootCmd = &cobra.Command{
	Use:   "agentsync",
	Short: "Sync MCP servers and skills from one source of truth",
	Long: `agentsync distributes MCP server definitions and skills from a
source-of-truth repository into the configuration of each AI coding
tool you use, currently Claude Code and VS Code.

Server entries are merged into each tool's existing configuration:
entries you already have always win, sync only adds what is missing.
Skills are copied as directories, skipping any skill you have changed
locally unless you force a replace.

Use the --target flag to sync specific tools, or omit it to sync all
configured targets.`,
	Example: `  # Sync MCP servers to every configured tool
  agentsync mcp sync

  # Preview what a sync would add
  agentsync mcp diff

  # Sync skills to Claude Code only
  agentsync skill sync --target claude

  See Also: agentsync status, agentsync backup`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return validateTargetFlag(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("AGENTSYNC_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// validateTargetFlag checks that all specified targets are valid.
func validateTargetFlag(cmd *cobra.Command, _ []string) error {
	// Skip validation for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewUserError(configLoadErr, "check ~/.config/agentsync/config.yaml")
	}

	// No targets specified means all configured targets.
	if len(targetFlag) == 0 {
		return nil
	}

	var invalid []string
	for _, t := range targetFlag {
		if !paths.ValidTarget(t) {
			invalid = append(invalid, t)
		}
	}

	if len(invalid) > 0 {
		err := errors.Newf("invalid target(s): %s (valid: %s)",
			strings.Join(invalid, ", "),
			strings.Join(paths.Targets(), ", "))
		return errors.NewUserError(err, "Run 'agentsync --help' to see valid targets")
	}

	return nil
}

// GetTargetFlag returns the current value of the --target flag.
// This is used by subcommands to access the flag value.
func GetTargetFlag() []string {
	return targetFlag
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
