package commands

import (
	"github.com/thoreinstein/agentsync/cmd"
	"github.com/thoreinstein/agentsync/internal/target"
	"github.com/thoreinstein/agentsync/internal/target/claude"
	"github.com/thoreinstein/agentsync/internal/target/vscode"
)

// Version mirrors the build-time version for output headers.
var Version = cmd.Version

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// buildRegistry constructs the target registry from the loaded
// configuration, applying per-target overrides.
func buildRegistry() (*target.Registry, error) {
	registry := target.NewRegistry()

	claudeOverride := cfg.Targets["claude"]
	if err := registry.Register(claude.New(
		claude.WithConfigPath(claudeOverride.ConfigPath),
		claude.WithSkillDir(claudeOverride.SkillDir),
	)); err != nil {
		return nil, err
	}

	vscodeOverride := cfg.Targets["vscode"]
	if err := registry.Register(vscode.New(
		vscode.WithConfigPath(vscodeOverride.ConfigPath),
		vscode.WithSkillDir(vscodeOverride.SkillDir),
	)); err != nil {
		return nil, err
	}

	return registry, nil
}

// resolveTargets returns the targets a command should act on: the
// --target flag if given, otherwise the configured default targets.
func resolveTargets() ([]target.Target, error) {
	registry, err := buildRegistry()
	if err != nil {
		return nil, err
	}

	names := GetTargetFlag()
	if len(names) == 0 {
		names = cfg.DefaultTargets
	}

	targets := make([]target.Target, 0, len(names))
	for _, name := range names {
		t, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}
