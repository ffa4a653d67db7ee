// Package vscode provides the VS Code sync target.
package vscode

import (
	"github.com/thoreinstein/agentsync/internal/mcp"
	"github.com/thoreinstein/agentsync/internal/paths"
)

const (
	// ServersKey is the top-level field of VS Code's mcp.json holding servers.
	// VS Code entries carry a "type" tag ("stdio" for local processes).
	ServersKey = "servers"

	// AutostartKey is the setting that makes VS Code start configured MCP
	// servers automatically. Sync ensures it is true.
	AutostartKey = "chat.mcp.autostart"
)

// Target is the VS Code sync target. VS Code keys the record store under a
// different field name and requires each entry to carry a type tag, so
// conversion wraps every entry and adaptors run on converted entries.
type Target struct {
	configPath string
	skillDir   string
	adaptors   *mcp.AdaptorRegistry
	converter  mcp.StdioWrapConverter
}

// Option configures a Target instance.
type Option func(*Target)

// WithConfigPath overrides the MCP configuration file path.
func WithConfigPath(path string) Option {
	return func(t *Target) {
		if path != "" {
			t.configPath = path
		}
	}
}

// WithSkillDir sets the skill destination directory. VS Code has no native
// skill location, so skill sync requires this to be set.
func WithSkillDir(dir string) Option {
	return func(t *Target) {
		if dir != "" {
			t.skillDir = dir
		}
	}
}

// WithAdaptors overrides the adaptor registry. Used by tests.
func WithAdaptors(r *mcp.AdaptorRegistry) Option {
	return func(t *Target) {
		if r != nil {
			t.adaptors = r
		}
	}
}

// New creates a VS Code target with the given options.
// Defaults: ~/.config/Code/User/mcp.json and the built-in adaptor set.
func New(opts ...Option) *Target {
	t := &Target{
		configPath: paths.MCPConfigPath(paths.TargetVSCode),
		adaptors:   mcp.DefaultAdaptors(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the target identifier.
func (t *Target) Name() string { return paths.TargetVSCode }

// DisplayName returns a human-readable target name.
func (t *Target) DisplayName() string { return "VS Code" }

// MCPConfigPath returns the MCP configuration file path.
func (t *Target) MCPConfigPath() string { return t.configPath }

// ServersKey returns the record store's top-level field name.
func (t *Target) ServersKey() string { return ServersKey }

// SkillDir returns the configured skill destination, or empty when none
// was provided.
func (t *Target) SkillDir() string { return t.skillDir }

// Convert wraps every entry with the stdio type tag, then applies server
// adaptors on the converted entries. Adaptor substitutes pass through the
// same wrap, so this call site and the source-schema call site produce
// equivalent final entries.
func (t *Target) Convert(src mcp.Store) (mcp.Store, error) {
	converted, err := t.converter.Convert(src)
	if err != nil {
		return nil, err
	}
	return t.adaptors.ApplyConverted(converted, t.converter)
}

// PostMerge ensures chat.mcp.autostart is true, leaving every other
// setting untouched. Reports whether the document changed.
func (t *Target) PostMerge(doc mcp.Document) (bool, error) {
	if v, ok := doc.BoolField(AutostartKey); ok && v {
		return false, nil
	}
	if err := doc.Set(AutostartKey, true); err != nil {
		return false, err
	}
	return true, nil
}
