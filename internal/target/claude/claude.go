// Package claude provides the Claude Code sync target.
package claude

import (
	"github.com/thoreinstein/agentsync/internal/mcp"
	"github.com/thoreinstein/agentsync/internal/paths"
)

// ServersKey is the top-level field of ~/.claude.json holding MCP servers.
const ServersKey = "mcpServers"

// Target is the Claude Code sync target. Claude Code shares the source
// schema, so conversion is identity plus server adaptors.
type Target struct {
	configPath string
	skillDir   string
	adaptors   *mcp.AdaptorRegistry
	converter  mcp.IdentityConverter
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

// WithSkillDir overrides the skill destination directory.
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

// New creates a Claude Code target with the given options.
// Defaults: ~/.claude.json for MCP servers, ~/.claude/skills for skills,
// and the built-in adaptor set.
func New(opts ...Option) *Target {
	t := &Target{
		configPath: paths.MCPConfigPath(paths.TargetClaude),
		skillDir:   paths.SkillDir(paths.TargetClaude),
		adaptors:   mcp.DefaultAdaptors(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the target identifier.
func (t *Target) Name() string { return paths.TargetClaude }

// DisplayName returns a human-readable target name.
func (t *Target) DisplayName() string { return "Claude Code" }

// MCPConfigPath returns the MCP configuration file path.
func (t *Target) MCPConfigPath() string { return t.configPath }

// ServersKey returns the record store's top-level field name.
func (t *Target) ServersKey() string { return ServersKey }

// SkillDir returns the skill destination directory.
func (t *Target) SkillDir() string { return t.skillDir }

// Convert applies server adaptors to the source-schema store.
// Claude Code keeps the source schema, so adaptors run directly on
// source-schema entries and no field changes follow.
func (t *Target) Convert(src mcp.Store) (mcp.Store, error) {
	adapted, err := t.adaptors.Apply(src)
	if err != nil {
		return nil, err
	}
	return t.converter.Convert(adapted)
}

// PostMerge is a no-op: Claude Code needs no settings beyond the store.
func (t *Target) PostMerge(mcp.Document) (bool, error) {
	return false, nil
}
