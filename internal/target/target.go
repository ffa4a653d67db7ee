package target

import (
	"github.com/thoreinstein/agentsync/internal/mcp"
)

// Target defines the contract for sync target adapters.
// Each supported AI coding assistant implements this interface to describe
// where its configuration lives and how source-schema server entries map
// into its format.
//
// Implementations must be safe for concurrent use. The methods defined here
// return static configuration data that does not change during the lifetime
// of an adapter instance.
type Target interface {
	// Name returns the target identifier (claude, vscode).
	// The name must match one of the constants in the paths package
	// (e.g., paths.TargetClaude).
	Name() string

	// DisplayName returns a human-readable target name.
	DisplayName() string

	// MCPConfigPath returns the path of the configuration file the merged
	// record store is written to.
	//
	// Examples:
	//   - claude: ~/.claude.json
	//   - vscode: ~/.config/Code/User/mcp.json
	MCPConfigPath() string

	// ServersKey returns the top-level document field that holds the
	// record store ("mcpServers" for claude, "servers" for vscode).
	ServersKey() string

	// Convert maps a source-schema record store into this target's schema,
	// applying server adaptors. It is pure: it never reads or mutates the
	// destination store.
	Convert(src mcp.Store) (mcp.Store, error)

	// SkillDir returns the directory skills are synced into, or an empty
	// string when the target has no native skill location and the caller
	// must supply one explicitly.
	SkillDir() string

	// PostMerge applies target-specific settings to the final document
	// after the record store has been merged in. It reports whether the
	// document changed. Unrelated document fields must be left untouched.
	PostMerge(doc mcp.Document) (changed bool, err error)
}
