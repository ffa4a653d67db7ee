// Package paths centralizes filesystem path resolution for agentsync.
//
// It knows the default configuration locations of each supported sync
// target and the agentsync-owned directories (config, backup snapshots).
// XDG base directories are resolved through github.com/adrg/xdg.
package paths
