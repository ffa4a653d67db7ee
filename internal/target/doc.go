// Package target provides the sync target adapter framework.
//
// Each supported AI coding assistant (Claude Code, VS Code) implements the
// [Target] interface in its own subpackage, describing where its MCP
// configuration lives, which top-level document field holds the record
// store, and how source-schema entries convert into its format. The
// [Registry] holds the configured adapters and [Detect] reports which
// targets are present on the current system.
package target
