// Package config provides configuration management for the agentsync CLI.
//
// This package handles loading and validating the tool's own configuration
// file. It is distinct from the target configurations the sync engine
// writes, which are managed by the target adapters.
//
// # Configuration File
//
// The default configuration file location is ~/.config/agentsync/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	source:
//	  dir: ~/src/agent-config        # source-of-truth repository
//	  mcp_file: mcp-servers.json     # relative to dir
//	  skills_dir: skills             # relative to dir
//	default_targets:
//	  - claude
//	  - vscode
//	targets:
//	  vscode:
//	    skill_dir: /custom/skills    # optional per-target overrides
//	backup:
//	  retention: 5
//
// Environment variables with the AGENTSYNC_ prefix override file values,
// e.g. AGENTSYNC_BACKUP_DIR redirects pre-write file backups.
package config
