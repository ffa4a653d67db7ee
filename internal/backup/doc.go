// Package backup protects target configuration files before sync writes.
//
// Two layers exist. [BackupFile] makes a timestamped sibling copy of a
// single file immediately before it is overwritten; the sync writer calls
// it on every apply. [Manager] maintains named snapshots of a target's
// configuration under the agentsync config directory, with manifests,
// integrity hashes, and retention-based pruning, driving the backup
// subcommands.
package backup
