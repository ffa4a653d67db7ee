// Package sync orchestrates distributing MCP server definitions from the
// source-of-truth document into each target's configuration file.
//
// For every target the pipeline is: load the source record store, convert
// it into the target's schema (adaptors included), merge it into the
// target's existing store with existing entries winning, apply the
// target's post-merge settings, and write the result atomically with a
// pre-write backup of the old file. Dry runs render the result without
// touching disk.
package sync
