// Package mcp implements the MCP server configuration merge/conversion engine.
//
// The engine moves server definitions from a source-of-truth document into
// target tool configurations, one target per invocation:
//
//	source store -> adaptors -> schema conversion -> merge with existing -> document
//
// # Record Stores
//
// A [Store] maps server names to raw JSON entries. Entries are kept as
// [encoding/json.RawMessage] end to end so that fields the engine does not
// model survive byte-for-byte, and so the merge engine stays schema-agnostic.
// The typed [ServerEntry] view exists for adaptors and for code that needs
// to construct entries.
//
// # Schema Conversion
//
// Targets either share the source schema ([IdentityConverter]) or require
// each entry to carry a "type": "stdio" tag ([StdioWrapConverter]). The wrap
// is a field union: a source-declared "type" wins over the injected default.
//
// # Adaptors
//
// Some servers cannot run as-is on every target (for example an OAuth-based
// server on tooling without OAuth support). The [AdaptorRegistry] maps server
// names to substitute entries; a substitution fires only when the name is
// present in the store being processed, and all other entries pass through
// untouched.
//
// # Merge Semantics
//
// [Merge] unions converted source entries into the existing destination
// store with existing entries winning on collision: a resync never clobbers
// user customizations. [AddedKeys] reports, before merging, the names a
// merge would introduce. Do not invert the merge direction; it is a
// deliberate policy choice.
package mcp
