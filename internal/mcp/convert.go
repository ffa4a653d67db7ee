package mcp

import (
	"encoding/json"

	"github.com/thoreinstein/agentsync/internal/errors"
)

// Converter maps a source-schema record store into a target-schema store.
//
// Conversion is a pure function of its input: implementations never read or
// write the destination store, and never mutate the store they are given.
type Converter interface {
	// Convert produces the target-schema representation of src.
	Convert(src Store) (Store, error)

	// Schema returns the schema identifier, used for logging.
	Schema() string
}

// IdentityConverter is the converter for targets that share the source
// schema. Output equals input, no field changes.
type IdentityConverter struct{}

// Convert returns a copy of src.
func (IdentityConverter) Convert(src Store) (Store, error) {
	return src.Clone(), nil
}

// Schema returns the schema identifier.
func (IdentityConverter) Schema() string { return "identity" }

// StdioWrapConverter is the converter for type-tagged target schemas.
// Each entry becomes the field union of {"type": "stdio"} and the source
// entry. The injected tag is a default: a source entry that already declares
// a "type" field keeps its declared value.
type StdioWrapConverter struct{}

// Convert wraps every entry of src with the stdio type tag.
func (StdioWrapConverter) Convert(src Store) (Store, error) {
	out := make(Store, len(src))
	for name, raw := range src {
		wrapped, err := wrapStdio(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "converting entry %q", name)
		}
		out[name] = wrapped
	}
	return out, nil
}

// Schema returns the schema identifier.
func (StdioWrapConverter) Schema() string { return "stdio-wrap" }

// wrapStdio returns entry with "type": "stdio" injected unless the entry
// already declares a type. All other fields pass through byte-for-byte.
func wrapStdio(entry json.RawMessage) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage, 1)
	}
	if _, declared := fields["type"]; !declared {
		fields["type"] = json.RawMessage(`"` + TypeStdio + `"`)
	}
	return json.Marshal(fields)
}
