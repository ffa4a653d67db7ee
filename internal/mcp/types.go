package mcp

import (
	"encoding/json"
	"sort"
)

// TypeStdio is the transport tag injected into type-tagged target schemas.
// Every server distributed by the source launches as a local process over
// stdin/stdout.
const TypeStdio = "stdio"

// Store is a record store: a mapping from server name to raw server entry.
// Server names are unique by construction (map keys). Entry values are
// opaque to the merge engine.
type Store map[string]json.RawMessage

// NewStore returns an empty record store.
func NewStore() Store {
	return make(Store)
}

// Clone returns a shallow copy of the store. Raw entries are immutable by
// convention, so sharing the underlying bytes is safe.
func (s Store) Clone() Store {
	out := make(Store, len(s))
	for name, raw := range s {
		out[name] = raw
	}
	return out
}

// Names returns the server names in the store, sorted.
func (s Store) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ServerEntry is the typed view of one server definition: how to launch one
// MCP server. In source-schema form the Type field is empty; type-tagged
// target schemas carry Type "stdio".
type ServerEntry struct {
	// Command is the executable to run.
	Command string `json:"command,omitempty"`

	// Args are command-line arguments passed to the command.
	Args []string `json:"args,omitempty"`

	// Env contains environment variables passed to the server process.
	Env map[string]string `json:"env,omitempty"`

	// Type is the transport tag required by some target schemas.
	Type string `json:"type,omitempty"`

	// unknownFields stores JSON fields not explicitly defined in this struct,
	// so future source fields survive a round-trip through the typed view.
	unknownFields map[string]json.RawMessage
}

// Raw encodes the entry as a raw store value.
func (e *ServerEntry) Raw() (json.RawMessage, error) {
	return json.Marshal(e)
}

// MarshalJSON implements json.Marshaler to include unknown fields in output.
func (e *ServerEntry) MarshalJSON() ([]byte, error) {
	result := make(map[string]any)

	// Copy unknown fields first (so known fields take precedence)
	for k, v := range e.unknownFields {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, err
		}
		result[k] = val
	}

	if e.Command != "" {
		result["command"] = e.Command
	}
	if len(e.Args) > 0 {
		result["args"] = e.Args
	}
	if len(e.Env) > 0 {
		result["env"] = e.Env
	}
	if e.Type != "" {
		result["type"] = e.Type
	}

	return json.Marshal(result)
}

// UnmarshalJSON implements json.Unmarshaler to capture unknown fields.
func (e *ServerEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["command"]; ok {
		if err := json.Unmarshal(v, &e.Command); err != nil {
			return err
		}
		delete(raw, "command")
	}
	if v, ok := raw["args"]; ok {
		if err := json.Unmarshal(v, &e.Args); err != nil {
			return err
		}
		delete(raw, "args")
	}
	if v, ok := raw["env"]; ok {
		if err := json.Unmarshal(v, &e.Env); err != nil {
			return err
		}
		delete(raw, "env")
	}
	if v, ok := raw["type"]; ok {
		if err := json.Unmarshal(v, &e.Type); err != nil {
			return err
		}
		delete(raw, "type")
	}

	if len(raw) > 0 {
		e.unknownFields = raw
	}

	return nil
}
