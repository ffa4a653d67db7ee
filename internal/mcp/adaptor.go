package mcp

import (
	"sort"

	"github.com/thoreinstein/agentsync/internal/errors"
)

// AdaptorFunc produces the replacement entry for a named server, in
// source-schema form (no type tag). Adaptors must be pure: same name in,
// same entry out.
type AdaptorFunc func(name string) *ServerEntry

// Sentinel errors for registry operations.
var (
	// ErrAdaptorAlreadyRegistered is returned when attempting to register
	// an adaptor for a name that is already in use.
	ErrAdaptorAlreadyRegistered = errors.New("adaptor already registered")

	// ErrInvalidAdaptor is returned for an empty name or nil function.
	ErrInvalidAdaptor = errors.New("invalid adaptor")
)

// AdaptorRegistry maps server names to substitute entries for servers that
// are incompatible with the target tooling as distributed. Adaptors are
// independent: registering one never requires touching another or the merge
// engine.
type AdaptorRegistry struct {
	adaptors map[string]AdaptorFunc
}

// NewAdaptorRegistry creates an empty registry.
func NewAdaptorRegistry() *AdaptorRegistry {
	return &AdaptorRegistry{
		adaptors: make(map[string]AdaptorFunc),
	}
}

// Register adds an adaptor for the named server.
func (r *AdaptorRegistry) Register(name string, fn AdaptorFunc) error {
	if name == "" || fn == nil {
		return ErrInvalidAdaptor
	}
	if _, exists := r.adaptors[name]; exists {
		return errors.Wrapf(ErrAdaptorAlreadyRegistered, "%q", name)
	}
	r.adaptors[name] = fn
	return nil
}

// Names returns the registered server names, sorted.
func (r *AdaptorRegistry) Names() []string {
	names := make([]string, 0, len(r.adaptors))
	for name := range r.adaptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply substitutes adapted entries into a source-schema store.
// Only entries whose name is both present in the store and registered are
// replaced; every other entry is carried over byte-identical. The input
// store is not mutated.
func (r *AdaptorRegistry) Apply(store Store) (Store, error) {
	out := store.Clone()
	for name, fn := range r.adaptors {
		if _, present := out[name]; !present {
			continue
		}
		raw, err := fn(name).Raw()
		if err != nil {
			return nil, errors.Wrapf(err, "adapting server %q", name)
		}
		out[name] = raw
	}
	return out, nil
}

// ApplyConverted substitutes adapted entries into a store that has already
// been schema-converted, running each substitute through the same converter
// so both call sites yield equivalent final entries for the same server.
func (r *AdaptorRegistry) ApplyConverted(store Store, conv Converter) (Store, error) {
	out := store.Clone()
	for name, fn := range r.adaptors {
		if _, present := out[name]; !present {
			continue
		}
		raw, err := fn(name).Raw()
		if err != nil {
			return nil, errors.Wrapf(err, "adapting server %q", name)
		}
		converted, err := conv.Convert(Store{name: raw})
		if err != nil {
			return nil, errors.Wrapf(err, "converting adapted server %q", name)
		}
		out[name] = converted[name]
	}
	return out, nil
}

// AtlassianServer is the name of the OAuth-based Atlassian MCP server.
// Target tooling without OAuth support reaches it through the mcp-remote
// proxy instead.
const AtlassianServer = "atlassian"

// atlassianAdaptor substitutes the OAuth-based Atlassian server with an
// mcp-remote invocation.
func atlassianAdaptor(string) *ServerEntry {
	return &ServerEntry{
		Command: "npx",
		Args:    []string{"mcp-remote", "https://mcp.atlassian.com/v1/mcp"},
	}
}

// DefaultAdaptors returns the registry of known server adaptors.
func DefaultAdaptors() *AdaptorRegistry {
	r := NewAdaptorRegistry()
	// Registration cannot fail for the built-in set.
	_ = r.Register(AtlassianServer, atlassianAdaptor)
	return r
}
