package target

import (
	"sync"

	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/paths"
)

// Sentinel errors for registry operations.
var (
	// ErrTargetAlreadyRegistered is returned when attempting to register
	// a target with a name that is already in use.
	ErrTargetAlreadyRegistered = errors.New("target already registered")

	// ErrInvalidTargetName is returned when attempting to register
	// a target with an unrecognized name.
	ErrInvalidTargetName = errors.New("invalid target name")
)

// Registry manages target registration and lookup.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	targets map[string]Target
}

// NewRegistry creates a new empty target registry.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[string]Target),
	}
}

// Register adds a target to the registry.
// Returns an error if:
//   - The target's name is not recognized (per paths.ValidTarget)
//   - A target with the same name is already registered
func (r *Registry) Register(t Target) error {
	if t == nil || !paths.ValidTarget(t.Name()) {
		return ErrInvalidTargetName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.targets[t.Name()]; exists {
		return errors.Wrapf(ErrTargetAlreadyRegistered, "%q", t.Name())
	}

	r.targets[t.Name()] = t
	return nil
}

// Get returns the target registered under name.
// Returns errors.ErrUnknownTarget if no such target exists.
func (r *Registry) Get(name string) (Target, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.targets[name]
	if !exists {
		return nil, errors.Wrapf(errors.ErrUnknownTarget, "%q", name)
	}
	return t, nil
}

// All returns all registered targets in the deterministic order defined
// by paths.Targets().
func (r *Registry) All() []Target {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]Target, 0, len(r.targets))
	for _, name := range paths.Targets() {
		if t, registered := r.targets[name]; registered {
			results = append(results, t)
		}
	}
	return results
}

// Installed returns only registered targets that appear installed on this
// system, in deterministic order.
func (r *Registry) Installed() []Target {
	var results []Target
	for _, t := range r.All() {
		if Detect(t).Status == StatusInstalled {
			results = append(results, t)
		}
	}
	return results
}
