package engine

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a thread-safe algorithm registry and dispatcher.
//
// Register one or more named [Engine] implementations, nominate a default
// algorithm, and then resolve engines by name.
//
// # Thread safety
//
// All Registry methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (Register, SetDefault) while allowing
// concurrent lookups.
type Registry struct {
	mu      sync.RWMutex
	engines map[Algorithm]Engine
	def     Algorithm
}

// NewRegistry creates an empty Registry with the given default algorithm.
// Engines must be registered with [Registry.Register] before they can be
// resolved.
//
// Use [NewDefaultRegistry] for the variant that registers all three built-in
// engines.
func NewRegistry(def Algorithm) *Registry {
	return &Registry{
		engines: make(map[Algorithm]Engine),
		def:     def,
	}
}

// NewDefaultRegistry creates a Registry with [LSB], [PVD] and [DWT]
// registered.  The default algorithm is [AlgorithmLSB].
func NewDefaultRegistry() *Registry {
	r := NewRegistry(AlgorithmLSB)
	_ = r.Register(LSB{})
	_ = r.Register(PVD{})
	_ = r.Register(DWT{})
	return r
}

// Register adds or replaces an engine under the name it reports.
func (r *Registry) Register(e Engine) error {
	if e == nil {
		return ErrNilEngine
	}
	name := e.Algorithm()
	if name == "" {
		return ErrEmptyAlgorithm
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[name] = e
	return nil
}

// Engine returns the engine registered under name, or [ErrUnknownAlgorithm].
func (r *Registry) Engine(name Algorithm) (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return e, nil
}

// Resolve returns the engine for name, or the default engine when name is
// empty.
func (r *Registry) Resolve(name Algorithm) (Engine, error) {
	if name == "" {
		name = r.Default()
	}
	return r.Engine(name)
}

// SetDefault changes the default algorithm.  The named engine must already
// be registered.
func (r *Registry) SetDefault(name Algorithm) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.engines[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call Register first",
			ErrUnknownAlgorithm, name)
	}
	r.def = name
	return nil
}

// Default returns the name of the default algorithm.
func (r *Registry) Default() Algorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def
}

// Has reports whether an engine with the given name is registered.
func (r *Registry) Has(name Algorithm) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.engines[name]
	return ok
}

// Algorithms returns the registered names in sorted order.
func (r *Registry) Algorithms() []Algorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Algorithm, 0, len(r.engines))
	for name := range r.engines {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
