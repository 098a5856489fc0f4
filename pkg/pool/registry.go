// ABOUTME: Registry holds many differently-typed pools under string keys, so an app needn't thread each pool through by hand.
// ABOUTME: Modeled on the pack's named-pool manager pattern (mcpany-core server/pkg/pool's Register/Get/Deregister/CloseAll).
package pool

import (
	"fmt"
	"sync"
)

type closer interface {
	Close()
}

// Registry is a concurrency-safe, name-keyed collection of pools. Pool[T]
// itself has no Close-the-world awareness of its siblings; Registry is the
// place an application registers every pool it owns so CloseAll can shut
// them down together (e.g. on process shutdown).
type Registry struct {
	mu    sync.RWMutex
	pools map[string]closer
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{pools: make(map[string]closer)}
}

// Register adds a pool under name. It returns an error if name is already taken.
func Register[T any](r *Registry, name string, p *Pool[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pools[name]; exists {
		return fmt.Errorf("pool: registry already has a pool named %q", name)
	}
	r.pools[name] = p
	return nil
}

// Get retrieves the pool registered under name, type-asserting it to
// Pool[T]. ok is false if no pool is registered under that name, or if the
// registered pool is not a Pool[T].
func Get[T any](r *Registry, name string) (p *Pool[T], ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, exists := r.pools[name]
	if !exists {
		return nil, false
	}
	p, ok = c.(*Pool[T])
	return p, ok
}

// Deregister removes name from the registry without closing its pool.
func (r *Registry) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pools, name)
}

// CloseAll closes every registered pool and empties the registry.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, c := range r.pools {
		c.Close()
		delete(r.pools, name)
	}
}

// Names returns the currently registered pool names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.pools))
	for name := range r.pools {
		names = append(names, name)
	}
	return names
}
