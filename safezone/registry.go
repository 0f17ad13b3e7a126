package safezone

import (
	"sync"
	"sync/atomic"
)

var registryNextID uint64

// registryHandle is the registry's entry for a registered calculator: it
// remembers the generation observed at registration time so a caller can
// cheaply tell whether the calculator has mutated since. It holds a plain
// pointer, so the registry keeps the calculator alive until Forget.
type registryHandle struct {
	calculator *SafeZoneCalculator
	generation uint64
}

// Registry lets a renderer or other cache-owning observer track several
// SafeZoneCalculators by a stable id and cheaply detect staleness, instead
// of re-walking zone lists on every frame. It is strictly optional:
// nothing in this package depends on it, and a caller that never touches
// the danger-zone cache can ignore it entirely.
type Registry struct {
	mu      sync.Mutex
	handles map[uint64]registryHandle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handles: make(map[uint64]registryHandle)}
}

// Register assigns a new id to c, snapshots its current generation, and
// returns the id for later Lookup/IsStale calls.
func (r *Registry) Register(c *SafeZoneCalculator) uint64 {
	id := atomic.AddUint64(&registryNextID, 1)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handles[id] = registryHandle{calculator: c, generation: c.Generation()}
	return id
}

// Lookup returns the calculator registered under id, or nil if id is
// unknown.
func (r *Registry) Lookup(id uint64) *SafeZoneCalculator {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[id]
	if !ok {
		return nil
	}
	return h.calculator
}

// IsStale reports whether the calculator registered under id has mutated
// (AddZone/AddZones/Clear/SetArena) since Register or the last Refresh.
// Returns true if id is unknown.
func (r *Registry) IsStale(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[id]
	if !ok {
		return true
	}
	return h.calculator.Generation() != h.generation
}

// Refresh re-snapshots the generation for id, so the next IsStale call
// reports false until the calculator mutates again. Typically called right
// after an observer has rebuilt whatever it cached from the calculator's
// current state.
func (r *Registry) Refresh(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[id]
	if !ok {
		return
	}
	h.generation = h.calculator.Generation()
	r.handles[id] = h
}

// Forget removes id from the registry.
func (r *Registry) Forget(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handles, id)
}
