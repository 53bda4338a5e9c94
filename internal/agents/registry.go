package agents

import (
	"sync"

	"github.com/google/uuid"
)

// Registry owns the live agent population. It is keyed by agent ID and
// provides explicit creation and removal hooks so satellite state
// (schedulers, trade ledgers) can follow the agent lifecycle. Iteration
// order is insertion order, which keeps per-tick processing deterministic.
type Registry struct {
	mu     sync.RWMutex
	agents map[uuid.UUID]*Agent
	order  []uuid.UUID

	// Lifecycle hooks, invoked synchronously on Add/Remove. Optional.
	OnAdd    func(*Agent)
	OnRemove func(*Agent)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[uuid.UUID]*Agent)}
}

// Add registers an agent and fires the OnAdd hook. Adding an already
// registered ID is a no-op.
func (r *Registry) Add(a *Agent) {
	r.mu.Lock()
	if _, exists := r.agents[a.ID]; exists {
		r.mu.Unlock()
		return
	}
	r.agents[a.ID] = a
	r.order = append(r.order, a.ID)
	r.mu.Unlock()

	if r.OnAdd != nil {
		r.OnAdd(a)
	}
}

// Remove drops an agent from the registry and fires the OnRemove hook.
// Returns false when the ID is not registered.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	a, exists := r.agents[id]
	if !exists {
		r.mu.Unlock()
		return false
	}
	delete(r.agents, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	if r.OnRemove != nil {
		r.OnRemove(a)
	}
	return true
}

// Get returns the agent with the given ID, or nil.
func (r *Registry) Get(id uuid.UUID) *Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.agents[id]
}

// All returns a snapshot of all agents in insertion order.
func (r *Registry) All() []*Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Agent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.agents[id])
	}
	return out
}

// Len returns the population size.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}
