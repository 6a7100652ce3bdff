package agent

import "sync"

// Registry is the process-wide set of live Agents (C11). Iteration order is
// insertion order; concurrent Add/Remove during GetAll's iteration is safe
// since GetAll hands back a snapshot.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]*Agent
	order []string
}

// NewRegistry creates an empty Agent Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Agent)}
}

// Add registers a, binding it to this Registry for self-removal on Destroy.
// Re-adding an id already present replaces the prior agent in place without
// disturbing its position in insertion order.
func (reg *Registry) Add(a *Agent) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	a.agentRegistry = reg
	if _, exists := reg.byID[a.id]; !exists {
		reg.order = append(reg.order, a.id)
	}
	reg.byID[a.id] = a
}

// Get returns the agent with id, if any.
func (reg *Registry) Get(id string) (*Agent, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	a, ok := reg.byID[id]
	return a, ok
}

// GetAll returns every live agent, a snapshot taken under lock, in insertion
// order.
func (reg *Registry) GetAll() []*Agent {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]*Agent, 0, len(reg.order))
	for _, id := range reg.order {
		if a, ok := reg.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Remove drops id from the Registry without destroying the agent. Use
// Agent.Destroy (which calls this internally) to tear an agent down.
func (reg *Registry) Remove(id string) {
	reg.remove(id)
}

func (reg *Registry) remove(id string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.byID[id]; !ok {
		return
	}
	delete(reg.byID, id)
	for i, existing := range reg.order {
		if existing == id {
			reg.order = append(reg.order[:i], reg.order[i+1:]...)
			break
		}
	}
}

// PauseAll stops every member's Brain, leaving Motion Controllers intact.
func (reg *Registry) PauseAll() {
	for _, a := range reg.GetAll() {
		a.Pause()
	}
}

// ResumeAll restarts every member's Brain. Errors from individual agents
// (e.g. a destroyed one slipping in between snapshot and resume) are
// ignored — ResumeAll is best-effort over a live snapshot.
func (reg *Registry) ResumeAll() {
	for _, a := range reg.GetAll() {
		_ = a.Resume()
	}
}

// Clear destroys every agent currently registered. Each Destroy call
// removes its own id from the Registry, so Clear iterates a snapshot.
func (reg *Registry) Clear() {
	for _, a := range reg.GetAll() {
		a.Destroy()
	}
}

// Len reports the number of live agents.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.order)
}
