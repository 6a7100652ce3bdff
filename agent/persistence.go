package agent

import (
	"github.com/KyleBlankRollins/meowzer-sub000/brain"
	"github.com/KyleBlankRollins/meowzer-sub000/interaction"
	"github.com/KyleBlankRollins/meowzer-sub000/motion"
	"github.com/KyleBlankRollins/meowzer-sub000/persistence"
)

// ToBlob captures the agent's persistable state, per spec.md §6: brain
// state is never persisted, so reconstructing from this blob starts the
// agent from initial motivation/memory.
func (a *Agent) ToBlob() persistence.AgentBlob {
	a.mu.Lock()
	defer a.mu.Unlock()
	metadata := make(map[string]any, len(a.metadata))
	for k, v := range a.metadata {
		metadata[k] = v
	}
	return persistence.AgentBlob{
		ID:          a.id,
		Seed:        a.seed,
		Name:        a.name,
		Description: a.description,
		Metadata:    metadata,
		CreatedAt:   a.createdAt,
	}
}

// FromBlob reconstructs an Agent from a persisted blob, wiring it to a fresh
// motion.Controller and brain.Brain the caller constructed (the core never
// reaches into a concrete persistence.Store itself, per spec.md §6).
func FromBlob(blob persistence.AgentBlob, motionCtrl motion.Controller, b *brain.Brain, registry *interaction.Registry) *Agent {
	a := New(blob.ID, blob.Seed, motionCtrl, b, registry)
	a.createdAt = blob.CreatedAt
	a.name = blob.Name
	a.description = blob.Description
	for k, v := range blob.Metadata {
		a.metadata[k] = v
	}
	return a
}
