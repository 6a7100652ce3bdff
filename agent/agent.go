// Package agent implements the Agent (C10) and Agent Registry (C11): a thin
// wrapper binding one Motion Controller to one Brain plus metadata, and the
// process-wide map of agents.
package agent

import (
	"context"
	"sync"
	"time"

	"github.com/KyleBlankRollins/meowzer-sub000/brain"
	"github.com/KyleBlankRollins/meowzer-sub000/errs"
	"github.com/KyleBlankRollins/meowzer-sub000/geo"
	"github.com/KyleBlankRollins/meowzer-sub000/interaction"
	"github.com/KyleBlankRollins/meowzer-sub000/motion"
)

// Agent binds a Motion Controller and a Brain under one id, with the
// persistable metadata spec.md §6's agent blob names.
type Agent struct {
	mu sync.Mutex

	id          string
	seed        string
	name        string
	description string
	metadata    map[string]any
	createdAt   time.Time

	motionCtrl motion.Controller
	brain      *brain.Brain
	registry   *interaction.Registry

	agentRegistry *Registry // set by Registry.Add; used by Destroy to self-remove
}

// New wires motionCtrl and b under id, sourced from seed (the compact string
// the persistence layer uses to regenerate appearance).
func New(id, seed string, motionCtrl motion.Controller, b *brain.Brain, registry *interaction.Registry) *Agent {
	return &Agent{
		id:         id,
		seed:       seed,
		metadata:   make(map[string]any),
		createdAt:  time.Now(),
		motionCtrl: motionCtrl,
		brain:      b,
		registry:   registry,
	}
}

// ID returns the agent's stable identifier.
func (a *Agent) ID() string { return a.id }

// Seed returns the compact appearance-regenerating seed.
func (a *Agent) Seed() string { return a.seed }

// CreatedAt returns the agent's creation timestamp.
func (a *Agent) CreatedAt() time.Time { return a.createdAt }

// Brain exposes the underlying Brain, e.g. to subscribe to its topics.
func (a *Agent) Brain() *brain.Brain { return a.brain }

// Motion exposes the underlying Motion Controller.
func (a *Agent) Motion() motion.Controller { return a.motionCtrl }

// Name returns the agent's display name.
func (a *Agent) Name() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.name
}

// SetName sets the agent's display name.
func (a *Agent) SetName(name string) {
	a.mu.Lock()
	a.name = name
	a.mu.Unlock()
}

// Description returns the agent's description.
func (a *Agent) Description() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.description
}

// SetDescription sets the agent's description.
func (a *Agent) SetDescription(desc string) {
	a.mu.Lock()
	a.description = desc
	a.mu.Unlock()
}

// Metadata returns a copy of the opaque metadata dictionary.
func (a *Agent) Metadata() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]any, len(a.metadata))
	for k, v := range a.metadata {
		out[k] = v
	}
	return out
}

// UpdateMetadata merges updates into the metadata dictionary.
func (a *Agent) UpdateMetadata(updates map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for k, v := range updates {
		a.metadata[k] = v
	}
}

// Pause stops the agent's Brain without destroying anything.
func (a *Agent) Pause() { a.brain.Stop() }

// Resume restarts the agent's Brain.
func (a *Agent) Resume() error { return a.brain.Start() }

// Destroy stops the Brain, destroys the Motion Controller, and removes the
// agent from its Agent Registry, per spec.md §4.10.
func (a *Agent) Destroy() {
	a.brain.Destroy()
	a.motionCtrl.Destroy()
	if a.agentRegistry != nil {
		a.agentRegistry.remove(a.id)
	}
}

// RespondToNeed looks up need id in the Interaction Registry and dispatches
// an approachTarget trigger toward it.
func (a *Agent) RespondToNeed(ctx context.Context, id string) error {
	if a.registry == nil {
		return errs.New(errs.StimulusNotFound, "need "+id+" not found: no environment bound")
	}
	need, ok := a.registry.Need(id)
	if !ok {
		return errs.New(errs.StimulusNotFound, "need "+id+" not found")
	}
	_, err := a.brain.ApproachTarget(ctx, need.Position, brain.TriggerOptions{})
	return err
}

// PlayWithYarn looks up yarn id and dispatches chaseTarget if it is rolling
// or dragging, approachTarget if it is idle.
func (a *Agent) PlayWithYarn(ctx context.Context, id string) error {
	if a.registry == nil {
		return errs.New(errs.StimulusNotFound, "yarn "+id+" not found: no environment bound")
	}
	yarn, ok := a.registry.Yarn(id)
	if !ok {
		return errs.New(errs.StimulusNotFound, "yarn "+id+" not found")
	}
	var err error
	if yarn.State == interaction.YarnRolling || yarn.State == interaction.YarnDragging {
		_, err = a.brain.ChaseTarget(ctx, yarn.Position, brain.TriggerOptions{})
	} else {
		_, err = a.brain.ApproachTarget(ctx, yarn.Position, brain.TriggerOptions{})
	}
	return err
}

// ChaseLaser dispatches a chaseTarget trigger toward pos directly — the
// laser is process-wide and not looked up by id.
func (a *Agent) ChaseLaser(ctx context.Context, pos geo.Position) error {
	_, err := a.brain.ChaseTarget(ctx, pos, brain.TriggerOptions{})
	return err
}
