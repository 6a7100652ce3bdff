// Package interaction implements the Interaction Registry (C4): placement
// and lookup of needs/yarn/laser stimuli, plus the event bus describing
// their lifecycle.
package interaction

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/KyleBlankRollins/meowzer-sub000/errs"
	"github.com/KyleBlankRollins/meowzer-sub000/geo"
)

// Default detection radii in pixels, per spec.md §4.4.
const (
	DefaultNeedRadius       = 150.0
	DefaultYarnRadius       = 150.0
	DefaultYarnRollingRadius = 200.0
	DefaultLaserRadius      = 250.0
)

// Registry is the process-wide store of stimuli. It is safe for concurrent
// use; the single-threaded cooperative model of spec.md §5 still allows
// multiple independent Brains to call into the one shared Registry.
type Registry struct {
	mu    sync.RWMutex
	needs map[string]Need
	yarns map[string]Yarn
	laser *Laser

	Events Events
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		needs:  make(map[string]Need),
		yarns:  make(map[string]Yarn),
		Events: newEvents(),
	}
}

// PlaceNeed adds a need of the given kind at pos and returns its id.
func (r *Registry) PlaceNeed(kind NeedKind, pos geo.Position) string {
	id := uuid.NewString()
	need := Need{ID: id, Kind: kind, Position: pos}

	r.mu.Lock()
	r.needs[id] = need
	r.mu.Unlock()

	r.Events.NeedPlaced.Publish(NeedPlacedEvent{Need: need})
	return id
}

// PlaceYarn adds an idle yarn at pos and returns its id.
func (r *Registry) PlaceYarn(pos geo.Position) string {
	id := uuid.NewString()
	yarn := Yarn{ID: id, Position: pos, State: YarnIdle}

	r.mu.Lock()
	r.yarns[id] = yarn
	r.mu.Unlock()

	r.Events.YarnPlaced.Publish(YarnPlacedEvent{Yarn: yarn})
	return id
}

// MoveYarn updates a yarn's position and/or state and publishes yarnMoved.
func (r *Registry) MoveYarn(id string, pos geo.Position, state YarnState, velocity *geo.Position) error {
	r.mu.Lock()
	yarn, ok := r.yarns[id]
	if !ok {
		r.mu.Unlock()
		return errs.New(errs.StimulusNotFound, "yarn "+id+" not found")
	}
	from := yarn.Position
	yarn.Position = pos
	yarn.State = state
	yarn.Velocity = velocity
	r.yarns[id] = yarn
	r.mu.Unlock()

	r.Events.YarnMoved.Publish(YarnMovedEvent{Yarn: yarn, From: from})
	return nil
}

// SetLaser activates the laser at pos (if pos is non-nil) or deactivates it
// (pos == nil). Only one laser exists process-wide.
func (r *Registry) SetLaser(pos *geo.Position) {
	r.mu.Lock()
	var prev *Laser
	if r.laser != nil {
		cp := *r.laser
		prev = &cp
	}

	if pos == nil {
		r.laser = nil
		r.mu.Unlock()
		if prev != nil && prev.Active {
			r.Events.LaserDeactivated.Publish(LaserDeactivatedEvent{})
		}
		return
	}

	newLaser := Laser{Position: *pos, Active: true}
	r.laser = &newLaser
	r.mu.Unlock()

	if prev == nil || !prev.Active {
		r.Events.LaserActivated.Publish(LaserActivatedEvent{Laser: newLaser})
	} else if prev.Position != newLaser.Position {
		r.Events.LaserMoved.Publish(LaserMovedEvent{Laser: newLaser, From: prev.Position})
	}
}

// Laser returns the active laser, if any.
func (r *Registry) Laser() (Laser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.laser == nil {
		return Laser{}, false
	}
	return *r.laser, true
}

// Remove deletes a need or yarn by id, publishing the matching removal
// event. Returns StimulusNotFound if id matches neither.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	if _, ok := r.needs[id]; ok {
		delete(r.needs, id)
		r.mu.Unlock()
		r.Events.NeedRemoved.Publish(NeedRemovedEvent{ID: id})
		return nil
	}
	if _, ok := r.yarns[id]; ok {
		delete(r.yarns, id)
		r.mu.Unlock()
		r.Events.YarnRemoved.Publish(YarnRemovedEvent{ID: id})
		return nil
	}
	r.mu.Unlock()
	return errs.New(errs.StimulusNotFound, "stimulus "+id+" not found")
}

// Need returns a need by id.
func (r *Registry) Need(id string) (Need, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.needs[id]
	return n, ok
}

// Yarn returns a yarn by id.
func (r *Registry) Yarn(id string) (Yarn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	y, ok := r.yarns[id]
	return y, ok
}

// NeedsNear returns every need within radius of pos, sorted by ascending
// distance (closed interval: exactly-at-radius counts as detected).
func (r *Registry) NeedsNear(pos geo.Position, radius float64) []Need {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type scored struct {
		need Need
		dist float64
	}
	var matches []scored
	for _, n := range r.needs {
		d := geo.Distance(pos, n.Position)
		if d <= radius {
			matches = append(matches, scored{need: n, dist: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].dist < matches[j].dist })

	out := make([]Need, len(matches))
	for i, m := range matches {
		out[i] = m.need
	}
	return out
}

// YarnsNear returns every yarn within radius of pos, sorted by ascending
// distance.
func (r *Registry) YarnsNear(pos geo.Position, radius float64) []Yarn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type scored struct {
		yarn Yarn
		dist float64
	}
	var matches []scored
	for _, y := range r.yarns {
		d := geo.Distance(pos, y.Position)
		if d <= radius {
			matches = append(matches, scored{yarn: y, dist: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].dist < matches[j].dist })

	out := make([]Yarn, len(matches))
	for i, m := range matches {
		out[i] = m.yarn
	}
	return out
}
