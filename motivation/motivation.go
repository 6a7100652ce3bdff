// Package motivation implements the Motivation Manager (C2): three decaying
// drives nudged per-tick by the behavior currently in flight.
package motivation

import "github.com/KyleBlankRollins/meowzer-sub000/geo"

// Motivation holds the three drives, each clamped to [0,1].
type Motivation struct {
	Rest        float64
	Stimulation float64
	Exploration float64
}

// Initial returns the spec-mandated starting motivation.
func Initial() Motivation {
	return Motivation{Rest: 0.2, Stimulation: 0.3, Exploration: 0.4}
}

// DecayRates are per-second amounts subtracted from each drive every tick
// (linear decay: rate × elapsed seconds).
type DecayRates struct {
	Rest        float64
	Stimulation float64
	Exploration float64
}

// DefaultDecayRates matches spec.md §3.
func DefaultDecayRates() DecayRates {
	return DecayRates{Rest: 0.001, Stimulation: 0.002, Exploration: 0.0015}
}

// Manager owns one Motivation and applies decay plus behavior-specific
// adjustments each tick, per spec.md §4.2.
type Manager struct {
	m     Motivation
	rates DecayRates
}

// NewManager creates a Manager starting at the spec's initial motivation.
func NewManager(rates DecayRates) *Manager {
	return &Manager{m: Initial(), rates: rates}
}

// Get returns a copy of the current motivation.
func (mgr *Manager) Get() Motivation { return mgr.m }

// Set overwrites the motivation outright; a testing hook, not used by the
// decision loop itself.
func (mgr *Manager) Set(m Motivation) {
	mgr.m = Motivation{
		Rest:        geo.Clamp01(m.Rest),
		Stimulation: geo.Clamp01(m.Stimulation),
		Exploration: geo.Clamp01(m.Exploration),
	}
}

// behaviorAdjustment is the per-second rate of change applied to each drive
// while the named behavior is running, per spec.md §4.2 step 2.
type behaviorAdjustment struct{ rest, stimulation, exploration float64 }

var adjustments = map[string]behaviorAdjustment{
	"resting":  {rest: 0.010, stimulation: -0.005, exploration: -0.005},
	"playing":  {stimulation: 0.008, rest: -0.008},
	"batting":  {stimulation: 0.008, rest: -0.008},
	"chasing":  {stimulation: 0.008, rest: -0.008},
	"exploring": {exploration: 0.010, rest: -0.006},
	"consuming": {rest: 0.015},
}

// Update applies decay and behavior-specific adjustments for deltaSeconds
// of elapsed time, returning the new (already-clamped) motivation.
func (mgr *Manager) Update(deltaSeconds float64, currentBehavior string) Motivation {
	m := mgr.m

	m.Rest -= mgr.rates.Rest * deltaSeconds
	m.Stimulation -= mgr.rates.Stimulation * deltaSeconds
	m.Exploration -= mgr.rates.Exploration * deltaSeconds

	if adj, ok := adjustments[currentBehavior]; ok {
		m.Rest += adj.rest * deltaSeconds
		m.Stimulation += adj.stimulation * deltaSeconds
		m.Exploration += adj.exploration * deltaSeconds
	}

	m.Rest = geo.Clamp01(m.Rest)
	m.Stimulation = geo.Clamp01(m.Stimulation)
	m.Exploration = geo.Clamp01(m.Exploration)

	mgr.m = m
	return m
}
