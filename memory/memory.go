// Package memory implements the Memory Manager (C3): bounded ring buffers of
// recent positions and behaviors, plus a decaying boundary-hit counter.
package memory

import (
	"time"

	"github.com/KyleBlankRollins/meowzer-sub000/geo"
)

// Bounds configures the FIFO sizes; zero-value Bounds is invalid and must be
// resolved via DefaultBounds before use.
type Bounds struct {
	MaxVisited          int
	MaxPreviousBehaviors int
}

// DefaultBounds matches spec.md §3.
func DefaultBounds() Bounds {
	return Bounds{MaxVisited: 10, MaxPreviousBehaviors: 5}
}

// Manager holds one agent's memory. Not safe for concurrent use — each Brain
// owns its Manager exclusively, per spec.md §5.
type Manager struct {
	bounds Bounds

	visitedPositions  []geo.Position
	previousBehaviors []string
	boundaryHits      float64 // real-valued in [0,5]; rounded only for reporting
	pendingHits       int     // accumulated via RecordBoundaryHit between decisions

	lastInteractionTime time.Time
}

// NewManager creates an empty Manager with the given bounds.
func NewManager(bounds Bounds) *Manager {
	return &Manager{bounds: bounds}
}

// VisitedPositions returns a copy of the recent-position FIFO, oldest first.
func (m *Manager) VisitedPositions() []geo.Position {
	out := make([]geo.Position, len(m.visitedPositions))
	copy(out, m.visitedPositions)
	return out
}

// PreviousBehaviors returns a copy of the recent-behavior FIFO, oldest first.
func (m *Manager) PreviousBehaviors() []string {
	out := make([]string, len(m.previousBehaviors))
	copy(out, m.previousBehaviors)
	return out
}

// BoundaryHits reports the current counter rounded to the nearest integer
// for external display; internal arithmetic stays fractional.
func (m *Manager) BoundaryHits() int {
	return int(m.boundaryHits + 0.5)
}

// BoundaryHitsExact exposes the fractional counter, e.g. for tests.
func (m *Manager) BoundaryHitsExact() float64 { return m.boundaryHits }

// LastInteractionTime returns the timestamp of the last explicit reaction.
func (m *Manager) LastInteractionTime() time.Time { return m.lastInteractionTime }

// RecordBoundaryHit is called between decisions, once per boundary event
// reported by the motion layer. The accumulated count is consumed and reset
// by RecordDecision.
func (m *Manager) RecordBoundaryHit() {
	m.pendingHits++
}

// RecordInteraction stamps the last-interaction timestamp from an explicit
// reaction (approach/consume/bat/chase trigger).
func (m *Manager) RecordInteraction(at time.Time) {
	m.lastInteractionTime = at
}

// RecordDecision appends position and behavior to their FIFOs (trimming to
// the configured bounds) and updates the boundary-hit counter, per
// spec.md §4.3. boundaryHit reflects whether any hit accumulated via
// RecordBoundaryHit since the previous call.
func (m *Manager) RecordDecision(pos geo.Position, behavior string) (boundaryHit bool) {
	m.visitedPositions = append(m.visitedPositions, pos)
	if over := len(m.visitedPositions) - m.bounds.MaxVisited; over > 0 {
		m.visitedPositions = m.visitedPositions[over:]
	}

	m.previousBehaviors = append(m.previousBehaviors, behavior)
	if over := len(m.previousBehaviors) - m.bounds.MaxPreviousBehaviors; over > 0 {
		m.previousBehaviors = m.previousBehaviors[over:]
	}

	boundaryHit = m.pendingHits > 0
	m.pendingHits = 0

	if boundaryHit {
		m.boundaryHits = min(5, m.boundaryHits+1)
	} else {
		m.boundaryHits = max(0, m.boundaryHits-0.1)
	}

	return boundaryHit
}

// CountOccurrences returns how many times tag appears in the previous-
// behaviors FIFO — used by the decision engine's memory penalty.
func (m *Manager) CountOccurrences(tag string) int {
	n := 0
	for _, b := range m.previousBehaviors {
		if b == tag {
			n++
		}
	}
	return n
}
