package behavior

import (
	"context"
	"time"

	"github.com/KyleBlankRollins/meowzer-sub000/motion"
)

// Func is the common signature every behavior satisfies, dispatched by tag
// rather than by a subclass hierarchy (spec.md §9's re-architecture of the
// source's deep inheritance).
type Func func(ctx context.Context, m motion.Controller, duration time.Duration, args Args) error

// Dispatch returns the Func implementing t.
func (l *Library) Dispatch(t Type) Func {
	switch t {
	case Wandering:
		return l.Wandering
	case Resting:
		return l.Resting
	case Playing:
		return l.Playing
	case Observing:
		return l.Observing
	case Exploring:
		return l.Exploring
	case Approaching:
		return l.Approaching
	case Consuming:
		return l.Consuming
	case Chasing:
		return l.Chasing
	case Batting:
		return l.Batting
	default:
		return l.Wandering
	}
}
