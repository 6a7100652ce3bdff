package brain

import (
	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
	"github.com/KyleBlankRollins/meowzer-sub000/decision"
	"github.com/KyleBlankRollins/meowzer-sub000/eventbus"
	"github.com/KyleBlankRollins/meowzer-sub000/motivation"
)

// ReactionKind tags what triggered a ReactionTriggeredEvent.
type ReactionKind string

const (
	ReactionNeed        ReactionKind = "need"
	ReactionYarnMoving   ReactionKind = "yarnMoving"
	ReactionLaser        ReactionKind = "laser"
	ReactionBoundaryHit  ReactionKind = "boundaryHit"
)

// DecisionMadeEvent is published at the end of every decision cycle, per
// spec.md §4.8 step 4.
type DecisionMadeEvent struct {
	Chosen     behavior.Type
	Weights    decision.Weights
	Motivation motivation.Motivation
}

// BehaviorChangeEvent is published only when the selected behavior differs
// from the one previously running, per spec.md §4.8 step 5.
type BehaviorChangeEvent struct {
	Previous   behavior.Type
	Next       behavior.Type
	Motivation motivation.Motivation
}

// ReactionTriggeredEvent is published from the out-of-band reaction path
// (spec.md §4.8) and from boundary-hit handling. ID is empty for a
// boundaryHit reaction; Count is only meaningful for one.
type ReactionTriggeredEvent struct {
	Kind     ReactionKind
	ID       string
	Interest float64
	Count    int
}

// Events bundles the three topics spec.md §6 lists for a Brain.
type Events struct {
	BehaviorChange    *eventbus.Bus[BehaviorChangeEvent]
	DecisionMade      *eventbus.Bus[DecisionMadeEvent]
	ReactionTriggered *eventbus.Bus[ReactionTriggeredEvent]
}

func newEvents() Events {
	return Events{
		BehaviorChange:    eventbus.New[BehaviorChangeEvent](),
		DecisionMade:      eventbus.New[DecisionMadeEvent](),
		ReactionTriggered: eventbus.New[ReactionTriggeredEvent](),
	}
}
