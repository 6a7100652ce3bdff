package interaction

import (
	"github.com/KyleBlankRollins/meowzer-sub000/eventbus"
	"github.com/KyleBlankRollins/meowzer-sub000/geo"
)

// NeedPlacedEvent is published when a need is placed.
type NeedPlacedEvent struct {
	Need Need
}

// NeedRemovedEvent is published when a need is removed.
type NeedRemovedEvent struct {
	ID string
}

// YarnPlacedEvent is published when a yarn is placed.
type YarnPlacedEvent struct {
	Yarn Yarn
}

// YarnMovedEvent is published when a yarn's position or state changes.
type YarnMovedEvent struct {
	Yarn Yarn
	From geo.Position
}

// YarnRemovedEvent is published when a yarn is removed.
type YarnRemovedEvent struct {
	ID string
}

// LaserActivatedEvent is published when the laser turns on.
type LaserActivatedEvent struct {
	Laser Laser
}

// LaserMovedEvent is published when the active laser's position changes.
type LaserMovedEvent struct {
	Laser Laser
	From  geo.Position
}

// LaserDeactivatedEvent is published when the laser turns off.
type LaserDeactivatedEvent struct{}

// Events is the closed set of topic buses a Registry exposes, one per
// spec.md §4.4 topic.
type Events struct {
	NeedPlaced       *eventbus.Bus[NeedPlacedEvent]
	NeedRemoved      *eventbus.Bus[NeedRemovedEvent]
	YarnPlaced       *eventbus.Bus[YarnPlacedEvent]
	YarnMoved        *eventbus.Bus[YarnMovedEvent]
	YarnRemoved      *eventbus.Bus[YarnRemovedEvent]
	LaserActivated   *eventbus.Bus[LaserActivatedEvent]
	LaserMoved       *eventbus.Bus[LaserMovedEvent]
	LaserDeactivated *eventbus.Bus[LaserDeactivatedEvent]
}

func newEvents() Events {
	return Events{
		NeedPlaced:       eventbus.New[NeedPlacedEvent](),
		NeedRemoved:      eventbus.New[NeedRemovedEvent](),
		YarnPlaced:       eventbus.New[YarnPlacedEvent](),
		YarnMoved:        eventbus.New[YarnMovedEvent](),
		YarnRemoved:      eventbus.New[YarnRemovedEvent](),
		LaserActivated:   eventbus.New[LaserActivatedEvent](),
		LaserMoved:       eventbus.New[LaserMovedEvent](),
		LaserDeactivated: eventbus.New[LaserDeactivatedEvent](),
	}
}
