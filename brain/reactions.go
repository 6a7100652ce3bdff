package brain

import (
	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
	"github.com/KyleBlankRollins/meowzer-sub000/decision"
	"github.com/KyleBlankRollins/meowzer-sub000/eventbus"
	"github.com/KyleBlankRollins/meowzer-sub000/geo"
	"github.com/KyleBlankRollins/meowzer-sub000/interaction"
	"github.com/KyleBlankRollins/meowzer-sub000/personality"
)

func subscribe[T any](bus *eventbus.Bus[T], fn func(T)) func() {
	id := bus.Subscribe(fn)
	return func() { bus.Unsubscribe(id) }
}

// subscribeReactions wires the out-of-band reaction path of spec.md §4.8 to
// registry's event topics. A nil registry yields no subscriptions.
func (b *Brain) subscribeReactions(registry *interaction.Registry) []func() {
	if registry == nil {
		return nil
	}
	return []func(){
		subscribe(registry.Events.NeedPlaced, func(e interaction.NeedPlacedEvent) {
			b.reactToNeed(e.Need)
		}),
		subscribe(registry.Events.YarnPlaced, func(e interaction.YarnPlacedEvent) {
			b.reactToYarn(e.Yarn)
		}),
		subscribe(registry.Events.YarnMoved, func(e interaction.YarnMovedEvent) {
			b.reactToYarn(e.Yarn)
		}),
		subscribe(registry.Events.LaserActivated, func(e interaction.LaserActivatedEvent) {
			b.reactToLaser(e.Laser)
		}),
		subscribe(registry.Events.LaserMoved, func(e interaction.LaserMovedEvent) {
			b.reactToLaser(e.Laser)
		}),
	}
}

type reactionContext struct {
	personality personality.Personality
	current     behavior.Type
	running     bool
	detection   struct{ need, yarn, yarnMoving, laser float64 }
	threshold   float64
}

func (b *Brain) reactionSnapshot() reactionContext {
	b.mu.Lock()
	defer b.mu.Unlock()
	rc := reactionContext{
		personality: b.personality,
		current:     b.prevBehavior,
		running:     b.state == StateRunning,
		threshold:   b.cfg.ReactionThreshold,
	}
	rc.detection.need = b.cfg.Detection.Need
	rc.detection.yarn = b.cfg.Detection.Yarn
	rc.detection.yarnMoving = b.cfg.Detection.YarnMoving
	rc.detection.laser = b.cfg.Detection.Laser
	return rc
}

func (b *Brain) reactToNeed(n interaction.Need) {
	rc := b.reactionSnapshot()
	if !rc.running {
		return
	}
	pos := b.motionCtrl.Position()
	dist := geo.Distance(pos, n.Position)
	if dist > rc.detection.need {
		return
	}
	interest := decision.Interest(needToKind(n.Kind), false, rc.personality, rc.current, b.motMgr.Get(), dist)
	if interest <= rc.threshold || rc.personality.Independence >= 0.5 {
		return
	}
	b.Events.ReactionTriggered.Publish(ReactionTriggeredEvent{Kind: ReactionNeed, ID: n.ID, Interest: interest})
}

func (b *Brain) reactToYarn(y interaction.Yarn) {
	rc := b.reactionSnapshot()
	if !rc.running {
		return
	}
	rolling := yarnRolling(y.State)
	radius := rc.detection.yarn
	if rolling {
		radius = rc.detection.yarnMoving
	}
	pos := b.motionCtrl.Position()
	dist := geo.Distance(pos, y.Position)
	if dist > radius {
		return
	}
	interest := decision.Interest(decision.KindYarn, rolling, rc.personality, rc.current, b.motMgr.Get(), dist)
	if interest <= rc.threshold {
		return
	}
	if rolling && rc.personality.Energy <= 0.4 {
		return
	}
	b.Events.ReactionTriggered.Publish(ReactionTriggeredEvent{Kind: ReactionYarnMoving, ID: y.ID, Interest: interest})
}

func (b *Brain) reactToLaser(l interaction.Laser) {
	if !l.Active {
		return
	}
	rc := b.reactionSnapshot()
	if !rc.running {
		return
	}
	pos := b.motionCtrl.Position()
	dist := geo.Distance(pos, l.Position)
	if dist > rc.detection.laser {
		return
	}
	if rc.personality.Curiosity <= 0.3 {
		return
	}
	interest := decision.Interest(decision.KindYarn, true, rc.personality, rc.current, b.motMgr.Get(), dist)
	if interest <= rc.threshold {
		return
	}
	b.Events.ReactionTriggered.Publish(ReactionTriggeredEvent{Kind: ReactionLaser, Interest: interest})
}

// onBoundaryHit implements spec.md §4.8's boundary handling: each hit
// increments a transient counter, consumed at the next decision, and emits
// an immediate reactionTriggered.
func (b *Brain) onBoundaryHit(_ geo.Position) {
	b.mu.Lock()
	if b.state != StateRunning {
		b.mu.Unlock()
		return
	}
	b.boundaryHits++
	count := b.boundaryHits
	b.mu.Unlock()

	b.Events.ReactionTriggered.Publish(ReactionTriggeredEvent{Kind: ReactionBoundaryHit, Count: count})
}
