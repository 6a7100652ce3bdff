package brain

import (
	"context"
	"time"

	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
	"github.com/KyleBlankRollins/meowzer-sub000/decision"
	"github.com/KyleBlankRollins/meowzer-sub000/errs"
	"github.com/KyleBlankRollins/meowzer-sub000/geo"
	"github.com/KyleBlankRollins/meowzer-sub000/orchestrator"
)

// TriggerOptions tunes an explicit trigger's movement, per spec.md §4.8's
// "opts" on approachTarget/chaseTarget.
type TriggerOptions struct {
	SpeedOverride float64
}

// ApproachTarget bypasses the decision weights and immediately runs
// approaching toward pos.
func (b *Brain) ApproachTarget(ctx context.Context, pos geo.Position, opts TriggerOptions) (*orchestrator.Task, error) {
	return b.executeTrigger(ctx, behavior.Approaching, 0, behavior.Args{Target: &pos, SpeedOverride: opts.SpeedOverride})
}

// ChaseTarget bypasses the decision weights and immediately runs chasing
// toward pos.
func (b *Brain) ChaseTarget(ctx context.Context, pos geo.Position, opts TriggerOptions) (*orchestrator.Task, error) {
	return b.executeTrigger(ctx, behavior.Chasing, 0, behavior.Args{Target: &pos, SpeedOverride: opts.SpeedOverride})
}

// Consume bypasses the decision weights and immediately runs consuming. A
// zero duration falls back to the behavior's own duration distribution.
func (b *Brain) Consume(ctx context.Context, duration time.Duration) (*orchestrator.Task, error) {
	return b.executeTrigger(ctx, behavior.Consuming, duration, behavior.Args{})
}

// Bat bypasses the decision weights and immediately runs batting.
func (b *Brain) Bat(ctx context.Context, duration time.Duration) (*orchestrator.Task, error) {
	return b.executeTrigger(ctx, behavior.Batting, duration, behavior.Args{})
}

// executeTrigger implements spec.md §4.8's explicit-trigger contract: cancel
// whatever is in flight and run t immediately, still honoring
// isValidTransition against the behavior currently running.
func (b *Brain) executeTrigger(ctx context.Context, t behavior.Type, duration time.Duration, args behavior.Args) (*orchestrator.Task, error) {
	b.mu.Lock()
	if b.state == StateDestroyed {
		b.mu.Unlock()
		return nil, errs.New(errs.InvalidState, "cannot trigger a behavior on a destroyed brain")
	}
	prev := b.prevBehavior
	p := b.personality
	rng := b.lib.Rand()
	b.mu.Unlock()

	if !decision.IsValidTransition(prev, t) {
		return nil, errs.New(errs.InvalidState, "transition from "+string(prev)+" to "+string(t)+" is not allowed")
	}

	if duration <= 0 {
		duration = behavior.DurationFor(t, p.Energy, rng)
	}

	task := b.orch.Execute(ctx, b.motionCtrl, t, duration, args)

	b.mu.Lock()
	b.prevBehavior = t
	b.mu.Unlock()

	if t != prev {
		m := b.motMgr.Get()
		b.Events.BehaviorChange.Publish(BehaviorChangeEvent{Previous: prev, Next: t, Motivation: m})
	}

	return task, nil
}
