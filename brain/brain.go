// Package brain implements the Brain (C9): the decision loop that composes
// personality, motivation, memory, and stimuli into behavior selection, plus
// the out-of-band reaction path and explicit trigger methods.
package brain

import (
	"context"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
	"github.com/KyleBlankRollins/meowzer-sub000/config"
	"github.com/KyleBlankRollins/meowzer-sub000/decision"
	"github.com/KyleBlankRollins/meowzer-sub000/errs"
	"github.com/KyleBlankRollins/meowzer-sub000/interaction"
	"github.com/KyleBlankRollins/meowzer-sub000/memory"
	"github.com/KyleBlankRollins/meowzer-sub000/motion"
	"github.com/KyleBlankRollins/meowzer-sub000/motivation"
	"github.com/KyleBlankRollins/meowzer-sub000/orchestrator"
	"github.com/KyleBlankRollins/meowzer-sub000/personality"
)

// State is the Brain's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
	StateDestroyed
)

// Options configures a new Brain. Every field is optional; a zero Options
// resolves to the balanced preset, default config, and no environment.
type Options struct {
	Personality any // personality.Name, string, or personality.Personality
	Environment *interaction.Registry
	Config      *config.Config
}

// Brain is a single agent's decision engine, driving one motion.Controller.
type Brain struct {
	Events Events

	mu          sync.Mutex
	motionCtrl  motion.Controller
	lib         *behavior.Library
	orch        *orchestrator.Orchestrator
	registry    *interaction.Registry
	cfg         *config.Config
	personality personality.Personality
	motMgr      *motivation.Manager
	memMgr      *memory.Manager

	state        State
	prevBehavior behavior.Type
	lastUpdate   time.Time
	boundaryHits int

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
	unsubs     []func()
}

// New creates a Brain driving motionCtrl, sharing lib (and its randomness
// stream) with the Behavior Orchestrator's dispatch.
func New(motionCtrl motion.Controller, lib *behavior.Library, opts Options) (*Brain, error) {
	p, err := personality.Resolve(firstNonNil(opts.Personality, personality.Balanced))
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg, err = config.Defaults()
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Brain{
		Events:       newEvents(),
		motionCtrl:   motionCtrl,
		lib:          lib,
		orch:         orchestrator.New(lib),
		registry:     opts.Environment,
		cfg:          cfg,
		personality:  p,
		motMgr:       motivation.NewManager(motivation.DecayRates(cfg.MotivationDecay)),
		memMgr:       memory.NewManager(memory.Bounds{MaxVisited: cfg.Memory.MaxVisited, MaxPreviousBehaviors: cfg.Memory.MaxPreviousBehaviors}),
		state:        StateIdle,
		prevBehavior: behavior.Wandering,
	}

	b.unsubs = b.subscribeReactions(opts.Environment)
	b.unsubs = append(b.unsubs, b.motionCtrl.OnBoundaryHit(b.onBoundaryHit))

	return b, nil
}

func firstNonNil(v any, fallback personality.Name) any {
	if v == nil {
		return fallback
	}
	return v
}

// Start begins the decision loop. Starting an already-running Brain is a
// no-op; starting a destroyed one is InvalidState.
func (b *Brain) Start() error {
	b.mu.Lock()
	if b.state == StateDestroyed {
		b.mu.Unlock()
		return errs.New(errs.InvalidState, "cannot start a destroyed brain")
	}
	if b.state == StateRunning {
		b.mu.Unlock()
		return nil
	}
	b.state = StateRunning
	b.lastUpdate = time.Now()
	ctx, cancel := context.WithCancel(context.Background())
	b.cancelLoop = cancel
	b.loopDone = make(chan struct{})
	done := b.loopDone
	b.mu.Unlock()

	go b.runLoop(ctx, done)
	return nil
}

// Stop halts the decision loop. At most one in-flight behavior task
// resolves (as cancelled) after Stop returns; no new decision is scheduled.
func (b *Brain) Stop() {
	b.mu.Lock()
	if b.state != StateRunning {
		b.mu.Unlock()
		return
	}
	b.state = StateStopped
	cancel := b.cancelLoop
	done := b.loopDone
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Destroy stops the loop (if running), unsubscribes from the environment,
// and marks the Brain permanently destroyed. Idempotent.
func (b *Brain) Destroy() {
	b.mu.Lock()
	if b.state == StateDestroyed {
		b.mu.Unlock()
		return
	}
	wasRunning := b.state == StateRunning
	cancel := b.cancelLoop
	done := b.loopDone
	unsubs := b.unsubs
	b.state = StateDestroyed
	b.mu.Unlock()

	if wasRunning {
		if cancel != nil {
			cancel()
		}
		if done != nil {
			<-done
		}
	}
	for _, u := range unsubs {
		u()
	}
}

// SetPersonality replaces the agent's personality, validating the input per
// personality.Resolve.
func (b *Brain) SetPersonality(input any) error {
	p, err := personality.Resolve(input)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.personality = p
	b.mu.Unlock()
	return nil
}

// SetEnvironment rebinds the Brain to a different Interaction Registry,
// re-subscribing the reaction path. A nil registry leaves the Brain with no
// environmental stimuli.
func (b *Brain) SetEnvironment(env *interaction.Registry) {
	b.mu.Lock()
	oldUnsubs := b.unsubs
	b.registry = env
	b.mu.Unlock()

	for _, u := range oldUnsubs {
		u()
	}
	newUnsubs := b.subscribeReactions(env)
	newUnsubs = append(newUnsubs, b.motionCtrl.OnBoundaryHit(b.onBoundaryHit))

	b.mu.Lock()
	b.unsubs = newUnsubs
	b.mu.Unlock()
}

// State reports the Brain's current lifecycle state.
func (b *Brain) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Brain) runLoop(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		delay := b.nextDecisionDelay()
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		if ctx.Err() != nil {
			return
		}
		b.decide(ctx)
		if ctx.Err() != nil {
			return
		}
	}
}

func (b *Brain) nextDecisionDelay() time.Duration {
	b.mu.Lock()
	minMs := float64(b.cfg.DecisionInterval.MinMs)
	maxMs := float64(b.cfg.DecisionInterval.MaxMs)
	rng := b.lib.Rand()
	b.mu.Unlock()
	if minMs >= maxMs {
		return time.Duration(minMs) * time.Millisecond
	}
	ms := distuv.Uniform{Min: minMs, Max: maxMs, Src: rng}.Rand()
	return time.Duration(ms) * time.Millisecond
}

// decide runs exactly one decision cycle: spec.md §4.8 steps 1-8.
func (b *Brain) decide(ctx context.Context) {
	now := time.Now()

	b.mu.Lock()
	deltaSeconds := now.Sub(b.lastUpdate).Seconds()
	b.lastUpdate = now
	prev := b.prevBehavior
	p := b.personality
	registry := b.registry
	detection := b.cfg.Detection
	rng := b.lib.Rand()
	pendingBoundaryHits := b.boundaryHits
	b.boundaryHits = 0
	b.mu.Unlock()

	if pendingBoundaryHits > 0 {
		for i := 0; i < pendingBoundaryHits; i++ {
			b.memMgr.RecordBoundaryHit()
		}
	}

	m := b.motMgr.Update(deltaSeconds, string(prev))
	pos := b.motionCtrl.Position()

	env := gatherEnvironment(registry, pos, detection)
	weights := decision.ComputeWeights(p, m, b.memMgr.PreviousBehaviors(), b.memMgr.BoundaryHitsExact(), env, prev)
	selected := decision.SelectBehavior(weights, rng)

	if !decision.IsValidTransition(prev, selected) {
		selected = behavior.Wandering
	}

	b.Events.DecisionMade.Publish(DecisionMadeEvent{Chosen: selected, Weights: weights, Motivation: m})
	if selected != prev {
		b.Events.BehaviorChange.Publish(BehaviorChangeEvent{Previous: prev, Next: selected, Motivation: m})
	}

	b.memMgr.RecordDecision(pos, string(selected))

	args := behaviorArgsFor(selected, env, b.memMgr.VisitedPositions())
	duration := behavior.DurationFor(selected, p.Energy, rng)

	task := b.orch.Execute(ctx, b.motionCtrl, selected, duration, args)
	select {
	case <-ctx.Done():
		task.Cancel()
	case <-task.Done():
	}

	b.mu.Lock()
	b.prevBehavior = selected
	b.mu.Unlock()
}
