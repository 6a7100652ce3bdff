package behavior

import (
	"context"
	"errors"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/KyleBlankRollins/meowzer-sub000/geo"
	"github.com/KyleBlankRollins/meowzer-sub000/motion"
)

// Args carries the optional per-invocation inputs spec.md §4.7 gives a
// behavior through the orchestrator's context: a target position (approach/
// chase), recent positions to avoid revisiting (explore), and a speed
// override (approach/chase).
type Args struct {
	Target           *geo.Position
	VisitedPositions []geo.Position
	SpeedOverride    float64
}

// Library holds the shared randomness source behaviors draw from. One
// Library is typically shared by every Brain in a process, mirroring the
// teacher's single BehaviorSystem holding one *PerlinNoise generator.
type Library struct {
	rng   *rand.Rand
	noise opensimplex.Noise
}

// NewLibrary creates a Library seeded from seed. A fixed seed makes
// behavior output reproducible for tests; the demo CLI seeds from time.
func NewLibrary(seed int64) *Library {
	return &Library{
		rng:   rand.New(rand.NewSource(uint64(seed))),
		noise: opensimplex.New(seed),
	}
}

// Rand exposes the shared *rand.Rand, e.g. for the decision engine's
// weighted selection (and gonum's stat/distuv, stat/sampleuv samplers,
// which require golang.org/x/exp/rand.Source rather than math/rand's) to
// share one stream with the behavior library.
func (l *Library) Rand() *rand.Rand { return l.rng }

// waitFor blocks for d of real time, or returns early if ctx is cancelled.
// It never returns an error of its own — callers translate cancellation by
// checking ctx.Err().
func waitFor(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// cancelled reports whether ctx ended the behavior early.
func cancelled(ctx context.Context) bool {
	return ctx.Err() != nil
}

// Wandering picks a random target inside the controller's boundaries and
// follows a curved path to it, per spec.md §4.5.
func (l *Library) Wandering(ctx context.Context, m motion.Controller, duration time.Duration, _ Args) error {
	m.SetState(motion.StateIdle)
	start := m.Position()
	target := m.Boundaries().RandomPoint(l.rng.Float64)
	style := pickWanderStyle(l.rng)
	path := synthesizeWanderPath(start, target, style, l.rng, l.noise)
	return translateCancel(m.MoveAlongPath(ctx, path, int(duration.Milliseconds()), motion.MoveOptions{}))
}

// Resting holds in place, sitting for short rests and sleeping for long
// ones, per spec.md §4.5's duration-dependent state.
func (l *Library) Resting(ctx context.Context, m motion.Controller, duration time.Duration, _ Args) error {
	m.Stop()
	if duration <= 5000*time.Millisecond {
		m.SetState(motion.StateSitting)
	} else {
		m.SetState(motion.StateSleeping)
	}
	waitFor(ctx, duration)
	if cancelled(ctx) {
		return nil
	}
	return nil
}

// Playing repeatedly sprints to random targets using a zigzag/sharp-turn/
// spiral path, pausing briefly between sprints, until duration elapses.
func (l *Library) Playing(ctx context.Context, m motion.Controller, duration time.Duration, _ Args) error {
	m.SetState(motion.StateIdle)
	deadline := time.Now().Add(duration)

	for time.Now().Before(deadline) {
		if cancelled(ctx) {
			return nil
		}
		start := m.Position()
		target := m.Boundaries().RandomPoint(l.rng.Float64)
		style := pickPlayStyle(l.rng)
		path := synthesizePlayPath(start, target, style, l.rng)

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil
		}
		sprintMs := remaining.Milliseconds()
		if sprintMs > 1500 {
			sprintMs = 1500
		}
		if err := translateCancel(m.MoveAlongPath(ctx, path, int(sprintMs), motion.MoveOptions{})); err != nil {
			return err
		}
		if cancelled(ctx) {
			return nil
		}

		pause := distuv.Uniform{Min: 200, Max: 500, Src: l.rng}.Rand()
		waitFor(ctx, time.Duration(pause)*time.Millisecond)
	}
	return nil
}

// Observing holds in place, sitting, while watching the environment.
func (l *Library) Observing(ctx context.Context, m motion.Controller, duration time.Duration, _ Args) error {
	m.Stop()
	m.SetState(motion.StateSitting)
	waitFor(ctx, duration)
	return nil
}

// Exploring samples candidate targets and moves toward the one farthest
// (by minimum distance) from recently visited positions.
func (l *Library) Exploring(ctx context.Context, m motion.Controller, duration time.Duration, args Args) error {
	m.SetState(motion.StateIdle)
	bounds := m.Boundaries()

	const candidates = 10
	var best geo.Position
	bestScore := -1.0
	for i := 0; i < candidates; i++ {
		cand := bounds.RandomPoint(l.rng.Float64)
		score := minDistanceTo(cand, args.VisitedPositions)
		if score > bestScore {
			bestScore = score
			best = cand
		}
	}
	return translateCancel(m.MoveTo(ctx, best.X, best.Y, int(duration.Milliseconds()), motion.MoveOptions{}))
}

// minDistanceTo returns the minimum distance from p to any of pts, or 1e18
// if pts is empty (so an agent with no history treats every candidate as
// equally novel).
func minDistanceTo(p geo.Position, pts []geo.Position) float64 {
	if len(pts) == 0 {
		return 1e18
	}
	min := geo.Distance(p, pts[0])
	for _, q := range pts[1:] {
		if d := geo.Distance(p, q); d < min {
			min = d
		}
	}
	return min
}

// Approaching moves straight to args.Target at a U(80,150) speed (or
// args.SpeedOverride), with duration capped by dist/speed.
func (l *Library) Approaching(ctx context.Context, m motion.Controller, duration time.Duration, args Args) error {
	if args.Target == nil {
		return errors.New("behavior: approaching requires a target")
	}
	m.SetState(motion.StateIdle)
	speed := args.SpeedOverride
	if speed <= 0 {
		speed = distuv.Uniform{Min: 80, Max: 150, Src: l.rng}.Rand()
	}
	return straightMove(ctx, m, *args.Target, duration, speed)
}

// Consuming holds in place, sitting, eating.
func (l *Library) Consuming(ctx context.Context, m motion.Controller, duration time.Duration, _ Args) error {
	m.Stop()
	m.SetState(motion.StateSitting)
	waitFor(ctx, duration)
	return nil
}

// Chasing moves straight to args.Target (the stimulus's current position)
// at a U(150,250) speed (or args.SpeedOverride).
func (l *Library) Chasing(ctx context.Context, m motion.Controller, duration time.Duration, args Args) error {
	if args.Target == nil {
		return errors.New("behavior: chasing requires a target")
	}
	m.SetState(motion.StateRunning)
	speed := args.SpeedOverride
	if speed <= 0 {
		speed = distuv.Uniform{Min: 150, Max: 250, Src: l.rng}.Rand()
	}
	return straightMove(ctx, m, *args.Target, duration, speed)
}

// Batting holds in place, sitting, while the motion layer plays a swipe
// animation (delegated — the core only needs to hold position).
func (l *Library) Batting(ctx context.Context, m motion.Controller, duration time.Duration, _ Args) error {
	m.Stop()
	m.SetState(motion.StateSitting)
	waitFor(ctx, duration)
	return nil
}

// straightMove moves to target, capping duration at dist/speed seconds.
func straightMove(ctx context.Context, m motion.Controller, target geo.Position, duration time.Duration, speedPxPerSec float64) error {
	dist := geo.Distance(m.Position(), target)
	capMs := time.Duration(0)
	if speedPxPerSec > 0 {
		capMs = time.Duration(dist/speedPxPerSec*1000) * time.Millisecond
	}
	if capMs > 0 && capMs < duration {
		duration = capMs
	}
	return translateCancel(m.MoveTo(ctx, target.X, target.Y, int(duration.Milliseconds()), motion.MoveOptions{Speed: speedPxPerSec}))
}

// translateCancel converts the motion layer's context-driven cancellation
// into a nil return — per spec.md §4.5/§7, a behavior "completes or is
// cancelled", and cancellation through the task's own ctx is not surfaced
// as a Go error. ErrDestroyed is left as a real error: it did not come from
// the orchestrator's own stop signal, so the orchestrator needs to see it
// to resolve the task as cancelled per spec.md §4.7's destroy clause.
func translateCancel(err error) error {
	if errors.Is(err, motion.ErrCancelled) {
		return nil
	}
	return err
}
