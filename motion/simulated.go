package motion

import (
	"context"
	"sync"
	"time"

	"github.com/KyleBlankRollins/meowzer-sub000/geo"
)

// stepPeriod is the tick rate used to animate a move. Real tween engines
// interpolate continuously; a fixed step is enough to honor cancellation
// promptly and to report intermediate boundary hits.
const stepPeriod = 20 * time.Millisecond

// Simulated is a reference Controller used by tests and the demo CLI in
// place of the real sprite/tween engine. It moves linearly between
// waypoints over wall-clock time, scaled by TimeScale so tests can run
// multi-second moves quickly. TimeScale applies only to MoveTo and
// MoveAlongPath; time a caller spends waiting between or instead of moves
// is not scaled.
type Simulated struct {
	mu sync.Mutex

	id         string
	pos        geo.Position
	bounds     geo.Boundaries
	state      State
	destroyed  bool
	cancelMove context.CancelFunc

	// TimeScale multiplies every move's duration; 1.0 is real time, smaller
	// values run faster. Set before use; not safe to change mid-move.
	TimeScale float64

	handlers   map[int]BoundaryHitHandler
	nextHandle int
}

// NewSimulated creates a Simulated controller at pos within bounds.
func NewSimulated(id string, pos geo.Position, bounds geo.Boundaries) *Simulated {
	return &Simulated{
		id:        id,
		pos:       pos,
		bounds:    bounds,
		state:     StateIdle,
		TimeScale: 1.0,
		handlers:  make(map[int]BoundaryHitHandler),
	}
}

func (c *Simulated) ID() string { c.mu.Lock(); defer c.mu.Unlock(); return c.id }

func (c *Simulated) Position() geo.Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

func (c *Simulated) Boundaries() geo.Boundaries {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bounds
}

func (c *Simulated) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Simulated) SetState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

func (c *Simulated) SetPosition(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pos = geo.Position{X: x, Y: y}
}

func (c *Simulated) Stop() {
	c.mu.Lock()
	cancel := c.cancelMove
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (c *Simulated) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	cancel := c.cancelMove
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (c *Simulated) isDestroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}

func (c *Simulated) OnBoundaryHit(h BoundaryHitHandler) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	handle := c.nextHandle
	c.nextHandle++
	c.handlers[handle] = h
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.handlers, handle)
	}
}

func (c *Simulated) emitBoundaryHit(at geo.Position) {
	c.mu.Lock()
	handlers := make([]BoundaryHitHandler, 0, len(c.handlers))
	for _, h := range c.handlers {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()
	for _, h := range handlers {
		h(at)
	}
}

// MoveTo interpolates linearly from the current position to (x,y).
func (c *Simulated) MoveTo(ctx context.Context, x, y float64, durationMs int, opts MoveOptions) error {
	target := geo.Position{X: x, Y: y}
	start := c.Position()
	return c.run(ctx, durationMs, func(t float64) geo.Position {
		return lerp(start, target, t)
	})
}

// MoveAlongPath interpolates through each waypoint in order, splitting the
// total duration proportionally to the path's segment lengths.
func (c *Simulated) MoveAlongPath(ctx context.Context, points []geo.Position, durationMs int, opts MoveOptions) error {
	if len(points) == 0 {
		return nil
	}
	start := c.Position()
	full := append([]geo.Position{start}, points...)
	segLens := make([]float64, len(full)-1)
	total := 0.0
	for i := range segLens {
		segLens[i] = geo.Distance(full[i], full[i+1])
		total += segLens[i]
	}
	if total == 0 {
		c.SetPosition(full[len(full)-1].X, full[len(full)-1].Y)
		return nil
	}
	return c.run(ctx, durationMs, func(t float64) geo.Position {
		target := t * total
		acc := 0.0
		for i, l := range segLens {
			if acc+l >= target || i == len(segLens)-1 {
				segT := 1.0
				if l > 0 {
					segT = (target - acc) / l
				}
				return lerp(full[i], full[i+1], geo.Clamp01(segT))
			}
			acc += l
		}
		return full[len(full)-1]
	})
}

// run drives position(t) for t in [0,1] over durationMs of (scaled) wall
// time, clamping to bounds and reporting boundary hits, until completion,
// cancellation, or destruction.
func (c *Simulated) run(ctx context.Context, durationMs int, position func(t float64) geo.Position) error {
	if c.isDestroyed() {
		return ErrDestroyed
	}

	moveCtx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		cancel()
		return ErrDestroyed
	}
	c.cancelMove = cancel
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		if c.cancelMove != nil {
			c.cancelMove = nil
		}
		c.mu.Unlock()
		cancel()
	}()

	scale := c.TimeScale
	if scale <= 0 {
		scale = 1.0
	}
	if durationMs <= 0 {
		durationMs = 1
	}
	total := time.Duration(float64(durationMs) * scale * float64(time.Millisecond))
	steps := int(total / stepPeriod)
	if steps < 1 {
		steps = 1
	}
	step := total / time.Duration(steps)

	ticker := time.NewTicker(step)
	defer ticker.Stop()

	for i := 1; i <= steps; i++ {
		select {
		case <-moveCtx.Done():
			if c.isDestroyed() {
				return ErrDestroyed
			}
			return ErrCancelled
		case <-ticker.C:
			t := float64(i) / float64(steps)
			raw := position(t)
			clamped, hit := c.Boundaries().Clamp(raw)
			c.SetPosition(clamped.X, clamped.Y)
			if hit {
				c.emitBoundaryHit(clamped)
			}
		}
	}
	return nil
}

func lerp(a, b geo.Position, t float64) geo.Position {
	return geo.Position{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
