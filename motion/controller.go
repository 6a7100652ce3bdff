// Package motion defines the Motion Controller contract (C5) consumed by the
// simulation core, plus a reference implementation used by tests and the
// demo CLI. The real sprite/tween engine is an external collaborator
// (spec.md §1); anything satisfying Controller can stand in for it.
package motion

import (
	"context"

	"github.com/KyleBlankRollins/meowzer-sub000/geo"
)

// State is the motion layer's coarse animation state.
type State string

const (
	StateIdle    State = "idle"
	StateSitting State = "sitting"
	StateSleeping State = "sleeping"
	StateRunning State = "running"
)

// MoveOptions tunes a path traversal.
type MoveOptions struct {
	Curviness float64 // [0.5, 1.5], only meaningful for moveAlongPath
	Speed     float64 // px/sec override; 0 means "use the controller's default"
}

// BoundaryHitHandler is invoked when a move is clamped to the boundary rect.
type BoundaryHitHandler func(at geo.Position)

// Controller is the contract spec.md §6 gives the Motion Controller: the
// core only ever calls these methods, never reaches into a concrete sprite
// or tween implementation.
type Controller interface {
	ID() string
	Position() geo.Position
	Boundaries() geo.Boundaries
	State() State

	// MoveTo and MoveAlongPath block until the move completes, is cancelled
	// by Stop, or the controller is destroyed (in which case they return
	// ErrDestroyed). Cancellation via ctx or Stop returns ErrCancelled.
	MoveTo(ctx context.Context, x, y float64, durationMs int, opts MoveOptions) error
	MoveAlongPath(ctx context.Context, points []geo.Position, durationMs int, opts MoveOptions) error

	Stop()
	SetState(State)
	SetPosition(x, y float64)
	Destroy()

	// OnBoundaryHit registers a handler invoked each time a move is clamped
	// to the boundary rectangle. Returns an unsubscribe function.
	OnBoundaryHit(h BoundaryHitHandler) (unsubscribe func())
}
