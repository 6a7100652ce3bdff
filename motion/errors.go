package motion

import "errors"

// ErrCancelled is returned by MoveTo/MoveAlongPath when the move was
// interrupted by Stop or by the caller's context. It is not a caller-input
// error (spec.md §7 models cancellation as a first-class outcome, not an
// exception) — orchestrator.Task treats it as the Cancelled status, not a
// propagated failure.
var ErrCancelled = errors.New("motion: move cancelled")

// ErrDestroyed is returned by MoveTo/MoveAlongPath when the controller was
// destroyed mid-move.
var ErrDestroyed = errors.New("motion: controller destroyed")
