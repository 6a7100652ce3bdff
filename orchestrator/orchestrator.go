// Package orchestrator implements the Behavior Orchestrator (C8): it holds
// at most one in-flight behavior task and gives the Brain a synchronous
// cancel/replace contract over the Behavior Library's async functions.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
	"github.com/KyleBlankRollins/meowzer-sub000/motion"
)

// Status is a task's terminal state. There is no "rejected" status — per
// spec.md §4.7 a task always resolves, never errors out to its caller.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Result is what a Task resolves to.
type Result struct {
	Behavior behavior.Type
	Status   Status
}

// Task wraps one in-flight behavior invocation. Done is closed exactly once,
// when the task resolves; Result is only meaningful after that.
type Task struct {
	behaviorType behavior.Type
	done         chan struct{}
	result       Result
	cancel       context.CancelFunc
}

// Done returns a channel closed when the task resolves.
func (t *Task) Done() <-chan struct{} { return t.done }

// Result returns the task's resolution. Valid only after Done is closed;
// blocks callers who want that guarantee should select on Done first.
func (t *Task) Result() Result { return t.result }

// Cancel synchronously instructs the motion layer to stop (via ctx) and
// blocks until the task has resolved as cancelled. Calling Cancel more than
// once, or after the task already completed on its own, is safe — it just
// observes whatever the task already resolved to.
func (t *Task) Cancel() Result {
	t.cancel()
	<-t.done
	return t.result
}

func (t *Task) resolve(r Result) {
	t.result = r
	close(t.done)
}

// Orchestrator runs behavior.Library functions against a motion.Controller,
// enforcing the "at most one in-flight task" rule spec.md §4.7 requires.
type Orchestrator struct {
	mu      sync.Mutex
	lib     *behavior.Library
	current *Task
}

// New creates an Orchestrator driving behaviors from lib.
func New(lib *behavior.Library) *Orchestrator {
	return &Orchestrator{lib: lib}
}

// IsIdle reports whether no task is currently in flight.
func (o *Orchestrator) IsIdle() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current == nil
}

// Execute starts t as the new in-flight task, implicitly cancelling and
// awaiting any task already running. parent's cancellation also cancels the
// returned task (e.g. the Brain's own stop/destroy signal).
func (o *Orchestrator) Execute(parent context.Context, m motion.Controller, t behavior.Type, duration time.Duration, args behavior.Args) *Task {
	o.mu.Lock()
	prev := o.current
	o.mu.Unlock()
	if prev != nil {
		prev.Cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	task := &Task{behaviorType: t, done: make(chan struct{}), cancel: cancel}

	o.mu.Lock()
	o.current = task
	o.mu.Unlock()

	go o.run(ctx, task, m, t, duration, args)

	return task
}

// Cancel stops whatever task is currently in flight, if any, and waits for
// it to resolve.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	cur := o.current
	o.mu.Unlock()
	if cur != nil {
		cur.Cancel()
	}
}

func (o *Orchestrator) run(ctx context.Context, task *Task, m motion.Controller, t behavior.Type, duration time.Duration, args behavior.Args) {
	fn := o.lib.Dispatch(t)
	err := fn(ctx, m, duration, args)

	status := StatusCompleted
	switch {
	case ctx.Err() != nil:
		status = StatusCancelled
	case errors.Is(err, motion.ErrDestroyed):
		status = StatusCancelled
	case err != nil:
		// Propagation policy, spec.md §7: errors from inside a behavior task
		// (other than cancellation) are logged and the task resolves as if
		// cancelled; the decision loop continues undisturbed.
		slog.Error("behavior task failed", "behavior", t, "error", err)
		status = StatusCancelled
	}

	o.mu.Lock()
	if o.current == task {
		o.current = nil
	}
	o.mu.Unlock()

	task.resolve(Result{Behavior: t, Status: status})
}
