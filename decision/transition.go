package decision

import "github.com/KyleBlankRollins/meowzer-sub000/behavior"

// IsValidTransition reports whether switching from the current behavior to
// the candidate one is allowed, per spec.md §4.6's transition rules. from is
// always the behavior the agent is currently running (or just finished), so
// a one-cycle restriction is naturally expressed as a rule keyed on from.
func IsValidTransition(from, to behavior.Type) bool {
	switch {
	case from == behavior.Consuming && to == behavior.Consuming:
		// Consuming never directly follows consuming; another behavior
		// must run in between.
		return false
	case from == behavior.Chasing && to == behavior.Resting:
		// A cat that was just sprinting doesn't drop straight into sleep.
		return false
	}

	if to == behavior.Resting || to == behavior.Wandering {
		return true
	}

	if from == behavior.Observing && (to == behavior.Wandering || to == behavior.Exploring) {
		return true
	}

	return true
}
