// Package decision implements the Decision Engine (C7): behavior-weight
// scoring, weighted selection, and transition validation.
package decision

import (
	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
	"github.com/KyleBlankRollins/meowzer-sub000/motivation"
	"github.com/KyleBlankRollins/meowzer-sub000/personality"
)

// Weights maps every behavior to its current (non-negative) score.
type Weights map[behavior.Type]float64

// memoryPenalty implements spec.md §4.6 contract 3: a behavior seen k times
// recently has its weight multiplied by max(0.2, 1-0.3k).
func memoryPenalty(k int) float64 {
	factor := 1 - 0.3*float64(k)
	if factor < 0.2 {
		factor = 0.2
	}
	return factor
}

// ComputeWeights scores every behavior from personality, motivation, recent
// history, and gathered stimuli. It is a pure function: identical inputs
// always produce identical output (spec.md §8's round-trip property).
func ComputeWeights(p personality.Personality, m motivation.Motivation, previousBehaviors []string, boundaryHits float64, env Environment, current behavior.Type) Weights {
	w := Weights{
		behavior.Wandering:   0.5 + 0.1*m.Exploration,
		behavior.Resting:     nonNeg(0.1 + 0.8*(1-p.Energy) + 0.5*m.Rest),
		behavior.Playing:     nonNeg(0.1 + 0.6*p.Playfulness + 0.4*p.Energy + 0.5*m.Stimulation),
		behavior.Observing:   nonNeg(0.1 + 0.5*p.Curiosity - 0.3*p.Energy),
		behavior.Exploring:   nonNeg(0.1 + 0.7*p.Curiosity + 0.5*m.Exploration),
		behavior.Approaching: 0,
		behavior.Consuming:   0,
		behavior.Chasing:     0,
		behavior.Batting:     0,
	}

	occurrences := make(map[string]int, len(previousBehaviors))
	for _, tag := range previousBehaviors {
		occurrences[tag]++
	}
	for tag := range w {
		w[tag] *= memoryPenalty(occurrences[string(tag)])
	}

	if boundaryHits >= 3 {
		w[behavior.Exploring] *= 0.5
		w[behavior.Wandering] *= 0.5
	}

	applyStimulusBoosts(w, p, m, current, env)

	return w
}

func nonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// applyStimulusBoosts implements spec.md §4.6 contract 5.
func applyStimulusBoosts(w Weights, p personality.Personality, m motivation.Motivation, current behavior.Type, env Environment) {
	if c := env.NearestNeed; c != nil {
		i := Interest(c.Kind, c.Rolling, p, current, m, c.Distance)
		if i > 0.5 {
			w[behavior.Approaching] += 2 * i
		}
	}
	if c := env.NearestIdleYarn; c != nil {
		i := Interest(KindYarn, false, p, current, m, c.Distance)
		if i > 0.5 {
			w[behavior.Approaching] += 1.5 * i
		}
	}
	if c := env.NearestRollingYarn; c != nil {
		i := Interest(KindYarn, true, p, current, m, c.Distance)
		if i > 0.5 {
			w[behavior.Chasing] += 2.5 * i
		}
	}
	if c := env.Laser; c != nil {
		i := Interest(KindYarn, true, p, current, m, c.Distance)
		w[behavior.Chasing] += 3 * i
	}
}
