package decision

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
)

// SelectBehavior draws one behavior from w, weighted by score, using
// gonum's sampleuv.Weighted so the tie-breaking and degenerate-weight
// handling follow a well-tested implementation rather than a hand-rolled
// cumulative-sum walk. Order is behavior.All, so the same weights map
// always produces the same sampler configuration.
func SelectBehavior(w Weights, rng *rand.Rand) behavior.Type {
	order := behavior.All
	scores := make([]float64, len(order))
	total := 0.0
	for i, t := range order {
		scores[i] = w[t]
		total += w[t]
	}
	if total <= 0 {
		return behavior.Wandering
	}

	sampler := sampleuv.NewWeighted(scores, rng)
	idx, ok := sampler.Take()
	if !ok {
		return behavior.Wandering
	}
	return order[idx]
}
