package decision

import (
	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
	"github.com/KyleBlankRollins/meowzer-sub000/geo"
	"github.com/KyleBlankRollins/meowzer-sub000/motivation"
	"github.com/KyleBlankRollins/meowzer-sub000/personality"
)

// Interest scores how appealing a stimulus is right now, per spec.md §4.6.
// The yarn variant applies state modifiers last, after the kind-specific
// base and rolling multiplier — the resolution spec.md §9 gives for the
// two-variants-in-the-source open question.
func Interest(kind Kind, rolling bool, p personality.Personality, current behavior.Type, m motivation.Motivation, distance float64) float64 {
	var v float64
	switch kind {
	case KindFoodBasic:
		v = (0.5 + (1-p.Energy)*0.3) * (1 - p.Independence*0.3)
	case KindFoodFancy:
		v = (0.7 + p.Curiosity*0.2) * (1 + p.Curiosity*0.3)
		v = geo.Clamp01(v)
	case KindWater:
		base := 0.3
		if current == behavior.Playing || current == behavior.Exploring {
			base += 0.3
		}
		base += (1 - m.Rest) * 0.2
		v = base * (1 - p.Independence*0.2)
	case KindYarn:
		base := 0.5 + p.Curiosity*0.3
		if rolling {
			base *= 1.5
		}
		base += p.Energy * 0.2
		v = base * (1 - p.Independence*0.3)
	}

	switch current {
	case behavior.Consuming:
		return 0
	case behavior.Resting:
		if kind == KindFoodFancy {
			v *= 0.5
		} else {
			v *= 0.2
		}
	case behavior.Playing:
		v *= 0.6
	case behavior.Approaching:
		v *= 0.3
	}

	distanceFactor := 0.7 + 0.3*max(0, 1-distance/500)
	v *= distanceFactor

	return geo.Clamp01(v)
}
