package behavior

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// uniformMs samples from U(minMs,maxMs) using rng and returns a
// time.Duration. Grounded in gonum's stat/distuv, used throughout the pack
// (pthm-soup, o9nn-echo.go, qubicDB-qubicdb) for distribution sampling
// rather than hand-rolled math/rand scaling.
func uniformMs(minMs, maxMs float64, rng *rand.Rand) time.Duration {
	if minMs == maxMs {
		return time.Duration(minMs) * time.Millisecond
	}
	u := distuv.Uniform{Min: minMs, Max: maxMs, Src: rng}
	return time.Duration(u.Rand()) * time.Millisecond
}

// DurationFor implements spec.md §4.5's "duration returned by
// durationFor(behavior, energy)": the mandatory energy scaling for resting
// and playing, base uniform ranges for everything else.
func DurationFor(t Type, energy float64, rng *rand.Rand) time.Duration {
	switch t {
	case Wandering:
		return uniformMs(3000, 8000, rng)
	case Resting:
		base := uniformMs(4000, 10000, rng)
		return scale(base, 1.5-energy)
	case Playing:
		base := uniformMs(2000, 6000, rng)
		return scale(base, 0.5+energy)
	case Observing:
		return uniformMs(3000, 7000, rng)
	case Exploring:
		return uniformMs(5000, 12000, rng)
	case Approaching:
		return uniformMs(2000, 4000, rng)
	case Consuming:
		return uniformMs(3000, 6000, rng)
	case Chasing:
		return uniformMs(1000, 3000, rng)
	case Batting:
		return uniformMs(500, 1000, rng)
	default:
		return uniformMs(3000, 8000, rng)
	}
}

func scale(d time.Duration, factor float64) time.Duration {
	if factor < 0 {
		factor = 0
	}
	return time.Duration(float64(d) * factor)
}
