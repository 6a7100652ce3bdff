package behavior

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/KyleBlankRollins/meowzer-sub000/geo"
)

// WanderStyle is one of the three curved-path styles for wandering.
type WanderStyle int

const (
	StyleSineWave WanderStyle = iota
	StyleProgressiveCurve
	StyleRandomOffset
)

// PlayStyle is one of the three sprint-path styles for playing.
type PlayStyle int

const (
	StyleZigzag PlayStyle = iota
	StyleSharpTurn
	StyleSpiral
)

func pickWanderStyle(rng *rand.Rand) WanderStyle { return WanderStyle(rng.Intn(3)) }
func pickPlayStyle(rng *rand.Rand) PlayStyle      { return PlayStyle(rng.Intn(3)) }

// waypointCount implements "⌈dist/150⌉ (±1) waypoints" from spec.md §4.5.
func waypointCount(dist float64, rng *rand.Rand) int {
	base := int(math.Ceil(dist / 150))
	jitter := rng.Intn(3) - 1 // -1, 0, or 1
	n := base + jitter
	if n < 1 {
		n = 1
	}
	return n
}

// perpendicular returns the unit vector perpendicular to the start->target
// segment, used to offset intermediate waypoints off the straight line.
func perpendicular(start, target geo.Position) geo.Position {
	dx := target.X - start.X
	dy := target.Y - start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return geo.Position{X: 0, Y: 1}
	}
	return geo.Position{X: -dy / length, Y: dx / length}
}

// synthesizeWanderPath builds a curved path from start to target per
// spec.md §4.5: intermediate waypoints offset along the perpendicular by an
// amount that depends on the chosen style, with the exact target appended
// as the final waypoint.
func synthesizeWanderPath(start, target geo.Position, style WanderStyle, rng *rand.Rand, noise opensimplex.Noise) []geo.Position {
	dist := geo.Distance(start, target)
	n := waypointCount(dist, rng)
	perp := perpendicular(start, target)

	var amplitude float64
	switch style {
	case StyleSineWave:
		amplitude = distuv.Uniform{Min: 30, Max: 60, Src: rng}.Rand()
	case StyleProgressiveCurve:
		amplitude = distuv.Uniform{Min: 40, Max: 80, Src: rng}.Rand()
	}

	path := make([]geo.Position, 0, n+1)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n+1)
		base := geo.Position{
			X: start.X + (target.X-start.X)*t,
			Y: start.Y + (target.Y-start.Y)*t,
		}

		var offset float64
		switch style {
		case StyleSineWave:
			offset = math.Sin(2*math.Pi*t) * amplitude
		case StyleProgressiveCurve:
			offset = (t*t - 0.5) * amplitude
		case StyleRandomOffset:
			if noise != nil {
				// Spatially coherent jitter in place of an independent
				// uniform draw per point, matching the teacher's use of
				// simplex noise (systems/noise.go) for organic motion
				// instead of pure per-sample randomness.
				offset = noise.Eval2(float64(i)*0.35, t*3.0) * 70
			} else {
				offset = distuv.Uniform{Min: -70, Max: 70, Src: rng}.Rand()
			}
		}

		path = append(path, geo.Position{
			X: base.X + perp.X*offset,
			Y: base.Y + perp.Y*offset,
		})
	}
	path = append(path, target)
	return path
}

// synthesizePlayPath builds a sprint path for the playing behavior, using
// one of the three play styles.
func synthesizePlayPath(start, target geo.Position, style PlayStyle, rng *rand.Rand) []geo.Position {
	dist := geo.Distance(start, target)
	n := waypointCount(dist, rng)
	perp := perpendicular(start, target)

	path := make([]geo.Position, 0, n+1)
	sign := 1.0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n+1)
		base := geo.Position{
			X: start.X + (target.X-start.X)*t,
			Y: start.Y + (target.Y-start.Y)*t,
		}

		var offset float64
		switch style {
		case StyleZigzag:
			mag := distuv.Uniform{Min: 40, Max: 80, Src: rng}.Rand()
			offset = sign * mag
			sign = -sign
		case StyleSharpTurn:
			if i == (n+1)/2 {
				offset = distuv.Uniform{Min: 50, Max: 100, Src: rng}.Rand()
			}
		case StyleSpiral:
			mag := distuv.Uniform{Min: 20, Max: 50, Src: rng}.Rand()
			offset = t * mag * math.Sin(4*math.Pi*t)
		}

		path = append(path, geo.Position{
			X: base.X + perp.X*offset,
			Y: base.Y + perp.Y*offset,
		})
	}
	path = append(path, target)
	return path
}
