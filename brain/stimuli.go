package brain

import (
	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
	"github.com/KyleBlankRollins/meowzer-sub000/config"
	"github.com/KyleBlankRollins/meowzer-sub000/decision"
	"github.com/KyleBlankRollins/meowzer-sub000/geo"
	"github.com/KyleBlankRollins/meowzer-sub000/interaction"
)

// needToKind maps an interaction Need's kind to the decision engine's
// stimulus kind, per spec.md §4.6.
func needToKind(k interaction.NeedKind) decision.Kind {
	switch k {
	case interaction.NeedFoodFancy:
		return decision.KindFoodFancy
	case interaction.NeedWater:
		return decision.KindWater
	default:
		return decision.KindFoodBasic
	}
}

func yarnRolling(s interaction.YarnState) bool {
	return s == interaction.YarnRolling || s == interaction.YarnDragging
}

// gatherEnvironment builds one decision.Environment snapshot from the
// nearest stimuli of each kind within their detection radii, per spec.md
// §4.8 step 2. A nil registry (no environment bound) yields an empty
// Environment — the cat reacts to nothing.
func gatherEnvironment(registry *interaction.Registry, pos geo.Position, detection config.DetectionConfig) decision.Environment {
	if registry == nil {
		return decision.Environment{}
	}

	var env decision.Environment

	needs := registry.NeedsNear(pos, detection.Need)
	if len(needs) > 0 {
		n := needs[0]
		env.NearestNeed = &decision.Candidate{
			Kind:     needToKind(n.Kind),
			Position: n.Position,
			Distance: geo.Distance(pos, n.Position),
		}
	}

	idleRadius := detection.Yarn
	if detection.YarnMoving > idleRadius {
		idleRadius = detection.YarnMoving
	}
	for _, y := range registry.YarnsNear(pos, idleRadius) {
		dist := geo.Distance(pos, y.Position)
		if yarnRolling(y.State) {
			if env.NearestRollingYarn == nil && dist <= detection.YarnMoving {
				env.NearestRollingYarn = &decision.Candidate{Kind: decision.KindYarn, Position: y.Position, Distance: dist, Rolling: true}
			}
		} else if env.NearestIdleYarn == nil && dist <= detection.Yarn {
			env.NearestIdleYarn = &decision.Candidate{Kind: decision.KindYarn, Position: y.Position, Distance: dist}
		}
		if env.NearestRollingYarn != nil && env.NearestIdleYarn != nil {
			break
		}
	}

	if laser, ok := registry.Laser(); ok && laser.Active {
		dist := geo.Distance(pos, laser.Position)
		if dist <= detection.Laser {
			env.Laser = &decision.Candidate{Kind: decision.KindYarn, Position: laser.Position, Distance: dist, Rolling: true}
		}
	}

	return env
}

// behaviorArgsFor builds the per-invocation Args spec.md §4.7 describes:
// a target for approaching/chasing, or visited positions for exploring.
func behaviorArgsFor(t behavior.Type, env decision.Environment, visited []geo.Position) behavior.Args {
	switch t {
	case behavior.Approaching:
		if c := nearestApproachTarget(env); c != nil {
			pos := c.Position
			return behavior.Args{Target: &pos}
		}
	case behavior.Chasing:
		if c := nearestChaseTarget(env); c != nil {
			pos := c.Position
			return behavior.Args{Target: &pos}
		}
	case behavior.Exploring:
		return behavior.Args{VisitedPositions: visited}
	}
	return behavior.Args{}
}

func nearestApproachTarget(env decision.Environment) *decision.Candidate {
	if env.NearestNeed != nil {
		return env.NearestNeed
	}
	return env.NearestIdleYarn
}

func nearestChaseTarget(env decision.Environment) *decision.Candidate {
	if env.Laser != nil {
		return env.Laser
	}
	return env.NearestRollingYarn
}
