package decision

import "github.com/KyleBlankRollins/meowzer-sub000/geo"

// Kind distinguishes the stimulus categories the interest function scores.
type Kind string

const (
	KindFoodBasic Kind = "food:basic"
	KindFoodFancy Kind = "food:fancy"
	KindWater     Kind = "water"
	KindYarn      Kind = "yarn"
)

// Candidate is one nearby stimulus the decision engine may react to. Rolling
// applies only to Kind == KindYarn (rolling or dragging) — the laser is
// always treated as rolling, per spec.md §4.6.
type Candidate struct {
	Kind     Kind
	Position geo.Position
	Distance float64
	Rolling  bool
}

// Environment bundles the nearest stimulus of each category the brain
// gathered this decision, already filtered to detection radius. A nil field
// means nothing of that category was in range.
type Environment struct {
	NearestNeed        *Candidate // nearest need within detection.need
	NearestIdleYarn    *Candidate // nearest idle yarn within detection.yarn
	NearestRollingYarn *Candidate // nearest rolling/dragging yarn within detection.yarnMoving
	Laser              *Candidate // the active laser within detection.laser, if any
}
