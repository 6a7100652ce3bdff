package interaction

import "github.com/KyleBlankRollins/meowzer-sub000/geo"

// NeedKind distinguishes the need variants of spec.md §3.
type NeedKind string

const (
	NeedFoodBasic NeedKind = "food:basic"
	NeedFoodFancy NeedKind = "food:fancy"
	NeedWater     NeedKind = "water"
)

// Need is a stationary stimulus: food or water.
type Need struct {
	ID       string
	Kind     NeedKind
	Position geo.Position
}

// YarnState distinguishes whether a yarn ball is sitting still, self-
// rolling, or being dragged.
type YarnState string

const (
	YarnIdle     YarnState = "idle"
	YarnRolling  YarnState = "rolling"
	YarnDragging YarnState = "dragging"
)

// Yarn is a movable stimulus.
type Yarn struct {
	ID       string
	Position geo.Position
	State    YarnState
	Velocity *geo.Position // nil when stationary
}

// Laser is the single process-wide laser pointer stimulus. It is always
// treated as "rolling" for interest purposes (spec.md §4.6).
type Laser struct {
	Position geo.Position
	Active   bool
}
