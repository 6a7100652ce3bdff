package decision

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
	"github.com/KyleBlankRollins/meowzer-sub000/motivation"
	"github.com/KyleBlankRollins/meowzer-sub000/personality"
)

// TestComputeWeightsContracts exercises spec.md §4.6's weight contracts as a
// BDD spec, mirroring the pack's one goconvey-driven test file.
func TestComputeWeightsContracts(t *testing.T) {
	Convey("Given a balanced personality and neutral motivation", t, func() {
		base, _ := personality.GetPreset(personality.Balanced)
		neutral := motivation.Initial()

		Convey("When energy rises, resting weight falls", func() {
			low := base
			low.Energy = 0.1
			high := base
			high.Energy = 0.9

			wLow := ComputeWeights(low, neutral, nil, 0, Environment{}, behavior.Wandering)
			wHigh := ComputeWeights(high, neutral, nil, 0, Environment{}, behavior.Wandering)

			So(wHigh[behavior.Resting], ShouldBeLessThan, wLow[behavior.Resting])
		})

		Convey("When playfulness rises, playing weight rises", func() {
			low := base
			low.Playfulness = 0.1
			high := base
			high.Playfulness = 0.9

			wLow := ComputeWeights(low, neutral, nil, 0, Environment{}, behavior.Wandering)
			wHigh := ComputeWeights(high, neutral, nil, 0, Environment{}, behavior.Wandering)

			So(wHigh[behavior.Playing], ShouldBeGreaterThan, wLow[behavior.Playing])
		})

		Convey("When curiosity rises, exploring weight rises", func() {
			low := base
			low.Curiosity = 0.1
			high := base
			high.Curiosity = 0.9

			wLow := ComputeWeights(low, neutral, nil, 0, Environment{}, behavior.Wandering)
			wHigh := ComputeWeights(high, neutral, nil, 0, Environment{}, behavior.Wandering)

			So(wHigh[behavior.Exploring], ShouldBeGreaterThan, wLow[behavior.Exploring])
		})

		Convey("When a behavior recurs three times in recent history", func() {
			recent := []string{"playing", "playing", "playing"}
			w := ComputeWeights(base, neutral, recent, 0, Environment{}, behavior.Wandering)
			fresh := ComputeWeights(base, neutral, nil, 0, Environment{}, behavior.Wandering)

			Convey("Its weight is multiplied by no less than 0.2", func() {
				So(w[behavior.Playing], ShouldBeLessThan, fresh[behavior.Playing])
				So(w[behavior.Playing], ShouldBeGreaterThanOrEqualTo, fresh[behavior.Playing]*0.2-1e-9)
			})
		})

		Convey("When boundary hits reach the aversion threshold", func() {
			calm := ComputeWeights(base, neutral, nil, 2, Environment{}, behavior.Wandering)
			skittish := ComputeWeights(base, neutral, nil, 3, Environment{}, behavior.Wandering)

			Convey("Exploring and wandering weights are both halved", func() {
				So(skittish[behavior.Exploring], ShouldAlmostEqual, calm[behavior.Exploring]*0.5)
				So(skittish[behavior.Wandering], ShouldAlmostEqual, calm[behavior.Wandering]*0.5)
			})
		})

		Convey("When a rolling yarn is within range", func() {
			env := Environment{NearestRollingYarn: &Candidate{Kind: KindYarn, Rolling: true, Distance: 20}}
			w := ComputeWeights(base, neutral, nil, 0, env, behavior.Wandering)
			without := ComputeWeights(base, neutral, nil, 0, Environment{}, behavior.Wandering)

			Convey("Chasing weight is boosted", func() {
				So(w[behavior.Chasing], ShouldBeGreaterThan, without[behavior.Chasing])
			})
		})

		Convey("The total weight across all behaviors is always positive", func() {
			w := ComputeWeights(base, neutral, []string{"wandering", "wandering", "wandering", "wandering"}, 5, Environment{}, behavior.Resting)
			total := 0.0
			for _, v := range w {
				total += v
			}
			So(total, ShouldBeGreaterThan, 0)
		})
	})
}
