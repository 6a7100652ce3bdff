package motivation

import "testing"

func TestInitialValues(t *testing.T) {
	m := Initial()
	if m.Rest != 0.2 || m.Stimulation != 0.3 || m.Exploration != 0.4 {
		t.Fatalf("unexpected initial motivation: %+v", m)
	}
}

func TestUpdateClampsToUnitRange(t *testing.T) {
	mgr := NewManager(DefaultDecayRates())
	mgr.Set(Motivation{Rest: 0.01, Stimulation: 0.01, Exploration: 0.01})
	for i := 0; i < 1000; i++ {
		m := mgr.Update(10, "wandering")
		if m.Rest < 0 || m.Rest > 1 || m.Stimulation < 0 || m.Stimulation > 1 || m.Exploration < 0 || m.Exploration > 1 {
			t.Fatalf("drive left [0,1]: %+v", m)
		}
	}
}

func TestRestingIncreasesRestAndDecreasesOthers(t *testing.T) {
	mgr := NewManager(DecayRates{}) // no decay, isolate behavior adjustment
	mgr.Set(Motivation{Rest: 0.5, Stimulation: 0.5, Exploration: 0.5})
	before := mgr.Get()
	after := mgr.Update(1.0, "resting")
	if after.Rest <= before.Rest {
		t.Fatalf("resting should increase rest: before %v after %v", before.Rest, after.Rest)
	}
	if after.Stimulation >= before.Stimulation {
		t.Fatalf("resting should decrease stimulation: before %v after %v", before.Stimulation, after.Stimulation)
	}
}

func TestPlayingIncreasesStimulationAndDecreasesRest(t *testing.T) {
	mgr := NewManager(DecayRates{})
	mgr.Set(Motivation{Rest: 0.5, Stimulation: 0.5, Exploration: 0.5})
	before := mgr.Get()
	after := mgr.Update(1.0, "playing")
	if after.Stimulation <= before.Stimulation {
		t.Fatalf("playing should increase stimulation")
	}
	if after.Rest >= before.Rest {
		t.Fatalf("playing should decrease rest")
	}
}

func TestUnknownBehaviorOnlyDecays(t *testing.T) {
	mgr := NewManager(DefaultDecayRates())
	mgr.Set(Motivation{Rest: 0.5, Stimulation: 0.5, Exploration: 0.5})
	before := mgr.Get()
	after := mgr.Update(1.0, "observing")
	if after.Rest >= before.Rest || after.Stimulation >= before.Stimulation || after.Exploration >= before.Exploration {
		t.Fatalf("observing has no adjustment table entry; only decay should apply: before %+v after %+v", before, after)
	}
}

func TestZeroDeltaIsNoOp(t *testing.T) {
	mgr := NewManager(DefaultDecayRates())
	mgr.Set(Motivation{Rest: 0.33, Stimulation: 0.44, Exploration: 0.55})
	before := mgr.Get()
	after := mgr.Update(0, "resting")
	if after != before {
		t.Fatalf("zero delta should be a no-op: before %+v after %+v", before, after)
	}
}
