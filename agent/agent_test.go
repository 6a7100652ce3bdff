package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
	"github.com/KyleBlankRollins/meowzer-sub000/brain"
	"github.com/KyleBlankRollins/meowzer-sub000/config"
	"github.com/KyleBlankRollins/meowzer-sub000/geo"
	"github.com/KyleBlankRollins/meowzer-sub000/interaction"
	"github.com/KyleBlankRollins/meowzer-sub000/motion"
)

func fastMotion(pos geo.Position) *motion.Simulated {
	c := motion.NewSimulated("t", pos, geo.NewBoundaries(-1000, 1000, -1000, 1000))
	c.TimeScale = 0.002
	return c
}

func fastConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatalf("config.Defaults: %v", err)
	}
	cfg.DecisionInterval.MinMs = 10
	cfg.DecisionInterval.MaxMs = 10
	return cfg
}

func newTestAgent(t *testing.T, id string, pos geo.Position, registry *interaction.Registry) *Agent {
	t.Helper()
	lib := behavior.NewLibrary(1)
	m := fastMotion(pos)
	b, err := brain.New(m, lib, brain.Options{Environment: registry, Config: fastConfig(t)})
	if err != nil {
		t.Fatalf("brain.New: %v", err)
	}
	return New(id, "seed-"+id, m, b, registry)
}

func TestNameDescriptionMetadataRoundTrip(t *testing.T) {
	a := newTestAgent(t, "a1", geo.Position{}, nil)

	a.SetName("Whiskers")
	a.SetDescription("an orange tabby")
	a.UpdateMetadata(map[string]any{"coat": "orange"})
	a.UpdateMetadata(map[string]any{"age": 3})

	if a.Name() != "Whiskers" {
		t.Fatalf("expected name Whiskers, got %q", a.Name())
	}
	if a.Description() != "an orange tabby" {
		t.Fatalf("expected description to round-trip, got %q", a.Description())
	}
	md := a.Metadata()
	if md["coat"] != "orange" || md["age"] != 3 {
		t.Fatalf("expected merged metadata, got %v", md)
	}

	// Metadata() must return a copy: mutating it must not affect the agent.
	md["coat"] = "mutated"
	if a.Metadata()["coat"] != "orange" {
		t.Fatal("expected Metadata() to return a defensive copy")
	}
}

func TestPauseResumeDelegatesToBrain(t *testing.T) {
	a := newTestAgent(t, "a1", geo.Position{}, nil)

	if err := a.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if a.Brain().State() != brain.StateRunning {
		t.Fatalf("expected brain running after Resume, got %v", a.Brain().State())
	}

	a.Pause()
	if a.Brain().State() != brain.StateStopped {
		t.Fatalf("expected brain stopped after Pause, got %v", a.Brain().State())
	}
}

func TestDestroyStopsBrainAndMotionAndRemovesFromRegistry(t *testing.T) {
	reg := NewRegistry()
	a := newTestAgent(t, "a1", geo.Position{}, nil)
	reg.Add(a)

	if _, ok := reg.Get("a1"); !ok {
		t.Fatal("expected agent to be registered")
	}

	a.Destroy()

	if a.Brain().State() != brain.StateDestroyed {
		t.Fatalf("expected brain destroyed, got %v", a.Brain().State())
	}
	if err := a.Motion().MoveTo(context.Background(), 1, 1, 1, motion.MoveOptions{}); !errors.Is(err, motion.ErrDestroyed) {
		t.Fatalf("expected the motion controller to be destroyed, got %v", err)
	}
	if _, ok := reg.Get("a1"); ok {
		t.Fatal("expected Destroy to remove the agent from its Registry")
	}
}

func TestRespondToNeedRejectsUnknownID(t *testing.T) {
	reg := interaction.NewRegistry()
	a := newTestAgent(t, "a1", geo.Position{}, reg)
	if err := a.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	defer a.Destroy()

	if err := a.RespondToNeed(context.Background(), "nonexistent"); err == nil {
		t.Fatal("expected StimulusNotFound for an unknown need id")
	}
}

func TestRespondToNeedDispatchesApproach(t *testing.T) {
	reg := interaction.NewRegistry()
	needID := reg.PlaceNeed(interaction.NeedWater, geo.Position{X: 50, Y: 0})

	a := newTestAgent(t, "a1", geo.Position{}, reg)
	if err := a.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	defer a.Destroy()

	if err := a.RespondToNeed(context.Background(), needID); err != nil {
		t.Fatalf("RespondToNeed: %v", err)
	}

	time.Sleep(50 * time.Millisecond)
	if a.Motion().State() == "" {
		t.Fatal("expected the motion controller to have a state after approaching")
	}
}

func TestPlayWithYarnRollingDispatchesChase(t *testing.T) {
	reg := interaction.NewRegistry()
	yarnID := reg.PlaceYarn(geo.Position{X: 40, Y: 0})
	if err := reg.MoveYarn(yarnID, geo.Position{X: 40, Y: 0}, interaction.YarnRolling, nil); err != nil {
		t.Fatalf("MoveYarn: %v", err)
	}

	a := newTestAgent(t, "a1", geo.Position{}, reg)
	if err := a.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	defer a.Destroy()

	if err := a.PlayWithYarn(context.Background(), yarnID); err != nil {
		t.Fatalf("PlayWithYarn: %v", err)
	}
}

func TestChaseLaserDispatchesDirectly(t *testing.T) {
	a := newTestAgent(t, "a1", geo.Position{}, nil)
	if err := a.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	defer a.Destroy()

	if err := a.ChaseLaser(context.Background(), geo.Position{X: 30, Y: 30}); err != nil {
		t.Fatalf("ChaseLaser: %v", err)
	}
}
