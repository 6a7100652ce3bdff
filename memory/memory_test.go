package memory

import (
	"testing"

	"github.com/KyleBlankRollins/meowzer-sub000/geo"
)

func TestVisitedPositionsTrimsToTen(t *testing.T) {
	m := NewManager(DefaultBounds())
	for i := 0; i < 15; i++ {
		m.RecordDecision(geo.Position{X: float64(i)}, "wandering")
	}
	got := m.VisitedPositions()
	if len(got) != 10 {
		t.Fatalf("expected 10 visited positions, got %d", len(got))
	}
	if got[0].X != 5 {
		t.Fatalf("expected oldest retained position to be index 5, got %v", got[0])
	}
}

func TestPreviousBehaviorsTrimsToFive(t *testing.T) {
	m := NewManager(DefaultBounds())
	for i := 0; i < 8; i++ {
		m.RecordDecision(geo.Position{}, "wandering")
	}
	if len(m.PreviousBehaviors()) != 5 {
		t.Fatalf("expected 5 previous behaviors, got %d", len(m.PreviousBehaviors()))
	}
}

func TestBoundaryHitsCapAtFiveAndDecay(t *testing.T) {
	m := NewManager(DefaultBounds())
	for i := 0; i < 10; i++ {
		m.RecordBoundaryHit()
		m.RecordDecision(geo.Position{}, "wandering")
	}
	if m.BoundaryHitsExact() != 5 {
		t.Fatalf("expected boundary hits capped at 5, got %v", m.BoundaryHitsExact())
	}

	// No hits now: should decay by 0.1 per decision, never below 0.
	for i := 0; i < 60; i++ {
		m.RecordDecision(geo.Position{}, "wandering")
	}
	if m.BoundaryHitsExact() != 0 {
		t.Fatalf("expected boundary hits decayed to 0, got %v", m.BoundaryHitsExact())
	}
}

func TestRecordDecisionReturnsWhetherHitOccurred(t *testing.T) {
	m := NewManager(DefaultBounds())
	if hit := m.RecordDecision(geo.Position{}, "wandering"); hit {
		t.Fatal("expected no boundary hit without RecordBoundaryHit")
	}
	m.RecordBoundaryHit()
	if hit := m.RecordDecision(geo.Position{}, "wandering"); !hit {
		t.Fatal("expected boundary hit to be reported")
	}
	// Pending counter should reset after consumption.
	if hit := m.RecordDecision(geo.Position{}, "wandering"); hit {
		t.Fatal("pending hit counter should have been consumed")
	}
}

func TestCountOccurrences(t *testing.T) {
	m := NewManager(DefaultBounds())
	for _, b := range []string{"wandering", "resting", "wandering", "playing", "wandering"} {
		m.RecordDecision(geo.Position{}, b)
	}
	if n := m.CountOccurrences("wandering"); n != 3 {
		t.Fatalf("expected 3 occurrences of wandering, got %d", n)
	}
}
