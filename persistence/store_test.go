package persistence

import (
	"errors"
	"testing"
	"time"

	"github.com/KyleBlankRollins/meowzer-sub000/errs"
)

func TestMemorySaveLoadRoundTrip(t *testing.T) {
	m := NewMemory()
	blob := AgentBlob{ID: "a1", Seed: "abc123", Name: "Whiskers", CreatedAt: time.Now()}

	if err := m.Save(blob); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := m.Load("a1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Seed != "abc123" || got.Name != "Whiskers" {
		t.Fatalf("expected round-tripped blob, got %+v", got)
	}
}

func TestMemoryLoadUnknownIsStimulusNotFound(t *testing.T) {
	m := NewMemory()
	if _, err := m.Load("missing"); !errors.Is(err, errs.ErrStimulusNotFound) {
		t.Fatalf("expected StimulusNotFound, got %v", err)
	}
}

func TestMemoryCollections(t *testing.T) {
	m := NewMemory()
	if err := m.AddToCollection("favorites", "a1"); err != nil {
		t.Fatalf("AddToCollection: %v", err)
	}
	if err := m.AddToCollection("favorites", "a2"); err != nil {
		t.Fatalf("AddToCollection: %v", err)
	}
	// Re-adding is idempotent.
	if err := m.AddToCollection("favorites", "a1"); err != nil {
		t.Fatalf("AddToCollection (dup): %v", err)
	}

	ids, err := m.Collection("favorites")
	if err != nil {
		t.Fatalf("Collection: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a1" || ids[1] != "a2" {
		t.Fatalf("expected [a1 a2], got %v", ids)
	}

	if err := m.RemoveFromCollection("favorites", "a1"); err != nil {
		t.Fatalf("RemoveFromCollection: %v", err)
	}
	ids, _ = m.Collection("favorites")
	if len(ids) != 1 || ids[0] != "a2" {
		t.Fatalf("expected [a2] after removal, got %v", ids)
	}
}

func TestMemoryUnknownCollectionIsEmptyNotError(t *testing.T) {
	m := NewMemory()
	ids, err := m.Collection("nonexistent")
	if err != nil {
		t.Fatalf("expected no error for an unknown collection, got %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty slice, got %v", ids)
	}
}

func TestMemoryDeleteRemovesFromCollections(t *testing.T) {
	m := NewMemory()
	_ = m.Save(AgentBlob{ID: "a1"})
	_ = m.AddToCollection("favorites", "a1")

	if err := m.Delete("a1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Load("a1"); err == nil {
		t.Fatal("expected deleted agent to be unloadable")
	}
	ids, _ := m.Collection("favorites")
	if len(ids) != 0 {
		t.Fatalf("expected favorites to drop the deleted id, got %v", ids)
	}
}
