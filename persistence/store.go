// Package persistence defines the contract the core consumes from the
// persistence adapter (spec.md §6): serialized agents keyed by id and
// grouped into named collections. The adapter itself — the real key-value
// store — is an external collaborator; this package only carries the shape
// the core depends on, plus an in-memory reference Store for tests and the
// demo CLI.
package persistence

import (
	"sync"
	"time"

	"github.com/KyleBlankRollins/meowzer-sub000/errs"
)

// AgentBlob is the persisted state layout the core consumes, per spec.md
// §6: the core never persists brain state, so a reloaded agent starts from
// initial motivation/memory.
type AgentBlob struct {
	ID          string
	Seed        string
	Name        string
	Description string
	Metadata    map[string]any
	CreatedAt   time.Time
}

// Store is the contract the core depends on: load/save individual agent
// blobs and enumerate or mutate named collections of agent ids. The core
// never constructs a concrete Store; callers (the demo CLI, an embedding
// application) supply one.
type Store interface {
	Save(blob AgentBlob) error
	Load(id string) (AgentBlob, error)
	Delete(id string) error

	Collection(name string) ([]string, error)
	AddToCollection(name, id string) error
	RemoveFromCollection(name, id string) error
}

// Memory is an in-process reference Store, useful for tests and the demo
// CLI's non-persistent mode. Not durable across process restarts.
type Memory struct {
	mu          sync.RWMutex
	blobs       map[string]AgentBlob
	collections map[string][]string
}

// NewMemory creates an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{
		blobs:       make(map[string]AgentBlob),
		collections: make(map[string][]string),
	}
}

// Save upserts blob by id.
func (m *Memory) Save(blob AgentBlob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[blob.ID] = blob
	return nil
}

// Load returns the blob with id, or StimulusNotFound if absent.
func (m *Memory) Load(id string) (AgentBlob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blobs[id]
	if !ok {
		return AgentBlob{}, errs.New(errs.StimulusNotFound, "agent "+id+" not found")
	}
	return b, nil
}

// Delete removes a blob and drops it from every collection it appears in.
func (m *Memory) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, id)
	for name, ids := range m.collections {
		m.collections[name] = removeID(ids, id)
	}
	return nil
}

// Collection returns the ids in name, in insertion order. An unknown
// collection name returns an empty slice, not an error.
func (m *Memory) Collection(name string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := m.collections[name]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

// AddToCollection appends id to name if not already present.
func (m *Memory) AddToCollection(name, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.collections[name] {
		if existing == id {
			return nil
		}
	}
	m.collections[name] = append(m.collections[name], id)
	return nil
}

// RemoveFromCollection drops id from name, if present.
func (m *Memory) RemoveFromCollection(name, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[name] = removeID(m.collections[name], id)
	return nil
}

func removeID(ids []string, target string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
