package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewDecisionRecorderNilDirDisablesTelemetry(t *testing.T) {
	r, err := NewDecisionRecorder("")
	if err != nil {
		t.Fatalf("NewDecisionRecorder(\"\"): %v", err)
	}
	if r != nil {
		t.Fatal("expected a nil recorder for an empty dir")
	}
	// Every method must tolerate a nil receiver.
	if err := r.Record(DecisionRecord{}); err != nil {
		t.Fatalf("Record on nil recorder: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close on nil recorder: %v", err)
	}
	if r.Dir() != "" {
		t.Fatalf("expected empty Dir(), got %q", r.Dir())
	}
}

func TestDecisionRecorderWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	r, err := NewDecisionRecorder(dir)
	if err != nil {
		t.Fatalf("NewDecisionRecorder: %v", err)
	}
	defer r.Close()

	now := time.Unix(0, 0).UTC()
	if err := r.Record(DecisionRecord{Timestamp: now, AgentID: "a1", Chosen: "resting", Rest: 0.8}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := r.Record(DecisionRecord{Timestamp: now, AgentID: "a1", Chosen: "wandering", Rest: 0.7}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	r.Close()

	data, err := os.ReadFile(filepath.Join(dir, "decisions.csv"))
	if err != nil {
		t.Fatalf("reading decisions.csv: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 1 header + 2 rows, got %d lines: %q", len(lines), string(data))
	}
	if !strings.Contains(lines[0], "agent_id") {
		t.Fatalf("expected a header row naming agent_id, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "resting") || !strings.Contains(lines[2], "wandering") {
		t.Fatalf("expected both rows to appear in order, got %q", string(data))
	}
}

func TestLogfWritesToInstalledWriter(t *testing.T) {
	var buf strings.Builder
	SetLogWriter(&buf)
	defer SetLogWriter(nil)

	Logf("tick %d: %s", 3, "wandering")

	if got := buf.String(); !strings.Contains(got, "tick 3: wandering") {
		t.Fatalf("expected Logf to write to the installed writer, got %q", got)
	}
}
