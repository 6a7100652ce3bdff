package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
)

// DecisionRecord is one row of the decision log, one per decision cycle of
// one agent. Field order matches the CSV column order gocsv emits.
type DecisionRecord struct {
	Timestamp       time.Time `csv:"timestamp"`
	AgentID         string    `csv:"agent_id"`
	Chosen          string    `csv:"chosen"`
	Rest            float64   `csv:"motivation_rest"`
	Stimulation     float64   `csv:"motivation_stimulation"`
	Exploration     float64   `csv:"motivation_exploration"`
	ChosenWeight    float64   `csv:"chosen_weight"`
	BehaviorChanged bool      `csv:"behavior_changed"`
}

// DecisionRecorder writes DecisionRecords to a decisions.csv file under a
// run's output directory, header-once then append, mirroring the teacher's
// OutputManager.
type DecisionRecorder struct {
	dir           string
	file          *os.File
	headerWritten bool
}

// NewDecisionRecorder creates a recorder writing into dir/decisions.csv. A
// nil *DecisionRecorder (returned alongside a nil error when dir == "") is
// safe to call every method on: telemetry is always optional.
func NewDecisionRecorder(dir string) (*DecisionRecorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "decisions.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating decisions.csv: %w", err)
	}
	return &DecisionRecorder{dir: dir, file: f}, nil
}

// Record appends one decision row.
func (r *DecisionRecorder) Record(rec DecisionRecord) error {
	if r == nil {
		return nil
	}
	rows := []DecisionRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(rows, r.file); err != nil {
			return fmt.Errorf("writing decision record: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, r.file); err != nil {
		return fmt.Errorf("writing decision record: %w", err)
	}
	return nil
}

// Dir returns the output directory, or "" if telemetry is disabled.
func (r *DecisionRecorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Close flushes and closes the underlying file.
func (r *DecisionRecorder) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}
