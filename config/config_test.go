package config

import "testing"

func TestDefaultsValidate(t *testing.T) {
	cfg, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults should validate: %v", err)
	}
	if cfg.DecisionInterval.MinMs != 2000 || cfg.DecisionInterval.MaxMs != 5000 {
		t.Fatalf("unexpected decision interval defaults: %+v", cfg.DecisionInterval)
	}
}

func TestValidateRejectsInvertedInterval(t *testing.T) {
	cfg, _ := Defaults()
	cfg.DecisionInterval.MinMs = 500
	cfg.DecisionInterval.MaxMs = 100
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected InvalidConfiguration for min > max")
	}
}

func TestValidateRejectsNegativeDecay(t *testing.T) {
	cfg, _ := Defaults()
	cfg.MotivationDecay.Rest = -0.1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected InvalidConfiguration for negative decay rate")
	}
}

func TestValidateRejectsNonPositiveMemoryBounds(t *testing.T) {
	cfg, _ := Defaults()
	cfg.Memory.MaxVisited = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected InvalidConfiguration for zero memory bound")
	}
}

func TestEqualMinMaxIntervalIsValid(t *testing.T) {
	cfg, _ := Defaults()
	cfg.DecisionInterval.MinMs = 100
	cfg.DecisionInterval.MaxMs = 100
	if err := cfg.Validate(); err != nil {
		t.Fatalf("min == max should be valid: %v", err)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Fatal("expected error loading a nonexistent config file")
	}
}
