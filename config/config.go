// Package config loads and validates the recognized configuration options
// from spec.md §6, following the teacher's embed-defaults-then-overlay-YAML
// pattern.
package config

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KyleBlankRollins/meowzer-sub000/errs"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// DecisionIntervalConfig bounds the random delay between brain decisions.
type DecisionIntervalConfig struct {
	MinMs int `yaml:"min_ms"`
	MaxMs int `yaml:"max_ms"`
}

// MotivationDecayConfig holds the per-second decay rate for each drive.
type MotivationDecayConfig struct {
	Rest        float64 `yaml:"rest"`
	Stimulation float64 `yaml:"stimulation"`
	Exploration float64 `yaml:"exploration"`
}

// MemoryConfig bounds the memory FIFOs.
type MemoryConfig struct {
	MaxVisited           int `yaml:"max_visited"`
	MaxPreviousBehaviors int `yaml:"max_previous_behaviors"`
}

// DetectionConfig holds the detection radius (px) for each stimulus kind.
type DetectionConfig struct {
	Need       float64 `yaml:"need"`
	Yarn       float64 `yaml:"yarn"`
	YarnMoving float64 `yaml:"yarn_moving"`
	Laser      float64 `yaml:"laser"`
}

// Config holds every recognized configuration option.
type Config struct {
	DecisionInterval  DecisionIntervalConfig `yaml:"decision_interval"`
	MotivationDecay   MotivationDecayConfig  `yaml:"motivation_decay"`
	Memory            MemoryConfig           `yaml:"memory"`
	Detection         DetectionConfig        `yaml:"detection"`
	ReactionThreshold float64                `yaml:"reaction_threshold"`
}

// Defaults returns the embedded baseline configuration.
func Defaults() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load starts from Defaults and overlays the YAML file at path, if path is
// non-empty. The result is validated before being returned.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces spec.md §7's InvalidConfiguration rule: decision
// interval must satisfy 0 < min <= max, decay rates must be >= 0, and memory
// bounds must be >= 1.
func (c *Config) Validate() error {
	if c.DecisionInterval.MinMs <= 0 || c.DecisionInterval.MinMs > c.DecisionInterval.MaxMs {
		return errs.New(errs.InvalidConfiguration, "decision_interval requires 0 < min <= max")
	}
	if c.MotivationDecay.Rest < 0 || c.MotivationDecay.Stimulation < 0 || c.MotivationDecay.Exploration < 0 {
		return errs.New(errs.InvalidConfiguration, "motivation_decay rates must be >= 0")
	}
	if c.Memory.MaxVisited < 1 || c.Memory.MaxPreviousBehaviors < 1 {
		return errs.New(errs.InvalidConfiguration, "memory bounds must be >= 1")
	}
	return nil
}
