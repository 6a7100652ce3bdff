// Package personality implements the Personality Registry (C1): immutable
// trait-vector presets plus validated custom vectors.
package personality

import (
	"math"

	"github.com/KyleBlankRollins/meowzer-sub000/errs"
)

// Personality is an immutable vector of five traits, each in [0,1].
type Personality struct {
	Energy       float64
	Curiosity    float64
	Playfulness  float64
	Independence float64
	Sociability  float64
}

// Name identifies one of the built-in presets.
type Name string

const (
	Lazy      Name = "lazy"
	Playful   Name = "playful"
	Curious   Name = "curious"
	Aloof     Name = "aloof"
	Energetic Name = "energetic"
	Balanced  Name = "balanced"
)

// presets holds the fixed trait vectors. Never mutated after init; Resolve
// and GetPreset return copies so callers can't corrupt shared state.
var presets = map[Name]Personality{
	Lazy:      {Energy: 0.2, Curiosity: 0.3, Playfulness: 0.2, Independence: 0.6, Sociability: 0.4},
	Playful:   {Energy: 0.7, Curiosity: 0.6, Playfulness: 0.9, Independence: 0.3, Sociability: 0.7},
	Curious:   {Energy: 0.6, Curiosity: 0.9, Playfulness: 0.5, Independence: 0.4, Sociability: 0.5},
	Aloof:     {Energy: 0.5, Curiosity: 0.4, Playfulness: 0.3, Independence: 0.9, Sociability: 0.2},
	Energetic: {Energy: 0.9, Curiosity: 0.6, Playfulness: 0.7, Independence: 0.4, Sociability: 0.6},
	Balanced:  {Energy: 0.5, Curiosity: 0.5, Playfulness: 0.5, Independence: 0.5, Sociability: 0.5},
}

// GetPreset returns a copy of the named preset.
func GetPreset(name Name) (Personality, bool) {
	p, ok := presets[name]
	return p, ok
}

// ListPresets returns every preset name known to the registry.
func ListPresets() []Name {
	names := make([]Name, 0, len(presets))
	// Fixed iteration order: the six names as declared above, not map order.
	for _, n := range []Name{Lazy, Playful, Curious, Aloof, Energetic, Balanced} {
		if _, ok := presets[n]; ok {
			names = append(names, n)
		}
	}
	return names
}

// Validate checks that every trait of p is finite and in [0,1].
func Validate(p Personality) error {
	traits := map[string]float64{
		"energy":       p.Energy,
		"curiosity":    p.Curiosity,
		"playfulness":  p.Playfulness,
		"independence": p.Independence,
		"sociability":  p.Sociability,
	}
	for name, v := range traits {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.New(errs.InvalidPersonality, "trait "+name+" must be finite")
		}
		if v < 0 || v > 1 {
			return errs.New(errs.InvalidPersonality, "trait "+name+" must be in [0,1]")
		}
	}
	return nil
}

// Resolve accepts either a preset Name or a raw Personality vector and
// returns a validated copy. A string input that is not a known preset is an
// InvalidPersonality error, as is an out-of-range vector.
func Resolve(input any) (Personality, error) {
	switch v := input.(type) {
	case Name:
		p, ok := GetPreset(v)
		if !ok {
			return Personality{}, errs.New(errs.InvalidPersonality, "unknown preset "+string(v))
		}
		return p, nil
	case string:
		p, ok := GetPreset(Name(v))
		if !ok {
			return Personality{}, errs.New(errs.InvalidPersonality, "unknown preset "+v)
		}
		return p, nil
	case Personality:
		if err := Validate(v); err != nil {
			return Personality{}, err
		}
		return v, nil
	default:
		return Personality{}, errs.New(errs.InvalidPersonality, "unsupported personality input")
	}
}
