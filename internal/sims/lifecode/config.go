package lifecode

import (
	"strconv"

	"lifecode/internal/rule"
)

// DefaultDNA is the rule used when no DNA string is supplied.
const DefaultDNA = "B3/S23|M0.01"

// Params holds the tunable constants of the simulation.
type Params struct {
	// AliveChance is the per-cell probability of starting alive on Reset.
	AliveChance float64
	// PhaseStep is how far the nutrient wave phase advances per tick.
	PhaseStep float64
	// WaveBlend is the weight of the traveling wave when animating the
	// nutrient field; the old value keeps weight 1-WaveBlend.
	WaveBlend float64
	// SurviveNutrient is the nutrient level above which a live cell
	// survives regardless of its neighbor count.
	SurviveNutrient float64
	// BirthNutrient is the nutrient level a dead cell needs before a
	// matching neighbor count can give birth.
	BirthNutrient float64
}

// Config controls the simulation dimensions, seeding and rule.
type Config struct {
	Width  int
	Height int

	Seed int64

	// DNA is the initial rule string.
	DNA string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  50,
		Height: 50,
		Seed:   1337,
		DNA:    DefaultDNA,
		Params: Params{
			AliveChance:     0.2,
			PhaseStep:       0.05,
			WaveBlend:       0.3,
			SurviveNutrient: 0.9,
			BirthNutrient:   0.1,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable values are ignored and keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := rule.Parse(v); err == nil {
			c.DNA = v
		}
	}
	if v, ok := cfg["alive_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.AliveChance = parsed
		}
	}
	if v, ok := cfg["phase_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.PhaseStep = parsed
		}
	}
	if v, ok := cfg["wave_blend"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.WaveBlend = parsed
		}
	}
	if v, ok := cfg["survive_nutrient"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SurviveNutrient = parsed
		}
	}
	if v, ok := cfg["birth_nutrient"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.BirthNutrient = parsed
		}
	}
	return c
}
