package lifecode

import (
	"strconv"

	"lifecode/internal/core"
)

// Parameters reports the world dimensions, the active rule and the tunable
// constants for inspection by tools and the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				stringParam("rule", "DNA", w.rule.String()),
				floatParam("mutation_rate", "Mutation rate", w.rule.Mutation),
			},
		},
		{
			Name: "Nutrient",
			Params: []core.Parameter{
				floatParam("phase_step", "Phase step", params.PhaseStep),
				floatParam("wave_blend", "Wave blend", params.WaveBlend),
				floatParam("survive_nutrient", "Survival override threshold", params.SurviveNutrient),
				floatParam("birth_nutrient", "Birth gate threshold", params.BirthNutrient),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("alive_chance", "Alive chance", params.AliveChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetFloatParameter adjusts a tunable at runtime. Probabilities and
// thresholds clamp to [0,1]; the mutation rate only clamps below at zero.
// Unknown keys report false.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "mutation_rate":
		if value < 0 {
			value = 0
		}
		w.rule.Mutation = value
	case "phase_step":
		if value < 0 {
			value = 0
		}
		w.cfg.Params.PhaseStep = value
	case "wave_blend":
		w.cfg.Params.WaveBlend = clamp01(value)
		w.nutrient.SetBlend(w.cfg.Params.WaveBlend)
	case "survive_nutrient":
		w.cfg.Params.SurviveNutrient = clamp01(value)
	case "birth_nutrient":
		w.cfg.Params.BirthNutrient = clamp01(value)
	case "alive_chance":
		w.cfg.Params.AliveChance = clamp01(value)
	default:
		return false
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
