package lifecode

import (
	"math"
	"math/rand/v2"

	"lifecode/internal/core"
)

// spatialFreq controls how quickly the nutrient wave varies across the grid.
const spatialFreq = 0.1

// NutrientField is a continuous scalar field in [0,1] over the grid. Each
// tick it is blended toward a traveling sine wave driven by an external
// phase accumulator.
type NutrientField struct {
	grid  *core.FloatGrid
	blend float64
}

// NewNutrientField allocates a zeroed field with the given blend weight.
func NewNutrientField(w, h int, blend float64) *NutrientField {
	return &NutrientField{grid: core.NewFloatGrid(w, h), blend: blend}
}

// Randomize fills every cell with an independent uniform value in [0,1).
func (f *NutrientField) Randomize(rng *rand.Rand) {
	core.FillUniform(rng, f.grid.Cells())
}

// Animate blends every cell toward the wave at the given phase and clamps
// the result to [0,1]. The caller advances the phase after this returns.
func (f *NutrientField) Animate(phase float64) {
	cells := f.grid.Cells()
	for y := 0; y < f.grid.H; y++ {
		for x := 0; x < f.grid.W; x++ {
			wave := 0.5 + 0.5*math.Sin(phase+float64(x)*spatialFreq+float64(y)*spatialFreq)
			idx := f.grid.Index(x, y)
			v := (1-f.blend)*cells[idx] + f.blend*wave
			cells[idx] = math.Max(0, math.Min(1, v))
		}
	}
}

// SetBlend changes the wave blend weight for subsequent Animate calls.
func (f *NutrientField) SetBlend(blend float64) { f.blend = blend }

// At returns the nutrient level at (x, y).
func (f *NutrientField) At(x, y int) float64 { return f.grid.At(x, y) }

// Values exposes the backing slice in row-major order.
func (f *NutrientField) Values() []float64 { return f.grid.Cells() }
