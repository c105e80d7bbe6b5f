package app

import "lifecode/internal/core"

// World is the simulation surface the adapter drives: the core Sim contract
// plus read access to the three coupled grids and rule control.
type World interface {
	core.Sim
	core.FloatParameterSetter

	Alive() []uint8
	History() []uint8
	Nutrient() []float64

	DNA() string
	MutationRate() float64
	Generation() int
	Population() int

	LoadRule(text string) error
}
