// Package lifecode implements an evolutionary Life-like cellular automaton
// on a torus. The transition rule is a DNA string subject to per-tick
// mutation, modulated by a nutrient field; a history field records a decaying
// occupancy trail for display.
package lifecode

import (
	"math/rand/v2"

	"lifecode/internal/core"
	"lifecode/internal/rule"
)

// World owns the alive grid, the nutrient and history fields, the active
// rule and the wave phase accumulator. It is the sole mutator of its state;
// callers observe the grids between Step calls.
type World struct {
	cfg Config

	w, h int

	cur *core.ByteGrid
	nxt *core.ByteGrid

	nutrient *NutrientField
	history  *HistoryField

	rule  rule.Rule
	phase float64
	gen   int

	rng *rand.Rand
}

// New returns a World with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	world, err := NewWithConfig(cfg)
	if err != nil {
		// DefaultConfig carries a valid DNA string.
		panic(err)
	}
	return world
}

// NewWithConfig returns a World configured from the provided options. It
// fails only when cfg.DNA does not parse.
func NewWithConfig(cfg Config) (*World, error) {
	r, err := rule.Parse(cfg.DNA)
	if err != nil {
		return nil, err
	}
	return &World{
		cfg:      cfg,
		w:        cfg.Width,
		h:        cfg.Height,
		cur:      core.NewByteGrid(cfg.Width, cfg.Height),
		nxt:      core.NewByteGrid(cfg.Width, cfg.Height),
		nutrient: NewNutrientField(cfg.Width, cfg.Height, cfg.Params.WaveBlend),
		history:  NewHistoryField(cfg.Width, cfg.Height),
		rule:     r,
		rng:      core.NewRand(cfg.Seed),
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "lifecode" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cur.W, H: w.cur.H} }

// Cells exposes the current alive grid as the display buffer.
func (w *World) Cells() []uint8 { return w.cur.Cells() }

// Alive exposes the current alive grid in row-major order.
func (w *World) Alive() []uint8 { return w.cur.Cells() }

// AliveAt reports whether the cell at (x, y) is alive.
func (w *World) AliveAt(x, y int) bool { return w.cur.At(x, y) != 0 }

// Nutrient exposes the nutrient field values in row-major order.
func (w *World) Nutrient() []float64 { return w.nutrient.Values() }

// NutrientAt returns the nutrient level at (x, y).
func (w *World) NutrientAt(x, y int) float64 { return w.nutrient.At(x, y) }

// History exposes the trail counters in row-major order.
func (w *World) History() []uint8 { return w.history.Values() }

// HistoryAt returns the trail counter at (x, y).
func (w *World) HistoryAt(x, y int) int { return int(w.history.At(x, y)) }

// DNA returns the active rule in its textual form.
func (w *World) DNA() string { return w.rule.String() }

// MutationRate returns the active rule's mutation probability.
func (w *World) MutationRate() float64 { return w.rule.Mutation }

// Phase returns the current wave phase accumulator.
func (w *World) Phase() float64 { return w.phase }

// Generation returns the number of Step calls since the world was created.
func (w *World) Generation() int { return w.gen }

// Population counts the currently alive cells.
func (w *World) Population() int {
	total := 0
	for _, c := range w.cur.Cells() {
		if c != 0 {
			total++
		}
	}
	return total
}

// Reset rerolls the alive grid and the nutrient field and zeroes the history
// trail. The active rule and the phase accumulator are left untouched.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRand(effective)
	core.FillBernoulli(w.rng, w.cur.Cells(), w.cfg.Params.AliveChance)
	w.nutrient.Randomize(w.rng)
	w.history.Clear()
	w.gen = 0
}

// LoadRule parses text and replaces the active rule. On failure the active
// rule is left unchanged and the parse error is returned to the caller.
func (w *World) LoadRule(text string) error {
	r, err := rule.Parse(text)
	if err != nil {
		return err
	}
	w.rule = r
	return nil
}

// Step advances one generation: animate the nutrient field with the current
// phase, advance the phase, draw a single mutated rule variant, compute the
// next grid from the pre-tick snapshots, then update the history trail from
// the new state.
func (w *World) Step() {
	w.nutrient.Animate(w.phase)
	w.phase += w.cfg.Params.PhaseStep

	birth, survive := w.rule.Mutate(w.rng)

	width, height := w.cur.W, w.cur.H
	cur := w.cur.Cells()
	nxt := w.nxt.Cells()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + width) % width
					ny := (y + dy + height) % height
					if cur[ny*width+nx] != 0 {
						neighbors++
					}
				}
			}
			idx := y*width + x
			nutrient := w.nutrient.At(x, y)
			nxt[idx] = 0
			if cur[idx] != 0 {
				if survive.Contains(neighbors) || nutrient > w.cfg.Params.SurviveNutrient {
					nxt[idx] = 1
				}
			} else {
				if birth.Contains(neighbors) && nutrient > w.cfg.Params.BirthNutrient {
					nxt[idx] = 1
				}
			}
		}
	}
	w.cur, w.nxt = w.nxt, w.cur

	w.history.Update(w.cur.Cells())
	w.gen++
}

func init() {
	core.Register("lifecode", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		world, err := NewWithConfig(c)
		if err != nil {
			// FromMap only accepts DNA strings that parse.
			panic(err)
		}
		return world
	})
}
