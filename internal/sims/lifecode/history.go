package lifecode

import "lifecode/internal/core"

// historyMax caps the per-cell occupancy counter.
const historyMax = 255

// HistoryField tracks recent occupancy per cell as a decaying counter in
// [0,255]. It is display-only state with no feedback into the transition.
type HistoryField struct {
	grid *core.ByteGrid
}

// NewHistoryField allocates a zeroed history field.
func NewHistoryField(w, h int) *HistoryField {
	return &HistoryField{grid: core.NewByteGrid(w, h)}
}

// Update increments the counter for cells alive in the new state and
// decrements it for dead cells, clamped to [0,255].
func (f *HistoryField) Update(alive []uint8) {
	cells := f.grid.Cells()
	for i := range cells {
		if i < len(alive) && alive[i] != 0 {
			if cells[i] < historyMax {
				cells[i]++
			}
			continue
		}
		if cells[i] > 0 {
			cells[i]--
		}
	}
}

// Clear zeroes every counter.
func (f *HistoryField) Clear() { f.grid.Clear() }

// At returns the counter at (x, y).
func (f *HistoryField) At(x, y int) uint8 { return f.grid.At(x, y) }

// Values exposes the backing slice in row-major order.
func (f *HistoryField) Values() []uint8 { return f.grid.Cells() }
