//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD draws the status line over the simulation view.
type HUD struct {
	visible bool
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD { return &HUD{visible: true} }

// Toggle flips HUD visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw prints the status line in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, status Status) {
	if !h.visible {
		return
	}
	ebitenutil.DebugPrint(screen, status.Line())
}
