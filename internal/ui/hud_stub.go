//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// Toggle is a no-op in the headless build.
func (h *HUD) Toggle() {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, Status) {}
