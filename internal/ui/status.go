package ui

import "fmt"

// Status carries the per-frame values shown on the HUD line.
type Status struct {
	DNA        string
	Generation int
	Population int
	Mutation   float64
	Paused     bool
}

// Line formats the status the way the HUD prints it.
func (s Status) Line() string {
	line := fmt.Sprintf("DNA: %s  gen %d  pop %d  mut %.3f", s.DNA, s.Generation, s.Population, s.Mutation)
	if s.Paused {
		line += "  [PAUSED]"
	}
	return line + "\n[SPACE] pause  [N] step  [R] reset  [S] reseed  [D] edit DNA  [ ] mutation"
}
