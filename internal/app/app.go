//go:build ebiten

package app

import (
	"fmt"
	"time"

	"lifecode/internal/render"
	"lifecode/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mutationNudge is how far the bracket keys move the mutation rate.
const mutationNudge = 0.005

// Game adapts a World to the ebiten.Game interface. The adapter owns the
// pause flag and all interactive I/O; the world only ever sees Reset, Step
// and LoadRule calls.
type Game struct {
	world   World
	painter *render.WorldPainter
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world World, scale int, seed int64) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		painter: render.NewWorldPainter(size.W, size.H),
		hud:     ui.NewHUD(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.editDNA()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.world.SetFloatParameter("mutation_rate", g.world.MutationRate()-mutationNudge)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.world.SetFloatParameter("mutation_rate", g.world.MutationRate()+mutationNudge)
	}

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// editDNA blocks on a terminal prompt and swaps the rule in on success. A
// parse error keeps the previous rule active.
func (g *Game) editDNA() {
	text := PromptDNA(g.world.DNA())
	if err := g.world.LoadRule(text); err != nil {
		fmt.Println(err)
		fmt.Println("keeping", g.world.DNA())
	}
}

// Draw renders the three coupled grids and the HUD line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Alive(), g.world.History(), g.world.Nutrient(), g.scale)
	g.hud.Draw(screen, ui.Status{
		DNA:        g.world.DNA(),
		Generation: g.world.Generation(),
		Population: g.world.Population(),
		Mutation:   g.world.MutationRate(),
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}
