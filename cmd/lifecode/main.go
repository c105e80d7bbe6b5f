//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"sort"
	"strconv"
	"strings"

	"lifecode/internal/app"
	"lifecode/internal/core"
	"lifecode/internal/rule"
	_ "lifecode/internal/sims/lifecode"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Prompt {
		cfg.Rule = app.PromptDNA(cfg.Rule)
	}
	if _, err := rule.Parse(cfg.Rule); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		names := make([]string, 0, len(core.Sims()))
		for name := range core.Sims() {
			names = append(names, name)
		}
		sort.Strings(names)
		log.Fatalf("unknown sim %q (registered: %s)", cfg.Sim, strings.Join(names, ", "))
	}

	sim := factory(map[string]string{
		"w":    strconv.Itoa(cfg.Width),
		"h":    strconv.Itoa(cfg.Height),
		"seed": strconv.FormatInt(cfg.Seed, 10),
		"rule": cfg.Rule,
	})
	world, ok := sim.(app.World)
	if !ok {
		log.Fatalf("sim %q does not expose the lifecode grid layers", cfg.Sim)
	}
	world.Reset(cfg.Seed)

	game := app.New(world, cfg.Scale, cfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("lifecode — " + world.DNA())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
