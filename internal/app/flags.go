package app

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"lifecode/internal/sims/lifecode"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Width  int
	Height int
	Rule   string
	Prompt bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "lifecode",
		Scale:  16,
		TPS:    10,
		Seed:   42,
		Width:  50,
		Height: 50,
		Rule:   lifecode.DefaultDNA,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.StringVar(&c.Rule, "rule", c.Rule, "initial DNA rule string")
	fs.BoolVar(&c.Prompt, "prompt", c.Prompt, "prompt for the DNA rule on launch")
}

// PromptDNA reads a DNA string from the terminal. Empty input keeps def.
func PromptDNA(def string) string {
	fmt.Printf("Enter DNA rule set in format %s:\n", lifecode.DefaultDNA)
	fmt.Print("DNA> ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return def
	}
	text := strings.TrimSpace(scanner.Text())
	if text == "" {
		return def
	}
	return text
}
