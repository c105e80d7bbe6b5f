// Command dna-sweep runs headless lifecode worlds across a range of mutation
// rates and reports population statistics, to help pick a DNA string whose
// drift neither freezes nor boils the grid.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"lifecode/internal/core"
	"lifecode/internal/sims/lifecode"
)

type job struct {
	rate float64
	seed int64
}

type runResult struct {
	rate  float64
	pop   int
	trail float64
}

type rateSummary struct {
	rate      float64
	meanPop   float64
	minPop    int
	maxPop    int
	meanTrail float64
}

func main() {
	steps := flag.Int("steps", 240, "ticks to simulate per run")
	runs := flag.Int("runs", 8, "seeded runs per mutation rate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	rates := flag.String("rates", "0,0.005,0.01,0.02,0.05,0.1", "comma-separated mutation rates")
	width := flag.Int("w", 50, "grid width")
	height := flag.Int("h", 50, "grid height")
	dna := flag.String("rule", lifecode.DefaultDNA, "base DNA rule string")
	showParams := flag.Bool("params", false, "print the world parameter snapshot and exit")
	trace := flag.Bool("trace", false, "step a single world at -tps and print per-tick population")
	tps := flag.Int("tps", 10, "ticks per second in trace mode")
	flag.Parse()

	baseCfg := lifecode.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height
	baseCfg.DNA = *dna

	if *showParams {
		world, err := lifecode.NewWithConfig(baseCfg)
		if err != nil {
			log.Fatal(err)
		}
		printParameters(world)
		return
	}
	if *trace {
		traceWorld(baseCfg, *steps, *tps)
		return
	}

	rateValues, err := parseRates(*rates)
	if err != nil {
		log.Fatal(err)
	}

	jobs := make(chan job)
	results := make(chan runResult)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runOne(baseCfg, j, *steps)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for _, rate := range rateValues {
			for run := 0; run < *runs; run++ {
				jobs <- job{rate: rate, seed: int64(run + 1)}
			}
		}
		close(jobs)
	}()

	byRate := map[float64][]runResult{}
	for r := range results {
		byRate[r.rate] = append(byRate[r.rate], r)
	}

	summaries := make([]rateSummary, 0, len(byRate))
	for rate, rs := range byRate {
		s := rateSummary{rate: rate, minPop: rs[0].pop, maxPop: rs[0].pop}
		for _, r := range rs {
			s.meanPop += float64(r.pop)
			s.meanTrail += r.trail
			if r.pop < s.minPop {
				s.minPop = r.pop
			}
			if r.pop > s.maxPop {
				s.maxPop = r.pop
			}
		}
		s.meanPop /= float64(len(rs))
		s.meanTrail /= float64(len(rs))
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].rate < summaries[j].rate })

	fmt.Printf("%d steps, %d runs per rate, %dx%d grid, base %s\n", *steps, *runs, *width, *height, *dna)
	fmt.Println("rate      meanPop   minPop  maxPop  meanTrail")
	for _, s := range summaries {
		fmt.Printf("%-8.4f  %-8.1f  %-6d  %-6d  %.1f\n", s.rate, s.meanPop, s.minPop, s.maxPop, s.meanTrail)
	}
}

func runOne(cfg lifecode.Config, j job, steps int) runResult {
	world, err := lifecode.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	world.SetFloatParameter("mutation_rate", j.rate)
	world.Reset(j.seed)
	for i := 0; i < steps; i++ {
		world.Step()
	}

	trail := 0
	for _, v := range world.History() {
		trail += int(v)
	}
	return runResult{
		rate:  j.rate,
		pop:   world.Population(),
		trail: float64(trail) / float64(len(world.History())),
	}
}

func traceWorld(cfg lifecode.Config, steps, tps int) {
	world, err := lifecode.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	world.Reset(cfg.Seed)

	fs := core.NewFixedStep(tps)
	for world.Generation() < steps {
		if !fs.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		world.Step()
		fmt.Printf("gen %-5d pop %-5d dna %s\n", world.Generation(), world.Population(), world.DNA())
	}
}

func printParameters(world core.SnapshotProvider) {
	snapshot := world.Parameters()
	for _, group := range snapshot.Groups {
		fmt.Println(group.Name)
		for _, p := range group.Params {
			fmt.Printf("  %-18s %s\n", p.Key, p.Value)
		}
	}
}

func parseRates(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	rates := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid mutation rate %q", p)
		}
		rates = append(rates, v)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no mutation rates given")
	}
	return rates, nil
}
