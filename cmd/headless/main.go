// Command headless replays scenario scripts against the simulation without a
// window and logs what happened.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/arena"
	"github.com/milk9111/rocketjump/levels"
	"github.com/milk9111/rocketjump/prefabs"
	"github.com/milk9111/rocketjump/script"
)

type options struct {
	scenario string
	arena    string
	seconds  float64
	chain    bool
	quiet    bool
}

// summary is the end state of one run.
type summary struct {
	Steps    uint64
	Player   cp.Vector
	Counts   map[arena.EventKind]int
	Rejected int
}

func main() {
	var opts options
	flag.StringVar(&opts.scenario, "scenario", "rocket_jump", "scenario script in prefabs/scripts, or \"all\"")
	flag.StringVar(&opts.arena, "arena", levels.DefaultArena, "arena name in levels/ (.json optional)")
	flag.Float64Var(&opts.seconds, "seconds", 0, "override the scenario duration")
	flag.BoolVar(&opts.chain, "chain", false, "let rockets detonate on explosions")
	flag.BoolVar(&opts.quiet, "q", false, "only log the summary")
	flag.Parse()

	log.SetFlags(log.Lmicroseconds)
	log.SetPrefix(fmt.Sprintf("[%s] ", uuid.NewString()[:8]))

	names := []string{opts.scenario}
	if opts.scenario == "all" {
		names = prefabs.ScriptNames()
	}

	failed := false
	for _, name := range names {
		sum, err := run(name, opts)
		if err != nil {
			log.Printf("Headless: %s: %v", name, err)
			failed = true
			continue
		}
		log.Printf("Headless: %s finished after %d steps: fired=%d detonated=%d explosions=%d recoils=%d rejected=%d player=(%.2f, %.2f)",
			name, sum.Steps,
			sum.Counts[arena.EventRocketFired], sum.Counts[arena.EventRocketDetonated],
			sum.Counts[arena.EventExplosionSpawned], sum.Counts[arena.EventRecoilFired],
			sum.Rejected, sum.Player.X, sum.Player.Y)
	}
	if failed {
		os.Exit(1)
	}
}

func run(name string, opts options) (summary, error) {
	lvl, err := levels.LoadArenaFromFS(opts.arena)
	if err != nil {
		return summary{}, err
	}
	layout, err := arena.LayoutFromLevel(lvl)
	if err != nil {
		return summary{}, err
	}
	sc, err := script.Load(name, layout.Spawn)
	if err != nil {
		return summary{}, err
	}
	if opts.seconds > 0 {
		sc.Duration = opts.seconds
	}

	tune, err := arena.LoadTuning()
	if err != nil {
		return summary{}, err
	}
	if err := sc.Tune(&tune); err != nil {
		return summary{}, err
	}
	if opts.chain {
		tune.World.ChainReactions = true
	}

	sim, err := arena.NewSimulation(tune, layout)
	if err != nil {
		return summary{}, err
	}
	defer sim.Close()

	sum := summary{Counts: map[arena.EventKind]int{}}
	runner := script.NewRunner(sc)
	for !runner.Done(sim.Time()) {
		results, err := runner.RunUntil(sim.Time(), sim)
		if err != nil {
			return sum, err
		}
		for _, r := range results {
			if !r.Accepted {
				sum.Rejected++
				if !opts.quiet {
					log.Printf("Headless: step %d: %s rejected", sim.Steps(), r.Action)
				}
			}
		}

		sim.Step()
		for _, e := range sim.Events().Drain() {
			sum.Counts[e.Kind]++
			if !opts.quiet {
				log.Printf("Headless: %s", e)
			}
		}
	}

	sum.Steps = sim.Steps()
	sum.Player = sim.Player().Position()
	return sum, nil
}
