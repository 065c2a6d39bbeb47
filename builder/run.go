package builder

import (
	"fmt"

	"github.com/katalvlaran/gillespie/core"
	"github.com/katalvlaran/gillespie/rate"
)

// RunOption configures a single Run call.
type RunOption func(*runConfig)

type runConfig struct {
	seed    uint64
	hasSeed bool
}

// WithSeed pins Run's engine to a deterministic RNG stream, exactly as
// core.WithSeed does for the low-level engine.
func WithSeed(seed uint64) RunOption {
	return func(c *runConfig) { c.seed = seed; c.hasSeed = true }
}

// Run materializes the stored reactions into a core.Gillespie over
// NbSpecies species (len(SpeciesIndex())), applies init to the initial
// vector (names not known to the Network are ignored), and drives the
// engine to tmax: nbSteps > 0 selects grid mode (RunGrid), nbSteps == 0
// selects event mode (RunEvent). The returned species map has one entry per
// known species name, each slice the same length as times.
//
// Reactions replay in the order they were added (including any reaction
// appended by WithReverseRate), so Run is deterministic given a fixed seed,
// a fixed call history, and an identical init.
func (n *Network) Run(init map[string]int, tmax float64, nbSteps int, opts ...RunOption) ([]float64, map[string][]int64, error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	nbSpecies := len(n.order)
	x0 := make([]int64, nbSpecies)
	for name, count := range init {
		if idx, ok := n.speciesIndex[name]; ok {
			x0[idx] = int64(count)
		}
	}

	var engineOpts []core.Option
	if cfg.hasSeed {
		engineOpts = append(engineOpts, core.WithSeed(cfg.seed))
	}
	g := core.New(x0, engineOpts...)

	for _, spec := range n.reactions {
		lma := rate.LMA{K: spec.rateConst, S: make([]int64, nbSpecies)}
		delta := make([]int64, nbSpecies)
		for _, name := range spec.reactants {
			idx := n.speciesIndex[name]
			lma.S[idx]++
			delta[idx]--
		}
		for _, name := range spec.products {
			idx := n.speciesIndex[name]
			delta[idx]++
		}
		if err := g.AddReaction(lma, delta); err != nil {
			return nil, nil, fmt.Errorf("builder: Run: %w", err)
		}
	}

	var times []float64
	var states [][]int64
	var err error
	if nbSteps > 0 {
		times, states, err = g.RunGrid(tmax, nbSteps)
	} else {
		times, states, err = g.RunEvent(tmax)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("builder: Run: %w", err)
	}

	species := make(map[string][]int64, nbSpecies)
	for name, idx := range n.speciesIndex {
		col := make([]int64, len(states))
		for i, s := range states {
			col[i] = s[idx]
		}
		species[name] = col
	}
	return times, species, nil
}
