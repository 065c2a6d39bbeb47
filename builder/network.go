package builder

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gillespie/core"
)

// reactionSpec is a stored, not-yet-lowered reaction: a rate constant plus
// the reactant and product multisets as entered by the caller. Lowering to
// a rate.LMA/core.Reaction happens in Run, once every species name used
// anywhere in the network is known.
type reactionSpec struct {
	rateConst float64
	reactants []string
	products  []string
}

// ReactionOption configures a single AddReaction call.
type ReactionOption func(*reactionConfig)

type reactionConfig struct {
	reverseRate float64
	hasReverse  bool
}

// WithReverseRate makes AddReaction append a second reaction, with reactants
// and products swapped and the same multiplicities, at rate r. Equivalent to
// a second AddReaction call with reactants and products exchanged.
func WithReverseRate(r float64) ReactionOption {
	return func(c *reactionConfig) { c.reverseRate = r; c.hasReverse = true }
}

// Network accumulates a name-based reaction network: species auto-register
// as they're first mentioned by AddReaction, and reactions are stored until
// Run lowers them into a core.Gillespie engine.
type Network struct {
	speciesIndex map[string]int
	order        []string // species in first-seen order; order[i] is the name at index i
	reactions    []reactionSpec
}

// New returns an empty Network: no species, no reactions.
func New() *Network {
	return &Network{speciesIndex: make(map[string]int)}
}

// register assigns name the next consecutive index if it hasn't been seen
// before, and returns its index either way.
func (n *Network) register(name string) int {
	if idx, ok := n.speciesIndex[name]; ok {
		return idx
	}
	idx := len(n.order)
	n.speciesIndex[name] = idx
	n.order = append(n.order, name)
	return idx
}

// AddReaction stores a reaction at rate rateConst, with reactants and
// products given as multisets (a name repeated k times has multiplicity k).
// Any name not already known to the Network auto-registers, in the order
// reactants then products are scanned. With WithReverseRate(r), a second
// reaction is appended with reactants and products swapped and rate r —
// equivalent to a second AddReaction(r, products, reactants) call.
//
// Returns an error, without registering any species or storing any
// reaction, if rateConst or (when WithReverseRate is given) its reverse
// rate is negative or NaN: no reachable state can give such a reaction a
// valid propensity, so both are rejected immediately rather than surfacing
// as InvalidPropensity from a later Run.
func (n *Network) AddReaction(rateConst float64, reactants, products []string, opts ...ReactionOption) error {
	if err := validateRate(rateConst); err != nil {
		return fmt.Errorf("builder: AddReaction: rate %w", err)
	}

	var cfg reactionConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasReverse {
		if err := validateRate(cfg.reverseRate); err != nil {
			return fmt.Errorf("builder: AddReaction: reverse rate %w", err)
		}
	}

	for _, name := range reactants {
		n.register(name)
	}
	for _, name := range products {
		n.register(name)
	}

	n.reactions = append(n.reactions, reactionSpec{
		rateConst: rateConst,
		reactants: append([]string(nil), reactants...),
		products:  append([]string(nil), products...),
	})
	if cfg.hasReverse {
		n.reactions = append(n.reactions, reactionSpec{
			rateConst: cfg.reverseRate,
			reactants: append([]string(nil), products...),
			products:  append([]string(nil), reactants...),
		})
	}
	return nil
}

// validateRate rejects a rate constant no reachable state can give a valid
// propensity, wrapping core.ErrInvalidPropensity so callers can branch with
// errors.Is regardless of whether the forward or reverse rate failed.
func validateRate(r float64) error {
	if r < 0 || math.IsNaN(r) {
		return fmt.Errorf("%v: %w", r, core.ErrInvalidPropensity)
	}
	return nil
}

// SpeciesIndex returns a copy of the name-to-index mapping assigned so far,
// in first-seen order: the first name ever mentioned maps to 0, and so on.
func (n *Network) SpeciesIndex() map[string]int {
	out := make(map[string]int, len(n.speciesIndex))
	for name, idx := range n.speciesIndex {
		out[name] = idx
	}
	return out
}

// NbReactions returns the number of stored reactions, including any
// appended by WithReverseRate.
func (n *Network) NbReactions() int { return len(n.reactions) }

// String renders the network as "<N> species and <M> reactions", followed
// by one "<reactants> --> <products> @ <rate>" line per reaction, in
// insertion order.
func (n *Network) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d species and %d reactions\n", len(n.order), len(n.reactions))
	for _, r := range n.reactions {
		fmt.Fprintf(&b, "%s --> %s @ %v\n", strings.Join(r.reactants, " + "), strings.Join(r.products, " + "), r.rateConst)
	}
	return b.String()
}
