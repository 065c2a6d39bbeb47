package core

import (
	"fmt"

	"github.com/katalvlaran/gillespie/matrix"
	"github.com/katalvlaran/gillespie/rate"
	"github.com/katalvlaran/gillespie/rng"
)

// Reaction pairs a propensity (Rate) with the stoichiometric change vector
// (Delta) applied to the species counts when the reaction fires: x <- x + Delta.
// Both Rate's reactant vector and Delta are sized N, the engine's species count.
type Reaction struct {
	Rate  rate.Rate
	Delta []int64
}

// Option configures a Gillespie at construction time.
type Option func(*Gillespie)

// WithSeed pins the engine's RNG to a deterministic stream. Two engines
// built with the same initial counts, the same seed, and the same sequence
// of AddReaction calls produce bit-identical trajectories.
func WithSeed(seed uint64) Option {
	return func(g *Gillespie) { g.rng = rng.New(rng.WithSeed(seed)) }
}

// WithRNG installs an explicit rng.Source, for callers that manage their
// own seeding/derivation policy (e.g. independent streams per worker).
// Panics on nil: an explicitly-supplied-but-nil RNG is a programmer error,
// not a normal control-flow path, so it fails fast at construction instead
// of surfacing later as a nil-pointer panic deep in the step kernel.
func WithRNG(s *rng.Source) Option {
	if s == nil {
		panic("core: WithRNG(nil)")
	}
	return func(g *Gillespie) { g.rng = s }
}

// Gillespie holds the mutable state of one simulation run: the current
// time, the species count vector, the ordered reaction list, the RNG, and
// a reusable scratch buffer for AdvanceUntil's internal stepping.
//
// Reaction indices are stable for the engine's lifetime: AddReaction only
// appends, never removes or reorders. t is non-decreasing: commit advances
// it by a non-negative sampled Δt, and AdvanceUntil, on discarding an
// overshooting step, moves it forward to a target that is above t.
type Gillespie struct {
	t         float64
	x         []int64
	reactions []Reaction
	rng       *rng.Source
	scratch   []float64 // lazily grown, reused across AdvanceUntil/RunGrid/RunEvent calls
}

// New constructs a Gillespie with initial species counts x0; len(x0) fixes
// N, the species count, for the engine's lifetime. Without WithSeed or
// WithRNG, the RNG auto-seeds from OS entropy (see rng.New). t starts at 0.
func New(x0 []int64, opts ...Option) *Gillespie {
	x := make([]int64, len(x0))
	copy(x, x0)

	g := &Gillespie{x: x}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rng.New()
	}
	return g
}

// NbSpecies returns N, the number of species.
func (g *Gillespie) NbSpecies() int { return len(g.x) }

// NbReactions returns the number of reactions currently in the system.
func (g *Gillespie) NbReactions() int { return len(g.reactions) }

// Time returns the current simulation time t.
func (g *Gillespie) Time() float64 { return g.t }

// Species returns the current count of species i.
func (g *Gillespie) Species(i int) (int64, error) {
	if i < 0 || i >= len(g.x) {
		return 0, fmt.Errorf("core: Species(%d): %w", i, ErrIndexOutOfRange)
	}
	return g.x[i], nil
}

// Seed returns the seed backing the engine's RNG (explicit or
// entropy-derived), so a caller can log or replay a run.
func (g *Gillespie) Seed() uint64 { return g.rng.Seed() }

// AddReaction appends a reaction to the system. r's reactant vector (for
// rate.LMA, R.S) and delta must both have length N; otherwise
// ErrShapeMismatch is returned and the engine is left unchanged. Appending
// never invalidates previously returned reaction indices.
func (g *Gillespie) AddReaction(r rate.Rate, delta []int64) error {
	n := len(g.x)
	if len(delta) != n {
		return fmt.Errorf("core: AddReaction: delta has length %d, want %d: %w", len(delta), n, ErrShapeMismatch)
	}
	if lma, ok := r.(rate.LMA); ok && len(lma.S) != n {
		return fmt.Errorf("core: AddReaction: reactant vector has length %d, want %d: %w", len(lma.S), n, ErrShapeMismatch)
	}

	d := make([]int64, n)
	copy(d, delta)
	g.reactions = append(g.reactions, Reaction{Rate: r, Delta: d})
	return nil
}

// StoichiometryMatrix returns the engine's N×M stoichiometric-change matrix
// (species rows, reaction columns; entry (i,j) is reaction j's Delta_i), as
// a plain Dense matrix a caller can inspect for conservation-law or
// mass-balance checks without reaching into the reaction slice directly.
// Returns an error only if N or M is zero (no matrix to build).
func (g *Gillespie) StoichiometryMatrix() (*matrix.Dense, error) {
	n, m := len(g.x), len(g.reactions)
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("core: StoichiometryMatrix: %d species, %d reactions: %w", n, m, matrix.ErrInvalidDimensions)
	}
	d, err := matrix.NewDense(n, m)
	if err != nil {
		return nil, err
	}
	for j, rxn := range g.reactions {
		for i, delta := range rxn.Delta {
			if err := d.Set(i, j, float64(delta)); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}
