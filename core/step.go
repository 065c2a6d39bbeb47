package core

import (
	"errors"
	"fmt"
	"math"
)

// Step describes the outcome of one direct-method step: either a reaction
// fired after waiting Dt, or the system was Absorbing (every propensity was
// zero, so (t, x) are unchanged and Dt/Reaction are meaningless).
type Step struct {
	Dt        float64
	Reaction  int
	Absorbing bool
}

// proposal is a sampled-but-not-yet-applied step: Step and AdvanceUntil
// share this so both draw Δt then j* in the same fixed order, off the same
// code path, for bit-exact reproducibility regardless of which caller drives
// the engine.
type proposal struct {
	dt float64
	j  int
}

// Step performs exactly one direct-method step (or no step, if the system
// is absorbing): evaluate every reaction's propensity into scratch, sample
// which reaction fires and after how long, and apply it. scratch must have
// length NbReactions(); it is caller-owned and reused across calls so the
// hot path performs no allocation.
//
// The two RNG draws always happen in the fixed order Δt then j*, and
// propensities are summed left-to-right in insertion order — both are part
// of the engine's observable, documented reproducibility contract.
func (g *Gillespie) Step(scratch []float64) (Step, error) {
	if len(scratch) != len(g.reactions) {
		return Step{}, fmt.Errorf("core: Step: scratch has length %d, want %d: %w", len(scratch), len(g.reactions), ErrShapeMismatch)
	}

	p, err := g.sampleStep(scratch)
	if errors.Is(err, errAbsorbing) {
		return Step{Absorbing: true}, nil
	}
	if err != nil {
		return Step{}, err
	}
	g.commit(p)
	return Step{Dt: p.dt, Reaction: p.j}, nil
}

// sampleStep evaluates propensities and samples (Δt, j*) without mutating
// engine state; AdvanceUntil uses this directly so it can discard an
// overshooting proposal instead of committing it. Returns errAbsorbing
// (never ErrInvalidPropensity-wrapped, never any other sentinel) when the
// total propensity is zero; callers consume that internally via errors.Is
// and never let it reach a public return value, per the "AbsorbingState is
// an internal sentinel only" contract.
func (g *Gillespie) sampleStep(scratch []float64) (proposal, error) {
	var total float64
	for j, rxn := range g.reactions {
		a := rxn.Rate.Propensity(g.x)
		if math.IsNaN(a) || a < 0 || math.IsInf(a, 1) {
			return proposal{}, fmt.Errorf("core: Step: reaction %d propensity %v: %w", j, a, ErrInvalidPropensity)
		}
		scratch[j] = a
		total += a
	}
	if total <= 0 {
		return proposal{}, errAbsorbing
	}

	// RNG draw order is fixed: Δt, then j*.
	dt := g.rng.Exponential(total)
	threshold := g.rng.Uniform() * total

	j := -1
	var running float64
	for idx, a := range scratch {
		running += a
		if running > threshold {
			j = idx
			break
		}
	}
	if j == -1 {
		// threshold < total in exact arithmetic (Uniform() < 1), but
		// Uniform()*total can round up to total; fall back to the last
		// reaction with a positive propensity, which is the one the exact
		// comparison would select. total > 0 guarantees one exists.
		for idx := len(scratch) - 1; idx >= 0; idx-- {
			if scratch[idx] > 0 {
				j = idx
				break
			}
		}
	}

	return proposal{dt: dt, j: j}, nil
}

// commit applies a sampled proposal: advance t by Δt and x by the chosen
// reaction's Delta.
func (g *Gillespie) commit(p proposal) {
	g.t += p.dt
	delta := g.reactions[p.j].Delta
	for i, d := range delta {
		g.x[i] += d
	}
}

// scratchBuf returns the engine's internal reusable scratch buffer, grown
// to NbReactions() if needed. Used by AdvanceUntil/RunGrid/RunEvent, which
// drive the engine's own stepping and so may share one allocation across
// their own calls — this is distinct from Step's caller-owned scratch
// contract, which is for external hot-path callers.
func (g *Gillespie) scratchBuf() []float64 {
	if cap(g.scratch) < len(g.reactions) {
		g.scratch = make([]float64, len(g.reactions))
	}
	return g.scratch[:len(g.reactions)]
}
