// Package gillespie is the module root for a stochastic simulator of
// well-mixed chemical reaction networks: given species population counts
// and a set of law-of-mass-action reactions, it produces statistically
// correct trajectories via the direct-method Gillespie SSA.
//
// What is gillespie?
//
//	A dependency-light library bringing together:
//
//	  - rng:     a seedable PRNG adapter (uniform + exponential draws)
//	  - rate:    the propensity capability and its LMA implementation
//	  - core:    the Gillespie engine state, step kernel, trajectory drivers
//	  - matrix:  a dense float64 matrix, used to expose the stoichiometry matrix
//	  - builder: a name-based facade over core, for dynamic/external callers
//
// Why this split?
//
//   - Single-threaded, synchronous core — one Gillespie is a mutable
//     sequential object; independent engines never share state, so no
//     locking is needed or done (compare this to a concurrency-safe data
//     structure: here the simplicity comes from NOT sharing, not from locks).
//   - Index-based core, name-based facade — core.Gillespie never hears a
//     species name; builder.Network owns the name↔index map and lowers to
//     core on Run, keeping the hot path allocation- and lookup-free.
//   - Reaction polymorphism without an enum — rate.Rate is a one-method
//     capability interface, so new rate laws cost nothing to add.
//
// Quick example:
//
//	g := core.New([]int64{3})
//	g.AddReaction(rate.LMA{K: 1.0, S: []int64{1}}, []int64{-1})
//	times, states, _ := g.RunEvent(1e6)
//
//	represents pure decay X → ∅ at rate 1, run to exhaustion.
//
//	go get github.com/katalvlaran/gillespie
package gillespie
