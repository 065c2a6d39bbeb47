package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gillespie/core"
	"github.com/katalvlaran/gillespie/rate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Statistical correctness: pure decay X -> ∅ at rate k. X(t) is exactly
// Binomial(n, e^{-kt}) (each molecule survives independently), so the
// empirical mean over many independent replicate runs must converge to
// n * e^{-kt}.
func TestMonteCarlo_PureDecay_MeanConvergesToExponentialDecay(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical check skipped in -short mode")
	}
	t.Parallel()

	const (
		n          = 200
		k          = 0.05
		tmax       = 20.0
		replicates = 300
		tolerance  = 4.0
	)
	want := n * math.Exp(-k*tmax)

	var sum float64
	for seed := uint64(0); seed < replicates; seed++ {
		g := core.New([]int64{n}, core.WithSeed(seed))
		require.NoError(t, g.AddReaction(rate.LMA{K: k, S: []int64{1}}, []int64{-1}))
		require.NoError(t, g.AdvanceUntil(tmax))

		final, err := g.Species(0)
		require.NoError(t, err)
		sum += float64(final)
	}
	mean := sum / replicates

	assert.InDelta(t, want, mean, tolerance)
}

// Statistical correctness: reversible binding A + B ⇌ C with forward rate
// kf and reverse rate kr, A(0) = B(0) = n, C(0) = 0. At equilibrium,
// kf*A_eq*B_eq = kr*C_eq with A_eq = B_eq (equal consumption) and
// A_eq + C_eq = n (conservation), which for kf=0.01, kr=0.3, n=60 solves
// exactly to A_eq = B_eq = C_eq = 30. The empirical mean of C at large t
// must converge to that deterministic equilibrium.
func TestMonteCarlo_ReversibleBinding_MeanConvergesToEquilibrium(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical check skipped in -short mode")
	}
	t.Parallel()

	const (
		n          = 60
		kf         = 0.01
		kr         = 0.3
		cEquilib   = 30.0
		tmax       = 500.0
		replicates = 300
		tolerance  = 5.0
	)

	var sum float64
	for seed := uint64(0); seed < replicates; seed++ {
		g := core.New([]int64{n, n, 0}, core.WithSeed(seed))
		require.NoError(t, g.AddReaction(rate.LMA{K: kf, S: []int64{1, 1, 0}}, []int64{-1, -1, 1}))
		require.NoError(t, g.AddReaction(rate.LMA{K: kr, S: []int64{0, 0, 1}}, []int64{1, 1, -1}))
		require.NoError(t, g.AdvanceUntil(tmax))

		c, err := g.Species(2)
		require.NoError(t, err)
		sum += float64(c)
	}
	mean := sum / replicates

	assert.InDelta(t, cEquilib, mean, tolerance)
}
