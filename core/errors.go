// Package core implements the Gillespie direct-method SSA engine: the
// species/reaction state, the propensity-weighted step kernel, and the
// time-advancement drivers used by both grid and event sampling.
//
// The engine is single-threaded and synchronous by design: one Gillespie is
// a mutable sequential object, and concurrent calls against the same
// instance are undefined — independent instances share no state and may
// safely be driven in parallel by the caller. No internal locking is done,
// because none is needed.
package core

import "errors"

// ErrShapeMismatch indicates a vector argument's length does not match the
// engine's species count N, or (for Step) the reaction count. Raised by
// AddReaction (reactant/delta vector length != N) and Step (scratch length
// != NbReactions()). Surfaces immediately without mutating engine state.
var ErrShapeMismatch = errors.New("core: shape mismatch")

// ErrIndexOutOfRange indicates Species(i) was called with i outside [0, N).
var ErrIndexOutOfRange = errors.New("core: index out of range")

// ErrInvalidPropensity indicates a reaction's propensity evaluated to NaN,
// a negative value, or +Inf. This aborts the current step; engine state
// (t, x) is left at its last valid value, exactly as if the step had not
// been attempted.
var ErrInvalidPropensity = errors.New("core: invalid propensity")

// errAbsorbing is an internal sentinel: every reaction's propensity is zero
// at the current state, so no reaction can fire. It is consumed inside the
// step kernel and the drivers and never returned from a public method —
// an absorbing system is not itself an error condition.
var errAbsorbing = errors.New("core: absorbing state")
