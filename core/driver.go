package core

import "errors"

// AdvanceUntil runs the step kernel until t >= tTarget or the system
// becomes absorbing. After sampling (Δt, j*), if t+Δt would exceed
// tTarget the step is discarded (t and x are left unchanged) and t is set
// to tTarget directly; otherwise the step is committed and the loop
// continues. Discarding is statistically correct because the memoryless
// exponential is redrawn from scratch on the next call from the same
// state — this engine never "resumes" a discarded Δt.
//
// On return, t >= tTarget unless the system is absorbing, in which case t
// stays at its last value and further calls are no-ops.
func (g *Gillespie) AdvanceUntil(tTarget float64) error {
	scratch := g.scratchBuf()
	for g.t < tTarget {
		p, err := g.sampleStep(scratch)
		if errors.Is(err, errAbsorbing) {
			return nil
		}
		if err != nil {
			return err
		}
		if g.t+p.dt > tTarget {
			g.t = tTarget
			return nil
		}
		g.commit(p)
	}
	return nil
}

// RunGrid samples the trajectory at nbSteps+1 regularly spaced time points
// tmax*i/nbSteps for i in [0, nbSteps], via AdvanceUntil. times[0] is
// always 0 and states[0] is the state at construction time (before any
// reaction fires). nbSteps must be >= 1.
func (g *Gillespie) RunGrid(tmax float64, nbSteps int) ([]float64, [][]int64, error) {
	times := make([]float64, nbSteps+1)
	states := make([][]int64, nbSteps+1)

	for i := 0; i <= nbSteps; i++ {
		times[i] = tmax * float64(i) / float64(nbSteps)
	}
	states[0] = snapshot(g.x)

	for i := 1; i <= nbSteps; i++ {
		if err := g.AdvanceUntil(times[i]); err != nil {
			return times[:i], states[:i], err
		}
		states[i] = snapshot(g.x)
	}
	return times, states, nil
}

// RunEvent samples the trajectory at every fired reaction: it emits the
// starting state, then one sample per committed step, up to and including
// the first reaction whose firing time is >= tmax. If the system becomes
// absorbing before tmax, emission stops at the absorbing state — the final
// emitted time may then be strictly less than tmax.
//
// Because the stopping reaction is always included even when its time
// overshoots tmax, event-mode output can overshoot tmax by one event;
// callers wanting strict truncation must post-filter the returned slices.
func (g *Gillespie) RunEvent(tmax float64) ([]float64, [][]int64, error) {
	times := []float64{g.t}
	states := [][]int64{snapshot(g.x)}

	scratch := g.scratchBuf()
	for {
		step, err := g.Step(scratch)
		if err != nil {
			return times, states, err
		}
		if step.Absorbing {
			return times, states, nil
		}
		times = append(times, g.t)
		states = append(states, snapshot(g.x))
		if g.t >= tmax {
			return times, states, nil
		}
	}
}

func snapshot(x []int64) []int64 {
	out := make([]int64, len(x))
	copy(out, x)
	return out
}
