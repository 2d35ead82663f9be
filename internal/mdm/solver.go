package mdm

import (
	"fmt"

	"github.com/waynemaranga/moment-distribution/internal/beam"
)

// Distribution is the outcome of the balancing iteration
type Distribution struct {
	Initial   State // fixed-end moments
	Final     State // FEF + every distributed and carried-over increment
	Rounds    int
	Converged bool
	Unbalance float64 // largest joint unbalance left in Final
	Tolerance float64 // absolute tolerance the run was held to

	// History[k] is the largest joint unbalance after k rounds
	History []float64
}

// Distribute balances the joints starting from the fixed-end moments.
//
// The run converges once every joint unbalance is within half the
// tolerance: a further round then moves no end moment by more than the
// tolerance (distribution at most tol/2, carry-over at most tol/4). When
// MaxRounds rounds have run first, the partial state is returned with
// Converged false.
func Distribute(fefs []FixedEndForces, f *Factors, cfg Config) *Distribution {
	cfg = cfg.withDefaults()
	d := &Distribution{
		Initial:   NewState(fefs),
		Tolerance: cfg.tolerance(fefs),
	}
	limit := d.Tolerance / 2

	state := d.Initial.Clone()
	for {
		u := MaxUnbalance(state, f)
		d.History = append(d.History, u)
		if cfg.Trace != nil {
			fmt.Fprintf(cfg.Trace, "round %3d  max unbalance %.6g\n", d.Rounds, u)
		}
		if u <= limit {
			d.Converged = true
			break
		}
		if d.Rounds >= cfg.MaxRounds {
			break
		}
		state = Step(state, f)
		d.Rounds++
	}
	d.Final = state
	d.Unbalance = d.History[len(d.History)-1]
	return d
}

// Solve analyses the beam. On NonConvergence the partial results are
// returned together with a *NonConvergenceError; every other error
// returns nil results.
func Solve(b *beam.Beam, cfg Config) (*Results, error) {
	cfg = cfg.withDefaults()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	fefs, err := ComputeAllFEF(b)
	if err != nil {
		return nil, err
	}
	f, err := ComputeFactors(b)
	if err != nil {
		return nil, err
	}

	d := Distribute(fefs, f, cfg)
	res := PostProcess(b, fefs, d.Final, cfg)
	res.Factors = f
	res.Distribution = d

	if !d.Converged {
		return res, &NonConvergenceError{Rounds: d.Rounds, Unbalance: d.Unbalance, Tolerance: d.Tolerance}
	}
	return res, nil
}
