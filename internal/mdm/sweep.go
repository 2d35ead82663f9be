package mdm

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/waynemaranga/moment-distribution/internal/beam"
)

// Sweep solves independent beams concurrently, at most cfg.Workers at a
// time. Results keep the order of beams. A beam that does not converge
// keeps its partial result; any other failure cancels the sweep and is
// returned.
func Sweep(ctx context.Context, beams []*beam.Beam, cfg Config) ([]*Results, error) {
	cfg.Trace = nil // trace lines of concurrent solves would interleave
	out := make([]*Results, len(beams))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, b := range beams {
		i, b := i, b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Solve(b, cfg)
			if err != nil && !errors.Is(err, ErrNonConvergence) {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Bounds is a max/min pair
type Bounds struct {
	Max, Min float64
}

func (b *Bounds) add(v float64) {
	b.Max = math.Max(b.Max, v)
	b.Min = math.Min(b.Min, v)
}

// Envelope holds the extreme values over several analyses of the same beam,
// typically one per load combination
type Envelope struct {
	Cases int

	// per span: member-end moments and max sagging / hogging bending
	Mi, Mj   []Bounds
	Sagging  []float64
	Hogging  []float64
	Reaction []Bounds // per joint
	Support  []Bounds // bending over each joint
}

// NewEnvelope combines the results of analyses of one beam. Every result
// must come from the same geometry.
func NewEnvelope(results []*Results) (*Envelope, error) {
	if len(results) == 0 {
		return nil, errors.New("envelope needs at least one result")
	}
	ns, nj := len(results[0].Spans), len(results[0].Joints)
	e := &Envelope{
		Mi:       make([]Bounds, ns),
		Mj:       make([]Bounds, ns),
		Sagging:  make([]float64, ns),
		Hogging:  make([]float64, ns),
		Reaction: make([]Bounds, nj),
		Support:  make([]Bounds, nj),
	}
	for k, r := range results {
		if r == nil || len(r.Spans) != ns || len(r.Joints) != nj {
			return nil, errors.New("envelope results describe different beams")
		}
		for i, s := range r.Spans {
			if k == 0 {
				e.Mi[i] = Bounds{s.Mi, s.Mi}
				e.Mj[i] = Bounds{s.Mj, s.Mj}
			}
			e.Mi[i].add(s.Mi)
			e.Mj[i].add(s.Mj)
			e.Sagging[i] = math.Max(e.Sagging[i], s.MaxSagging)
			e.Hogging[i] = math.Min(e.Hogging[i], s.MaxHogging)
		}
		for n, j := range r.Joints {
			if k == 0 {
				e.Reaction[n] = Bounds{j.Reaction, j.Reaction}
				e.Support[n] = Bounds{j.SupportMoment, j.SupportMoment}
			}
			e.Reaction[n].add(j.Reaction)
			e.Support[n].add(j.SupportMoment)
		}
		e.Cases++
	}
	return e, nil
}
