package mdm

import (
	"github.com/waynemaranga/moment-distribution/internal/beam"
)

// Carry-over factor of a prismatic span whose far end is restrained
const carryOverHalf = 0.5

// EndFactor holds the factors of one span end meeting at a joint
type EndFactor struct {
	Span      int
	End       beam.End
	Stiffness float64 // 4EI/L, 3EI/L, or 0 for a released end or a cantilever
	DF        float64 // share of the joint unbalance taken by this end
	CarryOver float64 // fraction of a distributed moment sent to the far end
}

// JointFactors groups the span ends meeting at one joint
type JointFactors struct {
	Joint int
	// Balanced joints release their unbalance; fixed, released and free
	// joints never do
	Balanced bool
	// Fixed joints absorb any moment (infinite stiffness)
	Fixed          bool
	TotalStiffness float64
	Ends           []EndFactor
}

// Factors holds the joint factors of a beam, indexed by joint
type Factors struct {
	Joints []JointFactors
}

// endFactor returns the stiffness and carry-over factor of span s seen
// from end e. restrained is false when the end carries no moment at all.
func endFactor(s *beam.Span, e beam.End) (k, co float64, restrained bool) {
	switch {
	case s.Type == beam.Cantilever:
		// the root holds moment but the free tip offers no restraint
		return 0, 0, s.Released != e
	case s.IsReleased(e):
		return 0, 0, false
	case s.IsReleased(e.Far()):
		return 3 * s.EI() / s.Length, 0, true
	}
	return 4 * s.EI() / s.Length, carryOverHalf, true
}

// ComputeFactors returns stiffness, distribution and carry-over factors for
// every joint of a validated beam
func ComputeFactors(b *beam.Beam) (*Factors, error) {
	f := &Factors{Joints: make([]JointFactors, len(b.Nodes))}
	for n := range f.Joints {
		f.Joints[n].Joint = n
		f.Joints[n].Fixed = b.Nodes[n].Support == beam.Fixed
	}

	restrained := make([]bool, len(b.Nodes))
	for i := range b.Spans {
		s := &b.Spans[i]
		ni, nj := b.SpanNodes(i)
		for _, e := range []beam.End{beam.EndI, beam.EndJ} {
			n := ni
			if e == beam.EndJ {
				n = nj
			}
			k, co, r := endFactor(s, e)
			restrained[n] = restrained[n] || r
			jf := &f.Joints[n]
			jf.Ends = append(jf.Ends, EndFactor{Span: i, End: e, Stiffness: k, CarryOver: co})
			jf.TotalStiffness += k
		}
	}

	for n := range f.Joints {
		jf := &f.Joints[n]
		if jf.Fixed || !restrained[n] {
			continue
		}
		if jf.TotalStiffness <= 0 {
			return nil, &JointError{Joint: n, Msg: "no span framing into the joint can resist rotation"}
		}
		jf.Balanced = true
		for k := range jf.Ends {
			jf.Ends[k].DF = jf.Ends[k].Stiffness / jf.TotalStiffness
		}
	}
	return f, nil
}

// BalancedJoints returns the indices of the joints that are balanced
func (f *Factors) BalancedJoints() []int {
	var out []int
	for n := range f.Joints {
		if f.Joints[n].Balanced {
			out = append(out, n)
		}
	}
	return out
}
