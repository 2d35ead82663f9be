package mdm

import (
	"math"
)

// State is the set of member-end moments during distribution, indexed by
// span and then by end (i, j)
type State [][2]float64

// NewState starts the distribution from the fixed-end moments
func NewState(fefs []FixedEndForces) State {
	s := make(State, len(fefs))
	for i, f := range fefs {
		s[i] = [2]float64{f.Mi, f.Mj}
	}
	return s
}

// Clone returns an independent copy
func (s State) Clone() State {
	return append(State(nil), s...)
}

// Unbalance returns, per joint, the sum of the end moments meeting there.
// The sign is that of the sum itself; Step distributes its negative.
// Joints that are never balanced report zero.
func Unbalance(s State, f *Factors) []float64 {
	u := make([]float64, len(f.Joints))
	for n := range f.Joints {
		jf := &f.Joints[n]
		if !jf.Balanced {
			continue
		}
		for _, e := range jf.Ends {
			u[n] += s[e.Span][e.End]
		}
	}
	return u
}

// MaxUnbalance is the largest absolute joint unbalance
func MaxUnbalance(s State, f *Factors) float64 {
	var m float64
	for _, u := range Unbalance(s, f) {
		m = math.Max(m, math.Abs(u))
	}
	return m
}

// Step runs one balancing round and returns the new state; s is not
// modified. Every balanced joint, in ascending order, distributes minus
// its unbalance to its span ends in proportion to their distribution
// factors. The carry-overs generated are applied only once all joints have
// been balanced, so the result does not depend on the joint order.
func Step(s State, f *Factors) State {
	next := s.Clone()
	carry := make(State, len(s))
	for n := range f.Joints {
		jf := &f.Joints[n]
		if !jf.Balanced {
			continue
		}
		var u float64
		for _, e := range jf.Ends {
			u += s[e.Span][e.End]
		}
		if u == 0 {
			continue
		}
		for _, e := range jf.Ends {
			d := -u * e.DF
			next[e.Span][e.End] += d
			carry[e.Span][e.End.Far()] += d * e.CarryOver
		}
	}
	for i := range next {
		next[i][0] += carry[i][0]
		next[i][1] += carry[i][1]
	}
	return next
}
