package beam

import (
	"math"
)

// endState is how a joint restrains the end of a span framing into it
type endState int

const (
	endContinuous endState = iota // interior support, the beam runs through
	endRestrained                 // fixed support
	endReleased                   // pin or roller at a beam end, or a hinge
	endFree                       // unsupported beam end
)

func (b *Beam) endStateAt(n int) (endState, error) {
	node := &b.Nodes[n]
	exterior := n == 0 || n == len(b.Nodes)-1
	switch node.Support {
	case Fixed:
		return endRestrained, nil
	case InternalHinge:
		if exterior {
			return 0, nodeErr(n, "an internal hinge must join two spans")
		}
		return endReleased, nil
	case Pinned, Roller:
		if exterior {
			return endReleased, nil
		}
		return endContinuous, nil
	case NoSupport:
		if exterior {
			return endFree, nil
		}
		return 0, nodeErr(n, "interior joint must be supported (joint translation is not modelled)")
	}
	return 0, nodeErr(n, "unknown support condition %d", int(node.Support))
}

func classify(si, sj endState) (SpanType, End, string) {
	switch {
	case si == endFree && sj == endFree:
		return Unclassified, EndI, "span is unsupported at both ends"
	case si == endFree:
		if sj == endReleased {
			return Unclassified, EndI, "cantilever is rooted on a joint that cannot resist moment"
		}
		return Cantilever, EndI, ""
	case sj == endFree:
		if si == endReleased {
			return Unclassified, EndJ, "cantilever is rooted on a joint that cannot resist moment"
		}
		return Cantilever, EndJ, ""
	case si == endReleased && sj == endReleased:
		return SimplySupported, EndI, ""
	case si == endReleased:
		return ProppedCantilever, EndI, ""
	case sj == endReleased:
		return ProppedCantilever, EndJ, ""
	}
	return FixedEnd, EndI, ""
}

// expectedType derives a span's type from the supports at its joints
func (b *Beam) expectedType(i int) (SpanType, End, error) {
	ni, nj := b.SpanNodes(i)
	si, err := b.endStateAt(ni)
	if err != nil {
		return Unclassified, EndI, err
	}
	sj, err := b.endStateAt(nj)
	if err != nil {
		return Unclassified, EndI, err
	}
	t, rel, msg := classify(si, sj)
	if msg != "" {
		return Unclassified, EndI, spanErr(i, "%s", msg)
	}
	return t, rel, nil
}

func (b *Beam) checkCounts() error {
	if len(b.Spans) == 0 {
		return modelErr("beam has no spans")
	}
	if len(b.Nodes) != len(b.Spans)+1 {
		return modelErr("%d spans need %d joints, got %d", len(b.Spans), len(b.Spans)+1, len(b.Nodes))
	}
	return nil
}

// Classify sets the type of every unclassified span from the supports at
// its joints and rejects declared types that contradict them
func (b *Beam) Classify() error {
	if err := b.checkCounts(); err != nil {
		return err
	}
	for i := range b.Spans {
		s := &b.Spans[i]
		t, rel, err := b.expectedType(i)
		if err != nil {
			return err
		}
		ni, nj := b.SpanNodes(i)
		s.supports = [2]SupportCondition{b.Nodes[ni].Support, b.Nodes[nj].Support}
		if s.Type == Unclassified {
			s.Type, s.Released = t, rel
		}
	}
	return nil
}

// Validate checks every model invariant. It never modifies the beam.
func (b *Beam) Validate() error {
	if err := b.checkCounts(); err != nil {
		return err
	}
	for i := range b.Spans {
		s := &b.Spans[i]
		if !positive(s.Length) {
			return spanErr(i, "length must be positive, got %g", s.Length)
		}
		if !positive(s.E) {
			return spanErr(i, "elastic modulus must be positive, got %g", s.E)
		}
		if !positive(s.I) {
			return spanErr(i, "moment of inertia must be positive, got %g", s.I)
		}
		if s.Type == Unclassified {
			return spanErr(i, "span type is not classified")
		}
		t, rel, err := b.expectedType(i)
		if err != nil {
			return err
		}
		if s.Type != t || (hasReleasedEnd(t) && s.Released != rel) {
			return spanErr(i, "declared %s (released %s) does not match its supports, expected %s (released %s)",
				s.Type, s.Released, t, rel)
		}
		for k := range s.Loads {
			if err := validateLoad(i, k, &s.Loads[k], s.Length); err != nil {
				return err
			}
		}
	}
	for n := range b.Nodes {
		l := b.Nodes[n].Load
		if l == nil {
			continue
		}
		if l.Type != PointLoad {
			return nodeErr(n, "joint loads must be point loads, got %s", l.Type)
		}
		if !finite(l.Magnitude) {
			return nodeErr(n, "load magnitude is not finite")
		}
	}
	return nil
}

func hasReleasedEnd(t SpanType) bool {
	return t == ProppedCantilever || t == Cantilever
}

func validateLoad(span, k int, l *AppliedLoad, L float64) error {
	label := l.Label(k)
	eps := 1e-9 * math.Max(L, 1)
	if !finite(l.Magnitude) || !finite(l.EndMagnitude) {
		return loadErr(span, label, "magnitude is not finite")
	}
	if !finite(l.X) || l.X < -eps || l.X > L+eps {
		return loadErr(span, label, "position x=%g outside span of length %g", l.X, L)
	}
	if l.AB < -1e-9 || l.AB > 1+1e-9 {
		return loadErr(span, label, "a_b=%g outside 0..1", l.AB)
	}
	if math.Abs(l.AB*L-l.X) > eps {
		return loadErr(span, label, "a_b=%g does not match x/L=%g", l.AB, l.X/L)
	}
	if l.IsDistributed() {
		if l.Length < 0 {
			return loadErr(span, label, "loaded length must not be negative, got %g", l.Length)
		}
		a1, a2 := l.Extent(L)
		if a2 > L+eps {
			return loadErr(span, label, "load runs to x=%g past the span end at %g", a2, L)
		}
		if a2-a1 <= eps {
			return loadErr(span, label, "distributed load has no length")
		}
	}
	return nil
}

func positive(v float64) bool {
	return finite(v) && v > 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
