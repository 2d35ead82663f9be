package mdm

import (
	"github.com/waynemaranga/moment-distribution/internal/beam"
)

// FixedEndForces are the end actions of a span restrained as its SpanType
// prescribes, before any distribution
type FixedEndForces struct {
	Mi, Mj  float64 // member-end moments, clockwise positive
	Mmid    float64 // bending at mid-span, sagging positive
	Vi, Vj  float64 // end shears, upward positive
	DeflMid float64 // deflection at mid-span, downward positive

	// Rotation of a released (propped or free) end, clockwise positive.
	// Zero at ends restrained against rotation.
	SlopeI, SlopeJ float64
}

type fefKey struct {
	span beam.SpanType
	load beam.LoadType
}

// endMomentFunc returns the end moments one load produces on a span of
// length L whose released end (where the type has one) is rel
type endMomentFunc func(l beam.AppliedLoad, L float64, rel beam.End) (mi, mj float64)

// endMoments enumerates every span type and load type combination
var endMoments = map[fefKey]endMomentFunc{
	{beam.FixedEnd, beam.PointLoad}:       func(l beam.AppliedLoad, L float64, _ beam.End) (float64, float64) { return pointFixedFixed(l, L) },
	{beam.FixedEnd, beam.UniformLoad}:     func(l beam.AppliedLoad, L float64, _ beam.End) (float64, float64) { return uniformFixedFixed(l, L) },
	{beam.FixedEnd, beam.LinearlyVarying}: func(l beam.AppliedLoad, L float64, _ beam.End) (float64, float64) { return linearFixedFixed(l, L) },

	{beam.ProppedCantilever, beam.PointLoad}:       pointPropped,
	{beam.ProppedCantilever, beam.UniformLoad}:     uniformPropped,
	{beam.ProppedCantilever, beam.LinearlyVarying}: linearPropped,

	{beam.SimplySupported, beam.PointLoad}:       simplySupported,
	{beam.SimplySupported, beam.UniformLoad}:     simplySupported,
	{beam.SimplySupported, beam.LinearlyVarying}: simplySupported,

	{beam.Cantilever, beam.PointLoad}:       pointCantilever,
	{beam.Cantilever, beam.UniformLoad}:     distributedCantilever,
	{beam.Cantilever, beam.LinearlyVarying}: distributedCantilever,
}

// pointFixedFixed: P at a, b = L - a. Mi = -Pab²/L², Mj = +Pa²b/L².
func pointFixedFixed(l beam.AppliedLoad, L float64) (mi, mj float64) {
	p, a := l.Magnitude, l.X
	b := L - a
	return -p * a * b * b / (L * L), p * a * a * b / (L * L)
}

// Fixed-end moment integrals of the kernels x(L-x)² and x²(L-x) against
// the polynomial intensities 1 and x
func f1(L, x float64) float64 { return L*L*x*x/2 - 2*L*x*x*x/3 + x*x*x*x/4 }
func f2(L, x float64) float64 { return L*L*x*x*x/3 - L*x*x*x*x/2 + x*x*x*x*x/5 }
func g1(L, x float64) float64 { return L*x*x*x/3 - x*x*x*x/4 }
func g2(L, x float64) float64 { return L*x*x*x*x/4 - x*x*x*x*x/5 }

// uniformFixedFixed: w over [a1, a2]; the full span gives ∓wL²/12
func uniformFixedFixed(l beam.AppliedLoad, L float64) (mi, mj float64) {
	a1, a2 := l.Extent(L)
	w := l.Magnitude
	mi = -w * (f1(L, a2) - f1(L, a1)) / (L * L)
	mj = w * (g1(L, a2) - g1(L, a1)) / (L * L)
	return mi, mj
}

// linearFixedFixed: q(x) = α + βx over [a1, a2]; a full-span triangle
// rising to w at j gives Mi = -wL²/30, Mj = +wL²/20
func linearFixedFixed(l beam.AppliedLoad, L float64) (mi, mj float64) {
	a1, a2 := l.Extent(L)
	q1, q2 := l.Intensities()
	beta := (q2 - q1) / (a2 - a1)
	alpha := q1 - beta*a1
	mi = -(alpha*(f1(L, a2)-f1(L, a1)) + beta*(f2(L, a2)-f2(L, a1))) / (L * L)
	mj = (alpha*(g1(L, a2)-g1(L, a1)) + beta*(g2(L, a2)-g2(L, a1))) / (L * L)
	return mi, mj
}

// release frees end rel of a fixed-fixed span: the released moment is
// cancelled and half of it carried to the restrained end
func release(mi, mj float64, rel beam.End) (float64, float64) {
	if rel == beam.EndI {
		return 0, mj - mi/2
	}
	return mi - mj/2, 0
}

// pointPropped: central P gives 3PL/16 at the restrained end
func pointPropped(l beam.AppliedLoad, L float64, rel beam.End) (mi, mj float64) {
	mi, mj = pointFixedFixed(l, L)
	return release(mi, mj, rel)
}

// uniformPropped: a full-span w gives wL²/8 at the restrained end
func uniformPropped(l beam.AppliedLoad, L float64, rel beam.End) (mi, mj float64) {
	mi, mj = uniformFixedFixed(l, L)
	return release(mi, mj, rel)
}

// linearPropped: a full-span triangle peaking at the prop gives 7wL²/120,
// peaking at the restrained end wL²/15
func linearPropped(l beam.AppliedLoad, L float64, rel beam.End) (mi, mj float64) {
	mi, mj = linearFixedFixed(l, L)
	return release(mi, mj, rel)
}

func simplySupported(beam.AppliedLoad, float64, beam.End) (float64, float64) {
	return 0, 0
}

// pointCantilever: the root carries P times its lever arm
func pointCantilever(l beam.AppliedLoad, L float64, free beam.End) (mi, mj float64) {
	if free == beam.EndJ {
		return -l.Magnitude * l.X, 0
	}
	return 0, l.Magnitude * (L - l.X)
}

// distributedCantilever: the root carries the resultant times its lever arm
func distributedCantilever(l beam.AppliedLoad, L float64, free beam.End) (mi, mj float64) {
	w, xbar := l.Resultant(L)
	if free == beam.EndJ {
		return -w * xbar, 0
	}
	return 0, w * (L - xbar)
}

// ComputeFEF returns the fixed-end forces of a span under all its loads
func ComputeFEF(s *beam.Span) (FixedEndForces, error) {
	return computeFEF(-1, s, s.Loads)
}

// ComputeAllFEF returns the fixed-end forces of every span of the beam.
// A point load on a cantilever tip joint is carried by the cantilever.
func ComputeAllFEF(b *beam.Beam) ([]FixedEndForces, error) {
	fefs := make([]FixedEndForces, len(b.Spans))
	for i := range b.Spans {
		f, err := computeFEF(i, &b.Spans[i], spanLoads(b, i))
		if err != nil {
			return nil, err
		}
		fefs[i] = f
	}
	return fefs, nil
}

func computeFEF(idx int, s *beam.Span, loads []beam.AppliedLoad) (FixedEndForces, error) {
	var f FixedEndForces
	L, EI := s.Length, s.EI()
	if !(L > 0) || !(EI > 0) {
		return f, &beam.ModelError{Span: idx, Node: -1, Msg: "span needs positive length and EI"}
	}

	for k, l := range loads {
		fn, ok := endMoments[fefKey{s.Type, l.Type}]
		if !ok {
			return f, &SpanError{Span: idx, Load: l.Label(k), SpanType: s.Type, LoadType: l.Type}
		}
		mi, mj := fn(l, L, s.Released)
		f.Mi += mi
		f.Mj += mj
	}

	segs := segmentsOf(loads, L)
	w, mAboutJ := totalLoad(segs, L)
	f.Vi = (mAboutJ - f.Mi - f.Mj) / L
	f.Vj = w - f.Vi
	f.Mmid = f.Mi + f.Vi*L/2 - momentLeft(segs, L/2)

	if s.Type == beam.Cantilever {
		root := s.Released.Far()
		f.DeflMid, _ = cantilever(segs, L, EI, root, 0, L/2)
		_, tip := cantilever(segs, L, EI, root, 0, endPosition(s.Released, L))
		if s.Released == beam.EndI {
			f.SlopeI = tip
		} else {
			f.SlopeJ = tip
		}
		return f, nil
	}

	m1, m2 := f.Mi, -f.Mj
	f.DeflMid = ssDeflection(segs, L, EI, L/2) + endMomentDeflection(m1, m2, L, EI, L/2)
	thI, thJ := ssRotations(segs, L, EI)
	ei, ej := endMomentRotations(m1, m2, L, EI)
	if s.IsReleased(beam.EndI) {
		f.SlopeI = thI + ei
	}
	if s.IsReleased(beam.EndJ) {
		f.SlopeJ = thJ + ej
	}
	return f, nil
}

// spanLoads returns the loads a span carries, including a point load on
// the free tip of a cantilever
func spanLoads(b *beam.Beam, i int) []beam.AppliedLoad {
	s := &b.Spans[i]
	if s.Type != beam.Cantilever {
		return s.Loads
	}
	ni, nj := b.SpanNodes(i)
	tip, x := ni, 0.0
	if s.Released == beam.EndJ {
		tip, x = nj, s.Length
	}
	l := b.Nodes[tip].Load
	if l == nil {
		return s.Loads
	}
	loads := append(append([]beam.AppliedLoad(nil), s.Loads...), *l)
	last := &loads[len(loads)-1]
	last.X, last.AB = x, x/s.Length
	if last.ID == "" {
		last.ID = "tip"
	}
	return loads
}

func endPosition(e beam.End, L float64) float64 {
	if e == beam.EndI {
		return 0
	}
	return L
}
