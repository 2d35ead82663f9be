package mdm

import (
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/waynemaranga/moment-distribution/internal/beam"
)

// quadPoints is the Gauss-Legendre order used for distributed loads. The
// integrands are polynomials of degree four at most on each sub-interval,
// so four points integrate them exactly.
const quadPoints = 4

// segment is an applied load reduced to what the statics and deflection
// formulas need: a point force, or a linear intensity over [a1, a2]
type segment struct {
	point  bool
	p, a   float64
	a1, a2 float64
	q1, q2 float64
}

func segmentsOf(loads []beam.AppliedLoad, L float64) []segment {
	segs := make([]segment, 0, len(loads))
	for _, l := range loads {
		if l.IsDistributed() {
			a1, a2 := l.Extent(L)
			q1, q2 := l.Intensities()
			segs = append(segs, segment{a1: a1, a2: a2, q1: q1, q2: q2})
			continue
		}
		segs = append(segs, segment{point: true, p: l.Magnitude, a: l.X})
	}
	return segs
}

// coeffs returns α and β of the intensity q(t) = α + βt
func (g segment) coeffs() (alpha, beta float64) {
	beta = (g.q2 - g.q1) / (g.a2 - g.a1)
	return g.q1 - beta*g.a1, beta
}

func (g segment) intensity(t float64) float64 {
	alpha, beta := g.coeffs()
	return alpha + beta*t
}

// mirror maps the segment to coordinates measured from the j end
func (g segment) mirror(L float64) segment {
	if g.point {
		return segment{point: true, p: g.p, a: L - g.a}
	}
	return segment{a1: L - g.a2, a2: L - g.a1, q1: g.q2, q2: g.q1}
}

// integrate sums f(t)·q(t) over the part of the segment inside [lo, hi]
func (g segment) integrate(lo, hi float64, f func(t float64) float64) float64 {
	if lo < g.a1 {
		lo = g.a1
	}
	if hi > g.a2 {
		hi = g.a2
	}
	if hi <= lo {
		return 0
	}
	return quad.Fixed(func(t float64) float64 { return f(t) * g.intensity(t) }, lo, hi, quadPoints, nil, 0)
}

// totalLoad returns the total force and its moment about the j end
func totalLoad(segs []segment, L float64) (w, mj float64) {
	for _, g := range segs {
		if g.point {
			w += g.p
			mj += g.p * (L - g.a)
			continue
		}
		c := g.a2 - g.a1
		f := (g.q1 + g.q2) * c / 2
		w += f
		if g.q1+g.q2 != 0 {
			xbar := g.a1 + c*(g.q1+2*g.q2)/(3*(g.q1+g.q2))
			mj += f * (L - xbar)
		}
	}
	return w, mj
}

// forceLeft is the downward force applied on [0, x)
func forceLeft(segs []segment, x float64) float64 {
	var f float64
	for _, g := range segs {
		if g.point {
			if g.a < x {
				f += g.p
			}
			continue
		}
		hi := min(g.a2, x)
		if hi <= g.a1 {
			continue
		}
		alpha, beta := g.coeffs()
		f += alpha*(hi-g.a1) + beta*(hi*hi-g.a1*g.a1)/2
	}
	return f
}

// momentLeft is the moment about x of the loads applied on [0, x),
// positive when those loads would hog the section at x
func momentLeft(segs []segment, x float64) float64 {
	var m float64
	for _, g := range segs {
		if g.point {
			if g.a < x {
				m += g.p * (x - g.a)
			}
			continue
		}
		hi := min(g.a2, x)
		if hi <= g.a1 {
			continue
		}
		alpha, beta := g.coeffs()
		prim := func(t float64) float64 {
			return alpha*(x*t-t*t/2) + beta*(x*t*t/2-t*t*t/3)
		}
		m += prim(hi) - prim(g.a1)
	}
	return m
}

// ssPointDeflection is the deflection at s of a simply supported span
// under a unit load at a, multiplied by EI
func ssPointDeflection(L, a, s float64) float64 {
	b := L - a
	if s <= a {
		return b * s * (L*L - b*b - s*s) / (6 * L)
	}
	return a * (L - s) * (2*L*s - s*s - a*a) / (6 * L)
}

// ssDeflection is the deflection at s of the span simply supported at both
// ends under the given loads
func ssDeflection(segs []segment, L, EI, s float64) float64 {
	var d float64
	for _, g := range segs {
		if g.point {
			d += g.p * ssPointDeflection(L, g.a, s)
			continue
		}
		kernel := func(t float64) float64 { return ssPointDeflection(L, t, s) }
		d += g.integrate(g.a1, s, kernel) + g.integrate(s, g.a2, kernel)
	}
	return d / EI
}

// ssRotations are the end rotations of the simply supported span
func ssRotations(segs []segment, L, EI float64) (thI, thJ float64) {
	ki := func(a float64) float64 { b := L - a; return a * b * (L + b) / (6 * L) }
	kj := func(a float64) float64 { b := L - a; return -a * b * (L + a) / (6 * L) }
	for _, g := range segs {
		if g.point {
			thI += g.p * ki(g.a)
			thJ += g.p * kj(g.a)
			continue
		}
		thI += g.integrate(g.a1, g.a2, ki)
		thJ += g.integrate(g.a1, g.a2, kj)
	}
	return thI / EI, thJ / EI
}

// endMomentDeflection is the deflection at s of a simply supported span
// carrying sagging bending m1 at the i end and m2 at the j end
func endMomentDeflection(m1, m2, L, EI, s float64) float64 {
	return s * (L - s) * (m1*(2*L-s) + m2*(L+s)) / (6 * EI * L)
}

// endMomentRotations are the end rotations produced by end bending m1, m2
func endMomentRotations(m1, m2, L, EI float64) (thI, thJ float64) {
	thI = (2*m1 + m2) * L / (6 * EI)
	thJ = -(m1 + 2*m2) * L / (6 * EI)
	return thI, thJ
}

// cantileverPointDeflection is the deflection at s (from the root) of a
// cantilever under a unit load at a, multiplied by EI
func cantileverPointDeflection(a, s float64) float64 {
	if s <= a {
		return s * s * (3*a - s) / 6
	}
	return a * a * (3*s - a) / 6
}

// cantileverPointSlope is the slope at s of the same cantilever
func cantileverPointSlope(a, s float64) float64 {
	if s <= a {
		return a*s - s*s/2
	}
	return a * a / 2
}

// cantilever evaluates deflection and slope at s for a cantilever rooted at
// root whose root rotates by thRoot (clockwise positive). Slope is returned
// in span coordinates.
func cantilever(segs []segment, L, EI float64, root beam.End, thRoot, s float64) (defl, slope float64) {
	sign := 1.0
	if root == beam.EndJ {
		sign = -1
		s = L - s
	}
	local := sign * thRoot
	defl = local * s
	slope = local
	for _, g := range segs {
		if root == beam.EndJ {
			g = g.mirror(L)
		}
		if g.point {
			defl += g.p * cantileverPointDeflection(g.a, s) / EI
			slope += g.p * cantileverPointSlope(g.a, s) / EI
			continue
		}
		kd := func(t float64) float64 { return cantileverPointDeflection(t, s) }
		ks := func(t float64) float64 { return cantileverPointSlope(t, s) }
		defl += (g.integrate(g.a1, s, kd) + g.integrate(s, g.a2, kd)) / EI
		slope += (g.integrate(g.a1, s, ks) + g.integrate(s, g.a2, ks)) / EI
	}
	return defl, sign * slope
}
