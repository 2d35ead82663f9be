package mdm

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/waynemaranga/moment-distribution/internal/beam"
)

// Sampling used to locate extreme moments and deflections
const (
	sampleIntervals = 200
	refineSteps     = 60
)

// spanModel evaluates the statics and elastic curve of one span once its
// end moments are known
type spanModel struct {
	segs   []segment
	L, EI  float64
	mi, mj float64
	vi, vj float64

	cantilever bool
	root       beam.End
	thRoot     float64
}

func newSpanModel(s *beam.Span, loads []beam.AppliedLoad, mi, mj float64) *spanModel {
	m := &spanModel{
		segs: segmentsOf(loads, s.Length),
		L:    s.Length,
		EI:   s.EI(),
		mi:   mi,
		mj:   mj,
	}
	w, mAboutJ := totalLoad(m.segs, m.L)
	m.vi = (mAboutJ - mi - mj) / m.L
	m.vj = w - m.vi
	if s.Type == beam.Cantilever {
		m.cantilever = true
		m.root = s.Released.Far()
	}
	return m
}

// moment is the bending moment at x, sagging positive
func (m *spanModel) moment(x float64) float64 {
	return m.mi + m.vi*x - momentLeft(m.segs, x)
}

// shearLeft is the shear just left of x
func (m *spanModel) shearLeft(x float64) float64 {
	return m.vi - forceLeft(m.segs, x)
}

// shearRight is the shear just right of x
func (m *spanModel) shearRight(x float64) float64 {
	v := m.shearLeft(x)
	for _, g := range m.segs {
		if g.point && g.a == x {
			v -= g.p
		}
	}
	return v
}

func (m *spanModel) deflection(x float64) float64 {
	if m.cantilever {
		d, _ := cantilever(m.segs, m.L, m.EI, m.root, m.thRoot, x)
		return d
	}
	return ssDeflection(m.segs, m.L, m.EI, x) + endMomentDeflection(m.mi, -m.mj, m.L, m.EI, x)
}

// rotations returns the end rotations, clockwise positive
func (m *spanModel) rotations() (thI, thJ float64) {
	if m.cantilever {
		_, thI = cantilever(m.segs, m.L, m.EI, m.root, m.thRoot, 0)
		_, thJ = cantilever(m.segs, m.L, m.EI, m.root, m.thRoot, m.L)
		return thI, thJ
	}
	si, sj := ssRotations(m.segs, m.L, m.EI)
	ei, ej := endMomentRotations(m.mi, -m.mj, m.L, m.EI)
	return si + ei, sj + ej
}

// samplePoints is a uniform grid refined with every load discontinuity
func (m *spanModel) samplePoints() []float64 {
	xs := floats.Span(make([]float64, sampleIntervals+1), 0, m.L)
	for _, g := range m.segs {
		if g.point {
			xs = append(xs, g.a)
		} else {
			xs = append(xs, g.a1, g.a2)
		}
	}
	sort.Float64s(xs)
	out := xs[:0]
	for _, x := range xs {
		if x < 0 || x > m.L {
			continue
		}
		if len(out) > 0 && x-out[len(out)-1] <= 1e-12*m.L {
			continue
		}
		out = append(out, x)
	}
	return out
}

// momentExtremes returns the largest sagging and most negative hogging
// moments and their positions. Besides the samples, every point of zero
// shear is located by bisection.
func (m *spanModel) momentExtremes(xs []float64) (sag, sagAt, hog, hogAt float64) {
	cands := append([]float64(nil), xs...)
	for k := 1; k < len(xs); k++ {
		x0, x1 := xs[k-1], xs[k]
		v0, v1 := m.shearRight(x0), m.shearLeft(x1)
		if v0 == 0 || v1 == 0 || (v0 > 0) == (v1 > 0) {
			continue
		}
		for r := 0; r < refineSteps; r++ {
			mid := (x0 + x1) / 2
			if (m.shearLeft(mid) > 0) == (v0 > 0) {
				x0 = mid
			} else {
				x1 = mid
			}
		}
		cands = append(cands, (x0+x1)/2)
	}

	ms := make([]float64, len(cands))
	for k, x := range cands {
		ms[k] = m.moment(x)
	}
	if k := floats.MaxIdx(ms); ms[k] > 0 {
		sag, sagAt = ms[k], cands[k]
	}
	if k := floats.MinIdx(ms); ms[k] < 0 {
		hog, hogAt = ms[k], cands[k]
	}
	return sag, sagAt, hog, hogAt
}

// maxDeflection returns the deflection of largest magnitude, refined by a
// ternary search around the best sample
func (m *spanModel) maxDeflection(xs []float64) (d, at float64) {
	ds := make([]float64, len(xs))
	for k, x := range xs {
		ds[k] = math.Abs(m.deflection(x))
	}
	k := floats.MaxIdx(ds)
	lo, hi := xs[max(k-1, 0)], xs[min(k+1, len(xs)-1)]
	f := func(x float64) float64 { return math.Abs(m.deflection(x)) }
	for r := 0; r < refineSteps; r++ {
		a, b := lo+(hi-lo)/3, hi-(hi-lo)/3
		if f(a) < f(b) {
			lo = a
		} else {
			hi = b
		}
	}
	at = xs[k]
	if x := (lo + hi) / 2; f(x) > ds[k] {
		at = x
	}
	return m.deflection(at), at
}

// PostProcess turns balanced end moments into shears, reactions, bending
// moments and deflections. fefs and moments are indexed by span.
func PostProcess(b *beam.Beam, fefs []FixedEndForces, moments State, cfg Config) *Results {
	cfg = cfg.withDefaults()
	res := &Results{
		Name:   b.Name,
		Spans:  make([]SpanResult, len(b.Spans)),
		Joints: make([]JointResult, len(b.Nodes)),
	}
	pos := b.NodePositions()

	models := make([]*spanModel, len(b.Spans))
	for i := range b.Spans {
		m := newSpanModel(&b.Spans[i], spanLoads(b, i), moments[i][0], moments[i][1])
		models[i] = m
		w, _ := totalLoad(m.segs, m.L)
		res.TotalLoad += w
	}

	// rotations of spans that are supported at both ends come first, the
	// cantilevers then hang off the rotation of their root joint
	for i, m := range models {
		if m.cantilever {
			continue
		}
		res.Spans[i].RotationI, res.Spans[i].RotationJ = m.rotations()
	}
	for n := range res.Joints {
		res.Joints[n].Rotation = jointRotation(b, res, models, n)
	}
	for i, m := range models {
		if !m.cantilever {
			continue
		}
		ni, nj := b.SpanNodes(i)
		rootNode := ni
		if m.root == beam.EndJ {
			rootNode = nj
		}
		m.thRoot = res.Joints[rootNode].Rotation
		res.Spans[i].RotationI, res.Spans[i].RotationJ = m.rotations()
		tip := nj
		if m.root == beam.EndJ {
			tip = ni
		}
		res.Joints[tip].Rotation = res.Spans[i].RotationJ
		res.Joints[tip].Deflection = m.deflection(m.L)
		if m.root == beam.EndJ {
			res.Joints[tip].Rotation = res.Spans[i].RotationI
			res.Joints[tip].Deflection = m.deflection(0)
		}
	}

	for i, m := range models {
		res.Spans[i] = spanResult(i, m, fefs[i], pos[i], res.Spans[i], cfg.Stations)
	}

	for n := range res.Joints {
		jr := &res.Joints[n]
		jr.Joint = n
		jr.Position = pos[n]
		node := &b.Nodes[n]
		if n > 0 {
			jr.Reaction += res.Spans[n-1].Vj
			jr.Moment += moments[n-1][1]
			jr.SupportMoment = -moments[n-1][1]
		} else if n < len(b.Spans) {
			jr.SupportMoment = moments[n][0]
		}
		if n < len(b.Spans) {
			jr.Reaction += res.Spans[n].Vi
			jr.Moment += moments[n][0]
		}
		if !node.IsSupport() {
			// a free tip carries its load through the cantilever
			jr.Reaction, jr.Moment = 0, 0
			continue
		}
		if node.Load != nil {
			jr.Reaction += node.Load.Magnitude
			res.TotalLoad += node.Load.Magnitude
		}
	}
	return res
}

// jointRotation reads the rotation of joint n from a span framing into it
// that is supported at both ends. At a hinge the left span is used.
func jointRotation(b *beam.Beam, res *Results, models []*spanModel, n int) float64 {
	if b.Nodes[n].Support == beam.Fixed {
		return 0
	}
	if n > 0 && !models[n-1].cantilever {
		return res.Spans[n-1].RotationJ
	}
	if n < len(models) && !models[n].cantilever {
		return res.Spans[n].RotationI
	}
	return 0
}

func spanResult(i int, m *spanModel, fef FixedEndForces, x0 float64, prev SpanResult, stations int) SpanResult {
	r := SpanResult{
		Span:      i,
		Length:    m.L,
		FEF:       fef,
		Mi:        m.mi,
		Mj:        m.mj,
		Vi:        m.vi,
		Vj:        m.vj,
		MomentI:   m.mi,
		MomentJ:   -m.mj,
		MomentMid: m.moment(m.L / 2),
		RotationI: prev.RotationI,
		RotationJ: prev.RotationJ,
	}

	if m.cantilever {
		r.DeflMid = m.deflection(m.L / 2)
	} else {
		dMi, dMj := m.mi-fef.Mi, m.mj-fef.Mj
		r.DeflMid = fef.DeflMid + (dMi-dMj)*m.L*m.L/(16*m.EI)
	}

	xs := m.samplePoints()
	r.MaxSagging, r.MaxSaggingAt, r.MaxHogging, r.MaxHoggingAt = m.momentExtremes(xs)
	r.MaxDeflection, r.MaxDeflectionAt = m.maxDeflection(xs)

	r.Stations = make([]Station, stations)
	for k, x := range floats.Span(make([]float64, stations), 0, m.L) {
		shear := m.shearRight(x)
		if k == stations-1 {
			shear = m.shearLeft(x)
		}
		r.Stations[k] = Station{
			X:          x,
			Position:   x0 + x,
			Moment:     m.moment(x),
			Shear:      shear,
			Deflection: m.deflection(x),
		}
	}
	return r
}
