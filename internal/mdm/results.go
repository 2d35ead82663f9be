package mdm

import (
	"math"
)

// Results is the analysis of one beam
type Results struct {
	Name   string
	Spans  []SpanResult
	Joints []JointResult

	Factors      *Factors
	Distribution *Distribution

	// TotalLoad is the sum of every applied force, downward positive
	TotalLoad float64
}

// Station is an output point along a span
type Station struct {
	X          float64 // distance from the span's i end
	Position   float64 // distance from the beam's left end
	Moment     float64 // sagging positive
	Shear      float64 // just right of X (just left at the j end)
	Deflection float64 // downward positive
}

// SpanResult holds the final actions of one span
type SpanResult struct {
	Span   int
	Length float64
	FEF    FixedEndForces

	Mi, Mj float64 // final member-end moments, clockwise positive
	Vi, Vj float64 // end shears, upward positive

	MomentI   float64 // bending at the i end (= Mi), sagging positive
	MomentJ   float64 // bending at the j end (= -Mj)
	MomentMid float64

	MaxSagging   float64
	MaxSaggingAt float64
	MaxHogging   float64 // most negative bending
	MaxHoggingAt float64

	DeflMid         float64
	MaxDeflection   float64 // largest magnitude, signed
	MaxDeflectionAt float64

	RotationI, RotationJ float64

	Stations []Station
}

// JointResult holds the actions at one joint
type JointResult struct {
	Joint    int
	Position float64

	// Reaction is the vertical support force, upward positive
	Reaction float64
	// Moment is the sum of member-end moments at the joint. It is the
	// moment reaction of a fixed support and ≈0 at balanced joints.
	Moment float64
	// SupportMoment is the beam's bending moment over the joint
	SupportMoment float64
	// Rotation of the joint; at a hinge, of the span on its left
	Rotation float64
	// Deflection is non-zero only at a free cantilever tip
	Deflection float64
}

// SumReactions adds every vertical reaction
func (r *Results) SumReactions() float64 {
	var sum float64
	for _, j := range r.Joints {
		sum += j.Reaction
	}
	return sum
}

// MaxMoments returns the largest sagging and most negative hogging
// bending moment over the whole beam
func (r *Results) MaxMoments() (sagging, hogging float64) {
	for _, s := range r.Spans {
		sagging = math.Max(sagging, s.MaxSagging)
		hogging = math.Min(hogging, s.MaxHogging)
	}
	return sagging, hogging
}

// MaxDeflection returns the deflection of largest magnitude and the span
// it occurs in
func (r *Results) MaxDeflection() (defl float64, span int) {
	for i, s := range r.Spans {
		if math.Abs(s.MaxDeflection) > math.Abs(defl) {
			defl, span = s.MaxDeflection, i
		}
	}
	return defl, span
}

// Stations returns every output station of the beam, left to right
func (r *Results) Stations() []Station {
	var all []Station
	for _, s := range r.Spans {
		all = append(all, s.Stations...)
	}
	return all
}
