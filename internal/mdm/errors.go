package mdm

import (
	"errors"
	"fmt"

	"github.com/waynemaranga/moment-distribution/internal/beam"
)

// Error kinds. Every error returned by this package wraps one of them.
var (
	ErrInvalidBeamModel    = beam.ErrInvalidBeamModel
	ErrUnsupportedLoadSpan = errors.New("unsupported load/span combination")
	ErrDegenerateJoint     = errors.New("degenerate joint")
	ErrNonConvergence      = errors.New("moment distribution did not converge")
)

// SpanError reports a span whose loads cannot be turned into fixed-end forces
type SpanError struct {
	Span     int
	Load     string
	SpanType beam.SpanType
	LoadType beam.LoadType
}

func (e *SpanError) Error() string {
	where := "span"
	if e.Span >= 0 {
		where = fmt.Sprintf("span %d", e.Span+1)
	}
	return fmt.Sprintf("%s: %s, load %s: %s load on %s span",
		ErrUnsupportedLoadSpan, where, e.Load, e.LoadType, e.SpanType)
}

func (e *SpanError) Unwrap() error {
	return ErrUnsupportedLoadSpan
}

// JointError reports a joint that must be balanced but has no stiffness
type JointError struct {
	Joint int
	Msg   string
}

func (e *JointError) Error() string {
	return fmt.Sprintf("%s: joint %d: %s", ErrDegenerateJoint, e.Joint+1, e.Msg)
}

func (e *JointError) Unwrap() error {
	return ErrDegenerateJoint
}

// NonConvergenceError accompanies a partial result when the round ceiling
// was reached before the joints balanced
type NonConvergenceError struct {
	Rounds    int
	Unbalance float64 // largest remaining joint unbalance
	Tolerance float64
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d rounds: unbalance %.6g exceeds tolerance %.6g",
		ErrNonConvergence, e.Rounds, e.Unbalance, e.Tolerance)
}

func (e *NonConvergenceError) Unwrap() error {
	return ErrNonConvergence
}
