package beam

import (
	"fmt"
	"strings"

	"github.com/waynemaranga/moment-distribution/internal/nscp"
)

// LoadType identifies the shape of an applied load
type LoadType int

const (
	PointLoad       LoadType = iota // concentrated force
	UniformLoad                     // constant intensity over a length
	LinearlyVarying                 // intensity varying linearly over a length
)

func (t LoadType) String() string {
	switch t {
	case PointLoad:
		return "point"
	case UniformLoad:
		return "uniform"
	case LinearlyVarying:
		return "linear"
	}
	return fmt.Sprintf("LoadType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler
func (t LoadType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *LoadType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "point", "concentrated", "p":
		*t = PointLoad
	case "uniform", "udl", "w":
		*t = UniformLoad
	case "linear", "linearly-varying", "triangular", "trapezoidal", "lvl":
		*t = LinearlyVarying
	default:
		return fmt.Errorf("unknown load type %q", string(b))
	}
	return nil
}

// AppliedLoad is one action on a span (or on a joint, for point loads).
// Forces act downward when positive.
type AppliedLoad struct {
	ID   string        `json:"id,omitempty"`
	Type LoadType      `json:"type"`
	Case nscp.LoadCase `json:"case,omitempty"`

	// Point: force. Distributed: intensity (force/length) at X.
	Magnitude float64 `json:"magnitude"`
	// Intensity at X+Length for linearly varying loads
	EndMagnitude float64 `json:"end_magnitude,omitempty"`

	X  float64 `json:"x"`   // distance from the span's left end
	AB float64 `json:"a_b"` // X / span length, 0..1

	// Loaded length of a distributed load; 0 runs to the end of the span
	Length float64 `json:"length,omitempty"`
}

// NewPointLoad places force p at distance x on a span of length l
func NewPointLoad(p, x, l float64) AppliedLoad {
	return AppliedLoad{Type: PointLoad, Magnitude: p, X: x, AB: x / l}
}

// NewUniformLoad covers the whole span of length l with intensity w
func NewUniformLoad(w, l float64) AppliedLoad {
	return AppliedLoad{Type: UniformLoad, Magnitude: w, Length: l}
}

// NewPartialUniformLoad covers [x, x+c] of a span of length l
func NewPartialUniformLoad(w, x, c, l float64) AppliedLoad {
	return AppliedLoad{Type: UniformLoad, Magnitude: w, X: x, AB: x / l, Length: c}
}

// NewLinearLoad varies from w1 at x to w2 at x+c on a span of length l
func NewLinearLoad(w1, w2, x, c, l float64) AppliedLoad {
	return AppliedLoad{Type: LinearlyVarying, Magnitude: w1, EndMagnitude: w2, X: x, AB: x / l, Length: c}
}

// IsDistributed reports whether the load acts over a length
func (l AppliedLoad) IsDistributed() bool {
	return l.Type == UniformLoad || l.Type == LinearlyVarying
}

// Extent returns the loaded interval [a1, a2] on a span of length L.
// Point loads return a1 == a2 == X.
func (l AppliedLoad) Extent(L float64) (a1, a2 float64) {
	if !l.IsDistributed() {
		return l.X, l.X
	}
	a1 = l.X
	a2 = L
	if l.Length > 0 {
		a2 = l.X + l.Length
	}
	return a1, a2
}

// Intensities returns the load intensity at both ends of the loaded length
func (l AppliedLoad) Intensities() (q1, q2 float64) {
	switch l.Type {
	case UniformLoad:
		return l.Magnitude, l.Magnitude
	case LinearlyVarying:
		return l.Magnitude, l.EndMagnitude
	}
	return 0, 0
}

// Resultant returns the total force and the distance of its line of action
// from the span's left end
func (l AppliedLoad) Resultant(L float64) (w, xbar float64) {
	if !l.IsDistributed() {
		return l.Magnitude, l.X
	}
	a1, a2 := l.Extent(L)
	c := a2 - a1
	q1, q2 := l.Intensities()
	w = (q1 + q2) * c / 2
	if q1+q2 == 0 {
		// equal and opposite ordinates: no net force, lever arm irrelevant
		return 0, a1 + c/2
	}
	xbar = a1 + c*(q1+2*q2)/(3*(q1+q2))
	return w, xbar
}

// Scaled returns a copy of the load with its intensities multiplied by f
func (l AppliedLoad) Scaled(f float64) AppliedLoad {
	l.Magnitude *= f
	l.EndMagnitude *= f
	return l
}

// Label names the load in messages
func (l AppliedLoad) Label(index int) string {
	if l.ID != "" {
		return l.ID
	}
	return fmt.Sprintf("#%d", index+1)
}
