package beam

import (
	"fmt"
	"strings"

	"github.com/waynemaranga/moment-distribution/internal/nscp"
)

// SupportCondition describes how a joint is restrained
type SupportCondition int

const (
	NoSupport     SupportCondition = iota // free joint (cantilever tip)
	Fixed                                 // no translation, no rotation
	Pinned                                // no translation, free rotation
	Roller                                // no vertical translation, free rotation
	InternalHinge                         // supported joint that transfers no moment
)

func (s SupportCondition) String() string {
	switch s {
	case NoSupport:
		return "none"
	case Fixed:
		return "fixed"
	case Pinned:
		return "pinned"
	case Roller:
		return "roller"
	case InternalHinge:
		return "hinge"
	}
	return fmt.Sprintf("SupportCondition(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler
func (s SupportCondition) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *SupportCondition) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "", "none", "free":
		*s = NoSupport
	case "fixed":
		*s = Fixed
	case "pinned", "pin":
		*s = Pinned
	case "roller":
		*s = Roller
	case "hinge", "internal-hinge", "internal_hinge":
		*s = InternalHinge
	default:
		return fmt.Errorf("unknown support condition %q", string(b))
	}
	return nil
}

// SpanType is the restraint pattern a span is treated with when its
// fixed-end forces are computed
type SpanType int

const (
	Unclassified      SpanType = iota
	FixedEnd                   // both ends restrained against rotation
	ProppedCantilever          // one end restrained, the Released end pinned
	SimplySupported            // both ends pinned
	Cantilever                 // one end restrained, the Released end free
)

func (t SpanType) String() string {
	switch t {
	case Unclassified:
		return "unclassified"
	case FixedEnd:
		return "fixed-end"
	case ProppedCantilever:
		return "propped-cantilever"
	case SimplySupported:
		return "simply-supported"
	case Cantilever:
		return "cantilever"
	}
	return fmt.Sprintf("SpanType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler
func (t SpanType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *SpanType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "", "auto", "unclassified":
		*t = Unclassified
	case "fixed-end", "fixed", "fixedend":
		*t = FixedEnd
	case "propped-cantilever", "propped":
		*t = ProppedCantilever
	case "simply-supported", "simple":
		*t = SimplySupported
	case "cantilever":
		*t = Cantilever
	default:
		return fmt.Errorf("unknown span type %q", string(b))
	}
	return nil
}

// End names one end of a span: I on the left, J on the right
type End int

const (
	EndI End = iota
	EndJ
)

// Far returns the opposite end
func (e End) Far() End {
	return 1 - e
}

func (e End) String() string {
	if e == EndI {
		return "i"
	}
	return "j"
}

// MarshalText implements encoding.TextMarshaler
func (e End) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *End) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "i", "left", "":
		*e = EndI
	case "j", "right":
		*e = EndJ
	default:
		return fmt.Errorf("unknown span end %q", string(b))
	}
	return nil
}

// Span is one beam segment between two consecutive joints
type Span struct {
	ID   string   `json:"id,omitempty"`
	Type SpanType `json:"type,omitempty"`
	// Pinned end of a propped cantilever, free end of a cantilever
	Released End `json:"released,omitempty"`

	Length float64 `json:"length"`
	E      float64 `json:"e"` // elastic modulus
	I      float64 `json:"i"` // second moment of area

	Loads []AppliedLoad `json:"loads,omitempty"`

	supports [2]SupportCondition
}

// EI returns the flexural rigidity, always recomputed from E and I
func (s *Span) EI() float64 {
	return s.E * s.I
}

// Supports returns the support conditions at the span's i and j ends
func (s *Span) Supports() [2]SupportCondition {
	return s.supports
}

// IsReleased reports whether the span carries no moment at end e
func (s *Span) IsReleased(e End) bool {
	switch s.Type {
	case SimplySupported:
		return true
	case ProppedCantilever, Cantilever:
		return s.Released == e
	}
	return false
}

// Label names the span in messages
func (s *Span) Label(index int) string {
	if s.ID != "" {
		return s.ID
	}
	return fmt.Sprintf("span %d", index+1)
}

// Node is a joint between spans (or at a beam end)
type Node struct {
	ID      string           `json:"id,omitempty"`
	Support SupportCondition `json:"support"`
	Load    *AppliedLoad     `json:"load,omitempty"` // point load on the joint
}

// IsSupport reports whether the joint is restrained against translation
func (n *Node) IsSupport() bool {
	return n.Support != NoSupport
}

// IsLoaded reports whether a load acts directly on the joint
func (n *Node) IsLoaded() bool {
	return n.Load != nil
}

// Beam is an ordered run of spans; span i connects Nodes[i] and Nodes[i+1]
type Beam struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Spans       []Span `json:"spans"`
	Nodes       []Node `json:"nodes"`
}

// New copies spans and nodes into a beam, derives every span type from the
// supports and validates the result
func New(name string, spans []Span, nodes []Node) (*Beam, error) {
	b := &Beam{Name: name}
	b.Spans = make([]Span, len(spans))
	for i, s := range spans {
		s.Loads = append([]AppliedLoad(nil), s.Loads...)
		b.Spans[i] = s
	}
	b.Nodes = make([]Node, len(nodes))
	for i, n := range nodes {
		if n.Load != nil {
			l := *n.Load
			n.Load = &l
		}
		b.Nodes[i] = n
	}
	if err := b.prepare(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Beam) prepare() error {
	b.normalizeLoads()
	if err := b.Classify(); err != nil {
		return err
	}
	return b.Validate()
}

// normalizeLoads fills whichever of X and AB was left empty
func (b *Beam) normalizeLoads() {
	for i := range b.Spans {
		s := &b.Spans[i]
		for k := range s.Loads {
			l := &s.Loads[k]
			if l.X == 0 && l.AB != 0 {
				l.X = l.AB * s.Length
			} else if l.AB == 0 && l.X != 0 && s.Length > 0 {
				l.AB = l.X / s.Length
			}
			if l.Case == "" {
				l.Case = nscp.Dead
			}
		}
	}
	for i := range b.Nodes {
		if l := b.Nodes[i].Load; l != nil && l.Case == "" {
			l.Case = nscp.Dead
		}
	}
}

// Length returns the total length of the beam
func (b *Beam) Length() float64 {
	var total float64
	for i := range b.Spans {
		total += b.Spans[i].Length
	}
	return total
}

// NodePositions returns the distance of every joint from the left end
func (b *Beam) NodePositions() []float64 {
	pos := make([]float64, len(b.Nodes))
	for i := range b.Spans {
		if i+1 < len(pos) {
			pos[i+1] = pos[i] + b.Spans[i].Length
		}
	}
	return pos
}

// SpanNodes returns the joint indices at the i and j ends of span s
func (b *Beam) SpanNodes(s int) (ni, nj int) {
	return s, s + 1
}

// Loads returns every applied load on the beam, span loads first
func (b *Beam) Loads() []AppliedLoad {
	var all []AppliedLoad
	for i := range b.Spans {
		all = append(all, b.Spans[i].Loads...)
	}
	for i := range b.Nodes {
		if b.Nodes[i].Load != nil {
			all = append(all, *b.Nodes[i].Load)
		}
	}
	return all
}

// Factored returns a copy of the beam with every load scaled by the
// combination factor of its load case
func (b *Beam) Factored(combo nscp.LoadCombination) *Beam {
	out := &Beam{
		Name:        fmt.Sprintf("%s [%s]", b.Name, combo.Description),
		Description: b.Description,
		Spans:       make([]Span, len(b.Spans)),
		Nodes:       make([]Node, len(b.Nodes)),
	}
	for i, s := range b.Spans {
		loads := make([]AppliedLoad, len(s.Loads))
		for k, l := range s.Loads {
			loads[k] = l.Scaled(combo.Factor(l.Case))
		}
		s.Loads = loads
		out.Spans[i] = s
	}
	for i, n := range b.Nodes {
		if n.Load != nil {
			l := n.Load.Scaled(combo.Factor(n.Load.Case))
			n.Load = &l
		}
		out.Nodes[i] = n
	}
	return out
}
