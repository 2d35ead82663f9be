package beam

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/waynemaranga/moment-distribution/internal/nscp"
	"github.com/waynemaranga/moment-distribution/internal/section"
)

// beamFile is the JSON layout of a beam definition
type beamFile struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Spans       []spanFile `json:"spans"`
	Nodes       []Node     `json:"nodes"`
}

// spanFile lets a span give its rigidity indirectly: E from the concrete
// strength and I from a rectangle or a polygon section
type spanFile struct {
	Span
	Fc      float64          `json:"fc,omitempty"`     // concrete strength (MPa)
	Width   float64          `json:"width,omitempty"`  // rectangular section
	Height  float64          `json:"height,omitempty"` // rectangular section
	Section *section.Section `json:"section,omitempty"`
}

// LoadFromFile loads a beam definition from a JSON file
func LoadFromFile(filepath string) (*Beam, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a beam from its JSON definition
func Parse(data []byte) (*Beam, error) {
	var f beamFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse beam: %w", err)
	}

	spans := make([]Span, len(f.Spans))
	for i, sf := range f.Spans {
		s, err := sf.resolve(i)
		if err != nil {
			return nil, err
		}
		spans[i] = s
	}
	for n := range f.Nodes {
		if l := f.Nodes[n].Load; l != nil {
			c, err := nscp.ParseLoadCase(string(l.Case))
			if err != nil {
				return nil, nodeErr(n, "%v", err)
			}
			l.Case = c
		}
	}

	b, err := New(f.Name, spans, f.Nodes)
	if err != nil {
		return nil, err
	}
	b.Description = f.Description
	return b, nil
}

func (sf *spanFile) resolve(i int) (Span, error) {
	s := sf.Span
	if s.E <= 0 && sf.Fc > 0 {
		s.E = nscp.ConcreteModulus(sf.Fc)
	}
	if s.I <= 0 {
		switch {
		case sf.Width > 0 && sf.Height > 0:
			s.I = section.Rectangle(sf.Width, sf.Height).MomentOfInertia()
		case sf.Section != nil:
			if err := sf.Section.Validate(); err != nil {
				return s, spanErr(i, "%v", err)
			}
			s.I = sf.Section.MomentOfInertia()
		}
	}
	for k := range s.Loads {
		c, err := nscp.ParseLoadCase(string(s.Loads[k].Case))
		if err != nil {
			return s, loadErr(i, s.Loads[k].Label(k), "%v", err)
		}
		s.Loads[k].Case = c
	}
	return s, nil
}
