package section

import "fmt"

// Section is a prismatic beam cross-section defined by its outline.
// The outline is given in a local coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Outline vertices, counter-clockwise or clockwise.
	// The section is assumed to be a simple polygon (no holes)
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rectangle returns the outline of a b×h rectangle with its bottom-left
// corner at the origin
func Rectangle(b, h float64) *Section {
	return &Section{
		Name: fmt.Sprintf("%gx%g", b, h),
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: b, Y: 0},
			{X: b, Y: h},
			{X: 0, Y: h},
		},
	}
}

// SectionProperties holds calculated geometric properties
type SectionProperties struct {
	// Overall dimensions
	Width  float64 // Maximum width
	Height float64 // Total height
	Area   float64 // Gross area

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Second moments of area about the centroidal axes
	Ixx float64 // bending about the horizontal axis (the one beams use)
	Iyy float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if area, _, _ := s.calculateAreaAndCentroid(); area <= 0 {
		return &ValidationError{msg: fmt.Sprintf("section %q encloses no area", s.Name)}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
