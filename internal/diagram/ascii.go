package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/waynemaranga/moment-distribution/internal/beam"
	"github.com/waynemaranga/moment-distribution/internal/mdm"
)

// Series is one quantity sampled along the beam
type Series struct {
	Title string
	Unit  string
	X     []float64 // position from the left end
	Y     []float64

	// Supports are the joint positions, drawn as reference lines
	Supports []float64
}

// MomentSeries returns the bending moment diagram (sagging positive)
func MomentSeries(res *mdm.Results) Series {
	return series(res, "Bending Moment", "force·length", func(s mdm.Station) float64 { return s.Moment })
}

// ShearSeries returns the shear force diagram
func ShearSeries(res *mdm.Results) Series {
	return series(res, "Shear Force", "force", func(s mdm.Station) float64 { return s.Shear })
}

// DeflectionSeries returns the elastic curve (downward positive)
func DeflectionSeries(res *mdm.Results) Series {
	return series(res, "Deflection", "length", func(s mdm.Station) float64 { return s.Deflection })
}

func series(res *mdm.Results, title, unit string, pick func(mdm.Station) float64) Series {
	st := res.Stations()
	s := Series{Title: title, Unit: unit, X: make([]float64, len(st)), Y: make([]float64, len(st))}
	for k, p := range st {
		s.X[k] = p.Position
		s.Y[k] = pick(p)
	}
	for _, j := range res.Joints {
		s.Supports = append(s.Supports, j.Position)
	}
	return s
}

// DrawASCII plots a series in the terminal. Height and width are in
// characters; zero keeps the asciigraph defaults.
func DrawASCII(s Series, height, width int) string {
	if len(s.Y) == 0 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Caption(fmt.Sprintf("%s (%s)", s.Title, s.Unit)),
		asciigraph.Precision(2),
	}
	if height > 0 {
		opts = append(opts, asciigraph.Height(height))
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(s.Y, opts...)
}

// ASCIIMoment draws the bending moment diagram
func ASCIIMoment(res *mdm.Results, height, width int) string {
	return DrawASCII(MomentSeries(res), height, width)
}

// ASCIIShear draws the shear force diagram
func ASCIIShear(res *mdm.Results, height, width int) string {
	return DrawASCII(ShearSeries(res), height, width)
}

// ASCIIDeflection draws the deflected shape
func ASCIIDeflection(res *mdm.Results, height, width int) string {
	return DrawASCII(DeflectionSeries(res), height, width)
}

// supportGlyph is the symbol of a joint in the beam sketch
func supportGlyph(s beam.SupportCondition) string {
	switch s {
	case beam.Fixed:
		return "▐"
	case beam.Pinned:
		return "△"
	case beam.Roller:
		return "○"
	case beam.InternalHinge:
		return "◦"
	}
	return "╴"
}

// DrawBeamSketch draws the spans and supports on one line, one column per
// unit of scale
func DrawBeamSketch(b *beam.Beam, width int) string {
	var sb strings.Builder
	if width <= 0 {
		width = 60
	}
	total := b.Length()
	if total <= 0 {
		return ""
	}

	sb.WriteString("\n  ")
	for i := range b.Spans {
		sb.WriteString(supportGlyph(b.Nodes[i].Support))
		n := max(int(float64(width)*b.Spans[i].Length/total), 3)
		sb.WriteString(strings.Repeat("═", n))
	}
	sb.WriteString(supportGlyph(b.Nodes[len(b.Nodes)-1].Support))
	sb.WriteString("\n  ")
	for i := range b.Spans {
		n := max(int(float64(width)*b.Spans[i].Length/total), 3)
		label := fmt.Sprintf("%g", b.Spans[i].Length)
		if len(label) > n {
			label = label[:n]
		}
		pad := n + 1 - len(label)
		sb.WriteString(strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2))
	}
	sb.WriteString("\n\n  Legend: ▐ fixed  △ pinned  ○ roller  ◦ hinge  ╴ free\n")
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// padRight pads by runes so box-drawing and Greek characters line up
func padRight(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
