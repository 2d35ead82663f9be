package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/waynemaranga/moment-distribution/internal/mdm"
)

var (
	curveColor   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	fillColor    = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	supportColor = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	peakColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// NewPlot builds the diagram of one series: the filled curve, the zero
// line, dashed lines over the joints and labels at both extremes
func NewPlot(s Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = "Position"
	p.Y.Label.Text = s.Unit
	if len(s.X) == 0 {
		return p, nil
	}

	pts := make(plotter.XYs, len(s.X))
	for k := range s.X {
		pts[k] = plotter.XY{X: s.X[k], Y: s.Y[k]}
	}

	// closed polygon back along the axis for the shading
	area := append(plotter.XYs{{X: s.X[0], Y: 0}}, pts...)
	area = append(area, plotter.XY{X: s.X[len(s.X)-1], Y: 0})
	poly, err := plotter.NewPolygon(area)
	if err != nil {
		return nil, err
	}
	poly.Color = fillColor
	poly.LineStyle.Width = 0
	p.Add(poly)

	curve, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = curveColor
	p.Add(curve)

	zero, err := plotter.NewLine(plotter.XYs{{X: s.X[0], Y: 0}, {X: s.X[len(s.X)-1], Y: 0}})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = color.Black
	p.Add(zero)

	lo, hi := extremes(s.Y)
	for _, x := range s.Supports {
		l, err := plotter.NewLine(plotter.XYs{{X: x, Y: lo}, {X: x, Y: hi}})
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = color.Gray{Y: 128}
		l.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(l)
	}
	if len(s.Supports) > 0 {
		marks := make(plotter.XYs, len(s.Supports))
		for k, x := range s.Supports {
			marks[k] = plotter.XY{X: x, Y: 0}
		}
		sup, err := plotter.NewScatter(marks)
		if err != nil {
			return nil, err
		}
		sup.GlyphStyle.Color = supportColor
		sup.GlyphStyle.Radius = vg.Points(4)
		sup.GlyphStyle.Shape = draw.TriangleGlyph{}
		p.Add(sup)
	}

	// label the peaks
	iMin, iMax := 0, 0
	for k := range s.Y {
		if s.Y[k] < s.Y[iMin] {
			iMin = k
		}
		if s.Y[k] > s.Y[iMax] {
			iMax = k
		}
	}
	peaks := plotter.XYs{{X: s.X[iMax], Y: s.Y[iMax]}}
	labels := []string{fmt.Sprintf("%.3g", s.Y[iMax])}
	if iMin != iMax {
		peaks = append(peaks, plotter.XY{X: s.X[iMin], Y: s.Y[iMin]})
		labels = append(labels, fmt.Sprintf("%.3g", s.Y[iMin]))
	}
	dots, err := plotter.NewScatter(peaks)
	if err != nil {
		return nil, err
	}
	dots.GlyphStyle.Color = peakColor
	dots.GlyphStyle.Radius = vg.Points(3)
	p.Add(dots)
	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: peaks, Labels: labels})
	if err != nil {
		return nil, err
	}
	p.Add(lbl)

	return p, nil
}

func extremes(ys []float64) (lo, hi float64) {
	for _, y := range ys {
		lo = min(lo, y)
		hi = max(hi, y)
	}
	return lo, hi
}

// ExportDiagram saves the diagram of one series. The format follows the
// file extension (.png, .svg, .pdf); anything else gets .png appended.
func ExportDiagram(s Series, filename string) error {
	p, err := NewPlot(s)
	if err != nil {
		return err
	}

	width := 8 * vg.Inch
	height := 4 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// ExportBeamDiagrams writes the moment, shear and deflection diagrams as
// <prefix>_bmd<ext>, <prefix>_sfd<ext> and <prefix>_defl<ext> and returns
// the file names
func ExportBeamDiagrams(res *mdm.Results, prefix, ext string) ([]string, error) {
	if ext == "" {
		ext = ".png"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	parts := []struct {
		suffix string
		s      Series
	}{
		{"bmd", MomentSeries(res)},
		{"sfd", ShearSeries(res)},
		{"defl", DeflectionSeries(res)},
	}
	var files []string
	for _, part := range parts {
		name := fmt.Sprintf("%s_%s%s", prefix, part.suffix, ext)
		if err := ExportDiagram(part.s, name); err != nil {
			return files, fmt.Errorf("%s diagram: %w", part.suffix, err)
		}
		files = append(files, name)
	}
	return files, nil
}
