package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/waynemaranga/moment-distribution/internal/beam"
	"github.com/waynemaranga/moment-distribution/internal/mdm"
)

func twoSpan(tst *testing.T) (*beam.Beam, *mdm.Results) {
	spans := []beam.Span{
		{Length: 10, E: 1, I: 1, Loads: []beam.AppliedLoad{beam.NewUniformLoad(10, 10)}},
		{Length: 10, E: 1, I: 1, Loads: []beam.AppliedLoad{beam.NewUniformLoad(10, 10)}},
	}
	nodes := []beam.Node{{Support: beam.Pinned}, {Support: beam.Roller}, {Support: beam.Roller}}
	b, err := beam.New("two-span", spans, nodes)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	res, err := mdm.Solve(b, mdm.DefaultConfig())
	if err != nil {
		tst.Fatalf("%v", err)
	}
	return b, res
}

func Test_diagram01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("diagram01. series and terminal plots")

	b, res := twoSpan(tst)
	s := MomentSeries(res)
	chk.Int(tst, "samples", len(s.Y), 2*mdm.DefaultConfig().Stations)
	chk.Array(tst, "supports", 1e-15, s.Supports, []float64{0, 10, 20})
	chk.Float64(tst, "moment over B", 1e-9, s.Y[mdm.DefaultConfig().Stations-1], -125)
	chk.Float64(tst, "last position", 1e-12, s.X[len(s.X)-1], 20)

	txt := ASCIIMoment(res, 10, 60)
	if !strings.Contains(txt, "Bending Moment") {
		tst.Errorf("caption missing:\n%s", txt)
	}
	if ASCIIShear(res, 0, 0) == "" || ASCIIDeflection(res, 0, 0) == "" {
		tst.Errorf("empty diagram")
	}
	if DrawASCII(Series{}, 5, 5) != "" {
		tst.Errorf("empty series should draw nothing")
	}

	// the legend repeats the glyphs; count the support line only
	sketch := strings.Split(strings.TrimSpace(DrawBeamSketch(b, 40)), "\n")[0]
	chk.Int(tst, "pins and rollers", strings.Count(sketch, "△")+strings.Count(sketch, "○"), 3)

	box := DrawSummaryBox("Results", []string{"M = -125", "θ = 0"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	chk.Int(tst, "box lines", len(lines), 6)
	for _, l := range lines {
		chk.Int(tst, "box width", len([]rune(l)), len([]rune(lines[0])))
	}
}

func Test_diagram02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("diagram02. image export")

	_, res := twoSpan(tst)
	dir := tst.TempDir()
	files, err := ExportBeamDiagrams(res, filepath.Join(dir, "out", "beam"), "png")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Int(tst, "files", len(files), 3)
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		if info.Size() == 0 {
			tst.Errorf("%s is empty", f)
		}
	}

	name := filepath.Join(dir, "shear")
	if err := ExportDiagram(ShearSeries(res), name); err != nil {
		tst.Fatalf("%v", err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		tst.Errorf("unknown extension should save as png: %v", err)
	}
}
