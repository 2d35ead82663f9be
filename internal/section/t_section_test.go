package section

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_section01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("section01. rectangle")

	b, h := 300.0, 500.0
	p := Rectangle(b, h).CalculateProperties()
	chk.Float64(tst, "area", 1e-9, p.Area, b*h)
	chk.Float64(tst, "cx", 1e-9, p.CentroidX, b/2)
	chk.Float64(tst, "cy", 1e-9, p.CentroidY, h/2)
	chk.Float64(tst, "Ixx = bh³/12", 1e-3, p.Ixx, b*h*h*h/12)
	chk.Float64(tst, "Iyy = hb³/12", 1e-3, p.Iyy, h*b*b*b/12)
	chk.Float64(tst, "width", 1e-15, p.Width, b)
	chk.Float64(tst, "height", 1e-15, p.Height, h)

	// clockwise winding gives the same properties
	cw := &Section{Vertices: []Point{{0, 0}, {0, h}, {b, h}, {b, 0}}}
	chk.Float64(tst, "clockwise Ixx", 1e-3, cw.MomentOfInertia(), b*h*h*h/12)
}

func Test_section02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("section02. tee section")

	// 600x100 flange on a 200x400 web
	tee := &Section{Vertices: []Point{
		{200, 0}, {400, 0}, {400, 400}, {600, 400}, {600, 500}, {0, 500}, {0, 400}, {200, 400},
	}}
	if err := tee.Validate(); err != nil {
		tst.Fatalf("%v", err)
	}
	p := tee.CalculateProperties()
	aw, af := 200.0*400, 600.0*100
	ybar := (aw*200 + af*450) / (aw + af)
	ixx := 200*400*400*400/12.0 + aw*(ybar-200)*(ybar-200) + 600*100*100*100/12.0 + af*(450-ybar)*(450-ybar)
	chk.Float64(tst, "area", 1e-9, p.Area, aw+af)
	chk.Float64(tst, "ȳ", 1e-9, p.CentroidY, ybar)
	chk.Float64(tst, "Ixx", 1e-2, p.Ixx, ixx)
}

func Test_section03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("section03. validation and files")

	var ve *ValidationError
	if err := (&Section{Vertices: []Point{{0, 0}, {1, 1}}}).Validate(); !errors.As(err, &ve) {
		tst.Errorf("two vertices should fail validation, got %v", err)
	}
	if err := (&Section{Vertices: []Point{{0, 0}, {1, 1}, {2, 2}}}).Validate(); !errors.As(err, &ve) {
		tst.Errorf("collinear vertices should fail validation, got %v", err)
	}

	path := filepath.Join(tst.TempDir(), "sec.json")
	data := `{"name": "R", "vertices": [{"x":0,"y":0},{"x":2,"y":0},{"x":2,"y":3},{"x":0,"y":3}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		tst.Fatalf("%v", err)
	}
	s, err := LoadFromFile(path)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.String(tst, s.Name, "R")
	chk.Float64(tst, "I", 1e-12, s.MomentOfInertia(), 2*27/12.0)
}
