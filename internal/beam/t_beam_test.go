package beam

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/waynemaranga/moment-distribution/internal/nscp"
)

func spans(lengths ...float64) []Span {
	out := make([]Span, len(lengths))
	for i, L := range lengths {
		out[i] = Span{Length: L, E: 1, I: 1}
	}
	return out
}

func nodes(s ...SupportCondition) []Node {
	out := make([]Node, len(s))
	for i, c := range s {
		out[i] = Node{Support: c}
	}
	return out
}

func Test_beam01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("beam01. classification")

	type want struct {
		t   SpanType
		rel End
	}
	cases := []struct {
		supports []SupportCondition
		want     []want
	}{
		{[]SupportCondition{Fixed, Fixed}, []want{{FixedEnd, EndI}}},
		{[]SupportCondition{Pinned, Roller}, []want{{SimplySupported, EndI}}},
		{[]SupportCondition{Fixed, Roller}, []want{{ProppedCantilever, EndJ}}},
		{[]SupportCondition{Fixed, NoSupport}, []want{{Cantilever, EndJ}}},
		{[]SupportCondition{NoSupport, Fixed}, []want{{Cantilever, EndI}}},
		{[]SupportCondition{Pinned, Roller, Roller}, []want{{ProppedCantilever, EndI}, {ProppedCantilever, EndJ}}},
		{[]SupportCondition{Fixed, Roller, Fixed}, []want{{FixedEnd, EndI}, {FixedEnd, EndI}}},
		{[]SupportCondition{Fixed, InternalHinge, Roller}, []want{{ProppedCantilever, EndJ}, {SimplySupported, EndI}}},
		{[]SupportCondition{Pinned, Roller, NoSupport}, []want{{ProppedCantilever, EndI}, {Cantilever, EndJ}}},
	}
	for _, c := range cases {
		ls := make([]float64, len(c.want))
		for i := range ls {
			ls[i] = 4
		}
		b, err := New("c", spans(ls...), nodes(c.supports...))
		if err != nil {
			tst.Fatalf("%v: %v", c.supports, err)
		}
		for i, w := range c.want {
			chk.String(tst, b.Spans[i].Type.String(), w.t.String())
			if w.t == ProppedCantilever || w.t == Cantilever {
				chk.String(tst, b.Spans[i].Released.String(), w.rel.String())
			}
		}
		chk.Int(tst, "supports kept", int(b.Spans[0].Supports()[0]), int(c.supports[0]))
	}
}

func Test_beam02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("beam02. invalid models")

	bad := []struct {
		name  string
		spans []Span
		nodes []Node
	}{
		{"no spans", nil, nodes(Fixed)},
		{"joint count", spans(4), nodes(Fixed, Fixed, Fixed)},
		{"zero length", spans(0), nodes(Fixed, Fixed)},
		{"negative E", []Span{{Length: 4, E: -1, I: 1}}, nodes(Fixed, Fixed)},
		{"NaN I", []Span{{Length: 4, E: 1, I: math.NaN()}}, nodes(Fixed, Fixed)},
		{"unsupported interior", spans(4, 4), nodes(Fixed, NoSupport, Fixed)},
		{"floating", spans(4), nodes(NoSupport, NoSupport)},
		{"cantilever on a pin", spans(4), nodes(Pinned, NoSupport)},
		{"hinge at an end", spans(4), nodes(InternalHinge, Fixed)},
		{"declared type mismatch", []Span{{Type: FixedEnd, Length: 4, E: 1, I: 1}}, nodes(Pinned, Roller)},
		{"load outside", []Span{{Length: 4, E: 1, I: 1, Loads: []AppliedLoad{NewPointLoad(1, 5, 4)}}}, nodes(Fixed, Fixed)},
		{"load past end", []Span{{Length: 4, E: 1, I: 1, Loads: []AppliedLoad{NewPartialUniformLoad(1, 3, 2, 4)}}}, nodes(Fixed, Fixed)},
		{"x and a_b disagree", []Span{{Length: 4, E: 1, I: 1, Loads: []AppliedLoad{{Type: PointLoad, Magnitude: 1, X: 1, AB: 0.5}}}}, nodes(Fixed, Fixed)},
		{"zero length load", []Span{{Length: 4, E: 1, I: 1, Loads: []AppliedLoad{{Type: UniformLoad, Magnitude: 1, X: 4, AB: 1}}}}, nodes(Fixed, Fixed)},
		{"distributed joint load", spans(4), []Node{{Support: Fixed}, {Support: NoSupport, Load: &AppliedLoad{Type: UniformLoad, Magnitude: 1}}}},
	}
	for _, c := range bad {
		_, err := New(c.name, c.spans, c.nodes)
		if !errors.Is(err, ErrInvalidBeamModel) {
			tst.Errorf("%s: expected ErrInvalidBeamModel, got %v", c.name, err)
		}
	}

	_, err := New("sway", spans(4, 4), nodes(Fixed, NoSupport, Fixed))
	var me *ModelError
	if !errors.As(err, &me) {
		tst.Fatalf("expected *ModelError, got %T", err)
	}
	chk.Int(tst, "joint", me.Node, 1)
	chk.Int(tst, "span", me.Span, -1)
}

func Test_beam03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("beam03. loads, copies and factoring")

	in := []Span{{Length: 8, E: 1, I: 1, Loads: []AppliedLoad{
		{Type: PointLoad, Magnitude: 10, AB: 0.25},
		{Type: UniformLoad, Magnitude: 2, Case: nscp.Live},
	}}}
	b, err := New("f", in, nodes(Fixed, Fixed))
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Float64(tst, "x from a_b", 1e-15, b.Spans[0].Loads[0].X, 2)
	chk.String(tst, string(b.Spans[0].Loads[0].Case), string(nscp.Dead))
	in[0].Loads[0].Magnitude = 99
	chk.Float64(tst, "inputs copied", 1e-15, b.Spans[0].Loads[0].Magnitude, 10)

	w, xbar := NewLinearLoad(0, 6, 0, 3, 8).Resultant(8)
	chk.Float64(tst, "triangle resultant", 1e-15, w, 9)
	chk.Float64(tst, "triangle centroid", 1e-15, xbar, 2)

	combo, _ := nscp.FindCombination("2", nscp.SimplifiedCombinations)
	f := b.Factored(combo)
	chk.Float64(tst, "1.2D", 1e-12, f.Spans[0].Loads[0].Magnitude, 12)
	chk.Float64(tst, "1.6L", 1e-12, f.Spans[0].Loads[1].Magnitude, 3.2)
	chk.Float64(tst, "original untouched", 1e-15, b.Spans[0].Loads[1].Magnitude, 2)
	if err := f.Validate(); err != nil {
		tst.Errorf("factored beam should stay valid: %v", err)
	}
	chk.Int(tst, "loads", len(b.Loads()), 2)
	chk.Array(tst, "positions", 1e-15, b.NodePositions(), []float64{0, 8})
}

func Test_beam04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("beam04. JSON definition")

	data := `{
  "name": "two-span",
  "spans": [
    {"length": 6, "fc": 28, "width": 0.3, "height": 0.5,
     "loads": [{"type": "udl", "magnitude": 12, "case": "dead"},
               {"type": "point", "magnitude": 20, "x": 3, "case": "L"}]},
    {"length": 4, "e": 25000, "section": {"vertices": [{"x":0,"y":0},{"x":0.3,"y":0},{"x":0.3,"y":0.5},{"x":0,"y":0.5}]},
     "loads": [{"type": "linear", "magnitude": 0, "end_magnitude": 9, "x": 1, "length": 3}]}
  ],
  "nodes": [{"support": "fixed"}, {"support": "roller"}, {"support": "pinned", "load": {"type": "point", "magnitude": 5}}]
}`
	b, err := Parse([]byte(data))
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.String(tst, b.Name, "two-span")
	I := 0.3 * 0.5 * 0.5 * 0.5 / 12
	chk.Float64(tst, "E from fc", 1e-9, b.Spans[0].E, nscp.ConcreteModulus(28))
	chk.Float64(tst, "I of rectangle", 1e-12, b.Spans[0].I, I)
	chk.Float64(tst, "I of polygon", 1e-12, b.Spans[1].I, I)
	chk.String(tst, string(b.Spans[0].Loads[1].Case), string(nscp.Live))
	chk.Float64(tst, "a_b filled", 1e-15, b.Spans[0].Loads[1].AB, 0.5)
	chk.String(tst, b.Spans[1].Type.String(), "propped-cantilever")
	chk.String(tst, b.Spans[1].Released.String(), "j")
	a1, a2 := b.Spans[1].Loads[0].Extent(4)
	chk.Array(tst, "extent", 1e-15, []float64{a1, a2}, []float64{1, 4})

	path := filepath.Join(tst.TempDir(), "beam.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		tst.Fatalf("%v", err)
	}
	if _, err := LoadFromFile(path); err != nil {
		tst.Errorf("%v", err)
	}

	if _, err := Parse([]byte(`{"spans": [{"length": 4, "e": 1, "i": 1, "loads": [{"type": "point", "case": "snow"}]}], "nodes": [{"support": "fixed"}, {"support": "fixed"}]}`)); !errors.Is(err, ErrInvalidBeamModel) {
		tst.Errorf("unknown load case should be a model error, got %v", err)
	}
	if _, err := Parse([]byte(`{"spans": [`)); err == nil {
		tst.Errorf("malformed JSON should fail")
	}
}
