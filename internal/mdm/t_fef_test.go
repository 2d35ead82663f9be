package mdm

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/waynemaranga/moment-distribution/internal/beam"
)

func Test_fef01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("fef01. central point load, fixed and propped")

	L, E, I, P := 6.0, 200000.0, 0.0001, 1000.0
	EI := E * I

	s := &beam.Span{Type: beam.FixedEnd, Length: L, E: E, I: I,
		Loads: []beam.AppliedLoad{beam.NewPointLoad(P, L/2, L)}}
	f, err := ComputeFEF(s)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Float64(tst, "Mi = -PL/8", 1e-9, f.Mi, -750)
	chk.Float64(tst, "Mj = +PL/8", 1e-9, f.Mj, 750)
	chk.Float64(tst, "Vi", 1e-9, f.Vi, P/2)
	chk.Float64(tst, "Mmid = PL/8", 1e-9, f.Mmid, 750)
	chk.Float64(tst, "DeflMid = PL³/192EI", 1e-9, f.DeflMid, 56.25)
	chk.Float64(tst, "no slope at restrained ends", 1e-15, f.SlopeI+f.SlopeJ, 0)

	s.Type, s.Released = beam.ProppedCantilever, beam.EndJ
	f, err = ComputeFEF(s)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Float64(tst, "Mi = -3PL/16", 1e-9, f.Mi, -3*P*L/16)
	chk.Float64(tst, "released Mj", 1e-15, f.Mj, 0)
	chk.Float64(tst, "DeflMid = 7PL³/768EI", 1e-9, f.DeflMid, 7*P*L*L*L/(768*EI))
	chk.Float64(tst, "SlopeJ = -PL²/32EI", 1e-9, f.SlopeJ, -P*L*L/(32*EI))
	chk.Float64(tst, "Vi = 11P/16", 1e-9, f.Vi, 11*P/16)

	s.Released = beam.EndI
	f, _ = ComputeFEF(s)
	chk.Float64(tst, "released Mi", 1e-15, f.Mi, 0)
	chk.Float64(tst, "Mj = 3PL/16", 1e-9, f.Mj, 3*P*L/16)
	chk.Float64(tst, "SlopeI = PL²/32EI", 1e-9, f.SlopeI, P*L*L/(32*EI))
}

func Test_fef02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("fef02. uniform load on every span type")

	L, w, E, I := 6.0, 10.0, 200000.0, 0.0001
	EI := E * I
	udl := []beam.AppliedLoad{beam.NewUniformLoad(w, L)}

	f, _ := ComputeFEF(&beam.Span{Type: beam.FixedEnd, Length: L, E: E, I: I, Loads: udl})
	chk.Float64(tst, "Mi = -wL²/12", 1e-9, f.Mi, -w*L*L/12)
	chk.Float64(tst, "Mi = -Mj", 1e-9, f.Mi, -f.Mj)
	chk.Float64(tst, "DeflMid = wL⁴/384EI", 1e-9, f.DeflMid, w*L*L*L*L/(384*EI))

	f, _ = ComputeFEF(&beam.Span{Type: beam.ProppedCantilever, Released: beam.EndI, Length: L, E: E, I: I, Loads: udl})
	chk.Float64(tst, "Mi", 1e-15, f.Mi, 0)
	chk.Float64(tst, "Mj = wL²/8", 1e-9, f.Mj, w*L*L/8)
	chk.Float64(tst, "Vi = 3wL/8", 1e-9, f.Vi, 3*w*L/8)
	chk.Float64(tst, "DeflMid = wL⁴/192EI", 1e-9, f.DeflMid, w*L*L*L*L/(192*EI))

	f, _ = ComputeFEF(&beam.Span{Type: beam.SimplySupported, Length: L, E: E, I: I, Loads: udl})
	chk.Float64(tst, "Mi", 1e-15, f.Mi, 0)
	chk.Float64(tst, "Mj", 1e-15, f.Mj, 0)
	chk.Float64(tst, "Mmid = wL²/8", 1e-9, f.Mmid, w*L*L/8)
	chk.Float64(tst, "DeflMid = 5wL⁴/384EI", 1e-9, f.DeflMid, 5*w*L*L*L*L/(384*EI))
	chk.Float64(tst, "SlopeI = wL³/24EI", 1e-9, f.SlopeI, w*L*L*L/(24*EI))
	chk.Float64(tst, "SlopeJ = -wL³/24EI", 1e-9, f.SlopeJ, -w*L*L*L/(24*EI))

	f, _ = ComputeFEF(&beam.Span{Type: beam.Cantilever, Released: beam.EndJ, Length: L, E: E, I: I, Loads: udl})
	chk.Float64(tst, "root Mi = -wL²/2", 1e-9, f.Mi, -w*L*L/2)
	chk.Float64(tst, "Vi = wL", 1e-9, f.Vi, w*L)
	chk.Float64(tst, "Vj", 1e-9, f.Vj, 0)
	chk.Float64(tst, "SlopeJ = wL³/6EI", 1e-9, f.SlopeJ, w*L*L*L/(6*EI))
	chk.Float64(tst, "DeflMid = 17wL⁴/384EI", 1e-9, f.DeflMid, 17*w*L*L*L*L/(384*EI))

	f, _ = ComputeFEF(&beam.Span{Type: beam.Cantilever, Released: beam.EndI, Length: L, E: E, I: I, Loads: udl})
	chk.Float64(tst, "root Mj = wL²/2", 1e-9, f.Mj, w*L*L/2)
	chk.Float64(tst, "SlopeI = -wL³/6EI", 1e-9, f.SlopeI, -w*L*L*L/(6*EI))
}

func Test_fef03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("fef03. linearly varying and partial loads")

	L, w := 6.0, 12.0
	tri := []beam.AppliedLoad{beam.NewLinearLoad(0, w, 0, L, L)}

	f, _ := ComputeFEF(&beam.Span{Type: beam.FixedEnd, Length: L, E: 1, I: 1, Loads: tri})
	chk.Float64(tst, "Mi = -wL²/30", 1e-9, f.Mi, -w*L*L/30)
	chk.Float64(tst, "Mj = wL²/20", 1e-9, f.Mj, w*L*L/20)
	chk.Float64(tst, "Vi = 3wL/20", 1e-9, f.Vi, 3*w*L/20)

	f, _ = ComputeFEF(&beam.Span{Type: beam.ProppedCantilever, Released: beam.EndJ, Length: L, E: 1, I: 1, Loads: tri})
	chk.Float64(tst, "peak at prop: Mi = -7wL²/120", 1e-9, f.Mi, -7*w*L*L/120)

	f, _ = ComputeFEF(&beam.Span{Type: beam.ProppedCantilever, Released: beam.EndI, Length: L, E: 1, I: 1, Loads: tri})
	chk.Float64(tst, "peak at restrained end: Mj = wL²/15", 1e-9, f.Mj, w*L*L/15)

	// a uniform "linear" load reduces to the uniform one
	flat := []beam.AppliedLoad{beam.NewLinearLoad(w, w, 0, L, L)}
	f, _ = ComputeFEF(&beam.Span{Type: beam.FixedEnd, Length: L, E: 1, I: 1, Loads: flat})
	chk.Float64(tst, "flat Mi", 1e-9, f.Mi, -w*L*L/12)

	// two halves of a partial uniform load add up to the full one
	halves := []beam.AppliedLoad{
		beam.NewPartialUniformLoad(w, 0, L/2, L),
		beam.NewPartialUniformLoad(w, L/2, L/2, L),
	}
	f, _ = ComputeFEF(&beam.Span{Type: beam.FixedEnd, Length: L, E: 1, I: 1, Loads: halves})
	chk.Float64(tst, "halves Mi", 1e-9, f.Mi, -w*L*L/12)
	chk.Float64(tst, "halves Mj", 1e-9, f.Mj, w*L*L/12)
	chk.Float64(tst, "halves DeflMid", 1e-9, f.DeflMid, w*L*L*L*L/384)

	// left half only: Mi = -11wL²/192, Mj = 5wL²/192
	f, _ = ComputeFEF(&beam.Span{Type: beam.FixedEnd, Length: L, E: 1, I: 1, Loads: halves[:1]})
	chk.Float64(tst, "left half Mi", 1e-9, f.Mi, -11*w*L*L/192)
	chk.Float64(tst, "left half Mj", 1e-9, f.Mj, 5*w*L*L/192)
}

func Test_fef04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("fef04. unsupported combinations")

	s := &beam.Span{Length: 4, E: 1, I: 1, Loads: []beam.AppliedLoad{beam.NewUniformLoad(1, 4)}}
	_, err := ComputeFEF(s)
	if !errors.Is(err, ErrUnsupportedLoadSpan) {
		tst.Fatalf("expected ErrUnsupportedLoadSpan, got %v", err)
	}
	var se *SpanError
	if !errors.As(err, &se) {
		tst.Fatalf("expected *SpanError, got %T", err)
	}
	chk.String(tst, se.LoadType.String(), "uniform")

	s.Type, s.Length = beam.FixedEnd, 0
	_, err = ComputeFEF(s)
	if !errors.Is(err, ErrInvalidBeamModel) {
		tst.Fatalf("expected ErrInvalidBeamModel, got %v", err)
	}
}
