package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/waynemaranga/moment-distribution/internal/mdm"
)

// Sheet names of the workbook
const (
	SheetSpans        = "Spans"
	SheetJoints       = "Joints"
	SheetStations     = "Stations"
	SheetDistribution = "Distribution"
)

var (
	spanHeader = []any{"Case", "Span", "L", "FEM i", "FEM j", "M i", "M j", "V i", "V j",
		"M mid", "Max sagging", "at", "Max hogging", "at", "Defl mid", "Max defl", "at", "Rot i", "Rot j"}
	jointHeader   = []any{"Case", "Joint", "x", "Reaction", "Moment", "Support moment", "Rotation", "Deflection"}
	stationHeader = []any{"Case", "Span", "x", "Position", "Moment", "Shear", "Deflection"}
	distHeader    = []any{"Case", "Round", "Max unbalance"}
)

// Workbook lays out the results of one or more analyses (typically one per
// load combination), one row per span, joint, station and round
func Workbook(results []*mdm.Results) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSpans); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetJoints, SheetStations, SheetDistribution} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	w := &sheetWriter{f: f, rows: map[string]int{}}
	w.row(SheetSpans, spanHeader)
	w.row(SheetJoints, jointHeader)
	w.row(SheetStations, stationHeader)
	w.row(SheetDistribution, distHeader)

	for k, res := range results {
		name := res.Name
		if name == "" {
			name = fmt.Sprintf("case %d", k+1)
		}
		for _, s := range res.Spans {
			w.row(SheetSpans, []any{name, s.Span + 1, s.Length, s.FEF.Mi, s.FEF.Mj, s.Mi, s.Mj, s.Vi, s.Vj,
				s.MomentMid, s.MaxSagging, s.MaxSaggingAt, s.MaxHogging, s.MaxHoggingAt,
				s.DeflMid, s.MaxDeflection, s.MaxDeflectionAt, s.RotationI, s.RotationJ})
			for _, st := range s.Stations {
				w.row(SheetStations, []any{name, s.Span + 1, st.X, st.Position, st.Moment, st.Shear, st.Deflection})
			}
		}
		for _, j := range res.Joints {
			w.row(SheetJoints, []any{name, j.Joint + 1, j.Position, j.Reaction, j.Moment, j.SupportMoment, j.Rotation, j.Deflection})
		}
		if d := res.Distribution; d != nil {
			for r, u := range d.History {
				w.row(SheetDistribution, []any{name, r, u})
			}
		}
	}
	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	return f, nil
}

// WriteXLSX writes the workbook of the results to w
func WriteXLSX(out io.Writer, results []*mdm.Results) error {
	f, err := Workbook(results)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(out)
}

// SaveXLSX writes the workbook of the results to a file
func SaveXLSX(path string, results []*mdm.Results) error {
	f, err := Workbook(results)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// sheetWriter appends rows and keeps the first error
type sheetWriter struct {
	f    *excelize.File
	rows map[string]int
	err  error
}

func (w *sheetWriter) row(sheet string, values []any) {
	if w.err != nil {
		return
	}
	w.rows[sheet]++
	cell, err := excelize.CoordinatesToCellName(1, w.rows[sheet])
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}
