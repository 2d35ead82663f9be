package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/waynemaranga/moment-distribution/internal/beam"
	"github.com/waynemaranga/moment-distribution/internal/mdm"
)

// Info heads the calculation sheet
type Info struct {
	Project string
	Author  string
	Title   string
	Notes   string
	Date    time.Time
}

type column struct {
	title string
	width float64
}

// WritePDF writes a calculation sheet: the model, the fixed-end moments,
// the distribution summary and the final span and joint actions
func WritePDF(out io.Writer, b *beam.Beam, res *mdm.Results, info Info) error {
	if info.Title == "" {
		info.Title = "Moment Distribution Analysis"
	}
	if info.Date.IsZero() {
		info.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, info.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if info.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", info.Project))
		pdf.Ln(6)
	}
	if info.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", info.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", info.Date.Format("2006-01-02")))
	pdf.Ln(6)
	if b.Name != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Beam: %s", b.Name))
		pdf.Ln(6)
	}
	pdf.Ln(4)
	if info.Notes != "" {
		pdf.MultiCell(0, 6, info.Notes, "", "L", false)
		pdf.Ln(4)
	}

	heading(pdf, "1. Model")
	rows := make([][]string, len(b.Spans))
	for i := range b.Spans {
		s := &b.Spans[i]
		sup := s.Supports()
		rows[i] = []string{s.Label(i), num(s.Length), num(s.EI()), s.Type.String(),
			sup[0].String() + " / " + sup[1].String(), fmt.Sprintf("%d", len(s.Loads))}
	}
	table(pdf, []column{{"Span", 25}, {"L", 20}, {"EI", 30}, {"Type", 40}, {"Supports", 45}, {"Loads", 20}}, rows)

	heading(pdf, "2. Fixed-end moments and factors")
	rows = rows[:0]
	for _, s := range res.Spans {
		rows = append(rows, []string{fmt.Sprintf("%d", s.Span+1), num(s.FEF.Mi), num(s.FEF.Mj), num(s.FEF.Mmid), num(s.FEF.DeflMid)})
	}
	table(pdf, []column{{"Span", 20}, {"FEM i", 35}, {"FEM j", 35}, {"M mid", 35}, {"Defl mid", 35}}, rows)
	if res.Factors != nil {
		rows = rows[:0]
		for _, j := range res.Factors.Joints {
			for _, e := range j.Ends {
				rows = append(rows, []string{fmt.Sprintf("%d", j.Joint+1), fmt.Sprintf("%d%s", e.Span+1, e.End),
					num(e.Stiffness), num(e.DF), num(e.CarryOver), yesNo(j.Balanced)})
			}
		}
		table(pdf, []column{{"Joint", 20}, {"End", 20}, {"k", 35}, {"DF", 30}, {"COF", 30}, {"Balanced", 25}}, rows)
	}
	if d := res.Distribution; d != nil {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Rounds: %d   Converged: %s   Unbalance: %s   Tolerance: %s",
			d.Rounds, yesNo(d.Converged), num(d.Unbalance), num(d.Tolerance)))
		pdf.Ln(8)
	}

	heading(pdf, "3. Span results")
	rows = rows[:0]
	for _, s := range res.Spans {
		rows = append(rows, []string{fmt.Sprintf("%d", s.Span+1), num(s.Mi), num(s.Mj), num(s.Vi), num(s.Vj),
			num(s.MaxSagging), num(s.MaxHogging), num(s.MaxDeflection)})
	}
	table(pdf, []column{{"Span", 15}, {"M i", 22}, {"M j", 22}, {"V i", 22}, {"V j", 22}, {"+M max", 25}, {"-M max", 25}, {"Defl max", 25}}, rows)

	heading(pdf, "4. Joint results")
	rows = rows[:0]
	for _, j := range res.Joints {
		rows = append(rows, []string{fmt.Sprintf("%d", j.Joint+1), num(j.Position), num(j.Reaction),
			num(j.Moment), num(j.SupportMoment), num(j.Rotation)})
	}
	table(pdf, []column{{"Joint", 20}, {"x", 25}, {"Reaction", 30}, {"Moment", 30}, {"Support M", 30}, {"Rotation", 30}}, rows)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Sum of reactions: %s   Total load: %s", num(res.SumReactions()), num(res.TotalLoad)))
	pdf.Ln(6)

	return pdf.Output(out)
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
}

func table(pdf *gofpdf.Fpdf, cols []column, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	for _, c := range cols {
		pdf.CellFormat(c.width, 6, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		for k, c := range cols {
			pdf.CellFormat(c.width, 6, r[k], "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func num(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
