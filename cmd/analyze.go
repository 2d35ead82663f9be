package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/waynemaranga/moment-distribution/internal/beam"
	"github.com/waynemaranga/moment-distribution/internal/diagram"
	"github.com/waynemaranga/moment-distribution/internal/mdm"
	"github.com/waynemaranga/moment-distribution/internal/report"
)

var (
	analyzeFile       string
	analyzeCombo      string
	analyzeEnvelope   bool
	analyzeSimplified bool
	analyzeWorkers    int

	// Output options
	analyzeShowDiagram bool
	analyzeExportFile  string
	analyzeXLSX        string
	analyzePDF         string
	analyzeTrace       bool

	analyzeSolver solverFlags
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyse a continuous beam by moment distribution",
	Long: `Analyse a continuous beam defined in a JSON file.

Span types follow from the joint supports:
  fixed   - restrains rotation
  pinned  - vertical support, free rotation
  roller  - vertical support, free rotation
  hinge   - interior joint carrying no moment (vertically supported)
  none    - free end of a cantilever

Sign conventions: member-end moments clockwise positive, bending
moments sagging positive, loads and deflections downward positive,
shears and reactions upward positive.

Example JSON file structure:
{
  "name": "Two-span floor beam",
  "spans": [
    {"length": 6, "e": 25000000, "i": 0.003125,
     "loads": [{"type": "udl", "magnitude": 12, "case": "D"}]},
    {"length": 4, "fc": 28, "width": 0.3, "height": 0.5,
     "loads": [{"type": "point", "magnitude": 20, "x": 2, "case": "L"}]}
  ],
  "nodes": [{"support": "fixed"}, {"support": "roller"}, {"support": "pinned"}]
}

Examples:
  # Service loads
  mdist analyze --file beam.json

  # Factored by NSCP combination 2 with diagrams
  mdist analyze -f beam.json --combo 2 --diagram

  # Envelope over every combination, exported to a workbook
  mdist analyze -f beam.json --envelope --xlsx beam.xlsx`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to beam JSON file [required]")
	analyzeCmd.Flags().StringVarP(&analyzeCombo, "combo", "c", "", "Apply an NSCP load combination by ID (S = service)")
	analyzeCmd.Flags().BoolVarP(&analyzeEnvelope, "envelope", "e", false, "Analyse every load combination and print the envelope")
	analyzeCmd.Flags().BoolVarP(&analyzeSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "Concurrent solves for --envelope (0 = no limit)")

	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII moment, shear and deflection diagrams")
	analyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export diagrams to files (png, svg, pdf)")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Write results to an XLSX workbook")
	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Write a PDF calculation sheet")
	analyzeCmd.Flags().BoolVar(&analyzeTrace, "trace", false, "Print the unbalance after every round")

	analyzeSolver.register(analyzeCmd)

	analyzeCmd.MarkFlagRequired("file")
	// an envelope runs every combination
	analyzeCmd.MarkFlagsMutuallyExclusive("combo", "envelope")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	cfg, err := analyzeSolver.config(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if analyzeWorkers > 0 {
		cfg.Workers = analyzeWorkers
	}

	if analyzeEnvelope {
		runEnvelope(cfg)
		return
	}

	b, err := loadBeam(analyzeFile, analyzeCombo, analyzeSimplified)
	if err != nil {
		fmt.Printf("Error loading beam: %v\n", err)
		return
	}
	if analyzeTrace {
		cfg.Trace = os.Stdout
		fmt.Println()
		printSection("DISTRIBUTION TRACE:")
	}

	res, err := mdm.Solve(b, cfg)
	if err != nil && !errors.Is(err, mdm.ErrNonConvergence) {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printBanner("MOMENT DISTRIBUTION ANALYSIS")
	printModel(b)
	printResults(res)
	if err != nil {
		fmt.Printf("  ⚠ %v\n", err)
		fmt.Println("  Results are from the last completed round.")
		fmt.Println()
	}

	if analyzeShowDiagram {
		fmt.Println(diagram.DrawBeamSketch(b, 50))
		fmt.Println(diagram.ASCIIMoment(res, 12, 60))
		fmt.Println()
		fmt.Println(diagram.ASCIIShear(res, 12, 60))
		fmt.Println()
		fmt.Println(diagram.ASCIIDeflection(res, 8, 60))
		fmt.Println()
	}
	exportResults(b, []*mdm.Results{res})
}

func runEnvelope(cfg mdm.Config) {
	base, err := beam.LoadFromFile(analyzeFile)
	if err != nil {
		fmt.Printf("Error loading beam: %v\n", err)
		return
	}
	combos := combinationTable(analyzeSimplified)
	beams := make([]*beam.Beam, len(combos))
	for k, c := range combos {
		beams[k] = base.Factored(c)
	}

	all, err := mdm.Sweep(context.Background(), beams, cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	env, err := mdm.NewEnvelope(all)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printBanner("LOAD COMBINATION ENVELOPE - NSCP 2015")
	printModel(base)

	printSection("COMBINATIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tRounds\tConverged\n")
	fmt.Fprintf(w, "  ─\t───────────\t──────\t─────────\n")
	for k, c := range combos {
		d := all[k].Distribution
		fmt.Fprintf(w, "  %s\t%s\t%d\t%s\n", c.ID, c.Description, d.Rounds, mark(d.Converged))
	}
	w.Flush()
	fmt.Println()

	printSection("SPAN END MOMENTS (max / min):")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span\tMi max\tMi min\tMj max\tMj min\t+M max\t-M max\n")
	fmt.Fprintf(w, "  ────\t──────\t──────\t──────\t──────\t──────\t──────\n")
	for i := range env.Mi {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n", i+1,
			env.Mi[i].Max, env.Mi[i].Min, env.Mj[i].Max, env.Mj[i].Min, env.Sagging[i], env.Hogging[i])
	}
	w.Flush()
	fmt.Println()

	printSection("JOINTS (max / min):")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Joint\tR max\tR min\tSupport M max\tSupport M min\n")
	fmt.Fprintf(w, "  ─────\t─────\t─────\t─────────────\t─────────────\n")
	for n := range env.Reaction {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\t%.3f\n", n+1,
			env.Reaction[n].Max, env.Reaction[n].Min, env.Support[n].Max, env.Support[n].Min)
	}
	w.Flush()
	fmt.Println()

	exportResults(beams[0], all)
}

func printModel(b *beam.Beam) {
	if b.Name != "" {
		fmt.Printf("  Beam: %s\n", b.Name)
	}
	if b.Description != "" {
		fmt.Printf("  Description: %s\n", b.Description)
	}
	fmt.Println()

	printSection("SPANS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span\tL\tEI\tType\tSupports\tLoads\n")
	fmt.Fprintf(w, "  ────\t─\t──\t────\t────────\t─────\n")
	for i := range b.Spans {
		s := &b.Spans[i]
		sup := s.Supports()
		typ := s.Type.String()
		if s.Type == beam.ProppedCantilever || s.Type == beam.Cantilever {
			typ += fmt.Sprintf(" (%s released)", s.Released)
		}
		fmt.Fprintf(w, "  %s\t%.3f\t%.4g\t%s\t%s / %s\t%d\n", s.Label(i), s.Length, s.EI(), typ, sup[0], sup[1], len(s.Loads))
	}
	w.Flush()
	fmt.Println()
}

func printResults(res *mdm.Results) {
	printSection("FIXED-END MOMENTS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span\tFEM i\tFEM j\tM mid\tδ mid\n")
	fmt.Fprintf(w, "  ────\t─────\t─────\t─────\t─────\n")
	for _, s := range res.Spans {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\t%.4g\n", s.Span+1, s.FEF.Mi, s.FEF.Mj, s.FEF.Mmid, s.FEF.DeflMid)
	}
	w.Flush()
	fmt.Println()

	if d := res.Distribution; d != nil {
		printSection("DISTRIBUTION:")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Rounds:\t%d\n", d.Rounds)
		fmt.Fprintf(w, "  Tolerance:\t%.3g\n", d.Tolerance)
		fmt.Fprintf(w, "  Remaining unbalance:\t%.3g\n", d.Unbalance)
		fmt.Fprintf(w, "  Converged:\t%s\n", mark(d.Converged))
		w.Flush()
		fmt.Println()
	}

	printSection("FINAL MOMENTS AND SHEARS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span\tMi\tMj\tVi\tVj\t+M max\t(at)\t-M max\t(at)\n")
	fmt.Fprintf(w, "  ────\t──\t──\t──\t──\t──────\t────\t──────\t────\n")
	for _, s := range res.Spans {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n", s.Span+1,
			s.Mi, s.Mj, s.Vi, s.Vj, s.MaxSagging, s.MaxSaggingAt, s.MaxHogging, s.MaxHoggingAt)
	}
	w.Flush()
	fmt.Println()

	printSection("DEFLECTIONS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span\tδ mid\tδ max\t(at)\tθi\tθj\n")
	fmt.Fprintf(w, "  ────\t─────\t─────\t────\t──\t──\n")
	for _, s := range res.Spans {
		fmt.Fprintf(w, "  %d\t%.4g\t%.4g\t%.3f\t%.4g\t%.4g\n", s.Span+1,
			s.DeflMid, s.MaxDeflection, s.MaxDeflectionAt, s.RotationI, s.RotationJ)
	}
	w.Flush()
	fmt.Println()

	printSection("JOINTS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Joint\tx\tReaction\tMoment\tSupport M\tθ\n")
	fmt.Fprintf(w, "  ─────\t─\t────────\t──────\t─────────\t─\n")
	for _, j := range res.Joints {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\t%.3f\t%.4g\n", j.Joint+1, j.Position, j.Reaction, j.Moment, j.SupportMoment, j.Rotation)
	}
	w.Flush()
	fmt.Println()

	sag, hog := res.MaxMoments()
	defl, span := res.MaxDeflection()
	fmt.Print(diagram.DrawSummaryBox("SUMMARY", []string{
		fmt.Sprintf("Max sagging moment   = %.3f", sag),
		fmt.Sprintf("Max hogging moment   = %.3f", hog),
		fmt.Sprintf("Max deflection       = %.4g (span %d)", defl, span+1),
		fmt.Sprintf("ΣR = %.3f   ΣP = %.3f", res.SumReactions(), res.TotalLoad),
	}))
	fmt.Println()
}

func exportResults(b *beam.Beam, all []*mdm.Results) {
	if analyzeExportFile != "" {
		ext := filepath.Ext(analyzeExportFile)
		prefix := strings.TrimSuffix(analyzeExportFile, ext)
		for k, res := range all {
			p := prefix
			if len(all) > 1 {
				p = fmt.Sprintf("%s_%d", prefix, k+1)
			}
			files, err := diagram.ExportBeamDiagrams(res, p, ext)
			if err != nil {
				fmt.Printf("Error exporting diagrams: %v\n", err)
				break
			}
			for _, f := range files {
				fmt.Printf("  Diagram exported to: %s\n", f)
			}
		}
	}
	if analyzeXLSX != "" {
		if err := report.SaveXLSX(analyzeXLSX, all); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("  Workbook written to: %s\n", analyzeXLSX)
		}
	}
	if analyzePDF != "" {
		if err := writePDF(analyzePDF, b, all[0]); err != nil {
			fmt.Printf("Error writing PDF: %v\n", err)
		} else {
			fmt.Printf("  Calculation sheet written to: %s\n", analyzePDF)
		}
	}
}

func writePDF(path string, b *beam.Beam, res *mdm.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WritePDF(f, b, res, report.Info{Title: "Moment Distribution Analysis", Project: b.Name, Notes: b.Description}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
