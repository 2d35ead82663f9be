package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/waynemaranga/moment-distribution/internal/nscp"
)

var (
	// Unfactored effects (any consistent quantity: moment, reaction, shear)
	effectDead       float64
	effectLive       float64
	effectRoof       float64
	effectWind       float64
	effectEarthquake float64
	effectRain       float64

	combosSimplified bool
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "List NSCP load combinations and factor per-case effects",
	Long: `List the NSCP 2015 load combinations used by 'analyze --combo' and
'analyze --envelope'.

When unfactored effects from different load cases are given (a support
moment or a reaction from separate service analyses), every combination
is evaluated and the governing one is marked.

Load Cases:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Show the table
  mdist combos

  # Governing support moment from dead and live analyses
  mdist combos --dead -50 --live -30`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	combosCmd.Flags().Float64VarP(&effectDead, "dead", "d", 0, "Effect of dead load")
	combosCmd.Flags().Float64VarP(&effectLive, "live", "l", 0, "Effect of live load")
	combosCmd.Flags().Float64VarP(&effectRoof, "roof", "r", 0, "Effect of roof live load")
	combosCmd.Flags().Float64VarP(&effectWind, "wind", "w", 0, "Effect of wind load")
	combosCmd.Flags().Float64VarP(&effectEarthquake, "earthquake", "e", 0, "Effect of earthquake load")
	combosCmd.Flags().Float64VarP(&effectRain, "rain", "R", 0, "Effect of rain load")

	combosCmd.Flags().BoolVarP(&combosSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runCombos(cmd *cobra.Command, args []string) {
	effects := map[nscp.LoadCase]float64{
		nscp.Dead:       effectDead,
		nscp.Live:       effectLive,
		nscp.Roof:       effectRoof,
		nscp.Wind:       effectWind,
		nscp.Earthquake: effectEarthquake,
		nscp.Rain:       effectRain,
	}
	given := false
	for _, v := range effects {
		given = given || v != 0
	}
	combinations := combinationTable(combosSimplified)

	printBanner("NSCP 2015 LOAD COMBINATIONS")

	if !given {
		printSection("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tD\tL\tLr\tW\tE\tR\n")
		fmt.Fprintf(w, "  ─\t───────────\t─\t─\t──\t─\t─\t─\n")
		for _, c := range append(combinations, nscp.Service) {
			fmt.Fprintf(w, "  %s\t%s", c.ID, c.Description)
			for _, lc := range nscp.Cases {
				fmt.Fprintf(w, "\t%.1f", c.Factor(lc))
			}
			fmt.Fprintln(w)
		}
		w.Flush()
		fmt.Println()
		return
	}

	printSection("UNFACTORED EFFECTS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, lc := range nscp.Cases {
		if v := effects[lc]; v != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", lc, v)
		}
	}
	w.Flush()
	fmt.Println()

	// the governing combination has the largest magnitude
	gov, govVal := combinations[0], combinations[0].Combine(effects)
	for _, c := range combinations[1:] {
		if v := c.Combine(effects); abs(v) > abs(govVal) {
			gov, govVal = c, v
		}
	}

	printSection("FACTORED EFFECTS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tFactored\n")
	fmt.Fprintf(w, "  ─\t───────────\t────────\n")
	for _, c := range combinations {
		marker := ""
		if c.ID == gov.ID {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", c.ID, c.Description, c.Combine(effects), marker)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  Governing Combination: %s (%s)\n", gov.ID, gov.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED EFFECT = %.2f\n", govVal)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
