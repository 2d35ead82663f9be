package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/waynemaranga/moment-distribution/internal/beam"
	"github.com/waynemaranga/moment-distribution/internal/mdm"
)

var factorsFile string

var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Stiffness, distribution and carry-over factors of a beam",
	Long: `Print the span-end stiffness, distribution factor and carry-over
factor at every joint of the beam defined in a JSON file.

Stiffness is 4EI/L for a span whose far end is restrained and 3EI/L
when the far end is pinned. Released ends and cantilevers have no
stiffness. Fixed joints are never balanced.

Example:
  mdist factors --file beam.json`,
	Run: runFactors,
}

func init() {
	rootCmd.AddCommand(factorsCmd)

	factorsCmd.Flags().StringVarP(&factorsFile, "file", "f", "", "Path to beam JSON file [required]")
	factorsCmd.MarkFlagRequired("file")
}

func runFactors(cmd *cobra.Command, args []string) {
	b, err := beam.LoadFromFile(factorsFile)
	if err != nil {
		fmt.Printf("Error loading beam: %v\n", err)
		return
	}
	f, err := mdm.ComputeFactors(b)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printBanner("DISTRIBUTION FACTORS")
	printModel(b)

	printSection("JOINTS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Joint\tSupport\tEnd\tk\tDF\tCOF\tBalanced\n")
	fmt.Fprintf(w, "  ─────\t───────\t───\t─\t──\t───\t────────\n")
	for _, j := range f.Joints {
		for _, e := range j.Ends {
			fmt.Fprintf(w, "  %d\t%s\t%d%s\t%.4g\t%.4f\t%.2f\t%s\n", j.Joint+1, b.Nodes[j.Joint].Support,
				e.Span+1, e.End, e.Stiffness, e.DF, e.CarryOver, mark(j.Balanced))
		}
	}
	w.Flush()
	fmt.Println()
}
