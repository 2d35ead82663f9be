package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/waynemaranga/moment-distribution/internal/beam"
	"github.com/waynemaranga/moment-distribution/internal/mdm"
)

var (
	fefType     string
	fefReleased string
	fefLength   float64
	fefE        float64
	fefI        float64

	// Loads
	fefPoint    float64
	fefPointAt  float64
	fefUniform  float64
	fefLinearI  float64
	fefLinearJ  float64
	fefLoadFrom float64
	fefLoadLen  float64
)

var fefCmd = &cobra.Command{
	Use:   "fef",
	Short: "Fixed-end forces of a single span",
	Long: `Compute the fixed-end moments, end shears, mid-span moment and
deflection of one span restrained as its type prescribes.

Span types:
  fixed-end           - both ends restrained
  propped-cantilever  - --released end pinned
  simply-supported    - both ends pinned
  cantilever          - --released end free

Examples:
  # Central point load on a fixed-fixed span
  mdist fef --length 6 --point 1000 --at 3 --e 200000 --i 0.0001

  # Uniform load on a propped cantilever pinned at j
  mdist fef --type propped --released j --length 6 --udl 10

  # Triangular load rising to 12 at j over the whole span
  mdist fef --length 6 --linear-i 0 --linear-j 12`,
	Run: runFEF,
}

func init() {
	rootCmd.AddCommand(fefCmd)

	fefCmd.Flags().StringVarP(&fefType, "type", "t", "fixed-end", "Span type")
	fefCmd.Flags().StringVarP(&fefReleased, "released", "r", "j", "Released end of a propped cantilever or cantilever (i, j)")
	fefCmd.Flags().Float64VarP(&fefLength, "length", "L", 0, "Span length [required]")
	fefCmd.Flags().Float64Var(&fefE, "e", 1, "Elastic modulus")
	fefCmd.Flags().Float64Var(&fefI, "i", 1, "Second moment of area")

	fefCmd.Flags().Float64VarP(&fefPoint, "point", "p", 0, "Point load")
	fefCmd.Flags().Float64Var(&fefPointAt, "at", 0, "Point load position from the i end")
	fefCmd.Flags().Float64VarP(&fefUniform, "udl", "w", 0, "Uniform load intensity")
	fefCmd.Flags().Float64Var(&fefLinearI, "linear-i", 0, "Linearly varying load intensity at its start")
	fefCmd.Flags().Float64Var(&fefLinearJ, "linear-j", 0, "Linearly varying load intensity at its end")
	fefCmd.Flags().Float64Var(&fefLoadFrom, "from", 0, "Start of the distributed loads from the i end")
	fefCmd.Flags().Float64Var(&fefLoadLen, "over", 0, "Loaded length of the distributed loads (0 = to the j end)")

	fefCmd.MarkFlagRequired("length")
}

func runFEF(cmd *cobra.Command, args []string) {
	s := beam.Span{Length: fefLength, E: fefE, I: fefI}
	if err := s.Type.UnmarshalText([]byte(fefType)); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := s.Released.UnmarshalText([]byte(fefReleased)); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	flags := cmd.Flags()
	if flags.Changed("point") {
		s.Loads = append(s.Loads, beam.NewPointLoad(fefPoint, fefPointAt, fefLength))
	}
	if flags.Changed("udl") {
		s.Loads = append(s.Loads, beam.NewPartialUniformLoad(fefUniform, fefLoadFrom, fefLoadLen, fefLength))
	}
	if flags.Changed("linear-i") || flags.Changed("linear-j") {
		s.Loads = append(s.Loads, beam.NewLinearLoad(fefLinearI, fefLinearJ, fefLoadFrom, fefLoadLen, fefLength))
	}
	if len(s.Loads) == 0 {
		fmt.Println("Error: Please provide at least one load.")
		fmt.Println("Use 'mdist fef --help' for usage information.")
		return
	}

	f, err := mdm.ComputeFEF(&s)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printBanner("FIXED-END FORCES")
	printSection("SPAN:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s\n", s.Type)
	if s.Type == beam.ProppedCantilever || s.Type == beam.Cantilever {
		fmt.Fprintf(w, "  Released end:\t%s\n", s.Released)
	}
	fmt.Fprintf(w, "  Length:\t%.3f\n", s.Length)
	fmt.Fprintf(w, "  EI:\t%.4g\n", s.EI())
	for k, l := range s.Loads {
		a1, a2 := l.Extent(s.Length)
		fmt.Fprintf(w, "  Load %s:\t%s %.3f", l.Label(k), l.Type, l.Magnitude)
		if l.Type == beam.LinearlyVarying {
			fmt.Fprintf(w, " → %.3f", l.EndMagnitude)
		}
		fmt.Fprintf(w, " on [%.3f, %.3f]\n", a1, a2)
	}
	w.Flush()
	fmt.Println()

	printSection("RESULTS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mi (clockwise +):\t%.4f\n", f.Mi)
	fmt.Fprintf(w, "  Mj (clockwise +):\t%.4f\n", f.Mj)
	fmt.Fprintf(w, "  Vi:\t%.4f\n", f.Vi)
	fmt.Fprintf(w, "  Vj:\t%.4f\n", f.Vj)
	fmt.Fprintf(w, "  M mid (sagging +):\t%.4f\n", f.Mmid)
	fmt.Fprintf(w, "  δ mid (downward +):\t%.6g\n", f.DeflMid)
	if f.SlopeI != 0 {
		fmt.Fprintf(w, "  θi:\t%.6g\n", f.SlopeI)
	}
	if f.SlopeJ != 0 {
		fmt.Fprintf(w, "  θj:\t%.6g\n", f.SlopeJ)
	}
	w.Flush()
	fmt.Println()
}
