package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/waynemaranga/moment-distribution/internal/nscp"
	"github.com/waynemaranga/moment-distribution/internal/section"
)

var (
	sectionFile   string
	sectionWidth  float64
	sectionHeight float64
	sectionFc     float64
	sectionWc     float64
	sectionSteel  bool
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Section properties for the flexural rigidity of a span",
	Long: `Compute the area, centroid and second moment of area of a beam
section, and EI when a concrete strength is given.

The section is a rectangle (--width, --height) or a polygon read from a
JSON file. The same section can be given to a span in the beam file
instead of "i".

Example JSON file structure:
{
  "name": "T-Beam Section",
  "vertices": [
    {"x": 300, "y": 0},
    {"x": 600, "y": 0},
    {"x": 600, "y": 400},
    {"x": 900, "y": 400},
    {"x": 900, "y": 500},
    {"x": 0, "y": 500},
    {"x": 0, "y": 400},
    {"x": 300, "y": 400}
  ]
}

Examples:
  mdist section --width 300 --height 500 --fc 28
  mdist section --width 300 --height 500 --fc 28 --wc 2400
  mdist section --file tbeam.json`,
	Run: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section JSON file")
	sectionCmd.Flags().Float64VarP(&sectionWidth, "width", "b", 0, "Rectangle width")
	sectionCmd.Flags().Float64Var(&sectionHeight, "height", 0, "Rectangle height")
	sectionCmd.Flags().Float64Var(&sectionFc, "fc", 0, "Concrete compressive strength f'c (MPa) for Ec")
	sectionCmd.Flags().Float64Var(&sectionWc, "wc", 0, "Concrete unit weight (kg/m³); uses Ec = wc^1.5·0.043√f'c")
	sectionCmd.Flags().BoolVar(&sectionSteel, "steel", false, "Steel section (Es = 200000 MPa)")
}

func runSection(cmd *cobra.Command, args []string) {
	var sec *section.Section
	switch {
	case sectionFile != "":
		s, err := section.LoadFromFile(sectionFile)
		if err != nil {
			fmt.Printf("Error loading section: %v\n", err)
			return
		}
		sec = s
	case sectionWidth > 0 && sectionHeight > 0:
		sec = section.Rectangle(sectionWidth, sectionHeight)
	default:
		fmt.Println("Error: Please provide --file or both --width and --height.")
		fmt.Println("Use 'mdist section --help' for usage information.")
		return
	}
	p := sec.CalculateProperties()

	printBanner("SECTION PROPERTIES")
	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	printSection("SECTION GEOMETRY:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (max):\t%.4g\n", p.Width)
	fmt.Fprintf(w, "  Height:\t%.4g\n", p.Height)
	fmt.Fprintf(w, "  Gross Area:\t%.4g\n", p.Area)
	fmt.Fprintf(w, "  Centroid (x, y):\t(%.4g, %.4g)\n", p.CentroidX, p.CentroidY)
	fmt.Fprintf(w, "  Ixx:\t%.6g\n", p.Ixx)
	fmt.Fprintf(w, "  Iyy:\t%.6g\n", p.Iyy)
	fmt.Fprintf(w, "  Vertices:\t%d points\n", len(sec.Vertices))
	w.Flush()
	fmt.Println()

	var e float64
	var label string
	switch {
	case sectionSteel:
		e, label = nscp.Es, "Es"
	case sectionFc > 0 && sectionWc > 0:
		e, label = nscp.ConcreteModulusWc(sectionWc, sectionFc), "Ec = wc^1.5·0.043√f'c"
	case sectionFc > 0:
		e, label = nscp.ConcreteModulus(sectionFc), "Ec = 4700√f'c"
	}
	if e > 0 {
		printSection("FLEXURAL RIGIDITY:")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  %s:\t%.1f MPa\n", label, e)
		fmt.Fprintf(w, "  EI:\t%.6g\n", e*p.Ixx)
		w.Flush()
		fmt.Println()
	}
}
