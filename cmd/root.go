package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/waynemaranga/moment-distribution/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "mdist",
	Short: "Continuous beam analysis by moment distribution",
	Long: `mdist - Moment Distribution Method for continuous beams

A CLI tool that analyses statically indeterminate continuous beams
with the Hardy Cross moment distribution method.

This tool computes:
  - Fixed-end moments for point, uniform and linearly varying loads
  - Stiffness, distribution and carry-over factors
  - Balanced end moments, shears and support reactions
  - Bending moment, shear and deflection along every span
  - Envelopes over NSCP 2015 load combinations

Beams are described in JSON files (see 'mdist analyze --help').`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   mdist v%-49s║\n", version.Version)
		fmt.Println("  ║   Moment Distribution for Continuous Beams                ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Fixed-end, propped, simply supported and cantilever spans")
		fmt.Println("    • Internal hinges and overhangs")
		fmt.Println("    • Factored analysis and envelopes over NSCP load combinations")
		fmt.Println("    • Diagrams in the terminal or as PNG/SVG/PDF")
		fmt.Println("    • XLSX and PDF reports")
		fmt.Println()
		fmt.Println("  Use 'mdist --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
