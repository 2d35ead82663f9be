package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/waynemaranga/moment-distribution/internal/beam"
	"github.com/waynemaranga/moment-distribution/internal/config"
	"github.com/waynemaranga/moment-distribution/internal/mdm"
	"github.com/waynemaranga/moment-distribution/internal/nscp"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

func printBanner(title string) {
	fmt.Println()
	fmt.Println(heavyRule)
	pad := max((len([]rune(heavyRule))-len([]rune(title)))/2, 0)
	fmt.Println(strings.Repeat(" ", pad) + title)
	fmt.Println(heavyRule)
	fmt.Println()
}

func printSection(title string) {
	fmt.Println(title)
	fmt.Println(lightRule)
}

// solverFlags are the convergence and output options shared by the
// commands that run a distribution
type solverFlags struct {
	tolerance    float64
	relTolerance float64
	maxRounds    int
	stations     int
	envFile      string
}

func (f *solverFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", 0, "Absolute joint unbalance accepted as balanced (0 = relative)")
	cmd.Flags().Float64Var(&f.relTolerance, "rel-tolerance", 1e-6, "Tolerance as a fraction of the largest fixed-end moment")
	cmd.Flags().IntVar(&f.maxRounds, "max-rounds", 50, "Maximum balancing rounds")
	cmd.Flags().IntVar(&f.stations, "stations", 21, "Output stations per span")
	cmd.Flags().StringVar(&f.envFile, "env", config.DefaultEnvFile, "File with MDIST_* overrides")
}

// config layers the defaults, the .env file and the environment, and flags
// given on the command line
func (f *solverFlags) config(cmd *cobra.Command) (mdm.Config, error) {
	cfg, err := config.Load(f.envFile, mdm.DefaultConfig())
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("tolerance") {
		cfg.Tolerance = f.tolerance
	}
	if flags.Changed("rel-tolerance") {
		cfg.RelativeTolerance = f.relTolerance
	}
	if flags.Changed("max-rounds") {
		cfg.MaxRounds = f.maxRounds
	}
	if flags.Changed("stations") {
		cfg.Stations = f.stations
	}
	return cfg, nil
}

func combinationTable(simplified bool) []nscp.LoadCombination {
	if simplified {
		return nscp.SimplifiedCombinations
	}
	return nscp.LoadCombinations
}

// loadBeam reads the beam file and applies a load combination when one is
// named
func loadBeam(file, combo string, simplified bool) (*beam.Beam, error) {
	b, err := beam.LoadFromFile(file)
	if err != nil {
		return nil, err
	}
	if combo == "" {
		return b, nil
	}
	c, err := nscp.FindCombination(combo, combinationTable(simplified))
	if err != nil {
		return nil, err
	}
	return b.Factored(c), nil
}
