package mdm

import (
	"io"
	"math"
)

// Config controls convergence and output resolution
type Config struct {
	// Tolerance is the absolute joint unbalance accepted as balanced.
	// Zero selects RelativeTolerance times the largest fixed-end moment.
	Tolerance float64

	// RelativeTolerance scales the largest fixed-end moment when no
	// absolute Tolerance is given
	RelativeTolerance float64

	// MaxRounds caps the balancing rounds; reaching it is reported as
	// non-convergence together with the partial result
	MaxRounds int

	// Stations is the number of evenly spaced output points per span
	Stations int

	// Workers limits concurrent solves in Sweep; zero means no limit
	Workers int

	// Trace receives one line per balancing round when not nil
	Trace io.Writer
}

// DefaultConfig returns the default solver configuration
func DefaultConfig() Config {
	return Config{
		RelativeTolerance: 1e-6,
		MaxRounds:         50,
		Stations:          21,
	}
}

// withDefaults fills unset fields from DefaultConfig
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RelativeTolerance <= 0 {
		c.RelativeTolerance = d.RelativeTolerance
	}
	if c.MaxRounds <= 0 {
		c.MaxRounds = d.MaxRounds
	}
	if c.Stations < 2 {
		c.Stations = d.Stations
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) {
		c.Tolerance = 0
	}
	return c
}

// tolerance resolves the absolute unbalance tolerance for a set of
// fixed-end forces
func (c Config) tolerance(fefs []FixedEndForces) float64 {
	if c.Tolerance > 0 {
		return c.Tolerance
	}
	var maxM float64
	for _, f := range fefs {
		maxM = math.Max(maxM, math.Max(math.Abs(f.Mi), math.Abs(f.Mj)))
	}
	return c.RelativeTolerance * maxM
}
