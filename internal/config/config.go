// Package config reads solver overrides from a .env file and the process
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/waynemaranga/moment-distribution/internal/mdm"
)

// Environment keys
const (
	KeyTolerance    = "MDIST_TOLERANCE"
	KeyRelTolerance = "MDIST_REL_TOLERANCE"
	KeyMaxRounds    = "MDIST_MAX_ROUNDS"
	KeyStations     = "MDIST_STATIONS"
	KeyWorkers      = "MDIST_WORKERS"
)

// DefaultEnvFile is read when no file is named
const DefaultEnvFile = ".env"

// Load applies overrides to base: first from envFile (a missing file is not
// an error), then from the process environment, which wins
func Load(envFile string, base mdm.Config) (mdm.Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	vars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return base, fmt.Errorf("read %s: %w", envFile, err)
		}
		vars = map[string]string{}
	}
	for _, k := range []string{KeyTolerance, KeyRelTolerance, KeyMaxRounds, KeyStations, KeyWorkers} {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}
	return Apply(vars, base)
}

// Apply sets the fields named in vars on cfg
func Apply(vars map[string]string, cfg mdm.Config) (mdm.Config, error) {
	floats := []struct {
		key string
		dst *float64
	}{
		{KeyTolerance, &cfg.Tolerance},
		{KeyRelTolerance, &cfg.RelativeTolerance},
	}
	for _, f := range floats {
		v, ok := vars[f.key]
		if !ok || v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil || x < 0 {
			return cfg, fmt.Errorf("%s: want a non-negative number, got %q", f.key, v)
		}
		*f.dst = x
	}

	ints := []struct {
		key string
		dst *int
	}{
		{KeyMaxRounds, &cfg.MaxRounds},
		{KeyStations, &cfg.Stations},
		{KeyWorkers, &cfg.Workers},
	}
	for _, f := range ints {
		v, ok := vars[f.key]
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("%s: want a non-negative integer, got %q", f.key, v)
		}
		*f.dst = n
	}
	return cfg, nil
}
