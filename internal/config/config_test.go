package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/waynemaranga/moment-distribution/internal/mdm"
)

func Test_config01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("config01. .env file and environment")

	dir := tst.TempDir()
	path := filepath.Join(dir, "solver.env")
	data := "# solver\nMDIST_TOLERANCE=0.001\nMDIST_MAX_ROUNDS=80\nMDIST_STATIONS=11\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		tst.Fatalf("%v", err)
	}

	tst.Setenv(KeyStations, "41")
	cfg, err := Load(path, mdm.DefaultConfig())
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Float64(tst, "tolerance", 1e-15, cfg.Tolerance, 0.001)
	chk.Float64(tst, "relative tolerance kept", 1e-15, cfg.RelativeTolerance, 1e-6)
	chk.Int(tst, "max rounds", cfg.MaxRounds, 80)
	chk.Int(tst, "environment wins", cfg.Stations, 41)

	// a missing file leaves the base untouched
	cfg, err = Load(filepath.Join(dir, "missing.env"), mdm.DefaultConfig())
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Int(tst, "default rounds", cfg.MaxRounds, 50)
	chk.Int(tst, "stations from environment", cfg.Stations, 41)
}

func Test_config02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("config02. bad values")

	for _, vars := range []map[string]string{
		{KeyTolerance: "abc"},
		{KeyRelTolerance: "-1"},
		{KeyMaxRounds: "1.5"},
		{KeyStations: "-3"},
	} {
		if _, err := Apply(vars, mdm.DefaultConfig()); err == nil {
			tst.Errorf("%v should be rejected", vars)
		}
	}
	cfg, err := Apply(map[string]string{KeyWorkers: "4", KeyTolerance: ""}, mdm.DefaultConfig())
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Int(tst, "workers", cfg.Workers, 4)
	chk.Float64(tst, "empty value ignored", 1e-15, cfg.Tolerance, 0)
}
