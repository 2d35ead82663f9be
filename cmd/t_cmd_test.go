package cmd

import (
	"io"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cmd01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("cmd01. envelope and a single combination exclude each other")

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"analyze", "--file", "beam.json", "--combo", "2", "--envelope"})
	err := rootCmd.Execute()
	if err == nil {
		tst.Fatalf("--combo with --envelope should be rejected")
	}
	for _, name := range []string{"combo", "envelope"} {
		if !strings.Contains(err.Error(), name) {
			tst.Errorf("error should name %q: %v", name, err)
		}
	}
}
