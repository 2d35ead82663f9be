package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waynemaranga/moment-distribution/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mdist",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mdist v%s\n", version.Version)
		fmt.Println("Continuous beam analysis by the Moment Distribution Method")
		fmt.Printf("Build: %s (%s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
