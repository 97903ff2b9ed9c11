// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "sufficiency",
	Short: "Deterministic deck sufficiency engine",
	Long: `sufficiency computes a closed-world, deterministic sufficiency build for
a singleton 99-card deck: thirteen layers of requirement, probability, and
resilience math compiled into one reproducible PASS/WARN/FAIL verdict.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
