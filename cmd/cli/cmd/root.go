// Package cmd provides the CLI commands for shipwaste.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shipwaste/internal/config"
	"shipwaste/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shipwaste",
	Short: "Estimate packaging waste from shipped orders",
	Long: `shipwaste estimates the packaging waste an e-commerce seller generates,
inferring each package's weight from its shipping charge, shipping distance
and a carrier rate table, then aggregating the estimates over time and
geography.

Examples:
  shipwaste analyze --origin 10001 orders.csv
  shipwaste analyze --origin 10001 --category clothing --format json orders.csv
  shipwaste zone --origin 10001 94103`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.shipwaste.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(zoneCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shipwaste version 0.1.0")
	},
}
