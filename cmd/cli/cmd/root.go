// Package cmd provides the CLI commands for mysite.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziyabeey1-ai/mysite/internal/config"
	"github.com/ziyabeey1-ai/mysite/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mysite",
	Short: "Price agency projects from the command line",
	Long: `mysite is the estimator behind the agency's project planner.

It prices a project configuration the same way the site does: the
one-time setup fee, the annual infrastructure bill, and a billing-cycle
priced service contract with the welcome discount applied.

Examples:
  mysite estimate -f project.hcl
  mysite estimate -f project.hcl --cycle 6`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mysite.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
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
		fmt.Println("mysite version 1.0.0")
	},
}
