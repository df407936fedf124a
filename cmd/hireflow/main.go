// Package main provides the hireflow operator CLI: offline match scoring and
// application statistics.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/hireflow/internal/config"
)

var (
	flagConfig  string
	flagDebug   bool
	flagLogJSON bool
)

// loadedConfig holds the values read from the optional --config file. Flags
// set explicitly on the command line always take precedence over it.
var loadedConfig config.Config

var rootCmd = &cobra.Command{
	Use:               "hireflow",
	Short:             "Candidate-job matching and application statistics",
	Long:              "hireflow scores candidate profiles against job requirements with named weighting profiles and summarizes application collections for dashboards.",
	PersistentPreRunE: applyConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Emit JSON-encoded logs")
}

// applyConfig loads the config file named by --config, when given, and seeds
// the defaults for any flag the user did not set on the command line.
func applyConfig(cmd *cobra.Command, _ []string) error {
	if flagConfig == "" {
		return nil
	}

	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	loadedConfig = *cfg

	flags := cmd.Flags()
	if cfg.Profile != "" && !flags.Changed("profile") {
		scoreProfile = cfg.Profile
	}
	if cfg.ProfilesPath != "" && !flags.Changed("profiles") {
		scoreProfilesPath = cfg.ProfilesPath
	}
	if cfg.Verbose && !flags.Changed("verbose") {
		scoreVerbose = true
		statsVerbose = true
	}
	if cfg.LogJSON && !flags.Changed("log-json") {
		flagLogJSON = true
	}
	if cfg.Debug && !flags.Changed("debug") {
		flagDebug = true
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
