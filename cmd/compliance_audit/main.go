// Package main provides the entry point for the document compliance audit CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/compliance-audit/internal/config"
	"github.com/jonathan/compliance-audit/internal/observability"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "compliance_audit",
	Short:        "Document compliance audit",
	Long:         "Scores contracts, policies and agreements for compliance using rule checks and a heuristic confidence model, from the command line or over a REST API.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (optional)")
}

// loadConfig merges the optional config file and environment over the defaults.
func loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	observability.InitLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
