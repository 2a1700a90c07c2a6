// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the exa CLI, a thin client over the
// Exa search and research API. Each subcommand maps to one API endpoint;
// flags build the request body and a raw JSON override can be merged on top.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the exa CLI.
var rootCmd = &cobra.Command{
	Use:   "exa",
	Short: "Command-line client for the Exa search and research API",
	Long: `exa turns flags into requests against the Exa API and prints the JSON
response. Search commands (search, contents, find-similar, answer, context)
are single calls; research tasks run asynchronously through separate start
and check calls. The mcp commands build configuration URLs for the hosted
MCP server without touching the network.

Every request command accepts --body / --body-file to merge a raw JSON
object over the flag-derived fields; the raw body wins on key conflicts.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Pick up EXA_API_KEY and friends from a local .env if present.
		_ = godotenv.Load()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./exa.yaml or ~/.config/exa/config.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "API key (overrides EXA_API_KEY)")
	rootCmd.PersistentFlags().String("api-base", "", "API origin (overrides EXA_API_BASE)")
	rootCmd.PersistentFlags().Bool("pretty", false, "pretty-print the JSON response")
	rootCmd.PersistentFlags().Uint64("timeout", 0, "request timeout in seconds (default 30)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("exa")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "exa"))
		}
	}

	viper.SetEnvPrefix("EXA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
