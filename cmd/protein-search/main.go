// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the protein-search CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/proteinlab/protein-search/internal/query"
	"github.com/proteinlab/protein-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the protein-search CLI.
var rootCmd = &cobra.Command{
	Use:   "protein-search",
	Short: "Query the protein search backend",
	Long: `protein-search is a command-line client for the protein search backend:
full-text protein search with rendered results, typeahead suggestions,
Ensembl gene annotation, a connection diagnostic, and a local search
history.

The backend endpoint is picked once at startup: a loopback host selects
the local development server, anything else the hosted deployment.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./protein-search.yaml or ~/.config/protein-search/config.yaml)")
	rootCmd.PersistentFlags().String("host", "", "host name for endpoint selection (overrides config)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("protein-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "protein-search"))
		}
	}

	viper.SetDefault("host", "localhost")
	viper.SetDefault("local_endpoint", query.DefaultLocalEndpoint)
	viper.SetDefault("remote_endpoint", query.DefaultRemoteEndpoint)
	viper.SetDefault("timeout", 30*time.Second)
	viper.SetDefault("user_agent", "protein-search/"+version)
	viper.SetDefault("diag.path", "/api/test")
	viper.SetDefault("history.dir", defaultHistoryDir())
	viper.SetDefault("history.max_results", 20)

	viper.SetEnvPrefix("PROTEIN_SEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func defaultHistoryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".protein-search"
	}
	return filepath.Join(home, ".local", "share", "protein-search")
}

// httpConfig assembles the shared HTTP settings from viper.
func httpConfig() types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   viper.GetDuration("timeout"),
		UserAgent: viper.GetString("user_agent"),
	}
}

// queryConfig assembles the query client settings. The --host flag wins
// over config and environment.
func queryConfig(cmd *cobra.Command) types.QueryConfig {
	host := viper.GetString("host")
	if flagHost, _ := cmd.Flags().GetString("host"); flagHost != "" {
		host = flagHost
	}
	return types.QueryConfig{
		HTTPConfig:     httpConfig(),
		Host:           host,
		LocalEndpoint:  viper.GetString("local_endpoint"),
		RemoteEndpoint: viper.GetString("remote_endpoint"),
	}
}

// resolvedEndpoint returns the base URL the query client would use, for
// commands whose own base URL defaults to it.
func resolvedEndpoint(cmd *cobra.Command) string {
	return query.NewClient(queryConfig(cmd)).Endpoint()
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Dir:        viper.GetString("history.dir"),
		MaxResults: viper.GetInt("history.max_results"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
