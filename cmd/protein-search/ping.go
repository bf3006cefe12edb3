// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/proteinlab/protein-search/internal/diag"
	"github.com/proteinlab/protein-search/pkg/types"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity to the backend",
	Long: `Ping issues one diagnostic request and prints the backend's status,
message, and data payload. On failure it prints the error text. There is
no retry and no polling — run it again to re-test.

Deployments expose the diagnostic route at /api/test or /test; use
--path for the alternate.`,
	RunE: runPing,
}

func init() {
	pingCmd.Flags().String("path", "", "diagnostic route (default /api/test)")

	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, _ []string) error {
	baseURL := viper.GetString("diag.base_url")
	if baseURL == "" {
		baseURL = resolvedEndpoint(cmd)
	}
	path, _ := cmd.Flags().GetString("path")
	if path == "" {
		path = viper.GetString("diag.path")
	}

	tester := diag.NewTester(types.DiagConfig{
		HTTPConfig: httpConfig(),
		BaseURL:    baseURL,
		Path:       path,
	})

	report, err := tester.Ping(context.Background())
	if err != nil {
		// The error's message text is the diagnostic output.
		fmt.Fprintln(os.Stdout, "Connection failed:", err)
		cmd.SilenceErrors = true
		return err
	}

	diag.FormatReport(report, os.Stdout)
	return nil
}
