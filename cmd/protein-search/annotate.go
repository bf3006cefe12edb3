// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/proteinlab/protein-search/internal/annotate"
	"github.com/proteinlab/protein-search/pkg/types"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [ensembl-id...]",
	Short: "Annotate Ensembl gene ids with symbols and GO terms",
	Long: `Annotate submits Ensembl gene ids to the annotation service, which
looks each one up in Ensembl and falls back to UniProt and NCBI. The
output shows the best available gene symbol and merged GO terms per id;
--sources shows the per-source comparison the service preserves.

Ids come from arguments or from a file of newline-separated ids.`,
	RunE: runAnnotate,
}

var annotateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the annotation service's health, version, and configuration",
	RunE:  runAnnotateStatus,
}

func init() {
	annotateCmd.Flags().String("file", "", "file of newline-separated Ensembl ids")
	annotateCmd.Flags().Bool("json", false, "output the raw response as JSON")
	annotateCmd.Flags().Bool("sources", false, "show the per-source comparison view")

	annotateCmd.AddCommand(annotateStatusCmd)
	rootCmd.AddCommand(annotateCmd)
}

func annotateConfig(cmd *cobra.Command) types.AnnotateConfig {
	baseURL := viper.GetString("annotate.base_url")
	if baseURL == "" {
		baseURL = resolvedEndpoint(cmd)
	}
	return types.AnnotateConfig{
		HTTPConfig: httpConfig(),
		BaseURL:    baseURL,
		MaxIDs:     viper.GetInt("annotate.max_ids"),
	}
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	ids := args
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		fileIDs, err := annotate.ReadIDFile(file)
		if err != nil {
			return err
		}
		ids = append(ids, fileIDs...)
	}

	client := annotate.NewClient(annotateConfig(cmd))
	resp, err := client.Annotate(context.Background(), ids)
	if err != nil {
		return err
	}

	if resp.Error != "" {
		if resp.Detail != "" {
			return fmt.Errorf("annotation service: %s (%s)", resp.Error, resp.Detail)
		}
		return fmt.Errorf("annotation service: %s", resp.Error)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if sources, _ := cmd.Flags().GetBool("sources"); sources {
		for _, ann := range resp.Annotations {
			annotate.FormatSources(ann, os.Stdout)
		}
		return nil
	}

	annotate.FormatTable(resp, os.Stdout)
	return nil
}

func runAnnotateStatus(cmd *cobra.Command, _ []string) error {
	client := annotate.NewClient(annotateConfig(cmd))
	ctx := context.Background()

	health, err := client.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Health:  %s (%s)\n", health.Status, health.Time)

	version, err := client.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Version: %s (started %s)\n", version.Version, version.Started)

	cfg, err := client.Config(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Config:  max_ids=%d uniprot_fallback=%t ncbi_fallback=%t\n",
		cfg.MaxIDs, cfg.UniProtFallbackEnabled, cfg.NCBIFallbackEnabled)
	return nil
}
