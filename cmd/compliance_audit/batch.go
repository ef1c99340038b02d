package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/compliance-audit/internal/observability"
	"github.com/jonathan/compliance-audit/internal/pipeline"
	"github.com/jonathan/compliance-audit/internal/schemas"
	"github.com/jonathan/compliance-audit/internal/types"
	schemafiles "github.com/jonathan/compliance-audit/schemas"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Audit several documents concurrently",
	Long:  "Audits every file argument and prints {\"results\": [...]} in argument order. Files that fail carry an error and a zero score.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchType        string
	batchConcurrency int
	batchSummary     bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchType, "type", "t", "", "Document type applied to every file (default from config)")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "Maximum files audited at once (default from config)")
	batchCmd.Flags().BoolVar(&batchSummary, "summary", false, "Print a per-file summary to stderr")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	docType := types.ParseDocumentType(batchType)
	if docType == "" {
		docType = types.ParseDocumentType(cfg.DefaultDocType)
	}
	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = cfg.BatchConcurrency
	}

	inputs := make([]pipeline.BatchInput, len(args))
	for i, path := range args {
		inputs[i] = pipeline.BatchInput{Path: path, FileName: filepath.Base(path)}
	}

	results := types.BatchResults{
		Results: pipeline.RunBatch(cmd.Context(), inputs, docType, concurrency),
	}

	if err := schemas.ValidateValue(schemafiles.BatchResults, results); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Batch results do not validate against schema: %v\n", err)
	}

	jsonBytes, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch results to JSON: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))

	if batchSummary {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintBatchSummary(results.Results)
	}
	return nil
}
