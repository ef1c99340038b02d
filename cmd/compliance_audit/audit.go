package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/compliance-audit/internal/ingestion"
	"github.com/jonathan/compliance-audit/internal/observability"
	"github.com/jonathan/compliance-audit/internal/pipeline"
	"github.com/jonathan/compliance-audit/internal/schemas"
	"github.com/jonathan/compliance-audit/internal/types"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit a single document",
	Long:  "Extracts the text of a PDF, DOCX, TXT or HTML document and prints its compliance audit as JSON.",
	RunE:  runAudit,
}

var (
	auditInput    string
	auditType     string
	auditOutput   string
	auditMetadata string
	auditVerbose  bool
)

func init() {
	auditCmd.Flags().StringVarP(&auditInput, "in", "i", "", "Path to the document (required)")
	auditCmd.Flags().StringVarP(&auditType, "type", "t", "", "Document type: contract, policy or agreement (default from config)")
	auditCmd.Flags().StringVarP(&auditOutput, "out", "o", "", "Path to output AuditResult JSON file (default stdout)")
	auditCmd.Flags().StringVar(&auditMetadata, "meta", "", "Path to output extraction metadata JSON file (optional)")
	auditCmd.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "Print a human-readable report including warnings")

	if err := auditCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(auditInput); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", auditInput)
	}

	docType := types.ParseDocumentType(auditType)
	if docType == "" {
		docType = types.ParseDocumentType(cfg.DefaultDocType)
	}

	report, err := pipeline.AuditFile(cmd.Context(), auditInput, filepath.Base(auditInput), docType)
	if err != nil {
		var extractionErr *ingestion.ExtractionError
		if errors.As(err, &extractionErr) {
			return fmt.Errorf("extraction failed: %w", err)
		}
		return fmt.Errorf("audit failed: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(report.Result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal audit result to JSON: %w", err)
	}

	// Validate output against schema (non-fatal)
	if err := schemas.ValidateAuditResult(jsonBytes); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Audit result does not validate against schema: %v\n", err)
	}

	if auditOutput == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	} else {
		if err := writeFile(auditOutput, jsonBytes); err != nil {
			return fmt.Errorf("failed to write audit result: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", auditOutput)
	}

	if auditMetadata != "" && report.Metadata != nil {
		metaBytes, err := report.Metadata.ToJSON()
		if err != nil {
			return err
		}
		if err := writeFile(auditMetadata, metaBytes); err != nil {
			return fmt.Errorf("failed to write metadata: %w", err)
		}
	}

	if auditVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintAuditReport(&report.Result, report.Rules, report.Heuristic)
	}

	return nil
}

// writeFile writes data to path, creating the parent directory if needed.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}
