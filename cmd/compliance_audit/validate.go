package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/compliance-audit/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a JSON Schema",
	Long:  "Validates a JSON document, such as a saved audit result, against a JSON Schema file.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to JSON Schema file (required)")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to JSON file (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	err := schemas.ValidateJSON(validateSchema, validateJSON)
	if err == nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed:\n%s", validationErr.Error())
		return fmt.Errorf("validation failed with %d error(s)", len(validationErr.Errors))
	}
	return err
}
