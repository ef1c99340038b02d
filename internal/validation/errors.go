// Package validation runs the fixed rule checks that classify a document's text into passed
// checks, issues and warnings.
package validation

import "fmt"

// AnalysisError reports a broken invariant in the rule checks. Well-formed text never
// produces one; it exists so callers can tell an engine fault from an extraction failure.
type AnalysisError struct {
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("analysis error: %s", e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
