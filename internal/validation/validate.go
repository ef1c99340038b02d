package validation

import (
	"strings"

	"github.com/jonathan/compliance-audit/internal/types"
)

// Findings runs every rule check against text and returns one finding per check in
// execution order: date, signature, contact, type-specific, length, prohibited content,
// legal terminology. The type-specific finding is absent for unrecognized types.
func Findings(text string, docType types.DocumentType) []types.Finding {
	lower := strings.ToLower(text)

	findings := make([]types.Finding, 0, 7)
	findings = append(findings,
		CheckDatePresence(text),
		CheckSignatureTerms(lower),
		CheckContactInfo(text),
	)
	if f, ok := CheckTypeSpecificTerms(lower, docType); ok {
		findings = append(findings, f)
	}
	findings = append(findings,
		CheckLength(text),
		CheckProhibitedContent(lower),
		CheckLegalTerminology(lower),
	)
	return findings
}

// Check runs the rule checks and groups their messages by outcome.
func Check(text string, docType types.DocumentType) types.RuleCheckResult {
	return Partition(Findings(text, docType))
}

// Partition splits findings into issues, passed checks and warnings, preserving order.
func Partition(findings []types.Finding) types.RuleCheckResult {
	result := types.RuleCheckResult{
		Issues:   []string{},
		Passed:   []string{},
		Warnings: []string{},
	}
	for _, f := range findings {
		switch f.Outcome {
		case types.OutcomeIssue:
			result.Issues = append(result.Issues, f.Message)
		case types.OutcomePassed:
			result.Passed = append(result.Passed, f.Message)
		case types.OutcomeWarning:
			result.Warnings = append(result.Warnings, f.Message)
		}
	}
	return result
}

// ExpectedFindings is the number of findings Check produces for docType.
func ExpectedFindings(docType types.DocumentType) int {
	if docType.Known() {
		return 7
	}
	return 6
}
