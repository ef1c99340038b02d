//nolint:revive // types is a standard Go package name pattern
package types

// Outcome classifies a single rule check result
type Outcome string

// Rule check outcomes
const (
	OutcomePassed  Outcome = "passed"
	OutcomeIssue   Outcome = "issue"
	OutcomeWarning Outcome = "warning"
)

// Finding is the single entry one rule check contributes to a RuleCheckResult
type Finding struct {
	Check   string  `json:"check"`
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}

// RuleCheckResult holds the rule check messages split by outcome, each in check execution order.
type RuleCheckResult struct {
	Issues   []string `json:"issues"`
	Passed   []string `json:"passed"`
	Warnings []string `json:"warnings"`
}

// Total returns the number of findings across all three lists.
func (r RuleCheckResult) Total() int {
	return len(r.Issues) + len(r.Passed) + len(r.Warnings)
}
