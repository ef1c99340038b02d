package scoring

import (
	"time"

	"github.com/jonathan/compliance-audit/internal/types"
)

// Score combination: rules contribute up to 70 points, the heuristic up to 30.
const (
	ruleBaseScore   = 70
	issuePenalty    = 12
	warningPenalty  = 3
	heuristicPoints = 30

	maxComplianceScore = 100
)

// Combine merges rule check counts and heuristic confidence into the final audit result.
// Warnings lower the score but are not copied into the result.
func Combine(rules types.RuleCheckResult, heuristic types.HeuristicResult, documentName string) types.AuditResult {
	return combineAt(rules, heuristic, documentName, time.Now())
}

func combineAt(rules types.RuleCheckResult, heuristic types.HeuristicResult, documentName string, now time.Time) types.AuditResult {
	return types.AuditResult{
		DocumentName:    documentName,
		ComplianceScore: ComplianceScore(len(rules.Issues), len(rules.Warnings), heuristic.Confidence),
		Issues:          cloneOrEmpty(rules.Issues),
		PassedChecks:    cloneOrEmpty(rules.Passed),
		Timestamp:       now.UTC().Format(time.RFC3339),
	}
}

// ComplianceScore computes the 0-100 score. The sum is truncated toward zero, not rounded.
func ComplianceScore(issues, warnings int, confidence float64) int {
	ruleScore := max(0, ruleBaseScore-issuePenalty*issues-warningPenalty*warnings)
	heuristicScore := confidence * heuristicPoints

	total := int(float64(ruleScore) + heuristicScore)
	return min(max(total, 0), maxComplianceScore)
}

func cloneOrEmpty(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
