//nolint:revive // types is a standard Go package name pattern
package types

// Features are the text features the heuristic scorer derives from a document.
// UppercaseRatio is extracted but does not contribute to the confidence.
type Features struct {
	Length         int     `json:"length"`
	WordCount      int     `json:"word_count"`
	HasDate        bool    `json:"has_date"`
	HasSignature   bool    `json:"has_signature"`
	HasEmail       bool    `json:"has_email"`
	HasPhone       bool    `json:"has_phone"`
	UppercaseRatio float64 `json:"uppercase_ratio"`
	HasLegalTerms  bool    `json:"has_legal_terms"`
}

// HeuristicResult is the output of the fixed-weight heuristic scorer
type HeuristicResult struct {
	IsCompliant bool     `json:"is_compliant"`
	Confidence  float64  `json:"confidence"`
	Features    Features `json:"features"`
}

// AuditResult is the public result of auditing one document.
// Rule check warnings only affect ComplianceScore and are not part of this record.
type AuditResult struct {
	DocumentName    string   `json:"documentName"`
	ComplianceScore int      `json:"complianceScore"`
	Issues          []string `json:"issues"`
	PassedChecks    []string `json:"passedChecks"`
	Timestamp       string   `json:"timestamp"`
}

// BatchItem is one entry of a batch audit response. Exactly one of the
// embedded result or Error is populated.
type BatchItem struct {
	*AuditResult
	Filename string `json:"filename"`
	Error    string `json:"error,omitempty"`
	Score    *int   `json:"score,omitempty"`
}

// BatchResults wraps the ordered results of a batch audit
type BatchResults struct {
	Results []BatchItem `json:"results"`
}
