package validation

import (
	"regexp"
	"strings"
)

var (
	// datePattern accepts 12/01/2023, 1-2-23 and textual forms such as "January 5, 2024".
	datePattern = regexp.MustCompile(`(?i)\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b|\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{4}\b`)

	// EmailPattern matches local@domain.tld addresses.
	EmailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// PhonePattern matches DDD-DDD-DDDD with "-", "." or no separators.
	PhonePattern = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
)

var (
	signatureTerms  = []string{"signature", "signed", "executed", "signatory", "undersigned"}
	contractTerms   = []string{"agreement", "party", "parties", "terms", "conditions"}
	policyTerms     = []string{"policy", "procedure", "compliance", "regulation"}
	agreementTerms  = []string{"service", "obligation", "rights", "responsibilities"}
	prohibitedTerms = []string{"discriminat", "illegal", "unlawful", "fraud"}
	legalTerms      = []string{"hereby", "whereas", "therefore", "pursuant", "hereinafter"}
)

// Minimum distinct-term hits for the count-based checks
const (
	minContractTerms  = 3
	minAgreementTerms = 2
	minLegalTerms     = 2
)

// Word count thresholds for the length check
const (
	shortDocumentWords    = 100
	adequateDocumentWords = 200
)

// countTerms returns how many distinct terms occur anywhere in lower.
func countTerms(lower string, terms []string) int {
	found := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			found++
		}
	}
	return found
}

// matchedTerms returns the terms that occur in lower, in the order given.
func matchedTerms(lower string, terms []string) []string {
	var found []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
