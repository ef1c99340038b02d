// Package scoring turns document text and rule check results into a compliance score.
package scoring

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/compliance-audit/internal/types"
	"github.com/jonathan/compliance-audit/internal/validation"
)

// Heuristic weights. The maximum raw score is 1.10 and is clamped to 1.0.
const (
	baseScore            = 0.40
	longDocumentWeight   = 0.20
	mediumDocumentWeight = 0.10
	dateWeight           = 0.15
	signatureWeight      = 0.15
	contactWeight        = 0.10
	legalTermsWeight     = 0.10

	longDocumentWords   = 200
	mediumDocumentWords = 100

	// ComplianceThreshold is the confidence a document must exceed to be compliant.
	ComplianceThreshold = 0.65
)

// numericDatePattern only accepts numeric dates and is not anchored on word
// boundaries, unlike the date rule check.
var numericDatePattern = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`)

var heuristicLegalTerms = []string{"hereby", "whereas", "therefore"}

// ExtractFeatures computes the heuristic feature vector for text.
func ExtractFeatures(text string) types.Features {
	lower := strings.ToLower(text)

	length := utf8.RuneCountInString(text)
	upper := 0
	for _, r := range text {
		if unicode.IsUpper(r) {
			upper++
		}
	}

	return types.Features{
		Length:         length,
		WordCount:      validation.WordCount(text),
		HasDate:        numericDatePattern.MatchString(text),
		HasSignature:   strings.Contains(lower, "signature") || strings.Contains(lower, "signed"),
		HasEmail:       validation.EmailPattern.MatchString(text),
		HasPhone:       validation.PhonePattern.MatchString(text),
		UppercaseRatio: float64(upper) / float64(max(length, 1)),
		HasLegalTerms:  containsAny(lower, heuristicLegalTerms),
	}
}

// Score computes the heuristic confidence for text.
func Score(text string) types.HeuristicResult {
	features := ExtractFeatures(text)
	confidence := Confidence(features)
	return types.HeuristicResult{
		IsCompliant: confidence > ComplianceThreshold,
		Confidence:  confidence,
		Features:    features,
	}
}

// Confidence combines features with the fixed weights. UppercaseRatio is ignored.
func Confidence(f types.Features) float64 {
	score := baseScore

	if f.WordCount > longDocumentWords {
		score += longDocumentWeight
	} else if f.WordCount > mediumDocumentWords {
		score += mediumDocumentWeight
	}

	if f.HasDate {
		score += dateWeight
	}

	if f.HasSignature {
		score += signatureWeight
	}

	if f.HasEmail || f.HasPhone {
		score += contactWeight
	}

	if f.HasLegalTerms {
		score += legalTermsWeight
	}

	return min(score, 1.0)
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
