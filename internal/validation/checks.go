package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/compliance-audit/internal/types"
)

// Check names, in execution order
const (
	NameDate             = "date"
	NameSignature        = "signature"
	NameContact          = "contact"
	NameDocumentType     = "document_type"
	NameLength           = "length"
	NameProhibited       = "prohibited_content"
	NameLegalTerminology = "legal_terminology"
)

func passed(check, message string) types.Finding {
	return types.Finding{Check: check, Outcome: types.OutcomePassed, Message: message}
}

func issue(check, message string) types.Finding {
	return types.Finding{Check: check, Outcome: types.OutcomeIssue, Message: message}
}

func warning(check, message string) types.Finding {
	return types.Finding{Check: check, Outcome: types.OutcomeWarning, Message: message}
}

// CheckDatePresence looks for a numeric or textual date.
func CheckDatePresence(text string) types.Finding {
	if datePattern.MatchString(text) {
		return passed(NameDate, "Valid date found")
	}
	return issue(NameDate, "Missing date information")
}

// CheckSignatureTerms looks for signing or execution vocabulary.
func CheckSignatureTerms(lower string) types.Finding {
	if countTerms(lower, signatureTerms) > 0 {
		return passed(NameSignature, "Signature terms present")
	}
	return issue(NameSignature, "Missing signature or execution terms")
}

// CheckContactInfo looks for an email address or phone number. Missing contact
// information is a warning, not an issue.
func CheckContactInfo(text string) types.Finding {
	if EmailPattern.MatchString(text) || PhonePattern.MatchString(text) {
		return passed(NameContact, "Contact information found")
	}
	return warning(NameContact, "Limited contact information")
}

// CheckTypeSpecificTerms runs the vocabulary check for the given document type.
// The second return value is false when the type has no such check.
func CheckTypeSpecificTerms(lower string, docType types.DocumentType) (types.Finding, bool) {
	switch docType {
	case types.DocumentTypeContract:
		if countTerms(lower, contractTerms) >= minContractTerms {
			return passed(NameDocumentType, "Contract terms present"), true
		}
		return issue(NameDocumentType, "Missing standard contract terms"), true
	case types.DocumentTypePolicy:
		if countTerms(lower, policyTerms) > 0 {
			return passed(NameDocumentType, "Policy terms present"), true
		}
		return issue(NameDocumentType, "Missing policy-specific terms"), true
	case types.DocumentTypeAgreement:
		if countTerms(lower, agreementTerms) >= minAgreementTerms {
			return passed(NameDocumentType, "Agreement terms present"), true
		}
		return issue(NameDocumentType, "Missing standard agreement terms"), true
	default:
		return types.Finding{}, false
	}
}

// CheckLength classifies the document by word count.
func CheckLength(text string) types.Finding {
	words := WordCount(text)
	switch {
	case words < shortDocumentWords:
		return issue(NameLength, fmt.Sprintf("Document too short (%d words)", words))
	case words < adequateDocumentWords:
		return warning(NameLength, "Document may be incomplete")
	default:
		return passed(NameLength, fmt.Sprintf("Adequate document length (%d words)", words))
	}
}

// CheckProhibitedContent flags terms that need a human review.
func CheckProhibitedContent(lower string) types.Finding {
	found := matchedTerms(lower, prohibitedTerms)
	if len(found) > 0 {
		return warning(NameProhibited, "Review required: found terms - "+strings.Join(found, ", "))
	}
	return passed(NameProhibited, "No prohibited terms detected")
}

// CheckLegalTerminology looks for at least two distinct legal drafting terms.
func CheckLegalTerminology(lower string) types.Finding {
	if countTerms(lower, legalTerms) >= minLegalTerms {
		return passed(NameLegalTerminology, "Legal terminology present")
	}
	return warning(NameLegalTerminology, "Limited legal terminology")
}
