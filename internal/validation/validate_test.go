package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/compliance-audit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_EmptyText(t *testing.T) {
	result := Check("", types.DocumentTypePolicy)

	assert.Equal(t, []string{
		"Missing date information",
		"Missing signature or execution terms",
		"Missing policy-specific terms",
		"Document too short (0 words)",
	}, result.Issues)
	assert.Equal(t, []string{
		"Limited contact information",
		"Limited legal terminology",
	}, result.Warnings)
	assert.Equal(t, []string{"No prohibited terms detected"}, result.Passed)
}

func TestCheck_ContractScenario(t *testing.T) {
	text := strings.Repeat("This agreement is by and between the parties under these terms and conditions. ", 30)

	result := Check(text, types.DocumentTypeContract)

	assert.Equal(t, []string{
		"Missing date information",
		"Missing signature or execution terms",
	}, result.Issues)
	assert.Equal(t, []string{
		"Contract terms present",
		"Adequate document length (390 words)",
		"No prohibited terms detected",
	}, result.Passed)
	assert.Equal(t, []string{
		"Limited contact information",
		"Limited legal terminology",
	}, result.Warnings)
}

func TestCheck_AllChecksPass(t *testing.T) {
	text := "Contact: john@example.com, signed this 12/01/2023, hereby whereas therefore " +
		strings.Repeat("The provider delivers the service and accepts each obligation under this arrangement. ", 20)

	result := Check(text, types.DocumentTypeAgreement)

	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []string{
		"Valid date found",
		"Signature terms present",
		"Contact information found",
		"Agreement terms present",
		"Adequate document length (248 words)",
		"No prohibited terms detected",
		"Legal terminology present",
	}, result.Passed)
}

func TestCheck_FindingCountByType(t *testing.T) {
	texts := []string{
		"",
		"short text",
		filler(150) + " signed 01/02/2020",
		strings.Repeat("fraud whereas hereby policy service rights agreement ", 40),
	}
	docTypes := []types.DocumentType{
		types.DocumentTypeContract,
		types.DocumentTypePolicy,
		types.DocumentTypeAgreement,
		"memo",
		"",
	}

	for i, text := range texts {
		for _, docType := range docTypes {
			t.Run(fmt.Sprintf("text%d/%s", i, docType), func(t *testing.T) {
				result := Check(text, docType)
				assert.Equal(t, ExpectedFindings(docType), result.Total())
			})
		}
	}
}

func TestFindings_Order(t *testing.T) {
	findings := Findings("", types.DocumentTypeContract)
	require.Len(t, findings, 7)

	checks := make([]string, 0, len(findings))
	for _, f := range findings {
		checks = append(checks, f.Check)
	}
	assert.Equal(t, []string{
		NameDate,
		NameSignature,
		NameContact,
		NameDocumentType,
		NameLength,
		NameProhibited,
		NameLegalTerminology,
	}, checks)

	findings = Findings("", "memo")
	require.Len(t, findings, 6)
	for _, f := range findings {
		assert.NotEqual(t, NameDocumentType, f.Check)
	}
}

func TestCheck_CaseInsensitiveTerms(t *testing.T) {
	result := Check("SIGNED WHEREAS HEREBY", "memo")
	assert.Contains(t, result.Passed, "Signature terms present")
	assert.Contains(t, result.Passed, "Legal terminology present")
}

func TestCheck_ListsNeverNil(t *testing.T) {
	text := "Contact: john@example.com, signed this 12/01/2023, hereby whereas " + filler(300)
	result := Check(text, "memo")
	assert.NotNil(t, result.Issues)
	assert.NotNil(t, result.Warnings)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
}

func TestAnalysisError(t *testing.T) {
	cause := errors.New("boom")
	err := &AnalysisError{Message: "bad finding count", Cause: cause}

	assert.Equal(t, "analysis error: bad finding count: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &AnalysisError{Message: "bad finding count"}
	assert.Equal(t, "analysis error: bad finding count", bare.Error())
}
