package schemas_test

import (
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/jonathan/compliance-audit/internal/schemas"
	schemafiles "github.com/jonathan/compliance-audit/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		schemafiles.AuditResult,
		schemafiles.BatchResults,
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := schemafiles.FS.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var v map[string]interface{}
			err = json.Unmarshal(data, &v)
			require.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)

			_, hasType := v["type"]
			_, hasSchema := v["$schema"]
			assert.True(t, hasType && hasSchema, "schema should declare type and $schema")
		})
	}
}

func TestFS_ContainsOnlyListedSchemas(t *testing.T) {
	matches, err := fs.Glob(schemafiles.FS, "*.schema.json")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{schemafiles.AuditResult, schemafiles.BatchResults}, matches)
}

func TestAuditResultSchema_AcceptsExample(t *testing.T) {
	doc := `{
		"documentName": "msa.pdf",
		"complianceScore": 58,
		"issues": ["Missing date information"],
		"passedChecks": ["Adequate document length (390 words)"],
		"timestamp": "2024-03-01T12:00:00Z"
	}`

	assert.NoError(t, schemas.ValidateAuditResult([]byte(doc)))
}

func TestBatchResultsSchema_FailedItem(t *testing.T) {
	doc := `{"results": [{"filename": "broken.pdf", "error": "extraction failed", "score": 0}]}`
	assert.NoError(t, schemas.ValidateBatchResults([]byte(doc)))

	incomplete := `{"results": [{"filename": "broken.pdf", "error": "extraction failed"}]}`
	assert.Error(t, schemas.ValidateBatchResults([]byte(incomplete)))
}
