package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/compliance-audit/internal/ingestion"
	"github.com/jonathan/compliance-audit/internal/types"
)

// contractText is 390 words of contract language without dates, signatures or contact details.
var contractText = strings.Repeat("This agreement is by and between the parties under these terms and conditions. ", 30)

func writeDocument(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAuditCommand_Stdout(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "msa.txt", contractText)

	stdout, _, err := executeCommand(t, "audit", "--in", path, "--type", "contract")
	require.NoError(t, err)

	var result types.AuditResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "msa.txt", result.DocumentName)
	assert.Equal(t, 58, result.ComplianceScore)
	assert.Len(t, result.Issues, 2)
	assert.Len(t, result.PassedChecks, 3)
}

func TestAuditCommand_OutputFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeDocument(t, dir, "msa.txt", contractText)
	outPath := filepath.Join(dir, "out", "result.json")
	metaPath := filepath.Join(dir, "out", "meta.json")

	stdout, stderr, err := executeCommand(t, "audit", "-i", path, "-o", outPath, "--meta", metaPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Output: "+outPath)
	assert.NotContains(t, stderr, "Warning")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var result types.AuditResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 58, result.ComplianceScore)

	data, err = os.ReadFile(metaPath)
	require.NoError(t, err)
	var meta ingestion.Metadata
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, "msa.txt", meta.FileName)
	assert.Equal(t, "txt", meta.Format)
	assert.Equal(t, 390, meta.WordCount)
	assert.Len(t, meta.Hash, 64)
}

func TestAuditCommand_Verbose(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "msa.txt", contractText)

	stdout, stderr, err := executeCommand(t, "audit", "--in", path, "--verbose")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Limited contact information")
	assert.Contains(t, stderr, "COMPLIANCE AUDIT")
	assert.Contains(t, stderr, "Limited contact information")
}

func TestAuditCommand_MissingInput(t *testing.T) {
	_, _, err := executeCommand(t, "audit", "--in", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestAuditCommand_RequiresInFlag(t *testing.T) {
	_, _, err := executeCommand(t, "audit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "in" not set`)
}

func TestAuditCommand_ExtractionFailure(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "legacy.doc", contractText)

	_, _, err := executeCommand(t, "audit", "--in", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction failed")
}

func TestAuditCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeDocument(t, dir, "msa.txt", contractText)
	cfgPath := writeDocument(t, dir, "config.json", `{"log_format": "xml"}`)

	_, _, err := executeCommand(t, "audit", "--config", cfgPath, "--in", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestAuditCommand_ConfigDefaultType(t *testing.T) {
	dir := t.TempDir()
	path := writeDocument(t, dir, "msa.txt", contractText)
	cfgPath := writeDocument(t, dir, "config.json", `{"default_doc_type": "policy"}`)

	stdout, _, err := executeCommand(t, "audit", "--config", cfgPath, "--in", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Missing policy-specific terms")
}
