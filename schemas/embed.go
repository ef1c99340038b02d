// Package schemas holds the JSON Schemas for the audit service's output documents.
package schemas

import "embed"

// Schema file names within FS.
const (
	AuditResult  = "audit_result.schema.json"
	BatchResults = "batch_results.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
