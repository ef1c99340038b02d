// Package types provides type definitions for structured data used throughout the compliance audit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// DocumentType is the caller-supplied tag that selects the type-specific rule check.
// Any string is legal; unrecognized values simply skip the type-specific check.
type DocumentType string

// Known document types
const (
	DocumentTypeContract  DocumentType = "contract"
	DocumentTypePolicy    DocumentType = "policy"
	DocumentTypeAgreement DocumentType = "agreement"
)

// ParseDocumentType converts a raw form or flag value into a DocumentType.
// Matching against the known types is exact, so "Contract" is an unrecognized type.
func ParseDocumentType(raw string) DocumentType {
	return DocumentType(strings.TrimSpace(raw))
}

// Known reports whether the type has a type-specific rule check.
func (d DocumentType) Known() bool {
	switch d {
	case DocumentTypeContract, DocumentTypePolicy, DocumentTypeAgreement:
		return true
	default:
		return false
	}
}
