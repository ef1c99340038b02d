//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// AuditRequest describes a single document submitted for audit.
type AuditRequest struct {
	FileName string `json:"file_name" validate:"required,max=255"`
	DocType  string `json:"doc_type" validate:"omitempty,max=64"`
}

// Validate validates the AuditRequest using the validator.
func (r *AuditRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
