package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/compliance-audit/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrInsufficientText indicates the document yielded too little text to audit
type ErrInsufficientText struct {
	FileName string
	Length   int
	Minimum  int
}

func (e *ErrInsufficientText) Error() string {
	return fmt.Sprintf("insufficient text in %s: %d characters, need %d", e.FileName, e.Length, e.Minimum)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var insufficientErr *ErrInsufficientText
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &insufficientErr):
		return http.StatusBadRequest
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ingestion.ErrEmptyDocument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
