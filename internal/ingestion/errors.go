// Package ingestion extracts plain text from uploaded documents.
package ingestion

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned when the file extension has no known format
	ErrUnsupportedFormat = errors.New("unsupported file type")
	// ErrParserUnavailable is returned when the format is known but no parser is available
	ErrParserUnavailable = errors.New("no parser available")
	// ErrEmptyDocument is returned when extraction yields only whitespace
	ErrEmptyDocument = errors.New("document contains no extractable text")
)

// ExtractionError represents a failure to turn a file into text
type ExtractionError struct {
	FileName string
	Format   string
	Message  string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("error extracting text from %s: %s: %v", e.FileName, e.Message, e.Cause)
	}
	return fmt.Sprintf("error extracting text from %s: %s", e.FileName, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
