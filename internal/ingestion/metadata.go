package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metadata describes an extracted document
type Metadata struct {
	FileName  string `json:"file_name"`
	Format    string `json:"format"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the extracted text
	WordCount int    `json:"word_count"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(fileName, text string) *Metadata {
	return &Metadata{
		FileName:  fileName,
		Format:    Format(fileName),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(text),
		WordCount: len(strings.Fields(text)),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
