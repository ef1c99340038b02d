package ingestion

import (
	"fmt"
	"os"
	"strings"
)

// extractTXT reads a UTF-8 text file, dropping invalid byte sequences.
func extractTXT(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return strings.ToValidUTF8(string(content), ""), nil
}
