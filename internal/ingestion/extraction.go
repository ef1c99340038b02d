package ingestion

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// extractor reads the file at path and returns its raw text.
type extractor func(path string) (string, error)

// knownFormats lists every format the transport accepts, mapped to its parser.
// A nil parser means the format is recognised but cannot be read.
var knownFormats = map[string]extractor{
	"pdf":  extractPDF,
	"docx": extractDOCX,
	"doc":  nil,
	"txt":  extractTXT,
	"html": extractHTML,
	"htm":  extractHTML,
}

// Format returns the lowercase extension of fileName without the dot.
func Format(fileName string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
}

// IsKnown reports whether format is one the service accepts, even without a parser.
func IsKnown(format string) bool {
	_, ok := knownFormats[strings.ToLower(format)]
	return ok
}

// IsAvailable reports whether text can be extracted from format.
func IsAvailable(format string) bool {
	return knownFormats[strings.ToLower(format)] != nil
}

// SupportedFormats returns the formats with an available parser, sorted.
func SupportedFormats() []string {
	formats := make([]string, 0, len(knownFormats))
	for format, fn := range knownFormats {
		if fn != nil {
			formats = append(formats, format)
		}
	}
	sort.Strings(formats)
	return formats
}

// ExtractText returns the text of the file stored at path. The format is taken from
// fileName, the name the document was submitted under, which may differ from path.
func ExtractText(path, fileName string) (string, error) {
	format := Format(fileName)

	if !IsKnown(format) {
		return "", &ExtractionError{
			FileName: fileName,
			Format:   format,
			Message:  fmt.Sprintf("format %q", format),
			Cause:    ErrUnsupportedFormat,
		}
	}
	if !IsAvailable(format) {
		return "", &ExtractionError{
			FileName: fileName,
			Format:   format,
			Message:  fmt.Sprintf("cannot process .%s files", format),
			Cause:    ErrParserUnavailable,
		}
	}

	text, err := knownFormats[format](path)
	if err != nil {
		return "", &ExtractionError{
			FileName: fileName,
			Format:   format,
			Message:  format + " extraction failed",
			Cause:    err,
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{
			FileName: fileName,
			Format:   format,
			Message:  format + " appears to be empty",
			Cause:    ErrEmptyDocument,
		}
	}

	return text, nil
}
