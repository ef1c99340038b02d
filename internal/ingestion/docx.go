package ingestion

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBody = "word/document.xml"

// extractDOCX returns the non-blank paragraphs of the document body joined by newlines.
func extractDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}
	defer func() { _ = archive.Close() }()

	for _, f := range archive.File {
		if f.Name != docxBody {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", docxBody, err)
		}
		defer func() { _ = rc.Close() }()
		return docxParagraphs(rc)
	}

	return "", fmt.Errorf("%s not found in archive", docxBody)
}

// docxParagraphs walks WordprocessingML and collects the text of each <w:p>.
func docxParagraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse %s: %w", docxBody, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "txbxContent":
				// Text boxes hold their own paragraphs, nested inside a run of the
				// enclosing paragraph. They are not part of the body text.
				if err := decoder.Skip(); err != nil {
					return "", fmt.Errorf("failed to parse %s: %w", docxBody, err)
				}
			case "p":
				current.Reset()
			case "t":
				inText = true
			case "tab":
				current.WriteString("\t")
			case "br", "cr":
				current.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if p := current.String(); strings.TrimSpace(p) != "" {
					paragraphs = append(paragraphs, p)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
