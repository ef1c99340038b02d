package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blankLines = regexp.MustCompile(`\n\s*\n+`)

// extractHTML returns the visible text of an HTML document's body.
func extractHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open HTML file: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, template, nav, footer").Remove()

	content := doc.Find("body")
	if content.Length() == 0 {
		content = doc.Selection
	}

	text := strings.TrimSpace(content.Text())
	return blankLines.ReplaceAllString(text, "\n"), nil
}
