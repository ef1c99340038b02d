// Package observability provides logging, metrics and formatted CLI output.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/compliance-audit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to maxItemsToShow items under a heading.
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("%s (%d):\n", heading, len(items)))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintAuditReport outputs a human-readable audit summary. Unlike the JSON result it
// also lists the warnings and the heuristic features behind the score.
func (p *Printer) PrintAuditReport(result *types.AuditResult, rules types.RuleCheckResult, heuristic types.HeuristicResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Document: %s\n", result.DocumentName))
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.ComplianceScore))
	sb.WriteString(fmt.Sprintf("Heuristic confidence: %.2f (compliant: %t)\n\n", heuristic.Confidence, heuristic.IsCompliant))

	writeList(&sb, "Issues", rules.Issues)
	writeList(&sb, "Warnings", rules.Warnings)
	writeList(&sb, "Passed", rules.Passed)

	f := heuristic.Features
	sb.WriteString("Features:\n")
	sb.WriteString(fmt.Sprintf("  words=%d chars=%d uppercase=%.3f\n", f.WordCount, f.Length, f.UppercaseRatio))
	sb.WriteString(fmt.Sprintf("  date=%t signature=%t email=%t phone=%t legal=%t",
		f.HasDate, f.HasSignature, f.HasEmail, f.HasPhone, f.HasLegalTerms))

	p.printBox("COMPLIANCE AUDIT", sb.String())
}

// PrintBatchSummary outputs one line per batch item.
func (p *Printer) PrintBatchSummary(items []types.BatchItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	failed := 0
	for _, item := range items {
		if item.Error != "" {
			failed++
			sb.WriteString(fmt.Sprintf("✗ %s: %s\n", item.Filename, item.Error))
			continue
		}
		sb.WriteString(fmt.Sprintf("✓ %s: %d/100 (%d issues)\n", item.Filename, item.ComplianceScore, len(item.Issues)))
	}
	sb.WriteString(fmt.Sprintf("\n%d audited, %d failed", len(items)-failed, failed))

	p.printBox("BATCH AUDIT", sb.String())
}
