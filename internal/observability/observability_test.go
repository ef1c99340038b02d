package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/compliance-audit/internal/types"
)

func TestPrintAuditReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AuditResult{
		DocumentName:    "nda.pdf",
		ComplianceScore: 58,
		Issues:          []string{"Missing date information"},
		PassedChecks:    []string{"Contract terms present"},
	}
	rules := types.RuleCheckResult{
		Issues:   result.Issues,
		Passed:   result.PassedChecks,
		Warnings: []string{"Limited legal terminology"},
	}
	heuristic := types.HeuristicResult{Confidence: 0.6, Features: types.Features{WordCount: 390}}

	p.PrintAuditReport(result, rules, heuristic)
	output := buf.String()

	assert.Contains(t, output, "COMPLIANCE AUDIT")
	assert.Contains(t, output, "nda.pdf")
	assert.Contains(t, output, "58/100")
	assert.Contains(t, output, "Issues (1):")
	assert.Contains(t, output, "Warnings (1):")
	assert.Contains(t, output, "Limited legal terminology")
	assert.Contains(t, output, "words=390")
}

func TestPrintAuditReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAuditReport(nil, types.RuleCheckResult{}, types.HeuristicResult{})
	assert.Empty(t, buf.String())
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	zero := 0
	items := []types.BatchItem{
		{AuditResult: &types.AuditResult{ComplianceScore: 91, Issues: []string{}}, Filename: "a.txt"},
		{Filename: "b.doc", Error: "no parser available", Score: &zero},
	}

	p.PrintBatchSummary(items)
	output := buf.String()

	assert.Contains(t, output, "✓ a.txt: 91/100 (0 issues)")
	assert.Contains(t, output, "✗ b.doc: no parser available")
	assert.Contains(t, output, "1 audited, 1 failed")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestInitLogger_JSONWithRequestID(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	InitLogger("debug", "json", &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	Logger(ctx).Debug("audited", "score", 42)

	output := buf.String()
	assert.Contains(t, output, `"request_id":"req-123"`)
	assert.Contains(t, output, `"score":42`)
	assert.Equal(t, "req-123", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestMetrics_ObserveAudit(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveAudit(types.DocumentTypeContract, true, 91)
	m.ObserveAudit("memo", false, 40)
	m.ObserveAudit("letter", false, 35)
	m.ObserveExtractionFailure("pdf")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditsTotal.WithLabelValues("contract", "true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuditsTotal.WithLabelValues("other", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExtractionFailures.WithLabelValues("pdf")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ComplianceScore))
}
