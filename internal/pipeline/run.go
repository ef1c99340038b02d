// Package pipeline provides the orchestration that turns a document into an audit result.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/compliance-audit/internal/ingestion"
	"github.com/jonathan/compliance-audit/internal/observability"
	"github.com/jonathan/compliance-audit/internal/scoring"
	"github.com/jonathan/compliance-audit/internal/types"
	"github.com/jonathan/compliance-audit/internal/validation"
)

// Report holds the audit result together with the intermediate outputs that produced it.
// Only Result is part of the public audit output.
type Report struct {
	Result    types.AuditResult
	Findings  []types.Finding
	Rules     types.RuleCheckResult
	Heuristic types.HeuristicResult

	// Metadata describes the source file; set only when the report came from AuditFile.
	Metadata *ingestion.Metadata
}

// BatchInput identifies one file of a batch: where it is stored and the name it was submitted under.
type BatchInput struct {
	Path     string
	FileName string
}

// ProcessDocument audits already-extracted text.
func ProcessDocument(text string, docType types.DocumentType, fileName string) (*types.AuditResult, error) {
	report, err := Analyze(text, docType, fileName)
	if err != nil {
		return nil, err
	}
	return &report.Result, nil
}

// Analyze runs the rule checks, the heuristic scorer and the score combiner over text.
// It fails only with *validation.AnalysisError.
func Analyze(text string, docType types.DocumentType, fileName string) (*Report, error) {
	findings := validation.Findings(text, docType)
	if want := validation.ExpectedFindings(docType); len(findings) != want {
		return nil, &validation.AnalysisError{
			Message: fmt.Sprintf("rule checks produced %d findings for type %q, expected %d", len(findings), docType, want),
		}
	}

	rules := validation.Partition(findings)
	heuristic := scoring.Score(text)

	return &Report{
		Result:    scoring.Combine(rules, heuristic, fileName),
		Findings:  findings,
		Rules:     rules,
		Heuristic: heuristic,
	}, nil
}

// AuditFile extracts the text of the file at path and audits it under fileName.
func AuditFile(ctx context.Context, path, fileName string, docType types.DocumentType) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := ingestion.ExtractText(path, fileName)
	if err != nil {
		return nil, err
	}

	report, err := Analyze(text, docType, fileName)
	if err != nil {
		return nil, err
	}
	report.Metadata = ingestion.NewMetadata(fileName, text)

	observability.Logger(ctx).Debug("document audited",
		"file", fileName,
		"doc_type", string(docType),
		"score", report.Result.ComplianceScore,
		"issues", len(report.Rules.Issues),
		"warnings", len(report.Rules.Warnings),
	)
	return report, nil
}

// BatchOutcome is the result of auditing one batch input: exactly one of Report or Err is set.
type BatchOutcome struct {
	Input  BatchInput
	Report *Report
	Err    error
}

// RunBatch audits inputs with at most concurrency files in flight (unbounded when
// concurrency <= 0). Results keep the input order; a file that fails carries its error
// and a zero score instead of failing the batch.
func RunBatch(ctx context.Context, inputs []BatchInput, docType types.DocumentType, concurrency int) []types.BatchItem {
	return Items(AnalyzeBatch(ctx, inputs, docType, concurrency))
}

// AnalyzeBatch is RunBatch keeping the full report of every successful input.
func AnalyzeBatch(ctx context.Context, inputs []BatchInput, docType types.DocumentType, concurrency int) []BatchOutcome {
	outcomes := make([]BatchOutcome, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, in := range inputs {
		g.Go(func() error {
			report, err := AuditFile(gCtx, in.Path, in.FileName, docType)
			if err != nil {
				observability.Logger(gCtx).Warn("batch item failed", "file", in.FileName, "error", err)
			}
			outcomes[i] = BatchOutcome{Input: in, Report: report, Err: err}
			return nil
		})
	}

	// Outcomes record their own errors; the group never fails.
	_ = g.Wait()
	return outcomes
}

// Items converts batch outcomes to the public batch entries.
func Items(outcomes []BatchOutcome) []types.BatchItem {
	items := make([]types.BatchItem, len(outcomes))
	for i, o := range outcomes {
		if o.Err != nil {
			items[i] = FailedItem(o.Input.FileName, o.Err)
			continue
		}
		result := o.Report.Result
		items[i] = types.BatchItem{AuditResult: &result, Filename: o.Input.FileName}
	}
	return items
}

// FailedItem builds the batch entry for a file that could not be audited.
func FailedItem(fileName string, err error) types.BatchItem {
	score := 0
	return types.BatchItem{
		Filename: fileName,
		Error:    err.Error(),
		Score:    &score,
	}
}
