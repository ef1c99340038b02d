package server

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/compliance-audit/internal/ingestion"
	"github.com/jonathan/compliance-audit/internal/observability"
	"github.com/jonathan/compliance-audit/internal/pipeline"
	"github.com/jonathan/compliance-audit/internal/types"
)

// maxMemory is the multipart budget held in memory before parts spill to temp files.
const maxMemory = 32 << 20

const insufficientTextMessage = "Could not extract sufficient text from document. Please check if the file is readable."

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
	})
}

// handleStats returns audit counters for the lifetime of the process
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	total, average := s.stats.snapshot()
	formats := slices.Clone(s.cfg.AllowedExtensions)
	slices.Sort(formats)

	s.jsonResponse(w, http.StatusOK, StatsResponse{
		TotalAudits:      total,
		AverageScore:     average,
		SupportedFormats: formats,
		MaxFileSizeMB:    s.cfg.MaxFileSizeMB,
	})
}

// handleAudit audits a single uploaded document
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.Logger(ctx)

	form, err := s.parseForm(r)
	if err != nil {
		s.formError(w, err, "No file provided")
		return
	}

	headers := form.File["file"]
	if len(headers) == 0 {
		// A part sent without a file name is parsed as a plain value.
		if _, ok := form.Value["file"]; ok {
			s.errorResponse(w, http.StatusBadRequest, "No file selected")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "No file provided")
		return
	}
	header := headers[0]

	req := types.AuditRequest{FileName: header.Filename, DocType: formValue(form, "docType")}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "file", Message: err.Error()}).Error())
		return
	}

	name := sanitizeFilename(header.Filename)
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "No file selected")
		return
	}
	if !s.cfg.AllowsFile(name) {
		s.errorResponse(w, http.StatusBadRequest, s.notAllowedMessage())
		return
	}
	docType := s.docType(form)

	path, err := saveUpload(s.cfg.UploadDir, header, name)
	if err != nil {
		logger.Error("failed to save upload", "file", name, "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Error processing document: "+err.Error())
		return
	}
	defer removeUpload(r, path)

	text, err := ingestion.ExtractText(path, name)
	if err != nil {
		s.metrics.ObserveExtractionFailure(ingestion.Format(name))
		logger.Warn("extraction failed", "file", name, "error", err)
		if HTTPStatus(err) == http.StatusBadRequest {
			s.errorResponse(w, http.StatusBadRequest, insufficientTextMessage)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Error processing document: "+err.Error())
		return
	}

	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < s.cfg.MinTextLength {
		logger.Info("rejected document", "error", &ErrInsufficientText{FileName: name, Length: n, Minimum: s.cfg.MinTextLength})
		s.errorResponse(w, http.StatusBadRequest, insufficientTextMessage)
		return
	}

	report, err := pipeline.Analyze(text, docType, name)
	if err != nil {
		logger.Error("analysis failed", "file", name, "error", err)
		s.errorResponse(w, HTTPStatus(err), "Error processing document: "+err.Error())
		return
	}

	s.recordAudit(docType, report)
	logger.Info("document audited", "file", name, "doc_type", string(docType), "score", report.Result.ComplianceScore)
	s.jsonResponse(w, http.StatusOK, report.Result)
}

// handleBatchAudit audits every allowed file of a multipart upload. Files with
// disallowed extensions are skipped; per-file failures are reported inline.
func (s *Server) handleBatchAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.Logger(ctx)

	form, err := s.parseForm(r)
	if err != nil {
		s.formError(w, err, "No files provided")
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No files provided")
		return
	}

	req := types.AuditRequest{FileName: "batch", DocType: formValue(form, "docType")}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "docType", Message: err.Error()}).Error())
		return
	}
	docType := s.docType(form)

	inputs := make([]pipeline.BatchInput, 0, len(headers))
	defer func() {
		for _, in := range inputs {
			removeUpload(r, in.Path)
		}
	}()

	for _, header := range headers {
		name := sanitizeFilename(header.Filename)
		if name == "" || !s.cfg.AllowsFile(name) {
			logger.Info("skipping file", "file", header.Filename)
			continue
		}

		path, err := saveUpload(s.cfg.UploadDir, header, name)
		if err != nil {
			logger.Error("failed to save upload", "file", name, "error", err)
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		inputs = append(inputs, pipeline.BatchInput{Path: path, FileName: name})
	}

	outcomes := pipeline.AnalyzeBatch(ctx, inputs, docType, s.cfg.BatchConcurrency)
	for _, o := range outcomes {
		var extractionErr *ingestion.ExtractionError
		switch {
		case errors.As(o.Err, &extractionErr):
			s.metrics.ObserveExtractionFailure(extractionErr.Format)
		case o.Err == nil:
			s.recordAudit(docType, o.Report)
		}
	}

	logger.Info("batch audited", "files", len(headers), "audited", len(outcomes), "doc_type", string(docType))
	s.jsonResponse(w, http.StatusOK, types.BatchResults{Results: pipeline.Items(outcomes)})
}

func (s *Server) parseForm(r *http.Request) (*multipart.Form, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, err
	}
	return r.MultipartForm, nil
}

// formError reports a multipart parsing failure: oversized bodies get 413,
// anything else is treated as a request without files.
func (s *Server) formError(w http.ResponseWriter, err error, missingMessage string) {
	if HTTPStatus(err) == http.StatusRequestEntityTooLarge {
		s.errorResponse(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File too large. Maximum size is %d MB", s.cfg.MaxFileSizeMB))
		return
	}
	s.errorResponse(w, http.StatusBadRequest, missingMessage)
}

func (s *Server) notAllowedMessage() string {
	return "File type not allowed. Use " + strings.ToUpper(strings.Join(s.cfg.AllowedExtensions, ", "))
}

// docType falls back to the configured default only when the field is absent.
// An empty value is an unrecognized type.
func (s *Server) docType(form *multipart.Form) types.DocumentType {
	values, ok := form.Value["docType"]
	if !ok || len(values) == 0 {
		return types.ParseDocumentType(s.cfg.DefaultDocType)
	}
	return types.ParseDocumentType(values[0])
}

func (s *Server) recordAudit(docType types.DocumentType, report *pipeline.Report) {
	s.stats.record(report.Result.ComplianceScore)
	s.metrics.ObserveAudit(docType, report.Heuristic.IsCompliant, report.Result.ComplianceScore)
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func removeUpload(r *http.Request, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		observability.Logger(r.Context()).Warn("failed to remove upload", "path", path, "error", err)
	}
}
