package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jonathan/compliance-audit/internal/types"
)

// Metrics holds the Prometheus metrics for audits
type Metrics struct {
	AuditsTotal        *prometheus.CounterVec
	ComplianceScore    prometheus.Histogram
	ExtractionFailures *prometheus.CounterVec
}

// NewMetrics creates the audit metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AuditsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_audits_total",
			Help: "Total number of documents audited, by document type and heuristic verdict",
		}, []string{"doc_type", "compliant"}),
		ComplianceScore: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "compliance_audit_score",
			Help:    "Distribution of compliance scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
		ExtractionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_extraction_failures_total",
			Help: "Total number of documents whose text could not be extracted, by format",
		}, []string{"format"}),
	}
}

// ObserveAudit records one completed audit. Unrecognized document types share the
// "other" label so caller input cannot grow the label set.
func (m *Metrics) ObserveAudit(docType types.DocumentType, compliant bool, score int) {
	typeLabel := "other"
	if docType.Known() {
		typeLabel = string(docType)
	}
	compliantLabel := "false"
	if compliant {
		compliantLabel = "true"
	}
	m.AuditsTotal.WithLabelValues(typeLabel, compliantLabel).Inc()
	m.ComplianceScore.Observe(float64(score))
}

// ObserveExtractionFailure records one failed extraction
func (m *Metrics) ObserveExtractionFailure(format string) {
	m.ExtractionFailures.WithLabelValues(format).Inc()
}
