package server

import (
	"math"
	"sync"
)

// auditStats counts successful audits for the lifetime of the process.
type auditStats struct {
	mu       sync.Mutex
	total    int
	scoreSum int
}

func (s *auditStats) record(score int) {
	s.mu.Lock()
	s.total++
	s.scoreSum += score
	s.mu.Unlock()
}

// snapshot returns the audit count and the mean score rounded to two decimals.
func (s *auditStats) snapshot() (total int, average float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.total == 0 {
		return 0, 0
	}
	return s.total, math.Round(float64(s.scoreSum)/float64(s.total)*100) / 100
}

// StatsResponse is the body of GET /api/stats
type StatsResponse struct {
	TotalAudits      int      `json:"total_audits"`
	AverageScore     float64  `json:"average_score"`
	SupportedFormats []string `json:"supported_formats"`
	MaxFileSizeMB    int      `json:"max_file_size_mb"`
}

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
