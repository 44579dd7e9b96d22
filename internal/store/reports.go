// internal/store/reports.go
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/utils"
)

// ReportStore is an append-only log of moderation reports. Submissions
// always succeed; nothing in this service edits or removes a report.
type ReportStore struct {
	mu      sync.RWMutex
	reports []models.Report
}

func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// Submit appends a new report with a generated identifier, the current
// time, and pending status.
func (s *ReportStore) Submit(reportType models.ReportType, targetID, targetName, reason, description, reportedBy string) models.Report {
	suffix, err := utils.GenerateRandomString(9)
	if err != nil {
		suffix = fmt.Sprintf("%09d", time.Now().Nanosecond())
	}

	report := models.Report{
		ID:          fmt.Sprintf("report_%d_%s", time.Now().UnixMilli(), suffix),
		Type:        reportType,
		TargetID:    targetID,
		TargetName:  targetName,
		Reason:      reason,
		Description: description,
		ReportedBy:  reportedBy,
		ReportedAt:  time.Now(),
		Status:      models.ReportStatusPending,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append([]models.Report{report}, s.reports...)
	return report
}

// List returns the full log, newest first.
func (s *ReportStore) List() []models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// ByReporter filters the log down to one reporter's submissions.
func (s *ReportStore) ByReporter(userID string) []models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Report
	for _, r := range s.reports {
		if r.ReportedBy == userID {
			out = append(out, r)
		}
	}
	return out
}
