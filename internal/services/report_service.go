// internal/services/report_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/store"
	"github.com/stefanninkovic/carunity/internal/utils"
)

type ReportService struct {
	reports *store.ReportStore
}

type SubmitReportRequest struct {
	Type        models.ReportType `json:"type" validate:"required,oneof=account offer wheel"`
	TargetID    string            `json:"target_id" validate:"required"`
	TargetName  string            `json:"target_name" validate:"required"`
	Reason      string            `json:"reason" validate:"required"`
	Description string            `json:"description"`
}

func NewReportService(reports *store.ReportStore) *ReportService {
	return &ReportService{reports: reports}
}

// Submit appends a pending report. There is no duplicate detection and
// no further workflow; submission itself cannot fail once validated.
func (s *ReportService) Submit(reporterID string, req *SubmitReportRequest) (models.Report, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Report{}, fmt.Errorf("validation failed: %w", err)
	}
	if !models.ValidReportReason(req.Type, req.Reason) {
		return models.Report{}, errors.New("invalid report reason")
	}

	return s.reports.Submit(req.Type, req.TargetID, req.TargetName, req.Reason, req.Description, reporterID), nil
}

// ByReporter is a derived filter over the full report log.
func (s *ReportService) ByReporter(userID string) []models.Report {
	return s.reports.ByReporter(userID)
}

// ReasonsFor returns the fixed reason list for a target kind.
func (s *ReportService) ReasonsFor(t models.ReportType) ([]string, error) {
	if !t.Valid() {
		return nil, errors.New("invalid report type")
	}
	return models.ReportReasons(t), nil
}
