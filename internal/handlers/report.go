// internal/handlers/report.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stefanninkovic/carunity/internal/i18n"
	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/services"
	"github.com/stefanninkovic/carunity/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// POST /reports
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	report, err := h.reportService.Submit(userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "reason") {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyReportInvalidReason), nil)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReportSubmitted),
		"report":  report,
	})
}

// GET /reports/mine
func (h *ReportHandler) GetMyReports(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	reports := h.reportService.ByReporter(userID)
	utils.SuccessResponse(c, gin.H{
		"reports": reports,
		"total":   len(reports),
	})
}

// GET /reports/reasons/:type
func (h *ReportHandler) GetReasons(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	reportType := models.ReportType(c.Param("type"))

	reasons, err := h.reportService.ReasonsFor(reportType)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "report type"), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"type":    reportType,
		"reasons": reasons,
	})
}
