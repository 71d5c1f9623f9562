package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kiroku/internal/dto"
	apierrors "github.com/yukikurage/kiroku/internal/errors"
	"github.com/yukikurage/kiroku/internal/middleware"
	"github.com/yukikurage/kiroku/internal/report"
	"github.com/yukikurage/kiroku/internal/services"
)

// ReportHandler serves date-range reports.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetReport returns the report for ?start_date=&end_date= as JSON.
func (h *ReportHandler) GetReport(c *gin.Context) {
	rep, ok := h.buildReport(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToReportDTO(*rep))
}

// GetReportChart renders the report as a standalone HTML line chart.
func (h *ReportHandler) GetReportChart(c *gin.Context) {
	rep, ok := h.buildReport(c)
	if !ok {
		return
	}

	title := fmt.Sprintf("%s - %s", rep.Range.StartDate, rep.Range.EndDate)

	var buf bytes.Buffer
	if err := report.RenderHTML(&buf, rep.Series.Chart(), title); err != nil {
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to render chart")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *ReportHandler) buildReport(c *gin.Context) (*report.Report, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return nil, false
	}

	rep, err := h.reportService.BuildReport(c.Request.Context(), userID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		switch {
		case errors.Is(err, report.ErrMissingRange):
			apierrors.MissingField(c, report.ErrMissingRange.Error())
		case errors.Is(err, report.ErrInvalidDate):
			apierrors.InvalidFormat(c, err.Error())
		default:
			_ = c.Error(err)
			apierrors.InternalError(c, "Internal server error")
		}
		return nil, false
	}

	return rep, true
}
