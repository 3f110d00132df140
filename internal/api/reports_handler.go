package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/internal/service/reports"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// ReportsService interface for reporting operations.
type ReportsService interface {
	SummarizeAttendance(ctx context.Context, actor models.Actor, year, month int) ([]reports.AttendanceSummary, error)
	SummarizeLeave(ctx context.Context, actor models.Actor, year, month int) ([]reports.LeaveSummary, error)
	Dashboard(ctx context.Context, today time.Time) (*reports.DashboardSummary, error)
}

// ReportsHandler handles monthly report and dashboard endpoints.
type ReportsHandler struct {
	reports ReportsService
	log     *logger.Logger
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(reports ReportsService, log *logger.Logger) *ReportsHandler {
	return &ReportsHandler{reports: reports, log: log}
}

// parseYearMonth reads and bounds the year/month query parameters.
func parseYearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year parameter is required"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month parameter is required"})
		return 0, 0, false
	}
	return year, month, true
}

// AttendanceReport returns the per-employee monthly attendance summary.
// GET /api/v1/reports/attendance?year=2024&month=3.
func (h *ReportsHandler) AttendanceReport(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	summary, err := h.reports.SummarizeAttendance(c.Request.Context(), actor, year, month)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "summary": summary})
}

// LeaveReport returns the monthly leave summary.
// GET /api/v1/reports/leave?year=2024&month=3.
func (h *ReportsHandler) LeaveReport(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	summary, err := h.reports.SummarizeLeave(c.Request.Context(), actor, year, month)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "summary": summary})
}

// Dashboard returns the landing-page snapshot.
// GET /api/v1/dashboard.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	summary, err := h.reports.Dashboard(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
