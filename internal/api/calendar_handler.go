package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// CalendarService interface for calendar range queries.
type CalendarService interface {
	Attendances(ctx context.Context, from, to time.Time) ([]models.Attendance, error)
	ApprovedLeave(ctx context.Context, from, to time.Time) ([]models.LeaveRequest, error)
	Holidays(ctx context.Context, from, to time.Time) ([]models.Holiday, error)
}

// CalendarHandler handles the calendar range endpoint.
type CalendarHandler struct {
	calendar CalendarService
	log      *logger.Logger
}

// NewCalendarHandler creates a new calendar handler.
func NewCalendarHandler(calendar CalendarService, log *logger.Logger) *CalendarHandler {
	return &CalendarHandler{calendar: calendar, log: log}
}

// Range returns attendance, approved leave, and holidays in a date window.
// GET /api/v1/calendar?from=2024-03-01&to=2024-03-31.
func (h *CalendarHandler) Range(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from parameter is required"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to parameter is required"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not precede from"})
		return
	}

	ctx := c.Request.Context()
	attendances, err := h.calendar.Attendances(ctx, from, to)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	leave, err := h.calendar.ApprovedLeave(ctx, from, to)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	holidays, err := h.calendar.Holidays(ctx, from, to)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attendances":    attendances,
		"leave_requests": leave,
		"holidays":       holidays,
	})
}
