package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// AttendanceService interface for attendance operations.
type AttendanceService interface {
	CheckIn(ctx context.Context, actorID uuid.UUID) (*models.Attendance, error)
	CheckOut(ctx context.Context, actorID uuid.UUID) (*models.Attendance, error)
	Today(ctx context.Context, actorID uuid.UUID) (*models.Attendance, error)
	History(ctx context.Context, actorID uuid.UUID) ([]models.Attendance, error)
}

// AttendanceHandler handles check-in/check-out endpoints.
type AttendanceHandler struct {
	attendance AttendanceService
	log        *logger.Logger
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(attendance AttendanceService, log *logger.Logger) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, log: log}
}

// CheckIn records today's check-in for the actor.
// POST /api/v1/attendance/check-in.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	att, err := h.attendance.CheckIn(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, att)
}

// CheckOut stamps the check-out time on today's row.
// POST /api/v1/attendance/check-out.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	att, err := h.attendance.CheckOut(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, att)
}

// Today returns the actor's attendance row for today, or null.
// GET /api/v1/attendance/today.
func (h *AttendanceHandler) Today(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	att, err := h.attendance.Today(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": att})
}

// History returns the actor's attendance rows, most recent first.
// GET /api/v1/attendance/history.
func (h *AttendanceHandler) History(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	rows, err := h.attendance.History(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": rows})
}
