package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/internal/service/lifecycle"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// LifecycleService interface for request lifecycle operations.
type LifecycleService interface {
	SubmitLeave(ctx context.Context, ownerID uuid.UUID, in lifecycle.LeaveInput) (*models.LeaveRequest, error)
	SubmitOvertime(ctx context.Context, ownerID uuid.UUID, in lifecycle.OvertimeInput) (*models.OvertimeEntry, error)
	SetLeaveStatus(ctx context.Context, id uuid.UUID, status string, actor models.Actor) (*models.LeaveRequest, error)
	SetOvertimeStatus(ctx context.Context, id uuid.UUID, status string, actor models.Actor) (*models.OvertimeEntry, error)
	ListOwnLeave(ctx context.Context, ownerID uuid.UUID) ([]models.LeaveRequest, error)
	ListOwnOvertime(ctx context.Context, ownerID uuid.UUID) ([]models.OvertimeEntry, error)
	ListPendingLeave(ctx context.Context, actor models.Actor) ([]lifecycle.PendingLeave, error)
	ListPendingOvertime(ctx context.Context, actor models.Actor) ([]lifecycle.PendingOvertime, error)
}

// RequestsHandler handles leave and overtime endpoints.
type RequestsHandler struct {
	lifecycle LifecycleService
	log       *logger.Logger
}

// NewRequestsHandler creates a new requests handler.
func NewRequestsHandler(lifecycle LifecycleService, log *logger.Logger) *RequestsHandler {
	return &RequestsHandler{lifecycle: lifecycle, log: log}
}

// leaveRequestBody is the wire form of a leave submission. Dates arrive as
// "2006-01-02" strings. Any caller-supplied status is ignored.
type leaveRequestBody struct {
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date"`
	DurationType string  `json:"duration_type"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Reason       *string `json:"reason"`
}

type overtimeRequestBody struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Notes *string `json:"notes"`
}

type statusBody struct {
	Status string `json:"status"`
}

// SubmitLeave creates a leave request owned by the actor.
// POST /api/v1/leave.
func (h *RequestsHandler) SubmitLeave(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var body leaveRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in := lifecycle.LeaveInput{
		Type:         body.Type,
		DurationType: body.DurationType,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		Reason:       body.Reason,
	}
	if body.StartDate != "" {
		start, err := time.Parse("2006-01-02", body.StartDate)
		if err != nil {
			respondError(c, h.log, errs.NewValidation("start_date"))
			return
		}
		in.StartDate = start
	}
	if body.EndDate != nil && *body.EndDate != "" {
		end, err := time.Parse("2006-01-02", *body.EndDate)
		if err != nil {
			respondError(c, h.log, errs.NewValidation("end_date"))
			return
		}
		in.EndDate = &end
	}

	req, err := h.lifecycle.SubmitLeave(c.Request.Context(), actor.ID, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// ListOwnLeave returns the actor's leave requests, most recent first.
// GET /api/v1/leave.
func (h *RequestsHandler) ListOwnLeave(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	reqs, err := h.lifecycle.ListOwnLeave(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leave_requests": reqs})
}

// ListPendingLeave returns all pending leave requests for approvers.
// GET /api/v1/leave/pending.
func (h *RequestsHandler) ListPendingLeave(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	reqs, err := h.lifecycle.ListPendingLeave(c.Request.Context(), actor)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leave_requests": reqs})
}

// SetLeaveStatus transitions a leave request.
// PATCH /api/v1/leave/:id/status.
func (h *RequestsHandler) SetLeaveStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var body statusBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req, err := h.lifecycle.SetLeaveStatus(c.Request.Context(), id, body.Status, actor)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// SubmitOvertime creates an overtime entry owned by the actor.
// POST /api/v1/overtime.
func (h *RequestsHandler) SubmitOvertime(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var body overtimeRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in := lifecycle.OvertimeInput{Hours: body.Hours, Notes: body.Notes}
	if body.Date != "" {
		date, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			respondError(c, h.log, errs.NewValidation("date"))
			return
		}
		in.Date = date
	}

	entry, err := h.lifecycle.SubmitOvertime(c.Request.Context(), actor.ID, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListOwnOvertime returns the actor's overtime entries, most recent first.
// GET /api/v1/overtime.
func (h *RequestsHandler) ListOwnOvertime(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	entries, err := h.lifecycle.ListOwnOvertime(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overtime": entries})
}

// ListPendingOvertime returns all pending overtime entries for approvers.
// GET /api/v1/overtime/pending.
func (h *RequestsHandler) ListPendingOvertime(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	entries, err := h.lifecycle.ListPendingOvertime(c.Request.Context(), actor)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overtime": entries})
}

// SetOvertimeStatus transitions an overtime entry.
// PATCH /api/v1/overtime/:id/status.
func (h *RequestsHandler) SetOvertimeStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var body statusBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.lifecycle.SetOvertimeStatus(c.Request.Context(), id, body.Status, actor)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
