package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/metrics"
	"github.com/logiteam/logiteam-api/internal/models"
)

// LeaveInput carries the fields of a leave submission. Status is not part of
// the input: stored records always start at pending.
type LeaveInput struct {
	Type         string     `json:"type"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	DurationType string     `json:"duration_type"`
	StartTime    *string    `json:"start_time"`
	EndTime      *string    `json:"end_time"`
	Reason       *string    `json:"reason"`
}

// OvertimeInput carries the fields of an overtime submission.
type OvertimeInput struct {
	Date  time.Time `json:"date"`
	Hours float64   `json:"hours"`
	Notes *string   `json:"notes"`
}

// SubmitLeave validates and persists a new leave request owned by ownerID.
// The stored record's status is forced to pending and requested_at is
// stamped; on validation failure nothing is written.
func (s *Service) SubmitLeave(ctx context.Context, ownerID uuid.UUID, in LeaveInput) (*models.LeaveRequest, error) {
	if err := validateLeaveInput(in); err != nil {
		metrics.RequestSubmissionsTotal.WithLabelValues("leave", "invalid").Inc()
		return nil, err
	}

	durationType := in.DurationType
	if durationType == "" {
		durationType = models.DurationFullDay
	}

	req := &models.LeaveRequest{
		UserID:       ownerID,
		Type:         in.Type,
		StartDate:    models.DateOf(in.StartDate),
		DurationType: durationType,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Reason:       in.Reason,
		Status:       models.StatusPending,
		RequestedAt:  s.now().UTC(),
	}
	if in.EndDate != nil {
		end := models.DateOf(*in.EndDate)
		req.EndDate = &end
	}

	if err := s.leave.Create(req); err != nil {
		metrics.RequestSubmissionsTotal.WithLabelValues("leave", "error").Inc()
		return nil, err
	}

	metrics.RequestSubmissionsTotal.WithLabelValues("leave", "ok").Inc()
	s.log.Info().
		Str("id", req.ID.String()).
		Str("owner", ownerID.String()).
		Str("type", req.Type).
		Msg("Leave request submitted")

	s.invalidateLeaveViews(ctx, ownerID)
	return req, nil
}

// SubmitOvertime validates and persists a new overtime entry owned by
// ownerID, forced to pending.
func (s *Service) SubmitOvertime(ctx context.Context, ownerID uuid.UUID, in OvertimeInput) (*models.OvertimeEntry, error) {
	var bad []string
	if in.Date.IsZero() {
		bad = append(bad, "date")
	}
	if in.Hours <= 0 {
		bad = append(bad, "hours")
	}
	if len(bad) > 0 {
		metrics.RequestSubmissionsTotal.WithLabelValues("overtime", "invalid").Inc()
		return nil, errs.NewValidation(bad...)
	}

	entry := &models.OvertimeEntry{
		UserID:    ownerID,
		Date:      models.DateOf(in.Date),
		Hours:     in.Hours,
		Notes:     in.Notes,
		Status:    models.StatusPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.overtime.Create(entry); err != nil {
		metrics.RequestSubmissionsTotal.WithLabelValues("overtime", "error").Inc()
		return nil, err
	}

	metrics.RequestSubmissionsTotal.WithLabelValues("overtime", "ok").Inc()
	s.log.Info().
		Str("id", entry.ID.String()).
		Str("owner", ownerID.String()).
		Float64("hours", entry.Hours).
		Msg("Overtime entry submitted")

	s.invalidateOvertimeViews(ctx, ownerID)
	return entry, nil
}

// validateLeaveInput checks required fields, the hourly time window, and the
// date range order.
func validateLeaveInput(in LeaveInput) error {
	var bad []string

	if in.Type == "" {
		bad = append(bad, "type")
	}
	if in.StartDate.IsZero() {
		bad = append(bad, "start_date")
	}

	switch in.DurationType {
	case "", models.DurationFullDay, models.DurationHalfDayMorning, models.DurationHalfDayAfternoon:
	case models.DurationHourly:
		start, startOK := parseClock(in.StartTime)
		end, endOK := parseClock(in.EndTime)
		if !startOK {
			bad = append(bad, "start_time")
		}
		if !endOK {
			bad = append(bad, "end_time")
		}
		if startOK && endOK && !start.Before(end) {
			bad = append(bad, "start_time", "end_time")
		}
	default:
		bad = append(bad, "duration_type")
	}

	if in.EndDate != nil && !in.StartDate.IsZero() {
		if models.DateOf(*in.EndDate).Before(models.DateOf(in.StartDate)) {
			bad = append(bad, "end_date")
		}
	}

	if len(bad) > 0 {
		return errs.NewValidation(dedupe(bad)...)
	}
	return nil
}

// parseClock parses an optional "HH:MM" value.
func parseClock(v *string) (time.Time, bool) {
	if v == nil || *v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("15:04", *v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func dedupe(fields []string) []string {
	seen := make(map[string]bool, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
