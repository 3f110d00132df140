package lifecycle

import (
	"context"

	"github.com/google/uuid"

	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/metrics"
	"github.com/logiteam/logiteam-api/internal/models"
)

// SetLeaveStatus transitions a pending leave request to approved, rejected,
// or cancelled. Approve/reject requires a manager or admin and stamps
// approved_by/approved_at atomically with the status change; cancel requires
// the owner and stamps nothing. Every other transition fails with an
// InvalidTransitionError and leaves the record unchanged.
func (s *Service) SetLeaveStatus(ctx context.Context, id uuid.UUID, newStatus string, actor models.Actor) (*models.LeaveRequest, error) {
	req, err := s.leave.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates, err := s.transitionUpdates("leave request", id, req.Status, req.UserID, newStatus, actor, true)
	if err != nil {
		metrics.StatusTransitionsTotal.WithLabelValues("leave", newStatus, "denied").Inc()
		return nil, err
	}

	rows, err := s.leave.UpdateStatusIfPending(id, updates)
	if err != nil {
		metrics.StatusTransitionsTotal.WithLabelValues("leave", newStatus, "error").Inc()
		return nil, err
	}
	if rows == 0 {
		// Lost the race: the record left pending between read and update.
		metrics.StatusTransitionsTotal.WithLabelValues("leave", newStatus, "conflict").Inc()
		return nil, &errs.InvalidTransitionError{Kind: "leave request", ID: id.String(), Status: newStatus}
	}

	metrics.StatusTransitionsTotal.WithLabelValues("leave", newStatus, "ok").Inc()
	s.log.Info().
		Str("id", id.String()).
		Str("status", newStatus).
		Str("actor", actor.ID.String()).
		Msg("Leave request transitioned")

	s.invalidateLeaveViews(ctx, req.UserID)
	return s.leave.GetByID(id)
}

// SetOvertimeStatus transitions a pending overtime entry to approved or
// rejected. Overtime has no cancel path. Both terminal states stamp the
// approver and timestamp.
func (s *Service) SetOvertimeStatus(ctx context.Context, id uuid.UUID, newStatus string, actor models.Actor) (*models.OvertimeEntry, error) {
	entry, err := s.overtime.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates, err := s.transitionUpdates("overtime entry", id, entry.Status, entry.UserID, newStatus, actor, false)
	if err != nil {
		metrics.StatusTransitionsTotal.WithLabelValues("overtime", newStatus, "denied").Inc()
		return nil, err
	}

	rows, err := s.overtime.UpdateStatusIfPending(id, updates)
	if err != nil {
		metrics.StatusTransitionsTotal.WithLabelValues("overtime", newStatus, "error").Inc()
		return nil, err
	}
	if rows == 0 {
		metrics.StatusTransitionsTotal.WithLabelValues("overtime", newStatus, "conflict").Inc()
		return nil, &errs.InvalidTransitionError{Kind: "overtime entry", ID: id.String(), Status: newStatus}
	}

	metrics.StatusTransitionsTotal.WithLabelValues("overtime", newStatus, "ok").Inc()
	s.log.Info().
		Str("id", id.String()).
		Str("status", newStatus).
		Str("actor", actor.ID.String()).
		Msg("Overtime entry transitioned")

	s.invalidateOvertimeViews(ctx, entry.UserID)
	return s.overtime.GetByID(id)
}

// transitionUpdates authorizes the requested transition and builds the
// update set. approved_by and approved_at go into the same conditional
// update as the status, so either all three change or none do.
func (s *Service) transitionUpdates(
	kind string,
	id uuid.UUID,
	currentStatus string,
	ownerID uuid.UUID,
	newStatus string,
	actor models.Actor,
	cancellable bool,
) (map[string]interface{}, error) {
	switch newStatus {
	case models.StatusApproved, models.StatusRejected:
		if !actor.CanApprove() {
			return nil, errs.ErrForbidden
		}
	case models.StatusCancelled:
		if !cancellable {
			return nil, &errs.InvalidTransitionError{Kind: kind, ID: id.String(), Status: newStatus}
		}
		if actor.ID != ownerID {
			return nil, errs.ErrForbidden
		}
	default:
		return nil, &errs.InvalidTransitionError{Kind: kind, ID: id.String(), Status: newStatus}
	}

	if currentStatus != models.StatusPending {
		return nil, &errs.InvalidTransitionError{Kind: kind, ID: id.String(), Status: newStatus}
	}

	updates := map[string]interface{}{"status": newStatus}
	if newStatus != models.StatusCancelled {
		updates["approved_by"] = actor.ID
		updates["approved_at"] = s.now().UTC()
	}
	return updates, nil
}
