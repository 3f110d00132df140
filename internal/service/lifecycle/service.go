// Package lifecycle implements the request lifecycle manager: submission,
// status transitions, and listings for leave requests and overtime entries.
//
// Authorization is enforced here against the acting identity, not only in
// the HTTP layer: approve/reject needs a manager or admin, cancel needs the
// record owner. Transitions go through a conditional update so a record can
// leave the pending state exactly once.
package lifecycle

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/logiteam/logiteam-api/internal/cache"
	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/metrics"
	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/internal/repository"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// LeaveRepository interface for leave request operations.
type LeaveRepository interface {
	Create(req *models.LeaveRequest) error
	GetByID(id uuid.UUID) (*models.LeaveRequest, error)
	ListByOwner(ownerID uuid.UUID) ([]models.LeaveRequest, error)
	ListPending() ([]models.LeaveRequest, error)
	UpdateStatusIfPending(id uuid.UUID, updates map[string]interface{}) (int64, error)
}

// OvertimeRepository interface for overtime entry operations.
type OvertimeRepository interface {
	Create(entry *models.OvertimeEntry) error
	GetByID(id uuid.UUID) (*models.OvertimeEntry, error)
	ListByOwner(ownerID uuid.UUID) ([]models.OvertimeEntry, error)
	ListPending() ([]models.OvertimeEntry, error)
	UpdateStatusIfPending(id uuid.UUID, updates map[string]interface{}) (int64, error)
}

// Service is the request lifecycle manager.
type Service struct {
	leave    LeaveRepository
	overtime OvertimeRepository
	cache    cache.Cache
	cacheTTL time.Duration
	log      *logger.Logger
	now      func() time.Time
}

// NewService creates a new lifecycle service with concrete repository types.
func NewService(
	leave *repository.LeaveRepository,
	overtime *repository.OvertimeRepository,
	c cache.Cache,
	cacheTTL time.Duration,
	log *logger.Logger,
) *Service {
	return &Service{
		leave:    leave,
		overtime: overtime,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
		now:      time.Now,
	}
}

// NewServiceWithInterfaces creates a new lifecycle service with interface
// dependencies (useful for testing).
func NewServiceWithInterfaces(
	leave LeaveRepository,
	overtime OvertimeRepository,
	c cache.Cache,
	cacheTTL time.Duration,
	log *logger.Logger,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		leave:    leave,
		overtime: overtime,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
		now:      now,
	}
}

// PendingLeave is a pending leave request enriched with the owner's display
// name for the approver view.
type PendingLeave struct {
	models.LeaveRequest
	OwnerName string `json:"owner_name"`
}

// PendingOvertime is a pending overtime entry enriched with the owner's
// display name.
type PendingOvertime struct {
	models.OvertimeEntry
	OwnerName string `json:"owner_name"`
}

// ListOwnLeave returns the owner's leave requests, most recent first.
func (s *Service) ListOwnLeave(ctx context.Context, ownerID uuid.UUID) ([]models.LeaveRequest, error) {
	return s.leave.ListByOwner(ownerID)
}

// ListOwnOvertime returns the owner's overtime entries, most recent first.
func (s *Service) ListOwnOvertime(ctx context.Context, ownerID uuid.UUID) ([]models.OvertimeEntry, error) {
	return s.overtime.ListByOwner(ownerID)
}

// ListPendingLeave returns all pending leave requests oldest-first for
// approvers, with owner names attached. Manager or admin only.
func (s *Service) ListPendingLeave(ctx context.Context, actor models.Actor) ([]PendingLeave, error) {
	if !actor.CanApprove() {
		return nil, errs.ErrForbidden
	}

	if cached, ok := s.cacheGet(ctx, cache.KeyPendingLeave, "pending_leave"); ok {
		var out []PendingLeave
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
	}

	reqs, err := s.leave.ListPending()
	if err != nil {
		return nil, err
	}

	out := make([]PendingLeave, 0, len(reqs))
	for _, req := range reqs {
		name := ""
		if req.Owner != nil {
			name = req.Owner.DisplayName()
		}
		out = append(out, PendingLeave{LeaveRequest: req, OwnerName: name})
	}

	metrics.PendingRequests.WithLabelValues("leave").Set(float64(len(out)))
	s.cachePut(ctx, cache.KeyPendingLeave, out)
	return out, nil
}

// ListPendingOvertime returns all pending overtime entries oldest-first for
// approvers, with owner names attached. Manager or admin only.
func (s *Service) ListPendingOvertime(ctx context.Context, actor models.Actor) ([]PendingOvertime, error) {
	if !actor.CanApprove() {
		return nil, errs.ErrForbidden
	}

	if cached, ok := s.cacheGet(ctx, cache.KeyPendingOvertime, "pending_overtime"); ok {
		var out []PendingOvertime
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
	}

	entries, err := s.overtime.ListPending()
	if err != nil {
		return nil, err
	}

	out := make([]PendingOvertime, 0, len(entries))
	for _, entry := range entries {
		name := ""
		if entry.Owner != nil {
			name = entry.Owner.DisplayName()
		}
		out = append(out, PendingOvertime{OvertimeEntry: entry, OwnerName: name})
	}

	metrics.PendingRequests.WithLabelValues("overtime").Set(float64(len(out)))
	s.cachePut(ctx, cache.KeyPendingOvertime, out)
	return out, nil
}

// cacheGet reads a cached view. Cache failures degrade to a store read.
func (s *Service) cacheGet(ctx context.Context, key, view string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		return "", false
	}
	if val == "" {
		metrics.CacheLookupsTotal.WithLabelValues(view, "miss").Inc()
		return "", false
	}
	metrics.CacheLookupsTotal.WithLabelValues(view, "hit").Inc()
	return val, true
}

// cachePut stores a view with the configured TTL.
func (s *Service) cachePut(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// invalidateLeaveViews drops every read view a leave write can affect.
func (s *Service) invalidateLeaveViews(ctx context.Context, ownerID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cache.KeyPendingLeave, cache.KeyOwnLeave(ownerID.String())); err != nil {
		s.log.Warn().Err(err).Msg("Cache invalidation failed")
	}
	if err := s.cache.DelPattern(ctx, cache.PatternReports); err != nil {
		s.log.Warn().Err(err).Msg("Report cache invalidation failed")
	}
}

// invalidateOvertimeViews drops every read view an overtime write can affect.
func (s *Service) invalidateOvertimeViews(ctx context.Context, ownerID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cache.KeyPendingOvertime, cache.KeyOwnOvertime(ownerID.String()), cache.KeyDashboard); err != nil {
		s.log.Warn().Err(err).Msg("Cache invalidation failed")
	}
}
