// Package attendance implements daily check-in/check-out tracking.
package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/logiteam/logiteam-api/internal/cache"
	"github.com/logiteam/logiteam-api/internal/config"
	"github.com/logiteam/logiteam-api/internal/metrics"
	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/internal/repository"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// Sentinel errors for the one-row-per-day invariant.
var (
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	ErrNotCheckedIn     = errors.New("no check-in recorded today")
)

// Repository interface for attendance operations.
type Repository interface {
	Create(att *models.Attendance) error
	GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.Attendance, error)
	SetCheckOut(id uuid.UUID, checkOut time.Time) error
	HistoryByUser(userID uuid.UUID) ([]models.Attendance, error)
}

// Service handles check-in and check-out.
type Service struct {
	repo    Repository
	workday *config.WorkdayConfig
	cache   cache.Cache
	log     *logger.Logger
	now     func() time.Time
}

// NewService creates a new attendance service with concrete repository types.
func NewService(repo *repository.AttendanceRepository, workday *config.WorkdayConfig, c cache.Cache, log *logger.Logger) *Service {
	return &Service{repo: repo, workday: workday, cache: c, log: log, now: time.Now}
}

// NewServiceWithInterfaces creates a new attendance service with interface
// dependencies (useful for testing).
func NewServiceWithInterfaces(repo Repository, workday *config.WorkdayConfig, c cache.Cache, log *logger.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, workday: workday, cache: c, log: log, now: now}
}

// CheckIn records today's check-in for the actor. A check-in after the
// workday start plus the grace period is recorded as late.
func (s *Service) CheckIn(ctx context.Context, actorID uuid.UUID) (*models.Attendance, error) {
	now := s.now()
	today := models.DateOf(now)

	existing, err := s.repo.GetByUserAndDate(actorID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyCheckedIn
	}

	status := models.AttendancePresent
	if s.isLate(now) {
		status = models.AttendanceLate
	}

	att := &models.Attendance{
		UserID:  actorID,
		Date:    today,
		CheckIn: now,
		Status:  status,
	}
	if err := s.repo.Create(att); err != nil {
		return nil, err
	}

	metrics.CheckInsTotal.WithLabelValues(status).Inc()
	s.log.Info().
		Str("user", actorID.String()).
		Str("status", status).
		Msg("Checked in")

	s.invalidate(ctx)
	return att, nil
}

// CheckOut stamps the check-out time on today's attendance row.
func (s *Service) CheckOut(ctx context.Context, actorID uuid.UUID) (*models.Attendance, error) {
	now := s.now()
	today := models.DateOf(now)

	att, err := s.repo.GetByUserAndDate(actorID, today)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, ErrNotCheckedIn
	}

	if err := s.repo.SetCheckOut(att.ID, now); err != nil {
		return nil, err
	}
	att.CheckOut = &now

	s.log.Info().Str("user", actorID.String()).Msg("Checked out")
	s.invalidate(ctx)
	return att, nil
}

// Today returns the actor's attendance row for today, or nil.
func (s *Service) Today(ctx context.Context, actorID uuid.UUID) (*models.Attendance, error) {
	return s.repo.GetByUserAndDate(actorID, models.DateOf(s.now()))
}

// History returns the actor's attendance rows, most recent first.
func (s *Service) History(ctx context.Context, actorID uuid.UUID) ([]models.Attendance, error) {
	return s.repo.HistoryByUser(actorID)
}

// isLate compares the wall-clock check-in time against the workday start
// plus the grace period.
func (s *Service) isLate(now time.Time) bool {
	cutoff, err := s.workday.LateCutoff()
	if err != nil {
		s.log.Warn().Err(err).Msg("Invalid workday start, defaulting to present")
		return false
	}
	clock := time.Date(0, 1, 1, now.Hour(), now.Minute(), 0, 0, time.UTC)
	return clock.After(cutoff)
}

// invalidate drops the read views attendance writes feed.
func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cache.KeyDashboard); err != nil {
		s.log.Warn().Err(err).Msg("Cache invalidation failed")
	}
	if err := s.cache.DelPattern(ctx, cache.PatternReports); err != nil {
		s.log.Warn().Err(err).Msg("Report cache invalidation failed")
	}
}
