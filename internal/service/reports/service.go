// Package reports builds monthly attendance and leave summaries and the
// dashboard snapshot.
package reports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/logiteam/logiteam-api/internal/cache"
	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/metrics"
	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/internal/repository"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// AttendanceRepository interface for attendance operations.
type AttendanceRepository interface {
	ListByDateRange(from, to time.Time) ([]models.Attendance, error)
	CountByDateAndStatus(date time.Time, status string) (int64, error)
}

// LeaveRepository interface for leave request operations.
type LeaveRepository interface {
	ListOverlapping(from, to time.Time) ([]models.LeaveRequest, error)
}

// OvertimeRepository interface for overtime operations.
type OvertimeRepository interface {
	SumHoursInRange(from, to time.Time) (float64, error)
}

// ProfileRepository interface for profile operations.
type ProfileRepository interface {
	Count() (int64, error)
}

// Service builds reporting views.
type Service struct {
	attendance AttendanceRepository
	leave      LeaveRepository
	overtime   OvertimeRepository
	profiles   ProfileRepository
	cache      cache.Cache
	cacheTTL   time.Duration
	log        *logger.Logger
}

// NewService creates a new reports service with concrete repository types.
func NewService(
	attendance *repository.AttendanceRepository,
	leave *repository.LeaveRepository,
	overtime *repository.OvertimeRepository,
	profiles *repository.ProfileRepository,
	c cache.Cache,
	cacheTTL time.Duration,
	log *logger.Logger,
) *Service {
	return &Service{
		attendance: attendance,
		leave:      leave,
		overtime:   overtime,
		profiles:   profiles,
		cache:      c,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// NewServiceWithInterfaces creates a new reports service with interface
// dependencies (useful for testing).
func NewServiceWithInterfaces(
	attendance AttendanceRepository,
	leave LeaveRepository,
	overtime OvertimeRepository,
	profiles ProfileRepository,
	c cache.Cache,
	cacheTTL time.Duration,
	log *logger.Logger,
) *Service {
	return &Service{
		attendance: attendance,
		leave:      leave,
		overtime:   overtime,
		profiles:   profiles,
		cache:      c,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// AttendanceSummary is the per-employee attendance breakdown for one month.
type AttendanceSummary struct {
	UserID    string `json:"user_id"`
	OwnerName string `json:"owner_name"`
	Present   int    `json:"present"`
	Absent    int    `json:"absent"`
	Late      int    `json:"late"`
	Total     int    `json:"total"`
}

// LeaveSummary is one leave request row in the monthly leave report.
type LeaveSummary struct {
	UserID       string     `json:"user_id"`
	OwnerName    string     `json:"owner_name"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	DurationDays int        `json:"duration_days"`
}

// DashboardSummary is the landing-page snapshot.
type DashboardSummary struct {
	TotalEmployees       int64   `json:"total_employees"`
	PresentToday         int64   `json:"present_today"`
	MonthlyOvertimeHours float64 `json:"monthly_overtime_hours"`
}

// MonthWindow returns the inclusive first and last day of a month.
func MonthWindow(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// SummarizeAttendance groups the month's attendance rows by employee and
// counts status occurrences. Manager or admin only.
func (s *Service) SummarizeAttendance(ctx context.Context, actor models.Actor, year, month int) ([]AttendanceSummary, error) {
	if !actor.CanApprove() {
		return nil, errs.ErrForbidden
	}

	key := cache.KeyAttendanceReport(year, month)
	if cached := s.cacheGet(ctx, key); cached != "" {
		var out []AttendanceSummary
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
	}

	timer := time.Now()
	first, last := MonthWindow(year, month)
	rows, err := s.attendance.ListByDateRange(first, last)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]*AttendanceSummary)
	order := make([]string, 0)
	for _, row := range rows {
		id := row.UserID.String()
		summary, ok := byUser[id]
		if !ok {
			name := ""
			if row.Owner != nil {
				name = row.Owner.DisplayName()
			}
			summary = &AttendanceSummary{UserID: id, OwnerName: name}
			byUser[id] = summary
			order = append(order, id)
		}
		switch row.Status {
		case models.AttendancePresent:
			summary.Present++
		case models.AttendanceAbsent:
			summary.Absent++
		case models.AttendanceLate:
			summary.Late++
		}
		summary.Total++
	}

	out := make([]AttendanceSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byUser[id])
	}

	metrics.ReportBuildSeconds.WithLabelValues("attendance").Observe(time.Since(timer).Seconds())
	s.cachePut(ctx, key, out)
	return out, nil
}

// SummarizeLeave lists every leave request overlapping the month window with
// its inclusive duration in days. Manager or admin only.
func (s *Service) SummarizeLeave(ctx context.Context, actor models.Actor, year, month int) ([]LeaveSummary, error) {
	if !actor.CanApprove() {
		return nil, errs.ErrForbidden
	}

	key := cache.KeyLeaveReport(year, month)
	if cached := s.cacheGet(ctx, key); cached != "" {
		var out []LeaveSummary
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
	}

	timer := time.Now()
	first, last := MonthWindow(year, month)
	reqs, err := s.leave.ListOverlapping(first, last)
	if err != nil {
		return nil, err
	}

	out := make([]LeaveSummary, 0, len(reqs))
	for _, req := range reqs {
		name := ""
		if req.Owner != nil {
			name = req.Owner.DisplayName()
		}
		out = append(out, LeaveSummary{
			UserID:       req.UserID.String(),
			OwnerName:    name,
			Type:         req.Type,
			Status:       req.Status,
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
			DurationDays: req.DurationDays(),
		})
	}

	metrics.ReportBuildSeconds.WithLabelValues("leave").Observe(time.Since(timer).Seconds())
	s.cachePut(ctx, key, out)
	return out, nil
}

// Dashboard returns the snapshot used by the landing page: headcount,
// today's present count, and the current month's overtime hours.
func (s *Service) Dashboard(ctx context.Context, today time.Time) (*DashboardSummary, error) {
	if cached := s.cacheGet(ctx, cache.KeyDashboard); cached != "" {
		var out DashboardSummary
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return &out, nil
		}
	}

	total, err := s.profiles.Count()
	if err != nil {
		return nil, err
	}

	present, err := s.attendance.CountByDateAndStatus(today, models.AttendancePresent)
	if err != nil {
		return nil, err
	}

	first, last := MonthWindow(today.Year(), int(today.Month()))
	hours, err := s.overtime.SumHoursInRange(first, last)
	if err != nil {
		return nil, err
	}

	out := &DashboardSummary{
		TotalEmployees:       total,
		PresentToday:         present,
		MonthlyOvertimeHours: hours,
	}
	s.cachePut(ctx, cache.KeyDashboard, out)
	return out, nil
}

func (s *Service) cacheGet(ctx context.Context, key string) string {
	if s.cache == nil {
		return ""
	}
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		return ""
	}
	return val
}

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
