// Package calendar serves the date-range views backing the calendar page:
// attendance rows, approved leave, and holidays.
package calendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/internal/repository"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// AttendanceRepository interface for attendance operations.
type AttendanceRepository interface {
	ListByDateRange(from, to time.Time) ([]models.Attendance, error)
}

// LeaveRepository interface for leave request operations.
type LeaveRepository interface {
	ListOverlappingByStatus(from, to time.Time, status string) ([]models.LeaveRequest, error)
}

// HolidayRepository interface for holiday operations.
type HolidayRepository interface {
	CreateBatch(holidays []models.Holiday) error
	ListByDateRange(from, to time.Time) ([]models.Holiday, error)
	Count() (int64, error)
}

// Service serves calendar range queries.
type Service struct {
	attendance AttendanceRepository
	leave      LeaveRepository
	holidays   HolidayRepository
	log        *logger.Logger
}

// NewService creates a new calendar service with concrete repository types.
func NewService(
	attendance *repository.AttendanceRepository,
	leave *repository.LeaveRepository,
	holidays *repository.HolidayRepository,
	log *logger.Logger,
) *Service {
	return &Service{attendance: attendance, leave: leave, holidays: holidays, log: log}
}

// NewServiceWithInterfaces creates a new calendar service with interface
// dependencies (useful for testing).
func NewServiceWithInterfaces(
	attendance AttendanceRepository,
	leave LeaveRepository,
	holidays HolidayRepository,
	log *logger.Logger,
) *Service {
	return &Service{attendance: attendance, leave: leave, holidays: holidays, log: log}
}

// Attendances returns attendance rows in [from, to].
func (s *Service) Attendances(ctx context.Context, from, to time.Time) ([]models.Attendance, error) {
	return s.attendance.ListByDateRange(from, to)
}

// ApprovedLeave returns approved leave requests overlapping [from, to].
// Only approved requests appear on the shared calendar.
func (s *Service) ApprovedLeave(ctx context.Context, from, to time.Time) ([]models.LeaveRequest, error) {
	return s.leave.ListOverlappingByStatus(from, to, models.StatusApproved)
}

// Holidays returns holidays in [from, to].
func (s *Service) Holidays(ctx context.Context, from, to time.Time) ([]models.Holiday, error) {
	return s.holidays.ListByDateRange(from, to)
}

// holidaySeed is one entry of the YAML holiday calendar.
type holidaySeed struct {
	Name string `yaml:"name"`
	Date string `yaml:"date"` // 2006-01-02
	Type string `yaml:"type"`
}

// SeedHolidays loads the YAML holiday calendar into the store. The seed runs
// only against an empty holidays table, so re-deploys do not duplicate rows.
func (s *Service) SeedHolidays(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	count, err := s.holidays.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Debug().Int64("count", count).Msg("Holidays already seeded")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read holiday seed file: %w", err)
	}

	var seeds []holidaySeed
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("failed to parse holiday seed file: %w", err)
	}

	holidays := make([]models.Holiday, 0, len(seeds))
	for _, seed := range seeds {
		date, err := time.Parse("2006-01-02", seed.Date)
		if err != nil {
			return fmt.Errorf("invalid holiday date %q: %w", seed.Date, err)
		}
		holidays = append(holidays, models.Holiday{
			Name: seed.Name,
			Date: date,
			Type: seed.Type,
		})
	}

	if err := s.holidays.CreateBatch(holidays); err != nil {
		return err
	}

	s.log.Info().Int("count", len(holidays)).Str("file", path).Msg("Seeded holidays")
	return nil
}
