package calendar

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// Mock repositories for testing

type mockAttendanceRepository struct {
	rows []models.Attendance
}

func (m *mockAttendanceRepository) ListByDateRange(from, to time.Time) ([]models.Attendance, error) {
	return m.rows, nil
}

type mockLeaveRepository struct {
	lastStatus string
	requests   []models.LeaveRequest
}

func (m *mockLeaveRepository) ListOverlappingByStatus(from, to time.Time, status string) ([]models.LeaveRequest, error) {
	m.lastStatus = status
	return m.requests, nil
}

type mockHolidayRepository struct {
	holidays []models.Holiday
	count    int64
}

func (m *mockHolidayRepository) CreateBatch(holidays []models.Holiday) error {
	m.holidays = append(m.holidays, holidays...)
	m.count += int64(len(holidays))
	return nil
}

func (m *mockHolidayRepository) ListByDateRange(from, to time.Time) ([]models.Holiday, error) {
	return m.holidays, nil
}

func (m *mockHolidayRepository) Count() (int64, error) {
	return m.count, nil
}

func setupTestService() (*Service, *mockLeaveRepository, *mockHolidayRepository) {
	leave := &mockLeaveRepository{}
	holidays := &mockHolidayRepository{}
	log := logger.New("error", "json", "stdout")
	svc := NewServiceWithInterfaces(&mockAttendanceRepository{}, leave, holidays, log)
	return svc, leave, holidays
}

func TestApprovedLeave_FiltersOnApproved(t *testing.T) {
	svc, leave, _ := setupTestService()
	leave.requests = []models.LeaveRequest{{UserID: uuid.New(), Status: models.StatusApproved}}

	got, err := svc.ApprovedLeave(context.Background(), time.Now(), time.Now())
	if err != nil {
		t.Fatalf("ApprovedLeave() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(got))
	}
	if leave.lastStatus != models.StatusApproved {
		t.Errorf("Expected the approved filter, got %q", leave.lastStatus)
	}
}

func TestSeedHolidays(t *testing.T) {
	svc, _, holidays := setupTestService()

	seed := `- name: "New Year's Day"
  date: "2026-01-01"
  type: public
- name: "Labour Day"
  date: "2026-05-01"
  type: public
`
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}

	if err := svc.SeedHolidays(context.Background(), path); err != nil {
		t.Fatalf("SeedHolidays() failed: %v", err)
	}

	if len(holidays.holidays) != 2 {
		t.Fatalf("Expected 2 seeded holidays, got %d", len(holidays.holidays))
	}
	if holidays.holidays[0].Name != "New Year's Day" {
		t.Errorf("Expected first holiday name, got %q", holidays.holidays[0].Name)
	}
	if !holidays.holidays[1].Date.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected parsed date, got %v", holidays.holidays[1].Date)
	}

	// A second run against a non-empty table is a no-op
	if err := svc.SeedHolidays(context.Background(), path); err != nil {
		t.Fatalf("SeedHolidays() failed on rerun: %v", err)
	}
	if len(holidays.holidays) != 2 {
		t.Errorf("Expected no duplicate seeding, got %d holidays", len(holidays.holidays))
	}
}

func TestSeedHolidays_NoPath(t *testing.T) {
	svc, _, holidays := setupTestService()

	if err := svc.SeedHolidays(context.Background(), ""); err != nil {
		t.Fatalf("SeedHolidays(\"\") failed: %v", err)
	}
	if len(holidays.holidays) != 0 {
		t.Error("Expected no seeding without a path")
	}
}

func TestSeedHolidays_BadDate(t *testing.T) {
	svc, _, _ := setupTestService()

	path := filepath.Join(t.TempDir(), "holidays.yaml")
	if err := os.WriteFile(path, []byte("- name: Broken\n  date: 01/05/2026\n"), 0o600); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}

	if err := svc.SeedHolidays(context.Background(), path); err == nil {
		t.Error("Expected an error for an unparseable date")
	}
}
