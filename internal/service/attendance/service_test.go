package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/logiteam/logiteam-api/internal/config"
	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// Mock repository for testing

type mockRepository struct {
	rows map[uuid.UUID]*models.Attendance // keyed by row id
}

func newMockRepository() *mockRepository {
	return &mockRepository{rows: make(map[uuid.UUID]*models.Attendance)}
}

func (m *mockRepository) Create(att *models.Attendance) error {
	if att.ID == uuid.Nil {
		att.ID = uuid.New()
	}
	cp := *att
	m.rows[att.ID] = &cp
	return nil
}

func (m *mockRepository) GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.Attendance, error) {
	for _, row := range m.rows {
		if row.UserID == userID && row.Date.Equal(models.DateOf(date)) {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockRepository) SetCheckOut(id uuid.UUID, checkOut time.Time) error {
	row := m.rows[id]
	row.CheckOut = &checkOut
	return nil
}

func (m *mockRepository) HistoryByUser(userID uuid.UUID) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func testWorkday() *config.WorkdayConfig {
	return &config.WorkdayConfig{
		Start:            "09:00",
		LateGraceMinutes: 10,
		MorningEnd:       "13:00",
		End:              "18:00",
	}
}

func setupTestService(now time.Time) (*Service, *mockRepository) {
	repo := newMockRepository()
	log := logger.New("error", "json", "stdout")
	svc := NewServiceWithInterfaces(repo, testWorkday(), nil, log, func() time.Time { return now })
	return svc, repo
}

func TestCheckIn_OnTime(t *testing.T) {
	svc, _ := setupTestService(time.Date(2024, 3, 4, 9, 5, 0, 0, time.UTC))
	actor := uuid.New()

	att, err := svc.CheckIn(context.Background(), actor)
	if err != nil {
		t.Fatalf("CheckIn() failed: %v", err)
	}
	if att.Status != models.AttendancePresent {
		t.Errorf("Expected status present inside the grace period, got %q", att.Status)
	}
	if !att.Date.Equal(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected date normalized to the calendar day, got %v", att.Date)
	}
}

func TestCheckIn_Late(t *testing.T) {
	// 09:11 is one minute past the 10-minute grace on a 09:00 start
	svc, _ := setupTestService(time.Date(2024, 3, 4, 9, 11, 0, 0, time.UTC))

	att, err := svc.CheckIn(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("CheckIn() failed: %v", err)
	}
	if att.Status != models.AttendanceLate {
		t.Errorf("Expected status late past the grace period, got %q", att.Status)
	}
}

func TestCheckIn_GraceBoundary(t *testing.T) {
	// Exactly 09:10 is still on time
	svc, _ := setupTestService(time.Date(2024, 3, 4, 9, 10, 0, 0, time.UTC))

	att, err := svc.CheckIn(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("CheckIn() failed: %v", err)
	}
	if att.Status != models.AttendancePresent {
		t.Errorf("Expected status present at the grace boundary, got %q", att.Status)
	}
}

func TestCheckIn_Twice(t *testing.T) {
	svc, _ := setupTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))
	actor := uuid.New()

	if _, err := svc.CheckIn(context.Background(), actor); err != nil {
		t.Fatalf("CheckIn() failed: %v", err)
	}

	_, err := svc.CheckIn(context.Background(), actor)
	if err != ErrAlreadyCheckedIn {
		t.Errorf("Expected ErrAlreadyCheckedIn, got %v", err)
	}
}

func TestCheckOut(t *testing.T) {
	now := time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)
	svc, repo := setupTestService(now)
	actor := uuid.New()

	if _, err := svc.CheckIn(context.Background(), actor); err != nil {
		t.Fatalf("CheckIn() failed: %v", err)
	}

	att, err := svc.CheckOut(context.Background(), actor)
	if err != nil {
		t.Fatalf("CheckOut() failed: %v", err)
	}
	if att.CheckOut == nil || !att.CheckOut.Equal(now) {
		t.Error("Expected check-out to be stamped")
	}

	stored, _ := repo.GetByUserAndDate(actor, now)
	if stored.CheckOut == nil {
		t.Error("Expected check-out persisted")
	}
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	svc, _ := setupTestService(time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(context.Background(), uuid.New())
	if err != ErrNotCheckedIn {
		t.Errorf("Expected ErrNotCheckedIn, got %v", err)
	}
}

func TestToday(t *testing.T) {
	svc, _ := setupTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))
	actor := uuid.New()

	got, err := svc.Today(context.Background(), actor)
	if err != nil {
		t.Fatalf("Today() failed: %v", err)
	}
	if got != nil {
		t.Error("Expected nil before check-in")
	}

	if _, err := svc.CheckIn(context.Background(), actor); err != nil {
		t.Fatalf("CheckIn() failed: %v", err)
	}

	got, err = svc.Today(context.Background(), actor)
	if err != nil {
		t.Fatalf("Today() failed: %v", err)
	}
	if got == nil {
		t.Error("Expected today's row after check-in")
	}
}
