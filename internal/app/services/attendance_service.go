package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
	"github.com/unibecas/sibeca/internal/pkg/helpers"
)

// studentHistoryLimit caps the record list on the student's own history view.
const studentHistoryLimit = 20

// attendanceStore is the record persistence surface the lifecycle needs.
type attendanceStore interface {
	CreateOpenSession(ctx context.Context, studentID int64, supervisorID *int64, entryDate, checkIn time.Time) (int64, error)
	OpenSession(ctx context.Context, studentID int64, entryDate time.Time) (*models.AttendanceRecord, error)
	CloseSession(ctx context.Context, recordID int64, checkOut time.Time, hoursWorked float64) error
	Terminate(ctx context.Context, recordID, supervisorID int64, confirm bool, observation string) error
	PendingBySupervisor(ctx context.Context, supervisorID int64) ([]*models.AttendanceRecord, error)
	DetailForSupervisor(ctx context.Context, recordID, supervisorID int64) (*models.AttendanceRecord, error)
	ListByStudent(ctx context.Context, studentID int64, limit uint64) ([]*models.AttendanceRecord, error)
}

// supervisorResolver looks up the student's currently assigned supervisor.
type supervisorResolver interface {
	SupervisorOf(ctx context.Context, studentID int64) (*int64, error)
}

// AttendanceService drives the record lifecycle: check-in opens a record,
// check-out closes it and freezes the worked hours, and the owning supervisor
// confirms or rejects it.
type AttendanceService struct {
	records  attendanceStore
	students supervisorResolver
	now      func() time.Time
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(records attendanceStore, students supervisorResolver) *AttendanceService {
	return &AttendanceService{
		records:  records,
		students: students,
		now:      time.Now,
	}
}

// CheckIn opens today's work session for the student. The assigned supervisor
// is captured on the record at creation, so a later reassignment does not move
// already-open records.
func (s *AttendanceService) CheckIn(ctx context.Context, studentID int64) error {
	supervisorID, err := s.students.SupervisorOf(ctx, studentID)
	if err != nil {
		return err
	}

	checkIn := s.now()
	_, err = s.records.CreateOpenSession(ctx, studentID, supervisorID, helpers.DateOf(checkIn), checkIn)
	return err
}

// CheckOut closes today's open session and returns the frozen worked hours
// formatted with two decimals.
func (s *AttendanceService) CheckOut(ctx context.Context, studentID int64) (string, error) {
	checkOut := s.now()

	record, err := s.records.OpenSession(ctx, studentID, helpers.DateOf(checkOut))
	if err != nil {
		return "", err
	}

	hours := helpers.ElapsedHours(record.CheckIn, checkOut)
	if err := s.records.CloseSession(ctx, record.ID, checkOut, hours); err != nil {
		return "", err
	}

	return helpers.FormatHours(hours), nil
}

// ActiveSession returns today's open record for the student, or nil when
// there is none.
func (s *AttendanceService) ActiveSession(ctx context.Context, studentID int64) (*models.AttendanceRecord, error) {
	record, err := s.records.OpenSession(ctx, studentID, helpers.DateOf(s.now()))
	if err != nil {
		if errors.Is(err, apperrors.ErrNoOpenSession) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading active session: %w", err)
	}

	return record, nil
}

// PendingForSupervisor lists the closed records still awaiting the
// supervisor's decision, newest first.
func (s *AttendanceService) PendingForSupervisor(ctx context.Context, supervisorID int64) ([]*models.AttendanceRecord, error) {
	return s.records.PendingBySupervisor(ctx, supervisorID)
}

// RecordDetail returns one record with the student's name, career and
// semester. Records owned by another supervisor are not found.
func (s *AttendanceService) RecordDetail(ctx context.Context, recordID, supervisorID int64) (*models.AttendanceRecord, error) {
	return s.records.DetailForSupervisor(ctx, recordID, supervisorID)
}

// Resolve confirms or rejects a pending record on behalf of its supervisor.
// A rejection must carry an observation so the student learns why. The state
// flip and the hour accrual run in one transaction inside the store, so a
// confirmed record adds its hours exactly once.
func (s *AttendanceService) Resolve(ctx context.Context, recordID, supervisorID int64, confirm bool, observation string) error {
	observation = strings.TrimSpace(observation)
	if !confirm && observation == "" {
		return apperrors.ErrMissingObservation
	}

	return s.records.Terminate(ctx, recordID, supervisorID, confirm, observation)
}

// HistoryForStudent returns the student's most recent records.
func (s *AttendanceService) HistoryForStudent(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	return s.records.ListByStudent(ctx, studentID, studentHistoryLimit)
}
