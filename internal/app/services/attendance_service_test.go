package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
)

type fakeAttendanceStore struct {
	open *models.AttendanceRecord

	createErr error
	closeErr  error

	createdStudentID    int64
	createdSupervisorID *int64
	createdEntryDate    time.Time
	createdCheckIn      time.Time

	closedRecordID int64
	closedAt       time.Time
	closedHours    float64

	terminated            bool
	terminatedRecordID    int64
	terminatedSupervisor  int64
	terminatedConfirm     bool
	terminatedObservation string
	terminateErr          error
}

func (f *fakeAttendanceStore) CreateOpenSession(_ context.Context, studentID int64, supervisorID *int64, entryDate, checkIn time.Time) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.createdStudentID = studentID
	f.createdSupervisorID = supervisorID
	f.createdEntryDate = entryDate
	f.createdCheckIn = checkIn
	return 1, nil
}

func (f *fakeAttendanceStore) OpenSession(_ context.Context, studentID int64, entryDate time.Time) (*models.AttendanceRecord, error) {
	if f.open == nil {
		return nil, apperrors.ErrNoOpenSession
	}
	return f.open, nil
}

func (f *fakeAttendanceStore) CloseSession(_ context.Context, recordID int64, checkOut time.Time, hoursWorked float64) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	f.closedRecordID = recordID
	f.closedAt = checkOut
	f.closedHours = hoursWorked
	return nil
}

func (f *fakeAttendanceStore) Terminate(_ context.Context, recordID, supervisorID int64, confirm bool, observation string) error {
	if f.terminateErr != nil {
		return f.terminateErr
	}
	f.terminated = true
	f.terminatedRecordID = recordID
	f.terminatedSupervisor = supervisorID
	f.terminatedConfirm = confirm
	f.terminatedObservation = observation
	return nil
}

func (f *fakeAttendanceStore) PendingBySupervisor(_ context.Context, supervisorID int64) ([]*models.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceStore) DetailForSupervisor(_ context.Context, recordID, supervisorID int64) (*models.AttendanceRecord, error) {
	return nil, apperrors.ErrRecordNotFound
}

func (f *fakeAttendanceStore) ListByStudent(_ context.Context, studentID int64, limit uint64) ([]*models.AttendanceRecord, error) {
	return nil, nil
}

type fakeSupervisorResolver struct {
	supervisorID *int64
	err          error
}

func (f *fakeSupervisorResolver) SupervisorOf(_ context.Context, studentID int64) (*int64, error) {
	return f.supervisorID, f.err
}

func newTestAttendanceService(store *fakeAttendanceStore, resolver *fakeSupervisorResolver, now time.Time) *AttendanceService {
	return &AttendanceService{
		records:  store,
		students: resolver,
		now:      func() time.Time { return now },
	}
}

func TestCheckInCapturesSupervisorAndDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	supervisorID := int64(7)
	store := &fakeAttendanceStore{}
	svc := newTestAttendanceService(store, &fakeSupervisorResolver{supervisorID: &supervisorID}, now)

	if err := svc.CheckIn(context.Background(), 42); err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}

	if store.createdStudentID != 42 {
		t.Errorf("student ID = %d, want 42", store.createdStudentID)
	}
	if store.createdSupervisorID == nil || *store.createdSupervisorID != 7 {
		t.Errorf("supervisor ID = %v, want 7", store.createdSupervisorID)
	}
	wantDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !store.createdEntryDate.Equal(wantDate) {
		t.Errorf("entry date = %v, want %v", store.createdEntryDate, wantDate)
	}
	if !store.createdCheckIn.Equal(now) {
		t.Errorf("check-in = %v, want %v", store.createdCheckIn, now)
	}
}

func TestCheckInDuplicateOpenSession(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := &fakeAttendanceStore{createErr: apperrors.ErrDuplicateOpenSession}
	svc := newTestAttendanceService(store, &fakeSupervisorResolver{}, now)

	err := svc.CheckIn(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrDuplicateOpenSession) {
		t.Errorf("CheckIn() error = %v, want ErrDuplicateOpenSession", err)
	}
}

func TestCheckInUnknownStudent(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := &fakeAttendanceStore{}
	svc := newTestAttendanceService(store, &fakeSupervisorResolver{err: apperrors.ErrStudentNotFound}, now)

	err := svc.CheckIn(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("CheckIn() error = %v, want ErrStudentNotFound", err)
	}
	if store.createdStudentID != 0 {
		t.Error("CheckIn() created a record for an unknown student")
	}
}

func TestCheckOutFreezesHours(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(4*time.Hour + 30*time.Minute)
	store := &fakeAttendanceStore{
		open: &models.AttendanceRecord{ID: 11, StudentID: 42, CheckIn: checkIn},
	}
	svc := newTestAttendanceService(store, &fakeSupervisorResolver{}, checkOut)

	hours, err := svc.CheckOut(context.Background(), 42)
	if err != nil {
		t.Fatalf("CheckOut() error = %v", err)
	}

	if hours != "4.50" {
		t.Errorf("hours = %q, want \"4.50\"", hours)
	}
	if store.closedRecordID != 11 {
		t.Errorf("closed record = %d, want 11", store.closedRecordID)
	}
	if store.closedHours != 4.5 {
		t.Errorf("frozen hours = %v, want 4.5", store.closedHours)
	}
	if !store.closedAt.Equal(checkOut) {
		t.Errorf("check-out = %v, want %v", store.closedAt, checkOut)
	}
}

func TestCheckOutWithoutOpenSession(t *testing.T) {
	now := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	svc := newTestAttendanceService(&fakeAttendanceStore{}, &fakeSupervisorResolver{}, now)

	_, err := svc.CheckOut(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrNoOpenSession) {
		t.Errorf("CheckOut() error = %v, want ErrNoOpenSession", err)
	}
}

func TestCheckOutRaceLosesToGuard(t *testing.T) {
	// The open record was found, but another request closed it first. The
	// guarded UPDATE reports no rows and the service passes that through.
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := &fakeAttendanceStore{
		open:     &models.AttendanceRecord{ID: 11, StudentID: 42, CheckIn: checkIn},
		closeErr: apperrors.ErrNoOpenSession,
	}
	svc := newTestAttendanceService(store, &fakeSupervisorResolver{}, checkIn.Add(time.Hour))

	_, err := svc.CheckOut(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrNoOpenSession) {
		t.Errorf("CheckOut() error = %v, want ErrNoOpenSession", err)
	}
}

func TestActiveSessionNone(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestAttendanceService(&fakeAttendanceStore{}, &fakeSupervisorResolver{}, now)

	record, err := svc.ActiveSession(context.Background(), 42)
	if err != nil {
		t.Fatalf("ActiveSession() error = %v", err)
	}
	if record != nil {
		t.Errorf("ActiveSession() = %v, want nil", record)
	}
}

func TestResolveRejectRequiresObservation(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := &fakeAttendanceStore{}
	svc := newTestAttendanceService(store, &fakeSupervisorResolver{}, now)

	err := svc.Resolve(context.Background(), 11, 7, false, "   ")
	if !errors.Is(err, apperrors.ErrMissingObservation) {
		t.Fatalf("Resolve() error = %v, want ErrMissingObservation", err)
	}
	if store.terminated {
		t.Error("Resolve() reached the store despite the missing observation")
	}
}

func TestResolveConfirmAllowsEmptyObservation(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := &fakeAttendanceStore{}
	svc := newTestAttendanceService(store, &fakeSupervisorResolver{}, now)

	if err := svc.Resolve(context.Background(), 11, 7, true, ""); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if !store.terminated || !store.terminatedConfirm {
		t.Error("Resolve() did not confirm the record")
	}
	if store.terminatedRecordID != 11 || store.terminatedSupervisor != 7 {
		t.Errorf("Resolve() scoped to record %d supervisor %d, want 11 and 7",
			store.terminatedRecordID, store.terminatedSupervisor)
	}
}

func TestResolveTerminalRecord(t *testing.T) {
	// A repeat decision, a foreign record and a missing record all surface
	// the same way from the store.
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := &fakeAttendanceStore{terminateErr: apperrors.ErrRecordNotFound}
	svc := newTestAttendanceService(store, &fakeSupervisorResolver{}, now)

	err := svc.Resolve(context.Background(), 11, 7, true, "")
	if !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Errorf("Resolve() error = %v, want ErrRecordNotFound", err)
	}
}

func TestResolveTrimsObservation(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := &fakeAttendanceStore{}
	svc := newTestAttendanceService(store, &fakeSupervisorResolver{}, now)

	if err := svc.Resolve(context.Background(), 11, 7, false, "  llegó tarde  "); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if store.terminatedObservation != "llegó tarde" {
		t.Errorf("observation = %q, want trimmed value", store.terminatedObservation)
	}
}
