package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/app/services"
	"github.com/unibecas/sibeca/internal/middleware"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
)

type stubRecordStore struct {
	createErr    error
	open         *models.AttendanceRecord
	terminateErr error
	pending      []*models.AttendanceRecord
}

func (s *stubRecordStore) CreateOpenSession(_ context.Context, studentID int64, supervisorID *int64, entryDate, checkIn time.Time) (int64, error) {
	return 1, s.createErr
}

func (s *stubRecordStore) OpenSession(_ context.Context, studentID int64, entryDate time.Time) (*models.AttendanceRecord, error) {
	if s.open == nil {
		return nil, apperrors.ErrNoOpenSession
	}
	return s.open, nil
}

func (s *stubRecordStore) CloseSession(_ context.Context, recordID int64, checkOut time.Time, hoursWorked float64) error {
	return nil
}

func (s *stubRecordStore) Terminate(_ context.Context, recordID, supervisorID int64, confirm bool, observation string) error {
	return s.terminateErr
}

func (s *stubRecordStore) PendingBySupervisor(_ context.Context, supervisorID int64) ([]*models.AttendanceRecord, error) {
	return s.pending, nil
}

func (s *stubRecordStore) DetailForSupervisor(_ context.Context, recordID, supervisorID int64) (*models.AttendanceRecord, error) {
	return nil, apperrors.ErrRecordNotFound
}

func (s *stubRecordStore) ListByStudent(_ context.Context, studentID int64, limit uint64) ([]*models.AttendanceRecord, error) {
	return nil, nil
}

type stubResolver struct{}

func (stubResolver) SupervisorOf(_ context.Context, studentID int64) (*int64, error) {
	return nil, nil
}

func serveAuthenticated(method, path, body string, accountID int64, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, accountID)
	})
	router.Handle(method, path, handler)

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCheckInSuccessBody(t *testing.T) {
	controller := NewAttendanceController(services.NewAttendanceService(&stubRecordStore{}, stubResolver{}))

	recorder := serveAuthenticated(http.MethodPost, "/checkin", "", 42, controller.CheckIn)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if recorder.Body.String() != `{"success":true}` {
		t.Errorf("body = %s, want {\"success\":true}", recorder.Body.String())
	}
}

func TestCheckInDuplicateBody(t *testing.T) {
	store := &stubRecordStore{createErr: apperrors.ErrDuplicateOpenSession}
	controller := NewAttendanceController(services.NewAttendanceService(store, stubResolver{}))

	recorder := serveAuthenticated(http.MethodPost, "/checkin", "", 42, controller.CheckIn)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
	if recorder.Body.String() != `{"error":"DuplicateOpenSession"}` {
		t.Errorf("body = %s", recorder.Body.String())
	}
}

func TestCheckOutWithoutSessionBody(t *testing.T) {
	controller := NewAttendanceController(services.NewAttendanceService(&stubRecordStore{}, stubResolver{}))

	recorder := serveAuthenticated(http.MethodPost, "/checkout", "", 42, controller.CheckOut)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
	if recorder.Body.String() != `{"error":"NoOpenSession"}` {
		t.Errorf("body = %s", recorder.Body.String())
	}
}

func TestActiveSessionNoneBody(t *testing.T) {
	controller := NewAttendanceController(services.NewAttendanceService(&stubRecordStore{}, stubResolver{}))

	recorder := serveAuthenticated(http.MethodGet, "/sesion-activa", "", 42, controller.ActiveSession)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if recorder.Body.String() != `{"sesionActiva":false,"registro":null}` {
		t.Errorf("body = %s", recorder.Body.String())
	}
}

func TestResolveRecordMissingObservationBody(t *testing.T) {
	controller := NewAttendanceController(services.NewAttendanceService(&stubRecordStore{}, stubResolver{}))

	body := `{"id_registro":12,"confirmar":false}`
	recorder := serveAuthenticated(http.MethodPost, "/confirmar-registro", body, 7, controller.ResolveRecord)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
	if recorder.Body.String() != `{"error":"MissingObservation"}` {
		t.Errorf("body = %s", recorder.Body.String())
	}
}

func TestResolveRecordTerminalBody(t *testing.T) {
	store := &stubRecordStore{terminateErr: apperrors.ErrRecordNotFound}
	controller := NewAttendanceController(services.NewAttendanceService(store, stubResolver{}))

	body := `{"id_registro":12,"confirmar":true}`
	recorder := serveAuthenticated(http.MethodPost, "/confirmar-registro", body, 7, controller.ResolveRecord)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", recorder.Code)
	}
	if recorder.Body.String() != `{"error":"RecordNotFound"}` {
		t.Errorf("body = %s", recorder.Body.String())
	}
}
