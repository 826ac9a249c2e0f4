package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
)

func handleInTestContext(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err)
	return recorder
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"duplicate open session", apperrors.ErrDuplicateOpenSession, http.StatusBadRequest, `{"error":"DuplicateOpenSession"}`},
		{"no open session", apperrors.ErrNoOpenSession, http.StatusBadRequest, `{"error":"NoOpenSession"}`},
		{"record not found", apperrors.ErrRecordNotFound, http.StatusNotFound, `{"error":"RecordNotFound"}`},
		{"missing observation", apperrors.ErrMissingObservation, http.StatusBadRequest, `{"error":"MissingObservation"}`},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"Credenciales incorrectas"}`},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusForbidden, `{"error":"Cuenta desactivada"}`},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, `{"error":"No autorizado"}`},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, `{"error":"Alumno no encontrado"}`},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, `{"error":"El correo ya está registrado"}`},
		{"wrapped sentinel", errors.Join(errors.New("ctx"), apperrors.ErrNoOpenSession), http.StatusBadRequest, `{"error":"NoOpenSession"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := handleInTestContext(t, tt.err)
			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
			if recorder.Body.String() != tt.wantBody {
				t.Errorf("body = %s, want %s", recorder.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandleAPIErrorValidationMessage(t *testing.T) {
	recorder := handleInTestContext(t, apperrors.NewValidationError("Contraseña requerida"))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
	if recorder.Body.String() != `{"error":"Contraseña requerida"}` {
		t.Errorf("body = %s", recorder.Body.String())
	}
}

func TestHandleAPIErrorStorageFailure(t *testing.T) {
	SetProductionMode(true)
	t.Cleanup(func() { SetProductionMode(true) })

	recorder := handleInTestContext(t, errors.New("pg: connection reset"))
	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", recorder.Code)
	}
	if recorder.Body.String() != `{"error":"Error del servidor"}` {
		t.Errorf("production body = %s, want generic message", recorder.Body.String())
	}

	SetProductionMode(false)
	recorder = handleInTestContext(t, errors.New("pg: connection reset"))
	if recorder.Body.String() != `{"error":"pg: connection reset"}` {
		t.Errorf("development body = %s, want underlying message", recorder.Body.String())
	}
}
