package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unibecas/sibeca/internal/app/models/dto"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
	"github.com/unibecas/sibeca/internal/pkg/logger"
)

// productionMode controls whether storage failures surface their underlying
// message or the generic one.
var productionMode = true

// SetProductionMode switches the 500 body between the generic message and the
// underlying error text. Development keeps the real message for debugging.
func SetProductionMode(production bool) {
	productionMode = production
}

// HandleAPIError maps domain errors to HTTP status codes and the flat
// {"error": "..."} bodies the page scripts expect.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateOpenSession):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("DuplicateOpenSession"))
	case errors.Is(err, apperrors.ErrNoOpenSession):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("NoOpenSession"))
	case errors.Is(err, apperrors.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("RecordNotFound"))
	case errors.Is(err, apperrors.ErrMissingObservation):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("MissingObservation"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Credenciales incorrectas"))
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Cuenta desactivada"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("No autorizado"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Alumno no encontrado"))
	case errors.Is(err, apperrors.ErrSupervisorNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Jefe no encontrado"))
	case errors.Is(err, apperrors.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Usuario no encontrado"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("El correo ya está registrado"))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorMessage(err, "Solicitud inválida")))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		if productionMode {
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Error del servidor"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
	}
}

// errorMessage prefers the CustomError message when one was attached.
func errorMessage(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
