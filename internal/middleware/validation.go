package middleware

import (
	"github.com/go-playground/validator/v10"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
)

// FormatBindingError turns a gin binding failure into the flat validation
// error the response envelope carries. Field-level validator errors keep the
// first offending field's message; malformed JSON gets the generic one.
func FormatBindingError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		return apperrors.NewValidationError(formatValidationError(validationErrors[0]))
	}
	return apperrors.NewValidationError("Solicitud inválida")
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "El campo " + e.Field() + " es requerido"
	case "email":
		return "El campo " + e.Field() + " debe ser un correo válido"
	case "min":
		return "El campo " + e.Field() + " debe ser al menos " + e.Param()
	case "max":
		return "El campo " + e.Field() + " debe ser a lo más " + e.Param()
	case "gt":
		return "El campo " + e.Field() + " debe ser mayor que " + e.Param()
	default:
		return "El campo " + e.Field() + " es inválido"
	}
}
