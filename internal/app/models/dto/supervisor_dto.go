package dto

import "github.com/unibecas/sibeca/internal/app/models"

// SupervisorSummary aggregates a supervisor's assigned students.
type SupervisorSummary struct {
	TotalStudents  int64   `json:"totalAlumnos" example:"8"`
	TotalHours     float64 `json:"horasTotales" example:"123.5"`
	PendingRecords int64   `json:"registrosPendientes" example:"3"`
}

// SupervisorDataResponse is the supervisor dashboard payload.
type SupervisorDataResponse struct {
	Success    bool               `json:"success"`
	Supervisor *models.Supervisor `json:"jefe"`
	Summary    *SupervisorSummary `json:"resumen"`
}

// StudentListResponse lists students (supervisor and admin views).
type StudentListResponse struct {
	Success  bool              `json:"success"`
	Students []*models.Student `json:"alumnos"`
}
