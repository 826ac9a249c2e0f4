package dto

import "github.com/unibecas/sibeca/internal/app/models"

// AdminSummary aggregates the whole program for the admin dashboard.
type AdminSummary struct {
	TotalStudents    int64   `json:"totalAlumnos" example:"40"`
	TotalSupervisors int64   `json:"totalJefes" example:"6"`
	TotalHours       float64 `json:"totalHoras" example:"950.25"`
	TotalPending     int64   `json:"totalPendientes" example:"12"`
}

// AdminSummaryResponse is the admin dashboard payload.
type AdminSummaryResponse struct {
	Success       bool                       `json:"success"`
	Summary       *AdminSummary              `json:"resumen"`
	LatestRecords []*models.AttendanceRecord `json:"ultimosRegistros"`
}

// SupervisorListResponse lists supervisors with their student counts.
type SupervisorListResponse struct {
	Success     bool                 `json:"success"`
	Supervisors []*models.Supervisor `json:"jefes"`
}

// SupervisorDetailResponse carries one supervisor profile.
type SupervisorDetailResponse struct {
	Success    bool               `json:"success"`
	Supervisor *models.Supervisor `json:"jefe"`
}

// StudentDetailResponse carries one student profile.
type StudentDetailResponse struct {
	Success bool            `json:"success"`
	Student *models.Student `json:"alumno"`
}

// SaveStudentRequest creates a student when StudentID is zero and updates it
// otherwise. Password is mandatory on create only. The scholarship percentage
// and the required hour target are separate fields.
type SaveStudentRequest struct {
	StudentID             int64    `json:"id_alumno"`
	FullName              string   `json:"nombre_completo" binding:"required"`
	Email                 string   `json:"correo_electronico" binding:"required,email"`
	Career                string   `json:"carrera" binding:"required"`
	Semester              int      `json:"semestre" binding:"required,min=1"`
	GPA                   *float64 `json:"promedio"`
	ScholarshipType       *string  `json:"tipo_beca"`
	ScholarshipPercentage int      `json:"porcentaje_beca" binding:"required,min=1,max=100"`
	RequiredHours         float64  `json:"total_horas" binding:"required,gt=0"`
	SupervisorID          *int64   `json:"id_jefe"`
	Password              string   `json:"password"`
}

// SaveSupervisorRequest creates a supervisor when SupervisorID is zero and
// updates it otherwise. Password is mandatory on create only.
type SaveSupervisorRequest struct {
	SupervisorID int64   `json:"id_jefe"`
	FullName     string  `json:"nombre_completo" binding:"required"`
	Email        string  `json:"correo_electronico" binding:"required,email"`
	Area         string  `json:"area" binding:"required"`
	Location     *string `json:"ubicacion"`
	Password     string  `json:"password"`
}

// ToggleAccountRequest flips an account's active flag.
type ToggleAccountRequest struct {
	StudentID    int64 `json:"id_alumno"`
	SupervisorID int64 `json:"id_jefe"`
	Active       *bool `json:"activo" binding:"required"`
}
