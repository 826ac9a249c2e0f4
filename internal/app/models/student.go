package models

// Student defines the student profile based on the 'students' table, joined
// with its account row. The historical porcentaje_beca field conflated the
// scholarship percentage with the required hour target; they are stored
// separately here.
type Student struct {
	AccountID             int64    `json:"id_alumno" db:"account_id"`
	FullName              string   `json:"nombre_completo" db:"full_name"`
	Email                 string   `json:"correo_electronico" db:"email"`
	Career                string   `json:"carrera" db:"career"`
	Semester              int      `json:"semestre" db:"semester"`
	GPA                   *float64 `json:"promedio,omitempty" db:"gpa"`
	ScholarshipType       *string  `json:"tipo_beca,omitempty" db:"scholarship_type"`
	ScholarshipPercentage int      `json:"porcentaje_beca" db:"scholarship_percentage"`
	RequiredHours         float64  `json:"total_horas" db:"required_hours"`
	HoursCompleted        float64  `json:"horas_hechas" db:"hours_completed"`
	SupervisorID          *int64   `json:"id_jefe,omitempty" db:"supervisor_id"`
	IsActive              bool     `json:"activo" db:"is_active"`

	// Joined fields (populated when needed)
	SupervisorName *string `json:"jefe_nombre,omitempty"`
	SupervisorArea *string `json:"area,omitempty"`
}

// CompletionPercentage returns the share of the required hours already
// confirmed, as a whole percentage.
func (s *Student) CompletionPercentage() int {
	if s.RequiredHours <= 0 {
		return 0
	}
	return int(s.HoursCompleted/s.RequiredHours*100 + 0.5)
}
