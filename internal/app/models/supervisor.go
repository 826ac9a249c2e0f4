package models

// Supervisor defines the service supervisor profile based on the
// 'supervisors' table, joined with its account row.
type Supervisor struct {
	AccountID int64   `json:"id_jefe" db:"account_id"`
	FullName  string  `json:"nombre_completo" db:"full_name"`
	Email     string  `json:"correo_electronico" db:"email"`
	Area      string  `json:"area" db:"area"`
	Location  *string `json:"ubicacion,omitempty" db:"location"`
	IsActive  bool    `json:"activo" db:"is_active"`

	// Joined fields (populated when needed)
	StudentCount int64 `json:"total_alumnos"`
}
