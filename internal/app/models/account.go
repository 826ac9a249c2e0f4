package models

import "time"

// RoleType defines the account role. The three roles share one accounts table
// and one login path instead of the historical per-role tables.
type RoleType string

const (
	RoleStudent    RoleType = "alumno"
	RoleSupervisor RoleType = "jefe"
	RoleAdmin      RoleType = "admin"
)

// Account defines the identity row shared by students, supervisors and
// administrators, based on the 'accounts' table.
type Account struct {
	ID           int64     `json:"id" db:"id"`
	FullName     string    `json:"nombre" db:"full_name"`
	Email        string    `json:"correo" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         RoleType  `json:"tipo" db:"role"`
	IsActive     bool      `json:"activo" db:"is_active"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}
