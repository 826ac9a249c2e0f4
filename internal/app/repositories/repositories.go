package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository    *AccountRepository
	StudentRepository    *StudentRepository
	SupervisorRepository *SupervisorRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AccountRepository:    NewAccountRepository(db),
		StudentRepository:    NewStudentRepository(db),
		SupervisorRepository: NewSupervisorRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
	}
}
