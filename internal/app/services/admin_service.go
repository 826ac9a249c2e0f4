package services

import (
	"context"
	"fmt"

	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/app/models/dto"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
	"github.com/unibecas/sibeca/internal/pkg/auth"
)

// latestRecordsLimit caps the record feed on the admin dashboard.
const latestRecordsLimit = 10

// adminStudentStore is the student management surface the admin needs.
type adminStudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	ListAll(ctx context.Context) ([]*models.Student, error)
	Create(ctx context.Context, student *models.Student, passwordHash string) (int64, error)
	Update(ctx context.Context, student *models.Student, passwordHash *string) error
	CountActive(ctx context.Context) (int64, error)
	SumHoursCompleted(ctx context.Context) (float64, error)
}

// adminSupervisorStore is the supervisor management surface the admin needs.
type adminSupervisorStore interface {
	GetByID(ctx context.Context, id int64) (*models.Supervisor, error)
	ListAllWithCounts(ctx context.Context) ([]*models.Supervisor, error)
	Create(ctx context.Context, supervisor *models.Supervisor, passwordHash string) (int64, error)
	Update(ctx context.Context, supervisor *models.Supervisor, passwordHash *string) error
	CountActive(ctx context.Context) (int64, error)
}

// accountToggler flips the active flag on a role-checked account.
type accountToggler interface {
	SetActive(ctx context.Context, id int64, role models.RoleType, active bool) error
}

// recordFeedStore supplies the dashboard's global record feed and counters.
type recordFeedStore interface {
	ListLatest(ctx context.Context, limit uint64) ([]*models.AttendanceRecord, error)
	CountPending(ctx context.Context) (int64, error)
}

// AdminService handles people management and global reporting.
type AdminService struct {
	students    adminStudentStore
	supervisors adminSupervisorStore
	accounts    accountToggler
	records     recordFeedStore
}

// NewAdminService creates a new admin service instance
func NewAdminService(students adminStudentStore, supervisors adminSupervisorStore, accounts accountToggler, records recordFeedStore) *AdminService {
	return &AdminService{
		students:    students,
		supervisors: supervisors,
		accounts:    accounts,
		records:     records,
	}
}

// Summary composes the global counters and the latest records for the admin
// dashboard.
func (s *AdminService) Summary(ctx context.Context) (*dto.AdminSummary, []*models.AttendanceRecord, error) {
	totalStudents, err := s.students.CountActive(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error counting students: %w", err)
	}

	totalSupervisors, err := s.supervisors.CountActive(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error counting supervisors: %w", err)
	}

	totalHours, err := s.students.SumHoursCompleted(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error summing hours: %w", err)
	}

	totalPending, err := s.records.CountPending(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error counting pending records: %w", err)
	}

	latest, err := s.records.ListLatest(ctx, latestRecordsLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing latest records: %w", err)
	}

	summary := &dto.AdminSummary{
		TotalStudents:    totalStudents,
		TotalSupervisors: totalSupervisors,
		TotalHours:       totalHours,
		TotalPending:     totalPending,
	}

	return summary, latest, nil
}

// Students lists every student with the assigned supervisor's name.
func (s *AdminService) Students(ctx context.Context) ([]*models.Student, error) {
	return s.students.ListAll(ctx)
}

// StudentDetail returns one student's full profile.
func (s *AdminService) StudentDetail(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// Supervisors lists every supervisor with the active student counts.
func (s *AdminService) Supervisors(ctx context.Context) ([]*models.Supervisor, error) {
	return s.supervisors.ListAllWithCounts(ctx)
}

// SupervisorDetail returns one supervisor's profile.
func (s *AdminService) SupervisorDetail(ctx context.Context, id int64) (*models.Supervisor, error) {
	return s.supervisors.GetByID(ctx, id)
}

// SaveStudent creates or updates a student. A create requires a password; an
// update rehashes the password only when one is supplied. The accrued hours
// total is never written through this path.
func (s *AdminService) SaveStudent(ctx context.Context, req *dto.SaveStudentRequest) error {
	student := &models.Student{
		FullName:              req.FullName,
		Email:                 req.Email,
		Career:                req.Career,
		Semester:              req.Semester,
		GPA:                   req.GPA,
		ScholarshipType:       req.ScholarshipType,
		ScholarshipPercentage: req.ScholarshipPercentage,
		RequiredHours:         req.RequiredHours,
		SupervisorID:          req.SupervisorID,
	}

	if req.StudentID == 0 {
		if req.Password == "" {
			return apperrors.NewValidationError("Contraseña requerida")
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		_, err = s.students.Create(ctx, student, hash)
		return err
	}

	student.AccountID = req.StudentID
	var passwordHash *string
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		passwordHash = &hash
	}

	return s.students.Update(ctx, student, passwordHash)
}

// SaveSupervisor creates or updates a supervisor, with the same password
// rules as SaveStudent.
func (s *AdminService) SaveSupervisor(ctx context.Context, req *dto.SaveSupervisorRequest) error {
	supervisor := &models.Supervisor{
		FullName: req.FullName,
		Email:    req.Email,
		Area:     req.Area,
		Location: req.Location,
	}

	if req.SupervisorID == 0 {
		if req.Password == "" {
			return apperrors.NewValidationError("Contraseña requerida")
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		_, err = s.supervisors.Create(ctx, supervisor, hash)
		return err
	}

	supervisor.AccountID = req.SupervisorID
	var passwordHash *string
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		passwordHash = &hash
	}

	return s.supervisors.Update(ctx, supervisor, passwordHash)
}

// ToggleStudent flips a student account's active flag.
func (s *AdminService) ToggleStudent(ctx context.Context, id int64, active bool) error {
	return s.accounts.SetActive(ctx, id, models.RoleStudent, active)
}

// ToggleSupervisor flips a supervisor account's active flag.
func (s *AdminService) ToggleSupervisor(ctx context.Context, id int64, active bool) error {
	return s.accounts.SetActive(ctx, id, models.RoleSupervisor, active)
}
