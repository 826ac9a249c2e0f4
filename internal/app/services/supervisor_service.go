package services

import (
	"context"
	"fmt"

	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/app/models/dto"
)

// supervisorProfileStore loads supervisor profiles and their dashboard totals.
type supervisorProfileStore interface {
	GetByID(ctx context.Context, id int64) (*models.Supervisor, error)
	Summary(ctx context.Context, supervisorID int64) (totalStudents int64, totalHours float64, pendingRecords int64, err error)
}

// assignedStudentLister lists the active students assigned to a supervisor.
type assignedStudentLister interface {
	ListBySupervisor(ctx context.Context, supervisorID int64) ([]*models.Student, error)
}

// SupervisorService handles the supervisor's own dashboard views.
type SupervisorService struct {
	supervisors supervisorProfileStore
	students    assignedStudentLister
}

// NewSupervisorService creates a new supervisor service instance
func NewSupervisorService(supervisors supervisorProfileStore, students assignedStudentLister) *SupervisorService {
	return &SupervisorService{
		supervisors: supervisors,
		students:    students,
	}
}

// Profile returns the supervisor's profile with the dashboard summary: active
// assigned students, their accrued hours and the pending decision count.
func (s *SupervisorService) Profile(ctx context.Context, supervisorID int64) (*models.Supervisor, *dto.SupervisorSummary, error) {
	supervisor, err := s.supervisors.GetByID(ctx, supervisorID)
	if err != nil {
		return nil, nil, err
	}

	totalStudents, totalHours, pendingRecords, err := s.supervisors.Summary(ctx, supervisorID)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading supervisor summary: %w", err)
	}

	supervisor.StudentCount = totalStudents
	summary := &dto.SupervisorSummary{
		TotalStudents:  totalStudents,
		TotalHours:     totalHours,
		PendingRecords: pendingRecords,
	}

	return supervisor, summary, nil
}

// Students lists the active students assigned to the supervisor.
func (s *SupervisorService) Students(ctx context.Context, supervisorID int64) ([]*models.Student, error) {
	return s.students.ListBySupervisor(ctx, supervisorID)
}
