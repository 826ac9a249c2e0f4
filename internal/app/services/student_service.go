package services

import (
	"context"

	"github.com/unibecas/sibeca/internal/app/models"
)

// studentProfileStore loads student profiles with the joined supervisor data.
type studentProfileStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// StudentService handles the student's own profile view.
type StudentService struct {
	students studentProfileStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students studentProfileStore) *StudentService {
	return &StudentService{students: students}
}

// Profile returns the student's profile with supervisor name and area.
func (s *StudentService) Profile(ctx context.Context, studentID int64) (*models.Student, error) {
	return s.students.GetByID(ctx, studentID)
}
