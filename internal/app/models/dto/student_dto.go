package dto

import "github.com/unibecas/sibeca/internal/app/models"

// StudentData is a student profile enriched with the completion percentage
// derived from confirmed hours.
type StudentData struct {
	models.Student
	CompletionPercentage int `json:"porcentaje_completado" example:"45"`
}

// StudentDataResponse is the student dashboard payload.
type StudentDataResponse struct {
	Success bool         `json:"success"`
	Student *StudentData `json:"alumno"`
}

// NewStudentData builds the enriched profile from a student model.
func NewStudentData(s *models.Student) *StudentData {
	return &StudentData{
		Student:              *s,
		CompletionPercentage: s.CompletionPercentage(),
	}
}
