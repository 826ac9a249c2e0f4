package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unibecas/sibeca/internal/app/models/dto"
	"github.com/unibecas/sibeca/internal/app/services"
	"github.com/unibecas/sibeca/internal/middleware"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
)

// StudentController handles the student's own dashboard data.
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// Profile returns the student's dashboard data
// @Summary Student profile
// @Description Returns the logged-in student's profile with supervisor name, area and completion percentage
// @Tags students
// @Produce json
// @Success 200 {object} dto.StudentDataResponse "Profile"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not a student"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /api/alumno/datos [get]
func (c *StudentController) Profile(ctx *gin.Context) {
	studentID, ok := middleware.CurrentAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	student, err := c.studentService.Profile(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentDataResponse{
		Success: true,
		Student: dto.NewStudentData(student),
	})
}
