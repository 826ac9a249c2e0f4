package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unibecas/sibeca/internal/app/models/dto"
	"github.com/unibecas/sibeca/internal/app/services"
	"github.com/unibecas/sibeca/internal/middleware"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
)

// SupervisorController handles the supervisor's own dashboard data.
type SupervisorController struct {
	supervisorService *services.SupervisorService
}

// NewSupervisorController creates a new SupervisorController
func NewSupervisorController(supervisorService *services.SupervisorService) *SupervisorController {
	return &SupervisorController{
		supervisorService: supervisorService,
	}
}

// Profile returns the supervisor's dashboard data
// @Summary Supervisor profile
// @Description Returns the logged-in supervisor's profile with the dashboard summary
// @Tags supervisors
// @Produce json
// @Success 200 {object} dto.SupervisorDataResponse "Profile and summary"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not a supervisor"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /api/jefe/datos [get]
func (c *SupervisorController) Profile(ctx *gin.Context) {
	supervisorID, ok := middleware.CurrentAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	supervisor, summary, err := c.supervisorService.Profile(ctx, supervisorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SupervisorDataResponse{
		Success:    true,
		Supervisor: supervisor,
		Summary:    summary,
	})
}

// Students lists the supervisor's active students
// @Summary Assigned students
// @Description Lists the active students assigned to the logged-in supervisor
// @Tags supervisors
// @Produce json
// @Success 200 {object} dto.StudentListResponse "Assigned students"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not a supervisor"
// @Router /api/jefe/alumnos [get]
func (c *SupervisorController) Students(ctx *gin.Context) {
	supervisorID, ok := middleware.CurrentAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	students, err := c.supervisorService.Students(ctx, supervisorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{Success: true, Students: students})
}
