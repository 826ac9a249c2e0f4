package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unibecas/sibeca/internal/app/models/dto"
	"github.com/unibecas/sibeca/internal/app/services"
	"github.com/unibecas/sibeca/internal/middleware"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
)

// AdminController handles people management and the global dashboard.
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Summary returns the global dashboard
// @Summary Global summary
// @Description Returns program-wide counters and the latest records
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminSummaryResponse "Counters and latest records"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Router /api/admin/resumen [get]
func (c *AdminController) Summary(ctx *gin.Context) {
	summary, latest, err := c.adminService.Summary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminSummaryResponse{
		Success:       true,
		Summary:       summary,
		LatestRecords: latest,
	})
}

// Students lists every student
// @Summary Student roster
// @Description Lists every student with the assigned supervisor's name
// @Tags admin
// @Produce json
// @Success 200 {object} dto.StudentListResponse "Students"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Router /api/admin/alumnos [get]
func (c *AdminController) Students(ctx *gin.Context) {
	students, err := c.adminService.Students(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{Success: true, Students: students})
}

// StudentDetail returns one student
// @Summary Student detail
// @Description Returns one student's full profile
// @Tags admin
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.StudentDetailResponse "Student"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /api/admin/alumno/{id} [get]
func (c *AdminController) StudentDetail(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Identificador de alumno inválido"))
		return
	}

	student, err := c.adminService.StudentDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentDetailResponse{Success: true, Student: student})
}

// SaveStudent creates or updates a student
// @Summary Save student
// @Description Creates a student (id_alumno absent, password required) or updates one
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.SaveStudentRequest true "Student data"
// @Success 200 {object} dto.SuccessResponse "Student saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate email"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /api/admin/alumno [post]
func (c *AdminController) SaveStudent(ctx *gin.Context) {
	var req dto.SaveStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.FormatBindingError(err))
		return
	}

	if err := c.adminService.SaveStudent(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(""))
}

// Supervisors lists every supervisor
// @Summary Supervisor roster
// @Description Lists every supervisor with the active student counts
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SupervisorListResponse "Supervisors"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Router /api/admin/jefes [get]
func (c *AdminController) Supervisors(ctx *gin.Context) {
	supervisors, err := c.adminService.Supervisors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SupervisorListResponse{Success: true, Supervisors: supervisors})
}

// SupervisorDetail returns one supervisor
// @Summary Supervisor detail
// @Description Returns one supervisor's profile
// @Tags admin
// @Produce json
// @Param id path int true "Supervisor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SupervisorDetailResponse "Supervisor"
// @Failure 400 {object} dto.ErrorResponse "Invalid supervisor ID"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 404 {object} dto.ErrorResponse "Supervisor not found"
// @Router /api/admin/jefe/{id} [get]
func (c *AdminController) SupervisorDetail(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Identificador de jefe inválido"))
		return
	}

	supervisor, err := c.adminService.SupervisorDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SupervisorDetailResponse{Success: true, Supervisor: supervisor})
}

// SaveSupervisor creates or updates a supervisor
// @Summary Save supervisor
// @Description Creates a supervisor (id_jefe absent, password required) or updates one
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.SaveSupervisorRequest true "Supervisor data"
// @Success 200 {object} dto.SuccessResponse "Supervisor saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate email"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 404 {object} dto.ErrorResponse "Supervisor not found"
// @Router /api/admin/jefe [post]
func (c *AdminController) SaveSupervisor(ctx *gin.Context) {
	var req dto.SaveSupervisorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.FormatBindingError(err))
		return
	}

	if err := c.adminService.SaveSupervisor(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(""))
}

// ToggleStudent flips a student account's active flag
// @Summary Toggle student
// @Description Activates or deactivates a student account
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.ToggleAccountRequest true "Toggle payload"
// @Success 200 {object} dto.SuccessResponse "Flag updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /api/admin/toggle-alumno [post]
func (c *AdminController) ToggleStudent(ctx *gin.Context) {
	var req dto.ToggleAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.FormatBindingError(err))
		return
	}
	if req.StudentID == 0 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("El campo id_alumno es requerido"))
		return
	}

	if err := c.adminService.ToggleStudent(ctx, req.StudentID, *req.Active); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(""))
}

// ToggleSupervisor flips a supervisor account's active flag
// @Summary Toggle supervisor
// @Description Activates or deactivates a supervisor account
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.ToggleAccountRequest true "Toggle payload"
// @Success 200 {object} dto.SuccessResponse "Flag updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 404 {object} dto.ErrorResponse "Supervisor not found"
// @Router /api/admin/toggle-jefe [post]
func (c *AdminController) ToggleSupervisor(ctx *gin.Context) {
	var req dto.ToggleAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.FormatBindingError(err))
		return
	}
	if req.SupervisorID == 0 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("El campo id_jefe es requerido"))
		return
	}

	if err := c.adminService.ToggleSupervisor(ctx, req.SupervisorID, *req.Active); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(""))
}
