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

// AttendanceController handles the record lifecycle endpoints on both sides:
// the student's check-in/check-out and the supervisor's decisions.
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// CheckIn opens today's work session
// @Summary Check in
// @Description Opens today's work session for the logged-in student
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.SuccessResponse "Session opened"
// @Failure 400 {object} dto.ErrorResponse "Open session already exists"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not a student"
// @Router /checkin [post]
func (c *AttendanceController) CheckIn(ctx *gin.Context) {
	studentID, ok := middleware.CurrentAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	if err := c.attendanceService.CheckIn(ctx, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(""))
}

// CheckOut closes today's work session
// @Summary Check out
// @Description Closes today's open session and returns the frozen hours
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.CheckoutResponse "Session closed"
// @Failure 400 {object} dto.ErrorResponse "No open session"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not a student"
// @Router /checkout [post]
func (c *AttendanceController) CheckOut(ctx *gin.Context) {
	studentID, ok := middleware.CurrentAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	hours, err := c.attendanceService.CheckOut(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CheckoutResponse{Success: true, Hours: hours})
}

// ActiveSession reports today's open session
// @Summary Active session
// @Description Reports whether the logged-in student has an open session today
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.ActiveSessionResponse "Open session or null"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not a student"
// @Router /sesion-activa [get]
func (c *AttendanceController) ActiveSession(ctx *gin.Context) {
	studentID, ok := middleware.CurrentAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	record, err := c.attendanceService.ActiveSession(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ActiveSessionResponse{
		SessionActive: record != nil,
		Record:        record,
	})
}

// History lists the student's recent records
// @Summary Attendance history
// @Description Lists the logged-in student's most recent records
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.AttendanceHistoryResponse "Recent records"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not a student"
// @Router /api/alumno/asistencias [get]
func (c *AttendanceController) History(ctx *gin.Context) {
	studentID, ok := middleware.CurrentAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	records, err := c.attendanceService.HistoryForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AttendanceHistoryResponse{Success: true, Records: records})
}

// PendingRecords lists records awaiting a decision
// @Summary Pending records
// @Description Lists closed records awaiting the logged-in supervisor's decision
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.PendingRecordsResponse "Pending records"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not a supervisor"
// @Router /registros-pendientes [get]
func (c *AttendanceController) PendingRecords(ctx *gin.Context) {
	supervisorID, ok := middleware.CurrentAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	records, err := c.attendanceService.PendingForSupervisor(ctx, supervisorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PendingRecordsResponse{Success: true, Records: records})
}

// RecordDetail shows one record
// @Summary Record detail
// @Description Shows one record with the student's name, career and semester
// @Tags attendance
// @Produce json
// @Param id path int true "Record ID" Format(int64) minimum(1)
// @Success 200 {object} dto.RecordDetailResponse "Record detail"
// @Failure 400 {object} dto.ErrorResponse "Invalid record ID"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not a supervisor"
// @Failure 404 {object} dto.ErrorResponse "Record not found or foreign"
// @Router /registro/{id} [get]
func (c *AttendanceController) RecordDetail(ctx *gin.Context) {
	supervisorID, ok := middleware.CurrentAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	recordID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Identificador de registro inválido"))
		return
	}

	record, err := c.attendanceService.RecordDetail(ctx, recordID, supervisorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RecordDetailResponse{Success: true, Record: record})
}

// ResolveRecord confirms or rejects a pending record
// @Summary Confirm or reject a record
// @Description Confirms a pending record (accruing its hours once) or rejects it with an observation
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.ResolveRecordRequest true "Decision"
// @Success 200 {object} dto.SuccessResponse "Record resolved"
// @Failure 400 {object} dto.ErrorResponse "Missing observation or invalid request"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Not a supervisor"
// @Failure 404 {object} dto.ErrorResponse "Record not found, foreign or already resolved"
// @Router /confirmar-registro [post]
func (c *AttendanceController) ResolveRecord(ctx *gin.Context) {
	supervisorID, ok := middleware.CurrentAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	var req dto.ResolveRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.FormatBindingError(err))
		return
	}

	if err := c.attendanceService.Resolve(ctx, req.RecordID, supervisorID, *req.Confirm, req.Observations); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(""))
}
