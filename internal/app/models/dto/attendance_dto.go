package dto

import "github.com/unibecas/sibeca/internal/app/models"

// CheckoutResponse carries the frozen worked-hours value back to the student,
// formatted with two decimals.
type CheckoutResponse struct {
	Success bool   `json:"success"`
	Hours   string `json:"horas" example:"4.50"`
	Message string `json:"message,omitempty"`
}

// ActiveSessionResponse reports whether the student has an open session today.
type ActiveSessionResponse struct {
	SessionActive bool                     `json:"sesionActiva"`
	Record        *models.AttendanceRecord `json:"registro"`
}

// PendingRecordsResponse lists the closed, still-pending records owned by a
// supervisor, ordered by date then check-in, both descending.
type PendingRecordsResponse struct {
	Success bool                       `json:"success"`
	Records []*models.AttendanceRecord `json:"registros"`
}

// RecordDetailResponse carries one record joined with the student's name,
// career and semester.
type RecordDetailResponse struct {
	Success bool                     `json:"success"`
	Record  *models.AttendanceRecord `json:"registro"`
}

// AttendanceHistoryResponse lists a student's recent records.
type AttendanceHistoryResponse struct {
	Success bool                       `json:"success"`
	Records []*models.AttendanceRecord `json:"asistencias"`
}

// ResolveRecordRequest is the supervisor's confirm/reject payload. Confirmar
// is a pointer so that an explicit false survives required validation.
type ResolveRecordRequest struct {
	RecordID     int64  `json:"id_registro" binding:"required" example:"12"`
	Confirm      *bool  `json:"confirmar" binding:"required" example:"true"`
	Observations string `json:"observaciones" example:"Llegó tarde"`
}
