package models

import "time"

// RecordStatus is the confirmation state of an attendance record. A closed
// record stays PENDING until its supervisor confirms or rejects it; both are
// terminal.
type RecordStatus string

const (
	StatusPending   RecordStatus = "PENDING"
	StatusConfirmed RecordStatus = "CONFIRMED"
	StatusRejected  RecordStatus = "REJECTED"
)

// AttendanceRecord defines one attendance session based on the
// 'attendance_records' table. The supervisor is captured at check-in time;
// reassigning the student later does not touch existing records.
type AttendanceRecord struct {
	ID           int64        `json:"id_registro" db:"id"`
	StudentID    int64        `json:"id_alumno" db:"student_id"`
	SupervisorID *int64       `json:"id_jefe,omitempty" db:"supervisor_id"`
	EntryDate    time.Time    `json:"fecha" db:"entry_date"`
	CheckIn      time.Time    `json:"check_in" db:"check_in"`
	CheckOut     *time.Time   `json:"check_out,omitempty" db:"check_out"`
	HoursWorked  *float64     `json:"horas_trabajadas,omitempty" db:"hours_worked"`
	Status       RecordStatus `json:"estado" db:"status"`
	Observation  *string      `json:"observaciones,omitempty" db:"observation"`
	CreatedAt    time.Time    `json:"-" db:"created_at"`

	// Joined fields (populated when needed)
	StudentName    *string `json:"alumno_nombre,omitempty"`
	SupervisorName *string `json:"jefe_nombre,omitempty"`
	Career         *string `json:"carrera,omitempty"`
	Semester       *int    `json:"semestre,omitempty"`
}

// IsOpen reports whether the record is still waiting for a check-out.
func (r *AttendanceRecord) IsOpen() bool {
	return r.CheckOut == nil
}

// IsTerminal reports whether the record reached a terminal state.
func (r *AttendanceRecord) IsTerminal() bool {
	return r.Status == StatusConfirmed || r.Status == StatusRejected
}
