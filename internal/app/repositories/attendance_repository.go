package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/db"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
	"github.com/unibecas/sibeca/internal/pkg/dberrors"
	"github.com/unibecas/sibeca/internal/pkg/helpers"
	"github.com/unibecas/sibeca/internal/pkg/logger"
)

// openSessionConstraint is the partial unique index that serializes racing
// check-ins for the same student and date.
const openSessionConstraint = "uq_attendance_open_session"

// AttendanceRepository handles attendance record database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateOpenSession inserts a new open record for the student. The partial
// unique index rejects a second open record for the same student and date,
// which surfaces as ErrDuplicateOpenSession.
func (r *AttendanceRepository) CreateOpenSession(ctx context.Context, studentID int64, supervisorID *int64, entryDate, checkIn time.Time) (int64, error) {
	sql, args, err := r.sb.Insert("attendance_records").
		Columns("student_id", "supervisor_id", "entry_date", "check_in", "status").
		Values(studentID, supervisorID, entryDate, checkIn, models.StatusPending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create open session SQL")
		return 0, fmt.Errorf("failed to build create open session query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, openSessionConstraint) {
			return 0, apperrors.ErrDuplicateOpenSession
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing create open session query")
		return 0, fmt.Errorf("error creating open session: %w", err)
	}

	return id, nil
}

// OpenSession returns the student's open record for the given date, or
// ErrNoOpenSession when there is none.
func (r *AttendanceRepository) OpenSession(ctx context.Context, studentID int64, entryDate time.Time) (*models.AttendanceRecord, error) {
	sql, args, err := r.sb.Select(recordColumns()...).
		From("attendance_records").
		Where(squirrel.Eq{"student_id": studentID, "entry_date": entryDate}).
		Where("check_out IS NULL").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building open session SQL")
		return nil, fmt.Errorf("failed to build open session query: %w", err)
	}

	record := &models.AttendanceRecord{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(recordFields(record)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoOpenSession
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error scanning open session row")
		return nil, fmt.Errorf("error getting open session: %w", err)
	}

	return record, nil
}

// CloseSession stamps the checkout time and freezes the worked hours in one
// statement. The check_out IS NULL guard makes the close idempotent-safe:
// only a still-open record can transition.
func (r *AttendanceRepository) CloseSession(ctx context.Context, recordID int64, checkOut time.Time, hoursWorked float64) error {
	sql, args, err := r.sb.Update("attendance_records").
		SetMap(map[string]interface{}{
			"check_out":    checkOut,
			"hours_worked": hoursWorked,
		}).
		Where(squirrel.Eq{"id": recordID}).
		Where("check_out IS NULL").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building close session SQL")
		return fmt.Errorf("failed to build close session query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("recordID", recordID).Msg("Error executing close session query")
		return fmt.Errorf("error closing session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoOpenSession
	}

	return nil
}

// Terminate moves a pending record to CONFIRMED or REJECTED and, on
// confirmation, adds its worked hours to the student's running total. Both
// writes run in one transaction so the totals invariant survives crashes and
// concurrent confirmations. The ownership- and status-scoped UPDATE makes a
// repeat call, a foreign record and a missing record indistinguishable:
// all fail with ErrRecordNotFound.
func (r *AttendanceRepository) Terminate(ctx context.Context, recordID, supervisorID int64, confirm bool, observation string) error {
	status := models.StatusRejected
	if confirm {
		status = models.StatusConfirmed
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		updateSQL, updateArgs, err := r.sb.Update("attendance_records").
			SetMap(map[string]interface{}{
				"status":      status,
				"observation": helpers.GetContentNullString(observation),
			}).
			Where(squirrel.Eq{"id": recordID, "supervisor_id": supervisorID, "status": models.StatusPending}).
			Where("check_out IS NOT NULL").
			Suffix("RETURNING student_id, hours_worked").
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building terminate record SQL")
			return fmt.Errorf("failed to build terminate record query: %w", err)
		}

		var studentID int64
		var hoursWorked *float64
		err = tx.QueryRow(ctx, updateSQL, updateArgs...).Scan(&studentID, &hoursWorked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrRecordNotFound
			}
			logger.Error().Err(err).Int64("recordID", recordID).Msg("Error executing terminate record query")
			return fmt.Errorf("error terminating record: %w", err)
		}

		if !confirm {
			return nil
		}

		if hoursWorked == nil {
			// Unreachable given the check_out guard, but a confirmed record
			// must never accrue unknown hours.
			return fmt.Errorf("record %d has no frozen hours: %w", recordID, apperrors.ErrRecordNotFound)
		}

		hoursSQL, hoursArgs, err := r.sb.Update("students").
			Set("hours_completed", squirrel.Expr("hours_completed + ?", *hoursWorked)).
			Where(squirrel.Eq{"account_id": studentID}).
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building hours increment SQL")
			return fmt.Errorf("failed to build hours increment query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, hoursSQL, hoursArgs...)
		if err != nil {
			logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing hours increment query")
			return fmt.Errorf("error incrementing student hours: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
}

// PendingBySupervisor returns closed, still-pending records owned by the
// supervisor, newest first.
func (r *AttendanceRepository) PendingBySupervisor(ctx context.Context, supervisorID int64) ([]*models.AttendanceRecord, error) {
	sql, args, err := r.sb.Select(append(prefixedRecordColumns(), "a.full_name")...).
		From("attendance_records ra").
		Join("accounts a ON ra.student_id = a.id").
		Where(squirrel.Eq{"ra.supervisor_id": supervisorID, "ra.status": models.StatusPending}).
		Where("ra.check_out IS NOT NULL").
		OrderBy("ra.entry_date DESC", "ra.check_in DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building pending records SQL")
		return nil, fmt.Errorf("failed to build pending records query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("supervisorID", supervisorID).Msg("Error executing pending records query")
		return nil, fmt.Errorf("error querying pending records: %w", err)
	}
	defer rows.Close()

	records := []*models.AttendanceRecord{}
	for rows.Next() {
		record := &models.AttendanceRecord{}
		fields := append(recordFields(record), &record.StudentName)
		if err := rows.Scan(fields...); err != nil {
			logger.Error().Err(err).Msg("Error scanning pending record row")
			return nil, fmt.Errorf("error scanning pending record row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating pending record rows")
		return nil, fmt.Errorf("error iterating pending record rows: %w", err)
	}

	return records, nil
}

// DetailForSupervisor returns one record joined with the student's name,
// career and semester. The supervisor scope keeps foreign records invisible.
func (r *AttendanceRepository) DetailForSupervisor(ctx context.Context, recordID, supervisorID int64) (*models.AttendanceRecord, error) {
	sql, args, err := r.sb.Select(append(prefixedRecordColumns(), "a.full_name", "s.career", "s.semester")...).
		From("attendance_records ra").
		Join("accounts a ON ra.student_id = a.id").
		Join("students s ON ra.student_id = s.account_id").
		Where(squirrel.Eq{"ra.id": recordID, "ra.supervisor_id": supervisorID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building record detail SQL")
		return nil, fmt.Errorf("failed to build record detail query: %w", err)
	}

	record := &models.AttendanceRecord{}
	fields := append(recordFields(record), &record.StudentName, &record.Career, &record.Semester)
	err = r.db.QueryRow(ctx, sql, args...).Scan(fields...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		logger.Error().Err(err).Int64("recordID", recordID).Msg("Error scanning record detail row")
		return nil, fmt.Errorf("error getting record detail: %w", err)
	}

	return record, nil
}

// ListByStudent returns the student's most recent records.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int64, limit uint64) ([]*models.AttendanceRecord, error) {
	sql, args, err := r.sb.Select(recordColumns()...).
		From("attendance_records").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("entry_date DESC", "check_in DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student records SQL")
		return nil, fmt.Errorf("failed to build student records query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing student records query")
		return nil, fmt.Errorf("error querying student records: %w", err)
	}
	defer rows.Close()

	records := []*models.AttendanceRecord{}
	for rows.Next() {
		record := &models.AttendanceRecord{}
		if err := rows.Scan(recordFields(record)...); err != nil {
			logger.Error().Err(err).Msg("Error scanning student record row")
			return nil, fmt.Errorf("error scanning student record row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student record rows")
		return nil, fmt.Errorf("error iterating student record rows: %w", err)
	}

	return records, nil
}

// ListLatest returns the newest records across all students with both party
// names, for the admin dashboard.
func (r *AttendanceRepository) ListLatest(ctx context.Context, limit uint64) ([]*models.AttendanceRecord, error) {
	sql, args, err := r.sb.Select(append(prefixedRecordColumns(), "a.full_name", "j.full_name")...).
		From("attendance_records ra").
		Join("accounts a ON ra.student_id = a.id").
		LeftJoin("accounts j ON ra.supervisor_id = j.id").
		OrderBy("ra.entry_date DESC", "ra.check_in DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building latest records SQL")
		return nil, fmt.Errorf("failed to build latest records query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing latest records query")
		return nil, fmt.Errorf("error querying latest records: %w", err)
	}
	defer rows.Close()

	records := []*models.AttendanceRecord{}
	for rows.Next() {
		record := &models.AttendanceRecord{}
		fields := append(recordFields(record), &record.StudentName, &record.SupervisorName)
		if err := rows.Scan(fields...); err != nil {
			logger.Error().Err(err).Msg("Error scanning latest record row")
			return nil, fmt.Errorf("error scanning latest record row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating latest record rows")
		return nil, fmt.Errorf("error iterating latest record rows: %w", err)
	}

	return records, nil
}

// CountPending counts closed, still-pending records across all supervisors.
func (r *AttendanceRepository) CountPending(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("attendance_records").
		Where(squirrel.Eq{"status": models.StatusPending}).
		Where("check_out IS NOT NULL").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building pending count SQL")
		return 0, fmt.Errorf("failed to build pending count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing pending count query")
		return 0, fmt.Errorf("error counting pending records: %w", err)
	}

	return count, nil
}

func recordColumns() []string {
	return []string{"id", "student_id", "supervisor_id", "entry_date", "check_in", "check_out", "hours_worked", "status", "observation", "created_at"}
}

func prefixedRecordColumns() []string {
	cols := recordColumns()
	prefixed := make([]string, len(cols))
	for i, c := range cols {
		prefixed[i] = "ra." + c
	}
	return prefixed
}

func recordFields(r *models.AttendanceRecord) []interface{} {
	return []interface{}{
		&r.ID, &r.StudentID, &r.SupervisorID, &r.EntryDate, &r.CheckIn,
		&r.CheckOut, &r.HoursWorked, &r.Status, &r.Observation, &r.CreatedAt,
	}
}
