package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/db"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
	"github.com/unibecas/sibeca/internal/pkg/dberrors"
	"github.com/unibecas/sibeca/internal/pkg/logger"
)

// StudentRepository handles student profile database operations. A student is
// an accounts row plus a students row; creation and update touch both inside
// one transaction.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func studentColumns() []string {
	return []string{
		"a.id", "a.full_name", "a.email", "s.career", "s.semester", "s.gpa",
		"s.scholarship_type", "s.scholarship_percentage", "s.required_hours",
		"s.hours_completed", "s.supervisor_id", "a.is_active",
	}
}

func studentFields(st *models.Student) []interface{} {
	return []interface{}{
		&st.AccountID, &st.FullName, &st.Email, &st.Career, &st.Semester, &st.GPA,
		&st.ScholarshipType, &st.ScholarshipPercentage, &st.RequiredHours,
		&st.HoursCompleted, &st.SupervisorID, &st.IsActive,
	}
}

// GetByID retrieves a student with the assigned supervisor's name and area.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(append(studentColumns(), "j.full_name", "sup.area")...).
		From("accounts a").
		Join("students s ON s.account_id = a.id").
		LeftJoin("accounts j ON s.supervisor_id = j.id").
		LeftJoin("supervisors sup ON s.supervisor_id = sup.account_id").
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	fields := append(studentFields(student), &student.SupervisorName, &student.SupervisorArea)
	err = r.db.QueryRow(ctx, sql, args...).Scan(fields...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// SupervisorOf returns the student's currently assigned supervisor, which may
// be nil. A missing student row fails with ErrStudentNotFound.
func (r *StudentRepository) SupervisorOf(ctx context.Context, studentID int64) (*int64, error) {
	sql, args, err := r.sb.Select("supervisor_id").
		From("students").
		Where(squirrel.Eq{"account_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building supervisor lookup SQL")
		return nil, fmt.Errorf("failed to build supervisor lookup query: %w", err)
	}

	var supervisorID *int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&supervisorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error scanning supervisor lookup row")
		return nil, fmt.Errorf("error looking up student supervisor: %w", err)
	}

	return supervisorID, nil
}

// ListBySupervisor returns the active students assigned to a supervisor.
func (r *StudentRepository) ListBySupervisor(ctx context.Context, supervisorID int64) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns()...).
		From("accounts a").
		Join("students s ON s.account_id = a.id").
		Where(squirrel.Eq{"s.supervisor_id": supervisorID, "a.is_active": true}).
		OrderBy("a.full_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building students by supervisor SQL")
		return nil, fmt.Errorf("failed to build students by supervisor query: %w", err)
	}

	return r.queryStudents(ctx, sql, args, false)
}

// ListAll returns every student with the assigned supervisor's name, for the
// admin roster.
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(append(studentColumns(), "j.full_name")...).
		From("accounts a").
		Join("students s ON s.account_id = a.id").
		LeftJoin("accounts j ON s.supervisor_id = j.id").
		OrderBy("a.full_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args, true)
}

func (r *StudentRepository) queryStudents(ctx context.Context, sql string, args []interface{}, withSupervisorName bool) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		fields := studentFields(student)
		if withSupervisorName {
			fields = append(fields, &student.SupervisorName)
		}
		if err := rows.Scan(fields...); err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Create inserts the account and profile rows for a new student in one
// transaction and returns the new account ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student, passwordHash string) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		accountSQL, accountArgs, err := r.sb.Insert("accounts").
			Columns("full_name", "email", "password_hash", "role", "is_active").
			Values(student.FullName, student.Email, passwordHash, models.RoleStudent, true).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create account query: %w", err)
		}

		if err := tx.QueryRow(ctx, accountSQL, accountArgs...).Scan(&id); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating student account: %w", err)
		}

		profileSQL, profileArgs, err := r.sb.Insert("students").
			Columns("account_id", "career", "semester", "gpa", "scholarship_type",
				"scholarship_percentage", "required_hours", "hours_completed", "supervisor_id").
			Values(id, student.Career, student.Semester, student.GPA, student.ScholarshipType,
				student.ScholarshipPercentage, student.RequiredHours, 0, student.SupervisorID).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create student profile query: %w", err)
		}

		if _, err := tx.Exec(ctx, profileSQL, profileArgs...); err != nil {
			return fmt.Errorf("error creating student profile: %w", err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			logger.Error().Err(err).Str("email", student.Email).Msg("Error creating student")
		}
		return 0, err
	}

	return id, nil
}

// Update rewrites the account and profile rows of an existing student in one
// transaction. A non-nil passwordHash also replaces the stored password.
// The accrued hours total is never written here.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student, passwordHash *string) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		accountSet := map[string]interface{}{
			"full_name":  student.FullName,
			"email":      student.Email,
			"updated_at": squirrel.Expr("NOW()"),
		}
		if passwordHash != nil {
			accountSet["password_hash"] = *passwordHash
		}

		accountSQL, accountArgs, err := r.sb.Update("accounts").
			SetMap(accountSet).
			Where(squirrel.Eq{"id": student.AccountID, "role": models.RoleStudent}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update account query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, accountSQL, accountArgs...)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error updating student account: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		profileSQL, profileArgs, err := r.sb.Update("students").
			SetMap(map[string]interface{}{
				"career":                 student.Career,
				"semester":               student.Semester,
				"gpa":                    student.GPA,
				"scholarship_type":       student.ScholarshipType,
				"scholarship_percentage": student.ScholarshipPercentage,
				"required_hours":         student.RequiredHours,
				"supervisor_id":          student.SupervisorID,
			}).
			Where(squirrel.Eq{"account_id": student.AccountID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update student profile query: %w", err)
		}

		if _, err := tx.Exec(ctx, profileSQL, profileArgs...); err != nil {
			return fmt.Errorf("error updating student profile: %w", err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) && !errors.Is(err, apperrors.ErrStudentNotFound) {
			logger.Error().Err(err).Int64("studentID", student.AccountID).Msg("Error updating student")
		}
		return err
	}

	return nil
}

// CountActive counts active students.
func (r *StudentRepository) CountActive(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("accounts a").
		Join("students s ON s.account_id = a.id").
		Where(squirrel.Eq{"a.is_active": true}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building active students count SQL")
		return 0, fmt.Errorf("failed to build active students count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing active students count query")
		return 0, fmt.Errorf("error counting active students: %w", err)
	}

	return count, nil
}

// SumHoursCompleted sums the confirmed hours over all students.
func (r *StudentRepository) SumHoursCompleted(ctx context.Context) (float64, error) {
	sql, args, err := r.sb.Select("COALESCE(SUM(hours_completed), 0)").
		From("students").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building hours sum SQL")
		return 0, fmt.Errorf("failed to build hours sum query: %w", err)
	}

	var total float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing hours sum query")
		return 0, fmt.Errorf("error summing completed hours: %w", err)
	}

	return total, nil
}
