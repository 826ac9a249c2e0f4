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

// SupervisorRepository handles supervisor profile database operations.
type SupervisorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSupervisorRepository creates a new SupervisorRepository
func NewSupervisorRepository(db *pgxpool.Pool) *SupervisorRepository {
	return &SupervisorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func supervisorColumns() []string {
	return []string{"a.id", "a.full_name", "a.email", "s.area", "s.location", "a.is_active"}
}

func supervisorFields(s *models.Supervisor) []interface{} {
	return []interface{}{&s.AccountID, &s.FullName, &s.Email, &s.Area, &s.Location, &s.IsActive}
}

// GetByID retrieves a supervisor profile.
func (r *SupervisorRepository) GetByID(ctx context.Context, id int64) (*models.Supervisor, error) {
	sql, args, err := r.sb.Select(supervisorColumns()...).
		From("accounts a").
		Join("supervisors s ON s.account_id = a.id").
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get supervisor SQL")
		return nil, fmt.Errorf("failed to build get supervisor query: %w", err)
	}

	supervisor := &models.Supervisor{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(supervisorFields(supervisor)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSupervisorNotFound
		}
		logger.Error().Err(err).Int64("supervisorID", id).Msg("Error scanning supervisor row")
		return nil, fmt.Errorf("error getting supervisor by ID: %w", err)
	}

	return supervisor, nil
}

// ListAllWithCounts returns every supervisor with the number of active
// students assigned to each, for the admin roster.
func (r *SupervisorRepository) ListAllWithCounts(ctx context.Context) ([]*models.Supervisor, error) {
	sql, args, err := r.sb.Select(append(supervisorColumns(), "COUNT(sa.id) AS total_students")...).
		From("accounts a").
		Join("supervisors s ON s.account_id = a.id").
		LeftJoin("students st ON st.supervisor_id = a.id").
		LeftJoin("accounts sa ON sa.id = st.account_id AND sa.is_active = TRUE").
		GroupBy("a.id", "a.full_name", "a.email", "s.area", "s.location", "a.is_active").
		OrderBy("a.full_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list supervisors SQL")
		return nil, fmt.Errorf("failed to build list supervisors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list supervisors query")
		return nil, fmt.Errorf("error querying supervisors: %w", err)
	}
	defer rows.Close()

	supervisors := []*models.Supervisor{}
	for rows.Next() {
		supervisor := &models.Supervisor{}
		fields := append(supervisorFields(supervisor), &supervisor.StudentCount)
		if err := rows.Scan(fields...); err != nil {
			logger.Error().Err(err).Msg("Error scanning supervisor row")
			return nil, fmt.Errorf("error scanning supervisor row: %w", err)
		}
		supervisors = append(supervisors, supervisor)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating supervisor rows")
		return nil, fmt.Errorf("error iterating supervisor rows: %w", err)
	}

	return supervisors, nil
}

// Summary aggregates the supervisor's assigned students: how many are active,
// their accrued hours, and how many closed records still await a decision.
func (r *SupervisorRepository) Summary(ctx context.Context, supervisorID int64) (totalStudents int64, totalHours float64, pendingRecords int64, err error) {
	studentsSQL, studentsArgs, err := r.sb.Select("COUNT(*)", "COALESCE(SUM(s.hours_completed), 0)").
		From("students s").
		Join("accounts a ON a.id = s.account_id").
		Where(squirrel.Eq{"s.supervisor_id": supervisorID, "a.is_active": true}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building supervisor summary SQL")
		return 0, 0, 0, fmt.Errorf("failed to build supervisor summary query: %w", err)
	}

	if err = r.db.QueryRow(ctx, studentsSQL, studentsArgs...).Scan(&totalStudents, &totalHours); err != nil {
		logger.Error().Err(err).Int64("supervisorID", supervisorID).Msg("Error executing supervisor summary query")
		return 0, 0, 0, fmt.Errorf("error loading supervisor summary: %w", err)
	}

	pendingSQL, pendingArgs, err := r.sb.Select("COUNT(*)").
		From("attendance_records").
		Where(squirrel.Eq{"supervisor_id": supervisorID, "status": models.StatusPending}).
		Where("check_out IS NOT NULL").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building pending summary SQL")
		return 0, 0, 0, fmt.Errorf("failed to build pending summary query: %w", err)
	}

	if err = r.db.QueryRow(ctx, pendingSQL, pendingArgs...).Scan(&pendingRecords); err != nil {
		logger.Error().Err(err).Int64("supervisorID", supervisorID).Msg("Error executing pending summary query")
		return 0, 0, 0, fmt.Errorf("error loading pending summary: %w", err)
	}

	return totalStudents, totalHours, pendingRecords, nil
}

// CountActive counts active supervisors.
func (r *SupervisorRepository) CountActive(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("accounts a").
		Join("supervisors s ON s.account_id = a.id").
		Where(squirrel.Eq{"a.is_active": true}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building active supervisors count SQL")
		return 0, fmt.Errorf("failed to build active supervisors count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing active supervisors count query")
		return 0, fmt.Errorf("error counting active supervisors: %w", err)
	}

	return count, nil
}

// Create inserts the account and profile rows for a new supervisor in one
// transaction and returns the new account ID.
func (r *SupervisorRepository) Create(ctx context.Context, supervisor *models.Supervisor, passwordHash string) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		accountSQL, accountArgs, err := r.sb.Insert("accounts").
			Columns("full_name", "email", "password_hash", "role", "is_active").
			Values(supervisor.FullName, supervisor.Email, passwordHash, models.RoleSupervisor, true).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create account query: %w", err)
		}

		if err := tx.QueryRow(ctx, accountSQL, accountArgs...).Scan(&id); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating supervisor account: %w", err)
		}

		profileSQL, profileArgs, err := r.sb.Insert("supervisors").
			Columns("account_id", "area", "location").
			Values(id, supervisor.Area, supervisor.Location).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create supervisor profile query: %w", err)
		}

		if _, err := tx.Exec(ctx, profileSQL, profileArgs...); err != nil {
			return fmt.Errorf("error creating supervisor profile: %w", err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			logger.Error().Err(err).Str("email", supervisor.Email).Msg("Error creating supervisor")
		}
		return 0, err
	}

	return id, nil
}

// Update rewrites the account and profile rows of an existing supervisor in
// one transaction. A non-nil passwordHash also replaces the stored password.
func (r *SupervisorRepository) Update(ctx context.Context, supervisor *models.Supervisor, passwordHash *string) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		accountSet := map[string]interface{}{
			"full_name":  supervisor.FullName,
			"email":      supervisor.Email,
			"updated_at": squirrel.Expr("NOW()"),
		}
		if passwordHash != nil {
			accountSet["password_hash"] = *passwordHash
		}

		accountSQL, accountArgs, err := r.sb.Update("accounts").
			SetMap(accountSet).
			Where(squirrel.Eq{"id": supervisor.AccountID, "role": models.RoleSupervisor}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update account query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, accountSQL, accountArgs...)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error updating supervisor account: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrSupervisorNotFound
		}

		profileSQL, profileArgs, err := r.sb.Update("supervisors").
			SetMap(map[string]interface{}{
				"area":     supervisor.Area,
				"location": supervisor.Location,
			}).
			Where(squirrel.Eq{"account_id": supervisor.AccountID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update supervisor profile query: %w", err)
		}

		if _, err := tx.Exec(ctx, profileSQL, profileArgs...); err != nil {
			return fmt.Errorf("error updating supervisor profile: %w", err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) && !errors.Is(err, apperrors.ErrSupervisorNotFound) {
			logger.Error().Err(err).Int64("supervisorID", supervisor.AccountID).Msg("Error updating supervisor")
		}
		return err
	}

	return nil
}
