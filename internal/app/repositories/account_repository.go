package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
	"github.com/unibecas/sibeca/internal/pkg/logger"
)

// AccountRepository handles the shared identity table. Login resolves every
// role through this single lookup path.
type AccountRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func accountColumns() []string {
	return []string{"id", "full_name", "email", "password_hash", "role", "is_active", "created_at", "updated_at"}
}

func accountFields(a *models.Account) []interface{} {
	return []interface{}{&a.ID, &a.FullName, &a.Email, &a.PasswordHash, &a.Role, &a.IsActive, &a.CreatedAt, &a.UpdatedAt}
}

// GetByEmail retrieves an account by email, regardless of role or active flag.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	sql, args, err := r.sb.Select(accountColumns()...).
		From("accounts").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get account by email SQL")
		return nil, fmt.Errorf("failed to build get account query: %w", err)
	}

	account := &models.Account{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(accountFields(account)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		logger.Error().Err(err).Msg("Error scanning account row")
		return nil, fmt.Errorf("error getting account by email: %w", err)
	}

	return account, nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	sql, args, err := r.sb.Select(accountColumns()...).
		From("accounts").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get account by ID SQL")
		return nil, fmt.Errorf("failed to build get account query: %w", err)
	}

	account := &models.Account{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(accountFields(account)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		logger.Error().Err(err).Int64("accountID", id).Msg("Error scanning account row")
		return nil, fmt.Errorf("error getting account by ID: %w", err)
	}

	return account, nil
}

// SetActive flips the active flag of an account with the expected role.
func (r *AccountRepository) SetActive(ctx context.Context, id int64, role models.RoleType, active bool) error {
	sql, args, err := r.sb.Update("accounts").
		SetMap(map[string]interface{}{
			"is_active":  active,
			"updated_at": squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": id, "role": role}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set active SQL")
		return fmt.Errorf("failed to build set active query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("accountID", id).Msg("Error executing set active query")
		return fmt.Errorf("error setting account active flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}
