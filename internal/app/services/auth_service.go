package services

import (
	"context"
	"errors"

	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
	"github.com/unibecas/sibeca/internal/pkg/auth"
)

// accountStore is the identity lookup surface used at login.
type accountStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
}

// AuthService resolves credentials against the shared accounts table. Every
// role logs in through the same path; dispatch happens on the stored role,
// not on which table matched.
type AuthService struct {
	accounts accountStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(accounts accountStore) *AuthService {
	return &AuthService{accounts: accounts}
}

// Login validates the email and password pair and returns the matching
// account. A missing account and a wrong password both fail with
// ErrInvalidCredentials so the response does not reveal which one it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(account.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !account.IsActive && account.Role != models.RoleAdmin {
		return nil, apperrors.ErrAccountDisabled
	}

	return account, nil
}

// AccountByID loads the account behind an authenticated session.
func (s *AuthService) AccountByID(ctx context.Context, id int64) (*models.Account, error) {
	return s.accounts.GetByID(ctx, id)
}
