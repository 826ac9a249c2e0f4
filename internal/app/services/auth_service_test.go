package services

import (
	"context"
	"errors"
	"testing"

	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/pkg/apperrors"
	"github.com/unibecas/sibeca/internal/pkg/auth"
)

type fakeAccountStore struct {
	accounts map[string]*models.Account
}

func (f *fakeAccountStore) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeAccountStore) GetByID(_ context.Context, id int64) (*models.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func testAccount(t *testing.T, role models.RoleType, password string, active bool) *models.Account {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	return &models.Account{
		ID:           1,
		FullName:     "Ana Torres",
		Email:        "ana@uni.edu",
		PasswordHash: hash,
		Role:         role,
		IsActive:     active,
	}
}

func TestLoginSuccess(t *testing.T) {
	store := &fakeAccountStore{accounts: map[string]*models.Account{
		"ana@uni.edu": testAccount(t, models.RoleStudent, "secreto123", true),
	}}
	svc := NewAuthService(store)

	account, err := svc.Login(context.Background(), "ana@uni.edu", "secreto123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if account.Email != "ana@uni.edu" || account.Role != models.RoleStudent {
		t.Errorf("Login() returned %+v", account)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&fakeAccountStore{accounts: map[string]*models.Account{}})

	_, err := svc.Login(context.Background(), "nadie@uni.edu", "lo-que-sea")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := &fakeAccountStore{accounts: map[string]*models.Account{
		"ana@uni.edu": testAccount(t, models.RoleStudent, "secreto123", true),
	}}
	svc := NewAuthService(store)

	_, err := svc.Login(context.Background(), "ana@uni.edu", "incorrecta")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDisabledStudent(t *testing.T) {
	store := &fakeAccountStore{accounts: map[string]*models.Account{
		"ana@uni.edu": testAccount(t, models.RoleStudent, "secreto123", false),
	}}
	svc := NewAuthService(store)

	_, err := svc.Login(context.Background(), "ana@uni.edu", "secreto123")
	if !errors.Is(err, apperrors.ErrAccountDisabled) {
		t.Errorf("Login() error = %v, want ErrAccountDisabled", err)
	}
}

func TestLoginDisabledAdminStillWorks(t *testing.T) {
	store := &fakeAccountStore{accounts: map[string]*models.Account{
		"ana@uni.edu": testAccount(t, models.RoleAdmin, "secreto123", false),
	}}
	svc := NewAuthService(store)

	if _, err := svc.Login(context.Background(), "ana@uni.edu", "secreto123"); err != nil {
		t.Errorf("Login() error = %v, want nil for admin regardless of flag", err)
	}
}
