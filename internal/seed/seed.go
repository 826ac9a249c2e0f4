package seed

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/pkg/auth"
)

const (
	defaultAdminEmail = "admin@sibeca.edu"
	defaultAdminName  = "Administrador"
	adminPasswordEnv  = "SIBECA_ADMIN_PASSWORD"
)

// resolveAdminPassword returns the bootstrap admin password from the
// environment, or a freshly generated one when the variable is unset. The
// generated flag tells the caller to surface the password once; it is never
// stored anywhere but as a hash.
func resolveAdminPassword() (password string, generated bool, err error) {
	if password := os.Getenv(adminPasswordEnv); password != "" {
		return password, false, nil
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", false, fmt.Errorf("failed to generate admin password: %w", err)
	}
	return hex.EncodeToString(buf), true, nil
}

// CreateDefaultAdmin inserts the bootstrap admin account when no admin exists
// yet, so a fresh deployment can log in and create everyone else. The
// password comes from SIBECA_ADMIN_PASSWORD; without it a random one is
// generated and logged once.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var adminCount int64
	err := dbPool.QueryRow(ctx,
		`SELECT COUNT(*) FROM accounts WHERE role = $1`, models.RoleAdmin).Scan(&adminCount)
	if err != nil {
		return fmt.Errorf("failed to count admin accounts: %w", err)
	}

	if adminCount > 0 {
		return nil
	}

	password, generated, err := resolveAdminPassword()
	if err != nil {
		return err
	}
	if generated {
		lgr.Warn().
			Str("email", defaultAdminEmail).
			Str("password", password).
			Msgf("%s not set, generated a one-time admin password, change it after first login", adminPasswordEnv)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = dbPool.Exec(ctx,
		`INSERT INTO accounts (full_name, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, TRUE)
		 ON CONFLICT (email) DO NOTHING`,
		defaultAdminName, defaultAdminEmail, hash, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to insert default admin: %w", err)
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
