package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/unibecas/sibeca/internal/app/controllers"
	appMigrations "github.com/unibecas/sibeca/internal/app/migrations"
	appRepos "github.com/unibecas/sibeca/internal/app/repositories"
	appRoutes "github.com/unibecas/sibeca/internal/app/routes"
	appServices "github.com/unibecas/sibeca/internal/app/services"
	"github.com/unibecas/sibeca/internal/config"
	"github.com/unibecas/sibeca/internal/db"
	appMiddleware "github.com/unibecas/sibeca/internal/middleware"
	pkgAuth "github.com/unibecas/sibeca/internal/pkg/auth"
	"github.com/unibecas/sibeca/internal/pkg/helpers"
	"github.com/unibecas/sibeca/internal/pkg/logger"
	"github.com/unibecas/sibeca/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	AttendanceService    *appServices.AttendanceService
	StudentService       *appServices.StudentService
	SupervisorService    *appServices.SupervisorService
	AdminService         *appServices.AdminService
	AuthController       *appControllers.AuthController
	AttendanceController *appControllers.AttendanceController
	StudentController    *appControllers.StudentController
	SupervisorController *appControllers.SupervisorController
	AdminController      *appControllers.AdminController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the bootstrap admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	appMiddleware.SetProductionMode(cfg.IsProduction())

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		SessionExp:  helpers.ParseDuration(cfg.Session.Duration, 24*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.AccountRepository)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		deps.Repos.StudentRepository,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.SupervisorService = appServices.NewSupervisorService(
		deps.Repos.SupervisorRepository,
		deps.Repos.StudentRepository,
	)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.StudentRepository,
		deps.Repos.SupervisorRepository,
		deps.Repos.AccountRepository,
		deps.Repos.AttendanceRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.Session.CookieName)

	deps.AuthController = appControllers.NewAuthController(
		deps.AuthService,
		deps.JWTService,
		cfg.Session.CookieName,
		cfg.Session.CookieSecure,
	)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.SupervisorController = appControllers.NewSupervisorController(deps.SupervisorService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AttendanceController,
		deps.StudentController,
		deps.SupervisorController,
		deps.AdminController,
		deps.AuthMiddleware,
		cfg.Server.Mode,
	)

	return router
}
