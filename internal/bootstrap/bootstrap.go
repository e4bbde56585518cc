package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/deniz/courseboard/internal/app/controllers"
	appMigrations "github.com/deniz/courseboard/internal/app/migrations"
	appRepos "github.com/deniz/courseboard/internal/app/repositories"
	appRoutes "github.com/deniz/courseboard/internal/app/routes"
	appServices "github.com/deniz/courseboard/internal/app/services"
	"github.com/deniz/courseboard/internal/config"
	"github.com/deniz/courseboard/internal/db"
	appMiddleware "github.com/deniz/courseboard/internal/middleware"
	pkgAuth "github.com/deniz/courseboard/internal/pkg/auth"
	"github.com/deniz/courseboard/internal/pkg/helpers"
	"github.com/deniz/courseboard/internal/pkg/logger"
	"github.com/deniz/courseboard/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AccountService       appServices.AccountService
	CourseService        appServices.CourseService
	EnrollmentService    appServices.EnrollmentService
	GradingService       appServices.GradingService
	AccountController    *appControllers.AccountController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	GradingController    *appControllers.GradingController
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

	if cfg.UsesInsecureJWTSecret() {
		lgr.Warn().Msg("Using the insecure default JWT secret; set JWT_SECRET before exposing this server")
	}

	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
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
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.EnsureDefaultAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		// Startup proceeds without the default admin
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AccountService = appServices.NewAccountService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.UserRepository,
		deps.Repos.EnrollmentRepository,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.CourseRepository,
		deps.Repos.EnrollmentRepository,
	)
	deps.GradingService = appServices.NewGradingService(
		deps.Repos.CourseRepository,
		deps.Repos.EnrollmentRepository,
		deps.Repos.GradeRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AccountController = appControllers.NewAccountController(deps.AccountService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.GradingController = appControllers.NewGradingController(deps.GradingService)

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
		deps.AccountController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.GradingController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
