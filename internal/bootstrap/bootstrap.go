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

	appControllers "github.com/courator/courator/internal/app/controllers"
	appMigrations "github.com/courator/courator/internal/app/migrations"
	appRepos "github.com/courator/courator/internal/app/repositories"
	appRoutes "github.com/courator/courator/internal/app/routes"
	appServices "github.com/courator/courator/internal/app/services"
	"github.com/courator/courator/internal/config"
	"github.com/courator/courator/internal/db"
	appMiddleware "github.com/courator/courator/internal/middleware"
	pkgAuth "github.com/courator/courator/internal/pkg/auth"
	"github.com/courator/courator/internal/pkg/helpers"
	"github.com/courator/courator/internal/pkg/logger"
	"github.com/courator/courator/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	UniversityService    appServices.UniversityService
	CourseService        appServices.CourseService
	ProfessorService     appServices.ProfessorService
	TAService            appServices.TAService
	AttributeService     appServices.AttributeService
	RatingService        appServices.RatingService
	SuggestionService    appServices.SuggestionService
	AuthController       *appControllers.AuthController
	AccountController    *appControllers.AccountController
	UniversityController *appControllers.UniversityController
	CourseController     *appControllers.CourseController
	ProfessorController  *appControllers.ProfessorController
	TAController         *appControllers.TAController
	AttributeController  *appControllers.AttributeController
	RatingController     *appControllers.RatingController
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

// SetupDatabase establishes the database connection and runs migrations.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
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

	deps.AuthService = appServices.NewAuthService(deps.Repos.AccountRepository, deps.JWTService, lgr)
	deps.UniversityService = appServices.NewUniversityService(deps.Repos.UniversityRepository)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.UniversityRepository,
		deps.Repos.ProfessorRepository,
	)
	deps.ProfessorService = appServices.NewProfessorService(deps.Repos.ProfessorRepository, deps.Repos.UniversityRepository)
	deps.TAService = appServices.NewTAService(deps.Repos.TARepository, deps.Repos.UniversityRepository)
	deps.AttributeService = appServices.NewAttributeService(deps.Repos.AttributeRepository)
	deps.RatingService = appServices.NewRatingService(
		deps.Repos.RatingRepository,
		deps.Repos.AttributeRepository,
		deps.Repos.UniversityRepository,
		deps.Repos.CourseRepository,
		lgr,
	)
	deps.SuggestionService = appServices.NewSuggestionService(deps.Repos.RatingRepository, deps.Repos.AttributeRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AccountController = appControllers.NewAccountController(deps.AuthService, deps.SuggestionService)
	deps.UniversityController = appControllers.NewUniversityController(deps.UniversityService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.TAController = appControllers.NewTAController(deps.TAService)
	deps.AttributeController = appControllers.NewAttributeController(deps.AttributeService)
	deps.RatingController = appControllers.NewRatingController(deps.RatingService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AccountController,
		deps.UniversityController,
		deps.CourseController,
		deps.ProfessorController,
		deps.TAController,
		deps.AttributeController,
		deps.RatingController,
		deps.AuthMiddleware,
	)

	return router
}
