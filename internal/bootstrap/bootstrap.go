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

	appControllers "github.com/selim/groupdesk/internal/app/controllers"
	appMigrations "github.com/selim/groupdesk/internal/app/migrations"
	appRepos "github.com/selim/groupdesk/internal/app/repositories"
	appRoutes "github.com/selim/groupdesk/internal/app/routes"
	appServices "github.com/selim/groupdesk/internal/app/services"
	"github.com/selim/groupdesk/internal/config"
	"github.com/selim/groupdesk/internal/db"
	appMiddleware "github.com/selim/groupdesk/internal/middleware"
	pkgAuth "github.com/selim/groupdesk/internal/pkg/auth"
	"github.com/selim/groupdesk/internal/pkg/filestorage"
	"github.com/selim/groupdesk/internal/pkg/helpers"
	"github.com/selim/groupdesk/internal/pkg/logger"
	"github.com/selim/groupdesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	JWTService  *pkgAuth.JWTService
	FileStorage *filestorage.LocalStorage

	AuthController        *appControllers.AuthController
	GroupController       *appControllers.GroupController
	FlightController      *appControllers.FlightController
	TransferController    *appControllers.TransferController
	CentreController      *appControllers.CentreController
	ParticipantController *appControllers.ParticipantController
	StaffController       *appControllers.StaffController
	AgencyController      *appControllers.AgencyController
	ProgrammeController   *appControllers.ProgrammeController
	AuthMiddleware        *appMiddleware.AuthMiddleware

	Logger zerolog.Logger
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
// seeds the default data.
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

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: helpers.ParseDuration(cfg.JWT.TokenExpiration, 12*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.GroupController = appControllers.NewGroupController(
		deps.Services.GroupService,
		deps.Services.TransferService,
		deps.Services.ParticipantService,
		deps.Services.ProgrammeService,
	)
	deps.FlightController = appControllers.NewFlightController(deps.Services.FlightService)
	deps.TransferController = appControllers.NewTransferController(deps.Services.TransferService)
	deps.CentreController = appControllers.NewCentreController(deps.Services.CentreService, deps.Services.ProgrammeService)
	deps.ParticipantController = appControllers.NewParticipantController(deps.Services.ParticipantService)
	deps.StaffController = appControllers.NewStaffController(deps.Services.StaffService)
	deps.AgencyController = appControllers.NewAgencyController(deps.Services.AgencyService)
	deps.ProgrammeController = appControllers.NewProgrammeController(deps.Services.ProgrammeService)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.GroupController,
		deps.FlightController,
		deps.TransferController,
		deps.CentreController,
		deps.ParticipantController,
		deps.StaffController,
		deps.AgencyController,
		deps.ProgrammeController,
		deps.AuthMiddleware,
	)

	return router
}
