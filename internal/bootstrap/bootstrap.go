package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kaan/internlink/internal/app/controllers"
	"github.com/kaan/internlink/internal/app/persistence"
	appRoutes "github.com/kaan/internlink/internal/app/routes"
	appServices "github.com/kaan/internlink/internal/app/services"
	"github.com/kaan/internlink/internal/app/store"
	"github.com/kaan/internlink/internal/config"
	"github.com/kaan/internlink/internal/db"
	appMiddleware "github.com/kaan/internlink/internal/middleware"
	pkgAuth "github.com/kaan/internlink/internal/pkg/auth"
	"github.com/kaan/internlink/internal/pkg/helpers"
	"github.com/kaan/internlink/internal/pkg/logger"
	"github.com/kaan/internlink/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Stores                *store.Stores
	Snapshot              persistence.Snapshot
	AuthService           appServices.AuthService
	UserService           appServices.UserService
	InternshipService     appServices.InternshipService
	ApplicationService    appServices.ApplicationService
	AuthController        *appControllers.AuthController
	UserController        *appControllers.UserController
	InternshipController  *appControllers.InternshipController
	ApplicationController *appControllers.ApplicationController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
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

// SetupDatabase connects to PostgreSQL when the database is enabled. It
// returns a nil database in memory-only mode.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if !cfg.Database.Enabled {
		lgr.Info().Msg("Database disabled, running in memory-only mode")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// BuildDependencies initializes the stores, services, controllers and
// middleware. When a database is present the saved snapshot is loaded before
// seeding, so seed data only appears on a truly fresh deployment.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Stores = store.NewMemoryStores()

	if database != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		snapshot, err := persistence.NewPostgresSnapshot(ctx, database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize snapshot store: %w", err)
		}
		if err := snapshot.LoadAll(ctx, deps.Stores); err != nil {
			return nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
		deps.Snapshot = snapshot
	}

	if err := seed.CreateDefaultData(deps.Stores, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 8*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Stores, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(deps.Stores, lgr)
	deps.InternshipService = appServices.NewInternshipService(deps.Stores, time.Now, lgr)
	deps.ApplicationService = appServices.NewApplicationService(deps.Stores, time.Now, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.InternshipController = appControllers.NewInternshipController(deps.InternshipService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, deps.InternshipService)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.InternshipController,
		deps.ApplicationController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
