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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/studyconnect/backend/docs" // swagger docs registration
	appControllers "github.com/studyconnect/backend/internal/app/controllers"
	appMigrations "github.com/studyconnect/backend/internal/app/migrations"
	appRepos "github.com/studyconnect/backend/internal/app/repositories"
	appRoutes "github.com/studyconnect/backend/internal/app/routes"
	appServices "github.com/studyconnect/backend/internal/app/services"
	"github.com/studyconnect/backend/internal/config"
	"github.com/studyconnect/backend/internal/db"
	appMiddleware "github.com/studyconnect/backend/internal/middleware"
	pkgAuth "github.com/studyconnect/backend/internal/pkg/auth"
	"github.com/studyconnect/backend/internal/pkg/cache"
	"github.com/studyconnect/backend/internal/pkg/filestorage"
	"github.com/studyconnect/backend/internal/pkg/logger"
	"github.com/studyconnect/backend/internal/seed"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	NoteController          *appControllers.NoteController
	VendorController        *appControllers.VendorController
	AccommodationController *appControllers.AccommodationController
	TutorController         *appControllers.TutorController
	AdvertisementController *appControllers.AdvertisementController
	AnalyticsController     *appControllers.AnalyticsController
	UserController          *appControllers.UserController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Cache          *cache.Cache
	Logger         zerolog.Logger
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

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// the supporting infrastructure.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	if cfg.Redis.Enabled {
		deps.Cache, err = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			lgr.Warn().Err(err).Msg("Redis unavailable, analytics caching disabled")
			deps.Cache = nil
		}
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
		TokenExp:    time.Hour,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.FileStorage, deps.Cache)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.User)

	deps.NoteController = appControllers.NewNoteController(deps.Services.Note)
	deps.VendorController = appControllers.NewVendorController(deps.Services.Vendor)
	deps.AccommodationController = appControllers.NewAccommodationController(deps.Services.Accommodation)
	deps.TutorController = appControllers.NewTutorController(deps.Services.Tutor)
	deps.AdvertisementController = appControllers.NewAdvertisementController(deps.Services.Advertisement)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.Services.Analytics)
	deps.UserController = appControllers.NewUserController(deps.Services.User)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.NoteController,
		deps.VendorController,
		deps.AccommodationController,
		deps.TutorController,
		deps.AdvertisementController,
		deps.AnalyticsController,
		deps.UserController,
		deps.AuthMiddleware,
		cfg.Server.StoragePath,
	)

	lgr.Info().Str("mode", cfg.Server.Mode).Msg("Router configured")
	return router, nil
}
