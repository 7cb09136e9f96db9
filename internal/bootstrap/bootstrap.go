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
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/asrivastava/codecampus/internal/app/controllers"
	appMigrations "github.com/asrivastava/codecampus/internal/app/migrations"
	appRepos "github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/app/repositories/postgres"
	appRoutes "github.com/asrivastava/codecampus/internal/app/routes"
	appServices "github.com/asrivastava/codecampus/internal/app/services"
	"github.com/asrivastava/codecampus/internal/cache"
	"github.com/asrivastava/codecampus/internal/config"
	"github.com/asrivastava/codecampus/internal/db"
	appMiddleware "github.com/asrivastava/codecampus/internal/middleware"
	pkgAuth "github.com/asrivastava/codecampus/internal/pkg/auth"
	"github.com/asrivastava/codecampus/internal/pkg/filestorage"
	"github.com/asrivastava/codecampus/internal/pkg/helpers"
	"github.com/asrivastava/codecampus/internal/pkg/logger"
	"github.com/asrivastava/codecampus/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	BlogService       appServices.BlogService
	ProjectService    appServices.ProjectService
	EventService      appServices.EventService
	CommentService    appServices.CommentService
	LikeService       appServices.LikeService
	UserService       appServices.UserService
	AuthController    *appControllers.AuthController
	BlogController    *appControllers.BlogController
	ProjectController *appControllers.ProjectController
	EventController   *appControllers.EventController
	CommentController *appControllers.CommentController
	LikeController    *appControllers.LikeController
	UserController    *appControllers.UserController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Stores            *appRepos.Stores
	JWTService        *pkgAuth.JWTService
	FileStorage       *filestorage.LocalStorage
	Redis             *redis.Client
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

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
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Stores = postgres.NewStores(dbPool)

	fileStorageBaseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Redis = cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	deps.AuthService = appServices.NewAuthService(deps.Stores, deps.JWTService, deps.FileStorage)
	deps.BlogService = appServices.NewBlogService(deps.Stores)
	deps.ProjectService = appServices.NewProjectService(deps.Stores)
	deps.EventService = appServices.NewEventService(deps.Stores, deps.FileStorage)
	deps.CommentService = appServices.NewCommentService(deps.Stores)
	deps.LikeService = appServices.NewLikeService(deps.Stores)
	deps.UserService = appServices.NewUserService(deps.Stores, deps.FileStorage)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Stores.Users)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.BlogController = appControllers.NewBlogController(deps.BlogService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.CommentController = appControllers.NewCommentController(deps.CommentService)
	deps.LikeController = appControllers.NewLikeController(deps.LikeService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

	// Seed the bootstrap admin once the stores are wired
	if err := seed.CreateDefaultAdmin(context.Background(), deps.Stores, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

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
		deps.BlogController,
		deps.ProjectController,
		deps.EventController,
		deps.CommentController,
		deps.LikeController,
		deps.UserController,
		deps.AuthMiddleware,
		deps.Redis,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
