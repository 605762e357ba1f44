package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/radit-thy/G3-Carefinder-Backend/config"
	deliveryHttp "github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/http"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/http/handler"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/http/middleware"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/infrastructure/cache"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/infrastructure/database"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/infrastructure/mail"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/infrastructure/storage"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/repository"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/service"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/usecase"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/jwt"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.RunMigrations(db); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	hospitalRepo := repository.NewHospitalRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	rateReplyRepo := repository.NewRateReplyRepository(db)
	passwordResetRepo := repository.NewPasswordResetRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	tokenRepo := repository.NewTokenRepository(redisClient)

	// Initialize infrastructure services
	imageStorage, err := storage.NewImageStorage(cfg.Storage, cfg.App.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}
	mailer := mail.NewMailer(cfg.Mail, log)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	notificationService := service.NewNotificationService(mailer, cfg.Mail.ResetURL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, hospitalRepo, passwordResetRepo, tokenRepo, jwtService,
		imageStorage, notificationService, auditService, cfg.PasswordReset.TTL)
	ratingUsecase := usecase.NewRatingUsecase(log, userRepo, hospitalRepo, ratingRepo, auditService)
	rateReplyUsecase := usecase.NewRateReplyUsecase(log, userRepo, ratingRepo, rateReplyRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, cfg.Compat, cfg.Storage.MaxUploadBytes)
	ratingHandler := handler.NewRatingHandler(ratingUsecase, customValidator, cfg.Compat)
	rateReplyHandler := handler.NewRateReplyHandler(rateReplyUsecase, customValidator, cfg.Compat)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(log, jwtService, tokenRepo)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, ratingHandler, rateReplyHandler, auditLogHandler,
		imageStorage.Handler(), cfg.Storage.PublicPath, authMiddleware, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
