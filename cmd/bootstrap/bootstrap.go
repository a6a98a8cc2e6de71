package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediconnect/config"
	deliveryHttp "mediconnect/internal/delivery/http"
	"mediconnect/internal/delivery/http/handler"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/infrastructure/cache"
	"mediconnect/internal/infrastructure/database"
	"mediconnect/internal/repository"
	"mediconnect/internal/service"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/hash"
	"mediconnect/pkg/validator"

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

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations before accepting traffic
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize logger and validator
	log := logrus.StandardLogger()
	customValidator := validator.NewValidator()
	hasher := hash.NewBcryptHasher()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	availabilityRepo := repository.NewAvailabilityRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	predictor := service.NewPredictorClient(cfg.Predictor, log)
	predictionCache := service.NewPredictionCache(redisClient, cfg.Predictor.CacheTTL, log)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, hasher, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, hasher, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, availabilityRepo, doctorRepo, auditService)
	bookingUsecase := usecase.NewBookingUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, availabilityRepo, auditService)
	searchUsecase := usecase.NewSearchUsecase(db, log, doctorRepo, predictor, predictionCache, cfg.Predictor.Timeout)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	searchHandler := handler.NewSearchHandler(searchUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	metricsMiddleware := middleware.NewMetricsMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, patientHandler, availabilityHandler, bookingHandler, searchHandler, auditLogHandler, corsMiddleware, metricsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
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
