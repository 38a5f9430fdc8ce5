package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"surgitrack/config"
	deliveryHttp "surgitrack/internal/delivery/http"
	"surgitrack/internal/delivery/http/handler"
	"surgitrack/internal/delivery/http/middleware"
	"surgitrack/internal/infrastructure/database"
	"surgitrack/internal/repository"
	"surgitrack/internal/usecase"
	"surgitrack/pkg/jwt"
	"surgitrack/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if err := database.Seed(db); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}
	app.DB = db

	app.Server = initializeServer(cfg, db)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	tokenService := jwt.NewTokenService(cfg.Session)
	customValidator := validator.NewValidator()

	accountRepo := repository.NewAccountRepository()
	patientRepo := repository.NewPatientRepository()
	surgeryRepo := repository.NewSurgeryRepository()

	log := logrus.StandardLogger()

	authUsecase := usecase.NewAuthUsecase(db, log, accountRepo, tokenService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	surgeryUsecase := usecase.NewSurgeryUsecase(db, log, surgeryRepo, patientRepo)
	statsUsecase := usecase.NewStatsUsecase(db, log, patientRepo, surgeryRepo)

	authHandler := handler.NewAuthHandler(authUsecase, customValidator, cfg)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	surgeryHandler := handler.NewSurgeryHandler(surgeryUsecase, customValidator)
	statsHandler := handler.NewStatsHandler(statsUsecase)

	authMiddleware := middleware.NewAuthMiddleware(authUsecase, cfg.Session.CookieName)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.Origin)
	metricsMiddleware := middleware.NewMetricsMiddleware()

	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		surgeryHandler,
		statsHandler,
		authMiddleware,
		corsMiddleware,
		metricsMiddleware,
		cfg.Auth.ProtectRecords,
	)
	httpRouter := router.Setup()

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database connection.
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
