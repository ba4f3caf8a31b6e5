// cmd/caltrack-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/api/rest/v1"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/app"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/auth"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/connector"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/notify"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/persistence"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/reporting"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Calendar days and report months follow the plant time zone
	loc, err := restConfig.Location()
	if err != nil {
		return err
	}
	calibration.SetLocation(loc)
	log.Info("Using plant time zone", "location", loc.String())

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db          *gorm.DB
	services    *v1.Services
	tokenIssuer users.TokenIssuer
	notifier    monitoring.Notifier
	sweeper     *app.ExpirySweepWorker
}

func (d *appDependencies) close(log logger.Logger) {
	if d.sweeper != nil {
		d.sweeper.Stop()
	}
	if err := d.notifier.Close(); err != nil {
		log.Warn("Failed to close notifier", "error", err)
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("Failed to close database", "error", err)
	}
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database; the schema is migrated when auto_migrate is set
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	log.Info("Database connection established", "type", cfg.Database.Type, "autoMigrate", cfg.Database.AutoMigrate)

	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, err
	}

	// Initialize file storage
	fileConnector, err := connector.NewFileConnector(context.Background(), &cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file connector: %w", err)
	}

	var tokenIssuer users.TokenIssuer
	if cfg.Auth.Enabled {
		issuer, err := auth.NewJWTIssuer(&cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to create token issuer: %w", err)
		}
		tokenIssuer = issuer
	} else {
		log.Warn("Authentication is disabled; every route is public")
	}

	notifier, err := initializeNotifier(cfg, log)
	if err != nil {
		return nil, err
	}

	services, err := initializeApplicationServices(repos, fileConnector, cfg.Storage.MaxUploadBytes(), tokenIssuer, notifier, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	deps := &appDependencies{
		db:          db,
		services:    services,
		tokenIssuer: tokenIssuer,
		notifier:    notifier,
	}

	if cfg.Scheduler.Enabled {
		sweeper, err := app.NewExpirySweepWorker(services.Monitoring, cfg.Scheduler.Spec, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create expiry sweep worker: %w", err)
		}
		deps.sweeper = sweeper
	}

	return deps, nil
}

func initializeRepositories(db *gorm.DB, log logger.Logger) (*persistence.Repositories, error) {
	repos, err := persistence.NewRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}
	return repos, nil
}

// initializeNotifier publishes alerts to RabbitMQ when a broker is configured and logs them otherwise
func initializeNotifier(cfg *config.RestConfig, log logger.Logger) (monitoring.Notifier, error) {
	if !cfg.Broker.Enabled {
		return notify.NewLogNotifier(log), nil
	}

	notifier, err := notify.NewAMQPNotifier(&cfg.Broker, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AMQP notifier: %w", err)
	}
	log.Info("Calibration alerts are published to RabbitMQ", "exchange", cfg.Broker.Exchange)
	return notifier, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	repos *persistence.Repositories,
	fileConnector files.FileConnector,
	maxUploadBytes int64,
	tokenIssuer users.TokenIssuer,
	notifier monitoring.Notifier,
	log logger.Logger,
) (*v1.Services, error) {
	equipmentService, err := app.NewEquipmentService(repos.Equipment, repos.Cardek, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment service: %w", err)
	}

	labelService, err := app.NewLabelService(repos.Equipment, reporting.QRCodePNG)
	if err != nil {
		return nil, fmt.Errorf("failed to create label service: %w", err)
	}

	cardekService, err := app.NewCardekService(repos.Cardek, repos.Equipment, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cardek service: %w", err)
	}

	loanService, err := app.NewInstrumentLoanService(repos.Loans, repos.Equipment, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create instrument loan service: %w", err)
	}

	ncrService, err := app.NewNCRService(repos.NCRs, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create NCR service: %w", err)
	}

	userService, err := app.NewUserService(repos.Users, auth.BcryptHasher{}, tokenIssuer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	uploadService, err := app.NewUploadService(fileConnector, maxUploadBytes, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload service: %w", err)
	}

	reportService, err := app.NewReportService(repos.NCRs, repos.Loans, log,
		reporting.NewPDFRenderer(), reporting.NewXLSXRenderer())
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}

	monitoringService, err := app.NewMonitoringService(repos.Equipment, notifier, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create monitoring service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		Equipment:  equipmentService,
		Labels:     labelService,
		Cardek:     cardekService,
		Loans:      loanService,
		NCRs:       ncrService,
		Users:      userService,
		Uploads:    uploadService,
		Reports:    reportService,
		Monitoring: monitoringService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestLogger(log))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, deps.tokenIssuer)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Port, "basePath", v1.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	if deps.sweeper != nil {
		deps.sweeper.Start()
		log.Info("Expiry sweep scheduled", "worker", deps.sweeper.Name(), "spec", cfg.Scheduler.Spec)
	}

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
