// cmd/descgen-rest-api/main.go
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

	v1 "github.com/MGTheTrain/description-generator/internal/api/rest/v1"
	"github.com/MGTheTrain/description-generator/internal/app"
	"github.com/MGTheTrain/description-generator/internal/domain/catalog"
	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/infrastructure/connector"
	"github.com/MGTheTrain/description-generator/internal/infrastructure/persistence"
	"github.com/MGTheTrain/description-generator/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/description-generator/internal/pkg/config"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
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
		configPath = "./configs/rest-app.yaml"
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

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	jobService     generation.JobService
	previewService catalog.PreviewService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.JobModel{}, &models.JobEventModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	jobRepo, err := persistence.NewGormJobRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create job repository: %w", err)
	}

	// Initialize connectors
	ctx := context.Background()
	sheetConnector, err := connector.NewGoogleSheetConnector(ctx, &cfg.Google, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Sheets connector: %w", err)
	}

	groqConnector, err := connector.NewGroqConnector(&cfg.Groq, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groq connector: %w", err)
	}

	// OpenRouter is an optional last-resort fallback
	var openRouterConnector generation.ChatClient
	if cfg.OpenRouter.APIKey != "" {
		openRouterConnector, err = connector.NewOpenRouterConnector(&cfg.OpenRouter, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenRouter connector: %w", err)
		}
	} else {
		log.Warn("OPENROUTER_API_KEY not set, fallback provider disabled")
	}

	// Initialize services
	generator, err := app.NewDescriptionGenerator(groqConnector, openRouterConnector, &cfg.Groq, cfg.OpenRouter.Model, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create description generator: %w", err)
	}

	runService, err := app.NewSheetRunService(sheetConnector, generator, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create run service: %w", err)
	}

	jobService, err := app.NewJobService(runService, jobRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create job service: %w", err)
	}

	previewService, err := app.NewSheetPreviewService(sheetConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create preview service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		jobService:     jobService,
		previewService: previewService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.jobService, deps.previewService, &cfg.Auth)

	// Serve OpenAPI document
	r.GET(v1.BasePath+"/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/description-generator.yaml")
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Stop a running generation job before shutting the server down
	if stopped, err := deps.jobService.Stop(context.Background()); err != nil {
		log.Warn("Failed to stop running job: ", err)
	} else if stopped {
		log.Info("Requested cancellation of the running generation job")
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
