// cmd/career-caddy-api/main.go
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

	v1 "github.com/overcast-software/career-caddy-api/internal/api/rest/v1"
	"github.com/overcast-software/career-caddy-api/internal/app"
	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"
	"github.com/overcast-software/career-caddy-api/internal/infrastructure/persistence"
	"github.com/overcast-software/career-caddy-api/internal/pkg/config"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"
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
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	account  accounts.AccountService
	apiKey   accounts.APIKeyService
	token    accounts.TokenService
	posting  postings.PostingService
	document documents.DocumentService
	ingest   documents.IngestService
	tracking tracking.TrackingService
	profile  profile.ProfileService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations before accepting any traffic
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	services, err := initializeApplicationServices(db, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// initializeApplicationServices wires repositories into the service layer
func initializeApplicationServices(db *gorm.DB, cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	apiKeyRepo, err := persistence.NewGormAPIKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create API key repository: %w", err)
	}
	companyRepo, err := persistence.NewGormCompanyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create company repository: %w", err)
	}
	jobPostRepo, err := persistence.NewGormJobPostRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create job post repository: %w", err)
	}
	scrapeRepo, err := persistence.NewGormScrapeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scrape repository: %w", err)
	}
	resumeRepo, err := persistence.NewGormResumeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume repository: %w", err)
	}
	scoreRepo, err := persistence.NewGormScoreRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create score repository: %w", err)
	}
	coverLetterRepo, err := persistence.NewGormCoverLetterRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cover letter repository: %w", err)
	}
	applicationRepo, err := persistence.NewGormApplicationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create application repository: %w", err)
	}
	statusRepo, err := persistence.NewGormStatusRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create status repository: %w", err)
	}
	statusEventRepo, err := persistence.NewGormStatusEventRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create status event repository: %w", err)
	}
	summaryRepo, err := persistence.NewGormSummaryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary repository: %w", err)
	}
	experienceRepo, err := persistence.NewGormExperienceRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create experience repository: %w", err)
	}
	educationRepo, err := persistence.NewGormEducationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create education repository: %w", err)
	}
	certificationRepo, err := persistence.NewGormCertificationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create certification repository: %w", err)
	}
	descriptionRepo, err := persistence.NewGormDescriptionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create description repository: %w", err)
	}

	accountService, err := app.NewAccountService(userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}
	apiKeyService, err := app.NewAPIKeyService(apiKeyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create API key service: %w", err)
	}
	tokenService, err := app.NewTokenService(accountService, cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	postingService, err := app.NewPostingService(companyRepo, jobPostRepo, scrapeRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create posting service: %w", err)
	}
	documentService, err := app.NewDocumentService(resumeRepo, scoreRepo, coverLetterRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document service: %w", err)
	}
	ingestService, err := app.NewIngestService(resumeRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ingest service: %w", err)
	}
	trackingService, err := app.NewTrackingService(applicationRepo, statusRepo, statusEventRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracking service: %w", err)
	}
	profileService, err := app.NewProfileService(summaryRepo, experienceRepo, educationRepo, certificationRepo, descriptionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	return &appServices{
		account:  accountService,
		apiKey:   apiKeyService,
		token:    tokenService,
		posting:  postingService,
		document: documentService,
		ingest:   ingestService,
		tracking: trackingService,
		profile:  profileService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.db,
		deps.services.account,
		deps.services.apiKey,
		deps.services.token,
		deps.services.posting,
		deps.services.document,
		deps.services.ingest,
		deps.services.tracking,
		deps.services.profile,
	)

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
