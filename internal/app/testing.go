//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"
	"github.com/overcast-software/career-caddy-api/internal/infrastructure/persistence"
	"github.com/overcast-software/career-caddy-api/internal/pkg/config"
	"github.com/overcast-software/career-caddy-api/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestAuthSettings are debug-mode token settings for integration tests
var TestAuthSettings = config.AuthSettings{
	SecretKey:         "integration-test-secret",
	AccessTTLMinutes:  5,
	RefreshTTLMinutes: 60,
	Debug:             true,
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AccountService  accounts.AccountService
	APIKeyService   accounts.APIKeyService
	TokenService    accounts.TokenService
	PostingService  postings.PostingService
	DocumentService documents.DocumentService
	IngestService   documents.IngestService
	TrackingService tracking.TrackingService
	ProfileService  profile.ProfileService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	accountService, err := NewAccountService(dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create AccountService")

	apiKeyService, err := NewAPIKeyService(dbContext.APIKeyRepo, logger)
	require.NoError(t, err, "Failed to create APIKeyService")

	tokenService, err := NewTokenService(accountService, TestAuthSettings, logger)
	require.NoError(t, err, "Failed to create TokenService")

	postingService, err := NewPostingService(
		dbContext.CompanyRepo,
		dbContext.JobPostRepo,
		dbContext.ScrapeRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create PostingService")

	documentService, err := NewDocumentService(
		dbContext.ResumeRepo,
		dbContext.ScoreRepo,
		dbContext.CoverLetterRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create DocumentService")

	ingestService, err := NewIngestService(dbContext.ResumeRepo, logger)
	require.NoError(t, err, "Failed to create IngestService")

	trackingService, err := NewTrackingService(
		dbContext.ApplicationRepo,
		dbContext.StatusRepo,
		dbContext.StatusEventRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create TrackingService")

	profileService, err := NewProfileService(
		dbContext.SummaryRepo,
		dbContext.ExperienceRepo,
		dbContext.EducationRepo,
		dbContext.CertificationRepo,
		dbContext.DescriptionRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create ProfileService")

	return &TestServices{
		AccountService:  accountService,
		APIKeyService:   apiKeyService,
		TokenService:    tokenService,
		PostingService:  postingService,
		DocumentService: documentService,
		IngestService:   ingestService,
		TrackingService: trackingService,
		ProfileService:  profileService,
		DBContext:       dbContext,
	}
}
