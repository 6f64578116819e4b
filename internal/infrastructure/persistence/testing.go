//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"
	"github.com/overcast-software/career-caddy-api/internal/pkg/config"
	"github.com/overcast-software/career-caddy-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB              *gorm.DB
	UserRepo        accounts.UserRepository
	APIKeyRepo      accounts.APIKeyRepository
	CompanyRepo     postings.CompanyRepository
	JobPostRepo     postings.JobPostRepository
	ScrapeRepo      postings.ScrapeRepository
	ResumeRepo      documents.ResumeRepository
	ScoreRepo       documents.ScoreRepository
	CoverLetterRepo documents.CoverLetterRepository
	ApplicationRepo tracking.ApplicationRepository
	StatusRepo      tracking.StatusRepository
	StatusEventRepo tracking.StatusEventRepository

	SummaryRepo       profile.SummaryRepository
	ExperienceRepo    profile.ExperienceRepository
	EducationRepo     profile.EducationRepository
	CertificationRepo profile.CertificationRepository
	DescriptionRepo   profile.DescriptionRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	tc := &TestContext{DB: db}

	tc.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	tc.APIKeyRepo, err = NewGormAPIKeyRepository(db, log)
	require.NoError(t, err)
	tc.CompanyRepo, err = NewGormCompanyRepository(db, log)
	require.NoError(t, err)
	tc.JobPostRepo, err = NewGormJobPostRepository(db, log)
	require.NoError(t, err)
	tc.ScrapeRepo, err = NewGormScrapeRepository(db, log)
	require.NoError(t, err)
	tc.ResumeRepo, err = NewGormResumeRepository(db, log)
	require.NoError(t, err)
	tc.ScoreRepo, err = NewGormScoreRepository(db, log)
	require.NoError(t, err)
	tc.CoverLetterRepo, err = NewGormCoverLetterRepository(db, log)
	require.NoError(t, err)
	tc.ApplicationRepo, err = NewGormApplicationRepository(db, log)
	require.NoError(t, err)
	tc.StatusRepo, err = NewGormStatusRepository(db, log)
	require.NoError(t, err)
	tc.StatusEventRepo, err = NewGormStatusEventRepository(db, log)
	require.NoError(t, err)
	tc.SummaryRepo, err = NewGormSummaryRepository(db, log)
	require.NoError(t, err)
	tc.ExperienceRepo, err = NewGormExperienceRepository(db, log)
	require.NoError(t, err)
	tc.EducationRepo, err = NewGormEducationRepository(db, log)
	require.NoError(t, err)
	tc.CertificationRepo, err = NewGormCertificationRepository(db, log)
	require.NoError(t, err)
	tc.DescriptionRepo, err = NewGormDescriptionRepository(db, log)
	require.NoError(t, err)

	return tc
}

// CreateTestUser stores a user with a throwaway email
func CreateTestUser(t *testing.T, tc *TestContext) *accounts.User {
	t.Helper()

	user := &accounts.User{
		Name:  "Test User",
		Email: "test-" + uuid.NewString()[:8] + "@example.com",
	}
	require.NoError(t, tc.UserRepo.Create(context.Background(), user))
	return user
}

// CreateTestCompany stores a company
func CreateTestCompany(t *testing.T, tc *TestContext, name string) *postings.Company {
	t.Helper()

	if name == "" {
		name = "test-company"
	}
	company := &postings.Company{Name: name}
	require.NoError(t, tc.CompanyRepo.Create(context.Background(), company))
	return company
}
