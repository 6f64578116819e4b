//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"
	"github.com/overcast-software/career-caddy-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := CreateTestUser(t, tc)
	require.NotZero(t, user.ID)

	fetched, err := tc.UserRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, fetched.Email)

	byEmail, err := tc.UserRepo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_GetMissingReturnsNotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.UserRepo.GetByID(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUserRepository_RejectsBadEmail(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.UserRepo.Create(context.Background(), &accounts.User{Email: "not-an-email"})
	assert.Error(t, err)
}

func TestAPIKeyRepository_GetByHashIgnoresInactive(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := CreateTestUser(t, tc)
	key := &accounts.APIKey{
		Name:      "ci",
		KeyHash:   "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		KeyPrefix: "cc_testpref",
		UserID:    user.ID,
		IsActive:  true,
		Scopes:    []string{accounts.ScopeRead},
	}
	require.NoError(t, tc.APIKeyRepo.Create(ctx, key))

	fetched, err := tc.APIKeyRepo.GetByHash(ctx, key.KeyHash)
	require.NoError(t, err)
	assert.Equal(t, []string{accounts.ScopeRead}, fetched.Scopes)

	fetched.IsActive = false
	require.NoError(t, tc.APIKeyRepo.UpdateByID(ctx, fetched))

	_, err = tc.APIKeyRepo.GetByHash(ctx, key.KeyHash)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestResumeRepository_FirstByUserAndContent(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := CreateTestUser(t, tc)
	resume := &documents.Resume{Content: "plain text resume", UserID: &user.ID}
	require.NoError(t, tc.ResumeRepo.Create(ctx, resume))

	found, err := tc.ResumeRepo.FirstByUserAndContent(ctx, &user.ID, "plain text resume")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, resume.ID, found.ID)

	missing, err := tc.ResumeRepo.FirstByUserAndContent(ctx, &user.ID, "different content")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestResumeRepository_ListFiltersByUser(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	alice := CreateTestUser(t, tc)
	bob := CreateTestUser(t, tc)

	require.NoError(t, tc.ResumeRepo.Create(ctx, &documents.Resume{Content: "a", UserID: &alice.ID}))
	require.NoError(t, tc.ResumeRepo.Create(ctx, &documents.Resume{Content: "b", UserID: &bob.ID}))

	query := documents.NewResumeQuery()
	query.UserID = &alice.ID

	list, err := tc.ResumeRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].Content)
}

func TestJobPostRepository_ListByCompany(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	acme := CreateTestCompany(t, tc, "acme")
	other := CreateTestCompany(t, tc, "other")

	require.NoError(t, tc.JobPostRepo.Create(ctx, &postings.JobPost{Title: "Go Engineer", CompanyID: &acme.ID}))
	require.NoError(t, tc.JobPostRepo.Create(ctx, &postings.JobPost{Title: "Analyst", CompanyID: &other.ID}))

	query := postings.NewJobPostQuery()
	query.CompanyID = &acme.ID

	list, err := tc.JobPostRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Go Engineer", list[0].Title)
}

func TestScrapeRepository_DefaultsParseMethod(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	scrape := &postings.Scrape{URL: "https://jobs.example.com/1"}
	require.NoError(t, tc.ScrapeRepo.Create(ctx, scrape))

	fetched, err := tc.ScrapeRepo.GetByID(ctx, scrape.ID)
	require.NoError(t, err)
	assert.Equal(t, postings.DefaultParseMethod, fetched.ParseMethod)
	assert.Equal(t, "jobs.example.com", fetched.Host())
}

func TestStatusEventRepository_OrderedHistory(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := CreateTestUser(t, tc)
	application := &tracking.Application{UserID: &user.ID}
	require.NoError(t, tc.ApplicationRepo.Create(ctx, application))

	submitted := &tracking.Status{Status: "submitted"}
	interview := &tracking.Status{Status: "interview"}
	require.NoError(t, tc.StatusRepo.Create(ctx, submitted))
	require.NoError(t, tc.StatusRepo.Create(ctx, interview))

	require.NoError(t, tc.StatusEventRepo.Create(ctx, &tracking.StatusEvent{
		ApplicationID: application.ID, StatusID: submitted.ID,
	}))
	require.NoError(t, tc.StatusEventRepo.Create(ctx, &tracking.StatusEvent{
		ApplicationID: application.ID, StatusID: interview.ID,
	}))

	events, err := tc.StatusEventRepo.ListByApplication(ctx, application.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, submitted.ID, events[0].StatusID)
	assert.Equal(t, interview.ID, events[1].StatusID)

	require.NoError(t, tc.StatusEventRepo.DeleteByApplication(ctx, application.ID))
	events, err = tc.StatusEventRepo.ListByApplication(ctx, application.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestScoreRepository_RejectsOutOfRange(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	bad := 200
	err := tc.ScoreRepo.Create(context.Background(), &documents.Score{Score: &bad})
	assert.Error(t, err)
}
