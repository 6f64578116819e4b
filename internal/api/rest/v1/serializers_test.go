//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserResource_NeverExposesPasswordHash(t *testing.T) {
	user := &accounts.User{
		ID:           7,
		Name:         "Casey",
		Email:        "casey@example.com",
		PasswordHash: "$2a$10$secret",
	}

	resource := userResource(user)

	assert.Equal(t, TypeUsers, resource.Type)
	assert.Equal(t, "7", resource.ID)
	assert.Equal(t, "Casey", resource.Attributes["name"])
	assert.Equal(t, "/api/v1/users/7", resource.Links.Self)

	serialized, err := json.Marshal(resource)
	require.NoError(t, err)
	assert.NotContains(t, string(serialized), "secret")
	assert.NotContains(t, string(serialized), "password")
}

func TestUserResource_RelationshipLinks(t *testing.T) {
	resource := userResource(&accounts.User{ID: 7})

	require.Len(t, resource.Relationships, 5)
	for _, relName := range []string{"resumes", "scores", "cover-letters", "applications", "summaries"} {
		rel := resource.Relationships[relName]
		require.NotNil(t, rel, relName)
		assert.Equal(t, "/api/v1/users/7/relationships/"+relName, rel.Links.Self)
		assert.Equal(t, "/api/v1/users/7/"+relName, rel.Links.Related)
		assert.Nil(t, rel.Data)
	}
}

func TestJobPostResource_OptionalDates(t *testing.T) {
	posted := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	jobPost := &postings.JobPost{
		ID:         3,
		Title:      "Engineer",
		PostedDate: &posted,
	}

	resource := jobPostResource(jobPost)

	assert.Equal(t, "2024-03-01T00:00:00Z", resource.Attributes["posted_date"])
	assert.Nil(t, resource.Attributes["extraction_date"])
	assert.Nil(t, resource.Attributes["created_at"])
}

func TestJobPostResource_CompanyLinkage(t *testing.T) {
	companyID := uint(12)
	resource := jobPostResource(&postings.JobPost{ID: 3, CompanyID: &companyID})

	rel := resource.Relationships["company"]
	require.NotNil(t, rel)
	identifier := rel.Data.(*ResourceIdentifier)
	assert.Equal(t, TypeCompanies, identifier.Type)
	assert.Equal(t, "12", identifier.ID)
}

func TestScoreResource_NilScoreValue(t *testing.T) {
	resource := scoreResource(&documents.Score{ID: 2, Explanation: "pending"})

	assert.Nil(t, resource.Attributes["score"])
	assert.Equal(t, "pending", resource.Attributes["explanation"])
}

func TestScoreResource_ScoreValue(t *testing.T) {
	value := 85
	resource := scoreResource(&documents.Score{ID: 2, Score: &value})

	assert.Equal(t, 85, resource.Attributes["score"])
}

func TestApplicationResource_AllRelationships(t *testing.T) {
	userID, jobPostID := uint(1), uint(2)
	application := &tracking.Application{
		ID:        9,
		Status:    "applied",
		UserID:    &userID,
		JobPostID: &jobPostID,
	}

	resource := applicationResource(application)

	require.Len(t, resource.Relationships, 6)
	assert.NotNil(t, resource.Relationships["user"].Data)
	assert.NotNil(t, resource.Relationships["job-post"].Data)
	assert.Nil(t, resource.Relationships["company"].Data)
	assert.Nil(t, resource.Relationships["resume"].Data)
	assert.Nil(t, resource.Relationships["cover-letter"].Data)
	assert.Nil(t, resource.Relationships["statuses"].Data)
}

func TestStatusResource_HasNoRelationships(t *testing.T) {
	resource := statusResource(&tracking.Status{ID: 4, Status: "phone screen", StatusType: "interview"})

	assert.Empty(t, resource.Relationships)
	assert.Equal(t, "phone screen", resource.Attributes["status"])
	assert.Equal(t, "interview", resource.Attributes["status_type"])
}

func TestUserResource_ContactAttributes(t *testing.T) {
	resource := userResource(&accounts.User{
		ID:        7,
		Username:  "casey",
		FirstName: "Casey",
		LastName:  "Jordan",
		Phone:     "+1-555-0100",
	})

	assert.Equal(t, "casey", resource.Attributes["username"])
	assert.Equal(t, "Casey", resource.Attributes["first_name"])
	assert.Equal(t, "Jordan", resource.Attributes["last_name"])
	assert.Equal(t, "+1-555-0100", resource.Attributes["phone"])
}

func TestSummaryResource_RelationshipLinkage(t *testing.T) {
	userID, jobPostID := uint(1), uint(7)
	resource := summaryResource(&profile.Summary{ID: 3, Content: "pitch", UserID: &userID, JobPostID: &jobPostID})

	assert.Equal(t, TypeSummaries, resource.Type)
	assert.Equal(t, "pitch", resource.Attributes["content"])
	require.NotNil(t, resource.Relationships["user"].Data)
	require.NotNil(t, resource.Relationships["job-post"].Data)
	assert.Nil(t, resource.Relationships["resume"].Data)
}

func TestExperienceResource_OptionalDates(t *testing.T) {
	start := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	resource := experienceResource(&profile.Experience{ID: 9, Title: "Engineer", StartDate: &start})

	assert.Equal(t, "2021-06-01T00:00:00Z", resource.Attributes["start_date"])
	assert.Nil(t, resource.Attributes["end_date"])
	require.NotNil(t, resource.Relationships["descriptions"])
	assert.Equal(t, "/api/v1/experiences/9/descriptions", resource.Relationships["descriptions"].Links.Related)
}

func TestEducationResource_Attributes(t *testing.T) {
	resource := educationResource(&profile.Education{ID: 5, Institution: "State University", Major: "CS"})

	assert.Equal(t, TypeEducations, resource.Type)
	assert.Equal(t, "State University", resource.Attributes["institution"])
	assert.Nil(t, resource.Attributes["issue_date"])
	require.NotNil(t, resource.Relationships["resumes"])
}
