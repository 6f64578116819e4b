//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestJobPostHandler_Create_InvalidPostedDateRejected(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewJobPostHandler(mocks.posting, resolver)

	body := `{"data": {"type": "job-posts", "attributes": {"title": "Engineer", "posted_date": "not a date"}}}`
	c, w := newTestContext(t, "POST", "/job-posts", body)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid posted_date")
	mocks.posting.AssertNotCalled(t, "CreateJobPost", mock.Anything, mock.Anything)
}

func TestJobPostHandler_Update_InvalidPostedDatePreservesStoredValue(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewJobPostHandler(mocks.posting, resolver)

	stored := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	jobPost := &postings.JobPost{ID: 5, Title: "Engineer", PostedDate: &stored}
	mocks.posting.On("GetJobPostByID", mock.Anything, uint(5)).Return(jobPost, nil)

	body := `{"data": {"type": "job-posts", "attributes": {"posted_date": "not a date"}}}`
	c, w := newTestContext(t, "PATCH", "/job-posts/5", body)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid posted_date")
	mocks.posting.AssertNotCalled(t, "UpdateJobPost", mock.Anything, mock.Anything)
	require.NotNil(t, jobPost.PostedDate)
	assert.Equal(t, stored, *jobPost.PostedDate)
}

func TestJobPostHandler_Update_NullPostedDateClears(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewJobPostHandler(mocks.posting, resolver)

	stored := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	jobPost := &postings.JobPost{ID: 5, Title: "Engineer", PostedDate: &stored}
	mocks.posting.On("GetJobPostByID", mock.Anything, uint(5)).Return(jobPost, nil)
	mocks.posting.On("UpdateJobPost", mock.Anything, mock.MatchedBy(func(updated *postings.JobPost) bool {
		return updated.PostedDate == nil
	})).Return(nil)

	body := `{"data": {"type": "job-posts", "attributes": {"posted_date": null}}}`
	c, w := newTestContext(t, "PATCH", "/job-posts/5", body)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"posted_date":null`)
	mocks.posting.AssertExpectations(t)
}

func TestApplicationHandler_Update_InvalidAppliedAtRejected(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewApplicationHandler(mocks.tracking, resolver)

	application := &tracking.Application{ID: 9, Status: "applied"}
	mocks.tracking.On("GetApplicationByID", mock.Anything, uint(9)).Return(application, nil)

	body := `{"data": {"type": "applications", "attributes": {"applied_at": "yesterday-ish"}}}`
	c, w := newTestContext(t, "PATCH", "/applications/9", body)
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid applied_at")
	mocks.tracking.AssertNotCalled(t, "UpdateApplication", mock.Anything, mock.Anything)
}
