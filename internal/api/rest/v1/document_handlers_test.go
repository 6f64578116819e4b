//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"testing"

	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResumeHandler_Create_NewResume(t *testing.T) {
	resolver, mocks := newTestResolver()
	ingestService := new(MockIngestService)
	handler := NewResumeHandler(mocks.document, ingestService, resolver)

	userID := uint(1)
	resume := &documents.Resume{ID: 4, UserID: &userID, Content: "resume body"}
	ingestService.On("IngestResume", mock.Anything, &userID, "resume body", "").
		Return(resume, true, nil)

	body := `{"data": {"type": "resumes", "attributes": {"content": "resume body"}, "relationships": {"user": {"data": {"type": "users", "id": "1"}}}}}`
	c, w := newTestContext(t, "POST", "/resumes", body)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"4"`)
	ingestService.AssertExpectations(t)
}

func TestResumeHandler_Create_DuplicateContentIsOK(t *testing.T) {
	resolver, mocks := newTestResolver()
	ingestService := new(MockIngestService)
	handler := NewResumeHandler(mocks.document, ingestService, resolver)

	userID := uint(1)
	existing := &documents.Resume{ID: 4, UserID: &userID, Content: "resume body"}
	ingestService.On("IngestResume", mock.Anything, &userID, "resume body", "").
		Return(existing, false, nil)

	body := `{"data": {"type": "resumes", "attributes": {"content": "resume body"}, "relationships": {"user": {"data": {"type": "users", "id": "1"}}}}}`
	c, w := newTestContext(t, "POST", "/resumes", body)

	handler.Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"4"`)
}

func TestResumeHandler_Create_EmptyContentRejected(t *testing.T) {
	resolver, mocks := newTestResolver()
	ingestService := new(MockIngestService)
	handler := NewResumeHandler(mocks.document, ingestService, resolver)

	ingestService.On("IngestResume", mock.Anything, (*uint)(nil), "", "").
		Return(nil, false, errors.New("resume content is empty"))

	body := `{"data": {"type": "resumes", "attributes": {}}}`
	c, w := newTestContext(t, "POST", "/resumes", body)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "could not create resume")
}

func TestResumeHandler_Create_FavoriteAppliedAfterIngest(t *testing.T) {
	resolver, mocks := newTestResolver()
	ingestService := new(MockIngestService)
	handler := NewResumeHandler(mocks.document, ingestService, resolver)

	resume := &documents.Resume{ID: 4, Content: "resume body"}
	ingestService.On("IngestResume", mock.Anything, (*uint)(nil), "resume body", "").
		Return(resume, true, nil)
	mocks.document.On("UpdateResume", mock.Anything, mock.MatchedBy(func(updated *documents.Resume) bool {
		return updated.Favorite
	})).Return(nil)

	body := `{"data": {"type": "resumes", "attributes": {"content": "resume body", "favorite": true}}}`
	c, w := newTestContext(t, "POST", "/resumes", body)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mocks.document.AssertExpectations(t)
}

func TestApplicationHandler_AppendStatus(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewApplicationHandler(mocks.tracking, resolver)

	mocks.tracking.On("AppendStatusEvent", mock.Anything, uint(9), uint(3)).
		Return(&tracking.StatusEvent{ID: 20, ApplicationID: 9, StatusID: 3}, nil)
	mocks.tracking.On("GetStatusByID", mock.Anything, uint(3)).
		Return(&tracking.Status{ID: 3, Status: "phone screen", StatusType: "interview"}, nil)

	body := `{"data": {"type": "statuses", "id": "3"}}`
	c, w := newTestContext(t, "POST", "/applications/9/statuses", body)
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	handler.AppendStatus(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "phone screen")
	mocks.tracking.AssertExpectations(t)
}

func TestApplicationHandler_AppendStatus_MissingStatusID(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewApplicationHandler(mocks.tracking, resolver)

	body := `{"data": {"type": "statuses"}}`
	c, w := newTestContext(t, "POST", "/applications/9/statuses", body)
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	handler.AppendStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "status id is required")
	mocks.tracking.AssertNotCalled(t, "AppendStatusEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationHandler_ListStatusHistory(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewApplicationHandler(mocks.tracking, resolver)

	events := []*tracking.StatusEvent{
		{ID: 20, ApplicationID: 9, StatusID: 3},
		{ID: 21, ApplicationID: 9, StatusID: 5},
	}
	mocks.tracking.On("ListStatusEvents", mock.Anything, uint(9)).Return(events, nil)
	mocks.tracking.On("GetStatusByID", mock.Anything, uint(3)).
		Return(&tracking.Status{ID: 3, Status: "applied"}, nil)
	mocks.tracking.On("GetStatusByID", mock.Anything, uint(5)).
		Return(&tracking.Status{ID: 5, Status: "offer"}, nil)

	c, w := newTestContext(t, "GET", "/applications/9/statuses", "")
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	handler.ListStatusHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "applied")
	assert.Contains(t, w.Body.String(), "offer")
	mocks.tracking.AssertExpectations(t)
}
