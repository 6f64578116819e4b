//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/profile"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSummaryHandler_Create_SetsRelationshipForeignKeys(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewSummaryHandler(mocks.profile, resolver)

	mocks.profile.On("CreateSummary", mock.Anything, mock.MatchedBy(func(summary *profile.Summary) bool {
		return summary.Content == "Seasoned gopher" &&
			summary.UserID != nil && *summary.UserID == 1 &&
			summary.JobPostID != nil && *summary.JobPostID == 7
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*profile.Summary).ID = 3
	}).Return(nil)

	body := `{"data": {"type": "summaries", "attributes": {"content": "Seasoned gopher"}, "relationships": {"user": {"data": {"type": "users", "id": "1"}}, "job-post": {"data": {"type": "job-posts", "id": "7"}}}}}`
	c, w := newTestContext(t, "POST", "/summaries", body)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"3"`)
	assert.Contains(t, w.Body.String(), "Seasoned gopher")
	mocks.profile.AssertExpectations(t)
}

func TestSummaryHandler_List_UserFilter(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewSummaryHandler(mocks.profile, resolver)

	mocks.profile.On("ListSummaries", mock.Anything, mock.MatchedBy(func(query *profile.SummaryQuery) bool {
		return query.UserID != nil && *query.UserID == 2
	})).Return([]*profile.Summary{}, nil)

	c, w := newTestContext(t, "GET", "/summaries?filter[user]=2&include=", "")

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.profile.AssertExpectations(t)
}

func TestExperienceHandler_Create_InvalidStartDateRejected(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewExperienceHandler(mocks.profile, resolver)

	body := `{"data": {"type": "experiences", "attributes": {"title": "Engineer", "start_date": "not a date"}}}`
	c, w := newTestContext(t, "POST", "/experiences", body)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid start_date")
	mocks.profile.AssertNotCalled(t, "CreateExperience", mock.Anything, mock.Anything)
}

func TestExperienceHandler_Create_BareDateAccepted(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewExperienceHandler(mocks.profile, resolver)

	mocks.profile.On("CreateExperience", mock.Anything, mock.MatchedBy(func(experience *profile.Experience) bool {
		return experience.Title == "Engineer" &&
			experience.StartDate != nil && experience.StartDate.Equal(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)) &&
			experience.CompanyID != nil && *experience.CompanyID == 4
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*profile.Experience).ID = 9
	}).Return(nil)

	body := `{"data": {"type": "experiences", "attributes": {"title": "Engineer", "start_date": "2021-06-01", "location": "Remote"}, "relationships": {"company": {"data": {"type": "companies", "id": "4"}}}}}`
	c, w := newTestContext(t, "POST", "/experiences", body)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"9"`)
	assert.Contains(t, w.Body.String(), "Remote")
	mocks.profile.AssertExpectations(t)
}

func TestExperienceHandler_GetByID_IncludesDescriptions(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewExperienceHandler(mocks.profile, resolver)

	mocks.profile.On("GetExperienceByID", mock.Anything, uint(9)).
		Return(&profile.Experience{ID: 9, Title: "Engineer"}, nil)
	mocks.profile.On("ListDescriptions", mock.Anything, mock.MatchedBy(func(query *profile.DescriptionQuery) bool {
		return query.ExperienceID != nil && *query.ExperienceID == 9
	})).Return([]*profile.Description{{ID: 2, Content: "Shipped the billing service"}}, nil)

	c, w := newTestContext(t, "GET", "/experiences/9?include=descriptions", "")
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"included"`)
	assert.Contains(t, w.Body.String(), "Shipped the billing service")
	mocks.profile.AssertExpectations(t)
}

func TestEducationHandler_Update_PartialAttributes(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewEducationHandler(mocks.profile, resolver)

	mocks.profile.On("GetEducationByID", mock.Anything, uint(5)).
		Return(&profile.Education{ID: 5, Institution: "State University", Major: "History"}, nil)
	mocks.profile.On("UpdateEducation", mock.Anything, mock.MatchedBy(func(education *profile.Education) bool {
		return education.Major == "Computer Science" && education.Institution == "State University"
	})).Return(nil)

	body := `{"data": {"type": "educations", "attributes": {"major": "Computer Science"}}}`
	c, w := newTestContext(t, "PATCH", "/educations/5", body)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Computer Science")
	mocks.profile.AssertExpectations(t)
}

func TestCertificationHandler_Create_InvalidIssueDateRejected(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewCertificationHandler(mocks.profile, resolver)

	body := `{"data": {"type": "certifications", "attributes": {"title": "CKA", "issue_date": "soonish"}}}`
	c, w := newTestContext(t, "POST", "/certifications", body)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid issue_date")
	mocks.profile.AssertNotCalled(t, "CreateCertification", mock.Anything, mock.Anything)
}

func TestDescriptionHandler_Create_Success(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewDescriptionHandler(mocks.profile, resolver)

	mocks.profile.On("CreateDescription", mock.Anything, mock.MatchedBy(func(description *profile.Description) bool {
		return description.Content == "Led a team of four"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*profile.Description).ID = 11
	}).Return(nil)

	body := `{"data": {"type": "descriptions", "attributes": {"content": "Led a team of four"}}}`
	c, w := newTestContext(t, "POST", "/descriptions", body)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"11"`)
	mocks.profile.AssertExpectations(t)
}

func TestDescriptionHandler_DeleteByID_NoContent(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewDescriptionHandler(mocks.profile, resolver)

	mocks.profile.On("DeleteDescriptionByID", mock.Anything, uint(11)).Return(nil)

	c, w := newTestContext(t, "DELETE", "/descriptions/11", "")
	c.Params = gin.Params{{Key: "id", Value: "11"}}

	handler.DeleteByID(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mocks.profile.AssertExpectations(t)
}
