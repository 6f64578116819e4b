//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/domain/postings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRelationshipHandler_Linkage_ToMany(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := newRelationshipHandler(resolver)

	userID := uint(1)
	mocks.document.On("ListResumes", mock.Anything, mock.Anything).
		Return([]*documents.Resume{{ID: 4, UserID: &userID}, {ID: 5, UserID: &userID}}, nil)

	c, w := newTestContext(t, "GET", "/users/1/relationships/resumes", "")
	c.Params = gin.Params{{Key: "id", Value: "1"}, {Key: "rel", Value: "resumes"}}

	handler.Linkage(TypeUsers)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"type":"resumes","id":"4"}`)
	assert.Contains(t, w.Body.String(), `{"type":"resumes","id":"5"}`)
	assert.NotContains(t, w.Body.String(), "attributes")
	mocks.document.AssertExpectations(t)
}

func TestRelationshipHandler_Linkage_ToOneNull(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := newRelationshipHandler(resolver)

	mocks.posting.On("GetScrapeByID", mock.Anything, uint(2)).
		Return(&postings.Scrape{ID: 2}, nil)

	c, w := newTestContext(t, "GET", "/scrapes/2/relationships/job-post", "")
	c.Params = gin.Params{{Key: "id", Value: "2"}, {Key: "rel", Value: "job-post"}}

	handler.Linkage(TypeScrapes)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":null`)
}

func TestRelationshipHandler_Linkage_UnknownRelationship(t *testing.T) {
	resolver, _ := newTestResolver()
	handler := newRelationshipHandler(resolver)

	c, w := newTestContext(t, "GET", "/users/1/relationships/companies", "")
	c.Params = gin.Params{{Key: "id", Value: "1"}, {Key: "rel", Value: "companies"}}

	handler.Linkage(TypeUsers)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no relationship")
}

func TestRelationshipHandler_Related_EmptyCollectionIsArray(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := newRelationshipHandler(resolver)

	mocks.document.On("ListResumes", mock.Anything, mock.Anything).
		Return([]*documents.Resume{}, nil)

	c, w := newTestContext(t, "GET", "/users/1/resumes", "")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Related(TypeUsers, "resumes")(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestRelationshipHandler_Related_ToOneResource(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := newRelationshipHandler(resolver)

	companyID := uint(12)
	mocks.posting.On("GetScrapeByID", mock.Anything, uint(2)).
		Return(&postings.Scrape{ID: 2, CompanyID: &companyID}, nil)
	mocks.posting.On("GetCompanyByID", mock.Anything, uint(12)).
		Return(&postings.Company{ID: 12, Name: "initech"}, nil)

	c, w := newTestContext(t, "GET", "/scrapes/2/company", "")
	c.Params = gin.Params{{Key: "id", Value: "2"}}

	handler.Related(TypeScrapes, "company")(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "initech")
	assert.Contains(t, w.Body.String(), `"type":"companies"`)
	mocks.posting.AssertExpectations(t)
}
