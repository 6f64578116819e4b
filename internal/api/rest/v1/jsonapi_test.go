//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	c.Request = req

	return c, w
}

func TestParsePage_Defaults(t *testing.T) {
	c, _ := newTestContext(t, "GET", "/users", "")

	page := parsePage(c)

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, DefaultPageSize, page.Size)
	assert.Equal(t, DefaultPageSize, page.Limit())
	assert.Equal(t, 0, page.Offset())
}

func TestParsePage_Explicit(t *testing.T) {
	c, _ := newTestContext(t, "GET", "/users?page[number]=3&page[size]=10", "")

	page := parsePage(c)

	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, 20, page.Offset())
}

func TestParsePage_MalformedFallsBackToDefaults(t *testing.T) {
	c, _ := newTestContext(t, "GET", "/users?page[number]=zero&page[size]=-5", "")

	page := parsePage(c)

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, DefaultPageSize, page.Size)
}

func TestParseInclude_AbsentIncludesEverything(t *testing.T) {
	c, _ := newTestContext(t, "GET", "/users/1", "")

	includes := parseInclude(c)

	assert.True(t, includes.Has("resumes"))
	assert.True(t, includes.Has("applications"))
	assert.False(t, includes.Empty())
}

func TestParseInclude_EmptyIncludesNothing(t *testing.T) {
	c, _ := newTestContext(t, "GET", "/users/1?include=", "")

	includes := parseInclude(c)

	assert.True(t, includes.Empty())
	assert.False(t, includes.Has("resumes"))
}

func TestParseInclude_NamedRelationships(t *testing.T) {
	c, _ := newTestContext(t, "GET", "/users/1?include=resumes,%20scores", "")

	includes := parseInclude(c)

	assert.True(t, includes.Has("resumes"))
	assert.True(t, includes.Has("scores"))
	assert.False(t, includes.Has("applications"))
}

func TestPathID_Invalid(t *testing.T) {
	c, w := newTestContext(t, "GET", "/users/abc", "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	_, ok := pathID(c)

	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "invalid resource id")
}

func TestPathID_Valid(t *testing.T) {
	c, _ := newTestContext(t, "GET", "/users/42", "")
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, ok := pathID(c)

	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestIncludeCollector_DeduplicatesByTypeAndID(t *testing.T) {
	collector := newIncludeCollector()

	collector.Add(&Resource{Type: TypeUsers, ID: "1"})
	collector.Add(&Resource{Type: TypeUsers, ID: "1"})
	collector.Add(&Resource{Type: TypeResumes, ID: "1"})

	assert.Len(t, collector.Resources(), 2)
}

func TestToOneRelationship_NilForeignKey(t *testing.T) {
	rel := toOneRelationship(TypeResumes, 5, "user", TypeUsers, nil)

	assert.Nil(t, rel.Data)
	assert.Equal(t, "/api/v1/resumes/5/relationships/user", rel.Links.Self)
	assert.Equal(t, "/api/v1/resumes/5/user", rel.Links.Related)
}

func TestToOneRelationship_WithForeignKey(t *testing.T) {
	userID := uint(9)
	rel := toOneRelationship(TypeResumes, 5, "user", TypeUsers, &userID)

	require.NotNil(t, rel.Data)
	identifier := rel.Data.(*ResourceIdentifier)
	assert.Equal(t, TypeUsers, identifier.Type)
	assert.Equal(t, "9", identifier.ID)
}

func TestAttrTime_AcceptsTimestampAndBareDate(t *testing.T) {
	attrs := map[string]interface{}{
		"posted_date":     "2024-03-01",
		"extraction_date": "2024-03-01T12:30:00Z",
		"cleared":         nil,
		"blank":           "",
	}

	posted, err := attrTime(attrs, "posted_date")
	require.NoError(t, err)
	require.NotNil(t, posted)
	assert.Equal(t, 2024, posted.Year())

	extracted, err := attrTime(attrs, "extraction_date")
	require.NoError(t, err)
	require.NotNil(t, extracted)
	assert.Equal(t, 12, extracted.Hour())

	cleared, err := attrTime(attrs, "cleared")
	require.NoError(t, err)
	assert.Nil(t, cleared)

	blank, err := attrTime(attrs, "blank")
	require.NoError(t, err)
	assert.Nil(t, blank)

	missing, err := attrTime(attrs, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAttrTime_RejectsUnparseableValue(t *testing.T) {
	attrs := map[string]interface{}{
		"posted_date": "not-a-date",
		"applied_at":  12345.0,
	}

	_, err := attrTime(attrs, "posted_date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid posted_date")

	_, err = attrTime(attrs, "applied_at")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid applied_at")
}

func TestBindPayload_TypeMismatch(t *testing.T) {
	body := `{"data": {"type": "companies", "attributes": {"name": "x"}}}`
	c, w := newTestContext(t, "POST", "/users", body)

	_, ok := bindPayload(c, TypeUsers)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "does not match endpoint type")
}

func TestBindPayload_MalformedBody(t *testing.T) {
	c, w := newTestContext(t, "POST", "/users", "{not json")

	_, ok := bindPayload(c, TypeUsers)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBindPayload_RelationshipID(t *testing.T) {
	body := `{"data": {"type": "scores", "attributes": {"score": 85}, "relationships": {"resume": {"data": {"type": "resumes", "id": "4"}}, "user": {"data": null}}}}`
	c, _ := newTestContext(t, "POST", "/scores", body)

	payload, ok := bindPayload(c, TypeScores)
	require.True(t, ok)

	resumeID := payload.relationshipID("resume")
	require.NotNil(t, resumeID)
	assert.Equal(t, uint(4), *resumeID)

	assert.Nil(t, payload.relationshipID("user"))
	assert.Nil(t, payload.relationshipID("job-post"))

	score := attrIntPtr(payload.Data.Attributes, "score")
	require.NotNil(t, score)
	assert.Equal(t, 85, *score)
}
