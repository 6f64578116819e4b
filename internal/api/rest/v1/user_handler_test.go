//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"testing"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/domain/documents"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type resolverMocks struct {
	account  *MockAccountService
	posting  *MockPostingService
	document *MockDocumentService
	tracking *MockTrackingService
	profile  *MockProfileService
}

func newTestResolver() (*relatedResolver, *resolverMocks) {
	mocks := &resolverMocks{
		account:  new(MockAccountService),
		posting:  new(MockPostingService),
		document: new(MockDocumentService),
		tracking: new(MockTrackingService),
		profile:  new(MockProfileService),
	}
	resolver := &relatedResolver{
		accountService:  mocks.account,
		postingService:  mocks.posting,
		documentService: mocks.document,
		trackingService: mocks.tracking,
		profileService:  mocks.profile,
	}
	return resolver, mocks
}

func TestUserHandler_List_Success(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewUserHandler(mocks.account, resolver)

	users := []*accounts.User{
		{ID: 1, Name: "Casey", Email: "casey@example.com"},
		{ID: 2, Name: "Riley", Email: "riley@example.com"},
	}
	mocks.account.On("ListUsers", mock.Anything, mock.Anything).Return(users, nil)

	c, w := newTestContext(t, "GET", "/users?include=", "")

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "casey@example.com")
	assert.Contains(t, w.Body.String(), "riley@example.com")
	mocks.account.AssertExpectations(t)
}

func TestUserHandler_List_EmailFilter(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewUserHandler(mocks.account, resolver)

	mocks.account.On("ListUsers", mock.Anything, mock.MatchedBy(func(query *accounts.UserQuery) bool {
		return query.Email == "casey@example.com"
	})).Return([]*accounts.User{}, nil)

	c, w := newTestContext(t, "GET", "/users?filter[email]=casey@example.com&include=", "")

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.account.AssertExpectations(t)
}

func TestUserHandler_GetByID_IncludesRelatedResumes(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewUserHandler(mocks.account, resolver)

	userID := uint(1)
	mocks.account.On("GetUserByID", mock.Anything, uint(1)).
		Return(&accounts.User{ID: 1, Name: "Casey"}, nil)
	mocks.document.On("ListResumes", mock.Anything, mock.Anything).
		Return([]*documents.Resume{{ID: 4, UserID: &userID, Content: "resume body"}}, nil)

	c, w := newTestContext(t, "GET", "/users/1?include=resumes", "")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"included"`)
	assert.Contains(t, w.Body.String(), "resume body")
	mocks.account.AssertExpectations(t)
	mocks.document.AssertExpectations(t)
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewUserHandler(mocks.account, resolver)

	mocks.account.On("GetUserByID", mock.Anything, uint(99)).
		Return(nil, errors.New("record not found"))

	c, w := newTestContext(t, "GET", "/users/99", "")
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestUserHandler_Create_Success(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewUserHandler(mocks.account, resolver)

	mocks.account.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *accounts.User) bool {
		return user.Email == "casey@example.com"
	}), "hunter2").Run(func(args mock.Arguments) {
		args.Get(1).(*accounts.User).ID = 5
	}).Return(nil)

	body := `{"data": {"type": "users", "attributes": {"name": "Casey", "email": "casey@example.com", "password": "hunter2"}}}`
	c, w := newTestContext(t, "POST", "/users", body)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"5"`)
	assert.NotContains(t, w.Body.String(), "hunter2")
	mocks.account.AssertExpectations(t)
}

func TestUserHandler_Create_ContactFields(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewUserHandler(mocks.account, resolver)

	mocks.account.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *accounts.User) bool {
		return user.Username == "casey" && user.FirstName == "Casey" &&
			user.LastName == "Jordan" && user.Phone == "+1-555-0100"
	}), "").Run(func(args mock.Arguments) {
		args.Get(1).(*accounts.User).ID = 6
	}).Return(nil)

	body := `{"data": {"type": "users", "attributes": {"username": "casey", "first_name": "Casey", "last_name": "Jordan", "phone": "+1-555-0100"}}}`
	c, w := newTestContext(t, "POST", "/users", body)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"casey"`)
	assert.Contains(t, w.Body.String(), `"first_name":"Casey"`)
	assert.Contains(t, w.Body.String(), `"last_name":"Jordan"`)
	assert.Contains(t, w.Body.String(), `"phone":"+1-555-0100"`)
	mocks.account.AssertExpectations(t)
}

func TestUserHandler_Update_ContactFieldsOnlyWhenPresent(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewUserHandler(mocks.account, resolver)

	mocks.account.On("GetUserByID", mock.Anything, uint(5)).
		Return(&accounts.User{ID: 5, Username: "casey", Phone: "+1-555-0100"}, nil)
	mocks.account.On("UpdateUser", mock.Anything, mock.MatchedBy(func(user *accounts.User) bool {
		return user.Username == "casey" && user.Phone == "+1-555-0199"
	}), (*string)(nil)).Return(nil)

	body := `{"data": {"type": "users", "attributes": {"phone": "+1-555-0199"}}}`
	c, w := newTestContext(t, "PATCH", "/users/5", body)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.account.AssertExpectations(t)
}

func TestUserHandler_Create_TypeMismatch(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewUserHandler(mocks.account, resolver)

	body := `{"data": {"type": "companies", "attributes": {"name": "Casey"}}}`
	c, w := newTestContext(t, "POST", "/users", body)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mocks.account.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_Update_PasswordOnlyWhenPresent(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewUserHandler(mocks.account, resolver)

	mocks.account.On("GetUserByID", mock.Anything, uint(5)).
		Return(&accounts.User{ID: 5, Name: "Casey", Email: "casey@example.com"}, nil)
	mocks.account.On("UpdateUser", mock.Anything, mock.MatchedBy(func(user *accounts.User) bool {
		return user.Name == "Casey Updated"
	}), (*string)(nil)).Return(nil)

	body := `{"data": {"type": "users", "attributes": {"name": "Casey Updated"}}}`
	c, w := newTestContext(t, "PATCH", "/users/5", body)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Casey Updated")
	mocks.account.AssertExpectations(t)
}

func TestUserHandler_Update_ReplacesPassword(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewUserHandler(mocks.account, resolver)

	mocks.account.On("GetUserByID", mock.Anything, uint(5)).
		Return(&accounts.User{ID: 5}, nil)
	mocks.account.On("UpdateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(password *string) bool {
		return password != nil && *password == "new-secret"
	})).Return(nil)

	body := `{"data": {"type": "users", "attributes": {"password": "new-secret"}}}`
	c, w := newTestContext(t, "PATCH", "/users/5", body)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.account.AssertExpectations(t)
}

func TestUserHandler_DeleteByID_MissingIsNoContent(t *testing.T) {
	resolver, mocks := newTestResolver()
	handler := NewUserHandler(mocks.account, resolver)

	mocks.account.On("DeleteUserByID", mock.Anything, uint(99)).Return(nil)

	c, w := newTestContext(t, "DELETE", "/users/99", "")
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	handler.DeleteByID(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mocks.account.AssertExpectations(t)
}
