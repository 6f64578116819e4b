package v1

import (
	"fmt"
	"net/http"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for handling user resource operations
type UserHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type userHandler struct {
	accountService accounts.AccountService
	resolver       *relatedResolver
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(accountService accounts.AccountService, resolver *relatedResolver) UserHandler {
	return &userHandler{
		accountService: accountService,
		resolver:       resolver,
	}
}

// List fetches a page of users as a compound document
func (handler *userHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := accounts.NewUserQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if email := ctx.Query("filter[email]"); email != "" {
		query.Email = email
	}

	users, err := handler.accountService.ListUsers(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(users))
	ids := make([]uint, len(users))
	for i, user := range users {
		resources[i] = userResource(user)
		ids[i] = user.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeUsers, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

// GetByID fetches a single user
func (handler *userHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	user, err := handler.accountService.GetUserByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("user with id %d not found", id))
		return
	}

	doc := &Document{Data: userResource(user)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeUsers, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

// Create stores a new user. The password attribute is write-only and
// bcrypt-hashed before storage.
func (handler *userHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeUsers)
	if !ok {
		return
	}

	user := &accounts.User{
		Name:      attrString(payload.Data.Attributes, "name"),
		Username:  attrString(payload.Data.Attributes, "username"),
		FirstName: attrString(payload.Data.Attributes, "first_name"),
		LastName:  attrString(payload.Data.Attributes, "last_name"),
		Email:     attrString(payload.Data.Attributes, "email"),
		Phone:     attrString(payload.Data.Attributes, "phone"),
	}
	password := attrString(payload.Data.Attributes, "password")

	if err := handler.accountService.CreateUser(ctx, user, password); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create user: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: userResource(user)})
}

// Update patches user attributes; a password attribute replaces the stored
// hash
func (handler *userHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	user, err := handler.accountService.GetUserByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("user with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeUsers)
	if !ok {
		return
	}

	if _, present := payload.Data.Attributes["name"]; present {
		user.Name = attrString(payload.Data.Attributes, "name")
	}
	if _, present := payload.Data.Attributes["username"]; present {
		user.Username = attrString(payload.Data.Attributes, "username")
	}
	if _, present := payload.Data.Attributes["first_name"]; present {
		user.FirstName = attrString(payload.Data.Attributes, "first_name")
	}
	if _, present := payload.Data.Attributes["last_name"]; present {
		user.LastName = attrString(payload.Data.Attributes, "last_name")
	}
	if _, present := payload.Data.Attributes["email"]; present {
		user.Email = attrString(payload.Data.Attributes, "email")
	}
	if _, present := payload.Data.Attributes["phone"]; present {
		user.Phone = attrString(payload.Data.Attributes, "phone")
	}

	var password *string
	if _, present := payload.Data.Attributes["password"]; present {
		parsed := attrString(payload.Data.Attributes, "password")
		password = &parsed
	}

	if err := handler.accountService.UpdateUser(ctx, user, password); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update user: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: userResource(user)})
}

// DeleteByID deletes a user. Deleting a missing user is a 204 no-op.
func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.accountService.DeleteUserByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete user: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
