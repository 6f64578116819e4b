//go:build integration
// +build integration

package app

import (
	"context"
	"strings"
	"testing"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_CreateUser_HashesPassword(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := &accounts.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, services.AccountService.CreateUser(ctx, user, "s3cret"))
	require.NotZero(t, user.ID)

	stored, err := services.AccountService.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
}

func TestAccountService_CheckCredentials(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := &accounts.User{Email: "ada@example.com"}
	require.NoError(t, services.AccountService.CreateUser(ctx, user, "s3cret"))

	checked, err := services.AccountService.CheckCredentials(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, checked.ID)

	_, err = services.AccountService.CheckCredentials(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = services.AccountService.CheckCredentials(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_CheckCredentials_RejectsPasswordlessUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := &accounts.User{Email: "noauth@example.com"}
	require.NoError(t, services.AccountService.CreateUser(ctx, user, ""))

	_, err := services.AccountService.CheckCredentials(ctx, "noauth@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_UpdateUser_KeepsHashWithoutPassword(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := &accounts.User{Email: "ada@example.com"}
	require.NoError(t, services.AccountService.CreateUser(ctx, user, "s3cret"))

	user.Name = "Ada Lovelace"
	require.NoError(t, services.AccountService.UpdateUser(ctx, user, nil))

	_, err := services.AccountService.CheckCredentials(ctx, "ada@example.com", "s3cret")
	assert.NoError(t, err)

	newPassword := "changed"
	require.NoError(t, services.AccountService.UpdateUser(ctx, user, &newPassword))

	_, err = services.AccountService.CheckCredentials(ctx, "ada@example.com", "s3cret")
	assert.Error(t, err)
	_, err = services.AccountService.CheckCredentials(ctx, "ada@example.com", "changed")
	assert.NoError(t, err)
}

func TestAPIKeyService_IssueAndAuthenticate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := &accounts.User{Email: "keys@example.com"}
	require.NoError(t, services.AccountService.CreateUser(ctx, user, "pw"))

	key, plainKey, err := services.APIKeyService.Issue(ctx, "ci", user.ID, nil, []string{accounts.ScopeRead})
	require.NoError(t, err)
	require.NotZero(t, key.ID)
	assert.True(t, strings.HasPrefix(plainKey, accounts.APIKeyPrefix))
	assert.True(t, strings.HasPrefix(plainKey, key.KeyPrefix))
	assert.NotContains(t, key.KeyHash, plainKey)

	authenticated, err := services.APIKeyService.Authenticate(ctx, plainKey)
	require.NoError(t, err)
	assert.Equal(t, key.ID, authenticated.ID)
	assert.NotNil(t, authenticated.LastUsedAt)
	assert.True(t, authenticated.HasScope(accounts.ScopeRead))
	assert.False(t, authenticated.HasScope(accounts.ScopeWrite))
}

func TestAPIKeyService_Issue_DefaultsToWildcardScope(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := &accounts.User{Email: "keys@example.com"}
	require.NoError(t, services.AccountService.CreateUser(ctx, user, "pw"))

	key, _, err := services.APIKeyService.Issue(ctx, "ci", user.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{accounts.ScopeAll}, key.Scopes)
	assert.True(t, key.HasScope(accounts.ScopeRead))
	assert.True(t, key.HasScope(accounts.ScopeWrite))
}

func TestAPIKeyService_Authenticate_RejectsUnknownAndRevoked(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := &accounts.User{Email: "keys@example.com"}
	require.NoError(t, services.AccountService.CreateUser(ctx, user, "pw"))

	_, err := services.APIKeyService.Authenticate(ctx, "cc_doesnotexist")
	assert.Error(t, err)

	_, err = services.APIKeyService.Authenticate(ctx, "wrong_prefix_key")
	assert.Error(t, err)

	key, plainKey, err := services.APIKeyService.Issue(ctx, "ci", user.ID, nil, nil)
	require.NoError(t, err)

	require.NoError(t, services.APIKeyService.Revoke(ctx, key.ID))

	_, err = services.APIKeyService.Authenticate(ctx, plainKey)
	assert.Error(t, err)
}

func TestAPIKeyService_Authenticate_RejectsExpired(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := &accounts.User{Email: "keys@example.com"}
	require.NoError(t, services.AccountService.CreateUser(ctx, user, "pw"))

	expiresDays := -1
	_, plainKey, err := services.APIKeyService.Issue(ctx, "stale", user.ID, &expiresDays, nil)
	require.NoError(t, err)

	_, err = services.APIKeyService.Authenticate(ctx, plainKey)
	assert.ErrorContains(t, err, "expired")
}
