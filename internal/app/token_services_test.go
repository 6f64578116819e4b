//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/pkg/config"
	"github.com/overcast-software/career-caddy-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) CreateUser(ctx context.Context, user *accounts.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *mockAccountService) ListUsers(ctx context.Context, query *accounts.UserQuery) ([]*accounts.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.User), args.Error(1)
}

func (m *mockAccountService) GetUserByID(ctx context.Context, userID uint) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *mockAccountService) UpdateUser(ctx context.Context, user *accounts.User, password *string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *mockAccountService) DeleteUserByID(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockAccountService) CheckCredentials(ctx context.Context, email, password string) (*accounts.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func testTokenSettings() config.AuthSettings {
	return config.AuthSettings{
		SecretKey:         "unit-test-secret",
		AccessTTLMinutes:  15,
		RefreshTTLMinutes: 1440,
		Debug:             true,
	}
}

func newTestTokenService(t *testing.T, accountService accounts.AccountService) *tokenService {
	t.Helper()

	svc, err := NewTokenService(accountService, testTokenSettings(), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc.(*tokenService)
}

func TestTokenService_ObtainPair_Success(t *testing.T) {
	accountService := new(mockAccountService)
	accountService.On("CheckCredentials", mock.Anything, "ada@example.com", "pw").
		Return(&accounts.User{ID: 7, Email: "ada@example.com"}, nil)

	svc := newTestTokenService(t, accountService)
	ctx := context.Background()

	pair, err := svc.ObtainPair(ctx, "ada@example.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	userID, err := svc.ParseAccess(ctx, pair.Access)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	assert.NoError(t, svc.Verify(ctx, pair.Access))
	assert.NoError(t, svc.Verify(ctx, pair.Refresh))

	accountService.AssertExpectations(t)
}

func TestTokenService_ObtainPair_BadCredentials(t *testing.T) {
	accountService := new(mockAccountService)
	accountService.On("CheckCredentials", mock.Anything, "ada@example.com", "wrong").
		Return(nil, ErrInvalidCredentials)

	svc := newTestTokenService(t, accountService)

	_, err := svc.ObtainPair(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenService_ParseAccess_RejectsRefreshToken(t *testing.T) {
	accountService := new(mockAccountService)
	accountService.On("CheckCredentials", mock.Anything, "ada@example.com", "pw").
		Return(&accounts.User{ID: 7}, nil)

	svc := newTestTokenService(t, accountService)
	ctx := context.Background()

	pair, err := svc.ObtainPair(ctx, "ada@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.ParseAccess(ctx, pair.Refresh)
	assert.ErrorContains(t, err, "not an access token")
}

func TestTokenService_Refresh_Success(t *testing.T) {
	accountService := new(mockAccountService)
	accountService.On("CheckCredentials", mock.Anything, "ada@example.com", "pw").
		Return(&accounts.User{ID: 7}, nil)
	accountService.On("GetUserByID", mock.Anything, uint(7)).
		Return(&accounts.User{ID: 7}, nil)

	svc := newTestTokenService(t, accountService)
	ctx := context.Background()

	pair, err := svc.ObtainPair(ctx, "ada@example.com", "pw")
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)

	userID, err := svc.ParseAccess(ctx, fresh.Access)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestTokenService_Refresh_RejectsAccessToken(t *testing.T) {
	accountService := new(mockAccountService)
	accountService.On("CheckCredentials", mock.Anything, "ada@example.com", "pw").
		Return(&accounts.User{ID: 7}, nil)

	svc := newTestTokenService(t, accountService)
	ctx := context.Background()

	pair, err := svc.ObtainPair(ctx, "ada@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, pair.Access)
	assert.ErrorContains(t, err, "not a refresh token")
}

func TestTokenService_Verify_RejectsExpired(t *testing.T) {
	accountService := new(mockAccountService)
	accountService.On("CheckCredentials", mock.Anything, "ada@example.com", "pw").
		Return(&accounts.User{ID: 7}, nil)

	svc := newTestTokenService(t, accountService)
	ctx := context.Background()

	pair, err := svc.ObtainPair(ctx, "ada@example.com", "pw")
	require.NoError(t, err)

	// Jump past the access TTL
	svc.now = func() time.Time { return time.Now().Add(16 * time.Minute) }

	assert.Error(t, svc.Verify(ctx, pair.Access))
	assert.NoError(t, svc.Verify(ctx, pair.Refresh))
}

func TestTokenService_Verify_RejectsTamperedSignature(t *testing.T) {
	accountService := new(mockAccountService)
	accountService.On("CheckCredentials", mock.Anything, "ada@example.com", "pw").
		Return(&accounts.User{ID: 7}, nil)

	svc := newTestTokenService(t, accountService)
	ctx := context.Background()

	pair, err := svc.ObtainPair(ctx, "ada@example.com", "pw")
	require.NoError(t, err)

	otherSettings := testTokenSettings()
	otherSettings.SecretKey = "a-different-secret"
	other, err := NewTokenService(accountService, otherSettings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	assert.Error(t, other.Verify(ctx, pair.Access))
}

func TestNewTokenService_RejectsInvalidSettings(t *testing.T) {
	settings := config.AuthSettings{
		SecretKey:         "secret",
		AccessTTLMinutes:  60,
		RefreshTTLMinutes: 30,
		Debug:             true,
	}

	_, err := NewTokenService(new(mockAccountService), settings, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
