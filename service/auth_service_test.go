// file: service/auth_service_test.go

package service

import (
	"database/sql"
	"go-beer-cellar-api/logger"
	"go-beer-cellar-api/model"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret-key"

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) Create(userID int) (*model.RefreshToken, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RefreshToken), args.Error(1)
}

func (m *mockTokenRepo) Find(userID int, tokenID string) (*model.RefreshToken, error) {
	args := m.Called(userID, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RefreshToken), args.Error(1)
}

func (m *mockTokenRepo) UpdateLastUsed(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func (m *mockTokenRepo) Delete(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func newTestAuthService(repo *mockTokenRepo) *AuthService {
	return NewAuthService(repo, testSecret, 5*time.Minute)
}

func TestAuthService_AuthTokenRoundTrip(t *testing.T) {
	authService := newTestAuthService(nil)
	refreshTokenID := uuid.NewString()

	token, err := authService.SignAuthToken(42, model.RoleViewer, refreshTokenID)
	assert.NoError(t, err)

	payload, err := authService.VerifyAuthToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, payload.UserID)
	assert.Equal(t, model.RoleViewer, payload.Role)
	assert.Equal(t, refreshTokenID, payload.RefreshTokenID)
}

func TestAuthService_VerifyWithWrongSecret(t *testing.T) {
	signer := newTestAuthService(nil)
	verifier := NewAuthService(nil, "a-different-secret", 5*time.Minute)

	token, err := signer.SignAuthToken(1, model.RoleAdmin, uuid.NewString())
	assert.NoError(t, err)

	// Wrong secret must always read as invalid, never as expired.
	_, err = verifier.VerifyAuthToken(token)
	assert.ErrorIs(t, err, ErrInvalidAuthToken)
	assert.NotErrorIs(t, err, ErrAuthTokenExpired)
	assert.ErrorIs(t, err, ErrAuthToken)
}

func TestAuthService_ExpiredAuthToken(t *testing.T) {
	authService := NewAuthService(nil, testSecret, time.Millisecond)

	token, err := authService.SignAuthToken(1, model.RoleAdmin, uuid.NewString())
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = authService.VerifyAuthToken(token)
	assert.ErrorIs(t, err, ErrAuthTokenExpired)
	assert.NotErrorIs(t, err, ErrInvalidAuthToken)
	assert.ErrorIs(t, err, ErrAuthToken)
}

func TestAuthService_VerifyMalformedToken(t *testing.T) {
	authService := newTestAuthService(nil)

	_, err := authService.VerifyAuthToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidAuthToken)
}

func TestAuthService_TokenKindsAreNotInterchangeable(t *testing.T) {
	authService := newTestAuthService(nil)

	refreshToken, err := authService.SignRefreshToken(7, uuid.NewString())
	assert.NoError(t, err)
	authToken, err := authService.SignAuthToken(7, model.RoleViewer, uuid.NewString())
	assert.NoError(t, err)

	// A refresh token presented as an auth token is structurally wrong and
	// fails like a forged one, and vice versa.
	_, err = authService.VerifyAuthToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidAuthToken)

	_, err = authService.VerifyRefreshToken(authToken)
	assert.ErrorIs(t, err, ErrInvalidAuthToken)
}

func TestAuthService_RefreshTokenNeverExpires(t *testing.T) {
	authService := NewAuthService(nil, testSecret, time.Millisecond)

	token, err := authService.SignRefreshToken(7, uuid.NewString())
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	claims, err := authService.VerifyRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.True(t, claims.IsRefreshToken)
	assert.Nil(t, claims.ExpiresAt)
}

func TestAuthService_IssueTokenPair(t *testing.T) {
	mockRepo := new(mockTokenRepo)
	row := &model.RefreshToken{ID: uuid.NewString(), UserID: 3}
	mockRepo.On("Create", 3).Return(row, nil).Once()

	authService := newTestAuthService(mockRepo)
	pair, err := authService.IssueTokenPair(3, model.RoleViewer)
	assert.NoError(t, err)

	payload, err := authService.VerifyAuthToken(pair.AuthToken)
	assert.NoError(t, err)
	assert.Equal(t, row.ID, payload.RefreshTokenID)

	claims, err := authService.VerifyRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, row.ID, claims.RefreshTokenID)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_IssueAuthToken(t *testing.T) {
	t.Run("touches the backing row", func(t *testing.T) {
		mockRepo := new(mockTokenRepo)
		authService := newTestAuthService(mockRepo)

		tokenID := uuid.NewString()
		refreshToken, err := authService.SignRefreshToken(5, tokenID)
		assert.NoError(t, err)

		mockRepo.On("UpdateLastUsed", tokenID).Return(nil).Once()

		authToken, err := authService.IssueAuthToken(model.RoleAdmin, refreshToken)
		assert.NoError(t, err)

		payload, err := authService.VerifyAuthToken(authToken)
		assert.NoError(t, err)
		assert.Equal(t, 5, payload.UserID)
		assert.Equal(t, model.RoleAdmin, payload.Role)
		assert.Equal(t, tokenID, payload.RefreshTokenID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockRepo := new(mockTokenRepo)
		authService := newTestAuthService(mockRepo)

		_, err := authService.IssueAuthToken(model.RoleAdmin, "garbage")
		assert.ErrorIs(t, err, ErrInvalidAuthToken)
		mockRepo.AssertNotCalled(t, "UpdateLastUsed")
	})
}

func TestAuthService_IssueInitialAdminRefreshToken(t *testing.T) {
	mockRepo := new(mockTokenRepo)
	authService := newTestAuthService(mockRepo)

	// Bootstrap tokens are signed without touching persistence.
	token, err := authService.IssueInitialAdminRefreshToken(1)
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Create")

	claims, err := authService.VerifyRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.NotEmpty(t, claims.RefreshTokenID)
}

func TestAuthService_RevokeRefreshToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockTokenRepo)
		authService := newTestAuthService(mockRepo)

		tokenID := uuid.NewString()
		refreshToken, err := authService.SignRefreshToken(9, tokenID)
		assert.NoError(t, err)

		mockRepo.On("Delete", tokenID).Return(nil).Once()

		err = authService.RevokeRefreshToken(9, refreshToken)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("user id mismatch", func(t *testing.T) {
		mockRepo := new(mockTokenRepo)
		authService := newTestAuthService(mockRepo)

		refreshToken, err := authService.SignRefreshToken(9, uuid.NewString())
		assert.NoError(t, err)

		err = authService.RevokeRefreshToken(10, refreshToken)
		assert.ErrorIs(t, err, ErrRefreshTokenUserIDMismatch)
		// The mismatch is an authorization conflict, not a token problem.
		assert.NotErrorIs(t, err, ErrAuthToken)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("invalid token", func(t *testing.T) {
		mockRepo := new(mockTokenRepo)
		authService := newTestAuthService(mockRepo)

		err := authService.RevokeRefreshToken(9, "garbage")
		assert.ErrorIs(t, err, ErrInvalidAuthToken)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}

func TestAuthService_HashAndCheckPassword(t *testing.T) {
	authService := newTestAuthService(nil)
	password := "mySecretPassword123"

	hashed, err := authService.HashPassword(password)
	assert.NoError(t, err)
	assert.NotEqual(t, password, hashed)

	assert.True(t, authService.CheckPasswordHash(password, hashed))
	assert.False(t, authService.CheckPasswordHash("notMyPassword", hashed))
}

func TestAuthService_AuthenticateAdmin(t *testing.T) {
	authService := newTestAuthService(nil)

	adminToken, _ := authService.SignAuthToken(1, model.RoleAdmin, uuid.NewString())
	viewerToken, _ := authService.SignAuthToken(2, model.RoleViewer, uuid.NewString())

	t.Run("admin token accepted", func(t *testing.T) {
		payload, err := authService.AuthenticateAdmin("Bearer " + adminToken)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, payload.Role)
	})

	t.Run("viewer token rejected", func(t *testing.T) {
		_, err := authService.AuthenticateAdmin("Bearer " + viewerToken)
		assert.ErrorIs(t, err, ErrNoRights)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := authService.AuthenticateAdmin("")
		assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
	})

	t.Run("header without bearer prefix", func(t *testing.T) {
		_, err := authService.AuthenticateAdmin(adminToken)
		assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
	})
}

func TestAuthService_AuthenticateViewer(t *testing.T) {
	authService := newTestAuthService(nil)

	t.Run("accepts admin and viewer", func(t *testing.T) {
		for _, role := range []model.Role{model.RoleAdmin, model.RoleViewer} {
			token, _ := authService.SignAuthToken(1, role, uuid.NewString())
			_, err := authService.AuthenticateViewer("Bearer " + token)
			assert.NoError(t, err, "role %s should pass viewer check", role)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		token, _ := authService.SignAuthToken(1, model.Role("superuser"), uuid.NewString())
		_, err := authService.AuthenticateViewer("Bearer " + token)
		assert.ErrorIs(t, err, ErrNoRights)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := NewAuthService(nil, testSecret, time.Millisecond)
		token, _ := shortLived.SignAuthToken(1, model.RoleViewer, uuid.NewString())
		time.Sleep(5 * time.Millisecond)

		_, err := shortLived.AuthenticateViewer("Bearer " + token)
		assert.ErrorIs(t, err, ErrAuthTokenExpired)
	})
}

func TestAuthService_AuthenticateUser(t *testing.T) {
	t.Run("admin can act as any user without session lookup", func(t *testing.T) {
		mockRepo := new(mockTokenRepo)
		authService := newTestAuthService(mockRepo)
		adminToken, _ := authService.SignAuthToken(1, model.RoleAdmin, uuid.NewString())

		payload, err := authService.AuthenticateUser(999, "Bearer "+adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 1, payload.UserID)
		mockRepo.AssertNotCalled(t, "Find")
	})

	t.Run("viewer acting on self with live session", func(t *testing.T) {
		mockRepo := new(mockTokenRepo)
		authService := newTestAuthService(mockRepo)
		tokenID := uuid.NewString()
		token, _ := authService.SignAuthToken(7, model.RoleViewer, tokenID)

		mockRepo.On("Find", 7, tokenID).Return(&model.RefreshToken{ID: tokenID, UserID: 7}, nil).Once()

		_, err := authService.AuthenticateUser(7, "Bearer "+token)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("viewer acting on another user", func(t *testing.T) {
		mockRepo := new(mockTokenRepo)
		authService := newTestAuthService(mockRepo)
		token, _ := authService.SignAuthToken(7, model.RoleViewer, uuid.NewString())

		_, err := authService.AuthenticateUser(8, "Bearer "+token)
		assert.ErrorIs(t, err, ErrUserMismatch)
		mockRepo.AssertNotCalled(t, "Find")
	})

	t.Run("revoked session", func(t *testing.T) {
		mockRepo := new(mockTokenRepo)
		authService := newTestAuthService(mockRepo)
		tokenID := uuid.NewString()
		token, _ := authService.SignAuthToken(7, model.RoleViewer, tokenID)

		mockRepo.On("Find", 7, tokenID).Return(nil, sql.ErrNoRows).Once()

		_, err := authService.AuthenticateUser(7, "Bearer "+token)
		assert.ErrorIs(t, err, ErrUserOrTokenNotFound)
	})

	t.Run("missing user id", func(t *testing.T) {
		authService := newTestAuthService(nil)
		_, err := authService.AuthenticateUser(0, "Bearer whatever")
		assert.ErrorIs(t, err, ErrMissingUserID)
	})
}

// TestViewerRolesCoversAllRoles fails when a new role constant is added
// without deciding its place on the viewer allow-list.
func TestViewerRolesCoversAllRoles(t *testing.T) {
	assert.Len(t, ViewerRoles, len(model.AllRoles))
	for _, role := range model.AllRoles {
		_, decided := ViewerRoles[role]
		assert.True(t, decided, "role %q has no entry in ViewerRoles", role)
	}
}
