// file: service/user_service_test.go

package service

import (
	"database/sql"
	"go-beer-cellar-api/model"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) GetUserByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) GetUserByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) GetAllUsers() ([]*model.User, error) {
	args := m.Called()
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(userID int, hashedPassword string) error {
	args := m.Called(userID, hashedPassword)
	return args.Error(0)
}

func (m *mockUserRepo) DeleteUser(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *mockUserRepo) CountUsers() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func newTestUserService(userRepo *mockUserRepo, tokenRepo *mockTokenRepo) (*UserService, *AuthService) {
	authService := NewAuthService(tokenRepo, testSecret, 5*time.Minute)
	return NewUserService(userRepo, authService), authService
}

func TestUserService_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUsers := new(mockUserRepo)
		mockTokens := new(mockTokenRepo)
		userService, authService := newTestUserService(mockUsers, mockTokens)

		hashed, _ := authService.HashPassword("correct-password")
		mockUsers.On("GetUserByUsername", "alice").
			Return(&model.User{ID: 4, Username: "alice", Password: hashed, Role: model.RoleViewer}, nil).Once()
		mockTokens.On("Create", 4).
			Return(&model.RefreshToken{ID: uuid.NewString(), UserID: 4}, nil).Once()

		pair, user, err := userService.Login("alice", "correct-password")
		assert.NoError(t, err)
		assert.Equal(t, 4, user.ID)
		assert.Empty(t, user.Password)

		payload, err := authService.VerifyAuthToken(pair.AuthToken)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleViewer, payload.Role)
		mockUsers.AssertExpectations(t)
		mockTokens.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUsers := new(mockUserRepo)
		mockTokens := new(mockTokenRepo)
		userService, authService := newTestUserService(mockUsers, mockTokens)

		hashed, _ := authService.HashPassword("correct-password")
		mockUsers.On("GetUserByUsername", "alice").
			Return(&model.User{ID: 4, Username: "alice", Password: hashed}, nil).Once()

		_, _, err := userService.Login("alice", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		mockTokens.AssertNotCalled(t, "Create")
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUsers := new(mockUserRepo)
		userService, _ := newTestUserService(mockUsers, nil)

		mockUsers.On("GetUserByUsername", "nobody").Return(nil, sql.ErrNoRows).Once()

		_, _, err := userService.Login("nobody", "whatever-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUsers := new(mockUserRepo)
		userService, _ := newTestUserService(mockUsers, nil)

		mockUsers.On("CreateUser", mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "bob" && u.Role == model.RoleViewer && u.Password != "longenoughpw"
		})).Return(nil).Once()

		user, err := userService.Register(model.RegisterRequest{
			Username: "bob", Password: "longenoughpw", Role: model.RoleViewer,
		})
		assert.NoError(t, err)
		assert.Empty(t, user.Password)
		mockUsers.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockUsers := new(mockUserRepo)
		userService, _ := newTestUserService(mockUsers, nil)

		mockUsers.On("CreateUser", mock.Anything).
			Return(&pq.Error{Code: uniqueViolation}).Once()

		_, err := userService.Register(model.RegisterRequest{
			Username: "bob", Password: "longenoughpw", Role: model.RoleViewer,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestUserService_RefreshAuthToken(t *testing.T) {
	t.Run("role comes from the current user row", func(t *testing.T) {
		mockUsers := new(mockUserRepo)
		mockTokens := new(mockTokenRepo)
		userService, authService := newTestUserService(mockUsers, mockTokens)

		tokenID := uuid.NewString()
		refreshToken, _ := authService.SignRefreshToken(4, tokenID)

		// User was promoted since the refresh token was issued.
		mockUsers.On("GetUserByID", 4).
			Return(&model.User{ID: 4, Role: model.RoleAdmin}, nil).Once()
		mockTokens.On("UpdateLastUsed", tokenID).Return(nil).Once()

		authToken, err := userService.RefreshAuthToken(refreshToken)
		assert.NoError(t, err)

		payload, err := authService.VerifyAuthToken(authToken)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, payload.Role)
		mockTokens.AssertExpectations(t)
	})

	t.Run("deleted user", func(t *testing.T) {
		mockUsers := new(mockUserRepo)
		mockTokens := new(mockTokenRepo)
		userService, authService := newTestUserService(mockUsers, mockTokens)

		refreshToken, _ := authService.SignRefreshToken(4, uuid.NewString())
		mockUsers.On("GetUserByID", 4).Return(nil, sql.ErrNoRows).Once()

		_, err := userService.RefreshAuthToken(refreshToken)
		assert.ErrorIs(t, err, ErrUserOrTokenNotFound)
		mockTokens.AssertNotCalled(t, "UpdateLastUsed")
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockUsers := new(mockUserRepo)
		userService, _ := newTestUserService(mockUsers, nil)

		_, err := userService.RefreshAuthToken("garbage")
		assert.ErrorIs(t, err, ErrInvalidAuthToken)
		mockUsers.AssertNotCalled(t, "GetUserByID")
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	mockUsers := new(mockUserRepo)
	userService, authService := newTestUserService(mockUsers, nil)

	hashed, _ := authService.HashPassword("old-password1")
	mockUsers.On("GetUserByID", 4).
		Return(&model.User{ID: 4, Password: hashed}, nil).Twice()

	t.Run("wrong old password", func(t *testing.T) {
		err := userService.ChangePassword(4, "not-the-old-1", "new-password1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		mockUsers.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("success", func(t *testing.T) {
		mockUsers.On("UpdatePassword", 4, mock.AnythingOfType("string")).Return(nil).Once()
		err := userService.ChangePassword(4, "old-password1", "new-password1")
		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})
}

func TestUserService_EnsureInitialAdmin(t *testing.T) {
	t.Run("bootstraps on empty user table", func(t *testing.T) {
		mockUsers := new(mockUserRepo)
		mockTokens := new(mockTokenRepo)
		userService, _ := newTestUserService(mockUsers, mockTokens)

		mockUsers.On("CountUsers").Return(0, nil).Once()
		mockUsers.On("CreateUser", mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "admin" && u.Role == model.RoleAdmin
		})).Return(nil).Once()

		err := userService.EnsureInitialAdmin("admin", "bootstrap-pw-1")
		assert.NoError(t, err)
		// The bootstrap refresh token is signed without a session row.
		mockTokens.AssertNotCalled(t, "Create")
		mockUsers.AssertExpectations(t)
	})

	t.Run("no-op when users exist", func(t *testing.T) {
		mockUsers := new(mockUserRepo)
		userService, _ := newTestUserService(mockUsers, nil)

		mockUsers.On("CountUsers").Return(3, nil).Once()

		err := userService.EnsureInitialAdmin("admin", "bootstrap-pw-1")
		assert.NoError(t, err)
		mockUsers.AssertNotCalled(t, "CreateUser")
	})
}
