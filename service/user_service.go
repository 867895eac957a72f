package service

import (
	"database/sql"
	"errors"
	"go-beer-cellar-api/logger"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/repository"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// UserService handles user accounts and the login/refresh/logout flows.
type UserService struct {
	userRepo repository.IUserRepository
	auth     *AuthService
}

func NewUserService(userRepo repository.IUserRepository, auth *AuthService) *UserService {
	return &UserService{userRepo: userRepo, auth: auth}
}

func (s *UserService) Register(req model.RegisterRequest) (*model.User, error) {
	hashed, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Password: hashed,
		Role:     req.Role,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// Login verifies the credentials and opens a new session.
func (s *UserService) Login(username, password string) (*model.TokenPair, *model.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !s.auth.CheckPasswordHash(password, user.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.auth.IssueTokenPair(user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}

	user.Password = ""
	return pair, user, nil
}

// RefreshAuthToken mints a new auth token from a refresh token. The role is
// read from the current user row, not from the old token.
func (s *UserService) RefreshAuthToken(refreshToken string) (string, error) {
	claims, err := s.auth.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	user, err := s.userRepo.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserOrTokenNotFound
		}
		return "", err
	}
	return s.auth.IssueAuthToken(user.Role, refreshToken)
}

func (s *UserService) Logout(userID int, refreshToken string) error {
	return s.auth.RevokeRefreshToken(userID, refreshToken)
}

func (s *UserService) ChangePassword(userID int, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if !s.auth.CheckPasswordHash(oldPassword, user.Password) {
		return ErrInvalidCredentials
	}
	hashed, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(userID, hashed)
}

func (s *UserService) ListUsers() ([]*model.User, error) {
	return s.userRepo.GetAllUsers()
}

func (s *UserService) DeleteUser(userID int) error {
	return mapNotFound(s.userRepo.DeleteUser(userID))
}

// EnsureInitialAdmin bootstraps the very first admin account when the user
// table is empty. The returned refresh token has no backing session row yet;
// that asymmetry is accepted and resolves itself once the admin logs in
// normally.
func (s *UserService) EnsureInitialAdmin(username, password string) error {
	count, err := s.userRepo.CountUsers()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := s.auth.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &model.User{Username: username, Password: hashed, Role: model.RoleAdmin}
	if err := s.userRepo.CreateUser(admin); err != nil {
		return err
	}

	refreshToken, err := s.auth.IssueInitialAdminRefreshToken(admin.ID)
	if err != nil {
		return err
	}
	logger.Log.WithField("username", username).Info("Initial admin account created")
	logger.Log.WithField("refresh_token", refreshToken).Warn("One-time bootstrap refresh token issued; store it securely")
	return nil
}
