package service

import (
	"database/sql"
	"errors"
	"fmt"
	"go-beer-cellar-api/logger"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/repository"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bearerPrefix = "Bearer "

// ViewerRoles is the explicit allow-list of roles accepted by
// AuthenticateViewer. A new model.Role constant grants nothing until it is
// added here; TestViewerRolesCoversAllRoles enforces that the two stay in sync.
var ViewerRoles = map[model.Role]bool{
	model.RoleAdmin:  true,
	model.RoleViewer: true,
}

// AuthService owns the token codec, the refresh token lifecycle, and the
// role policy checks. Persistence goes through the injected token repository,
// so the service itself never touches the database directly.
type AuthService struct {
	tokenRepo       repository.ITokenRepository
	secret          []byte
	authTokenExpiry time.Duration
}

func NewAuthService(tokenRepo repository.ITokenRepository, secret string, authTokenExpiry time.Duration) *AuthService {
	return &AuthService{
		tokenRepo:       tokenRepo,
		secret:          []byte(secret),
		authTokenExpiry: authTokenExpiry,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// --- Token codec ---

// SignAuthToken signs a short-lived auth token carrying the user id, role and
// the id of the refresh token it was derived from.
func (s *AuthService) SignAuthToken(userID int, role model.Role, refreshTokenID string) (string, error) {
	claims := &model.AppClaims{
		UserID:         userID,
		Role:           role,
		RefreshTokenID: refreshTokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.authTokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign auth token: %w", err)
	}
	return signed, nil
}

// SignRefreshToken signs a refresh token. It carries no expiry claim: the
// token stays valid until its backing database row is deleted.
func (s *AuthService) SignRefreshToken(userID int, refreshTokenID string) (string, error) {
	claims := &model.AppClaims{
		UserID:         userID,
		RefreshTokenID: refreshTokenID,
		IsRefreshToken: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) verifyToken(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrAuthTokenExpired
		}
		return nil, ErrInvalidAuthToken
	}
	if !token.Valid {
		return nil, ErrInvalidAuthToken
	}
	return claims, nil
}

// VerifyAuthToken verifies the signature and expiry of an auth token and
// checks the payload shape. A structurally wrong payload fails exactly like a
// forged one.
func (s *AuthService) VerifyAuthToken(tokenString string) (*model.AuthTokenPayload, error) {
	claims, err := s.verifyToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.UserID <= 0 || claims.Role == "" || claims.RefreshTokenID == "" || claims.IsRefreshToken {
		return nil, ErrInvalidAuthToken
	}
	return &model.AuthTokenPayload{
		UserID:         claims.UserID,
		Role:           claims.Role,
		RefreshTokenID: claims.RefreshTokenID,
	}, nil
}

// VerifyRefreshToken verifies the signature of a refresh token and checks the
// payload shape, including the is_refresh_token marker.
func (s *AuthService) VerifyRefreshToken(tokenString string) (*model.AppClaims, error) {
	claims, err := s.verifyToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.UserID <= 0 || claims.RefreshTokenID == "" || !claims.IsRefreshToken {
		return nil, ErrInvalidAuthToken
	}
	return claims, nil
}

// --- Refresh token lifecycle ---

// IssueRefreshToken persists a new refresh token row and signs a refresh
// token embedding the row id.
func (s *AuthService) IssueRefreshToken(userID int) (string, *model.RefreshToken, error) {
	row, err := s.tokenRepo.Create(userID)
	if err != nil {
		return "", nil, err
	}
	signed, err := s.SignRefreshToken(userID, row.ID)
	if err != nil {
		return "", nil, err
	}
	return signed, row, nil
}

// IssueInitialAdminRefreshToken signs a refresh token with a freshly
// generated id and no backing row. Used exactly once, when the very first
// admin is bootstrapped before any session row exists. Until a row with this
// id is created, refreshing with the token touches nothing.
func (s *AuthService) IssueInitialAdminRefreshToken(userID int) (string, error) {
	return s.SignRefreshToken(userID, uuid.NewString())
}

// IssueTokenPair creates a session row and signs the matching refresh and
// auth tokens. This is the login path.
func (s *AuthService) IssueTokenPair(userID int, role model.Role) (*model.TokenPair, error) {
	refreshToken, row, err := s.IssueRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	authToken, err := s.SignAuthToken(userID, role, row.ID)
	if err != nil {
		return nil, err
	}
	return &model.TokenPair{AuthToken: authToken, RefreshToken: refreshToken}, nil
}

// IssueAuthToken verifies the presented refresh token, touches its backing
// row and signs a fresh auth token carrying the same refresh token id. The
// role is supplied by the caller from the current user row, so a role change
// takes effect on the next refresh.
func (s *AuthService) IssueAuthToken(role model.Role, refreshToken string) (string, error) {
	claims, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	if err := s.tokenRepo.UpdateLastUsed(claims.RefreshTokenID); err != nil {
		return "", err
	}
	return s.SignAuthToken(claims.UserID, role, claims.RefreshTokenID)
}

// RevokeRefreshToken verifies the token, checks it belongs to userID and
// deletes its backing row.
func (s *AuthService) RevokeRefreshToken(userID int, refreshToken string) error {
	claims, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return err
	}
	if claims.UserID != userID {
		return ErrRefreshTokenUserIDMismatch
	}
	return s.tokenRepo.Delete(claims.RefreshTokenID)
}

// --- Authentication / authorization ---

func (s *AuthService) parseBearer(header string) (string, error) {
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrInvalidAuthorizationHeader
	}
	return strings.TrimPrefix(header, bearerPrefix), nil
}

func (s *AuthService) authenticate(header string) (*model.AuthTokenPayload, error) {
	tokenString, err := s.parseBearer(header)
	if err != nil {
		return nil, err
	}
	return s.VerifyAuthToken(tokenString)
}

// AuthenticateAdmin admits only tokens whose role is exactly admin.
func (s *AuthService) AuthenticateAdmin(header string) (*model.AuthTokenPayload, error) {
	payload, err := s.authenticate(header)
	if err != nil {
		return nil, err
	}
	if payload.Role != model.RoleAdmin {
		return nil, ErrNoRights
	}
	return payload, nil
}

// AuthenticateViewer admits any role on the ViewerRoles allow-list.
func (s *AuthService) AuthenticateViewer(header string) (*model.AuthTokenPayload, error) {
	payload, err := s.authenticate(header)
	if err != nil {
		return nil, err
	}
	if !ViewerRoles[payload.Role] {
		return nil, ErrNoRights
	}
	return payload, nil
}

// AuthenticateUser authorizes an operation on a specific user. Admins may act
// as any user without further checks. Everyone else must be acting on
// themselves and must still hold a live session: the refresh token id inside
// the auth token has to resolve to a persisted row, so a server-side logout
// cuts access even while the auth token is unexpired.
func (s *AuthService) AuthenticateUser(targetUserID int, header string) (*model.AuthTokenPayload, error) {
	if targetUserID <= 0 {
		return nil, ErrMissingUserID
	}
	payload, err := s.authenticate(header)
	if err != nil {
		return nil, err
	}
	if payload.Role == model.RoleAdmin {
		return payload, nil
	}
	if payload.UserID != targetUserID {
		return nil, ErrUserMismatch
	}
	if _, err := s.tokenRepo.Find(targetUserID, payload.RefreshTokenID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserOrTokenNotFound
		}
		return nil, err
	}
	return payload, nil
}
