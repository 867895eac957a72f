package handler

import (
	"context"
	"go-beer-cellar-api/common"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/service"
	"net/http"
)

type contextKey string

const (
	UserIDKey         contextKey = "userID"
	UserRoleKey       contextKey = "userRole"
	RefreshTokenIDKey contextKey = "refreshTokenID"
)

// AuthMiddleware gates routes by role. The actual header parsing, token
// verification and policy live in the auth service; this layer only moves the
// verified payload into the request context.
type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAdmin admits admin tokens only.
func (m *AuthMiddleware) RequireAdmin(next AppHandler) AppHandler {
	return func(w http.ResponseWriter, r *http.Request) *common.AppError {
		payload, err := m.auth.AuthenticateAdmin(r.Header.Get("Authorization"))
		if err != nil {
			return MapServiceError(err, "user")
		}
		return next(w, r.WithContext(withPayload(r.Context(), payload)))
	}
}

// RequireViewer admits any role on the viewer allow-list.
func (m *AuthMiddleware) RequireViewer(next AppHandler) AppHandler {
	return func(w http.ResponseWriter, r *http.Request) *common.AppError {
		payload, err := m.auth.AuthenticateViewer(r.Header.Get("Authorization"))
		if err != nil {
			return MapServiceError(err, "user")
		}
		return next(w, r.WithContext(withPayload(r.Context(), payload)))
	}
}

// RequireUser admits admins, or the user named by the {id} path parameter
// when they still hold a live session.
func (m *AuthMiddleware) RequireUser(next AppHandler) AppHandler {
	return func(w http.ResponseWriter, r *http.Request) *common.AppError {
		targetID, appErr := parsePathID(r, "id", "user")
		if appErr != nil {
			return appErr
		}
		payload, err := m.auth.AuthenticateUser(targetID, r.Header.Get("Authorization"))
		if err != nil {
			return MapServiceError(err, "user")
		}
		return next(w, r.WithContext(withPayload(r.Context(), payload)))
	}
}

func withPayload(ctx context.Context, payload *model.AuthTokenPayload) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, payload.UserID)
	ctx = context.WithValue(ctx, UserRoleKey, payload.Role)
	return context.WithValue(ctx, RefreshTokenIDKey, payload.RefreshTokenID)
}
