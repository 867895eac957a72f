package handler

import (
	"errors"
	"go-beer-cellar-api/common"
	"go-beer-cellar-api/service"
	"net/http"
)

// AppHandler is the signature every route handler implements: failures are
// returned, not written, so the middleware below is the single place that
// serializes errors.
type AppHandler func(w http.ResponseWriter, r *http.Request) *common.AppError

func ErrorHandlingMiddleware(next AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// MapServiceError translates service sentinel errors into the HTTP error
// classes of the API. resource names the subject for codes like
// "beer_not_found"; unknown errors become opaque 500s.
func MapServiceError(err error, resource string) *common.AppError {
	switch {
	case errors.Is(err, service.ErrInvalidAuthorizationHeader):
		return common.NewAppError(http.StatusBadRequest, "invalid_authorization_header", "Invalid or missing Authorization header", nil)
	case errors.Is(err, service.ErrMissingUserID):
		return common.NewAppError(http.StatusBadRequest, "no_user_id_parameter", "No user id parameter supplied", nil)
	case errors.Is(err, service.ErrAuthTokenExpired):
		return common.NewAppError(http.StatusUnauthorized, "expired_auth_token", "Auth token has expired", nil)
	case errors.Is(err, service.ErrInvalidAuthToken):
		return common.NewAppError(http.StatusUnauthorized, "invalid_auth_token", "Invalid auth token", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		return common.NewAppError(http.StatusUnauthorized, "invalid_credentials", "Invalid username or password", nil)
	case errors.Is(err, service.ErrNoRights):
		return common.NewAppError(http.StatusForbidden, "no_rights", "No rights to perform the operation", nil)
	case errors.Is(err, service.ErrUserMismatch):
		return common.NewAppError(http.StatusForbidden, "user_mismatch", "Cannot act on behalf of another user", nil)
	case errors.Is(err, service.ErrRefreshTokenUserIDMismatch):
		return common.NewAppError(http.StatusForbidden, "refresh_token_user_mismatch", "Refresh token belongs to another user", nil)
	case errors.Is(err, service.ErrUserOrTokenNotFound):
		return common.NewAppError(http.StatusNotFound, "user_or_refresh_token_not_found", "User or refresh token not found", nil)
	case errors.Is(err, service.ErrNotFound):
		return common.NewAppError(http.StatusNotFound, resource+"_not_found", "Resource not found", nil)
	case errors.Is(err, service.ErrAlreadyExists):
		return common.NewAppError(http.StatusConflict, resource+"_already_exists", "Resource already exists", nil)
	case errors.Is(err, service.ErrInsufficientQuantity):
		return common.NewAppError(http.StatusConflict, "insufficient_quantity", "Not enough quantity in storage", nil)
	default:
		return common.NewAppError(http.StatusInternalServerError, "internal_error", "Internal server error", err)
	}
}
