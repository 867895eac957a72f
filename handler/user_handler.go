package handler

import (
	"go-beer-cellar-api/common"
	"go-beer-cellar-api/logger"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/service"
	"net/http"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body model.RegisterRequest true "New user"
// @Success      201 {object} model.User
// @Security     BearerAuth
// @Router       /api/v1/users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if appErr := common.DecodeAndValidate(r, "invalid_user", &req); appErr != nil {
		return appErr
	}

	user, err := h.service.Register(req)
	if err != nil {
		return MapServiceError(err, "user")
	}

	logger.Log.WithField("username", user.Username).Info("User registered")
	writeJSON(w, http.StatusCreated, user)
	return nil
}

// Login godoc
// @Summary      Sign in and receive a token pair
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body model.LoginRequest true "Credentials"
// @Success      200 {object} model.TokenPair
// @Router       /api/v1/users/sign-in [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.DecodeAndValidate(r, "invalid_sign_in", &req); appErr != nil {
		return appErr
	}

	pair, user, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		return MapServiceError(err, "user")
	}

	logger.Log.WithField("user_id", user.ID).Info("User signed in")
	writeJSON(w, http.StatusOK, pair)
	return nil
}

// Refresh godoc
// @Summary      Mint a new auth token from a refresh token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body model.RefreshRequest true "Refresh token"
// @Success      200 {object} map[string]string
// @Router       /api/v1/users/refresh [post]
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshRequest
	if appErr := common.DecodeAndValidate(r, "invalid_refresh", &req); appErr != nil {
		return appErr
	}

	authToken, err := h.service.RefreshAuthToken(req.RefreshToken)
	if err != nil {
		return MapServiceError(err, "user")
	}

	writeJSON(w, http.StatusOK, map[string]string{"auth_token": authToken})
	return nil
}

// SignOut revokes the presented refresh token for the user in the path.
// Guarded by RequireUser: admins or the user themselves.
func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) *common.AppError {
	targetID, appErr := parsePathID(r, "id", "user")
	if appErr != nil {
		return appErr
	}

	var req model.LogoutRequest
	if appErr := common.DecodeAndValidate(r, "invalid_sign_out", &req); appErr != nil {
		return appErr
	}

	if err := h.service.Logout(targetID, req.RefreshToken); err != nil {
		return MapServiceError(err, "user")
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	targetID, appErr := parsePathID(r, "id", "user")
	if appErr != nil {
		return appErr
	}

	var req model.ChangePasswordRequest
	if appErr := common.DecodeAndValidate(r, "invalid_password_change", &req); appErr != nil {
		return appErr
	}

	if err := h.service.ChangePassword(targetID, req.OldPassword, req.NewPassword); err != nil {
		return MapServiceError(err, "user")
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	users, err := h.service.ListUsers()
	if err != nil {
		return MapServiceError(err, "user")
	}
	writeJSON(w, http.StatusOK, users)
	return nil
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "user")
	if appErr != nil {
		return appErr
	}
	if err := h.service.DeleteUser(id); err != nil {
		return MapServiceError(err, "user")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
