package handler

import (
	"go-beer-cellar-api/common"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/service"
	"net/http"
)

type ReviewHandler struct {
	service *service.ReviewService
}

func NewReviewHandler(service *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReview stores a review authored by the authenticated user.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.ReviewRequest
	if appErr := common.DecodeAndValidate(r, "invalid_review", &req); appErr != nil {
		return appErr
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "invalid_auth_token", "Invalid user id in token", nil)
	}

	review, err := h.service.CreateReview(userID, req)
	if err != nil {
		return MapServiceError(err, "review")
	}
	writeJSON(w, http.StatusCreated, review)
	return nil
}

func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "review")
	if appErr != nil {
		return appErr
	}
	review, err := h.service.GetReview(id)
	if err != nil {
		return MapServiceError(err, "review")
	}
	writeJSON(w, http.StatusOK, review)
	return nil
}

func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) *common.AppError {
	params, appErr := parseListParams(r, "invalid_review_list")
	if appErr != nil {
		return appErr
	}
	reviews, err := h.service.ListReviews(params)
	if err != nil {
		return MapServiceError(err, "review")
	}
	writeJSON(w, http.StatusOK, reviews)
	return nil
}

func (h *ReviewHandler) ListReviewsByBeer(w http.ResponseWriter, r *http.Request) *common.AppError {
	beerID, appErr := parsePathID(r, "id", "beer")
	if appErr != nil {
		return appErr
	}
	params, appErr := parseListParams(r, "invalid_review_list")
	if appErr != nil {
		return appErr
	}
	reviews, err := h.service.ListReviewsByBeer(beerID, params)
	if err != nil {
		return MapServiceError(err, "review")
	}
	writeJSON(w, http.StatusOK, reviews)
	return nil
}

func (h *ReviewHandler) ListReviewsByUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := parsePathID(r, "id", "user")
	if appErr != nil {
		return appErr
	}
	params, appErr := parseListParams(r, "invalid_review_list")
	if appErr != nil {
		return appErr
	}
	reviews, err := h.service.ListReviewsByUser(userID, params)
	if err != nil {
		return MapServiceError(err, "review")
	}
	writeJSON(w, http.StatusOK, reviews)
	return nil
}

// UpdateReview lets the author or an admin edit a review.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "review")
	if appErr != nil {
		return appErr
	}
	var req model.ReviewRequest
	if appErr := common.DecodeAndValidate(r, "invalid_review", &req); appErr != nil {
		return appErr
	}

	if appErr := h.requireAuthorOrAdmin(r, id); appErr != nil {
		return appErr
	}

	review, err := h.service.UpdateReview(id, req)
	if err != nil {
		return MapServiceError(err, "review")
	}
	writeJSON(w, http.StatusOK, review)
	return nil
}

// DeleteReview lets the author or an admin remove a review.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "review")
	if appErr != nil {
		return appErr
	}

	if appErr := h.requireAuthorOrAdmin(r, id); appErr != nil {
		return appErr
	}

	if err := h.service.DeleteReview(id); err != nil {
		return MapServiceError(err, "review")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *ReviewHandler) requireAuthorOrAdmin(r *http.Request, reviewID int) *common.AppError {
	role, _ := r.Context().Value(UserRoleKey).(model.Role)
	if role == model.RoleAdmin {
		return nil
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "invalid_auth_token", "Invalid user id in token", nil)
	}

	review, err := h.service.GetReview(reviewID)
	if err != nil {
		return MapServiceError(err, "review")
	}
	if review.UserID != userID {
		return MapServiceError(service.ErrNoRights, "review")
	}
	return nil
}
