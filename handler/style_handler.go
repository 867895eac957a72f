package handler

import (
	"go-beer-cellar-api/common"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/service"
	"net/http"
)

type StyleHandler struct {
	service *service.StyleService
}

func NewStyleHandler(service *service.StyleService) *StyleHandler {
	return &StyleHandler{service: service}
}

func (h *StyleHandler) CreateStyle(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.StyleRequest
	if appErr := common.DecodeAndValidate(r, "invalid_style", &req); appErr != nil {
		return appErr
	}
	style, err := h.service.CreateStyle(req)
	if err != nil {
		return MapServiceError(err, "style")
	}
	writeJSON(w, http.StatusCreated, style)
	return nil
}

func (h *StyleHandler) GetStyle(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "style")
	if appErr != nil {
		return appErr
	}
	style, err := h.service.GetStyle(id)
	if err != nil {
		return MapServiceError(err, "style")
	}
	writeJSON(w, http.StatusOK, style)
	return nil
}

func (h *StyleHandler) ListStyles(w http.ResponseWriter, r *http.Request) *common.AppError {
	params, appErr := parseListParams(r, "invalid_style_list")
	if appErr != nil {
		return appErr
	}
	styles, err := h.service.ListStyles(params)
	if err != nil {
		return MapServiceError(err, "style")
	}
	writeJSON(w, http.StatusOK, styles)
	return nil
}

func (h *StyleHandler) UpdateStyle(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "style")
	if appErr != nil {
		return appErr
	}
	var req model.StyleRequest
	if appErr := common.DecodeAndValidate(r, "invalid_style", &req); appErr != nil {
		return appErr
	}
	style, err := h.service.UpdateStyle(id, req)
	if err != nil {
		return MapServiceError(err, "style")
	}
	writeJSON(w, http.StatusOK, style)
	return nil
}

func (h *StyleHandler) DeleteStyle(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "style")
	if appErr != nil {
		return appErr
	}
	if err := h.service.DeleteStyle(id); err != nil {
		return MapServiceError(err, "style")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
