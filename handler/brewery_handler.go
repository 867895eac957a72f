package handler

import (
	"go-beer-cellar-api/common"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/service"
	"net/http"
)

type BreweryHandler struct {
	service *service.BreweryService
}

func NewBreweryHandler(service *service.BreweryService) *BreweryHandler {
	return &BreweryHandler{service: service}
}

func (h *BreweryHandler) CreateBrewery(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.BreweryRequest
	if appErr := common.DecodeAndValidate(r, "invalid_brewery", &req); appErr != nil {
		return appErr
	}
	brewery, err := h.service.CreateBrewery(req)
	if err != nil {
		return MapServiceError(err, "brewery")
	}
	writeJSON(w, http.StatusCreated, brewery)
	return nil
}

func (h *BreweryHandler) GetBrewery(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "brewery")
	if appErr != nil {
		return appErr
	}
	brewery, err := h.service.GetBrewery(id)
	if err != nil {
		return MapServiceError(err, "brewery")
	}
	writeJSON(w, http.StatusOK, brewery)
	return nil
}

func (h *BreweryHandler) ListBreweries(w http.ResponseWriter, r *http.Request) *common.AppError {
	params, appErr := parseListParams(r, "invalid_brewery_list")
	if appErr != nil {
		return appErr
	}
	breweries, err := h.service.ListBreweries(params)
	if err != nil {
		return MapServiceError(err, "brewery")
	}
	writeJSON(w, http.StatusOK, breweries)
	return nil
}

func (h *BreweryHandler) UpdateBrewery(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "brewery")
	if appErr != nil {
		return appErr
	}
	var req model.BreweryRequest
	if appErr := common.DecodeAndValidate(r, "invalid_brewery", &req); appErr != nil {
		return appErr
	}
	brewery, err := h.service.UpdateBrewery(id, req)
	if err != nil {
		return MapServiceError(err, "brewery")
	}
	writeJSON(w, http.StatusOK, brewery)
	return nil
}

func (h *BreweryHandler) DeleteBrewery(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "brewery")
	if appErr != nil {
		return appErr
	}
	if err := h.service.DeleteBrewery(id); err != nil {
		return MapServiceError(err, "brewery")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
