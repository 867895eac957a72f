package handler

import (
	"go-beer-cellar-api/common"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/service"
	"net/http"
)

type StorageHandler struct {
	service *service.StorageService
}

func NewStorageHandler(service *service.StorageService) *StorageHandler {
	return &StorageHandler{service: service}
}

func (h *StorageHandler) CreateStorage(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.StorageRequest
	if appErr := common.DecodeAndValidate(r, "invalid_storage", &req); appErr != nil {
		return appErr
	}
	storage, err := h.service.CreateStorage(req)
	if err != nil {
		return MapServiceError(err, "storage")
	}
	writeJSON(w, http.StatusCreated, storage)
	return nil
}

func (h *StorageHandler) GetStorage(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "storage")
	if appErr != nil {
		return appErr
	}
	storage, err := h.service.GetStorage(id)
	if err != nil {
		return MapServiceError(err, "storage")
	}
	writeJSON(w, http.StatusOK, storage)
	return nil
}

func (h *StorageHandler) ListStorages(w http.ResponseWriter, r *http.Request) *common.AppError {
	params, appErr := parseListParams(r, "invalid_storage_list")
	if appErr != nil {
		return appErr
	}
	storages, err := h.service.ListStorages(params)
	if err != nil {
		return MapServiceError(err, "storage")
	}
	writeJSON(w, http.StatusOK, storages)
	return nil
}

func (h *StorageHandler) ListStoragesByBeer(w http.ResponseWriter, r *http.Request) *common.AppError {
	beerID, appErr := parsePathID(r, "id", "beer")
	if appErr != nil {
		return appErr
	}
	storages, err := h.service.ListStoragesByBeer(beerID)
	if err != nil {
		return MapServiceError(err, "storage")
	}
	writeJSON(w, http.StatusOK, storages)
	return nil
}

func (h *StorageHandler) UpdateStorage(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "storage")
	if appErr != nil {
		return appErr
	}
	var req model.StorageRequest
	if appErr := common.DecodeAndValidate(r, "invalid_storage", &req); appErr != nil {
		return appErr
	}
	storage, err := h.service.UpdateStorage(id, req)
	if err != nil {
		return MapServiceError(err, "storage")
	}
	writeJSON(w, http.StatusOK, storage)
	return nil
}

// ConsumeStorage takes bottles out of the cellar.
func (h *StorageHandler) ConsumeStorage(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "storage")
	if appErr != nil {
		return appErr
	}
	var req model.StorageAdjustRequest
	if appErr := common.DecodeAndValidate(r, "invalid_storage_adjust", &req); appErr != nil {
		return appErr
	}
	storage, err := h.service.ConsumeFromStorage(id, req.Quantity)
	if err != nil {
		return MapServiceError(err, "storage")
	}
	writeJSON(w, http.StatusOK, storage)
	return nil
}

func (h *StorageHandler) DeleteStorage(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "storage")
	if appErr != nil {
		return appErr
	}
	if err := h.service.DeleteStorage(id); err != nil {
		return MapServiceError(err, "storage")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
