package handler

import (
	"go-beer-cellar-api/common"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/service"
	"net/http"
)

type ContainerHandler struct {
	service *service.ContainerService
}

func NewContainerHandler(service *service.ContainerService) *ContainerHandler {
	return &ContainerHandler{service: service}
}

// CreateContainer godoc
// @Summary      Add a container variant
// @Tags         containers
// @Accept       json
// @Produce      json
// @Param        request body model.ContainerRequest true "Container, size is a two-decimal litre string"
// @Success      201 {object} model.Container
// @Security     BearerAuth
// @Router       /api/v1/containers [post]
func (h *ContainerHandler) CreateContainer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.ContainerRequest
	if appErr := common.DecodeAndValidate(r, "invalid_container", &req); appErr != nil {
		return appErr
	}
	container, err := h.service.CreateContainer(req)
	if err != nil {
		return MapServiceError(err, "container")
	}
	writeJSON(w, http.StatusCreated, container)
	return nil
}

func (h *ContainerHandler) GetContainer(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "container")
	if appErr != nil {
		return appErr
	}
	container, err := h.service.GetContainer(id)
	if err != nil {
		return MapServiceError(err, "container")
	}
	writeJSON(w, http.StatusOK, container)
	return nil
}

func (h *ContainerHandler) ListContainers(w http.ResponseWriter, r *http.Request) *common.AppError {
	containers, err := h.service.ListContainers()
	if err != nil {
		return MapServiceError(err, "container")
	}
	writeJSON(w, http.StatusOK, containers)
	return nil
}

func (h *ContainerHandler) UpdateContainer(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "container")
	if appErr != nil {
		return appErr
	}
	var req model.ContainerRequest
	if appErr := common.DecodeAndValidate(r, "invalid_container", &req); appErr != nil {
		return appErr
	}
	container, err := h.service.UpdateContainer(id, req)
	if err != nil {
		return MapServiceError(err, "container")
	}
	writeJSON(w, http.StatusOK, container)
	return nil
}

func (h *ContainerHandler) DeleteContainer(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "container")
	if appErr != nil {
		return appErr
	}
	if err := h.service.DeleteContainer(id); err != nil {
		return MapServiceError(err, "container")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
