package handler

import (
	"go-beer-cellar-api/common"
	"go-beer-cellar-api/logger"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/service"
	"net/http"

	"github.com/sirupsen/logrus"
)

type BeerHandler struct {
	service *service.BeerService
}

func NewBeerHandler(service *service.BeerService) *BeerHandler {
	return &BeerHandler{service: service}
}

// CreateBeer godoc
// @Summary      Add a beer to the catalogue
// @Tags         beers
// @Accept       json
// @Produce      json
// @Param        request body model.BeerRequest true "Beer"
// @Success      201 {object} model.Beer
// @Security     BearerAuth
// @Router       /api/v1/beers [post]
func (h *BeerHandler) CreateBeer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.BeerRequest
	if appErr := common.DecodeAndValidate(r, "invalid_beer", &req); appErr != nil {
		return appErr
	}

	beer, err := h.service.CreateBeer(req)
	if err != nil {
		return MapServiceError(err, "beer")
	}

	logger.Log.WithFields(logrus.Fields{
		"beer_id": beer.ID,
		"name":    beer.Name,
	}).Info("Beer created")
	writeJSON(w, http.StatusCreated, beer)
	return nil
}

func (h *BeerHandler) GetBeer(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "beer")
	if appErr != nil {
		return appErr
	}
	beer, err := h.service.GetBeer(id)
	if err != nil {
		return MapServiceError(err, "beer")
	}
	writeJSON(w, http.StatusOK, beer)
	return nil
}

// ListBeers godoc
// @Summary      List beers with pagination, sorting and optional search
// @Tags         beers
// @Produce      json
// @Param        size query int false "Page size"
// @Param        skip query int false "Offset"
// @Param        order query string false "asc or desc"
// @Param        sort_by query string false "name, abv, ibu or created_at"
// @Param        q query string false "Search term (min 3 chars)"
// @Success      200 {array} model.Beer
// @Security     BearerAuth
// @Router       /api/v1/beers [get]
func (h *BeerHandler) ListBeers(w http.ResponseWriter, r *http.Request) *common.AppError {
	params, appErr := parseListParams(r, "invalid_beer_list")
	if appErr != nil {
		return appErr
	}

	if search := r.URL.Query().Get("q"); search != "" {
		searchParams := model.SearchParams{Query: search}
		if appErr := common.ValidateStruct("invalid_beer_search", &searchParams); appErr != nil {
			return appErr
		}
		beers, err := h.service.SearchBeers(searchParams.Query, params)
		if err != nil {
			return MapServiceError(err, "beer")
		}
		writeJSON(w, http.StatusOK, beers)
		return nil
	}

	beers, err := h.service.ListBeers(params)
	if err != nil {
		return MapServiceError(err, "beer")
	}
	writeJSON(w, http.StatusOK, beers)
	return nil
}

func (h *BeerHandler) UpdateBeer(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "beer")
	if appErr != nil {
		return appErr
	}
	var req model.BeerRequest
	if appErr := common.DecodeAndValidate(r, "invalid_beer", &req); appErr != nil {
		return appErr
	}
	beer, err := h.service.UpdateBeer(id, req)
	if err != nil {
		return MapServiceError(err, "beer")
	}
	writeJSON(w, http.StatusOK, beer)
	return nil
}

func (h *BeerHandler) DeleteBeer(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := parsePathID(r, "id", "beer")
	if appErr != nil {
		return appErr
	}
	if err := h.service.DeleteBeer(id); err != nil {
		return MapServiceError(err, "beer")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
