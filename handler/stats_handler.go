package handler

import (
	"go-beer-cellar-api/common"
	"go-beer-cellar-api/service"
	"net/http"
)

type StatsHandler struct {
	service *service.StatsService
}

func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetOverallStats godoc
// @Summary      Catalogue-wide counters and average rating
// @Tags         stats
// @Produce      json
// @Success      200 {object} model.OverallStats
// @Security     BearerAuth
// @Router       /api/v1/stats/overall [get]
func (h *StatsHandler) GetOverallStats(w http.ResponseWriter, r *http.Request) *common.AppError {
	stats, err := h.service.GetOverallStats()
	if err != nil {
		return MapServiceError(err, "stats")
	}
	writeJSON(w, http.StatusOK, stats)
	return nil
}

func (h *StatsHandler) GetBreweryStats(w http.ResponseWriter, r *http.Request) *common.AppError {
	stats, err := h.service.GetBreweryStats()
	if err != nil {
		return MapServiceError(err, "stats")
	}
	writeJSON(w, http.StatusOK, stats)
	return nil
}

func (h *StatsHandler) GetStyleStats(w http.ResponseWriter, r *http.Request) *common.AppError {
	stats, err := h.service.GetStyleStats()
	if err != nil {
		return MapServiceError(err, "stats")
	}
	writeJSON(w, http.StatusOK, stats)
	return nil
}

func (h *StatsHandler) GetAnnualStats(w http.ResponseWriter, r *http.Request) *common.AppError {
	stats, err := h.service.GetAnnualStats()
	if err != nil {
		return MapServiceError(err, "stats")
	}
	writeJSON(w, http.StatusOK, stats)
	return nil
}

func (h *StatsHandler) GetRatingDistribution(w http.ResponseWriter, r *http.Request) *common.AppError {
	stats, err := h.service.GetRatingDistribution()
	if err != nil {
		return MapServiceError(err, "stats")
	}
	writeJSON(w, http.StatusOK, stats)
	return nil
}
