package handler

import (
	"encoding/json"
	"go-beer-cellar-api/common"
	"go-beer-cellar-api/model"
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 20
	defaultOrder    = "asc"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parsePathID reads a numeric path parameter. A missing or malformed id is a
// routing problem, reported separately from payload validation errors.
func parsePathID(r *http.Request, name, resource string) (int, *common.AppError) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, common.NewAppError(http.StatusBadRequest, "invalid_"+resource+"_id", "Missing "+resource+" id", nil)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, common.NewAppError(http.StatusBadRequest, "invalid_"+resource+"_id", "Invalid "+resource+" id", err)
	}
	return id, nil
}

// parseListParams reads the shared pagination and ordering query parameters,
// applying defaults before validation.
func parseListParams(r *http.Request, code string) (model.ListParams, *common.AppError) {
	params := model.ListParams{
		Size:   defaultPageSize,
		Skip:   0,
		Order:  defaultOrder,
		SortBy: r.URL.Query().Get("sort_by"),
	}

	query := r.URL.Query()
	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return params, common.NewAppError(http.StatusBadRequest, code, "Invalid size parameter", err)
		}
		params.Size = size
	}
	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return params, common.NewAppError(http.StatusBadRequest, code, "Invalid skip parameter", err)
		}
		params.Skip = skip
	}
	if raw := query.Get("order"); raw != "" {
		params.Order = raw
	}

	if appErr := common.ValidateStruct(code, &params); appErr != nil {
		return params, appErr
	}
	return params, nil
}
