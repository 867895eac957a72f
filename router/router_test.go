package router

import (
	"encoding/json"
	"go-beer-cellar-api/handler"
	"go-beer-cellar-api/logger"
	"go-beer-cellar-api/service"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestRouter() http.Handler {
	auth := service.NewAuthService(nil, "test-secret", time.Minute)
	return NewRouter(Handlers{}, handler.NewAuthMiddleware(auth))
}

func TestHealthCheck(t *testing.T) {
	r := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "API is healthy and running", body["status"])
}

func TestProtectedRoutesRejectAnonymousRequests(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/beers"},
		{"POST", "/api/v1/breweries"},
		{"GET", "/api/v1/stats/overall"},
		{"DELETE", "/api/v1/users/1"},
	}

	router := newTestRouter()
	for _, route := range routes {
		r := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", route.method, route.path)

		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "invalid_authorization_header", body.Error.Code)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/wines", nil)
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
