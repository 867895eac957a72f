package common

import (
	"go-beer-cellar-api/logger"
	"go-beer-cellar-api/model"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestContainerSizeValidation(t *testing.T) {
	cases := []struct {
		size  string
		valid bool
	}{
		{"0.33", true},
		{"0.50", true},
		{"1.00", true},
		{"0.3", false},   // one decimal digit
		{"0.333", false}, // three decimal digits
		{".33", false},
		{"0,33", false},
		{"half", false},
		{"", false},
	}

	for _, c := range cases {
		req := model.ContainerRequest{Type: model.ContainerBottle, Size: c.size}
		appErr := ValidateStruct("invalid_container", &req)
		if c.valid {
			assert.Nil(t, appErr, "size %q should be accepted", c.size)
		} else {
			assert.NotNil(t, appErr, "size %q should be rejected", c.size)
		}
	}
}

func TestContainerTypeValidation(t *testing.T) {
	req := model.ContainerRequest{Type: "keg", Size: "0.33"}
	appErr := ValidateStruct("invalid_container", &req)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "invalid_container", appErr.Code)
}

func TestDecodeAndValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		body := `{"type": "bottle", "size": "0.33"}`
		r, _ := http.NewRequest("POST", "/api/v1/containers", strings.NewReader(body))

		var req model.ContainerRequest
		appErr := DecodeAndValidate(r, "invalid_container", &req)
		assert.Nil(t, appErr)
		assert.Equal(t, model.ContainerBottle, req.Type)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		body := `{"type": "bottle", "size": "0.33", "color": "green"}`
		r, _ := http.NewRequest("POST", "/api/v1/containers", strings.NewReader(body))

		var req model.ContainerRequest
		appErr := DecodeAndValidate(r, "invalid_container", &req)
		assert.NotNil(t, appErr)
	})

	t.Run("malformed json", func(t *testing.T) {
		r, _ := http.NewRequest("POST", "/api/v1/containers", strings.NewReader("{not json"))

		var req model.ContainerRequest
		appErr := DecodeAndValidate(r, "invalid_container", &req)
		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
	})
}

func TestListParamsValidation(t *testing.T) {
	valid := model.ListParams{Size: 20, Skip: 0, Order: "asc"}
	assert.Nil(t, ValidateStruct("invalid_list", &valid))

	tooBig := model.ListParams{Size: 500, Skip: 0, Order: "asc"}
	assert.NotNil(t, ValidateStruct("invalid_list", &tooBig))

	badOrder := model.ListParams{Size: 20, Skip: 0, Order: "sideways"}
	assert.NotNil(t, ValidateStruct("invalid_list", &badOrder))

	negativeSkip := model.ListParams{Size: 20, Skip: -1, Order: "desc"}
	assert.NotNil(t, ValidateStruct("invalid_list", &negativeSkip))
}

func TestReviewRequestValidation(t *testing.T) {
	valid := model.ReviewRequest{BeerID: 1, Rating: 8, Smell: 7, Taste: 9}
	assert.Nil(t, ValidateStruct("invalid_review", &valid))

	outOfRange := model.ReviewRequest{BeerID: 1, Rating: 11, Smell: 7, Taste: 9}
	assert.NotNil(t, ValidateStruct("invalid_review", &outOfRange))

	missingBeer := model.ReviewRequest{Rating: 8, Smell: 7, Taste: 9}
	assert.NotNil(t, ValidateStruct("invalid_review", &missingBeer))
}
