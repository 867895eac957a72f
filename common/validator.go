package common

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// Container sizes are stored as fixed-precision strings, e.g. "0.33" or "1.00".
var containerSizePattern = regexp.MustCompile(`^\d+\.\d{2}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("containersize", func(fl validator.FieldLevel) bool {
		return containerSizePattern.MatchString(fl.Field().String())
	})
	return v
}

// DecodeAndValidate decodes the request body into payload and validates it
// against its schema tags. Payloads are accepted whole or rejected whole;
// unknown fields are rejected.
func DecodeAndValidate(r *http.Request, code string, payload interface{}) *AppError {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, code, "Invalid request body", err)
	}
	return ValidateStruct(code, payload)
}

// ValidateStruct validates an already-decoded value, e.g. query parameters.
func ValidateStruct(code string, payload interface{}) *AppError {
	if err := validate.Struct(payload); err != nil {
		return NewAppError(http.StatusBadRequest, code, "Invalid request body", err)
	}
	return nil
}
