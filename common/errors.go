package common

import (
	"encoding/json"
	"go-beer-cellar-api/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

// AppError is the single error shape handlers return. Status drives the HTTP
// response code, Code is the machine-readable identifier clients switch on.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Send writes the error response body. Internal error details are logged but
// never serialized to the client.
func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Status,
			"error_code":     e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Status)
	json.NewEncoder(w).Encode(map[string]*AppError{"error": e})
}
