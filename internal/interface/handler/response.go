package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/usecase"
)

// envelope is the success body of every endpoint
type envelope struct {
	Data    interface{}        `json:"data"`
	Context entity.QueryContext `json:"context"`
}

type errorBody struct {
	Message string `json:"message"`
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithData wraps data and its query context in the success envelope
func RespondWithData(w http.ResponseWriter, statusCode int, data interface{}, qc entity.QueryContext) {
	if qc == nil {
		qc = entity.QueryContext{}
	}
	RespondWithJSON(w, statusCode, envelope{Data: data, Context: qc})
}

// RespondWithError sends {"message": msg}
func RespondWithError(w http.ResponseWriter, statusCode int, msg string) {
	RespondWithJSON(w, statusCode, errorBody{Message: msg})
}

// errorStatus maps usecase errors onto a status code and a client-safe message
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrUnknownAirport):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized, "Authentication failed"
	case errors.Is(err, usecase.ErrConflict):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, usecase.ErrUserNotFound):
		return http.StatusNotFound, "User does not exist"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// fail writes the error response for err. Server-side failures are logged and counted per operation.
func (h *Handler) fail(w http.ResponseWriter, operation string, err error) {
	code, msg := errorStatus(err)
	if code >= http.StatusInternalServerError {
		h.metrics.ErrorsCount.WithLabelValues(operation).Inc()
		h.logger.Error("Request failed", "operation", operation, "error", err)
	} else {
		h.logger.Debug("Request rejected", "operation", operation, "status", code, "error", err)
	}
	RespondWithError(w, code, msg)
}
