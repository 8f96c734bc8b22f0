package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/arclab-robotics/gridsearch/pkg/apperr"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// BadRequestResponse writes a 400 with err's message.
func BadRequestResponse(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// ServerErrorResponse writes a status derived from err's apperr
// classification, logging the underlying error at error level first.
func ServerErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	log.Error("request failed", zap.Error(err))
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

// NotFoundResponse writes a 404 for an unknown session id.
func NotFoundResponse(w http.ResponseWriter, sessionID string) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found: " + sessionID})
}

func statusFor(err error) int {
	switch {
	case errors.Is(apperr.CodeOf(err), apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(apperr.CodeOf(err), apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(apperr.CodeOf(err), apperr.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(apperr.CodeOf(err), apperr.ErrNoPath):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
