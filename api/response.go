package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/fieldsolutions/backend/internal/apperr"
)

type errorResponse struct {
	Message string              `json:"message"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("err", err))
	}
}

// writeError maps the error taxonomy onto HTTP statuses: validation and
// reference failures 422, not-found 404, conflicts 409, store outage 503.
func writeError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		logger.Error("request failed", slog.Any("err", err))
		writeJSON(w, errorResponse{Message: "internal server error"}, http.StatusInternalServerError)
		return
	}

	status := http.StatusInternalServerError
	switch ae.Kind {
	case apperr.KindValidation:
		status = http.StatusUnprocessableEntity
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindReference:
		status = http.StatusUnprocessableEntity
	case apperr.KindUnavailable:
		status = http.StatusServiceUnavailable
	}

	msg := ae.Message
	if msg == "" {
		msg = "invalid request data"
	}
	writeJSON(w, errorResponse{Message: msg, Details: ae.Details}, status)
}
