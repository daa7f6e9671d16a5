package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"masterboxer.com/project-micro-social/logging"
	"masterboxer.com/project-micro-social/services"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Log.WithError(err).Error("failed to encode response")
	}
}

// statusFor maps a command error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrUserExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, err error, action string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Log.WithError(err).Errorf("failed to %s", action)
		http.Error(w, "Failed to "+action, status)
		return
	}
	http.Error(w, err.Error(), status)
}
