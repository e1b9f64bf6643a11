package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// RespondJSON sends a JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// headers are already sent, nothing left to do but log
		slog.Error("Error encoding JSON response", slog.Any("error", err))
	}
}

// RespondError sends {"error": message} and records the message on the request log.
// If logger is nil, the message goes straight to the default logger.
func RespondError(w http.ResponseWriter, logger *strings.Builder, message string, status int) {
	if logger != nil {
		AddToLogMessage(logger, message)
	} else {
		slog.Warn(message, slog.Int("status", status))
	}
	RespondJSON(w, status, map[string]string{"error": message})
}

// RespondMessage sends {"message": message}
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"message": message})
}
