package api

import (
	"net/http"

	"github.com/raushankrgupta/portfolio-api/utils"
)

// isoMillis is the ISO-8601 layout used for timestamps in responses
const isoMillis = "2006-01-02T15:04:05.000Z"

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthHandler handles GET /api/health. It never touches the store.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   "Portfolio API is running",
		Timestamp: h.now().UTC().Format(isoMillis),
	})
}

// NotFoundHandler answers every route that is not registered
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusNotFound, map[string]string{"error": "Route not found"})
}
