package handlers

import (
	"net/http"

	"github.com/markdave123-py/blogai/internal/models"
)

// Health is the liveness probe. It never touches configuration or the provider.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.HealthResponse{Status: "ok"})
}
