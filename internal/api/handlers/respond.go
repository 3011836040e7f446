package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/markdave123-py/blogai/internal/core"
	"github.com/markdave123-py/blogai/internal/models"
)

// writeJSON encodes v after the status line is sent; a failed write
// (usually a gone client) can only be logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Int("status", status).Msg("encode response failed")
	}
}

func writeDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeJSON(w, r, status, models.ErrorResponse{Detail: detail})
}

// writeError maps the error taxonomy onto status codes.
func writeError(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, err error) {
	switch {
	case core.IsValidation(err):
		writeDetail(w, r, http.StatusBadRequest, err.Error())
	case core.IsConfiguration(err), core.IsProvider(err):
		writeDetail(w, r, http.StatusInternalServerError, err.Error())
	default:
		logger.Error().Err(err).Msg("unclassified error")
		writeDetail(w, r, http.StatusInternalServerError, "internal server error")
	}
}
