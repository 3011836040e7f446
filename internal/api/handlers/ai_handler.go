package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/markdave123-py/blogai/internal/core"
	"github.com/markdave123-py/blogai/internal/metrics"
	"github.com/markdave123-py/blogai/internal/models"
	"github.com/markdave123-py/blogai/internal/services"
)

// AIAssistant is the provider adapter as seen by the transport layer.
// Non-positive limits select the adapter's configured defaults.
type AIAssistant interface {
	GenerateThumbnail(ctx context.Context, prompt string) (string, error)
	SuggestKeywords(ctx context.Context, text string, maxKeywords int) ([]string, error)
	SummarizeContent(ctx context.Context, content string, maxWords int) (string, error)
}

type AIHandler struct {
	ai      AIAssistant
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewAIHandler(ai AIAssistant, m *metrics.Metrics, logger zerolog.Logger) *AIHandler {
	return &AIHandler{ai: ai, metrics: m, log: logger.With().Str("component", "ai_handler").Logger()}
}

// GenerateThumbnail handles POST /ai/thumbnail.
func (h *AIHandler) GenerateThumbnail(w http.ResponseWriter, r *http.Request) {
	var req models.ThumbnailRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.require(services.OpThumbnail, "prompt", req.Prompt, "Prompt is required for thumbnail generation."); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	url, err := h.ai.GenerateThumbnail(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, r, http.StatusOK, models.ThumbnailResponse{ImageURL: url})
}

// SuggestKeywords handles POST /ai/keywords.
func (h *AIHandler) SuggestKeywords(w http.ResponseWriter, r *http.Request) {
	var req models.KeywordsRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.require(services.OpKeywords, "text", req.Text, "Input text or topic is required for keyword suggestion."); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	keywords, err := h.ai.SuggestKeywords(r.Context(), req.Text, 0)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if keywords == nil {
		keywords = []string{}
	}
	writeJSON(w, r, http.StatusOK, models.KeywordsResponse{Keywords: keywords})
}

// SummarizeContent handles POST /ai/summarize.
func (h *AIHandler) SummarizeContent(w http.ResponseWriter, r *http.Request) {
	var req models.SummaryRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.require(services.OpSummarize, "content", req.Content, "Blog post content is required for summarization."); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	summary, err := h.ai.SummarizeContent(r.Context(), req.Content, 0)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, r, http.StatusOK, models.SummaryResponse{Summary: summary})
}

func (h *AIHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeDetail(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *AIHandler) require(op, field, value, message string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	if h.metrics != nil {
		h.metrics.ObserveOperation(op, metrics.OutcomeValidationError)
	}
	return &core.ValidationError{Field: field, Message: message}
}
