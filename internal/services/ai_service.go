package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/markdave123-py/blogai/internal/core"
	"github.com/markdave123-py/blogai/internal/metrics"
)

const (
	OpThumbnail = "thumbnail"
	OpKeywords  = "keywords"
	OpSummarize = "summarize"
)

const (
	keywordsSystemPrompt = "You are an expert blog SEO optimizer."
	summarySystemPrompt  = "You are a helpful assistant that writes engaging blog summaries."
)

type AIServiceConfig struct {
	ImageSize       string
	MaxKeywords     int
	SummaryMaxWords int
}

// AIService owns every exchange with the generative AI provider: prompt
// construction, the single outbound call and post-processing of the reply.
type AIService struct {
	images  core.ImageGenerator
	text    core.TextGenerator
	cfg     AIServiceConfig
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewAIService(images core.ImageGenerator, text core.TextGenerator, cfg AIServiceConfig, m *metrics.Metrics, logger zerolog.Logger) *AIService {
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = 8
	}
	if cfg.SummaryMaxWords <= 0 {
		cfg.SummaryMaxWords = 120
	}
	if cfg.ImageSize == "" {
		cfg.ImageSize = "512x512"
	}
	return &AIService{
		images:  images,
		text:    text,
		cfg:     cfg,
		metrics: m,
		log:     logger.With().Str("component", "ai_service").Logger(),
	}
}

func (s *AIService) MaxKeywords() int     { return s.cfg.MaxKeywords }
func (s *AIService) SummaryMaxWords() int { return s.cfg.SummaryMaxWords }

// GenerateThumbnail returns the URL of a single generated image.
func (s *AIService) GenerateThumbnail(ctx context.Context, prompt string) (string, error) {
	url, err := s.images.GenerateImage(ctx, core.ImageRequest{Prompt: prompt, Size: s.cfg.ImageSize})
	if err != nil {
		return "", s.fail(OpThumbnail, "AI image generation", err)
	}
	s.observe(OpThumbnail, metrics.OutcomeSuccess)
	return url, nil
}

// SuggestKeywords asks the model for a comma-separated keyword list and
// returns at most maxKeywords entries in the order the model gave them.
// A non-positive maxKeywords uses the configured default.
func (s *AIService) SuggestKeywords(ctx context.Context, text string, maxKeywords int) ([]string, error) {
	if maxKeywords <= 0 {
		maxKeywords = s.cfg.MaxKeywords
	}

	out, err := s.text.Generate(ctx, core.CompletionRequest{
		SystemPrompt: keywordsSystemPrompt,
		UserPrompt:   keywordsPrompt(text, maxKeywords),
		MaxTokens:    60,
		Temperature:  0.4,
	})
	if err != nil {
		return nil, s.fail(OpKeywords, "Keyword suggestion", err)
	}

	s.observe(OpKeywords, metrics.OutcomeSuccess)
	return SplitKeywords(out, maxKeywords), nil
}

// SummarizeContent returns the model's summary with surrounding whitespace removed.
func (s *AIService) SummarizeContent(ctx context.Context, content string, maxWords int) (string, error) {
	if maxWords <= 0 {
		maxWords = s.cfg.SummaryMaxWords
	}

	out, err := s.text.Generate(ctx, core.CompletionRequest{
		SystemPrompt: summarySystemPrompt,
		UserPrompt:   summaryPrompt(content, maxWords),
		MaxTokens:    180,
		Temperature:  0.45,
	})
	if err != nil {
		return "", s.fail(OpSummarize, "Content summarization", err)
	}

	s.observe(OpSummarize, metrics.OutcomeSuccess)
	return strings.TrimSpace(out), nil
}

// fail logs the failure once and classifies it. Configuration errors pass
// through untouched; everything else becomes a ProviderError.
func (s *AIService) fail(op, label string, err error) error {
	if core.IsConfiguration(err) {
		s.log.Error().Str("op", op).Err(err).Msg("provider not configured")
		s.observe(op, metrics.OutcomeConfigError)
		return err
	}
	s.log.Error().Str("op", op).Err(err).Msg("provider call failed")
	s.observe(op, metrics.OutcomeProviderError)
	return &core.ProviderError{Op: label, Err: err}
}

func (s *AIService) observe(op, outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(op, outcome)
	}
}

func keywordsPrompt(text string, maxKeywords int) string {
	return fmt.Sprintf(
		"Suggest %d SEO-friendly, single or multi-word keywords for the following blog post content "+
			"(or description). Return as a comma-separated list.\n\n%s\n\nKeywords:",
		maxKeywords, text)
}

func summaryPrompt(content string, maxWords int) string {
	return fmt.Sprintf(
		"Summarize the following blog post in a concise, engaging paragraph. Max %d words.\n\n%s\n\nSummary:",
		maxWords, content)
}
