package app

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/markdave123-py/blogai/internal/api/handlers"
	"github.com/markdave123-py/blogai/internal/config"
	"github.com/markdave123-py/blogai/internal/core"
	"github.com/markdave123-py/blogai/internal/core/llm"
	"github.com/markdave123-py/blogai/internal/metrics"
	"github.com/markdave123-py/blogai/internal/services"
)

type App struct {
	AIService *services.AIService
	Server    *Server

	cfg     *config.Config
	log     zerolog.Logger
	closers []io.Closer
}

func NewApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	for _, w := range cfg.Warnings {
		logger.Warn().Str("component", "config").Msg(w)
	}

	m := metrics.New(prometheus.NewRegistry())

	openAI := llm.NewOpenAIClient(llm.OpenAIConfig{
		APIKey:     cfg.OpenAIAPIKey,
		BaseURL:    cfg.OpenAIBaseURL,
		ChatModel:  cfg.ChatModel,
		ImageModel: cfg.ImageModel,
	})
	if cfg.OpenAIAPIKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY not set; AI routes will answer 500 until it is configured")
	}

	a := &App{cfg: cfg, log: logger}

	var text core.TextGenerator = openAI
	if cfg.TextProvider == config.TextProviderGemini {
		gemini, err := llm.NewGeminiLLM(ctx, cfg.GeminiAPIKey, cfg.GenModel)
		if err != nil {
			return nil, fmt.Errorf("couldn't initialize the gemini client, %w", err)
		}
		a.closers = append(a.closers, gemini)
		text = gemini
		logger.Info().Str("model", cfg.GenModel).Msg("text generation served by Gemini")
	}

	a.AIService = services.NewAIService(openAI, text, services.AIServiceConfig{
		ImageSize:       cfg.ImageSize,
		MaxKeywords:     cfg.MaxKeywords,
		SummaryMaxWords: cfg.SummaryMaxWords,
	}, m, logger)

	aiHandler := handlers.NewAIHandler(a.AIService, m, logger)
	a.Server = NewServer(cfg, logger, aiHandler, m)

	return a, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down within the
// configured timeout.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(a.Server.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn().Err(err).Msg("close failed")
		}
	}
}
