package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/markdave123-py/blogai/internal/core"
)

const providerGemini = "Gemini"

type GeminiLLM struct {
	client    *genai.Client
	modelName string
}

// NewGeminiLLM returns a text generator backed by Gemini. An empty apiKey
// yields a generator that reports a configuration error on every call.
func NewGeminiLLM(ctx context.Context, apiKey, modelName string) (*GeminiLLM, error) {
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	if strings.TrimSpace(apiKey) == "" {
		return &GeminiLLM{modelName: modelName}, nil
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiLLM{client: cl, modelName: modelName}, nil
}

func (g *GeminiLLM) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func (g *GeminiLLM) Generate(ctx context.Context, req core.CompletionRequest) (string, error) {
	if g.client == nil {
		return "", &core.ConfigurationError{Provider: providerGemini}
	}

	m := g.client.GenerativeModel(g.modelName)
	configure(m, req)

	resp, err := m.GenerateContent(ctx, genai.Text(req.UserPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return candidateText(resp)
}

// configure copies the system prompt and sampling limits onto the model.
func configure(m *genai.GenerativeModel, req core.CompletionRequest) {
	if req.SystemPrompt != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemPrompt)},
		}
	}
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	m.SetTemperature(req.Temperature)
}

// candidateText joins the text parts of the first candidate. A reply with
// no candidate or no text part is an error.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return "", core.ErrEmptyCompletion
	}

	var b strings.Builder
	found := false
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
			found = true
		}
	}
	if !found {
		return "", core.ErrEmptyCompletion
	}
	return b.String(), nil
}

var _ core.TextGenerator = (*GeminiLLM)(nil)
