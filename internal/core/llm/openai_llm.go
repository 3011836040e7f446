package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/markdave123-py/blogai/internal/core"
)

const providerOpenAI = "OpenAI"

type OpenAIConfig struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	ImageModel string
	HTTPClient *http.Client
}

// OpenAIClient serves both image generation and chat completions.
type OpenAIClient struct {
	client     *openai.Client
	chatModel  string
	imageModel string
}

func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	c := &OpenAIClient{
		chatModel:  cfg.ChatModel,
		imageModel: cfg.ImageModel,
	}
	if c.chatModel == "" {
		c.chatModel = openai.GPT3Dot5Turbo
	}
	if c.imageModel == "" {
		c.imageModel = openai.CreateImageModelDallE2
	}

	// without a key the client stays nil and every call fails before dialing
	if strings.TrimSpace(cfg.APIKey) == "" {
		return c
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	}
	c.client = openai.NewClientWithConfig(oc)
	return c
}

func (o *OpenAIClient) GenerateImage(ctx context.Context, req core.ImageRequest) (string, error) {
	if o.client == nil {
		return "", &core.ConfigurationError{Provider: providerOpenAI}
	}

	size := req.Size
	if size == "" {
		size = openai.CreateImageSize512x512
	}

	resp, err := o.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          o.imageModel,
		N:              1,
		Size:           size,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", fmt.Errorf("openai create image: %w", err)
	}
	if len(resp.Data) == 0 || strings.TrimSpace(resp.Data[0].URL) == "" {
		return "", core.ErrNoImageURL
	}
	return resp.Data[0].URL, nil
}

func (o *OpenAIClient) Generate(ctx context.Context, req core.CompletionRequest) (string, error) {
	if o.client == nil {
		return "", &core.ConfigurationError{Provider: providerOpenAI}
	}

	var messages []openai.ChatCompletionMessage
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.chatModel,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", core.ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

var (
	_ core.ImageGenerator = (*OpenAIClient)(nil)
	_ core.TextGenerator  = (*OpenAIClient)(nil)
)
