package core

import "context"

// ImageRequest describes a single image generation call.
type ImageRequest struct {
	Prompt string
	Size   string
}

// CompletionRequest is one system+user exchange with a chat-style model.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float32
}

// ImageGenerator returns the URL of a generated image.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
}

type TextGenerator interface {
	Generate(ctx context.Context, req CompletionRequest) (string, error)
}
