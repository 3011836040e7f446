package models

// ThumbnailRequest asks for a blog thumbnail image.
type ThumbnailRequest struct {
	Prompt string `json:"prompt"` // blog topic or description
}

type ThumbnailResponse struct {
	ImageURL string `json:"image_url"`
}

// KeywordsRequest carries blog text, an excerpt or a topic.
type KeywordsRequest struct {
	Text string `json:"text"`
}

type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// SummaryRequest carries the full blog post body.
type SummaryRequest struct {
	Content string `json:"content"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the envelope for every non-2xx reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
