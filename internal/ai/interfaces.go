package ai

import (
	"context"
)

// Provider is the boundary to a text-generation backend. Responses are
// free-form text; callers are responsible for any parsing. All methods
// return token usage information - callers can ignore it if not needed.
type Provider interface {
	GenerateText(ctx context.Context, operation, systemPrompt, userPrompt string) (string, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
