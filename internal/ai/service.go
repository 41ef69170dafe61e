package ai

import (
	"context"
	"fmt"

	"resumeforge/internal/config"
	"resumeforge/internal/errors"
)

// Service handles AI operations for one operation group
type Service struct {
	Provider Provider // Exported for access from server package
	Prompts  *Prompts
	config   *config.OperationAIConfig
	logger   *errors.Logger
}

// NewService creates a new AI service instance with configuration for a specific operation
func NewService(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (*Service, error) {
	var provider Provider
	var err error

	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries,
		"use_system_prompts", *cfg.UseSystemPrompts)

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, operationType, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		Prompts:  NewPrompts(operationType, cfg),
		config:   cfg,
		logger:   logger,
	}, nil
}

// Generate resolves the prompt template for kind, fills it with args and runs
// the request. The raw response text is returned unparsed.
func (s *Service) Generate(ctx context.Context, kind PromptKind, args ...any) (string, *TokenUsage, error) {
	template := s.Prompts.UserTemplate(kind)
	userPrompt := fmt.Sprintf(template, args...)
	return s.Provider.GenerateText(ctx, string(kind), s.Prompts.SystemPrompt(), userPrompt)
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.Provider.GetModelInfo(ctx)
}
