package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/somnia-backend/internal/adapter/provider/llmapi"
	"github.com/heartmarshall/somnia-backend/internal/domain"
)

// Interpret produces a one-paragraph interpretation of the dream text.
// Empty text fails validation before any provider call.
func (s *Service) Interpret(ctx context.Context, text, language string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.NewValidationError("text", "required")
	}

	out, err := s.llm.CreateCompletion(ctx, []llmapi.Message{
		{Role: "user", Content: interpretPrompt(text, normalizeLanguage(language))},
	})
	if err != nil {
		return "", fmt.Errorf("insight.Interpret: %w", err)
	}

	return strings.TrimSpace(out), nil
}

// GenerateTitle produces a short title, at most a few words with a
// trailing emoji, for the dream text.
func (s *Service) GenerateTitle(ctx context.Context, text, language string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.NewValidationError("text", "required")
	}

	out, err := s.llm.CreateCompletion(ctx, []llmapi.Message{
		{Role: "user", Content: titlePrompt(text, normalizeLanguage(language))},
	})
	if err != nil {
		return "", fmt.Errorf("insight.GenerateTitle: %w", err)
	}

	// Providers occasionally quote short answers despite instructions.
	return strings.Trim(strings.TrimSpace(out), `"«»`), nil
}
