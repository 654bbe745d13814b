package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/somnia-backend/internal/adapter/provider/llmapi"
	"github.com/heartmarshall/somnia-backend/internal/domain"
)

// Chat accepts a conversation and returns a single completion. Only the
// final user message is forwarded to the provider: the endpoint accepts
// a history but the exchange is effectively single-turn.
func (s *Service) Chat(ctx context.Context, messages []ChatMessage) (string, error) {
	last, ok := lastUserMessage(messages)
	if !ok {
		return "", domain.NewValidationError("messages", "no user message")
	}

	out, err := s.llm.CreateCompletion(ctx, []llmapi.Message{
		{Role: "user", Content: last},
	})
	if err != nil {
		return "", fmt.Errorf("insight.Chat: %w", err)
	}

	return strings.TrimSpace(out), nil
}

func lastUserMessage(messages []ChatMessage) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" && strings.TrimSpace(messages[i].Content) != "" {
			return messages[i].Content, true
		}
	}
	return "", false
}
