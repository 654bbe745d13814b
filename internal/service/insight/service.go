// Package insight implements the LLM-backed interpretation, titling,
// chat and weekly summary operations.
package insight

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/somnia-backend/internal/adapter/provider/llmapi"
)

// completer defines the completion interface needed by the service.
type completer interface {
	CreateCompletion(ctx context.Context, messages []llmapi.Message) (string, error)
}

// Service implements insight operations.
type Service struct {
	log *slog.Logger
	llm completer
	now func() time.Time
}

// NewService creates a new insight service instance.
func NewService(logger *slog.Logger, llm completer) *Service {
	return &Service{
		log: logger.With("service", "insight"),
		llm: llm,
		now: time.Now,
	}
}

// ChatMessage is one entry of a client-supplied conversation.
type ChatMessage struct {
	Role    string
	Content string
}
