package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/somnia-backend/internal/service/insight"
)

// insightService defines the minimal interface needed by InsightHandler.
type insightService interface {
	Interpret(ctx context.Context, text, language string) (string, error)
	GenerateTitle(ctx context.Context, text, language string) (string, error)
	Chat(ctx context.Context, messages []insight.ChatMessage) (string, error)
}

// InsightHandler serves the LLM-backed REST endpoints.
type InsightHandler struct {
	svc insightService
	log *slog.Logger
}

// NewInsightHandler creates an InsightHandler.
func NewInsightHandler(svc insightService, logger *slog.Logger) *InsightHandler {
	return &InsightHandler{svc: svc, log: logger.With("handler", "insight")}
}

type promptRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

type chatMessageBody struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessageBody `json:"messages"`
}

type textResponse struct {
	Text string `json:"text"`
}

// Interpret handles POST /ai/interpret.
func (h *InsightHandler) Interpret(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.svc.Interpret(r.Context(), req.Text, req.Language)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, textResponse{Text: out})
}

// GenerateTitle handles POST /ai/title.
func (h *InsightHandler) GenerateTitle(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.svc.GenerateTitle(r.Context(), req.Text, req.Language)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, textResponse{Text: out})
}

// Chat handles POST /ai/chat.
func (h *InsightHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	messages := make([]insight.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, insight.ChatMessage{Role: m.Role, Content: m.Content})
	}

	out, err := h.svc.Chat(r.Context(), messages)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, textResponse{Text: out})
}
