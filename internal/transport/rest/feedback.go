package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/somnia-backend/internal/domain"
	"github.com/heartmarshall/somnia-backend/internal/service/feedback"
	"github.com/heartmarshall/somnia-backend/pkg/ctxutil"
)

// feedbackService defines the minimal interface needed by FeedbackHandler.
type feedbackService interface {
	Submit(ctx context.Context, input feedback.SubmitInput) (*domain.Feedback, error)
}

// FeedbackHandler serves the feedback endpoint.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

type feedbackRequest struct {
	Message string  `json:"message"`
	Email   *string `json:"email,omitempty"`
}

// Submit handles POST /feedback. Anonymous submissions are allowed; a
// logged-in caller's identity is attached from the session.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := feedback.SubmitInput{Message: req.Message, Email: req.Email}
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok && userID != uuid.Nil {
		username := ctxutil.UsernameFromCtx(r.Context())
		input.UserID = &userID
		input.Username = &username
	}

	f, err := h.svc.Submit(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": f.ID.String()})
}
