// Package feedback implements the append-only feedback box.
package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/somnia-backend/internal/domain"
)

const (
	messageMaxLen = 5000
	emailMaxLen   = 254
)

// feedbackRepo defines the repository interface needed by the service.
type feedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	List(ctx context.Context, limit, offset int) ([]domain.Feedback, error)
}

// Service implements feedback operations.
type Service struct {
	log      *slog.Logger
	feedback feedbackRepo
}

// NewService creates a new feedback service instance.
func NewService(logger *slog.Logger, feedback feedbackRepo) *Service {
	return &Service{
		log:      logger.With("service", "feedback"),
		feedback: feedback,
	}
}

// SubmitInput holds parameters for the submit operation. UserID and
// Username identify a logged-in author; both stay nil for anonymous
// submissions.
type SubmitInput struct {
	Message  string
	Email    *string
	UserID   *uuid.UUID
	Username *string
}

// Validate validates the submit input.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	} else if len(i.Message) > messageMaxLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}

	if i.Email != nil {
		email := strings.TrimSpace(*i.Email)
		if len(email) > emailMaxLen || (email != "" && !strings.Contains(email, "@")) {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Submit stores one feedback entry. Entries are never updated or
// deleted afterwards.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Feedback, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f, err := s.feedback.Create(ctx, &domain.Feedback{
		ID:        uuid.New(),
		Message:   input.Message,
		Email:     input.Email,
		UserID:    input.UserID,
		Username:  input.Username,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("feedback.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "feedback submitted",
		slog.String("feedback_id", f.ID.String()),
		slog.Bool("anonymous", input.UserID == nil))

	return f, nil
}

// List returns feedback entries, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Feedback, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.feedback.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("feedback.List: %w", err)
	}
	return entries, nil
}
