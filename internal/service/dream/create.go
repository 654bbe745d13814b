package dream

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/somnia-backend/internal/domain"
)

// Create stores a new dream for the user and, when automatic titling is
// enabled, kicks off a background title attach. The create and the
// title write are two independent operations: a title failure leaves
// the dream titleless and is only logged.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Dream, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	dreamedAt := input.DreamedAt
	if dreamedAt.IsZero() {
		dreamedAt = time.Now()
	}

	d, err := s.dreams.Create(ctx, &domain.Dream{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      input.Text,
		DreamedAt: dreamedAt,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("dream.Create: %w", err)
	}

	if s.autoTitle {
		go s.attachTitle(d.ID, d.Text, input.Language)
	}

	s.log.InfoContext(ctx, "dream created",
		slog.String("dream_id", d.ID.String()),
		slog.String("user_id", userID.String()))

	return d, nil
}

// attachTitle generates a title and writes it in a second, detached
// operation. It runs on its own context so the originating request's
// cancellation does not abort it.
func (s *Service) attachTitle(dreamID uuid.UUID, text, language string) {
	ctx, cancel := context.WithTimeout(context.Background(), titleAttachTimeout)
	defer cancel()

	title, err := s.titler.GenerateTitle(ctx, text, language)
	if err != nil {
		s.log.WarnContext(ctx, "title generation failed, dream stays untitled",
			slog.String("dream_id", dreamID.String()),
			slog.String("error", err.Error()))
		return
	}

	if _, err := s.dreams.UpdateContent(ctx, dreamID, &title, nil); err != nil {
		s.log.WarnContext(ctx, "title attach failed",
			slog.String("dream_id", dreamID.String()),
			slog.String("error", err.Error()))
		return
	}

	s.log.InfoContext(ctx, "title attached",
		slog.String("dream_id", dreamID.String()))
}
