package dream

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/somnia-backend/internal/domain"
)

// List returns the user's dreams, most recently dreamed first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]domain.Dream, error) {
	dreams, err := s.dreams.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dream.List: %w", err)
	}
	return dreams, nil
}

// Get returns one of the user's dreams by id.
func (s *Service) Get(ctx context.Context, userID, dreamID uuid.UUID) (*domain.Dream, error) {
	d, err := s.getOwned(ctx, userID, dreamID)
	if err != nil {
		return nil, fmt.Errorf("dream.Get: %w", err)
	}
	return d, nil
}

// Update patches the title and/or interpretation of an owned dream.
// Writes are last-write-wins with no version check.
func (s *Service) Update(ctx context.Context, userID, dreamID uuid.UUID, input UpdateInput) (*domain.Dream, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.getOwned(ctx, userID, dreamID); err != nil {
		return nil, fmt.Errorf("dream.Update: %w", err)
	}

	d, err := s.dreams.UpdateContent(ctx, dreamID, input.Title, input.Interpretation)
	if err != nil {
		return nil, fmt.Errorf("dream.Update: %w", err)
	}

	return d, nil
}

// Delete removes an owned dream.
func (s *Service) Delete(ctx context.Context, userID, dreamID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, dreamID); err != nil {
		return fmt.Errorf("dream.Delete: %w", err)
	}

	if err := s.dreams.Delete(ctx, dreamID); err != nil {
		return fmt.Errorf("dream.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "dream deleted",
		slog.String("dream_id", dreamID.String()),
		slog.String("user_id", userID.String()))

	return nil
}
