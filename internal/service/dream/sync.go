package dream

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/somnia-backend/internal/domain"
)

const syncMaxItems = 500

// Sync bulk-inserts client-side entries for the user in one
// transaction. There is no deduplication: re-sending the same entries
// inserts them again with fresh ids.
func (s *Service) Sync(ctx context.Context, userID uuid.UUID, items []SyncItem) ([]domain.Dream, error) {
	if len(items) == 0 {
		return nil, domain.NewValidationError("dreams", "required")
	}
	if len(items) > syncMaxItems {
		return nil, domain.NewValidationError("dreams", "too many items")
	}

	now := time.Now()
	dreams := make([]domain.Dream, 0, len(items))
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("dream.Sync item %d: %w", idx, err)
		}

		dreamedAt := item.DreamedAt
		if dreamedAt.IsZero() {
			dreamedAt = now
		}
		dreams = append(dreams, domain.Dream{
			ID:             uuid.New(),
			UserID:         userID,
			Text:           item.Text,
			Title:          item.Title,
			Interpretation: item.Interpretation,
			DreamedAt:      dreamedAt,
			CreatedAt:      now,
		})
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.dreams.CreateBatch(txCtx, dreams)
	})
	if err != nil {
		return nil, fmt.Errorf("dream.Sync: %w", err)
	}

	s.log.InfoContext(ctx, "dreams synced",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(dreams)))

	return dreams, nil
}
