// Package dream implements session-scoped journal entry operations.
package dream

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/somnia-backend/internal/domain"
)

// titleAttachTimeout bounds the background title-generation write that
// follows a create. It outlives the originating request on purpose.
const titleAttachTimeout = 60 * time.Second

// dreamRepo defines the dream repository interface needed by the service.
type dreamRepo interface {
	Create(ctx context.Context, d *domain.Dream) (*domain.Dream, error)
	CreateBatch(ctx context.Context, dreams []domain.Dream) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dream, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Dream, error)
	UpdateContent(ctx context.Context, id uuid.UUID, title, interpretation *string) (*domain.Dream, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListDates(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// titleGenerator produces a short title for dream text.
type titleGenerator interface {
	GenerateTitle(ctx context.Context, text, language string) (string, error)
}

// Service implements dream operations.
type Service struct {
	log       *slog.Logger
	dreams    dreamRepo
	tx        txManager
	titler    titleGenerator
	autoTitle bool
}

// NewService creates a new dream service instance. titler may be nil
// when automatic titling is disabled.
func NewService(logger *slog.Logger, dreams dreamRepo, tx txManager, titler titleGenerator, autoTitle bool) *Service {
	return &Service{
		log:       logger.With("service", "dream"),
		dreams:    dreams,
		tx:        tx,
		titler:    titler,
		autoTitle: autoTitle && titler != nil,
	}
}

// getOwned loads a dream and verifies ownership. A dream belonging to
// another user is reported as ErrNotFound so that ids cannot be probed.
func (s *Service) getOwned(ctx context.Context, userID, dreamID uuid.UUID) (*domain.Dream, error) {
	d, err := s.dreams.GetByID(ctx, dreamID)
	if err != nil {
		return nil, err
	}
	if d.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return d, nil
}
