// Package admin implements the aggregate statistics panel.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/somnia-backend/internal/domain"
	"github.com/heartmarshall/somnia-backend/pkg/ctxutil"
)

// Listing sizes are bounded: the panel shows the most recent slice, not
// an unbounded dump.
const listingLimit = 1000

// userRepo defines the user repository interface needed by the service.
type userRepo interface {
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
}

// dreamRepo defines the dream repository interface needed by the service.
type dreamRepo interface {
	ListAll(ctx context.Context, limit, offset int) ([]domain.Dream, error)
	Count(ctx context.Context) (int, error)
}

// feedbackRepo defines the feedback repository interface needed by the service.
type feedbackRepo interface {
	Count(ctx context.Context) (int, error)
}

// Service implements admin operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	dreams   dreamRepo
	feedback feedbackRepo
}

// NewService creates a new admin service instance.
func NewService(logger *slog.Logger, users userRepo, dreams dreamRepo, feedback feedbackRepo) *Service {
	return &Service{
		log:      logger.With("service", "admin"),
		users:    users,
		dreams:   dreams,
		feedback: feedback,
	}
}

// Stats is the admin panel payload: aggregate counts plus full listings.
type Stats struct {
	UserCount     int
	DreamCount    int
	FeedbackCount int
	Users         []domain.User
	Dreams        []domain.Dream
}

// Stats returns aggregate counts and user/dream listings. The caller
// must hold the admin capability; anyone else gets ErrForbidden.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin.Stats: %w", domain.ErrForbidden)
	}

	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats count users: %w", err)
	}
	dreamCount, err := s.dreams.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats count dreams: %w", err)
	}
	feedbackCount, err := s.feedback.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats count feedback: %w", err)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats list users: %w", err)
	}
	dreams, err := s.dreams.ListAll(ctx, listingLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats list dreams: %w", err)
	}

	s.log.InfoContext(ctx, "admin stats served",
		slog.Int("users", userCount),
		slog.Int("dreams", dreamCount))

	return &Stats{
		UserCount:     userCount,
		DreamCount:    dreamCount,
		FeedbackCount: feedbackCount,
		Users:         users,
		Dreams:        dreams,
	}, nil
}
