package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/somnia-backend/internal/domain"
)

// UpdateProfile changes the caller's username and/or zodiac sign.
// The env admin has no row to update.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("auth.UpdateProfile: no user row: %w", domain.ErrForbidden)
	}

	if input.Username != nil {
		trimmed := strings.TrimSpace(*input.Username)
		input.Username = &trimmed
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Username != nil && s.cfg.IsAdminUsername(*input.Username) {
		return nil, fmt.Errorf("auth.UpdateProfile: username reserved: %w", domain.ErrAlreadyExists)
	}

	var zodiac *domain.ZodiacSign
	if input.ZodiacSign != nil {
		z, err := parseZodiac(*input.ZodiacSign)
		if err != nil {
			return nil, err
		}
		zodiac = &z
	}

	user, err := s.users.UpdateProfile(ctx, userID, input.Username, zodiac)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.UpdateProfile: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return user, nil
}
