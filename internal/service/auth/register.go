package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/somnia-backend/internal/domain"
)

// Register creates a new user and issues a session token.
// Returns ErrAlreadyExists if the username is already taken, compared
// case-insensitively.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The env-admin principal must stay env-only: a registered user with
	// the admin's name would inherit its privileges through the
	// username-based capability check.
	if s.cfg.IsAdminUsername(input.Username) {
		return nil, fmt.Errorf("auth.Register: username reserved: %w", domain.ErrAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	var zodiac *domain.ZodiacSign
	if input.ZodiacSign != nil {
		z, err := parseZodiac(*input.ZodiacSign)
		if err != nil {
			return nil, err
		}
		zodiac = &z
	}

	// Username uniqueness is enforced by a lower(username) unique index.
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: string(hash),
		ZodiacSign:   zodiac,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := s.jwt.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{Token: token, User: user}, nil
}
