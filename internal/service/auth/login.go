package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/somnia-backend/internal/domain"
)

// Login validates credentials against the user store, or against the
// env-configured admin pair, and issues a session token. The env admin
// has no user row: its token carries a nil user id.
// Bad credentials return ErrUnauthorized without distinguishing an
// unknown username from a wrong password.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if s.cfg.HasAdminOverride() && s.cfg.IsAdminUsername(input.Username) {
		if subtle.ConstantTimeCompare([]byte(input.Password), []byte(s.cfg.AdminPassword)) != 1 {
			return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
		}

		token, err := s.jwt.GenerateSessionToken(uuid.Nil, s.cfg.AdminUsername)
		if err != nil {
			return nil, fmt.Errorf("auth.Login issue admin token: %w", err)
		}

		s.log.InfoContext(ctx, "admin logged in via env override")

		return &AuthResult{Token: token}, nil
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
	}

	token, err := s.jwt.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{Token: token, User: user}, nil
}
