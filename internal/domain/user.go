package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered journal owner.
// PasswordHash is a bcrypt hash; it never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	ZodiacSign   *ZodiacSign
	CreatedAt    time.Time
}

// SessionClaims is the principal embedded in a signed session token.
// The token is stateless: it is invalidated only by expiry or cookie
// clearing, never server-side.
type SessionClaims struct {
	UserID   uuid.UUID
	Username string
}
