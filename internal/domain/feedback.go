package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is an append-only user-submitted message. UserID and Username
// are optional: anonymous feedback is allowed, and the username is kept
// as a snapshot even if the user later renames.
type Feedback struct {
	ID        uuid.UUID
	Message   string
	Email     *string
	UserID    *uuid.UUID
	Username  *string
	CreatedAt time.Time
}
