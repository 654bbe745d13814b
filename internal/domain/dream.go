package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dream is a single journaled dream entry. Title and Interpretation are
// attached asynchronously after creation and may stay NULL forever if
// generation fails (best-effort, no rollback of the created dream).
type Dream struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Text           string
	Title          *string
	Interpretation *string
	DreamedAt      time.Time
	CreatedAt      time.Time
}

// HasTitle returns true once a generated title has been attached.
func (d *Dream) HasTitle() bool {
	return d.Title != nil && *d.Title != ""
}

// Day truncates the dream timestamp to its calendar date in UTC.
// Streak and weekly bucketing operate on dates, not timestamps.
func (d *Dream) Day() time.Time {
	return d.DreamedAt.UTC().Truncate(24 * time.Hour)
}
