package dream

import (
	"strings"
	"time"

	"github.com/heartmarshall/somnia-backend/internal/domain"
)

const textMaxLen = 20000

// CreateInput holds parameters for the create operation.
type CreateInput struct {
	Text      string
	DreamedAt time.Time // zero value means "now"
	Language  string    // hint for title generation, defaults to "en"
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	return validateText(i.Text)
}

// UpdateInput holds parameters for the patch operation. Nil fields are
// left untouched; updates are last-write-wins.
type UpdateInput struct {
	Title          *string
	Interpretation *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	if i.Title == nil && i.Interpretation == nil {
		return domain.NewValidationError("body", "no fields to update")
	}
	return nil
}

// SyncItem is one client-side entry pushed by the bulk sync endpoint.
type SyncItem struct {
	Text           string
	Title          *string
	Interpretation *string
	DreamedAt      time.Time
}

// Validate validates one sync item.
func (i SyncItem) Validate() error {
	return validateText(i.Text)
}

func validateText(text string) error {
	switch {
	case strings.TrimSpace(text) == "":
		return domain.NewValidationError("text", "required")
	case len(text) > textMaxLen:
		return domain.NewValidationError("text", "too long")
	}
	return nil
}
