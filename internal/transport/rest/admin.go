package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/somnia-backend/internal/domain"
	"github.com/heartmarshall/somnia-backend/internal/service/admin"
	"github.com/heartmarshall/somnia-backend/pkg/ctxutil"
)

// adminService defines the minimal interface needed by AdminHandler.
type adminService interface {
	Stats(ctx context.Context) (*admin.Stats, error)
}

// feedbackLister lists feedback entries for the admin panel.
type feedbackLister interface {
	List(ctx context.Context, limit, offset int) ([]domain.Feedback, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	svc      adminService
	feedback feedbackLister
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, feedback feedbackLister, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, feedback: feedback, log: logger.With("handler", "admin")}
}

type adminStatsResponse struct {
	UserCount     int              `json:"userCount"`
	DreamCount    int              `json:"dreamCount"`
	FeedbackCount int              `json:"feedbackCount"`
	Users         []adminUserEntry `json:"users"`
	Dreams        []dreamResponse  `json:"dreams"`
}

type adminUserEntry struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	ZodiacSign *string `json:"zodiacSign,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

type feedbackEntry struct {
	ID        string  `json:"id"`
	Message   string  `json:"message"`
	Email     *string `json:"email,omitempty"`
	Username  *string `json:"username,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAdminStatsResponse(stats))
}

// Feedback handles GET /admin/feedback?limit=50&offset=0.
func (h *AdminHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	entries, err := h.feedback.List(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]feedbackEntry, 0, len(entries))
	for _, f := range entries {
		out = append(out, toFeedbackEntry(f))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func toAdminStatsResponse(stats *admin.Stats) adminStatsResponse {
	users := make([]adminUserEntry, 0, len(stats.Users))
	for _, u := range stats.Users {
		users = append(users, toAdminUserEntry(u))
	}
	return adminStatsResponse{
		UserCount:     stats.UserCount,
		DreamCount:    stats.DreamCount,
		FeedbackCount: stats.FeedbackCount,
		Users:         users,
		Dreams:        toDreamResponses(stats.Dreams),
	}
}

func toAdminUserEntry(u domain.User) adminUserEntry {
	entry := adminUserEntry{
		ID:        u.ID.String(),
		Username:  u.Username,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.ZodiacSign != nil {
		s := u.ZodiacSign.String()
		entry.ZodiacSign = &s
	}
	return entry
}

func toFeedbackEntry(f domain.Feedback) feedbackEntry {
	return feedbackEntry{
		ID:        f.ID.String(),
		Message:   f.Message,
		Email:     f.Email,
		Username:  f.Username,
		CreatedAt: f.CreatedAt.UTC().Format(time.RFC3339),
	}
}
