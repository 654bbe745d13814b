package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/somnia-backend/internal/domain"
	"github.com/heartmarshall/somnia-backend/internal/service/dream"
	"github.com/heartmarshall/somnia-backend/pkg/ctxutil"
)

// dreamService defines the minimal interface needed by DreamHandler.
type dreamService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Dream, error)
	Create(ctx context.Context, userID uuid.UUID, input dream.CreateInput) (*domain.Dream, error)
	Update(ctx context.Context, userID, dreamID uuid.UUID, input dream.UpdateInput) (*domain.Dream, error)
	Delete(ctx context.Context, userID, dreamID uuid.UUID) error
	Sync(ctx context.Context, userID uuid.UUID, items []dream.SyncItem) ([]domain.Dream, error)
	Streak(ctx context.Context, userID uuid.UUID) (int, error)
}

// weeklySummarizer produces the weekly narrative over a dream set.
type weeklySummarizer interface {
	WeeklySummary(ctx context.Context, dreams []domain.Dream, language string) (string, error)
}

// DreamHandler serves dream REST endpoints.
type DreamHandler struct {
	svc     dreamService
	insight weeklySummarizer
	log     *slog.Logger
}

// NewDreamHandler creates a DreamHandler.
func NewDreamHandler(svc dreamService, insight weeklySummarizer, logger *slog.Logger) *DreamHandler {
	return &DreamHandler{svc: svc, insight: insight, log: logger.With("handler", "dream")}
}

type createDreamRequest struct {
	Text      string     `json:"text"`
	DreamedAt *time.Time `json:"dreamedAt,omitempty"`
	Language  string     `json:"language,omitempty"`
}

type updateDreamRequest struct {
	Title          *string `json:"title,omitempty"`
	Interpretation *string `json:"interpretation,omitempty"`
}

type syncDreamItem struct {
	Text           string     `json:"text"`
	Title          *string    `json:"title,omitempty"`
	Interpretation *string    `json:"interpretation,omitempty"`
	DreamedAt      *time.Time `json:"dreamedAt,omitempty"`
}

type syncRequest struct {
	Dreams []syncDreamItem `json:"dreams"`
}

type dreamResponse struct {
	ID             string  `json:"id"`
	Text           string  `json:"text"`
	Title          *string `json:"title,omitempty"`
	Interpretation *string `json:"interpretation,omitempty"`
	DreamedAt      string  `json:"dreamedAt"`
	CreatedAt      string  `json:"createdAt"`
}

// List handles GET /dreams.
func (h *DreamHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}

	dreams, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDreamResponses(dreams))
}

// Create handles POST /dreams.
func (h *DreamHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req createDreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := dream.CreateInput{Text: req.Text, Language: req.Language}
	if req.DreamedAt != nil {
		input.DreamedAt = *req.DreamedAt
	}

	d, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDreamResponse(d))
}

// Update handles PATCH /dreams/{id}.
func (h *DreamHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}
	dreamID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateDreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.Update(r.Context(), userID, dreamID, dream.UpdateInput{
		Title:          req.Title,
		Interpretation: req.Interpretation,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDreamResponse(d))
}

// Delete handles DELETE /dreams/{id}.
func (h *DreamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}
	dreamID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, dreamID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Sync handles POST /dreams/sync: bulk insert of client-side entries.
func (h *DreamHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]dream.SyncItem, 0, len(req.Dreams))
	for _, it := range req.Dreams {
		item := dream.SyncItem{
			Text:           it.Text,
			Title:          it.Title,
			Interpretation: it.Interpretation,
		}
		if it.DreamedAt != nil {
			item.DreamedAt = *it.DreamedAt
		}
		items = append(items, item)
	}

	dreams, err := h.svc.Sync(r.Context(), userID, items)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDreamResponses(dreams))
}

// Streak handles GET /dreams/streak.
func (h *DreamHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}

	streak, err := h.svc.Streak(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"streak": streak})
}

// WeeklySummary handles GET /dreams/weekly-summary?language=en.
func (h *DreamHandler) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}

	dreams, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	summary, err := h.insight.WeeklySummary(r.Context(), dreams, r.URL.Query().Get("language"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

// requireSession extracts the session user id or responds 401.
func requireSession(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a uuid path segment or responds 404. A malformed id
// is indistinguishable from an unknown one.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

func toDreamResponse(d *domain.Dream) dreamResponse {
	return dreamResponse{
		ID:             d.ID.String(),
		Text:           d.Text,
		Title:          d.Title,
		Interpretation: d.Interpretation,
		DreamedAt:      d.DreamedAt.UTC().Format(time.RFC3339),
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toDreamResponses(dreams []domain.Dream) []dreamResponse {
	out := make([]dreamResponse, 0, len(dreams))
	for i := range dreams {
		out = append(out, toDreamResponse(&dreams[i]))
	}
	return out
}
