package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/somnia-backend/internal/config"
	"github.com/heartmarshall/somnia-backend/internal/domain"
	"github.com/heartmarshall/somnia-backend/internal/service/auth"
	"github.com/heartmarshall/somnia-backend/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Session(ctx context.Context, claims domain.SessionClaims) (*auth.Principal, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input auth.UpdateProfileInput) (*domain.User, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	cfg config.AuthConfig
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cfg config.AuthConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	ZodiacSign *string `json:"zodiacSign,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Username   *string `json:"username,omitempty"`
	ZodiacSign *string `json:"zodiacSign,omitempty"`
}

type userResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	ZodiacSign *string `json:"zodiacSign,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

type sessionResponse struct {
	User    *userResponse `json:"user"`
	IsAdmin bool          `json:"isAdmin"`
}

// Register handles POST /auth/register. On success the session cookie
// is set alongside the created user.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		ZodiacSign: req.ZodiacSign,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	writeJSON(w, http.StatusCreated, sessionResponse{User: toUserResponse(result.User), IsAdmin: false})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	// result.User is nil for the env admin.
	writeJSON(w, http.StatusOK, sessionResponse{
		User:    toUserResponse(result.User),
		IsAdmin: result.User == nil,
	})
}

// Logout handles POST /auth/logout. Sessions are stateless: logging out
// only clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Session handles GET /auth/session: the current principal, or null
// when the request carries no valid session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	username := ctxutil.UsernameFromCtx(r.Context())
	if username == "" {
		writeJSON(w, http.StatusOK, sessionResponse{User: nil})
		return
	}

	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	principal, err := h.svc.Session(r.Context(), domain.SessionClaims{UserID: userID, Username: username})
	if err != nil {
		// A stale token (user row gone) reads as no session.
		h.clearSessionCookie(w)
		writeJSON(w, http.StatusOK, sessionResponse{User: nil})
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		User:    toUserResponse(principal.User),
		IsAdmin: principal.IsAdmin,
	})
}

// UpdateProfile handles PATCH /auth/profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.UpdateProfile(r.Context(), userID, auth.UpdateProfileInput{
		Username:   req.Username,
		ZodiacSign: req.ZodiacSign,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	resp := &userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.ZodiacSign != nil {
		s := u.ZodiacSign.String()
		resp.ZodiacSign = &s
	}
	return resp
}
