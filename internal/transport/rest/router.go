package rest

import "net/http"

// RouterDeps bundles the handlers wired into the public mux.
type RouterDeps struct {
	Auth     *AuthHandler
	Dream    *DreamHandler
	Insight  *InsightHandler
	Feedback *FeedbackHandler
	Admin    *AdminHandler
	Health   *HealthHandler

	// AILimit, when set, wraps the provider-backed endpoints with a
	// tighter rate limit than the rest of the API.
	AILimit func(http.Handler) http.Handler
}

// NewRouter builds the route table.
func NewRouter(d RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", d.Auth.Register)
	mux.HandleFunc("POST /auth/login", d.Auth.Login)
	mux.HandleFunc("POST /auth/logout", d.Auth.Logout)
	mux.HandleFunc("GET /auth/session", d.Auth.Session)
	mux.HandleFunc("PATCH /auth/profile", d.Auth.UpdateProfile)

	mux.HandleFunc("GET /dreams", d.Dream.List)
	mux.HandleFunc("POST /dreams", d.Dream.Create)
	mux.HandleFunc("PATCH /dreams/{id}", d.Dream.Update)
	mux.HandleFunc("DELETE /dreams/{id}", d.Dream.Delete)
	mux.HandleFunc("POST /dreams/sync", d.Dream.Sync)
	mux.HandleFunc("GET /dreams/streak", d.Dream.Streak)
	mux.HandleFunc("GET /dreams/weekly-summary", d.Dream.WeeklySummary)

	ai := func(h http.HandlerFunc) http.Handler {
		if d.AILimit == nil {
			return h
		}
		return d.AILimit(h)
	}
	mux.Handle("POST /ai/interpret", ai(d.Insight.Interpret))
	mux.Handle("POST /ai/title", ai(d.Insight.GenerateTitle))
	mux.Handle("POST /ai/chat", ai(d.Insight.Chat))

	mux.HandleFunc("POST /feedback", d.Feedback.Submit)

	mux.HandleFunc("GET /admin/stats", d.Admin.Stats)
	mux.HandleFunc("GET /admin/feedback", d.Admin.Feedback)

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	return mux
}
