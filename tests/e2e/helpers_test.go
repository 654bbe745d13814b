//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/somnia-backend/internal/adapter/postgres"
	dreamrepo "github.com/heartmarshall/somnia-backend/internal/adapter/postgres/dream"
	feedbackrepo "github.com/heartmarshall/somnia-backend/internal/adapter/postgres/feedback"
	"github.com/heartmarshall/somnia-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/somnia-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/somnia-backend/internal/adapter/provider/llmapi"
	authpkg "github.com/heartmarshall/somnia-backend/internal/auth"
	"github.com/heartmarshall/somnia-backend/internal/config"
	adminsvc "github.com/heartmarshall/somnia-backend/internal/service/admin"
	authsvc "github.com/heartmarshall/somnia-backend/internal/service/auth"
	dreamsvc "github.com/heartmarshall/somnia-backend/internal/service/dream"
	feedbacksvc "github.com/heartmarshall/somnia-backend/internal/service/feedback"
	insightsvc "github.com/heartmarshall/somnia-backend/internal/service/insight"
	"github.com/heartmarshall/somnia-backend/internal/transport/middleware"
	"github.com/heartmarshall/somnia-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	adminUsername = "admin"
	adminPassword = "e2e-admin-password"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// fakeLLMServer serves an OpenAI-compatible chat-completions endpoint
// that always answers with the given text.
func fakeLLMServer(t *testing.T, answer string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":%q}}]}`, answer)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a fake LLM provider.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-test-secret",
		JWTIssuer:        "somnia-e2e",
		SessionTTL:       time.Hour,
		CookieName:       "somnia_session",
		CookieSecure:     false,
		AdminUsername:    adminUsername,
		AdminPassword:    adminPassword,
		PasswordHashCost: 4,
	}
	llmCfg := config.LLMConfig{
		BaseURL:        fakeLLMServer(t, "A dream about growth. 🌱").URL,
		Model:          "test-model",
		RequestTimeout: 5 * time.Second,
		APIKeys:        []string{"e2e-key"},
		AutoTitle:      false,
	}

	users := userrepo.New(pool)
	dreams := dreamrepo.New(pool)
	feedback := feedbackrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.SessionTTL)
	llmClient := llmapi.NewClient(llmCfg, logger)

	insightService := insightsvc.NewService(logger, llmClient)
	authService := authsvc.NewService(logger, users, jwtManager, authCfg)
	dreamService := dreamsvc.NewService(logger, dreams, txManager, insightService, llmCfg.AutoTitle)
	feedbackService := feedbacksvc.NewService(logger, feedback)
	adminService := adminsvc.NewService(logger, users, dreams, feedback)

	mux := rest.NewRouter(rest.RouterDeps{
		Auth:     rest.NewAuthHandler(authService, authCfg, logger),
		Dream:    rest.NewDreamHandler(dreamService, insightService, logger),
		Insight:  rest.NewInsightHandler(insightService, logger),
		Feedback: rest.NewFeedbackHandler(feedbackService, logger),
		Admin:    rest.NewAdminHandler(adminService, feedbackService, logger),
		Health:   rest.NewHealthHandler(pool, "e2e"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(jwtManager, authCfg),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON issues a JSON request. An empty token leaves the request
// anonymous; otherwise it is sent as a bearer token.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints that respond with a JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string, payload any) (int, []map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

// registerUser creates a fresh user through the API and returns the
// session token from the cookie.
func registerUser(t *testing.T, ts *testServer, username, password string) string {
	t.Helper()

	raw, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+"/auth/register", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == "somnia_session" {
			return c.Value
		}
	}
	t.Fatal("no session cookie on register response")
	return ""
}

// loginAdmin logs in as the configured env admin and returns the token.
func loginAdmin(t *testing.T, ts *testServer) string {
	t.Helper()

	raw, err := json.Marshal(map[string]string{"username": adminUsername, "password": adminPassword})
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+"/auth/login", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == "somnia_session" {
			return c.Value
		}
	}
	t.Fatal("no session cookie on admin login response")
	return ""
}
