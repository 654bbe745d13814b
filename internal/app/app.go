package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/heartmarshall/somnia-backend/internal/adapter/postgres"
	dreamrepo "github.com/heartmarshall/somnia-backend/internal/adapter/postgres/dream"
	feedbackrepo "github.com/heartmarshall/somnia-backend/internal/adapter/postgres/feedback"
	userrepo "github.com/heartmarshall/somnia-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/somnia-backend/internal/adapter/provider/llmapi"
	"github.com/heartmarshall/somnia-backend/internal/auth"
	"github.com/heartmarshall/somnia-backend/internal/config"
	adminsvc "github.com/heartmarshall/somnia-backend/internal/service/admin"
	authsvc "github.com/heartmarshall/somnia-backend/internal/service/auth"
	dreamsvc "github.com/heartmarshall/somnia-backend/internal/service/dream"
	feedbacksvc "github.com/heartmarshall/somnia-backend/internal/service/feedback"
	insightsvc "github.com/heartmarshall/somnia-backend/internal/service/insight"
	"github.com/heartmarshall/somnia-backend/internal/transport/middleware"
	"github.com/heartmarshall/somnia-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// storage, provider, service, and transport layers together, and serves
// HTTP until the context is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	dreams := dreamrepo.New(pool)
	feedback := feedbackrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	llmClient := llmapi.NewClient(cfg.LLM, logger)

	insightService := insightsvc.NewService(logger, llmClient)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	dreamService := dreamsvc.NewService(logger, dreams, txManager, insightService, cfg.LLM.AutoTitle)
	feedbackService := feedbacksvc.NewService(logger, feedback)
	adminService := adminsvc.NewService(logger, users, dreams, feedback)

	// Separate limiter instances so the tight AI budget is enforced
	// independently of the API-wide one.
	var apiLimiter, aiLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		apiLimiter = middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.CleanupInterval)
		defer apiLimiter.Stop()
		aiLimiter = middleware.NewRateLimiter(cfg.RateLimit.AIPerMinute, cfg.RateLimit.CleanupInterval)
		defer aiLimiter.Stop()
	}

	deps := rest.RouterDeps{
		Auth:     rest.NewAuthHandler(authService, cfg.Auth, logger),
		Dream:    rest.NewDreamHandler(dreamService, insightService, logger),
		Insight:  rest.NewInsightHandler(insightService, logger),
		Feedback: rest.NewFeedbackHandler(feedbackService, logger),
		Admin:    rest.NewAdminHandler(adminService, feedbackService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	}
	if aiLimiter != nil {
		deps.AILimit = aiLimiter.Limit()
	}

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if apiLimiter != nil {
		mws = append(mws, apiLimiter.Limit())
	}
	mws = append(mws, middleware.Auth(jwtManager, cfg.Auth))

	handler := middleware.Chain(mws...)(rest.NewRouter(deps))

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
