package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"textdigest/internal/config"
	"textdigest/internal/infra/fetcher"
	"textdigest/internal/infra/summarizer"
	"textdigest/internal/observability/logging"
	"textdigest/internal/observability/tracing"
	"textdigest/internal/usecase/fetch"
	"textdigest/internal/usecase/summarize"

	hhttp "textdigest/internal/handler/http"
	"textdigest/internal/handler/http/requestid"
	hsummary "textdigest/internal/handler/http/summary"
)

func main() {
	serverCfg, err := config.LoadServerConfig()
	if err != nil {
		slog.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(serverCfg)
	tp := tracing.InitProvider(tracing.ProviderConfig{
		ServiceName:    "textdigest",
		ServiceVersion: serverCfg.Version,
		SampleRatio:    serverCfg.TraceSampleRatio,
	})

	components := setupServer(logger, serverCfg)
	serveErr := runServer(logger, serverCfg, components)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer cancel()
	if err := tp.Shutdown(shutdownCtx); err != nil {
		logger.Error("tracer provider shutdown failed", slog.Any("error", err))
	}
	if serveErr != nil {
		os.Exit(1)
	}
}

// initLogger builds the process logger from LOG_LEVEL/LOG_FORMAT and makes
// it the slog default.
func initLogger(cfg *config.ServerConfig) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler     http.Handler
	RateLimiter *hhttp.RateLimiter
}

// setupServer builds the summarization service and the HTTP handler with all
// routes and middleware.
func setupServer(logger *slog.Logger, serverCfg *config.ServerConfig) *ServerComponents {
	sumCfg, err := config.LoadSummarizerConfig()
	if err != nil {
		logger.Error("failed to load summarizer configuration", slog.Any("error", err))
		os.Exit(1)
	}

	textRank, err := summarizer.NewTextRankWithMetrics(sumCfg.Ranking, summarizer.NewPrometheusSummaryMetrics())
	if err != nil {
		logger.Error("failed to create summarizer", slog.Any("error", err))
		os.Exit(1)
	}

	fetchCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load source fetch configuration", slog.Any("error", err))
		os.Exit(1)
	}

	var (
		contentFetcher fetch.ContentFetcher
		circuit        hhttp.CircuitReporter
	)
	if fetchCfg.Enabled {
		f := fetcher.NewReadabilityFetcher(fetchCfg)
		contentFetcher, circuit = f, f
		logger.Info("url summarization enabled",
			slog.Duration("timeout", fetchCfg.Timeout),
			slog.Int64("max_body_size", fetchCfg.MaxBodySize),
			slog.Bool("deny_private_ips", fetchCfg.DenyPrivateIPs))
	} else {
		logger.Warn("url summarization disabled")
	}

	svc := summarize.NewService(textRank, contentFetcher, sumCfg.Service)
	logger.Info("summarizer configured",
		slog.Float64("default_compression_ratio", sumCfg.Service.DefaultCompressionRatio),
		slog.String("default_layout", sumCfg.Service.DefaultLayout.String()),
		slog.Bool("stemming", sumCfg.Ranking.Stemming),
		slog.Int("batch_parallelism", sumCfg.Service.BatchParallelism))

	var rateLimiter *hhttp.RateLimiter
	if serverCfg.RateLimitEnabled {
		rateLimiter = hhttp.NewRateLimiter(serverCfg.RateLimitRPS, serverCfg.RateLimitBurst, serverCfg.RateLimitTrustProxy)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", serverCfg.RateLimitRPS),
			slog.Int("burst", serverCfg.RateLimitBurst),
			slog.Bool("trust_proxy", serverCfg.RateLimitTrustProxy))
	} else {
		logger.Warn("rate limiting disabled")
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health", hhttp.HealthHandler{
		Summarizer:  textRank,
		Fetcher:     circuit,
		RateLimiter: rateLimiter,
		Version:     serverCfg.Version,
	})
	mux.Handle("GET /ready", hhttp.ReadyHandler{Summarizer: textRank})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	hsummary.Register(mux, svc)

	return &ServerComponents{
		Handler:     applyMiddleware(logger, mux, rateLimiter, serverCfg.MaxBodyBytes),
		RateLimiter: rateLimiter,
	}
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Tracing → Logging → Recovery → Rate Limit → Body Limit → Input Validation → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler, rateLimiter *hhttp.RateLimiter, maxBodyBytes int64) http.Handler {
	// Apply in reverse order (innermost to outermost)
	chain := hhttp.MetricsMiddleware(handler)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.LimitRequestBody(maxBodyBytes)(chain)
	if rateLimiter != nil {
		chain = rateLimiter.Limit(chain)
	}
	chain = hhttp.Recover(logger)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and blocks until SIGINT/SIGTERM, then
// shuts it down gracefully. It returns the listener error if the server
// could not run.
func runServer(logger *slog.Logger, cfg *config.ServerConfig, components *ServerComponents) error {
	// Context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.RateLimiter != nil {
		cleanupCfg := hhttp.LoadCleanupConfigFromEnv()
		go hhttp.StartRateLimitCleanup(ctx, components.RateLimiter, cleanupCfg)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	var runErr error
	select {
	case sig := <-quit:
		logger.Info("shutting down server...", slog.String("signal", sig.String()))
	case runErr = <-serverErr:
		logger.Error("server failed", slog.Any("error", runErr))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	// Stop background goroutines only after in-flight requests have drained.
	cancel()
	logger.Info("server stopped")
	return runErr
}
