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

	hhttp "clausescan/internal/handler/http"
	hanalyze "clausescan/internal/handler/http/analyze"
	"clausescan/internal/handler/http/requestid"
	"clausescan/internal/infra/extractor"
	"clausescan/internal/infra/fetcher"
	"clausescan/internal/infra/summarizer"
	"clausescan/internal/observability/logging"
	"clausescan/internal/observability/tracing"
	"clausescan/internal/usecase/analyze"
	"clausescan/internal/usecase/extract"
	"clausescan/internal/utils/text"
	"clausescan/pkg/config"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	version := getVersion()
	handler, status := setupServer(logger, version)

	runServer(logger, handler, status, version)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return config.GetEnvString("VERSION", "dev")
}

// setupServer loads configuration, wires the pipeline, and returns the
// fully middleware-wrapped root handler plus the summarizer status used
// by the health endpoint.
func setupServer(logger *slog.Logger, version string) (http.Handler, hhttp.SummarizerStatus) {
	sumCfg, err := summarizer.LoadConfig()
	if err != nil {
		logger.Error("failed to load summarizer configuration", slog.Any("error", err))
		os.Exit(1)
	}
	fetchCfg, err := fetcher.LoadConfig()
	if err != nil {
		logger.Error("failed to load fetcher configuration", slog.Any("error", err))
		os.Exit(1)
	}
	pipelineCfg, err := analyze.LoadConfig()
	if err != nil {
		logger.Error("failed to load analysis configuration", slog.Any("error", err))
		os.Exit(1)
	}
	rules, err := analyze.LoadRules()
	if err != nil {
		logger.Error("failed to load rules", slog.Any("error", err))
		os.Exit(1)
	}

	provider := summarizer.NewLazy(sumCfg, logger)
	chunkSummarizer := analyze.NewChunkSummarizer(provider, logger)
	analyzer := analyze.NewService(text.RegexSplitter{}, chunkSummarizer, rules, pipelineCfg, logger)

	pageFetcher := fetcher.NewPageFetcher(fetchCfg, logger)
	extractSvc := extract.NewService(pageFetcher, extractor.NewPlainText(), logger)

	mux := setupRoutes(extractSvc, analyzer, provider, version, logger)
	return applyMiddleware(logger, mux), provider
}

// setupRoutes registers all HTTP routes.
func setupRoutes(
	extractSvc *extract.Service,
	analyzer *analyze.Service,
	status hhttp.SummarizerStatus,
	version string,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()

	hanalyze.Register(mux, extractSvc, analyzer, logger)

	mux.Handle("/health", &hhttp.HealthHandler{Version: version, Summarizer: status})
	mux.Handle("/ready", &hhttp.ReadyHandler{})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: CORS → Request ID → Tracing → IP Rate Limit → Recovery →
// Logging → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig := hhttp.LoadCORSConfig()
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Int("max_age", corsConfig.MaxAge))

	rateLimiter := hhttp.NewIPRateLimiter(
		float64(config.GetEnvInt("RATE_LIMIT_RPS", 5)),
		config.GetEnvInt("RATE_LIMIT_BURST", 10),
	)

	// Documents arrive as uploads; the limit must cover the largest
	// accepted file plus multipart framing.
	bodyLimit := int64(config.GetEnvInt("MAX_REQUEST_BODY_BYTES", 12<<20))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(bodyLimit)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = rateLimiter.Middleware(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.CORS(corsConfig)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, status hhttp.SummarizerStatus, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + config.GetEnvString("PORT", "8000")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris protection
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version),
			slog.String("summarizer_provider", status.Provider()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
