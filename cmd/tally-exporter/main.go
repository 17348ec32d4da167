// tally-exporter serves live tally counters over a Prometheus /metrics
// endpoint. It drives a built-in synthetic observation workload so the
// exported ratios move; it exists to smoke-test the promexport bridge and
// as a wiring reference, not as a data plane.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/tally/internal/config"
	logpkg "github.com/kailas-cloud/tally/internal/logger"
	"github.com/kailas-cloud/tally/internal/version"
	"github.com/kailas-cloud/tally/pkg/promexport"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting tally exporter",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("metrics_namespace", cfg.Metrics.Namespace),
	)

	w := newWorkload(cfg.Workload.Seed, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(promexport.NewCollector(cfg.Metrics.Namespace,
		promexport.Source{Name: "even", Ratio: w.evenRatio},
		promexport.Source{Name: "small_prime", Ratio: w.primeRatio},
	))
	registry.MustRegister(promexport.NewCounterCollector(
		cfg.Metrics.Namespace, "magnitude", w.counter.Counter(),
	).WithLock(&w.mu))

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(requestLogMiddleware(logger))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(rw http.ResponseWriter, req *http.Request) {
		logpkg.FromContext(req.Context()).Debug("Health check served")
		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write([]byte("ok"))
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Workload loop
	workloadCtx, stopWorkload := context.WithCancel(context.Background())
	defer stopWorkload()
	go w.run(workloadCtx, time.Duration(cfg.Workload.TickMillis)*time.Millisecond)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")
	stopWorkload()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}
	logger.Info("Exporter stopped")
}
