package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/khwalser/nextownair-site/internal/api/http/handlers"
	"github.com/khwalser/nextownair-site/internal/application/service"
	"github.com/khwalser/nextownair-site/internal/config"
	"github.com/khwalser/nextownair-site/internal/domain/ports"
	amadeusclient "github.com/khwalser/nextownair-site/internal/infrastructures/amadeus/http/client"
	avstackclient "github.com/khwalser/nextownair-site/internal/infrastructures/aviationstack/http/client"
	tokenredis "github.com/khwalser/nextownair-site/internal/infrastructures/db/redis"
	"github.com/khwalser/nextownair-site/internal/infrastructures/tracing"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	tp, err := tracing.InitTracer("flight-proxy", cfg.Jaeger.Address)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info("flight-proxy starting",
		zap.String("http_addr", addr),
		zap.String("provider", cfg.Provider),
	)

	var tokens ports.TokenStore
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Warn("failed to close redis client", zap.Error(err))
			}
		}()
		tokens = tokenredis.NewTokenStore(redisClient, cfg.Amadeus.APIKey)
	}

	var source ports.OfferSource
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "aviationstack":
		source = avstackclient.NewClient(
			cfg.Aviationstack.BaseURL,
			cfg.Aviationstack.AccessKey,
			cfg.Aviationstack.Limit,
			cfg.Aviationstack.Timeout,
		)
	default:
		source = amadeusclient.NewClient(
			cfg.Amadeus.BaseURL,
			cfg.Amadeus.APIKey,
			cfg.Amadeus.APISecret,
			tokens,
			cfg.Amadeus.TokenTTL,
			cfg.Amadeus.Timeout,
		)
	}

	flightsService := service.NewFlightsService(log, source)
	flightsHandler := handlers.NewFlightsHandler(log, flightsService, cfg.Search.Origin, cfg.Search.Destination)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", healthHandler)
	mux.HandleFunc("/api/flights", flightsHandler.GetFlights)

	server := &http.Server{
		Addr:         addr,
		Handler:      loggingMiddleware(log, mux),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown error", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("http server stopped", zap.Error(err))
		}
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func loggingMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
