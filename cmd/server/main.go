package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/quizkeeper/internal/server/handlers"
	"github.com/iudanet/quizkeeper/internal/server/middleware"
	"github.com/iudanet/quizkeeper/internal/server/storage/blobfs"
	"github.com/iudanet/quizkeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 30 * 24 * time.Hour

	// Лимит на auth-эндпоинты, защита от перебора паролей
	authRateLimit  = 10
	authRateWindow = time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", envOr("QUIZKEEPER_ADDR", ":8080"), "Listen address")
	dbPath := flag.String("db", envOr("QUIZKEEPER_DB", "quizkeeper.db"), "Path to SQLite database")
	blobDir := flag.String("blobs", envOr("QUIZKEEPER_BLOB_DIR", "blobs"), "Directory for blob storage")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(logger, *addr, *dbPath, *blobDir); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath, blobDir string) error {
	// Секрет обязателен: токены не должны подписываться значением
	// по умолчанию
	jwtSecret := os.Getenv("QUIZKEEPER_JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("QUIZKEEPER_JWT_SECRET environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	blobs, err := blobfs.New(blobDir)
	if err != nil {
		return fmt.Errorf("failed to init blob storage: %w", err)
	}

	jwtConfig := handlers.JWTConfig{
		Secret:          []byte(jwtSecret),
		AccessTokenTTL:  defaultAccessTokenTTL,
		RefreshTokenTTL: defaultRefreshTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	recordsHandler := handlers.NewRecordsHandler(logger, store)
	blobsHandler := handlers.NewBlobsHandler(logger, blobs)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	rateLimit := middleware.RateLimitMiddleware(authRateLimit, authRateWindow, logger)
	authRequired := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler.Health)

	mux.Handle("POST /api/v1/auth/register", rateLimit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/v1/auth/login", rateLimit(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/v1/auth/refresh", rateLimit(http.HandlerFunc(authHandler.Refresh)))
	mux.Handle("POST /api/v1/auth/logout", http.HandlerFunc(authHandler.Logout))

	mux.Handle("/api/v1/documents", authRequired(http.HandlerFunc(recordsHandler.HandleDocuments)))
	mux.Handle("/api/v1/quizzes", authRequired(http.HandlerFunc(recordsHandler.HandleQuizzes)))
	mux.Handle("/api/v1/results", authRequired(http.HandlerFunc(recordsHandler.HandleResults)))
	mux.Handle("/api/v1/blobs/{path...}", authRequired(http.HandlerFunc(blobsHandler.HandleBlob)))

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingMiddleware(logger, "/healthz")(mux))

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"addr", addr,
			"version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped")

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("QuizKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
