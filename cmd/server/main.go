package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quizrunner/backend/internal/api"
	"github.com/quizrunner/backend/internal/domain/questionpool"
	"github.com/quizrunner/backend/internal/domain/quizsession"
	"github.com/quizrunner/backend/internal/infrastructure/config"
	"github.com/quizrunner/backend/internal/store"

	_ "github.com/quizrunner/backend/docs" // generated swagger docs
)

// @title           Quiz Runner API
// @version         1.0
// @description     Single-session multiple-choice quiz: random or sequential runs, scoring and answer review.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.QuestionsDB)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	pool, err := loadPool(context.Background(), db, cfg, logger)
	if err != nil {
		logger.Error("failed to load question pool", "error", err)
		os.Exit(1)
	}

	sessionCfg := quizsession.Config{
		RandomSampleSize:   cfg.RandomSampleSize,
		HighScoreThreshold: cfg.HighScoreThreshold,
	}
	handler, err := api.NewHandler(pool, sessionCfg, logger)
	if err != nil {
		logger.Error("failed to create session", "error", err)
		os.Exit(1)
	}

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "pool_size", pool.Len())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// loadPool imports the seed file when one is configured, then reads the pool
// back from the database and checks it against the expected size.
func loadPool(ctx context.Context, db *store.SQLiteStore, cfg *config.Config, logger *slog.Logger) (*questionpool.Pool, error) {
	if cfg.QuestionsSeed != "" {
		seed, err := store.LoadSeedFile(cfg.QuestionsSeed)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", cfg.QuestionsSeed, err)
		}
		if err := db.ImportQuestions(ctx, seed); err != nil {
			return nil, fmt.Errorf("import seed: %w", err)
		}
		logger.Info("imported question seed", "path", cfg.QuestionsSeed, "count", len(seed))
	}

	questions, err := db.LoadQuestions(ctx)
	if err != nil {
		return nil, err
	}
	if len(questions) != cfg.PoolSize {
		return nil, fmt.Errorf("pool has %d questions, expected %d: %w", len(questions), cfg.PoolSize, questionpool.ErrInvalidArgument)
	}

	return questionpool.NewPool(questions)
}
