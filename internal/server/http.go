package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Pinger reports whether a dependency is reachable (implemented by *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers groups the API handlers mounted under /api.
type Handlers struct {
	Questions *question.HTTPHandler
	Quiz      *quiz.HTTPHandler
}

// NewHTTPServer wires the API, health and metrics routes.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, db Pinger, handlers Handlers) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewHandler(cfg, logger, db, handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewHandler builds the routed, middleware-wrapped handler tree.
func NewHandler(cfg *config.App, logger zerolog.Logger, db Pinger, handlers Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondServiceUnavailable(w)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	if h := handlers.Questions; h != nil {
		mux.HandleFunc("/api/categories", h.HandleCategories)
		mux.HandleFunc("/api/categories/{id}/questions", h.HandleCategoryQuestions)
		mux.HandleFunc("/api/questions", h.HandleQuestions)
		mux.HandleFunc("/api/questions/{id}", h.HandleQuestion)
		mux.HandleFunc("/api/search-questions", h.HandleSearch)
	}
	if handlers.Quiz != nil {
		mux.HandleFunc("/api/quizzes", handlers.Quiz.HandleNext)
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})

	var handler http.Handler = mux
	handler = instrument(handler)
	handler = cors(cfg.CORS, handler)
	handler = recoverer(handler)
	handler = requestLogger(logger, handler)
	return handler
}
