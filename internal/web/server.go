// Package web serves the leaderboard over HTTP.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

// ScoreReader is the read side of the score store.
type ScoreReader interface {
	TopScores(d config.Difficulty, limit int) ([]storage.ScoreEntry, error)
	HighScore(d config.Difficulty) (int, error)
}

// Server is the leaderboard HTTP server.
type Server struct {
	srv    *http.Server
	logger *log.Logger
}

// New builds a server for addr. checks are reported by /healthz.
func New(addr string, logger *log.Logger, scores ScoreReader, checks map[string]Checker) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(logger, scores, checks),
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// NewRouter returns the routes with the shared middleware stack.
func NewRouter(logger *log.Logger, scores ScoreReader, checks map[string]Checker) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth(logger, checks))
	r.Route("/api/scores/{difficulty}", func(r chi.Router) {
		r.Get("/", handleTopScores(logger, scores))
		r.Get("/best", handleBestScore(logger, scores))
	})

	return r
}

// Run listens and serves until Shutdown. A clean shutdown returns nil.
func (s *Server) Run(_ context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.logger.Info("starting http server", "addr", ln.Addr().String())
	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting up to ten seconds for requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down http server")
	return s.srv.Shutdown(ctx)
}

func requestLogger(logger *log.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
