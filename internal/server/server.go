package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/logger"
	suno_service "github.com/oshokin/suno-cli/internal/service/suno"
)

// Server is the HTTP server of the REST API.
type Server struct {
	// router dispatches requests to handlers.
	router chi.Router
	// server is the underlying HTTP server.
	server *http.Server
	// handlers serve the API routes.
	handlers *Handlers
}

const (
	// readTimeout bounds reading a request.
	readTimeout = 15 * time.Second
	// writeTimeoutMargin is added to the generation timeout, POST /v1/songs blocks until songs are ready.
	writeTimeoutMargin = 15 * time.Second
	// idleTimeout bounds keep-alive connections.
	idleTimeout = 60 * time.Second
	// shutdownTimeout bounds the graceful shutdown.
	shutdownTimeout = 10 * time.Second
)

// NewServer creates the REST server for the given service.
func NewServer(cfg *config.Config, service suno_service.Service) (*Server, error) {
	cache, err := NewSongCache(cfg.SongCacheSize, cfg.ParsedSongCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create song cache: %w", err)
	}

	router := chi.NewRouter()

	s := &Server{
		router:   router,
		handlers: NewHandlers(service, cache),
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: cfg.ParsedGenerationTimeout + writeTimeoutMargin,
		IdleTimeout:  idleTimeout,
	}

	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/songs", s.handlers.GenerateSongs)
		r.Get("/songs", s.handlers.ListSongs)
		r.Get("/song/{id}", s.handlers.GetSong)
		r.Get("/credits", s.handlers.GetCredits)
	})
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Infof(ctx, "Starting server at http://%s", s.server.Addr)

		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	logger.Info(ctx, "Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

// requestLogger logs every request with its status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithKV(r.Context(), "request_id", middleware.GetReqID(r.Context()))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		logger.InfoKV(ctx, "Request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr)
	})
}
